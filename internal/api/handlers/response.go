package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"trailpack/internal/api/services"
	"trailpack/internal/repository"
)

func ErrUnauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
}

func ErrNotFound(c echo.Context, message string) error {
	if message == "" {
		message = "not found"
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func ErrBadRequest(c echo.Context, message string) error {
	if message == "" {
		message = "invalid request"
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func ErrInternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func ErrConflict(c echo.Context, message string) error {
	if message == "" {
		message = "conflict"
	}
	return c.JSON(http.StatusConflict, map[string]string{"error": message})
}

func SuccessResponse(c echo.Context, message string) error {
	if message == "" {
		message = "ok"
	}
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Unrecognized errors become a 500 without leaking detail.
func respondServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidWeight),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidItemType):
		return ErrBadRequest(c, err.Error())
	case errors.Is(err, services.ErrLastListProtected):
		return ErrConflict(c, err.Error())
	case errors.Is(err, repository.ErrListNotFound),
		errors.Is(err, repository.ErrItemNotFound),
		errors.Is(err, repository.ErrCatalogEntryNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		return ErrNotFound(c, err.Error())
	case errors.Is(err, services.ErrSyncFailed),
		errors.Is(err, services.ErrCloneFailed):
		return ErrConflict(c, err.Error())
	default:
		return ErrInternalServerError(c)
	}
}
