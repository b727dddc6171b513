package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"trailpack/internal/api/dto"
	"trailpack/internal/api/middleware"
	"trailpack/internal/api/services"
	"trailpack/internal/domain"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(db *sqlx.DB) *ItemHandler {
	sync := services.NewCatalogSyncService(db)
	return &ItemHandler{
		itemService: services.NewItemService(db, sync),
	}
}

// UpdateItem godoc
// @Summary Update an item
// @Description Partial update; weight and description edits propagate to all items sharing the gear's key
// @Tags items
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update item request"
// @Success 200 {object} dto.Item
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/items/{id} [patch]
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid item ID")
	}

	var req dto.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	upd := services.ItemUpdate{
		Category:    req.Category,
		Quantity:    req.Quantity,
		WeightGrams: req.WeightGrams,
		Description: req.Description,
	}
	if req.Type != nil {
		itemType := domain.ItemType(*req.Type)
		upd.Type = &itemType
	}

	item, err := h.itemService.ApplyUpdate(c.Request().Context(), userID, itemID, upd)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ItemFromDomain(item))
}

// DeleteItem godoc
// @Summary Delete an item
// @Description Removes the item from its list; the catalog keeps the gear
// @Tags items
// @Produce json
// @Security Bearer
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/items/{id} [delete]
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid item ID")
	}

	if err := h.itemService.DeleteItem(c.Request().Context(), userID, itemID); err != nil {
		return respondServiceError(c, err)
	}

	return SuccessResponse(c, "item deleted")
}

// GetCategories godoc
// @Summary Category labels in use
// @Tags items
// @Produce json
// @Security Bearer
// @Success 200 {array} string
// @Failure 401 {object} map[string]string
// @Router /api/categories [get]
func (h *ItemHandler) GetCategories(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	categories, err := h.itemService.Categories(c.Request().Context(), userID)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, categories)
}
