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

type CatalogHandler struct {
	catalogService *services.CatalogService
	syncService    *services.CatalogSyncService
}

func NewCatalogHandler(db *sqlx.DB) *CatalogHandler {
	return &CatalogHandler{
		catalogService: services.NewCatalogService(db),
		syncService:    services.NewCatalogSyncService(db),
	}
}

// GetCatalog godoc
// @Summary List the gear catalog
// @Tags catalog
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CatalogEntry
// @Failure 401 {object} map[string]string
// @Router /api/catalog [get]
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	entries, err := h.catalogService.ListAll(c.Request().Context(), userID)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.CatalogEntriesFromDomain(entries))
}

// GetCatalogForList godoc
// @Summary Catalog with presence for one list
// @Description Every entry flagged with whether the list already holds a matching item
// @Tags catalog
// @Produce json
// @Security Bearer
// @Param id path string true "List ID"
// @Success 200 {array} dto.CatalogEntry
// @Failure 404 {object} map[string]string
// @Router /api/lists/{id}/catalog [get]
func (h *CatalogHandler) GetCatalogForList(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid list ID")
	}

	entries, err := h.catalogService.ListWithPresence(c.Request().Context(), userID, listID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CatalogEntriesWithPresenceFromDomain(entries))
}

// UpsertCatalogEntry godoc
// @Summary Upsert a catalog entry
// @Description Insert by natural key, or fold into the existing entry (max default quantity, new description)
// @Tags catalog
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.UpsertCatalogEntryRequest true "Upsert request"
// @Success 200 {object} dto.CatalogEntry
// @Failure 400 {object} map[string]string
// @Router /api/catalog [post]
func (h *CatalogHandler) UpsertCatalogEntry(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req dto.UpsertCatalogEntryRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	entry, err := h.syncService.UpsertEntry(c.Request().Context(), userID, &domain.CatalogEntry{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Type:        domain.ItemType(req.Type),
		WeightGrams: req.WeightGrams,
		DefaultQty:  req.DefaultQty,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CatalogEntryFromDomain(entry))
}

// AddCatalogEntryToList godoc
// @Summary Add a catalog entry to a list
// @Description Creates an item from the entry with its default quantity
// @Tags catalog
// @Produce json
// @Security Bearer
// @Param id path string true "Catalog entry ID"
// @Param list_id path string true "Target list ID"
// @Success 200 {object} dto.Item
// @Failure 404 {object} map[string]string
// @Router /api/catalog/{id}/add/{list_id} [post]
func (h *CatalogHandler) AddCatalogEntryToList(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid catalog entry ID")
	}

	listID, err := uuid.Parse(c.Param("list_id"))
	if err != nil {
		return ErrBadRequest(c, "invalid list ID")
	}

	item, err := h.catalogService.AddToList(c.Request().Context(), userID, entryID, listID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ItemFromDomain(item))
}

// DeleteCatalogEntry godoc
// @Summary Delete a catalog entry
// @Description Items referencing the same gear are untouched
// @Tags catalog
// @Produce json
// @Security Bearer
// @Param id path string true "Catalog entry ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/catalog/{id} [delete]
func (h *CatalogHandler) DeleteCatalogEntry(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid catalog entry ID")
	}

	if err := h.catalogService.DeleteEntry(c.Request().Context(), userID, entryID); err != nil {
		return respondServiceError(c, err)
	}

	return SuccessResponse(c, "catalog entry deleted")
}
