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

type ListHandler struct {
	listService *services.ListService
	itemService *services.ItemService
}

func NewListHandler(db *sqlx.DB) *ListHandler {
	sync := services.NewCatalogSyncService(db)
	return &ListHandler{
		listService: services.NewListService(db),
		itemService: services.NewItemService(db, sync),
	}
}

// GetLists godoc
// @Summary List pack lists
// @Description All lists of the authenticated user, oldest first
// @Tags lists
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.PackList
// @Failure 401 {object} map[string]string
// @Router /api/lists [get]
func (h *ListHandler) GetLists(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	lists, err := h.listService.ListAll(c.Request().Context(), userID)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.PackListsFromDomain(lists))
}

// GetDefaultList godoc
// @Summary Get the default list
// @Description Returns the user's first list, creating and seeding it when none exists
// @Tags lists
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.PackList
// @Failure 401 {object} map[string]string
// @Router /api/lists/default [get]
func (h *ListHandler) GetDefaultList(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	list, err := h.listService.EnsureDefaultList(c.Request().Context(), userID)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.PackListFromDomain(list))
}

// CreateList godoc
// @Summary Create a list
// @Tags lists
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateListRequest true "Create list request"
// @Success 200 {object} dto.PackList
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/lists [post]
func (h *ListHandler) CreateList(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req dto.CreateListRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	list, err := h.listService.CreateList(c.Request().Context(), userID, req.Name)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.PackListFromDomain(list))
}

// CloneList godoc
// @Summary Clone a list
// @Description Copy every item of the source list into a new list
// @Tags lists
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Source list ID"
// @Param request body dto.CloneListRequest true "Clone list request"
// @Success 200 {object} dto.PackList
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/lists/{id}/clone [post]
func (h *ListHandler) CloneList(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	sourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid list ID")
	}

	var req dto.CloneListRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	clone, err := h.listService.CloneList(c.Request().Context(), userID, sourceID, req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PackListFromDomain(clone))
}

// DeleteList godoc
// @Summary Delete a list
// @Description Deletes the list and its items; the last remaining list is protected
// @Tags lists
// @Produce json
// @Security Bearer
// @Param id path string true "List ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/lists/{id} [delete]
func (h *ListHandler) DeleteList(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid list ID")
	}

	if err := h.listService.DeleteList(c.Request().Context(), userID, listID); err != nil {
		return respondServiceError(c, err)
	}

	return SuccessResponse(c, "list deleted")
}

// GetListItems godoc
// @Summary List items of a list
// @Tags lists
// @Produce json
// @Security Bearer
// @Param id path string true "List ID"
// @Success 200 {array} dto.Item
// @Failure 404 {object} map[string]string
// @Router /api/lists/{id}/items [get]
func (h *ListHandler) GetListItems(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid list ID")
	}

	items, err := h.itemService.ListForList(c.Request().Context(), userID, listID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ItemsFromDomain(items))
}

// CreateListItem godoc
// @Summary Add an item to a list
// @Description Creates the item and remembers its shape in the gear catalog
// @Tags lists
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "List ID"
// @Param request body dto.CreateItemRequest true "Create item request"
// @Success 200 {object} dto.Item
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/lists/{id}/items [post]
func (h *ListHandler) CreateListItem(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid list ID")
	}

	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	item, err := h.itemService.CreateItem(c.Request().Context(), userID, listID, services.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Type:        domain.ItemType(req.Type),
		WeightGrams: req.WeightGrams,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ItemFromDomain(item))
}

// ClearListItems godoc
// @Summary Remove every item from a list
// @Description The list and the catalog stay
// @Tags lists
// @Produce json
// @Security Bearer
// @Param id path string true "List ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/lists/{id}/items [delete]
func (h *ListHandler) ClearListItems(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid list ID")
	}

	if err := h.itemService.ClearList(c.Request().Context(), userID, listID); err != nil {
		return respondServiceError(c, err)
	}

	return SuccessResponse(c, "list cleared")
}

// GetListTotals godoc
// @Summary Weight totals of a list
// @Description Carried weight excludes worn gear
// @Tags lists
// @Produce json
// @Security Bearer
// @Param id path string true "List ID"
// @Success 200 {object} dto.ListTotals
// @Failure 404 {object} map[string]string
// @Router /api/lists/{id}/totals [get]
func (h *ListHandler) GetListTotals(c echo.Context) error {
	userID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid list ID")
	}

	totals, err := h.listService.Totals(c.Request().Context(), userID, listID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTotalsFromDomain(totals))
}
