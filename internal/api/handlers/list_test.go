package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailpack/internal/api/dto"
	"trailpack/internal/api/middleware"
)

func setupListHandlerTest(t *testing.T) (*ListHandler, *echo.Echo) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}
	handler := NewListHandler(testDB.DB())
	e := echo.New()
	e.Validator = &customValidator{v: validator.New()}
	return handler, e
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID uuid.UUID) echo.Context {
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), userID))
	return e.NewContext(req, rec)
}

func TestListHandler_GetDefaultList(t *testing.T) {
	handler, e := setupListHandlerTest(t)
	user := createHandlerTestUser(t)

	req := httptest.NewRequest(http.MethodGet, "/api/lists/default", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user.ID)

	err := handler.GetDefaultList(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var list dto.PackList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.NotEmpty(t, list.ID)
	assert.NotEmpty(t, list.Name)

	// The seeded list arrives populated.
	itemsReq := httptest.NewRequest(http.MethodGet, "/api/lists/"+list.ID+"/items", nil)
	itemsRec := httptest.NewRecorder()
	itemsCtx := authedContext(e, itemsReq, itemsRec, user.ID)
	itemsCtx.SetParamNames("id")
	itemsCtx.SetParamValues(list.ID)

	err = handler.GetListItems(itemsCtx)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, itemsRec.Code)

	var items []dto.Item
	require.NoError(t, json.Unmarshal(itemsRec.Body.Bytes(), &items))
	assert.NotEmpty(t, items)
}

func TestListHandler_GetDefaultList_Unauthenticated(t *testing.T) {
	handler, e := setupListHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/lists/default", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetDefaultList(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListHandler_CreateListItem(t *testing.T) {
	handler, e := setupListHandlerTest(t)
	user := createHandlerTestUser(t)

	listBody, _ := json.Marshal(map[string]string{"name": "Day hike"})
	listReq := httptest.NewRequest(http.MethodPost, "/api/lists", bytes.NewBuffer(listBody))
	listReq.Header.Set("Content-Type", "application/json")
	listRec := httptest.NewRecorder()
	require.NoError(t, handler.CreateList(authedContext(e, listReq, listRec, user.ID)))
	require.Equal(t, http.StatusOK, listRec.Code)

	var list dto.PackList
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &list))

	t.Run("valid item returns 200", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"name":        "Tent",
			"category":    "Shelter",
			"type":        "base",
			"weightGrams": 1400,
			"quantity":    1,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/lists/"+list.ID+"/items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, user.ID)
		c.SetParamNames("id")
		c.SetParamValues(list.ID)

		err := handler.CreateListItem(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var item dto.Item
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
		assert.Equal(t, "Tent", item.Name)
	})

	t.Run("invalid type returns 400", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"name":        "Tent",
			"type":        "decorative",
			"weightGrams": 1400,
			"quantity":    1,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/lists/"+list.ID+"/items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, user.ID)
		c.SetParamNames("id")
		c.SetParamValues(list.ID)

		err := handler.CreateListItem(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown list returns 404", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"name":        "Tent",
			"type":        "base",
			"weightGrams": 1400,
			"quantity":    1,
		})
		unknown := uuid.New().String()
		req := httptest.NewRequest(http.MethodPost, "/api/lists/"+unknown+"/items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, user.ID)
		c.SetParamNames("id")
		c.SetParamValues(unknown)

		err := handler.CreateListItem(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListHandler_DeleteList_LastListConflict(t *testing.T) {
	handler, e := setupListHandlerTest(t)
	user := createHandlerTestUser(t)

	listBody, _ := json.Marshal(map[string]string{"name": "Only list"})
	listReq := httptest.NewRequest(http.MethodPost, "/api/lists", bytes.NewBuffer(listBody))
	listReq.Header.Set("Content-Type", "application/json")
	listRec := httptest.NewRecorder()
	require.NoError(t, handler.CreateList(authedContext(e, listReq, listRec, user.ID)))

	var list dto.PackList
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &list))

	req := httptest.NewRequest(http.MethodDelete, "/api/lists/"+list.ID, nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, user.ID)
	c.SetParamNames("id")
	c.SetParamValues(list.ID)

	err := handler.DeleteList(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
