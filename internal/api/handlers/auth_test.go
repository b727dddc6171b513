package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthHandlerTest(t *testing.T) (*AuthHandler, *sqlx.DB, *echo.Echo) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}
	db := testDB.DB()
	handler := NewAuthHandler(db, "test-secret")
	e := echo.New()
	e.Validator = &customValidator{v: validator.New()}
	return handler, db, e
}

func TestAuthHandler_SignUp(t *testing.T) {
	handler, _, e := setupAuthHandlerTest(t)

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.SignUp(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation error returns 400", func(t *testing.T) {
		body := map[string]string{"username": "ab", "email": "x@y.z", "password": "short"}
		b, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBuffer(b))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.SignUp(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("successful signup returns 200 and token", func(t *testing.T) {
		u := fmt.Sprintf("user%d", time.Now().UnixNano())
		body := map[string]string{
			"username": u,
			"email":    fmt.Sprintf("%s@test.com", u),
			"password": "password123",
		}
		b, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBuffer(b))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.SignUp(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp AuthResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.NotNil(t, resp.User)
		assert.Equal(t, u, resp.User.Username)
	})

	t.Run("duplicate username returns 409", func(t *testing.T) {
		user := createHandlerTestUser(t)

		body := map[string]string{"username": user.Username, "email": "other@test.com", "password": "password123"}
		b, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBuffer(b))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.SignUp(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAuthHandler_SignIn(t *testing.T) {
	handler, _, e := setupAuthHandlerTest(t)

	u := fmt.Sprintf("signin%d", time.Now().UnixNano())
	signUpBody := map[string]string{"username": u, "email": u + "@test.com", "password": "pass123"}
	b, _ := json.Marshal(signUpBody)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := handler.SignUp(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("correct credentials return 200 and token", func(t *testing.T) {
		body := map[string]string{"username": u, "password": "pass123"}
		b, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", bytes.NewBuffer(b))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.SignIn(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		body := map[string]string{"username": u, "password": "wrongpass"}
		b, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", bytes.NewBuffer(b))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.SignIn(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
