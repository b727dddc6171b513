package middleware

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDClaim is the claim the auth service writes the account id under.
const userIDClaim = "id"

// ExtractUserIDFromJWT copies the verified token's user id claim into the
// request context. Requests without a usable claim pass through with no user
// id set; handlers turn that into a 401.
func ExtractUserIDFromJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, ok := userIDFromToken(c.Get("user")); ok {
				ctx := ContextWithUserID(c.Request().Context(), userID)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

func userIDFromToken(v interface{}) (uuid.UUID, bool) {
	token, ok := v.(*jwt.Token)
	if !ok || token == nil {
		return uuid.Nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, false
	}
	raw, ok := claims[userIDClaim].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
