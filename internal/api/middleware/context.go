package middleware

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type ctxKey int

const userIDCtxKey ctxKey = iota

// ErrNoUserInContext signals a request that reached an authenticated handler
// without a user id attached.
var ErrNoUserInContext = errors.New("no user in context")

func ContextWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// GetUserIDFromContext reads the user id ExtractUserIDFromJWT attached.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(userIDCtxKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoUserInContext
	}
	return id, nil
}
