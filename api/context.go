package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type keyType string

const userIDKey keyType = "userID"

// ctxWithUserID adds the authenticated owner's ID to the context
func ctxWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ctxGetUserID retrieves the authenticated owner's ID from the context
func ctxGetUserID(ctx context.Context) (uuid.UUID, error) {
	ctxValue := ctx.Value(userIDKey)
	if ctxValue == nil {
		return uuid.Nil, errors.New("key not found in context")
	}
	userID, ok := ctxValue.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("value is not of type `uuid.UUID`")
	}
	return userID, nil
}
