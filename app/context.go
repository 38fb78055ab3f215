package main

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const userIDContextKey = contextKey("userID")

func (app *application) createUserContext(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), userIDContextKey, userID)
	return r.WithContext(ctx)
}

func (app *application) getUserContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(userIDContextKey).(uuid.UUID)
	return userID, ok
}
