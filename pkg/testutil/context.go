package testutil

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"watchdog/internal/platform/middleware"
)

// WithOperatorID adds an operator ID to the request context, as the auth
// middleware does for authenticated requests. Non-UUID values are ignored.
func WithOperatorID(req *http.Request, operatorID string) *http.Request {
	if _, err := uuid.Parse(operatorID); err != nil {
		return req
	}
	ctx := context.WithValue(req.Context(), middleware.ContextKeyOperatorID, operatorID)
	return req.WithContext(ctx)
}
