package cli

import (
	"context"

	"github.com/thenoetrevino/tagdo/internal/app"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const appKey contextKey = "tagdo.app"

// WithApp returns a context carrying an already opened App. Commands run with
// this context use it instead of opening session storage themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// AppFromContext extracts an App stored by WithApp
func AppFromContext(ctx context.Context) (*app.App, bool) {
	a, ok := ctx.Value(appKey).(*app.App)
	return a, ok && a != nil
}
