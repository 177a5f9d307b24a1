package httpapi

import (
	"context"

	"github.com/jamjudge/jamjudge-api/internal/domain/user"
)

type contextKey string

const principalContextKey contextKey = "auth_principal"

// withPrincipal stores the verified caller set by RequireAuth; handlers
// read it back instead of re-verifying the token.
func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(user.Principal)
	return p, ok
}
