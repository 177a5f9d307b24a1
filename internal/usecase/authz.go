package usecase

import (
	"fmt"

	"github.com/jamjudge/jamjudge-api/internal/domain/user"
)

// requireRole checks authentication before authorization so callers
// always get the unauthenticated error when no principal is present.
func requireRole(principal user.Principal, roles ...user.Role) error {
	if principal.UserID == "" {
		return fmt.Errorf("%w: sign in required", ErrUnauthenticated)
	}
	for _, role := range roles {
		if principal.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s cannot perform this action", ErrPermissionDenied, principal.Role)
}
