package user

// Role is the application role granted to an account by the identity provider.
type Role string

const (
	RoleParticipant Role = "participant"
	RoleJury        Role = "jury"
	RoleOrganizer   Role = "organizer"
)

func ParseRole(v string) (Role, bool) {
	switch Role(v) {
	case RoleParticipant, RoleJury, RoleOrganizer:
		return Role(v), true
	default:
		return "", false
	}
}

// Principal is the verified caller identity attached to a request.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}
