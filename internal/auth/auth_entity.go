package auth

// SessionKey is the backend key holding the session marker.
const SessionKey = "auth_user"

// SessionUser is the session marker. Its presence is the only
// authorization signal; it carries no permissions.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "unauthenticated"
}
