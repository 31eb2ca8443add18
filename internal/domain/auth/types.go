package auth

// Package auth contains domain-level types for identity and session
// resolution. It is pure and free of transport/adapter concerns.

// Role represents an application's authorization role as issued by the
// remote identity service. Keep string form for easy JSON round-trips.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether the role is one the application understands.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Identity represents the resolved authenticated user. It is an immutable
// value owned by the session store once resolved: replaced wholesale on
// login, refresh, or logout, never mutated field-by-field.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Credentials carries a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries an account registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the remote store's successful login response. The response
// also sets the credential cookie; the body carries the Identity so no
// follow-up session fetch is needed.
type LoginResult struct {
	Message string   `json:"message"`
	User    Identity `json:"user"`
}
