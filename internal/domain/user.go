package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Session is the client-held proof of identity: the remote API's bearer
// token plus the user profile it was issued for.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}
