package domain

// Role names recognised by the authorization checks.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User represents an application user.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Active       bool   `json:"active"`
}

// FirstName returns the leading word of the username, used for greeting
// displays.
func (u User) FirstName() string {
	for i, r := range u.Username {
		if r == ' ' {
			return u.Username[:i]
		}
	}
	return u.Username
}

// Identity is the normalized caller identity extracted from a verified token.
// It is the only identity shape core logic ever sees.
type Identity struct {
	UserID int64  `json:"id"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
