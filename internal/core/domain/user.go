package domain

// UserRole gates what a signed-in user may see.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// User is a stored account able to sign in.
type User struct {
	Username     string   `json:"username"`
	FullName     string   `json:"namaLengkap"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"passwordHash"`
}

// Session returns the password-free view of the user.
func (u User) Session() SessionUser {
	return SessionUser{Username: u.Username, FullName: u.FullName, Role: u.Role}
}

// SessionUser is the authenticated user record (currentUser).
type SessionUser struct {
	Username string   `json:"username"`
	FullName string   `json:"fullName"`
	Role     UserRole `json:"role"`
}

// IsAdmin reports whether the session belongs to an administrator.
func (s SessionUser) IsAdmin() bool {
	return s.Role == RoleAdmin
}
