package domain

// User represents an account on the remote timesheet server.
type User struct {
	ID          int64
	Username    string
	Email       string
	DisplayName string
	Roles       []string
}

// IsEmpty reports whether the user carries no usable identity.
func (u User) IsEmpty() bool {
	return u.Username == ""
}

// String returns the display name, falling back to the login name.
func (u User) String() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
