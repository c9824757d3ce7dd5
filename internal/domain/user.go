package domain

type UserID string

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID    UserID
	Name  string
	Email string
	Role  Role
}

// HasRole reports whether u holds role. An empty role is held by everyone.
func (u User) HasRole(role Role) bool {
	if role == "" {
		return true
	}
	return u.Role == role
}

func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return string(u.ID)
}
