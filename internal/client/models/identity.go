// Package models defines the client-side domain types: the authenticated
// identity, accounts, travel plans and the form inputs that create them.
package models

// Role distinguishes ordinary users from administrators.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

// String returns the label shown on the dashboard.
func (r Role) String() string {
	if r == RoleAdmin {
		return "Administrator"
	}
	return "User"
}

// RoleFromAdmin maps the wire isAdmin flag to a Role.
func RoleFromAdmin(isAdmin bool) Role {
	if isAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Identity is the authenticated user's client-held profile.
type Identity struct {
	ID       string
	Username string
	Email    string
	Role     Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Account is a user record as the resource API returns it, minus the password.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Identity drops everything but the profile fields.
func (a Account) Identity() Identity {
	return Identity{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     RoleFromAdmin(a.IsAdmin),
	}
}
