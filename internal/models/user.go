package models

import "fmt"

// Seed account identifiers. AdminUserID is never deletable.
const (
	AdminUserID    = "admin-user"
	StandardUserID = "standard-user"
)

// User is an operator of the treasury. Password is stored and compared as
// plain text under the historical "passwordHash" key.
type User struct {
	ID          string       `json:"id"`
	Username    string       `json:"username"`
	Password    string       `json:"passwordHash"`
	Permissions []Permission `json:"permissions"`
}

// HasPermission reports whether p is among the user's permissions.
func (u *User) HasPermission(p Permission) bool {
	if u == nil {
		return false
	}
	for _, held := range u.Permissions {
		if held == p {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the user holds every known permission.
func (u *User) HasAllPermissions() bool {
	for _, p := range AllPermissions() {
		if !u.HasPermission(p) {
			return false
		}
	}
	return true
}

// PermissionSummary is how listings describe the user's access: "all
// permissions" for the full set, otherwise a count.
func (u *User) PermissionSummary() string {
	if u.HasAllPermissions() {
		return "all permissions"
	}
	return fmt.Sprintf("%d permissions", len(u.Permissions))
}

// Clone returns a deep copy so callers cannot mutate shared permission slices.
func (u *User) Clone() User {
	out := *u
	out.Permissions = append([]Permission(nil), u.Permissions...)
	return out
}

// SeedUsers returns the accounts present on first run.
func SeedUsers() []User {
	return []User{
		{
			ID:          AdminUserID,
			Username:    "admin",
			Password:    "admin123",
			Permissions: AllPermissions(),
		},
		{
			ID:          StandardUserID,
			Username:    "user",
			Password:    "user123",
			Permissions: []Permission{PermissionAddTransaction, PermissionViewReports},
		},
	}
}
