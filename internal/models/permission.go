package models

import "fmt"

// Permission gates access to one feature area.
type Permission string

const (
	PermissionManageUsers           Permission = "MANAGE_USERS"
	PermissionAddTransaction        Permission = "ADD_TRANSACTION"
	PermissionViewReports           Permission = "VIEW_REPORTS"
	PermissionPerformReconciliation Permission = "PERFORM_RECONCILIATION"
)

// AllPermissions returns the closed permission set in display order.
func AllPermissions() []Permission {
	return []Permission{
		PermissionManageUsers,
		PermissionAddTransaction,
		PermissionViewReports,
		PermissionPerformReconciliation,
	}
}

// Valid reports whether p belongs to the closed set.
func (p Permission) Valid() bool {
	switch p {
	case PermissionManageUsers, PermissionAddTransaction, PermissionViewReports, PermissionPerformReconciliation:
		return true
	}
	return false
}

// NormalizePermissions drops duplicates while keeping first-seen order and
// rejects anything outside the closed set. A nil input yields an empty list.
func NormalizePermissions(in []Permission) ([]Permission, error) {
	out := make([]Permission, 0, len(in))
	seen := make(map[Permission]bool, len(in))
	for _, p := range in {
		if !p.Valid() {
			return nil, fmt.Errorf("unknown permission %q", p)
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}
