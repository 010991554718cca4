package model

// Role codes as constants
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
	RoleOwner = "OWNER"
)

// Permission codes, dipakai oleh middleware dan service guard
const (
	PermCatalogView    = "catalog:view"
	PermCatalogEdit    = "catalog:edit"
	PermSettingsManage = "settings:manage"
	PermUsersManage    = "users:manage"
	PermLedgerView     = "ledger:view"
	PermLedgerEdit     = "ledger:edit"
)

// RolePermissions is the static access policy: role -> allowed permissions.
// ADMIN manages everything, OWNER can read the ledger, USER only sees the catalog.
var RolePermissions = map[string][]string{
	RoleAdmin: {
		PermCatalogView,
		PermCatalogEdit,
		PermSettingsManage,
		PermUsersManage,
		PermLedgerView,
		PermLedgerEdit,
	},
	RoleOwner: {
		PermCatalogView,
		PermLedgerView,
	},
	RoleUser: {
		PermCatalogView,
	},
}

// RoleHasPermission checks the policy table. Unknown roles have no permissions.
func RoleHasPermission(role, permission string) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// ValidRole reports whether the role code is one of the known roles.
func ValidRole(role string) bool {
	_, ok := RolePermissions[role]
	return ok
}
