package domain

// Permission names a single operation scope a role may be granted.
type Permission string

const (
	PermDashboardRead Permission = "dashboard:read"
	PermAnalyticsRead Permission = "analytics:read"
	PermReportsExport Permission = "reports:export"
	PermUsersManage   Permission = "users:manage"
)

// rolePermissions is the authoritative grant table. The grants happen to
// grow as supersets from viewer to admin, but that is a property of this
// data, not a rule: enforcement is always exact set membership, never a
// rank comparison.
var rolePermissions = map[Role][]Permission{
	RoleViewer:  {PermDashboardRead},
	RoleAnalyst: {PermDashboardRead, PermAnalyticsRead},
	RoleManager: {PermDashboardRead, PermAnalyticsRead, PermReportsExport},
	RoleAdmin:   {PermDashboardRead, PermAnalyticsRead, PermReportsExport, PermUsersManage},
}

// PermissionsOf returns the permissions granted to role. Unknown roles get
// an empty set so that authorization fails closed.
func PermissionsOf(role Role) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether role is granted perm.
func HasPermission(role Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}
