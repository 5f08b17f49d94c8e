package models

import "database/sql"

type DatabaseConnection struct {
	Db *sql.DB
}

const (
	RoleMember     = "member"
	RoleSupport    = "support"
	RoleSuperAdmin = "super_admin"
)

var Roles = []string{
	RoleMember,
	RoleSupport,
	RoleSuperAdmin,
}
