package models

import (
	"database/sql"
)

type ListUsersV1Opts struct {
	Db *sql.DB

	OrgId *string
	Limit int
}

// ListUsersV1 returns identity accounts with their profiles, optionally
// scoped to one organisation.
func ListUsersV1(opts ListUsersV1Opts) ([]User, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	stmt := `
	SELECT
		u.id,
		u.email,
		u.created_at,
		p.role,
		p.current_organization_id,
		p.joined_at
		FROM users u
			JOIN user_profiles p ON p.user_id = u.id
		ORDER BY u.created_at DESC
		LIMIT ?`
	args := []any{limit}
	if opts.OrgId != nil {
		stmt = `
		SELECT
			u.id,
			u.email,
			u.created_at,
			p.role,
			p.current_organization_id,
			p.joined_at
			FROM users u
				JOIN user_profiles p ON p.user_id = u.id
			WHERE p.current_organization_id = ?
			ORDER BY u.created_at DESC
			LIMIT ?`
		args = []any{*opts.OrgId, limit}
	}
	users := []User{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db:       opts.Db,
		Stmt:     stmt,
		Args:     args,
		FnSource: "models.ListUsersV1",
		ProcessRows: func(rows *sql.Rows) error {
			var user User
			var profile UserProfile
			if err := rows.Scan(
				&user.Id,
				&user.Email,
				&user.CreatedAt,
				&profile.Role,
				&profile.CurrentOrganizationId,
				&profile.JoinedAt,
			); err != nil {
				return err
			}
			profile.UserId = *user.Id
			user.Profile = &profile
			users = append(users, user)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return users, nil
}
