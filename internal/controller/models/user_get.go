package models

import (
	"database/sql"
	"fmt"
)

type GetUserV1Opts struct {
	Db *sql.DB

	Id    *string
	Email *string
}

// GetUserV1 returns the identity account identified by either its ID
// or its email, with the profile row joined in.
func GetUserV1(opts GetUserV1Opts) (*User, error) {
	if opts.Id == nil && opts.Email == nil {
		return nil, fmt.Errorf("models.GetUserV1: either the user id or email has to be specified: %w", errorInputValidationFailed)
	}
	selectorField := "u.id"
	selectorValue := ""
	if opts.Id != nil {
		selectorValue = *opts.Id
	} else {
		selectorField = "u.email"
		selectorValue = *opts.Email
	}
	var user User
	var profile UserProfile
	if err := executeMysqlSelect(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
		SELECT
			u.id,
			u.email,
			u.password_hash,
			u.totp_secret,
			u.created_at,
			p.role,
			p.current_organization_id,
			p.joined_at
			FROM users u
				JOIN user_profiles p ON p.user_id = u.id
			WHERE %s = ?`, selectorField),
		Args:     []any{selectorValue},
		FnSource: "models.GetUserV1",
		ProcessRow: func(row *sql.Row) error {
			return row.Scan(
				&user.Id,
				&user.Email,
				&user.PasswordHash,
				&user.TotpSecret,
				&user.CreatedAt,
				&profile.Role,
				&profile.CurrentOrganizationId,
				&profile.JoinedAt,
			)
		},
	}); err != nil {
		return nil, err
	}
	profile.UserId = *user.Id
	user.Profile = &profile
	return &user, nil
}
