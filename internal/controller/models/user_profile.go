package models

import (
	"database/sql"
	"time"
)

// UserProfile carries the role and organisation membership of an
// identity account.
type UserProfile struct {
	UserId                string    `json:"userId"`
	Role                  string    `json:"role"`
	CurrentOrganizationId *string   `json:"currentOrganizationId"`
	JoinedAt              time.Time `json:"joinedAt"`
}

type GetUserProfileV1Opts struct {
	Db *sql.DB

	UserId string
}

func GetUserProfileV1(opts GetUserProfileV1Opts) (*UserProfile, error) {
	var profile UserProfile
	if err := executeMysqlSelect(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		SELECT
			user_id,
			role,
			current_organization_id,
			joined_at
			FROM user_profiles
			WHERE user_id = ?`,
		Args:     []any{opts.UserId},
		FnSource: "models.GetUserProfileV1",
		ProcessRow: func(row *sql.Row) error {
			return row.Scan(
				&profile.UserId,
				&profile.Role,
				&profile.CurrentOrganizationId,
				&profile.JoinedAt,
			)
		},
	}); err != nil {
		return nil, err
	}
	return &profile, nil
}
