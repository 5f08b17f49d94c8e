package models

import (
	"database/sql"
	"fmt"
)

type GetOrgV1Opts struct {
	Db *sql.DB

	Id   *string
	Code *string
}

// GetOrgV1 returns an organisation given either its ID or its code,
// including a count of accounts currently pointing at it.
func GetOrgV1(opts GetOrgV1Opts) (*Org, error) {
	if opts.Id == nil && opts.Code == nil {
		return nil, fmt.Errorf("models.GetOrgV1: either the org id or its code has to be specified: %w", errorInputValidationFailed)
	}
	selectorField := "o.id"
	selectorValue := ""
	if opts.Id != nil {
		selectorValue = *opts.Id
	} else {
		selectorField = "o.code"
		selectorValue = *opts.Code
	}
	var org Org
	if err := executeMysqlSelect(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
		SELECT
			o.id,
			o.code,
			o.name,
			o.plan,
			o.created_at,
			o.updated_at,
			(SELECT COUNT(*) FROM user_profiles p WHERE p.current_organization_id = o.id) AS user_count
			FROM organizations o
			WHERE %s = ?`, selectorField),
		Args:     []any{selectorValue},
		FnSource: "models.GetOrgV1",
		ProcessRow: func(row *sql.Row) error {
			return row.Scan(
				&org.Id,
				&org.Code,
				&org.Name,
				&org.Plan,
				&org.CreatedAt,
				&org.UpdatedAt,
				&org.UserCount,
			)
		},
	}); err != nil {
		return nil, err
	}
	return &org, nil
}
