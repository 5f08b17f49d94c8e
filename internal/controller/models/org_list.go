package models

import "database/sql"

type ListOrgsV1Opts struct {
	Db *sql.DB

	Limit int
}

func ListOrgsV1(opts ListOrgsV1Opts) ([]Org, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	orgs := []Org{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		SELECT
			o.id,
			o.code,
			o.name,
			o.plan,
			o.created_at,
			o.updated_at,
			(SELECT COUNT(*) FROM user_profiles p WHERE p.current_organization_id = o.id) AS user_count
			FROM organizations o
			ORDER BY o.created_at DESC
			LIMIT ?`,
		Args:     []any{limit},
		FnSource: "models.ListOrgsV1",
		ProcessRows: func(rows *sql.Rows) error {
			var org Org
			if err := rows.Scan(
				&org.Id,
				&org.Code,
				&org.Name,
				&org.Plan,
				&org.CreatedAt,
				&org.UpdatedAt,
				&org.UserCount,
			); err != nil {
				return err
			}
			orgs = append(orgs, org)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return orgs, nil
}
