package models

import "database/sql"

// ListMemberIdsV1 returns the IDs of all identity accounts whose
// profile currently points at this organisation.
func (o *Org) ListMemberIdsV1(opts DatabaseConnection) ([]string, error) {
	if err := o.assertIdDefined(); err != nil {
		return nil, err
	}
	memberIds := []string{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		SELECT user_id
			FROM user_profiles
			WHERE current_organization_id = ?`,
		Args:     []any{o.GetId()},
		FnSource: "models.Org.ListMemberIdsV1",
		ProcessRows: func(rows *sql.Rows) error {
			var userId string
			if err := rows.Scan(&userId); err != nil {
				return err
			}
			memberIds = append(memberIds, userId)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return memberIds, nil
}
