package models

// DeleteV1 deletes the organisation identified by its ID. Dependent
// rows (profiles, flags, tickets) are removed by the schema's
// cascades; error logs are detached instead.
func (o *Org) DeleteV1(opts DatabaseConnection) error {
	if err := o.assertIdDefined(); err != nil {
		return err
	}
	return executeMysqlDelete(mysqlQueryInput{
		Db:           opts.Db,
		Stmt:         `DELETE FROM organizations WHERE id = ?`,
		Args:         []any{o.GetId()},
		FnSource:     "models.Org.DeleteV1",
		RowsAffected: oneRowAffected,
	})
}
