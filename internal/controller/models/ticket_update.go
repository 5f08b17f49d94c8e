package models

import "fmt"

type UpdateTicketStatusV1Opts struct {
	DatabaseConnection

	Status string
}

func (t *Ticket) UpdateStatusV1(opts UpdateTicketStatusV1Opts) error {
	if err := t.assertIdDefined(); err != nil {
		return err
	}
	if !IsValidTicketStatus(opts.Status) {
		return fmt.Errorf("unknown ticket status '%s': %w", opts.Status, errorInputValidationFailed)
	}
	return executeMysqlUpdate(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		UPDATE tickets
			SET status = ?
			WHERE id = ?`,
		Args:         []any{opts.Status, t.GetId()},
		FnSource:     "models.Ticket.UpdateStatusV1",
		RowsAffected: atMostNRowsAffected(1),
	})
}
