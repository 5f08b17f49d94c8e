package models

import "database/sql"

type ListTicketsV1Opts struct {
	Db *sql.DB

	OrgId  *string
	Status *string
	Limit  int
}

func ListTicketsV1(opts ListTicketsV1Opts) ([]Ticket, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	stmt := `
	SELECT
		id,
		org_id,
		author_user_id,
		subject,
		status,
		created_at,
		updated_at
		FROM tickets
		WHERE (? IS NULL OR org_id = ?)
			AND (? IS NULL OR status = ?)
		ORDER BY created_at DESC
		LIMIT ?`
	tickets := []Ticket{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db:       opts.Db,
		Stmt:     stmt,
		Args:     []any{opts.OrgId, opts.OrgId, opts.Status, opts.Status, limit},
		FnSource: "models.ListTicketsV1",
		ProcessRows: func(rows *sql.Rows) error {
			var ticket Ticket
			if err := rows.Scan(
				&ticket.Id,
				&ticket.OrgId,
				&ticket.AuthorUserId,
				&ticket.Subject,
				&ticket.Status,
				&ticket.CreatedAt,
				&ticket.UpdatedAt,
			); err != nil {
				return err
			}
			tickets = append(tickets, ticket)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return tickets, nil
}

type GetTicketV1Opts struct {
	Db *sql.DB

	Id string
}

func GetTicketV1(opts GetTicketV1Opts) (*Ticket, error) {
	var ticket Ticket
	if err := executeMysqlSelect(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		SELECT
			id,
			org_id,
			author_user_id,
			subject,
			status,
			created_at,
			updated_at
			FROM tickets
			WHERE id = ?`,
		Args:     []any{opts.Id},
		FnSource: "models.GetTicketV1",
		ProcessRow: func(row *sql.Row) error {
			return row.Scan(
				&ticket.Id,
				&ticket.OrgId,
				&ticket.AuthorUserId,
				&ticket.Subject,
				&ticket.Status,
				&ticket.CreatedAt,
				&ticket.UpdatedAt,
			)
		},
	}); err != nil {
		return nil, err
	}
	return &ticket, nil
}
