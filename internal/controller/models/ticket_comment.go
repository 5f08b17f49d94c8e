package models

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type CreateTicketCommentV1Opts struct {
	Db *sql.DB

	TicketId     string
	AuthorUserId *string
	Body         string
}

func CreateTicketCommentV1(opts CreateTicketCommentV1Opts) (string, error) {
	if opts.Body == "" {
		return "", fmt.Errorf("models.CreateTicketCommentV1: no comment body supplied: %w", errorInputValidationFailed)
	}
	commentId := uuid.NewString()
	if err := executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		INSERT INTO ticket_comments(id, ticket_id, author_user_id, body)
			VALUES (?, ?, ?, ?)`,
		Args:         []any{commentId, opts.TicketId, opts.AuthorUserId, opts.Body},
		FnSource:     "models.CreateTicketCommentV1",
		RowsAffected: oneRowAffected,
	}); err != nil {
		return "", err
	}
	return commentId, nil
}

type ListTicketCommentsV1Opts struct {
	Db *sql.DB

	TicketId string
}

func ListTicketCommentsV1(opts ListTicketCommentsV1Opts) ([]TicketComment, error) {
	comments := []TicketComment{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		SELECT
			id,
			ticket_id,
			author_user_id,
			body,
			created_at
			FROM ticket_comments
			WHERE ticket_id = ?
			ORDER BY created_at ASC`,
		Args:     []any{opts.TicketId},
		FnSource: "models.ListTicketCommentsV1",
		ProcessRows: func(rows *sql.Rows) error {
			var comment TicketComment
			if err := rows.Scan(
				&comment.Id,
				&comment.TicketId,
				&comment.AuthorUserId,
				&comment.Body,
				&comment.CreatedAt,
			); err != nil {
				return err
			}
			comments = append(comments, comment)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return comments, nil
}
