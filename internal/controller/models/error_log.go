package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type ErrorLog struct {
	Id         string    `json:"id"`
	OrgId      *string   `json:"orgId"`
	Level      string    `json:"level"`
	Source     string    `json:"source"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

type CreateErrorLogV1Opts struct {
	Db *sql.DB

	OrgId   *string
	Level   string
	Source  string
	Message string
}

func CreateErrorLogV1(opts CreateErrorLogV1Opts) (string, error) {
	logId := uuid.NewString()
	level := opts.Level
	if level == "" {
		level = "error"
	}
	if err := executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		INSERT INTO error_logs(id, org_id, level, source, message)
			VALUES (?, ?, ?, ?, ?)`,
		Args:         []any{logId, opts.OrgId, level, opts.Source, opts.Message},
		FnSource:     "models.CreateErrorLogV1",
		RowsAffected: oneRowAffected,
	}); err != nil {
		return "", err
	}
	return logId, nil
}

type ListErrorLogsV1Opts struct {
	Db *sql.DB

	OrgId *string
	Level *string
	Since *time.Time
	Limit int
}

func ListErrorLogsV1(opts ListErrorLogsV1Opts) ([]ErrorLog, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	logs := []ErrorLog{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		SELECT
			id,
			org_id,
			level,
			source,
			message,
			occurred_at
			FROM error_logs
			WHERE (? IS NULL OR org_id = ?)
				AND (? IS NULL OR level = ?)
				AND (? IS NULL OR occurred_at >= ?)
			ORDER BY occurred_at DESC
			LIMIT ?`,
		Args: []any{
			opts.OrgId, opts.OrgId,
			opts.Level, opts.Level,
			opts.Since, opts.Since,
			limit,
		},
		FnSource: "models.ListErrorLogsV1",
		ProcessRows: func(rows *sql.Rows) error {
			var errorLog ErrorLog
			if err := rows.Scan(
				&errorLog.Id,
				&errorLog.OrgId,
				&errorLog.Level,
				&errorLog.Source,
				&errorLog.Message,
				&errorLog.OccurredAt,
			); err != nil {
				return err
			}
			logs = append(logs, errorLog)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return logs, nil
}
