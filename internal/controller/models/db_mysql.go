package models

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

func oneRowAffected(observed int64) bool {
	return observed == 1
}

func atMostNRowsAffected(expected int64) func(int64) bool {
	return func(observed int64) bool {
		return observed <= expected
	}
}

func atLeastNRowsAffected(expected int64) func(int64) bool {
	return func(observed int64) bool {
		return observed >= expected
	}
}

type mysqlQueryInput struct {
	Db           *sql.DB
	Stmt         string
	Args         []any
	RowsAffected func(int64) bool
	FnSource     string
	ProcessRow   func(*sql.Row) error
	ProcessRows  func(*sql.Rows) error
}

func (o mysqlQueryInput) prepare(verb string) (*sql.Stmt, error) {
	if o.Db == nil {
		return nil, fmt.Errorf("%s: missing db input: %w", o.FnSource, ErrorDatabaseUndefined)
	}
	inputStmt := strings.TrimSpace(o.Stmt)
	inputOp := strings.SplitN(strings.ReplaceAll(inputStmt, "\n", " "), " ", 2)
	if !strings.EqualFold(inputOp[0], verb) {
		return nil, fmt.Errorf("%s: only '%s' statements are allowed: %w", o.FnSource, verb, ErrorInvalidInput)
	}
	stmt, err := o.Db.Prepare(inputStmt)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to prepare %s statement: %w (%w)", o.FnSource, verb, ErrorStmtPreparationFailed, err)
	}
	return stmt, nil
}

func (o mysqlQueryInput) checkRowsAffected(results sql.Result) error {
	if o.RowsAffected == nil {
		return nil
	}
	rowsAffected, err := results.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get n(rows) affected: %w (%w)", o.FnSource, ErrorRowsAffectedCheckFailed, err)
	}
	if !o.RowsAffected(rowsAffected) {
		return fmt.Errorf("%s: n(rows) affected was wrong (got %v): %w", o.FnSource, rowsAffected, ErrorRowsAffectedCheckFailed)
	}
	return nil
}

func executeMysqlInsert(opts mysqlQueryInput) error {
	stmt, err := opts.prepare("insert")
	if err != nil {
		return err
	}
	results, err := stmt.Exec(opts.Args...)
	if err != nil {
		if isMysqlDuplicateError(err) {
			return fmt.Errorf("%s: duplicate detected: %w: %w", opts.FnSource, ErrorDuplicateEntry, err)
		}
		return fmt.Errorf("%s: failed to execute insert statement: %w (%w)", opts.FnSource, ErrorInsertFailed, err)
	}
	return opts.checkRowsAffected(results)
}

func executeMysqlSelect(opts mysqlQueryInput) error {
	if opts.ProcessRow == nil {
		return fmt.Errorf("%s: ProcessRow is undefined: %w", opts.FnSource, ErrorInvalidInput)
	}
	stmt, err := opts.prepare("select")
	if err != nil {
		return err
	}
	row := stmt.QueryRow(opts.Args...)
	if row.Err() != nil {
		return fmt.Errorf("%s: failed to execute select statement: %w (%w)", opts.FnSource, ErrorSelectFailed, row.Err())
	}
	if err := opts.ProcessRow(row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: no rows: %w: %w", opts.FnSource, ErrorNotFound, err)
		}
		return fmt.Errorf("%s: failed to process result: %w", opts.FnSource, err)
	}
	return nil
}

func executeMysqlSelects(opts mysqlQueryInput) error {
	if opts.ProcessRows == nil {
		return fmt.Errorf("%s: ProcessRows is undefined: %w", opts.FnSource, ErrorInvalidInput)
	}
	stmt, err := opts.prepare("select")
	if err != nil {
		return err
	}
	rows, err := stmt.Query(opts.Args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute select statement: %w (%w)", opts.FnSource, ErrorSelectFailed, err)
	}
	defer rows.Close()
	counter := 0
	for rows.Next() {
		if err := opts.ProcessRows(rows); err != nil {
			return fmt.Errorf("%s: failed to process row[%v]: %w", opts.FnSource, counter, err)
		}
		counter++
	}
	return nil
}

func executeMysqlUpdate(opts mysqlQueryInput) error {
	stmt, err := opts.prepare("update")
	if err != nil {
		return err
	}
	results, err := stmt.Exec(opts.Args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute update statement: %w (%w)", opts.FnSource, ErrorUpdateFailed, err)
	}
	return opts.checkRowsAffected(results)
}

func executeMysqlDelete(opts mysqlQueryInput) error {
	stmt, err := opts.prepare("delete")
	if err != nil {
		return err
	}
	results, err := stmt.Exec(opts.Args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute delete statement: %w (%w)", opts.FnSource, ErrorDeleteFailed, err)
	}
	return opts.checkRowsAffected(results)
}

func isMysqlDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrorDuplicateEntryCode
	}
	return false
}
