package models

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type CreateOrgV1Opts struct {
	Db *sql.DB

	Code string
	Name string
	Plan string
}

func (o CreateOrgV1Opts) Validate() error {
	errs := []error{}
	if o.Db == nil {
		errs = append(errs, fmt.Errorf("no database connection supplied"))
	}
	if o.Code == "" {
		errs = append(errs, fmt.Errorf("no org code supplied"))
	}
	if o.Name == "" {
		errs = append(errs, fmt.Errorf("no org name supplied"))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func CreateOrgV1(opts CreateOrgV1Opts) (*Org, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("models.CreateOrgV1: failed to validate input arguments: %w: %w", errorInputValidationFailed, err)
	}
	orgId := uuid.NewString()
	plan := opts.Plan
	if plan == "" {
		plan = "standard"
	}
	if err := executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		INSERT INTO organizations(id, code, name, plan)
			VALUES (?, ?, ?, ?)`,
		Args:         []any{orgId, opts.Code, opts.Name, plan},
		FnSource:     "models.CreateOrgV1",
		RowsAffected: oneRowAffected,
	}); err != nil {
		return nil, err
	}
	return GetOrgV1(GetOrgV1Opts{Db: opts.Db, Id: &orgId})
}
