package models

import (
	"database/sql"
	"errors"
	"fmt"

	"overseer/internal/auth"

	"github.com/google/uuid"
)

type CreateUserV1Opts struct {
	Db *sql.DB

	Email      string
	Password   string
	Role       string
	OrgId      *string
	TotpSecret *string
}

func (o CreateUserV1Opts) Validate() error {
	errs := []error{}
	if o.Db == nil {
		errs = append(errs, fmt.Errorf("no database connection supplied"))
	}
	if o.Email == "" {
		errs = append(errs, fmt.Errorf("no email supplied"))
	}
	if o.Password == "" {
		errs = append(errs, fmt.Errorf("no password supplied"))
	}
	if o.Role == "" {
		errs = append(errs, fmt.Errorf("no role supplied"))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// CreateUserV1 creates an identity account together with its profile
// row and returns the new account's ID.
func CreateUserV1(opts CreateUserV1Opts) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", fmt.Errorf("models.CreateUserV1: failed to validate input arguments: %w: %w", errorInputValidationFailed, err)
	}
	userId := uuid.NewString()
	passwordHash, err := auth.HashPassword(opts.Password)
	if err != nil {
		return "", fmt.Errorf("models.CreateUserV1: failed to hash password: %w", err)
	}
	if err := executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		INSERT INTO users(id, email, password_hash, totp_secret)
			VALUES (?, ?, ?, ?)`,
		Args:         []any{userId, opts.Email, passwordHash, opts.TotpSecret},
		FnSource:     "models.CreateUserV1",
		RowsAffected: oneRowAffected,
	}); err != nil {
		return "", err
	}
	if err := executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		INSERT INTO user_profiles(user_id, role, current_organization_id)
			VALUES (?, ?, ?)`,
		Args:         []any{userId, opts.Role, opts.OrgId},
		FnSource:     "models.CreateUserV1",
		RowsAffected: oneRowAffected,
	}); err != nil {
		return "", err
	}
	return userId, nil
}
