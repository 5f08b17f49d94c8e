package models

import (
	"fmt"
	"time"

	"overseer/internal/auth"

	"github.com/google/uuid"
)

// User is an identity account. The account row owns the credentials;
// role and organisation membership live on the UserProfile.
type User struct {
	Id           *string      `json:"id"`
	Email        string       `json:"email"`
	PasswordHash *string      `json:"-"`
	TotpSecret   *string      `json:"-"`
	CreatedAt    time.Time    `json:"createdAt"`
	Profile      *UserProfile `json:"profile,omitempty"`
}

func (u User) GetId() string {
	if u.Id == nil {
		return ""
	}
	return *u.Id
}

func (u User) assertIdDefined() error {
	if u.Id == nil {
		return fmt.Errorf("id undefined: %w", errorInputValidationFailed)
	} else if _, err := uuid.Parse(*u.Id); err != nil {
		return fmt.Errorf("id not uuid: %w", errorInputValidationFailed)
	}
	return nil
}

// ValidatePasswordV1 checks a candidate password against the stored
// hash, returning ErrorCredentialsAuthenticationFailed on mismatch.
func (u User) ValidatePasswordV1(password string) error {
	if u.PasswordHash == nil {
		return fmt.Errorf("password hash not loaded: %w", errorInputValidationFailed)
	}
	if !auth.ValidatePassword(password, *u.PasswordHash) {
		return ErrorCredentialsAuthenticationFailed
	}
	return nil
}

// ValidateTotpV1 checks a candidate totp code when the account is
// enrolled; accounts without a seeded secret pass unconditionally. An
// enrolled account with no code supplied fails with
// ErrorMfaTokenRequired so callers can re-prompt.
func (u User) ValidateTotpV1(token string) error {
	if u.TotpSecret == nil || *u.TotpSecret == "" {
		return nil
	}
	if token == "" {
		return ErrorMfaTokenRequired
	}
	isValid, err := auth.ValidateTotpToken(*u.TotpSecret, token)
	if err != nil {
		return fmt.Errorf("models.User.ValidateTotpV1: %w: %w", ErrorMfaAuthenticationFailed, err)
	}
	if !isValid {
		return ErrorMfaAuthenticationFailed
	}
	return nil
}
