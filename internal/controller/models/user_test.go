package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"overseer/internal/auth"
	"overseer/internal/cache"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

func TestUserValidateTotpV1NotEnrolled(t *testing.T) {
	user := User{}
	if err := user.ValidateTotpV1(""); err != nil {
		t.Errorf("expected accounts without a totp secret to pass, got %v", err)
	}
	emptySecret := ""
	user.TotpSecret = &emptySecret
	if err := user.ValidateTotpV1("123456"); err != nil {
		t.Errorf("expected accounts with an empty totp secret to pass, got %v", err)
	}
}

func TestUserValidateTotpV1Enrolled(t *testing.T) {
	seed, err := auth.CreateTotpSeed("overseer", "operator@example.com")
	if err != nil {
		t.Fatalf("CreateTotpSeed returned error: %v", err)
	}
	user := User{TotpSecret: &seed}

	if err := user.ValidateTotpV1(""); !errors.Is(err, ErrorMfaTokenRequired) {
		t.Errorf("expected a missing code to fail with %v, got %v", ErrorMfaTokenRequired, err)
	}
	if err := user.ValidateTotpV1("000000"); !errors.Is(err, ErrorMfaAuthenticationFailed) {
		t.Errorf("expected a bogus code to fail with %v, got %v", ErrorMfaAuthenticationFailed, err)
	}

	code, err := totp.GenerateCodeCustom(seed, time.Now().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    6,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		t.Fatalf("GenerateCodeCustom returned error: %v", err)
	}
	if err := user.ValidateTotpV1(code); err != nil {
		t.Errorf("expected a freshly generated code to pass, got %v", err)
	}
}

func TestUserRevokeSessionsV1(t *testing.T) {
	cache.InitMemory()
	userId := uuid.NewString()
	otherUserId := uuid.NewString()
	keys := []string{
		strings.Join([]string{"session", userId, "s1"}, ":"),
		strings.Join([]string{"session", userId, "s2"}, ":"),
		strings.Join([]string{"session", otherUserId, "s3"}, ":"),
	}
	for _, key := range keys {
		if err := cache.Get().Set(key, "token", time.Minute); err != nil {
			t.Fatalf("Set returned error: %v", err)
		}
	}

	user := User{Id: &userId}
	if err := user.RevokeSessionsV1("session"); err != nil {
		t.Fatalf("RevokeSessionsV1 returned error: %v", err)
	}
	for _, key := range keys[:2] {
		if _, err := cache.Get().Get(key); err == nil {
			t.Errorf("expected key[%s] to be revoked", key)
		}
	}
	if _, err := cache.Get().Get(keys[2]); err != nil {
		t.Errorf("expected another account's session to survive, got %v", err)
	}
}
