package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
)

func TestTotpSeedValidation(t *testing.T) {
	seed, err := CreateTotpSeed("overseer", "operator@example.com")
	if err != nil {
		t.Fatalf("CreateTotpSeed returned error: %v", err)
	}
	code, err := totp.GenerateCodeCustom(seed, time.Now().UTC(), totpOpts)
	if err != nil {
		t.Fatalf("GenerateCodeCustom returned error: %v", err)
	}
	ok, err := ValidateTotpToken(seed, code)
	if err != nil {
		t.Fatalf("ValidateTotpToken returned error: %v", err)
	}
	if !ok {
		t.Errorf("expected a freshly generated code to validate")
	}
	ok, _ = ValidateTotpToken(seed, "000000")
	if ok {
		t.Errorf("expected a bogus code to fail validation")
	}
}

func TestGetTotpUrl(t *testing.T) {
	url := GetTotpUrl("overseer", "operator@example.com", "somesecret")
	if !strings.HasPrefix(url, "otpauth://totp/") {
		t.Errorf("expected an otpauth url, got %s", url)
	}
	if !strings.Contains(url, "secret=SOMESECRET") {
		t.Errorf("expected the secret to be uppercased in url %s", url)
	}
	if !strings.Contains(url, "issuer=overseer") {
		t.Errorf("expected the issuer in url %s", url)
	}
}
