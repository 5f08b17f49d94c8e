package auth

import (
	"strings"
	"testing"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	encoded, err := HashPassword("S0me-Passw0rd!")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("expected an argon2id encoding, got %s", encoded)
	}
	if !ValidatePassword("S0me-Passw0rd!", encoded) {
		t.Errorf("expected the original password to validate")
	}
	if ValidatePassword("not-the-password", encoded) {
		t.Errorf("expected a different password to fail validation")
	}
}

func TestPasswordHashIsSalted(t *testing.T) {
	first, err := HashPassword("S0me-Passw0rd!")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	second, err := HashPassword("S0me-Passw0rd!")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if first == second {
		t.Errorf("expected two hashes of the same password to differ")
	}
}

func TestValidatePasswordMalformedEncoding(t *testing.T) {
	if ValidatePassword("anything", "not-an-encoded-hash") {
		t.Errorf("expected malformed encodings to fail validation")
	}
}
