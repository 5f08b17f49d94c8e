package validate

import (
	"errors"
	"testing"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"operator@example.com",
		"a.b+tag@sub.example.co",
	}
	for _, email := range valid {
		if err := Email(email); err != nil {
			t.Errorf("expected email[%s] to be valid, got %v", email, err)
		}
	}

	invalid := map[string]error{
		"":                      ErrorEmailMissing,
		"ab":                    ErrorEmailMissing,
		"no-at-sign.com":        ErrorEmailInvalidAt,
		"two@@example.com":      ErrorEmailInvalidAt,
		"user@":                 ErrorEmailEmptyDomain,
		"user@nodot":            ErrorEmailDomainInvalid,
		"user@-bad-.example.sg": ErrorEmailDomainInvalid,
	}
	for email, expected := range invalid {
		err := Email(email)
		if err == nil {
			t.Errorf("expected email[%s] to be invalid", email)
			continue
		}
		if !errors.Is(err, expected) {
			t.Errorf("expected email[%s] to fail with %v, got %v", email, expected, err)
		}
	}
}

func TestPassword(t *testing.T) {
	if err := Password("C0rrect-horse-battery"); err != nil {
		t.Errorf("expected password to be valid, got %v", err)
	}

	cases := map[string]error{
		"Sh0rt-pw":              ErrorStringTooShort,
		"all-lowercase-0nly":    ErrorNoUppercase,
		"ALL-UPPERCASE-0NLY":    ErrorNoLowercase,
		"No-Digits-In-Here":     ErrorNoDigit,
		"NoSymbolsInHere0Again": ErrorNoSymbol,
	}
	for password, expected := range cases {
		err := Password(password)
		if err == nil {
			t.Errorf("expected password[%s] to be invalid", password)
			continue
		}
		if !errors.Is(err, expected) {
			t.Errorf("expected password[%s] to fail with %v, got %v", password, expected, err)
		}
	}
}

func TestUuid(t *testing.T) {
	if err := Uuid("3725aadb-9a77-4a42-9bc4-bc82b1a842bc"); err != nil {
		t.Errorf("expected uuid to be valid, got %v", err)
	}
	for _, input := range []string{"", "not-a-uuid", "3725aadb-9a77-4a42-9bc4"} {
		if err := Uuid(input); !errors.Is(err, ErrorInvalidUuid) {
			t.Errorf("expected input[%s] to fail with %v, got %v", input, ErrorInvalidUuid, err)
		}
	}
}

func TestFlagKey(t *testing.T) {
	valid := []string{
		"billing.invoices_v2",
		"search-beta",
		"x2",
	}
	for _, flagKey := range valid {
		if err := FlagKey(flagKey); err != nil {
			t.Errorf("expected flag key[%s] to be valid, got %v", flagKey, err)
		}
	}

	cases := map[string]error{
		"a":             ErrorStringTooShort,
		".leading-dot":  ErrorInvalidBoundaries,
		"trailing-dot.": ErrorInvalidBoundaries,
		"has spaces":    ErrorNotLatinAlnum,
		"has/slash":     ErrorNotLatinAlnum,
	}
	for flagKey, expected := range cases {
		err := FlagKey(flagKey)
		if err == nil {
			t.Errorf("expected flag key[%s] to be invalid", flagKey)
			continue
		}
		if !errors.Is(err, expected) {
			t.Errorf("expected flag key[%s] to fail with %v, got %v", flagKey, expected, err)
		}
	}
}
