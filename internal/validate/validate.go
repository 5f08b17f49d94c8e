package validate

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrorEmailEmptyDomain    = errors.New("email_empty_domain")
	ErrorEmailDomainInvalid  = errors.New("email_domain_invalid")
	ErrorEmailInvalidAt      = errors.New("email_invalid_at")
	ErrorEmailMissing        = errors.New("email_missing")
	ErrorEmailUserPartLength = errors.New("email_user_part_invalid_length")

	ErrorNoDigit           = errors.New("no_digit")
	ErrorNoLowercase       = errors.New("no_lowercase")
	ErrorNoSymbol          = errors.New("no_symbol")
	ErrorNoUppercase       = errors.New("no_uppercase")
	ErrorNotLatinAlnum     = errors.New("not_latin_alphanumeric")
	ErrorStringTooLong     = errors.New("string_too_long")
	ErrorStringTooShort    = errors.New("string_too_short")
	ErrorSymbolNotAllowed  = errors.New("symbol_not_allowed")
	ErrorInvalidBoundaries = errors.New("invalid_boundary_characters")

	ErrorInvalidUuid = errors.New("invalid_uuid")
)

// StringRule evaluates a single constraint on its input, returning a
// sentinel error when the constraint is violated.
type StringRule func(string) error

func all(rules ...StringRule) StringRule {
	return func(s string) error {
		errs := []error{}
		for _, rule := range rules {
			if err := rule(s); err != nil {
				errs = append(errs, err)
			}
		}
		if len(errs) > 0 {
			return errors.Join(errs...)
		}
		return nil
	}
}

func hasMinLength(l int) StringRule {
	return func(s string) error {
		if len(s) < l {
			return ErrorStringTooShort
		}
		return nil
	}
}

func hasMaxLength(l int) StringRule {
	return func(s string) error {
		if len(s) > l {
			return ErrorStringTooLong
		}
		return nil
	}
}

func hasUppercase() StringRule {
	return containsRune(unicode.IsUpper, ErrorNoUppercase)
}

func hasLowercase() StringRule {
	return containsRune(unicode.IsLower, ErrorNoLowercase)
}

func hasDigit() StringRule {
	return containsRune(unicode.IsDigit, ErrorNoDigit)
}

func hasSymbol() StringRule {
	return containsRune(func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}, ErrorNoSymbol)
}

func containsRune(match func(rune) bool, onMissing error) StringRule {
	return func(s string) error {
		for _, r := range s {
			if match(r) {
				return nil
			}
		}
		return onMissing
	}
}

func isLatinAlnumWith(allowed ...rune) StringRule {
	return func(s string) error {
		for _, r := range s {
			if r >= 'a' && r <= 'z' {
				continue
			}
			if r >= 'A' && r <= 'Z' {
				continue
			}
			if r >= '0' && r <= '9' {
				continue
			}
			if strings.ContainsRune(string(allowed), r) {
				continue
			}
			return ErrorNotLatinAlnum
		}
		return nil
	}
}

func hasAlnumBoundaries() StringRule {
	return func(s string) error {
		if len(s) == 0 {
			return nil
		}
		runes := []rune(s)
		first, last := runes[0], runes[len(runes)-1]
		for _, r := range []rune{first, last} {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return ErrorInvalidBoundaries
			}
		}
		return nil
	}
}
