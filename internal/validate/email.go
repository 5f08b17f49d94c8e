package validate

import (
	"regexp"
	"strings"
)

var domainRegex = regexp.MustCompile(
	`^(?i:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)(?:\.(?i:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?))*\.[a-z]{2,}$`,
)

func Email(email string) error {
	if len(email) <= 3 {
		return ErrorEmailMissing
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return ErrorEmailInvalidAt
	}

	user := email[:at]
	domain := email[at+1:]
	if len(domain) == 0 {
		return ErrorEmailEmptyDomain
	}
	if !domainRegex.MatchString(domain) {
		return ErrorEmailDomainInvalid
	}
	if len(user) < 1 || len(user) > 64 {
		return ErrorEmailUserPartLength
	}
	return nil
}
