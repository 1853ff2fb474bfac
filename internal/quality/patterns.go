package quality

import (
	"regexp"
	"strings"
)

// Format validation on name-matched columns. These supplement the semantic
// checks with concrete value-shape rules for contact data.

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s\-().]{8,20}$`)
)

var formatKeywords = map[string][]string{
	"email": {"email", "mail", "courriel"},
	"phone": {"tel", "phone", "mobile", "gsm"},
}

// formatKindFor returns which format rule applies to a column name, or ""
// when none does. Email keywords are checked first so a column like
// "mail_contact" validates as email rather than phone.
func formatKindFor(columnName string) string {
	name := strings.ToLower(columnName)
	for _, kind := range []string{"email", "phone"} {
		for _, kw := range formatKeywords[kind] {
			if strings.Contains(name, kw) {
				return kind
			}
		}
	}
	return ""
}

// validFormat checks one value against a format kind.
func validFormat(kind, value string) bool {
	v := strings.TrimSpace(value)
	switch kind {
	case "email":
		return emailRe.MatchString(strings.ToLower(v))
	case "phone":
		// collapse separators before the length check
		cleaned := strings.Map(func(r rune) rune {
			switch r {
			case ' ', '-', '(', ')', '.':
				return -1
			}
			return r
		}, v)
		if len(cleaned) < 8 {
			return false
		}
		return phoneRe.MatchString(v)
	}
	return false
}
