package validate

import (
	"fmt"
	"net/mail"
	"strings"
)

// Required fails on empty or whitespace-only strings.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Err: FieldError{Field: field, Message: "is required"},
	}
}

// MinLen fails when the value is shorter than min bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Err: FieldError{Field: field, Message: fmt.Sprintf("must be at least %d characters", min)},
	}
}

// MaxLen fails when the value is longer than max bytes.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Err: FieldError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)},
	}
}

// Email fails unless the value is a plain addr-spec usable as a login
// identifier. Display names and angle brackets are rejected.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			trimmed := strings.TrimSpace(value)
			if trimmed == "" || trimmed != value {
				return false
			}
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}
			at := strings.LastIndex(addr.Address, "@")
			return at > 0 && strings.Contains(addr.Address[at+1:], ".")
		},
		Err: FieldError{Field: field, Message: "must be a valid email address"},
	}
}
