package validate

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError is a single failed check, attributable to one input field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors collects every failed check from one Apply call. It
// implements error so callers can return it directly.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error is attributed to the field.
func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Fields returns the distinct field names with errors, in first-seen order.
func (fe FieldErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, e := range fe {
		if !seen[e.Field] {
			fields = append(fields, e.Field)
			seen[e.Field] = true
		}
	}
	return fields
}

// Rule is a single check paired with the error to report when it fails.
type Rule struct {
	Check func() bool
	Err   FieldError
}

// Apply runs every rule and returns the accumulated FieldErrors, or nil
// when all checks pass.
func Apply(rules ...Rule) error {
	var fieldErrs FieldErrors
	for _, rule := range rules {
		if !rule.Check() {
			fieldErrs = append(fieldErrs, rule.Err)
		}
	}
	if len(fieldErrs) == 0 {
		return nil
	}
	return fieldErrs
}

// Extract returns the FieldErrors wrapped anywhere in err, or nil.
func Extract(err error) FieldErrors {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return nil
}
