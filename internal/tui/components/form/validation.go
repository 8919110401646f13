package form

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldValidation holds runtime validation rules for a text field.
type FieldValidation struct {
	Required  bool
	MaxLength int
	Pattern   *regexp.Regexp
}

// ValidateText checks a text value against the validation rules. Lengths are
// counted in runes; Required ignores surrounding whitespace.
func (v FieldValidation) ValidateText(value string) string {
	if v.Required && strings.TrimSpace(value) == "" {
		return "required"
	}
	if value == "" {
		return ""
	}
	if v.MaxLength > 0 && utf8.RuneCountInString(value) > v.MaxLength {
		return fmt.Sprintf("maximum %d characters", v.MaxLength)
	}
	if v.Pattern != nil && !v.Pattern.MatchString(value) {
		return fmt.Sprintf("must match pattern: %s", v.Pattern.String())
	}
	return ""
}
