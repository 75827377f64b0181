package validator

import (
	"fmt"

	"github.com/dmitrymomot/brackets/pkg/brackets"
)

// BalancedBrackets validates that value is a correctly nested bracket sequence.
// An empty value passes.
func BalancedBrackets(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return brackets.Check(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        ErrUnbalancedBrackets.Error(),
			TranslationKey: "validation.balanced_brackets",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// BracketsOnly validates that value has no runes besides ()[]{}.
// Nesting is not checked.
func BracketsOnly(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, r := range value {
				if !brackets.IsOpening(r) && !brackets.IsClosing(r) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        ErrNotBracketsOnly.Error(),
			TranslationKey: "validation.brackets_only",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxBracketDepth validates that no bracket in value is nested deeper than max.
// Runes other than brackets are ignored, and closers only lower the depth.
func MaxBracketDepth(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			depth := 0
			for _, r := range value {
				switch {
				case brackets.IsOpening(r):
					depth++
					if depth > max {
						return false
					}
				case brackets.IsClosing(r) && depth > 0:
					depth--
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not nest brackets deeper than %d", max),
			TranslationKey: "validation.max_bracket_depth",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
