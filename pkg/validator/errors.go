package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnbalancedBrackets is the message of a failed BalancedBrackets rule.
	ErrUnbalancedBrackets = errors.New("brackets are not balanced")

	// ErrNotBracketsOnly is the message of a failed BracketsOnly rule.
	ErrNotBracketsOnly = errors.New("must contain only bracket symbols")
)
