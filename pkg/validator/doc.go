// Package validator builds declarative validation rules and aggregates their
// failures into a single error.
//
// A Rule couples a deferred Check with a ValidationError carrying a field
// name, a message and a translation key. Apply runs the rules and returns
// ValidationErrors, which implements error and matches ErrValidationFailed
// with errors.Is.
//
// The bracket rules wrap package brackets so that a bracket sequence can be
// checked alongside other field rules:
//
//	err := validator.Apply(
//	    validator.BracketsOnly("pattern", pattern),
//	    validator.BalancedBrackets("pattern", pattern),
//	    validator.MaxBracketDepth("pattern", pattern, 32),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("pattern") lists the failed messages
//	}
//
// Rules hold no shared state and are safe to build and apply from several
// goroutines.
package validator
