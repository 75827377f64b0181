package brackets

// Validator checks bracket sequences using a stack of pending opening symbols.
// The zero value is ready to use. A Validator is not safe for concurrent use;
// give each goroutine its own instance.
type Validator struct {
	stack []rune
}

// New creates a Validator with an empty stack.
func New() *Validator {
	return &Validator{}
}

// Check reports whether every bracket in input is closed by the matching
// symbol in the right order and nothing is left open at the end.
// Any rune other than ()[]{} makes the whole input invalid.
//
// The stack is reset when the call starts. What remains afterwards depends on
// how the scan ended and can be inspected with Pending: unclosed openers stay
// on the stack, an unrecognized rune clears it, and a mismatch leaves the
// partial state at the point of failure.
func (v *Validator) Check(input string) bool {
	v.Reset()

	for _, r := range input {
		switch {
		case IsOpening(r):
			v.push(r)
		case IsClosing(r):
			opener, ok := v.pop()
			if !ok {
				return false
			}
			if !matches(opener, r) {
				return false
			}
		default:
			v.clear()
			return false
		}
	}

	return v.isEmpty()
}

// Pending returns the openers left on the stack by the last Check,
// bottom first. The result is a copy.
func (v *Validator) Pending() string {
	return string(v.stack)
}

// Reset empties the stack while keeping its capacity.
func (v *Validator) Reset() {
	v.stack = v.stack[:0]
}

// Check validates input with a fresh Validator.
func Check(input string) bool {
	return New().Check(input)
}

func (v *Validator) push(r rune) {
	v.stack = append(v.stack, r)
}

// pop removes the top of the stack; ok is false when the stack is empty.
func (v *Validator) pop() (r rune, ok bool) {
	n := len(v.stack) - 1
	if n < 0 {
		return 0, false
	}
	r = v.stack[n]
	v.stack = v.stack[:n]
	return r, true
}

// clear drops the backing array, unlike Reset.
func (v *Validator) clear() {
	v.stack = nil
}

func (v *Validator) isEmpty() bool {
	return len(v.stack) == 0
}
