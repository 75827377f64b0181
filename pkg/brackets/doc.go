// Package brackets validates that a string is a correctly nested sequence of
// parentheses, curly braces and square brackets.
//
// A Validator keeps a stack of opening symbols that have not been closed yet.
// Check scans the input once: an opener is pushed, a closer must match the
// opener on top of the stack, and any other rune rejects the whole input
// immediately. The input is valid when the scan ends with an empty stack.
//
//	v := brackets.New()
//	v.Check("([{}])")   // true
//	v.Check("([)]")     // false
//	v.Check("(((()")    // false
//	v.Pending()         // "((("
//
// Check never returns an error; every failure is reported as false. It does
// not say where or why a sequence failed.
//
// # Concurrency
//
// A Validator is not safe for concurrent use. The package-level Check creates
// a fresh Validator per call, and CheckAll runs one Validator per input in its
// own goroutine.
package brackets
