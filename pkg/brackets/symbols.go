package brackets

// openers maps every closing symbol to the opening symbol of the same pair.
var openers = map[rune]rune{
	')': '(',
	'}': '{',
	']': '[',
}

// IsOpening reports whether r is one of the recognized opening symbols.
func IsOpening(r rune) bool {
	switch r {
	case '(', '{', '[':
		return true
	}
	return false
}

// IsClosing reports whether r is one of the recognized closing symbols.
func IsClosing(r rune) bool {
	_, ok := openers[r]
	return ok
}

// matches reports whether closer terminates a pair started by opener.
func matches(opener, closer rune) bool {
	want, ok := openers[closer]
	return ok && want == opener
}
