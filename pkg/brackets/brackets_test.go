package brackets_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brackets/pkg/brackets"
)

func TestValidator_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "empty input", input: "", expected: true},
		{name: "single pair", input: "()", expected: true},
		{name: "deep parentheses", input: "(((())))", expected: true},
		{name: "all pair types nested", input: "([{}])", expected: true},
		{name: "siblings", input: "()[]{}", expected: true},
		{name: "mixed siblings and nesting", input: "{[()()]}([])", expected: true},
		{name: "letter inside brackets", input: "((((x))))", expected: false},
		{name: "cyrillic letter inside brackets", input: "((((ы))))", expected: false},
		{name: "space between pairs", input: "() ()", expected: false},
		{name: "only a letter", input: "a", expected: false},
		{name: "unclosed at end", input: "(((()", expected: false},
		{name: "single opener", input: "[", expected: false},
		{name: "closer before opener", input: ")(", expected: false},
		{name: "lone closer", input: "}", expected: false},
		{name: "extra closer after balanced prefix", input: "())", expected: false},
		{name: "interleaved pairs", input: "([)]", expected: false},
		{name: "wrong closer type", input: "(]", expected: false},
		{name: "angle brackets are not recognized", input: "<>", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := brackets.New()
			assert.Equal(t, tt.expected, v.Check(tt.input))
		})
	}
}

func TestValidator_ZeroValue(t *testing.T) {
	t.Parallel()

	var v brackets.Validator
	assert.True(t, v.Check("{[]}"))
	assert.False(t, v.Check("{["))
	assert.Equal(t, "{[", v.Pending())
}

func TestValidator_Pending(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		pending string
	}{
		{name: "valid input leaves nothing", input: "([{}])", pending: ""},
		{name: "unclosed openers stay on the stack", input: "(((()", pending: "((("},
		{name: "unrecognized rune clears the stack", input: "((((x))))", pending: ""},
		{name: "unrecognized rune after openers", input: "([{ ", pending: ""},
		{name: "mismatch keeps partial state", input: "(([)", pending: "(("},
		{name: "interleaved pairs keep outer opener", input: "([)]", pending: "("},
		{name: "underflow leaves empty stack", input: ")(", pending: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := brackets.New()
			v.Check(tt.input)
			assert.Equal(t, tt.pending, v.Pending())
		})
	}
}

func TestValidator_Reuse(t *testing.T) {
	t.Parallel()

	t.Run("reference sequence on one instance", func(t *testing.T) {
		t.Parallel()
		v := brackets.New()

		assert.False(t, v.Check("((((x))))"))
		assert.True(t, v.Check("(((())))"))
		assert.Equal(t, "", v.Pending())
		assert.False(t, v.Check("(((()"))
		assert.Equal(t, "(((", v.Pending())
	})

	t.Run("leftover openers do not satisfy the next input", func(t *testing.T) {
		t.Parallel()
		v := brackets.New()

		require.False(t, v.Check("((("))
		assert.False(t, v.Check(")))"))
	})

	t.Run("failed call does not poison a valid one", func(t *testing.T) {
		t.Parallel()
		v := brackets.New()

		require.False(t, v.Check("([)]"))
		assert.True(t, v.Check(""))
		assert.True(t, v.Check("[]"))
	})

	t.Run("results match a fresh instance", func(t *testing.T) {
		t.Parallel()
		inputs := []string{"(((()", "}", "([{}])", "([)]", "ab", "", "{{}}", "(("}
		shared := brackets.New()
		for _, in := range inputs {
			assert.Equal(t, brackets.Check(in), shared.Check(in), "input %q", in)
		}
	})
}

func TestValidator_Reset(t *testing.T) {
	t.Parallel()

	v := brackets.New()
	require.False(t, v.Check("{{"))
	require.Equal(t, "{{", v.Pending())

	v.Reset()
	assert.Empty(t, v.Pending())
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	for _, r := range "({[" {
		assert.True(t, brackets.IsOpening(r), "%q", r)
		assert.False(t, brackets.IsClosing(r), "%q", r)
	}
	for _, r := range ")}]" {
		assert.True(t, brackets.IsClosing(r), "%q", r)
		assert.False(t, brackets.IsOpening(r), "%q", r)
	}
	for _, r := range "<>x 1\n" {
		assert.False(t, brackets.IsOpening(r), "%q", r)
		assert.False(t, brackets.IsClosing(r), "%q", r)
	}
}

func TestCheck_Properties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))

	t.Run("well nested sequences are valid", func(t *testing.T) {
		for range 200 {
			s := nested(rng, rng.IntN(8))
			assert.True(t, brackets.Check(s), "input %q", s)
		}
	})

	t.Run("a foreign rune anywhere invalidates", func(t *testing.T) {
		for range 200 {
			s := nested(rng, 1+rng.IntN(8))
			at := rng.IntN(len(s) + 1)
			s = s[:at] + "x" + s[at:]
			assert.False(t, brackets.Check(s), "input %q", s)
		}
	})

	t.Run("dropping the final closer leaves brackets open", func(t *testing.T) {
		for range 200 {
			s := nested(rng, 1+rng.IntN(8))
			s = s[:len(s)-1]
			assert.False(t, brackets.Check(s), "input %q", s)
		}
	})

	t.Run("a leading closer underflows", func(t *testing.T) {
		for range 200 {
			s := nested(rng, rng.IntN(8))
			closer := string(")}]"[rng.IntN(3)])
			assert.False(t, brackets.Check(closer+s), "input %q", closer+s)
		}
	})
}

// nested builds a random well nested sequence with the given number of pairs.
func nested(rng *rand.Rand, pairs int) string {
	const openSyms, closeSyms = "({[", ")}]"
	var sb strings.Builder
	var stack []byte
	for opened := 0; opened < pairs || len(stack) > 0; {
		if opened < pairs && (len(stack) == 0 || rng.IntN(2) == 0) {
			i := rng.IntN(len(openSyms))
			sb.WriteByte(openSyms[i])
			stack = append(stack, closeSyms[i])
			opened++
			continue
		}
		sb.WriteByte(stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return sb.String()
}

func BenchmarkValidator_Check(b *testing.B) {
	input := strings.Repeat("([{", 1000) + strings.Repeat("}])", 1000)
	v := brackets.New()

	for b.Loop() {
		v.Check(input)
	}
}
