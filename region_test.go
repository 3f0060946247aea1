package aocparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineNewlineHandling(t *testing.T) {
	p := Line(Exact("hello world"))
	assert.Equal(t, struct{}{}, mustParse(t, p, "hello world\n"))
	assert.Equal(t, struct{}{}, mustParse(t, p, "hello world"))
	_, err := Parse(p, "hello world\n\n")
	require.Error(t, err)

	p2 := Seq(Line(Exact("dog")), Line(Exact("cat")))
	_, err = Parse(p2, "dog\n")
	require.Error(t, err)
	_, err = Parse(p2, "dogcat")
	require.Error(t, err)
	assert.Equal(t, struct{}{}, mustParse(t, p2, "dog\ncat"))
	assert.Equal(t, struct{}{}, mustParse(t, p2, "dog\ncat\n"))
}

func TestSectionBasics(t *testing.T) {
	p := Section(Plus(Line(U32Test())))
	_, err := Parse(p, "15\n16\n\n\n")
	require.Error(t, err)
	assert.Equal(t, []any{15, 16}, mustParse(t, p, "15\n16\n\n"))
	assert.Equal(t, []any{15, 16}, mustParse(t, p, "15\n16\n"))
	assert.Equal(t, []any{15, 16}, mustParse(t, p, "15\n16"))

	p2 := Seq(Section(Line(Exact("sec1"))), Section(Line(Exact("sec2"))))
	assert.Equal(t, struct{}{}, mustParse(t, p2, "sec1\n\nsec2\n\n"))
	assert.Equal(t, struct{}{}, mustParse(t, p2, "sec1\n\nsec2\n"))
	assert.Equal(t, struct{}{}, mustParse(t, p2, "sec1\n\nsec2"))
	for _, bad := range []string{"sec1\nsec2\n\n", "sec1\nsec2\n", "sec1\nsec2", "sec1sec2\n\n"} {
		_, err := Parse(p2, bad)
		require.Error(t, err, bad)
	}
}

func TestLinesAndSections(t *testing.T) {
	p := Lines(RepeatSep(Digit, Exact(" ")))
	assert.Equal(t, []any{[]any{1, 2, 3}, []any{4, 5, 6}}, mustParse(t, p, "1 2 3\n4 5 6\n"))

	// An empty source has zero sections, not an error (decided open
	// question: find_end's "start < source.len()" branch never fires for
	// an empty remainder, so the star around section(...) just stops).
	assert.Equal(t, []any{}, mustParse(t, Sections(Line(Exact("x"))), ""))
}

// U32Test avoids importing the numeric subpackage from the core package's
// tests (which would be a cyclic import); it's a tiny regex-backed stand-in
// for numeric.U32, shared by this package's tests. Unlike numeric.U32 it
// produces an int and does no overflow check.
func U32Test() Parser {
	return RegexLeaf(`[0-9]+`, "u32", func(s string) (any, error) {
		n := 0
		for _, c := range s {
			n = n*10 + int(c-'0')
		}
		return n, nil
	})
}
