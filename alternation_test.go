package aocparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAltOrderedChoice(t *testing.T) {
	p := Alt(Exact("foo"), Exact("foobar"))
	// "foo" is tried first and matches, but leaves "bar" unparsed; once the
	// left option has no candidates left, Alt moves on to "foobar". Order
	// decides which option is tried first, not which one may match.
	assert.Equal(t, EitherValue{Right: struct{}{}, IsRight: true}, mustParse(t, p, "foobar"))
	assert.Equal(t, EitherValue{Left: struct{}{}}, mustParse(t, p, "foo"))

	p2 := Alt(Exact("foobar"), Exact("foo"))
	assert.Equal(t, EitherValue{Left: struct{}{}}, mustParse(t, p2, "foobar"))
	assert.Equal(t, EitherValue{Right: struct{}{}, IsRight: true}, mustParse(t, p2, "foo"))
}

func TestAltBacktracksWithinEarlierOption(t *testing.T) {
	p := Seq(Alt(Star(Digit), Exact("x")), Exact("9"))
	assert.Equal(t, EitherValue{Left: []any{1, 2}}, mustParse(t, p, "129"))
}

func TestAltTagsWhichBranchMatched(t *testing.T) {
	p := Alt(Digit, Exact("x"))
	assert.Equal(t, EitherValue{Left: 5}, mustParse(t, p, "5"))
	assert.Equal(t, EitherValue{Right: struct{}{}, IsRight: true}, mustParse(t, p, "x"))
}

func TestAltThreeWayNestsEither(t *testing.T) {
	// Alt(a, b, c) is Alt(a, Alt(b, c)): a third alternative nests one
	// level deeper inside the Right branch.
	p := Alt(Exact("a"), Exact("b"), Exact("c"))
	assert.Equal(t, EitherValue{Left: struct{}{}}, mustParse(t, p, "a"))
	assert.Equal(t, EitherValue{Right: EitherValue{Left: struct{}{}}, IsRight: true}, mustParse(t, p, "b"))
	assert.Equal(t, EitherValue{Right: EitherValue{Right: struct{}{}, IsRight: true}, IsRight: true}, mustParse(t, p, "c"))
}

func TestOpt(t *testing.T) {
	p := Opt(Digit)
	assert.Equal(t, 5, mustParse(t, p, "5"))
	assert.Nil(t, mustParse(t, p, ""))
}
