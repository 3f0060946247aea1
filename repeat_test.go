package aocparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarPlus(t *testing.T) {
	p := Star(Exact("a"))
	assert.Equal(t, []any{}, mustParse(t, p, ""))
	assert.Equal(t, []any{struct{}{}}, mustParse(t, p, "a"))
	assert.Equal(t, []any{struct{}{}, struct{}{}}, mustParse(t, p, "aa"))
	_, err := Parse(p, "b")
	require.Error(t, err)

	plus := Plus(Exact("a"))
	_, err = Parse(plus, "")
	require.Error(t, err)
	assert.Equal(t, []any{struct{}{}}, mustParse(t, plus, "a"))
}

func TestRepeatSep(t *testing.T) {
	p := RepeatSep(Exact("cow"), Exact(","))
	assert.Equal(t, []any{}, mustParse(t, p, ""))
	assert.Equal(t, []any{struct{}{}}, mustParse(t, p, "cow"))
	assert.Equal(t, []any{struct{}{}, struct{}{}}, mustParse(t, p, "cow,cow"))
	for _, bad := range []string{"cowcow", "cow,", "cow,,cow", "cow,cow,", ","} {
		_, err := Parse(p, bad)
		require.Error(t, err, bad)
	}
}

func TestRepeatSepValues(t *testing.T) {
	p := RepeatSep(Digit, Exact(","))
	assert.Equal(t, []any{1, 4, 0, 3}, mustParse(t, p, "1,4,0,3"))
}

func TestRepeatN(t *testing.T) {
	p := RepeatN(Digit, 3)
	assert.Equal(t, []any{1, 2, 3}, mustParse(t, p, "123"))
	_, err := Parse(p, "12")
	require.Error(t, err)
	_, err = Parse(p, "1234")
	require.Error(t, err)
}

func TestRepeatSepTerminator(t *testing.T) {
	p := RepeatSepTerminator(Digit, Exact(";"))
	assert.Equal(t, []any{1, 2}, mustParse(t, p, "1;2;"))
	_, err := Parse(p, "1;2")
	require.Error(t, err)
}
