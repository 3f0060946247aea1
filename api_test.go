package aocparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullMatchRequired(t *testing.T) {
	_, err := Parse(Exact("ab"), "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected extra text")
}

// TestForemostErrorSurvivesBacktrack is the ":wq" example: line(u32)+
// successfully matches the first 3 lines, backtracking away the 4th
// line's failure, but the foremost error (from trying to parse "4:wq" as
// a u32) is still the one reported, not a generic "extra text" message
// about the point the successful match stopped.
func TestForemostErrorSurvivesBacktrack(t *testing.T) {
	p := Plus(Line(U32Test()))
	source := "1\n2\n3\n4:wq\n5\n"
	_, err := Parse(p, source)
	require.Error(t, err)
	assert.Equal(t, "matched part of the line, but not all of it at line 4 column 2", err.Error())
}

func TestParseAsTypeAssertion(t *testing.T) {
	n, err := ParseAs[int](U32Test(), "42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}
