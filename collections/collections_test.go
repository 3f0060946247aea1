package collections

import (
	"testing"

	"github.com/jorendorff/aocparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, p aocparse.Parser, source string) any {
	t.Helper()
	v, err := aocparse.Parse(p, source)
	require.NoError(t, err)
	return v
}

func lineEntries() aocparse.Parser {
	letter := aocparse.Alpha
	number := aocparse.RegexLeaf(`[0-9]+`, "u64", func(s string) (any, error) {
		n := 0
		for _, c := range s {
			n = n*10 + int(c-'0')
		}
		return n, nil
	})
	return aocparse.Lines(aocparse.SeqAll(letter, aocparse.Exact(" = "), number))
}

func TestHashMap(t *testing.T) {
	p := HashMap[rune, int](lineEntries())
	result := mustParse(t, p, "X = 33\nY = 75\n").(map[rune]int)
	assert.Equal(t, 33, result['X'])
	assert.Equal(t, 75, result['Y'])
}

func TestHashSet(t *testing.T) {
	p := HashSet[rune](aocparse.Plus(aocparse.Alpha))
	result := mustParse(t, p, "xZjZZd").(map[rune]struct{})
	assert.Len(t, result, 4)
	_, ok := result['x']
	assert.True(t, ok)
	_, ok = result['r']
	assert.False(t, ok)
}

func TestBTreeMap(t *testing.T) {
	p := BTreeMap[rune, int](lineEntries())
	result := mustParse(t, p, "Y = 75\nX = 33\n").(*OrderedMap[rune, int])
	assert.Equal(t, []rune{'X', 'Y'}, result.Keys())
	v, ok := result.Get('X')
	assert.True(t, ok)
	assert.Equal(t, 33, v)
}

func TestBTreeSet(t *testing.T) {
	p := BTreeSet[rune](aocparse.Plus(aocparse.Alpha))
	result := mustParse(t, p, "dbca").(*OrderedSet[rune])
	assert.Equal(t, []rune{'a', 'b', 'c', 'd'}, result.Values())
	assert.True(t, result.Contains('c'))
	assert.False(t, result.Contains('z'))
}

func TestVecDeque(t *testing.T) {
	p := VecDeque[rune](aocparse.Plus(aocparse.Alpha))
	result := mustParse(t, p, "abc").(*Deque[rune])
	assert.Equal(t, []rune{'a', 'b', 'c'}, result.Values())
}
