package numeric

import (
	"math/big"
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

func TestUnsignedIntegers(t *testing.T) {
	assert.Equal(t, uint8(255), mustParse(t, U8, "255"))
	_, err := aocparse.Parse(U8, "256")
	require.Error(t, err)
	assert.Equal(t, uint32(4294967295), mustParse(t, U32, "4294967295"))
}

func TestSignedIntegers(t *testing.T) {
	assert.Equal(t, int32(-1), mustParse(t, I32, "-1"))
	assert.Equal(t, int8(-128), mustParse(t, I8, "-128"))
	_, err := aocparse.Parse(I8, "-129")
	require.Error(t, err)
}

func TestHexIntegers(t *testing.T) {
	_, err := aocparse.Parse(I32Hex, "+")
	require.Error(t, err)
	assert.Equal(t, int32(0x7bcdef01), mustParse(t, I32Hex, "7BCDEF01"))
	assert.Equal(t, int32(2147483647), mustParse(t, I32Hex, "7fffffff"))
	_, err = aocparse.Parse(I32Hex, "80000000")
	require.Error(t, err)
	assert.Equal(t, int32(-2147483648), mustParse(t, I32Hex, "-80000000"))

	assert.Equal(t, uint32(4294967295), mustParse(t, U32Hex, "ffffffff"))
}

func TestBigIntegers(t *testing.T) {
	v := mustParse(t, U128, "340282366920938463463374607431768211455").(*big.Int)
	want, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	assert.Equal(t, 0, v.Cmp(want))

	_, err := aocparse.Parse(U128, "340282366920938463463374607431768211456")
	require.Error(t, err)

	big1 := mustParse(t, BigUint, "123456789012345678901234567890").(*big.Int)
	want2, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	assert.Equal(t, 0, big1.Cmp(want2))
}

func TestFloats(t *testing.T) {
	assert.InDelta(t, 3.14, mustParse(t, F64, "3.14").(float64), 1e-9)
	assert.InDelta(t, 2.5, mustParse(t, F64, "2.5e0").(float64), 1e-9)
}

func TestBool(t *testing.T) {
	assert.Equal(t, true, mustParse(t, Bool, "true"))
	assert.Equal(t, false, mustParse(t, Bool, "false"))
	// Anchored: must match from the start, not somewhere in the middle.
	_, err := aocparse.Parse(Bool, "xtrue")
	require.Error(t, err)
}
