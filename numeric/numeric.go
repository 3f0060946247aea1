// Package numeric provides the numeric leaf parsers: fixed-width
// integers (u8..u64, i8..i64, and their _bin/_hex variants),
// arbitrary-precision integers (u128/i128, BigUint/BigInt), floats, and
// booleans, each built as a thin regex-plus-conversion wrapper over the
// core engine's RegexLeaf primitive, retargeted to Go's strconv and
// math/big for the actual numeric conversion.
package numeric

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/jorendorff/aocparse"
)

func uintLeaf(pattern string, base, bitSize int, typeName string, cast func(uint64) any) aocparse.Parser {
	return aocparse.RegexLeaf(pattern, typeName, func(s string) (any, error) {
		v, err := strconv.ParseUint(s, base, bitSize)
		if err != nil {
			return nil, err
		}
		return cast(v), nil
	})
}

func intLeaf(pattern string, base, bitSize int, typeName string, cast func(int64) any) aocparse.Parser {
	return aocparse.RegexLeaf(pattern, typeName, func(s string) (any, error) {
		v, err := strconv.ParseInt(s, base, bitSize)
		if err != nil {
			return nil, err
		}
		return cast(v), nil
	})
}

const (
	uintPattern   = `[0-9]+`
	intPattern    = `[+-]?[0-9]+`
	binPattern    = `[01]+`
	intBinPattern = `[+-]?[01]+`
	hexPattern    = `[0-9A-Fa-f]+`
	intHexPattern = `[+-]?[0-9A-Fa-f]+`
)

// Unsigned fixed-width integers, base 10.
var (
	U8    = uintLeaf(uintPattern, 10, 8, "u8", func(v uint64) any { return uint8(v) })
	U16   = uintLeaf(uintPattern, 10, 16, "u16", func(v uint64) any { return uint16(v) })
	U32   = uintLeaf(uintPattern, 10, 32, "u32", func(v uint64) any { return uint32(v) })
	U64   = uintLeaf(uintPattern, 10, 64, "u64", func(v uint64) any { return v })
	Usize = uintLeaf(uintPattern, 10, 64, "usize", func(v uint64) any { return uint(v) })
)

// Signed fixed-width integers, base 10.
var (
	I8    = intLeaf(intPattern, 10, 8, "i8", func(v int64) any { return int8(v) })
	I16   = intLeaf(intPattern, 10, 16, "i16", func(v int64) any { return int16(v) })
	I32   = intLeaf(intPattern, 10, 32, "i32", func(v int64) any { return int32(v) })
	I64   = intLeaf(intPattern, 10, 64, "i64", func(v int64) any { return v })
	Isize = intLeaf(intPattern, 10, 64, "isize", func(v int64) any { return int(v) })
)

// Unsigned fixed-width integers in binary and hexadecimal notation.
var (
	U8Bin  = uintLeaf(binPattern, 2, 8, "u8", func(v uint64) any { return uint8(v) })
	U16Bin = uintLeaf(binPattern, 2, 16, "u16", func(v uint64) any { return uint16(v) })
	U32Bin = uintLeaf(binPattern, 2, 32, "u32", func(v uint64) any { return uint32(v) })
	U64Bin = uintLeaf(binPattern, 2, 64, "u64", func(v uint64) any { return v })

	U8Hex  = uintLeaf(hexPattern, 16, 8, "u8", func(v uint64) any { return uint8(v) })
	U16Hex = uintLeaf(hexPattern, 16, 16, "u16", func(v uint64) any { return uint16(v) })
	U32Hex = uintLeaf(hexPattern, 16, 32, "u32", func(v uint64) any { return uint32(v) })
	U64Hex = uintLeaf(hexPattern, 16, 64, "u64", func(v uint64) any { return v })
)

// Signed fixed-width integers in binary and hexadecimal notation.
var (
	I8Bin  = intLeaf(intBinPattern, 2, 8, "i8", func(v int64) any { return int8(v) })
	I16Bin = intLeaf(intBinPattern, 2, 16, "i16", func(v int64) any { return int16(v) })
	I32Bin = intLeaf(intBinPattern, 2, 32, "i32", func(v int64) any { return int32(v) })
	I64Bin = intLeaf(intBinPattern, 2, 64, "i64", func(v int64) any { return v })

	I8Hex  = intLeaf(intHexPattern, 16, 8, "i8", func(v int64) any { return int8(v) })
	I16Hex = intLeaf(intHexPattern, 16, 16, "i16", func(v int64) any { return int16(v) })
	I32Hex = intLeaf(intHexPattern, 16, 32, "i32", func(v int64) any { return int32(v) })
	I64Hex = intLeaf(intHexPattern, 16, 64, "i64", func(v int64) any { return v })
)

// bigLeaf parses an arbitrary-precision integer matching pattern in the
// given base, reporting typeName on a bad parse or (if maxBits is
// positive) on overflowing maxBits.
func bigLeaf(pattern string, base, maxBits int, signed bool, typeName string) aocparse.Parser {
	return aocparse.RegexLeaf(pattern, typeName, func(s string) (any, error) {
		v, ok := new(big.Int).SetString(s, base)
		if !ok {
			return nil, fmt.Errorf("not a valid integer")
		}
		if maxBits > 0 && !fitsInBits(v, maxBits, signed) {
			return nil, fmt.Errorf("out of range for %s", typeName)
		}
		return v, nil
	})
}

// fitsInBits reports whether v fits in a maxBits-wide two's-complement
// (signed) or plain binary (unsigned) representation.
func fitsInBits(v *big.Int, maxBits int, signed bool) bool {
	if !signed {
		return v.Sign() >= 0 && v.BitLen() <= maxBits
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(maxBits-1))
	min := new(big.Int).Neg(limit)
	max := new(big.Int).Sub(limit, big.NewInt(1))
	return v.Cmp(min) >= 0 && v.Cmp(max) <= 0
}

// U128 and I128 parse 128-bit integers as *big.Int, range-checked against
// the 128-bit boundary; Go has no native 128-bit integer type.
var (
	U128 = bigLeaf(uintPattern, 10, 128, false, "u128")
	I128 = bigLeaf(intPattern, 10, 128, true, "i128")

	U128Bin = bigLeaf(binPattern, 2, 128, false, "u128")
	I128Bin = bigLeaf(intBinPattern, 2, 128, true, "i128")
	U128Hex = bigLeaf(hexPattern, 16, 128, false, "u128")
	I128Hex = bigLeaf(intHexPattern, 16, 128, true, "i128")
)

// BigUint and BigInt parse arbitrary-precision integers of unbounded
// size, as *big.Int.
var (
	BigUint = bigLeaf(uintPattern, 10, 0, false, "nonnegative integer")
	BigInt  = bigLeaf(intPattern, 10, 0, true, "integer")
)

const floatPattern = `[+-]?(?:[0-9]+\.[0-9]*|\.[0-9]+|[0-9]+)(?:[eE][+-]?[0-9]+)?`

// F32 and F64 parse a decimal floating-point literal using
// strconv.ParseFloat.
var (
	F32 = aocparse.RegexLeaf(floatPattern, "f32", func(s string) (any, error) {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		return float32(v), nil
	})
	F64 = aocparse.RegexLeaf(floatPattern, "f64", func(s string) (any, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
)

// Bool parses the literal text "true" or "false".
var Bool = aocparse.RegexLeaf(`true|false`, "bool", func(s string) (any, error) {
	return s == "true", nil
})
