package aocparse

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// --- Exact literal ---

type exactParser struct {
	text string
}

// Exact matches iff source[start:] begins with text exactly. It matches a
// single candidate; Raw is empty.
func Exact(text string) Parser {
	return &exactParser{text: text}
}

func (p *exactParser) StartParse(ctx *Context, pos int) (Iter, error) {
	src := ctx.Source()
	if pos+len(p.text) <= len(src) && src[pos:pos+len(p.text)] == p.text {
		return &exactIter{end: pos + len(p.text)}, nil
	}
	ctx.errorExpected(pos, p.text)
	return nil, errNoMatch
}

type exactIter struct {
	end int
}

func (it *exactIter) MatchEnd() int                { return it.end }
func (it *exactIter) Backtrack(ctx *Context) error { return errNoMatch }
func (it *exactIter) Convert() Raw                 { return Raw{} }

// --- Empty ---

type emptyParser struct{}

// Empty matches the empty string at any offset, producing Raw{}.
var Empty Parser = emptyParser{}

func (emptyParser) StartParse(ctx *Context, pos int) (Iter, error) {
	return &exactIter{end: pos}, nil
}

// --- Character predicate ---

type charPredicateParser struct {
	noun      string
	predicate func(rune) bool
	// convert maps the matched rune to a Raw-shaped user value. If nil,
	// the rune itself is the value.
	convert func(rune) any
}

// CharPredicate builds a leaf that consumes exactly one character
// satisfying predicate, reporting "expected <noun>" on failure. The
// produced value is the matched rune, unless convert is non-nil.
func CharPredicate(noun string, predicate func(rune) bool, convert func(rune) any) Parser {
	return &charPredicateParser{noun: noun, predicate: predicate, convert: convert}
}

func (p *charPredicateParser) StartParse(ctx *Context, pos int) (Iter, error) {
	src := ctx.Source()
	if pos >= len(src) {
		ctx.errorExpected(pos, p.noun)
		return nil, errNoMatch
	}
	r, size := utf8.DecodeRuneInString(src[pos:])
	if !p.predicate(r) {
		ctx.errorExpected(pos, p.noun)
		return nil, errNoMatch
	}
	var value any = r
	if p.convert != nil {
		value = p.convert(r)
	}
	return &valueIter{value: value, end: pos + size}, nil
}

type valueIter struct {
	value any
	end   int
}

func (it *valueIter) MatchEnd() int               { return it.end }
func (it *valueIter) Backtrack(ctx *Context) error { return errNoMatch }
func (it *valueIter) Convert() Raw                 { return Raw{it.value} }

// --- Named character classes ---

// Alpha matches any alphabetic character, producing the matched rune.
var Alpha Parser = CharPredicate("letter", unicode.IsLetter, nil)

// Alnum matches any alphabetic or numeric character.
var Alnum Parser = CharPredicate("letter or digit", func(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}, nil)

// Upper matches any uppercase letter.
var Upper Parser = CharPredicate("uppercase letter", unicode.IsUpper, nil)

// Lower matches any lowercase letter.
var Lower Parser = CharPredicate("lowercase letter", unicode.IsLower, nil)

// AnyChar matches any single character.
var AnyChar Parser = CharPredicate("any character", func(rune) bool { return true }, nil)

// Digit matches an ASCII decimal digit, producing its integer value 0-9.
var Digit Parser = CharPredicate("decimal digit", func(r rune) bool {
	return r >= '0' && r <= '9'
}, func(r rune) any { return int(r - '0') })

// DigitBin matches a binary digit, producing its integer value 0-1.
var DigitBin Parser = CharPredicate("binary digit", func(r rune) bool {
	return r == '0' || r == '1'
}, func(r rune) any { return int(r - '0') })

// DigitHex matches a hexadecimal digit, producing its integer value 0-15.
var DigitHex Parser = CharPredicate("hexadecimal digit", func(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}, func(r rune) any {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
})

// --- Character-of-set ---

type charOfParser struct {
	options string
}

// CharOf matches the next character iff it is one of options' characters
// (compared character-by-character, not byte-by-byte), producing the
// character's index within options.
func CharOf(options string) Parser {
	return &charOfParser{options: options}
}

func (p *charOfParser) StartParse(ctx *Context, pos int) (Iter, error) {
	src := ctx.Source()
	if pos < len(src) {
		r, size := utf8.DecodeRuneInString(src[pos:])
		idx := 0
		for _, c := range p.options {
			if c == r {
				return &valueIter{value: idx, end: pos + size}, nil
			}
			idx++
		}
	}
	ctx.errorExpected(pos, fmt.Sprintf("one of %q", p.options))
	return nil, errNoMatch
}

// --- Regex-backed leaf ---

type regexLeafParser struct {
	re       *regexp2.Regexp
	typeName string
	convert  func(string) (any, error)
}

// RegexLeaf matches the text anchored at start matching pattern (which
// must not itself contain `\A`; RegexLeaf anchors it), then runs convert
// on the matched text. A successful regex match yields exactly one
// candidate (no regex-level backtracking); a convert failure is reported
// as FromStrFailed(typeName, message).
func RegexLeaf(pattern, typeName string, convert func(string) (any, error)) Parser {
	re := regexp2.MustCompile(`\A(?:`+pattern+`)`, regexp2.None)
	return &regexLeafParser{re: re, typeName: typeName, convert: convert}
}

func (p *regexLeafParser) StartParse(ctx *Context, pos int) (Iter, error) {
	src := ctx.Source()
	m, err := p.re.FindStringMatch(src[pos:])
	if err != nil || m == nil {
		ctx.errorExpected(pos, p.typeName)
		return nil, errNoMatch
	}
	matched := m.String()
	end := pos + len(matched)
	value, cerr := p.convert(matched)
	if cerr != nil {
		ctx.errorFromStrFailed(pos, end, p.typeName, cerr.Error())
		return nil, errNoMatch
	}
	return &valueIter{value: value, end: end}, nil
}
