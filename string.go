package aocparse

// stringParser matches the same strings as inner, but instead of
// converting the matched text to inner's own value, returns the raw
// matched substring.
type stringParser struct {
	inner Parser
}

// StringCapture matches whatever inner matches, discarding inner's own
// converted value and returning the exact substring inner matched
// instead. `StringCapture(Plus(CharPredicate(...)))` is the idiom for
// "a run of characters, returned as a string": without it, a repeated
// character-level parser yields a []any of runes, not a string.
func StringCapture(inner Parser) Parser {
	return &stringParser{inner: inner}
}

func (p *stringParser) StartParse(ctx *Context, pos int) (Iter, error) {
	iter, err := p.inner.StartParse(ctx, pos)
	if err != nil {
		return nil, err
	}
	return &stringIter{source: ctx.Source(), start: pos, inner: iter}, nil
}

type stringIter struct {
	source string
	start  int
	inner  Iter
}

func (it *stringIter) MatchEnd() int               { return it.inner.MatchEnd() }
func (it *stringIter) Backtrack(ctx *Context) error { return it.inner.Backtrack(ctx) }
func (it *stringIter) Convert() Raw {
	return Raw{it.source[it.start:it.inner.MatchEnd()]}
}
