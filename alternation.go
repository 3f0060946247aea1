package aocparse

// EitherValue is the tagged sum-type value produced by alternation: exactly
// one of Left or Right holds the matched branch's shaped value, selected by
// IsRight. This mirrors PairValue's role for Pair (sequence.go): a typed
// wrapper that preserves structure Go's []any can't carry on its own,
// instead of collapsing both branches down to whichever happens to line up.
type EitherValue struct {
	Left    any
	Right   any
	IsRight bool
}

// altParser implements ordered choice between exactly two alternatives:
// try left to exhaustion (including its own backtracking) before trying
// right at all, and once right has been tried, never return to left. This
// is ordered choice, not symmetric disjunction.
type altParser struct {
	left, right Parser
}

// Alt matches whichever of options matches first, trying them in order and
// backtracking through earlier options' candidates before moving on to a
// later option, producing an EitherValue tagging which branch fired. With
// more than two options, Alt right-folds into nested binary alternation
// (Alt(a, b, c) is Alt(a, Alt(b, c))), so the result nests EitherValue
// values the same way repeated two-argument Alt calls would.
func Alt(options ...Parser) Parser {
	if len(options) < 2 {
		panic("aocparse: Alt requires at least two options")
	}
	p := options[len(options)-1]
	for i := len(options) - 2; i >= 0; i-- {
		p = &altParser{left: options[i], right: p}
	}
	return p
}

func (p *altParser) StartParse(ctx *Context, pos int) (Iter, error) {
	iter, err := p.left.StartParse(ctx, pos)
	if err == nil {
		return &altIter{parser: p, onRight: false, inner: iter, pos: pos}, nil
	}
	if err != errNoMatch {
		return nil, err
	}
	iter, err = p.right.StartParse(ctx, pos)
	if err == nil {
		return &altIter{parser: p, onRight: true, inner: iter, pos: pos}, nil
	}
	return nil, err
}

type altIter struct {
	parser  *altParser
	onRight bool
	inner   Iter
	pos     int
}

func (it *altIter) MatchEnd() int { return it.inner.MatchEnd() }

func (it *altIter) Backtrack(ctx *Context) error {
	if err := it.inner.Backtrack(ctx); err == nil {
		return nil
	} else if err != errNoMatch {
		return err
	}
	if it.onRight {
		return errNoMatch
	}
	iter, err := it.parser.right.StartParse(ctx, it.pos)
	if err != nil {
		return err
	}
	it.onRight = true
	it.inner = iter
	return nil
}

func (it *altIter) Convert() Raw {
	if it.onRight {
		return Raw{EitherValue{Right: shapeToUser(it.inner.Convert()), IsRight: true}}
	}
	return Raw{EitherValue{Left: shapeToUser(it.inner.Convert())}}
}

// Opt matches p if possible, falling back to an empty match otherwise.
// Unlike Alt, Opt does not tag its result with an EitherValue: the absent
// branch always converts to nil, so "present value, or nil" already
// discriminates the two cases without needing a wrapper, the same way
// Rust's Option<T> (rather than Either<T, ()>) is the natural shape for a
// combinator with one real alternative and one trivial one.
func Opt(p Parser) Parser {
	return &optParser{inner: p}
}

type optParser struct {
	inner Parser
}

func (p *optParser) StartParse(ctx *Context, pos int) (Iter, error) {
	iter, err := p.inner.StartParse(ctx, pos)
	if err == nil {
		return &optIter{present: true, inner: iter, pos: pos}, nil
	}
	if err != errNoMatch {
		return nil, err
	}
	return &optIter{present: false, pos: pos}, nil
}

type optIter struct {
	present bool
	inner   Iter
	pos     int
}

func (it *optIter) MatchEnd() int {
	if it.present {
		return it.inner.MatchEnd()
	}
	return it.pos
}

func (it *optIter) Backtrack(ctx *Context) error {
	if !it.present {
		return errNoMatch
	}
	if err := it.inner.Backtrack(ctx); err == nil {
		return nil
	} else if err != errNoMatch {
		return err
	}
	it.present = false
	return nil
}

func (it *optIter) Convert() Raw {
	if it.present {
		return Raw{shapeToUser(it.inner.Convert())}
	}
	return Raw{nil}
}
