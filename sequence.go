package aocparse

// seqParser matches head then tail contiguously, concatenating their Raw
// slices. pairMode switches the join strategy for the paired-join case,
// where the sequence must preserve head/tail as a nested pair of
// unwrapped values instead of flattening, so labeled names keep their
// source-order grouping.
type seqParser struct {
	head, tail Parser
	pairMode   bool
}

// Seq matches head then tail, concatenating their Raw tuples. This is
// what bare juxtaposition ("pattern1 pattern2") means.
func Seq(head, tail Parser) Parser {
	return &seqParser{head: head, tail: tail}
}

// Pair matches head then tail like Seq, but joins their shaped (unwrapped)
// values into a single nested pair {First, Second} instead of flattening.
// Used to implement host-language mapping over labeled pieces, which
// needs to see each label's value individually rather than a flattened
// tuple.
func Pair(head, tail Parser) Parser {
	return &seqParser{head: head, tail: tail, pairMode: true}
}

// PairValue is the Raw-level value produced by Pair: a nested pair of
// already-shaped (unwrapped) values, mirroring the source-order grouping
// of => labels.
type PairValue struct {
	First  any
	Second any
}

func (p *seqParser) StartParse(ctx *Context, pos int) (Iter, error) {
	headIter, err := p.head.StartParse(ctx, pos)
	if err != nil {
		return nil, err
	}
	tailIter, err := firstTailMatch(ctx, headIter, p.tail)
	if err != nil {
		return nil, err
	}
	return &seqIter{parser: p, headIter: headIter, tailIter: tailIter}, nil
}

// firstTailMatch tries tail at each of head's candidate ends, in head's
// greedy order, until one succeeds or head is exhausted.
func firstTailMatch(ctx *Context, head Iter, tail Parser) (Iter, error) {
	for {
		mid := head.MatchEnd()
		if tailIter, err := tail.StartParse(ctx, mid); err == nil {
			return tailIter, nil
		} else if err != errNoMatch {
			return nil, err
		}
		if err := head.Backtrack(ctx); err != nil {
			return nil, err
		}
	}
}

type seqIter struct {
	parser   *seqParser
	headIter Iter
	tailIter Iter
}

func (it *seqIter) MatchEnd() int { return it.tailIter.MatchEnd() }

func (it *seqIter) Backtrack(ctx *Context) error {
	if err := it.tailIter.Backtrack(ctx); err == nil {
		return nil
	} else if err != errNoMatch {
		return err
	}
	if err := it.headIter.Backtrack(ctx); err != nil {
		return err
	}
	tailIter, err := firstTailMatch(ctx, it.headIter, it.parser.tail)
	if err != nil {
		return err
	}
	it.tailIter = tailIter
	return nil
}

func (it *seqIter) Convert() Raw {
	headRaw := it.headIter.Convert()
	tailRaw := it.tailIter.Convert()
	if it.parser.pairMode {
		return Raw{PairValue{First: shapeToUser(headRaw), Second: shapeToUser(tailRaw)}}
	}
	out := make(Raw, 0, len(headRaw)+len(tailRaw))
	out = append(out, headRaw...)
	out = append(out, tailRaw...)
	return out
}

// Seq3 through Seq6 sequence a fixed number of parsers, left to right,
// flattening their Raw output exactly as repeated Seq calls would. They
// exist purely for ergonomics when writing out a fixed-arity pattern like
// "u64, then a literal, then another u64" directly as Go code.
func Seq3(a, b, c Parser) Parser { return Seq(a, Seq(b, c)) }
func Seq4(a, b, c, d Parser) Parser {
	return Seq(a, Seq(b, Seq(c, d)))
}
func Seq5(a, b, c, d, e Parser) Parser {
	return Seq(a, Seq(b, Seq(c, Seq(d, e))))
}
func Seq6(a, b, c, d, e, f Parser) Parser {
	return Seq(a, Seq(b, Seq(c, Seq(d, Seq(e, f)))))
}

// SeqAll folds Seq over a slice of parsers, left to right; SeqAll() (no
// parsers) is Empty.
func SeqAll(parsers ...Parser) Parser {
	if len(parsers) == 0 {
		return Empty
	}
	p := parsers[0]
	for _, next := range parsers[1:] {
		p = Seq(p, next)
	}
	return p
}
