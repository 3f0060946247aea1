package aocparse

// mapParser runs an inner parser and applies convert to its Raw output
// only once the overall parse has succeeded and conversion is requested,
// never during backtracking itself.
type mapParser struct {
	inner   Parser
	convert func(Raw) Raw
}

func (p *mapParser) StartParse(ctx *Context, pos int) (Iter, error) {
	iter, err := p.inner.StartParse(ctx, pos)
	if err != nil {
		return nil, err
	}
	return &mapIter{inner: iter, convert: p.convert}, nil
}

type mapIter struct {
	inner   Iter
	convert func(Raw) Raw
}

func (it *mapIter) MatchEnd() int               { return it.inner.MatchEnd() }
func (it *mapIter) Backtrack(ctx *Context) error { return it.inner.Backtrack(ctx) }
func (it *mapIter) Convert() Raw                 { return it.convert(it.inner.Convert()) }

// Map matches the same strings as parser, then applies mapper to its
// shaped value, replacing it with mapper's result as a single value. This
// is the building block for host-language mapping over a matched pattern.
func Map(parser Parser, mapper func(any) any) Parser {
	return &mapParser{inner: parser, convert: func(raw Raw) Raw {
		return Raw{mapper(shapeToUser(raw))}
	}}
}

// SingleValue matches the same strings as parser, forcing its Raw output
// to be a singleton regardless of how many values parser itself produces.
// Used to implement grouping parentheses: without it, parenthesizing a
// sub-pattern that happens to produce zero or multiple values would
// silently disappear (or explode) when concatenated with its neighbors.
func SingleValue(parser Parser) Parser {
	return &mapParser{inner: parser, convert: func(raw Raw) Raw {
		return Raw{shapeToUser(raw)}
	}}
}

// Skip matches the same strings as parser but discards its value,
// contributing nothing to the surrounding sequence's Raw output. Used to
// implement `=>` mappings that only need some of their sequence's pieces:
// the unwanted ones are wrapped in Skip first.
func Skip(parser Parser) Parser {
	return &mapParser{inner: parser, convert: func(Raw) Raw {
		return Raw{}
	}}
}
