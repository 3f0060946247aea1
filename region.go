package aocparse

import "strings"

// Region abstracts the two delimiter-bounded sub-parsing strategies this
// package supports: Line and Section.
type Region interface {
	// CheckAtStart reports an error and returns errNoMatch if start isn't a
	// valid place for this region to begin.
	CheckAtStart(ctx *Context, start int) error

	// FindEnd locates the end of the region starting at start, returning
	// the end of its interior (for parsing the inner pattern against) and
	// the end of the region including its delimiter (for reporting how
	// much was consumed overall).
	FindEnd(ctx *Context, start int) (innerEnd, outerEnd int, err error)

	// ReportIncompleteMatch records that the inner pattern matched only a
	// prefix of the region ending at end.
	ReportIncompleteMatch(ctx *Context, end int)
}

// lineRegion is a run of zero or more non-newline characters, starting at
// the beginning of input or right after a newline, followed by a newline
// (or the end of input).
type lineRegion struct{}

func (lineRegion) CheckAtStart(ctx *Context, start int) error {
	source := ctx.Source()
	if start == 0 || strings.HasSuffix(source[:start], "\n") {
		return nil
	}
	ctx.report(newBadLineStartError(source, start))
	return errNoMatch
}

func (lineRegion) FindEnd(ctx *Context, start int) (int, int, error) {
	source := ctx.Source()
	if idx := strings.IndexByte(source[start:], '\n'); idx >= 0 {
		return start + idx, start + idx + 1, nil
	}
	if start != len(source) {
		return len(source), len(source), nil
	}
	ctx.errorExpected(len(source), "line")
	return 0, 0, errNoMatch
}

func (lineRegion) ReportIncompleteMatch(ctx *Context, end int) {
	ctx.report(newLineExtraError(ctx.Source(), end))
}

// sectionRegion is a run of zero or more nonblank lines, starting at the
// beginning of input or right after a newline, followed by a blank line
// (or the end of input).
type sectionRegion struct{}

func (sectionRegion) CheckAtStart(ctx *Context, start int) error {
	source := ctx.Source()
	prefix := source[:start]
	if start == 0 || prefix == "\n" || strings.HasSuffix(prefix, "\n\n") {
		return nil
	}
	ctx.report(newBadSectionStartError(source, start))
	return errNoMatch
}

func (sectionRegion) FindEnd(ctx *Context, start int) (int, int, error) {
	source := ctx.Source()
	if idx := strings.Index(source[start:], "\n\n"); idx >= 0 {
		return start + idx + 1, start + idx + 2, nil
	}
	// No blank-line delimiter found: an unterminated trailing section
	// still matches up to the end of input, but a would-be section
	// starting exactly at the end of input does not (it has nothing to
	// distinguish it from simply running out of sections to match).
	if start < len(source) {
		return len(source), len(source), nil
	}
	ctx.errorExpected(len(source), "section")
	return 0, 0, errNoMatch
}

func (sectionRegion) ReportIncompleteMatch(ctx *Context, end int) {
	ctx.report(newSectionExtraError(ctx.Source(), end))
}

// matchFully runs parser against the whole of ctx's (already sliced)
// source, backtracking it whenever it stops short of the end, until it
// either consumes everything or runs out of candidates entirely.
func matchFully(ctx *Context, parser Parser, reportIncomplete func(*Context, int)) (Iter, error) {
	source := ctx.Source()
	iter, err := parser.StartParse(ctx, 0)
	if err != nil {
		return nil, err
	}
	for iter.MatchEnd() != len(source) {
		reportIncomplete(ctx, iter.MatchEnd())
		if err := iter.Backtrack(ctx); err != nil {
			return nil, err
		}
	}
	return iter, nil
}

// regionParser matches a single Region (a line or a section) whose
// interior must be matched fully by inner.
type regionParser struct {
	region Region
	inner  Parser
}

func (p *regionParser) StartParse(ctx *Context, start int) (Iter, error) {
	if err := p.region.CheckAtStart(ctx, start); err != nil {
		return nil, err
	}
	innerEnd, outerEnd, err := p.region.FindEnd(ctx, start)
	if err != nil {
		return nil, err
	}
	var inner Iter
	err = ctx.withSlice(start, innerEnd, func(sub *Context) error {
		it, ierr := matchFully(sub, p.inner, p.region.ReportIncompleteMatch)
		if ierr != nil {
			return ierr
		}
		inner = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &regionIter{inner: inner, outerEnd: outerEnd}, nil
}

// regionIter has exactly one candidate: regions don't offer alternative
// end points to backtrack into.
type regionIter struct {
	inner    Iter
	outerEnd int
}

func (it *regionIter) MatchEnd() int               { return it.outerEnd }
func (it *regionIter) Backtrack(ctx *Context) error { return errNoMatch }
func (it *regionIter) Convert() Raw                 { return Raw{shapeToUser(it.inner.Convert())} }

// Line matches a single line of text matched fully by pattern, plus the
// newline that ends it (or end of input).
func Line(pattern Parser) Parser {
	return &regionParser{region: lineRegion{}, inner: pattern}
}

// Lines matches any number of consecutive lines each matched fully by
// pattern. Equivalent to Star(Line(pattern)).
func Lines(pattern Parser) Parser {
	return Star(Line(pattern))
}

// Section matches zero or more nonblank lines, matched fully by pattern,
// followed by a blank line or end of input.
func Section(pattern Parser) Parser {
	return &regionParser{region: sectionRegion{}, inner: pattern}
}

// Sections matches any number of consecutive sections each matched fully
// by pattern. Equivalent to Star(Section(pattern)).
func Sections(pattern Parser) Parser {
	return Star(Section(pattern))
}
