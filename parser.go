// Package aocparse implements a parser-combinator engine: an ordered-choice
// (PEG-style) backtracking matcher built from composable primitives, with
// foremost-error tracking for useful diagnostics despite speculative
// backtracking, and a rule-set facility for mutually recursive grammars.
//
// A Parser is built by composing the functions in this package (Exact, Seq,
// Alt, Star, Line, Map, ...) and run with Parse or ParseAs. There is no
// separate surface syntax; Go function calls play that role directly.
package aocparse

import "errors"

// errNoMatch is the sentinel "did not match" signal returned by
// Parser.StartParse and Iter.Backtrack. It carries no information of its
// own: by the time a combinator gives up, the useful diagnostic has
// already been recorded into the Context's foremost-error slot (see
// context.go). Combinators that want to try an alternative on failure
// compare against this sentinel directly; anything else escaping a
// StartParse/Backtrack call is an unexpected internal error and should
// propagate, not be swallowed.
var errNoMatch = errors.New("aocparse: no match")

// Raw is the flattened, composition-friendly representation of what a
// combinator matched, realized as a plain slice instead of a type-level
// tuple, since Go has no compile-time variadic-tuple concatenation.
// Concatenating two parsers in sequence is exactly appending their Raw
// slices.
//
// The shaping rule from Raw to a user-facing value is: a zero-length Raw
// becomes struct{}{}; a one-element Raw unwraps to that element; anything
// longer is exposed as the Raw slice itself, standing in for the tuple it
// represents.
type Raw = []any

// Parser is a reusable, side-effect-free recipe for matching a prefix of a
// string starting at a given byte offset. Starting a match produces an
// Iter, which can be asked to backtrack to try another candidate end
// offset, or to finalize ("convert") the current candidate into a Raw
// value.
//
// Implementations must be safe to call StartParse on repeatedly and
// concurrently from independent parses (but a single Context, and the Iter
// trees rooted at it, belong to exactly one in-flight parse).
type Parser interface {
	// StartParse attempts to match at byte offset pos in ctx.Source(),
	// returning an Iter positioned at its first (greediest) candidate. It
	// returns errNoMatch if no match is possible at all at pos; any other
	// error is an internal failure and should abort the whole parse.
	StartParse(ctx *Context, pos int) (Iter, error)
}

// Iter is an in-flight, resumable match attempt produced by a Parser at a
// fixed start offset. A freshly returned Iter is in its first-candidate
// state; calling Convert immediately is legal.
// After Backtrack returns errNoMatch, neither MatchEnd nor Convert may be
// called again.
type Iter interface {
	// MatchEnd returns the end offset of the current candidate match.
	MatchEnd() int

	// Backtrack discards the current candidate and advances to the next
	// one, in greedy (longest/most-nested first) order. It returns
	// errNoMatch when no more candidates exist.
	Backtrack(ctx *Context) error

	// Convert finalizes the current candidate into its Raw value. It must
	// be pure with respect to matcher state: calling it more than once
	// for the same candidate must yield equal results. A correctly
	// written top-level Parse calls Convert at most once per successful
	// overall parse.
	Convert() Raw
}

// ParserFunc lets an ordinary function act as a Parser, the way
// http.HandlerFunc lets a function act as an http.Handler. The combinators
// in this package do not use it; each has its own named type.
type ParserFunc func(ctx *Context, pos int) (Iter, error)

// StartParse implements Parser.
func (f ParserFunc) StartParse(ctx *Context, pos int) (Iter, error) {
	return f(ctx, pos)
}

// shapeToUser applies the Raw → user-value shaping rule described above.
func shapeToUser(raw Raw) any {
	switch len(raw) {
	case 0:
		return struct{}{}
	case 1:
		return raw[0]
	default:
		out := make(Raw, len(raw))
		copy(out, raw)
		return out
	}
}
