package aocparse

// Config bounds the depth of rule-set recursion and the number of
// iterations a repetition will attempt, guarding against pathological
// grammars by turning an infinite loop into an ordinary non-match instead.
//
// The zero Config imposes no limits at all; DefaultConfig sets finite ones.
type Config struct {
	// MaxRuleDepth bounds how many nested RuleRef invocations may be in
	// flight at once, defending against left recursion (which this engine
	// does not support) looping forever. Zero or negative means unlimited.
	MaxRuleDepth int

	// MaxRepeatIterations bounds how many pattern/separator pairs a single
	// repetition will attempt to match before giving up, defending
	// against exponential-blowup grammars. Zero or negative means
	// unlimited.
	MaxRepeatIterations int
}

// DefaultConfig picks generous default limits, scaled for the much larger
// repetition counts typical of puzzle input.
var DefaultConfig = Config{
	MaxRuleDepth:        500,
	MaxRepeatIterations: 1_000_000,
}

// Context carries the mutable state of a single top-level parse: the
// source text, the foremost error seen so far, and the rule-set registry.
// A Context is created fresh by Parse/ParseAs and is not shared across
// parses or goroutines.
type Context struct {
	source string
	config Config

	foremost *ParseError

	ruleSets map[*byte][]Parser

	ruleDepth int
}

// NewContext creates a Context for parsing source with the given Config.
func NewContext(source string, config Config) *Context {
	return &Context{
		source:   source,
		config:   config,
		ruleSets: make(map[*byte][]Parser),
	}
}

// Source returns the text this context is parsing.
func (ctx *Context) Source() string {
	return ctx.source
}

// report records err into the foremost-error slot if it is farther along
// (or ties and nothing is recorded yet the first time). Ties favor the
// earlier-recorded error.
func (ctx *Context) report(err *ParseError) {
	if ctx.foremost == nil || err.Location > ctx.foremost.Location {
		ctx.foremost = err
	}
}

func (ctx *Context) errorExpected(start int, noun string) {
	ctx.report(newExpectedError(ctx.source, start, noun))
}

func (ctx *Context) errorFromStrFailed(start, end int, typeName, message string) {
	ctx.report(newFromStrFailedError(ctx.source, start, end, typeName, message))
}

func (ctx *Context) errorExtra(location int) {
	ctx.report(newExtraError(ctx.source, location))
}

// foremostError returns the recorded error, or a generic ExtraUnparsed at
// the end of source if somehow nothing was ever recorded.
func (ctx *Context) foremostError() *ParseError {
	if ctx.foremost != nil {
		return ctx.foremost
	}
	return newExtraError(ctx.source, len(ctx.source))
}

// withSlice runs fn against a nested Context scoped to source[start:end],
// sharing the rule-set registry (the same map, so rule sets already
// registered are visible to fn, and any that fn registers stay visible to
// ctx afterwards), translating any error fn's context records back into
// ctx's coordinates on the way out.
func (ctx *Context) withSlice(start, end int, fn func(*Context) error) error {
	inner := &Context{
		source:    ctx.source[start:end],
		config:    ctx.config,
		ruleSets:  ctx.ruleSets,
		ruleDepth: ctx.ruleDepth,
	}
	err := fn(inner)
	if inner.foremost != nil {
		ctx.report(inner.foremost.adjustLocation(ctx.source, start))
	}
	return err
}

// enterRule increments the rule-recursion depth counter, returning an
// error if MaxRuleDepth would be exceeded. Pair with leaveRule.
func (ctx *Context) enterRule() error {
	if ctx.config.MaxRuleDepth > 0 && ctx.ruleDepth >= ctx.config.MaxRuleDepth {
		// A rule recursing this deep without making progress can only be
		// left recursion, which this engine does not support. Treat it
		// as an ordinary non-match rather than panicking: PEG semantics
		// already say a degenerate rule "must eventually fail or
		// terminate by non-matching".
		return errNoMatch
	}
	ctx.ruleDepth++
	return nil
}

func (ctx *Context) leaveRule() {
	ctx.ruleDepth--
}
