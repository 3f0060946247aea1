package aocparse

import "fmt"

// RuleSetBuilder assembles a set of mutually recursive rules. Call NewRule
// once per rule to get a placeholder RuleRef usable anywhere a Parser is
// expected (including inside another rule's definition), then AssignRule
// to bind each ref to its real parser, then Build to get the finished
// entry-point Parser.
//
// Because Parser is already a plain interface over "any" rather than a
// generic type, a rule set's registry is just a slice of Parser values
// keyed by a private identity token; no type-erasure dance needed.
type RuleSetBuilder struct {
	id       *byte
	rules    []Parser
	assigned int
}

// NewRuleSetBuilder creates an empty rule-set builder.
func NewRuleSetBuilder() *RuleSetBuilder {
	return &RuleSetBuilder{id: new(byte)}
}

// RuleRef is a placeholder parser standing in for a not-yet-defined rule.
// It can be embedded in other parsers immediately; its real definition
// only needs to be supplied, via AssignRule, before the rule set is used
// to parse anything.
type RuleRef struct {
	id    *byte
	index int
}

// NewRule reserves a new rule slot and returns a reference to it.
func (b *RuleSetBuilder) NewRule() *RuleRef {
	ref := &RuleRef{id: b.id, index: len(b.rules)}
	b.rules = append(b.rules, nil)
	return ref
}

// AssignRule binds ref's rule to parser. Every ref returned by NewRule
// must be assigned exactly once, in the same order NewRule returned them;
// assigning out of order (or assigning the same ref twice) is a
// programming error and panics, rather than silently accepting a rule set
// built in an order Build's RuleRefs don't agree with.
func (b *RuleSetBuilder) AssignRule(ref *RuleRef, parser Parser) {
	if ref.id != b.id {
		panic("aocparse: RuleRef belongs to a different RuleSetBuilder")
	}
	if ref.index != b.assigned {
		panic("aocparse: rules must be assigned in the order NewRule returned them")
	}
	b.rules[ref.index] = parser
	b.assigned++
}

// Build finishes the rule set, returning a Parser that matches entry (which
// typically is, or contains, one of the RuleRefs from this builder).
func (b *RuleSetBuilder) Build(entry Parser) Parser {
	for i, r := range b.rules {
		if r == nil {
			panic(fmt.Sprintf("aocparse: rule %d was never assigned a parser", i))
		}
	}
	return &ruleSetParser{id: b.id, rules: b.rules, entry: entry}
}

func (r *RuleRef) StartParse(ctx *Context, pos int) (Iter, error) {
	parsers, ok := ctx.ruleSets[r.id]
	if !ok {
		panic("aocparse: rule used outside the rule set it belongs to")
	}
	if err := ctx.enterRule(); err != nil {
		return nil, err
	}
	defer ctx.leaveRule()
	iter, err := parsers[r.index].StartParse(ctx, pos)
	if err != nil {
		return nil, err
	}
	return &ruleRefIter{inner: iter}, nil
}

// ruleRefIter wraps a rule's underlying match in a singleton Raw, so that
// using a named rule inside a sequence always contributes exactly one
// value, regardless of how many pieces its own definition is built from.
type ruleRefIter struct {
	inner Iter
}

func (it *ruleRefIter) MatchEnd() int               { return it.inner.MatchEnd() }
func (it *ruleRefIter) Backtrack(ctx *Context) error { return it.inner.Backtrack(ctx) }
func (it *ruleRefIter) Convert() Raw                 { return Raw{shapeToUser(it.inner.Convert())} }

// ruleSetParser is the entry point Build returns: starting a parse with it
// registers the rule set's parsers into the Context (so nested RuleRefs
// can find them) before delegating to entry.
type ruleSetParser struct {
	id    *byte
	rules []Parser
	entry Parser
}

func (p *ruleSetParser) StartParse(ctx *Context, pos int) (Iter, error) {
	if _, ok := ctx.ruleSets[p.id]; !ok {
		ctx.ruleSets[p.id] = p.rules
	}
	iter, err := p.entry.StartParse(ctx, pos)
	if err != nil {
		return nil, err
	}
	return &ruleRefIter{inner: iter}, nil
}
