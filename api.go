package aocparse

import "fmt"

// Parse runs p against the whole of source, using DefaultConfig. It
// succeeds only if p matches all of source; a partial match is reported
// as unexpected extra text at the point matching stopped, the same way
// any other parse failure is reported. When every candidate ultimately
// fails, the error returned is the foremost one recorded during matching,
// even if a later, shorter-lived candidate's failure happened closer to
// the point backtracking gave up.
//
// On success, the returned value is p's shaped output: a struct{}{} for a
// zero-value match, the single matched value for a one-value match, or a
// []any tuple otherwise.
func Parse(p Parser, source string) (any, error) {
	return ParseWithConfig(p, source, DefaultConfig)
}

// ParseWithConfig is Parse with an explicit Config, for callers that need
// to raise or lower the rule-depth and repetition-count guards.
func ParseWithConfig(p Parser, source string, config Config) (any, error) {
	ctx := NewContext(source, config)
	iter, err := p.StartParse(ctx, 0)
	for {
		if err == nil && iter.MatchEnd() == len(source) {
			return shapeToUser(iter.Convert()), nil
		}
		if err == nil {
			ctx.errorExtra(iter.MatchEnd())
			err = iter.Backtrack(ctx)
			continue
		}
		if err != errNoMatch {
			return nil, err
		}
		return nil, ctx.foremostError()
	}
}

// ParseAs is Parse, type-asserting the shaped result to T. It panics with
// a descriptive message if p's output isn't actually a T; this is a
// programmer error (the parser was built to produce something else), not
// a data error, so it isn't folded into the returned error value.
func ParseAs[T any](p Parser, source string) (T, error) {
	return ParseAsWithConfig[T](p, source, DefaultConfig)
}

// ParseAsWithConfig is ParseAs with an explicit Config.
func ParseAsWithConfig[T any](p Parser, source string, config Config) (T, error) {
	var zero T
	value, err := ParseWithConfig(p, source, config)
	if err != nil {
		return zero, err
	}
	result, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("aocparse: parser produced %T, not %T", value, zero))
	}
	return result, nil
}
