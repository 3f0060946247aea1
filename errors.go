package aocparse

import "fmt"

// ErrorKind identifies what kind of thing a ParseError is reporting.
type ErrorKind int

const (
	// ExpectedKind means a leaf parser wanted to see a specific noun
	// (a literal, a character class, a region) and didn't find it.
	ExpectedKind ErrorKind = iota
	// FromStrFailedKind means a regex-backed leaf matched some text but
	// converting it to a value (e.g. parsing digits into a uint64) failed.
	FromStrFailedKind
	// ExtraUnparsedKind means the top-level parse matched a strict prefix
	// of the source and stopped before the end.
	ExtraUnparsedKind
	// LineExtraKind means a line(p) matched only part of its line.
	LineExtraKind
	// SectionExtraKind means a section(p) matched only part of its section.
	SectionExtraKind
	// BadLineStartKind means line(p) was attempted at an offset that isn't
	// the start of a line.
	BadLineStartKind
	// BadSectionStartKind means section(p) was attempted at an offset that
	// isn't the start of a section.
	BadSectionStartKind
)

// ParseError is a structured parse failure: what kind of thing went wrong,
// where in the source it happened, and (for FromStrFailed/Expected) extra
// detail. Errors are recorded into a ParseContext's foremost-error slot
// rather than returned up the call chain (see context.go); a ParseError
// only escapes to a caller from Parse/ParseAs, as the foremost error of a
// failed top-level parse.
type ParseError struct {
	Kind ErrorKind

	// Location is the byte offset in source this error is attributed to.
	// Always a character boundary.
	Location int

	// End is set for errors that name a span (FromStrFailed); zero
	// otherwise.
	End int

	// Noun is set for ExpectedKind ("line", "section", a literal, etc).
	Noun string

	// TypeName and Message are set for FromStrFailedKind.
	TypeName string
	Message  string

	source string
}

func newExpectedError(source string, location int, noun string) *ParseError {
	return &ParseError{Kind: ExpectedKind, Location: location, Noun: noun, source: source}
}

func newFromStrFailedError(source string, start, end int, typeName, message string) *ParseError {
	return &ParseError{
		Kind:     FromStrFailedKind,
		Location: start,
		End:      end,
		TypeName: typeName,
		Message:  message,
		source:   source,
	}
}

func newExtraError(source string, location int) *ParseError {
	return &ParseError{Kind: ExtraUnparsedKind, Location: location, source: source}
}

func newLineExtraError(source string, location int) *ParseError {
	return &ParseError{Kind: LineExtraKind, Location: location, source: source}
}

func newSectionExtraError(source string, location int) *ParseError {
	return &ParseError{Kind: SectionExtraKind, Location: location, source: source}
}

func newBadLineStartError(source string, location int) *ParseError {
	return &ParseError{Kind: BadLineStartKind, Location: location, source: source}
}

func newBadSectionStartError(source string, location int) *ParseError {
	return &ParseError{Kind: BadSectionStartKind, Location: location, source: source}
}

// reason renders the kind-specific part of the message.
func (err *ParseError) reason() string {
	switch err.Kind {
	case ExpectedKind:
		return fmt.Sprintf("expected %s", err.Noun)
	case FromStrFailedKind:
		return fmt.Sprintf("invalid %s: %s", err.TypeName, err.Message)
	case ExtraUnparsedKind:
		return "unexpected extra text"
	case LineExtraKind:
		return "matched part of the line, but not all of it"
	case SectionExtraKind:
		return "matched part of the section, but not all of it"
	case BadLineStartKind:
		return "expected start of line"
	case BadSectionStartKind:
		return "expected start of section"
	default:
		return "parse error"
	}
}

// Error implements the error interface, rendering
// "<reason> at line L column C".
func (err *ParseError) Error() string {
	pos := newPositionCalculator(err.source).calculate(err.Location)
	return fmt.Sprintf("%s at %s", err.reason(), pos.String())
}

// adjustLocation translates an error produced against a nested (sliced)
// source back into the coordinates of the outer source, by shifting its
// location (and end, if set) forward by offset and swapping in the outer
// source for formatting.
func (err *ParseError) adjustLocation(outerSource string, offset int) *ParseError {
	adjusted := *err
	adjusted.Location += offset
	if adjusted.End != 0 {
		adjusted.End += offset
	}
	adjusted.source = outerSource
	return &adjusted
}
