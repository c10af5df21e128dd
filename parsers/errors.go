package parsers

import (
	"errors"
	"fmt"
)

type Kind string

// Generic no-match, used when nothing more specific applies
const KindNoMatch Kind = "NoMatch"

// A separator (or element/terminator pair) succeeded without consuming input
// inside a repetition; continuing would loop forever.
const KindSeparatedList Kind = "SeparatedList"

// An element succeeded without consuming input inside many1
const KindMany1 Kind = "Many1"

const KindTag Kind = "Tag"
const KindDigit Kind = "Digit"
const KindSpace Kind = "Space"
const KindLineEnding Kind = "LineEnding"
const KindEof Kind = "Eof"
const KindTakeUntil Kind = "TakeUntil"
const KindMapRes Kind = "MapRes"
const KindVerify Kind = "Verify"
const KindAlt Kind = "Alt"
const KindCount Kind = "Count"
const KindComplete Kind = "Complete"

// Panic values for driving a generator out of order: Resume after it has
// completed, or Result before it has.
var ErrResumeCompleted = errors.New("generator resumed after completion")
var ErrNotCompleted = errors.New("generator has not completed")

// Error is raised by parsers in this package. Remaining is the length of the
// input left at the point the error was raised.
type Error struct {
	Kind      Kind
	Remaining int
	Fatal     bool
	Cause     error
}

var _ error = &Error{}

func (e *Error) Error() string {
	severity := "no match"
	if e.Fatal {
		severity = "failure"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s with %d bytes remaining: %v", severity, e.Kind, e.Remaining, e.Cause)
	}
	return fmt.Sprintf("%s: %s with %d bytes remaining", severity, e.Kind, e.Remaining)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NoMatch builds a recoverable error raised at input.
func NoMatch[I Input](input I, kind Kind) error {
	return &Error{Kind: kind, Remaining: len(input)}
}

// Failure builds an unrecoverable error raised at input.
func Failure[I Input](input I, kind Kind) error {
	return &Error{Kind: kind, Remaining: len(input), Fatal: true}
}

func noMatchCause[I Input](input I, kind Kind, cause error) error {
	return &Error{Kind: kind, Remaining: len(input), Cause: cause}
}

// IsNoMatch reports whether err is a recoverable parse error.
func IsNoMatch(err error) bool {
	var perr *Error
	return errors.As(err, &perr) && !perr.Fatal
}

// IsFatal reports whether err must abort the parse. Errors that did not come
// from this package are always fatal.
func IsFatal(err error) bool {
	return err != nil && !IsNoMatch(err)
}

// KindOf returns the kind of a parse error, or "" if err is not one.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return ""
}
