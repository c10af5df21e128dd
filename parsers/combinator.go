package parsers

import "errors"

// Map transforms the output of f.
func Map[I Input, O, O2 any](f Parser[I, O], fn func(O) O2) Parser[I, O2] {
	return func(input I) (I, O2, error) {
		rest, value, err := f(input)
		if err != nil {
			var zero O2
			return input, zero, err
		}
		return rest, fn(value), nil
	}
}

// MapRes transforms the output of f with a conversion that may fail. A
// failed conversion does not match.
func MapRes[I Input, O, O2 any](f Parser[I, O], fn func(O) (O2, error)) Parser[I, O2] {
	return func(input I) (I, O2, error) {
		var zero O2
		rest, value, err := f(input)
		if err != nil {
			return input, zero, err
		}
		out, err := fn(value)
		if err != nil {
			return input, zero, noMatchCause(input, KindMapRes, err)
		}
		return rest, out, nil
	}
}

// Value replaces the output of f with v.
func Value[I Input, O, O2 any](v O2, f Parser[I, O]) Parser[I, O2] {
	return Map(f, func(O) O2 { return v })
}

// Verify only matches when pred accepts the output of f.
func Verify[I Input, O any](f Parser[I, O], pred func(O) bool) Parser[I, O] {
	return func(input I) (I, O, error) {
		var zero O
		rest, value, err := f(input)
		if err != nil {
			return input, zero, err
		}
		if !pred(value) {
			return input, zero, NoMatch(input, KindVerify)
		}
		return rest, value, nil
	}
}

// Opt tries f and succeeds with the zero value, consuming nothing, when it
// does not match.
func Opt[I Input, O any](f Parser[I, O]) Parser[I, O] {
	return func(input I) (I, O, error) {
		rest, value, err := f(input)
		if err != nil {
			var zero O
			if IsNoMatch(err) {
				return input, zero, nil
			}
			return input, zero, err
		}
		return rest, value, nil
	}
}

// Alt returns the result of the first alternative that matches.
func Alt[I Input, O any](alternatives ...Parser[I, O]) Parser[I, O] {
	return func(input I) (I, O, error) {
		var zero O
		for _, alt := range alternatives {
			rest, value, err := alt(input)
			if err == nil {
				return rest, value, nil
			}
			if !IsNoMatch(err) {
				return input, zero, err
			}
		}
		return input, zero, NoMatch(input, KindAlt)
	}
}

// Both runs a then b.
func Both[I Input, A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, Pair[A, B]] {
	return func(input I) (I, Pair[A, B], error) {
		var out Pair[A, B]
		rest, first, err := a(input)
		if err != nil {
			return input, out, err
		}
		rest, second, err := b(rest)
		if err != nil {
			return input, out, err
		}
		out.First, out.Second = first, second
		return rest, out, nil
	}
}

// Preceded runs prefix then f, keeping the output of f.
func Preceded[I Input, O, P any](prefix Parser[I, P], f Parser[I, O]) Parser[I, O] {
	return Map(Both(prefix, f), func(p Pair[P, O]) O { return p.Second })
}

// Terminated runs f then suffix, keeping the output of f.
func Terminated[I Input, O, S any](f Parser[I, O], suffix Parser[I, S]) Parser[I, O] {
	return Map(Both(f, suffix), func(p Pair[O, S]) O { return p.First })
}

// Delimited runs left, f and right, keeping the output of f.
func Delimited[I Input, L, O, R any](left Parser[I, L], f Parser[I, O], right Parser[I, R]) Parser[I, O] {
	return Preceded(left, Terminated(f, right))
}

// Recognize returns the input consumed by f instead of its output.
func Recognize[I Input, O any](f Parser[I, O]) Parser[I, I] {
	return func(input I) (I, I, error) {
		rest, _, err := f(input)
		if err != nil {
			return input, input[:0], err
		}
		return rest, input[:len(input)-len(rest)], nil
	}
}

// Cut escalates a no-match from f into a failure, committing the parse to
// this branch.
func Cut[I Input, O any](f Parser[I, O]) Parser[I, O] {
	return func(input I) (I, O, error) {
		rest, value, err := f(input)
		if err != nil {
			var perr *Error
			if errors.As(err, &perr) && !perr.Fatal {
				escalated := *perr
				escalated.Fatal = true
				return input, value, &escalated
			}
			return input, value, err
		}
		return rest, value, nil
	}
}

// Complete requires f to consume the whole input.
func Complete[I Input, O any](f Parser[I, O]) Parser[I, O] {
	return func(input I) (I, O, error) {
		rest, value, err := f(input)
		if err != nil {
			return input, value, err
		}
		if len(rest) != 0 {
			var zero O
			return input, zero, NoMatch(rest, KindComplete)
		}
		return rest, value, nil
	}
}

// Finish runs f over the whole input, allowing only trailing line endings
// and spaces to remain, and returns its output.
func Finish[I Input, O any](f Parser[I, O], input I) (O, error) {
	rest, value, err := f(input)
	if err != nil {
		var zero O
		return zero, err
	}
	rest, _ = takeWhile(rest, func(b byte) bool { return b == '\n' || b == '\r' || isSpace(b) })
	if len(rest) != 0 {
		var zero O
		return zero, NoMatch(rest, KindComplete)
	}
	return value, nil
}
