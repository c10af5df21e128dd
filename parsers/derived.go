package parsers

import "strings"

// Lines parses one or more f each terminated by a line ending. A final line
// without a line ending is left unparsed.
func Lines[I Input, O any](f Parser[I, O]) Parser[I, []O] {
	return TerminateList1(f, LineEnding[I])
}

func LinesInto[I Input, O, C any](f Parser[I, O], c Collector[O, C]) Parser[I, C] {
	return TerminateList1Into(f, LineEnding[I], c)
}

// Grid parses rows of one or more cells separated by line endings.
func Grid[I Input, O any](cell Parser[I, O]) Parser[I, [][]O] {
	return SeparatedList1(Many1(cell), LineEnding[I])
}

// SeparatedArray parses exactly n elements separated by sep. Anything after
// the n-th element is left unconsumed. A negative n never matches.
func SeparatedArray[I Input, O, O2 any](n int, f Parser[I, O], sep Parser[I, O2]) Parser[I, []O] {
	return func(start I) (I, []O, error) {
		if n < 0 {
			return start, nil, NoMatch(start, KindCount)
		}
		out := make([]O, 0, n)
		input := start
		for i := 0; i < n; i++ {
			if i > 0 {
				rest, _, err := sep(input)
				if err != nil {
					return start, nil, countErr(start, err)
				}
				input = rest
			}
			rest, value, err := f(input)
			if err != nil {
				return start, nil, countErr(start, err)
			}
			out = append(out, value)
			input = rest
		}
		return input, out, nil
	}
}

func countErr[I Input](input I, err error) error {
	if IsNoMatch(err) {
		return noMatchCause(input, KindCount, err)
	}
	return err
}

// SplitMany matches delimiters in order against s and returns the text
// between them, ending with the text after the last delimiter. s must start
// with the first delimiter.
//
//	SplitMany("Sensor at x=2, y=18", "Sensor at x=", ", y=") // ["2", "18"], true
func SplitMany(s string, delimiters ...string) ([]string, bool) {
	if len(delimiters) == 0 {
		return nil, false
	}
	rest, ok := strings.CutPrefix(s, delimiters[0])
	if !ok {
		return nil, false
	}
	gaps := make([]string, len(delimiters))
	for i := 1; i < len(delimiters); i++ {
		before, after, found := strings.Cut(rest, delimiters[i])
		if !found {
			return nil, false
		}
		gaps[i-1] = before
		rest = after
	}
	gaps[len(delimiters)-1] = rest
	return gaps, true
}
