package parsers

// foldSeparated parses f (sep f)* folding every element into the
// accumulator. A separator that matches but is not followed by an element is
// rolled back.
func foldSeparated[I Input, O, O2, C any](
	f Parser[I, O],
	sep Parser[I, O2],
	allowEmpty bool,
	init func() C,
	fold func(C, O) C,
) Parser[I, C] {
	return func(start I) (I, C, error) {
		var zero C
		acc := init()

		input, value, err := f(start)
		if err != nil {
			if allowEmpty && IsNoMatch(err) {
				return start, acc, nil
			}
			return start, zero, err
		}
		acc = fold(acc, value)

		for {
			afterSep, _, err := sep(input)
			if err != nil {
				if IsNoMatch(err) {
					return input, acc, nil
				}
				return start, zero, err
			}
			// infinite loop check: the separator must always consume
			if len(afterSep) == len(input) {
				return start, zero, Failure(afterSep, KindSeparatedList)
			}

			rest, value, err := f(afterSep)
			if err != nil {
				if IsNoMatch(err) {
					return input, acc, nil
				}
				return start, zero, err
			}
			acc = fold(acc, value)
			input = rest
		}
	}
}

// foldTerminated parses (f term)+. An element whose terminator does not match
// is dropped along with everything it consumed.
func foldTerminated[I Input, O, O2, C any](
	f Parser[I, O],
	term Parser[I, O2],
	init func() C,
	fold func(C, O) C,
) Parser[I, C] {
	return func(start I) (I, C, error) {
		var zero C
		acc := init()

		input, value, err := f(start)
		if err != nil {
			return start, zero, err
		}
		input, _, err = term(input)
		if err != nil {
			return start, zero, err
		}
		acc = fold(acc, value)

		for {
			afterElem, value, err := f(input)
			if err != nil {
				if IsNoMatch(err) {
					return input, acc, nil
				}
				return start, zero, err
			}
			afterTerm, _, err := term(afterElem)
			if err != nil {
				if IsNoMatch(err) {
					return input, acc, nil
				}
				return start, zero, err
			}
			// infinite loop check: the pair must always consume
			if len(afterTerm) == len(input) {
				return start, zero, Failure(afterTerm, KindSeparatedList)
			}
			acc = fold(acc, value)
			input = afterTerm
		}
	}
}

func foldMany1[I Input, O, C any](f Parser[I, O], init func() C, fold func(C, O) C) Parser[I, C] {
	return func(start I) (I, C, error) {
		var zero C
		acc := init()

		input, value, err := f(start)
		if err != nil {
			return start, zero, err
		}
		acc = fold(acc, value)

		for {
			rest, value, err := f(input)
			if err != nil {
				if IsNoMatch(err) {
					return input, acc, nil
				}
				return start, zero, err
			}
			if len(rest) == len(input) {
				return start, zero, Failure(rest, KindMany1)
			}
			acc = fold(acc, value)
			input = rest
		}
	}
}

// SeparatedList1 parses one or more f separated by sep.
func SeparatedList1[I Input, O, O2 any](f Parser[I, O], sep Parser[I, O2]) Parser[I, []O] {
	return SeparatedList1Into(f, sep, IntoSlice[O]())
}

func SeparatedList1Into[I Input, O, O2, C any](f Parser[I, O], sep Parser[I, O2], c Collector[O, C]) Parser[I, C] {
	return foldSeparated(f, sep, false, c.Empty, c.Extend)
}

// SeparatedList0 is SeparatedList1 that succeeds with an empty list when
// the first element does not match.
func SeparatedList0[I Input, O, O2 any](f Parser[I, O], sep Parser[I, O2]) Parser[I, []O] {
	return SeparatedList0Into(f, sep, IntoSlice[O]())
}

func SeparatedList0Into[I Input, O, O2, C any](f Parser[I, O], sep Parser[I, O2], c Collector[O, C]) Parser[I, C] {
	return foldSeparated(f, sep, true, c.Empty, c.Extend)
}

// TerminateList1 parses one or more f each followed by term.
func TerminateList1[I Input, O, O2 any](f Parser[I, O], term Parser[I, O2]) Parser[I, []O] {
	return TerminateList1Into(f, term, IntoSlice[O]())
}

func TerminateList1Into[I Input, O, O2, C any](f Parser[I, O], term Parser[I, O2], c Collector[O, C]) Parser[I, C] {
	return foldTerminated(f, term, c.Empty, c.Extend)
}

// Many1 parses f until it stops matching; it must match at least once.
func Many1[I Input, O any](f Parser[I, O]) Parser[I, []O] {
	return Many1Into(f, IntoSlice[O]())
}

func Many1Into[I Input, O, C any](f Parser[I, O], c Collector[O, C]) Parser[I, C] {
	return foldMany1(f, c.Empty, c.Extend)
}
