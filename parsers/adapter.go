package parsers

// Collect turns a generator constructor into a parser. Every invocation
// creates one generator on its input, resumes it until it completes and
// extends a fresh container with each yielded item.
func Collect[I Input, O, C any](newGen func(I) Generator[I, O], c Collector[O, C]) Parser[I, C] {
	return func(input I) (I, C, error) {
		gen := newGen(input)
		acc := c.Empty()
		for {
			value, ok := gen.Resume()
			if !ok {
				break
			}
			acc = c.Extend(acc, value)
		}
		rest, err := gen.Result()
		if err != nil {
			var zero C
			return input, zero, err
		}
		return rest, acc, nil
	}
}

func CollectSeparatedList1[I Input, O, O2, C any](f Parser[I, O], sep Parser[I, O2], c Collector[O, C]) Parser[I, C] {
	return Collect(func(input I) Generator[I, O] {
		return GenSeparatedList1(input, f, sep)
	}, c)
}

func CollectSeparatedList0[I Input, O, O2, C any](f Parser[I, O], sep Parser[I, O2], c Collector[O, C]) Parser[I, C] {
	return Collect(func(input I) Generator[I, O] {
		return GenSeparatedList0(input, f, sep)
	}, c)
}

func CollectMany1[I Input, O, C any](f Parser[I, O], c Collector[O, C]) Parser[I, C] {
	return Collect(func(input I) Generator[I, O] {
		return GenMany1(input, f)
	}, c)
}

// CollectSeparatedPairs collects every adjacent pair of f (sep f)+.
func CollectSeparatedPairs[I Input, O, O2, C any](f Parser[I, O], sep Parser[I, O2], c Collector[Pair[O, O], C]) Parser[I, C] {
	return Collect(func(input I) Generator[I, Pair[O, O]] {
		return GenSeparatedPairs(input, f, sep)
	}, c)
}
