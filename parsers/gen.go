package parsers

import "iter"

// Generator produces list items one at a time. Each call to Resume runs the
// parse up to the next item and suspends there; the cursor and loop state are
// kept in the generator between calls.
//
// Resume returns false once the generator has completed, after which Result
// reports the final cursor or the error that stopped it. Resuming a completed
// generator panics.
type Generator[I Input, O any] interface {
	Resume() (O, bool)
	Result() (I, error)
}

type genState uint8

const (
	genStart genState = iota
	genSuspended
	genDone
)

// genBase holds the completion bookkeeping shared by every generator.
type genBase[I Input] struct {
	state genState
	input I
	err   error
}

func (g *genBase[I]) checkResumable() {
	if g.state == genDone {
		panic(ErrResumeCompleted)
	}
}

func (g *genBase[I]) complete(err error) {
	g.state = genDone
	g.err = err
}

func (g *genBase[I]) Result() (I, error) {
	if g.state != genDone {
		panic(ErrNotCompleted)
	}
	return g.input, g.err
}

// stop completes the generator after a failed attempt. A no-match leaves the
// cursor at the last accepted element; anything else is propagated.
func (g *genBase[I]) stop(err error) {
	if IsNoMatch(err) {
		g.complete(nil)
		return
	}
	g.complete(err)
}

type separatedListGen[I Input, O, O2 any] struct {
	genBase[I]
	f          Parser[I, O]
	sep        Parser[I, O2]
	allowEmpty bool
}

// GenSeparatedList1 yields each f of f (sep f)*, requiring at least one.
func GenSeparatedList1[I Input, O, O2 any](input I, f Parser[I, O], sep Parser[I, O2]) Generator[I, O] {
	return &separatedListGen[I, O, O2]{genBase: genBase[I]{input: input}, f: f, sep: sep}
}

// GenSeparatedList0 is GenSeparatedList1 that completes without yielding when
// the first element does not match.
func GenSeparatedList0[I Input, O, O2 any](input I, f Parser[I, O], sep Parser[I, O2]) Generator[I, O] {
	return &separatedListGen[I, O, O2]{genBase: genBase[I]{input: input}, f: f, sep: sep, allowEmpty: true}
}

func (g *separatedListGen[I, O, O2]) Resume() (O, bool) {
	var zero O
	g.checkResumable()

	if g.state == genStart {
		rest, value, err := g.f(g.input)
		if err != nil {
			if g.allowEmpty {
				g.stop(err)
			} else {
				g.complete(err)
			}
			return zero, false
		}
		g.input = rest
		g.state = genSuspended
		return value, true
	}

	afterSep, _, err := g.sep(g.input)
	if err != nil {
		g.stop(err)
		return zero, false
	}
	// infinite loop check: the separator must always consume
	if len(afterSep) == len(g.input) {
		g.complete(Failure(afterSep, KindSeparatedList))
		return zero, false
	}
	rest, value, err := g.f(afterSep)
	if err != nil {
		g.stop(err)
		return zero, false
	}
	g.input = rest
	return value, true
}

type many1Gen[I Input, O any] struct {
	genBase[I]
	f Parser[I, O]
}

// GenMany1 yields each f of f+.
func GenMany1[I Input, O any](input I, f Parser[I, O]) Generator[I, O] {
	return &many1Gen[I, O]{genBase: genBase[I]{input: input}, f: f}
}

func (g *many1Gen[I, O]) Resume() (O, bool) {
	var zero O
	g.checkResumable()

	rest, value, err := g.f(g.input)
	if err != nil {
		if g.state == genStart {
			g.complete(err)
		} else {
			g.stop(err)
		}
		return zero, false
	}
	if g.state == genSuspended && len(rest) == len(g.input) {
		g.complete(Failure(rest, KindMany1))
		return zero, false
	}
	g.input = rest
	g.state = genSuspended
	return value, true
}

type separatedPairsGen[I Input, O, O2 any] struct {
	genBase[I]
	f     Parser[I, O]
	sep   Parser[I, O2]
	prev  O
	inner Generator[I, O]
}

// GenSeparatedPairs parses f (sep f)+ and yields every pair of adjacent
// elements. At least two elements are required.
func GenSeparatedPairs[I Input, O, O2 any](input I, f Parser[I, O], sep Parser[I, O2]) Generator[I, Pair[O, O]] {
	return &separatedPairsGen[I, O, O2]{genBase: genBase[I]{input: input}, f: f, sep: sep}
}

func (g *separatedPairsGen[I, O, O2]) Resume() (Pair[O, O], bool) {
	var zero Pair[O, O]
	g.checkResumable()

	if g.state == genStart {
		rest, first, err := g.f(g.input)
		if err != nil {
			g.complete(err)
			return zero, false
		}
		afterSep, _, err := g.sep(rest)
		if err != nil {
			g.complete(err)
			return zero, false
		}
		if len(afterSep) == len(rest) {
			g.complete(Failure(afterSep, KindSeparatedList))
			return zero, false
		}
		g.prev = first
		g.inner = GenSeparatedList1(afterSep, g.f, g.sep)
		g.state = genSuspended
	}

	next, ok := g.inner.Resume()
	if !ok {
		g.input, g.err = g.inner.Result()
		g.complete(g.err)
		return zero, false
	}
	pair := Pair[O, O]{First: g.prev, Second: next}
	g.prev = next
	return pair, true
}

// Seq adapts a generator for use with range. Breaking out of the loop leaves
// the generator suspended; it holds nothing that needs releasing.
func Seq[I Input, O any](gen Generator[I, O]) iter.Seq[O] {
	return func(yield func(O) bool) {
		for {
			value, ok := gen.Resume()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
