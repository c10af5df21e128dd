package parsers

// Input is the remaining input a parser advances over. Parsers only ever
// re-slice it, so passing it around is as cheap as copying a slice header.
type Input interface {
	~string | ~[]byte
}

// Parser consumes a prefix of the input and returns the rest along with the
// parsed value.
//
// A parser that does not apply returns a non-fatal *Error (see IsNoMatch), in
// which case callers continue from the input they passed in. Any other error
// is fatal and aborts the whole parse.
type Parser[I Input, O any] func(input I) (I, O, error)

func (p Parser[I, O]) Parse(input I) (I, O, error) {
	return p(input)
}

// Pair holds the outputs of two parsers run in sequence, or two adjacent
// elements of a list.
type Pair[A, B any] struct {
	First  A
	Second B
}

func hasPrefix[I Input](input I, prefix string) bool {
	if len(input) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if input[i] != prefix[i] {
			return false
		}
	}
	return true
}

func indexOf[I Input](input I, needle string) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(input); i++ {
		if hasPrefix(input[i:], needle) {
			return i
		}
	}
	return -1
}
