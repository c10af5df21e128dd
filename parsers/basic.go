package parsers

import (
	"strconv"
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// takeWhile splits off the longest prefix whose bytes satisfy pred.
func takeWhile[I Input](input I, pred func(byte) bool) (I, I) {
	n := 0
	for n < len(input) && pred(input[n]) {
		n++
	}
	return input[n:], input[:n]
}

// Tag matches a literal prefix.
func Tag[I Input](tag string) Parser[I, I] {
	return func(input I) (I, I, error) {
		if !hasPrefix(input, tag) {
			return input, input[:0], NoMatch(input, KindTag)
		}
		return input[len(tag):], input[:len(tag)], nil
	}
}

// Char matches a single byte.
func Char[I Input](c byte) Parser[I, byte] {
	return func(input I) (I, byte, error) {
		if len(input) == 0 || input[0] != c {
			return input, 0, NoMatch(input, KindTag)
		}
		return input[1:], c, nil
	}
}

// OneOf matches a single byte from set.
func OneOf[I Input](set string) Parser[I, byte] {
	return func(input I) (I, byte, error) {
		if len(input) > 0 {
			for i := 0; i < len(set); i++ {
				if input[0] == set[i] {
					return input[1:], set[i], nil
				}
			}
		}
		return input, 0, NoMatch(input, KindTag)
	}
}

// Digit parses one ASCII digit as its value.
func Digit[I Input](input I) (I, int, error) {
	if len(input) == 0 || !isDigit(input[0]) {
		return input, 0, NoMatch(input, KindDigit)
	}
	return input[1:], int(input[0] - '0'), nil
}

// Digit1 recognizes one or more ASCII digits.
func Digit1[I Input](input I) (I, I, error) {
	rest, digits := takeWhile(input, isDigit)
	if len(digits) == 0 {
		return input, digits, NoMatch(input, KindDigit)
	}
	return rest, digits, nil
}

// Number parses an unsigned decimal integer into T. Values that overflow T
// do not match.
func Number[T Integer](input string) (string, T, error) {
	return numberOf[string, T](input)
}

// NumberOf is Number for any input type.
func NumberOf[I Input, T Integer]() Parser[I, T] {
	return numberOf[I, T]
}

func numberOf[I Input, T Integer](input I) (I, T, error) {
	rest, digits, err := Digit1(input)
	if err != nil {
		return input, 0, err
	}
	u, err := strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		return input, 0, noMatchCause(input, KindMapRes, err)
	}
	value := T(u)
	if value < 0 || uint64(value) != u {
		return input, 0, noMatchCause(input, KindMapRes, strconv.ErrRange)
	}
	return rest, value, nil
}

// SignedNumber parses a decimal integer with an optional leading '-' or '+'.
func SignedNumber[T Signed](input string) (string, T, error) {
	return signedOf[string, T](input)
}

func signedOf[I Input, T Signed](input I) (I, T, error) {
	rest := input
	negative := false
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == '+') {
		negative = rest[0] == '-'
		rest = rest[1:]
	}
	rest, digits, err := Digit1(rest)
	if err != nil {
		return input, 0, NoMatch(input, KindDigit)
	}
	text := string(digits)
	if negative {
		text = "-" + text
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return input, 0, noMatchCause(input, KindMapRes, err)
	}
	value := T(i)
	if int64(value) != i {
		return input, 0, noMatchCause(input, KindMapRes, strconv.ErrRange)
	}
	return rest, value, nil
}

// Binary parses a run of '0' and '1' as a base 2 number.
func Binary[I Input](input I) (I, uint64, error) {
	rest, bits := takeWhile(input, func(b byte) bool { return b == '0' || b == '1' })
	if len(bits) == 0 {
		return input, 0, NoMatch(input, KindDigit)
	}
	value, err := strconv.ParseUint(string(bits), 2, 64)
	if err != nil {
		return input, 0, noMatchCause(input, KindMapRes, err)
	}
	return rest, value, nil
}

// Space0 skips any spaces and tabs.
func Space0[I Input](input I) (I, I, error) {
	rest, spaces := takeWhile(input, isSpace)
	return rest, spaces, nil
}

// Space1 skips at least one space or tab.
func Space1[I Input](input I) (I, I, error) {
	rest, spaces := takeWhile(input, isSpace)
	if len(spaces) == 0 {
		return input, spaces, NoMatch(input, KindSpace)
	}
	return rest, spaces, nil
}

// LineEnding matches "\n" or "\r\n".
func LineEnding[I Input](input I) (I, I, error) {
	switch {
	case hasPrefix(input, "\n"):
		return input[1:], input[:1], nil
	case hasPrefix(input, "\r\n"):
		return input[2:], input[:2], nil
	}
	return input, input[:0], NoMatch(input, KindLineEnding)
}

// NotLineEnding recognizes everything up to the next line ending or the end
// of input.
func NotLineEnding[I Input](input I) (I, I, error) {
	rest, line := takeWhile(input, func(b byte) bool { return b != '\n' && b != '\r' })
	return rest, line, nil
}

// Skip consumes exactly n bytes.
func Skip[I Input](n int) Parser[I, struct{}] {
	return func(input I) (I, struct{}, error) {
		if len(input) < n {
			return input, struct{}{}, NoMatch(input, KindEof)
		}
		return input[n:], struct{}{}, nil
	}
}

// TakeUntil recognizes everything before the first occurrence of needle,
// which is left unconsumed.
func TakeUntil[I Input](needle string) Parser[I, I] {
	return func(input I) (I, I, error) {
		i := indexOf(input, needle)
		if i < 0 {
			return input, input[:0], NoMatch(input, KindTakeUntil)
		}
		return input[i:], input[:i], nil
	}
}

// Noop always succeeds without consuming anything.
func Noop[I Input](input I) (I, struct{}, error) {
	return input, struct{}{}, nil
}

// Eof matches only at the end of input.
func Eof[I Input](input I) (I, struct{}, error) {
	if len(input) != 0 {
		return input, struct{}{}, NoMatch(input, KindEof)
	}
	return input, struct{}{}, nil
}
