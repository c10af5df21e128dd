package parsers_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/cordialsys/aoc/parsers"
	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	require := require.New(t)

	rest, out, err := parsers.Tag[string]("Game ")("Game 12")
	require.NoError(err)
	require.Equal("Game ", out)
	require.Equal("12", rest)

	rest, _, err = parsers.Tag[string]("Game ")("Gam")
	require.True(parsers.IsNoMatch(err))
	require.Equal(parsers.KindTag, parsers.KindOf(err))
	require.Equal("Gam", rest)

	restBytes, outBytes, err := parsers.Tag[[]byte]("ab")([]byte("abc"))
	require.NoError(err)
	require.Equal([]byte("ab"), outBytes)
	require.Equal([]byte("c"), restBytes)
}

func TestNumbers(t *testing.T) {
	require := require.New(t)

	rest, n, err := parsers.Number[int]("123abc")
	require.NoError(err)
	require.Equal(123, n)
	require.Equal("abc", rest)

	rest, _, err = parsers.Number[uint8]("300")
	require.True(parsers.IsNoMatch(err))
	require.Equal(parsers.KindMapRes, parsers.KindOf(err))
	require.ErrorIs(err, strconv.ErrRange)
	require.Equal("300", rest)

	_, small, err := parsers.Number[uint8]("255")
	require.NoError(err)
	require.Equal(uint8(255), small)

	_, _, err = parsers.Number[int]("-5")
	require.True(parsers.IsNoMatch(err))

	rest, signed, err := parsers.SignedNumber[int]("-12 4")
	require.NoError(err)
	require.Equal(-12, signed)
	require.Equal(" 4", rest)

	_, signed64, err := parsers.SignedNumber[int64]("+7")
	require.NoError(err)
	require.Equal(int64(7), signed64)

	_, _, err = parsers.SignedNumber[int8]("-129")
	require.Equal(parsers.KindMapRes, parsers.KindOf(err))

	rest, _, err = parsers.SignedNumber[int]("-x")
	require.True(parsers.IsNoMatch(err))
	require.Equal("-x", rest)

	rest, bits, err := parsers.Binary[string]("1011 01")
	require.NoError(err)
	require.Equal(uint64(11), bits)
	require.Equal(" 01", rest)

	brest, b, err := parsers.NumberOf[[]byte, uint16]()([]byte("65535!"))
	require.NoError(err)
	require.Equal(uint16(65535), b)
	require.Equal([]byte("!"), brest)
}

func TestSkipAndTake(t *testing.T) {
	require := require.New(t)

	rest, _, err := parsers.Skip[string](3)("abcdef")
	require.NoError(err)
	require.Equal("def", rest)

	_, _, err = parsers.Skip[string](3)("ab")
	require.Equal(parsers.KindEof, parsers.KindOf(err))

	rest, taken, err := parsers.TakeUntil[string](": ")("Card 1: 41 48")
	require.NoError(err)
	require.Equal("Card 1", taken)
	require.Equal(": 41 48", rest)

	_, _, err = parsers.TakeUntil[string]("|")("no bar")
	require.Equal(parsers.KindTakeUntil, parsers.KindOf(err))

	rest, line, err := parsers.NotLineEnding[string]("abc\r\ndef")
	require.NoError(err)
	require.Equal("abc", line)
	require.Equal("\r\ndef", rest)

	rest, _, err = parsers.Space1[string]("  \tx")
	require.NoError(err)
	require.Equal("x", rest)

	_, _, err = parsers.Space1[string]("x")
	require.Equal(parsers.KindSpace, parsers.KindOf(err))
}

func TestAlt(t *testing.T) {
	require := require.New(t)

	color := parsers.Alt(
		parsers.Value(0, parsers.Tag[string]("red")),
		parsers.Value(1, parsers.Tag[string]("green")),
		parsers.Value(2, parsers.Tag[string]("blue")),
	)
	rest, out, err := color("green, 1")
	require.NoError(err)
	require.Equal(1, out)
	require.Equal(", 1", rest)

	_, _, err = color("pink")
	require.True(parsers.IsNoMatch(err))
	require.Equal(parsers.KindAlt, parsers.KindOf(err))

	// a failure stops the search
	committed := parsers.Alt(parsers.Cut(parsers.Value(0, parsers.Tag[string]("x"))), parsers.Value(1, parsers.Tag[string]("y")))
	_, _, err = committed("y")
	require.True(parsers.IsFatal(err))
}

func TestOptAndCut(t *testing.T) {
	require := require.New(t)

	rest, out, err := parsers.Opt(number)("abc")
	require.NoError(err)
	require.Equal(0, out)
	require.Equal("abc", rest)

	_, _, err = parsers.Opt(parsers.Cut(number))("abc")
	require.True(parsers.IsFatal(err))

	_, _, err = parsers.Cut(number)("abc")
	var perr *parsers.Error
	require.True(errors.As(err, &perr))
	require.True(perr.Fatal)
	require.Equal(parsers.KindDigit, perr.Kind)
	require.Equal(3, perr.Remaining)

	// the original error is left untouched
	_, _, original := number("abc")
	require.True(parsers.IsNoMatch(original))
}

func TestSequences(t *testing.T) {
	require := require.New(t)

	game := parsers.Delimited(parsers.Tag[string]("Game "), number, parsers.Tag[string](": "))
	rest, id, err := game("Game 17: 3 blue")
	require.NoError(err)
	require.Equal(17, id)
	require.Equal("3 blue", rest)

	rest, _, err = game("Game 17; 3 blue")
	require.True(parsers.IsNoMatch(err))
	require.Equal("Game 17; 3 blue", rest)

	rest, pair, err := parsers.Both(number, parsers.Preceded(space, parsers.Tag[string]("red")))("3 red!")
	require.NoError(err)
	require.Equal(3, pair.First)
	require.Equal("red", pair.Second)
	require.Equal("!", rest)

	rest, text, err := parsers.Recognize(parsers.SeparatedList1(number, comma))("1, 22, 333; x")
	require.NoError(err)
	require.Equal("1, 22, 333", text)
	require.Equal("; x", rest)
}

func TestMapResAndVerify(t *testing.T) {
	require := require.New(t)

	even := parsers.Verify(number, func(n int) bool { return n%2 == 0 })
	_, out, err := even("42")
	require.NoError(err)
	require.Equal(42, out)
	_, _, err = even("41")
	require.Equal(parsers.KindVerify, parsers.KindOf(err))

	errOdd := errors.New("odd")
	half := parsers.MapRes(number, func(n int) (int, error) {
		if n%2 != 0 {
			return 0, errOdd
		}
		return n / 2, nil
	})
	_, out, err = half("42")
	require.NoError(err)
	require.Equal(21, out)
	_, _, err = half("41")
	require.True(parsers.IsNoMatch(err))
	require.ErrorIs(err, errOdd)
}

func TestCompleteAndFinish(t *testing.T) {
	require := require.New(t)

	_, _, err := parsers.Complete(number)("12x")
	require.Equal(parsers.KindComplete, parsers.KindOf(err))

	rest, out, err := parsers.Complete(number)("12")
	require.NoError(err)
	require.Equal(12, out)
	require.Empty(rest)

	values, err := parsers.Finish(parsers.Lines(number), "1\n2\n3\n\n")
	require.NoError(err)
	require.Equal([]int{1, 2, 3}, values)

	_, err = parsers.Finish(parsers.Lines(number), "1\n2\nx\n")
	require.Equal(parsers.KindComplete, parsers.KindOf(err))

	_, err = parsers.Finish(parsers.Lines(number), "x")
	require.Equal(parsers.KindDigit, parsers.KindOf(err))
}
