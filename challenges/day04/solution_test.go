package day04

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const example = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestParseCard(t *testing.T) {
	require := require.New(t)
	rest, c, err := card("Card   3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1\n")
	require.NoError(err)
	require.Equal("\n", rest)
	require.Equal(3, c.ID)
	require.Equal(5, c.Winning.Len())
	require.Equal([]int{69, 82, 63, 72, 16, 21, 14, 1}, c.Have)
	require.Equal(2, c.Matches())
}

func TestSolve(t *testing.T) {
	require := require.New(t)
	challenge, err := Parse(example)
	require.NoError(err)
	require.Len(challenge.(*Challenge).Cards, 6)
	require.Equal("13", challenge.PartOne().String())
	require.Equal("30", challenge.PartTwo().String())
}

func TestParseMissingBar(t *testing.T) {
	_, err := Parse("Card 1: 41 48 83 86 17 83 86\n")
	require.Error(t, err)
}
