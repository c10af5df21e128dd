package day02

import (
	"testing"

	"github.com/cordialsys/aoc/parsers"
	"github.com/stretchr/testify/require"
)

const example = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestParse(t *testing.T) {
	require := require.New(t)
	challenge, err := Parse(example)
	require.NoError(err)

	games := challenge.(*Challenge).Games
	require.Len(games, 5)
	require.Equal(Game{ID: 1, Fewest: Cubes{Red: 4, Green: 2, Blue: 6}}, games[0])
	require.Equal(Game{ID: 3, Fewest: Cubes{Red: 20, Green: 13, Blue: 6}}, games[2])
}

func TestRoundTally(t *testing.T) {
	require := require.New(t)
	rest, cubes, err := round("3 blue, 4 red, 2 blue; 1 red")
	require.NoError(err)
	require.Equal(Cubes{Red: 4, Blue: 5}, cubes)
	require.Equal("; 1 red", rest)

	_, _, err = round("3 purple")
	require.True(parsers.IsNoMatch(err))
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("Game 1: 3 blue, 4 red\nGame x: 1 red\n")
	require.Error(t, err)
}

func TestSolve(t *testing.T) {
	require := require.New(t)
	challenge, err := Parse(example)
	require.NoError(err)
	require.Equal("8", challenge.PartOne().String())
	require.Equal("2286", challenge.PartTwo().String())
}
