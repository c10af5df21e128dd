package day02

import (
	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/parsers"
)

// Cubes is a count of cubes per color.
type Cubes struct {
	Red, Green, Blue int
}

func (c Cubes) Max(other Cubes) Cubes {
	return Cubes{max(c.Red, other.Red), max(c.Green, other.Green), max(c.Blue, other.Blue)}
}

func (c Cubes) Within(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

type color int

const (
	red color = iota
	green
	blue
)

type Game struct {
	ID int
	// Fewest cubes of each color that make every round possible
	Fewest Cubes
}

type Challenge struct {
	Games []Game
}

var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

var number = parsers.Number[int]

var colorName = parsers.Alt(
	parsers.Value(red, parsers.Tag[string]("red")),
	parsers.Value(green, parsers.Tag[string]("green")),
	parsers.Value(blue, parsers.Tag[string]("blue")),
)

// "3 blue"
var draw = parsers.Both(parsers.Terminated(number, parsers.Space1[string]), colorName)

// "3 blue, 4 red" tallied into a single Cubes
var round = parsers.SeparatedList1Into(draw, parsers.Tag[string](", "), parsers.Fold(
	func() Cubes { return Cubes{} },
	func(acc Cubes, d parsers.Pair[int, color]) Cubes {
		switch d.Second {
		case red:
			acc.Red += d.First
		case green:
			acc.Green += d.First
		case blue:
			acc.Blue += d.First
		}
		return acc
	},
))

// every round folded into the per-color maximum
var rounds = parsers.SeparatedList1Into(round, parsers.Tag[string]("; "), parsers.Fold(
	func() Cubes { return Cubes{} },
	Cubes.Max,
))

var game = parsers.Map(
	parsers.Both(parsers.Delimited(parsers.Tag[string]("Game "), number, parsers.Tag[string](": ")), rounds),
	func(p parsers.Pair[int, Cubes]) Game { return Game{ID: p.First, Fewest: p.Second} },
)

func Parse(input string) (aoc.Challenge, error) {
	games, err := parsers.Finish(parsers.SeparatedList1(game, parsers.LineEnding[string]), input)
	if err != nil {
		return nil, err
	}
	return &Challenge{Games: games}, nil
}

func (c *Challenge) PartOne() aoc.Answer {
	total := 0
	for _, g := range c.Games {
		if g.Fewest.Within(Bag) {
			total += g.ID
		}
	}
	return aoc.NewAnswer(int64(total))
}

func (c *Challenge) PartTwo() aoc.Answer {
	total := 0
	for _, g := range c.Games {
		total += g.Fewest.Power()
	}
	return aoc.NewAnswer(int64(total))
}
