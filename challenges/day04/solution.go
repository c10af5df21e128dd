package day04

import (
	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/parsers"
	"github.com/tidwall/btree"
)

type Card struct {
	ID      int
	Winning *btree.Set[int]
	Have    []int
}

// Matches counts the numbers on the card that are winning numbers.
func (c *Card) Matches() int {
	n := 0
	for _, v := range c.Have {
		if c.Winning.Contains(v) {
			n++
		}
	}
	return n
}

type Challenge struct {
	Cards []*Card
}

var number = parsers.Number[int]
var spaces = parsers.Space1[string]

// "Card   1: "
var header = parsers.Delimited(
	parsers.Both(parsers.Tag[string]("Card"), spaces),
	number,
	parsers.Both(parsers.Tag[string](":"), spaces),
)

// The separator of the winning numbers also precedes the bar, so the
// trailing space is rolled back for the bar to match.
var winning = parsers.SeparatedList1Into(number, spaces, parsers.IntoSet[int]())

var bar = parsers.Delimited(spaces, parsers.Tag[string]("|"), spaces)

var have = parsers.SeparatedList1(number, spaces)

var card = parsers.Map(
	parsers.Both(header, parsers.Both(parsers.Terminated(winning, bar), have)),
	func(p parsers.Pair[int, parsers.Pair[*btree.Set[int], []int]]) *Card {
		return &Card{ID: p.First, Winning: p.Second.First, Have: p.Second.Second}
	},
)

func Parse(input string) (aoc.Challenge, error) {
	cards, err := parsers.Finish(parsers.Lines(card), input)
	if err != nil {
		return nil, err
	}
	return &Challenge{Cards: cards}, nil
}

func (c *Challenge) PartOne() aoc.Answer {
	total := 0
	for _, card := range c.Cards {
		if m := card.Matches(); m > 0 {
			total += 1 << (m - 1)
		}
	}
	return aoc.NewAnswer(int64(total))
}

func (c *Challenge) PartTwo() aoc.Answer {
	copies := make([]int, len(c.Cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, card := range c.Cards {
		total += copies[i]
		for j := i + 1; j <= i+card.Matches() && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.NewAnswer(int64(total))
}
