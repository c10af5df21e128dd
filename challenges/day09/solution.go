package day09

import (
	"slices"

	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/parsers"
)

// History is one sequence of readings along with its first differences.
type History struct {
	Values []int
	Diffs  []int
}

type Challenge struct {
	Histories []History
}

// Each adjacent pair of readings contributes its difference, so the first
// level of differences comes straight out of the parse.
var history = parsers.CollectSeparatedPairs(parsers.SignedNumber[int], parsers.Tag[string](" "), parsers.Fold(
	func() History { return History{} },
	func(acc History, p parsers.Pair[int, int]) History {
		if len(acc.Values) == 0 {
			acc.Values = append(acc.Values, p.First)
		}
		acc.Values = append(acc.Values, p.Second)
		acc.Diffs = append(acc.Diffs, p.Second-p.First)
		return acc
	},
))

func Parse(input string) (aoc.Challenge, error) {
	histories, err := parsers.Finish(parsers.Lines(history), input)
	if err != nil {
		return nil, err
	}
	return &Challenge{Histories: histories}, nil
}

func differences(values []int) []int {
	out := make([]int, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		out = append(out, values[i]-values[i-1])
	}
	return out
}

func allZero(values []int) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}

// Next extrapolates the value after the last reading.
func (h History) Next() int {
	next := h.Values[len(h.Values)-1]
	level := h.Diffs
	for len(level) > 0 && !allZero(level) {
		next += level[len(level)-1]
		level = differences(level)
	}
	return next
}

// Previous extrapolates the value before the first reading.
func (h History) Previous() int {
	firsts := []int{h.Values[0]}
	level := h.Diffs
	for len(level) > 0 && !allZero(level) {
		firsts = append(firsts, level[0])
		level = differences(level)
	}
	prev := 0
	for _, first := range slices.Backward(firsts) {
		prev = first - prev
	}
	return prev
}

func (c *Challenge) PartOne() aoc.Answer {
	total := 0
	for _, h := range c.Histories {
		total += h.Next()
	}
	return aoc.NewAnswer(int64(total))
}

func (c *Challenge) PartTwo() aoc.Answer {
	total := 0
	for _, h := range c.Histories {
		total += h.Previous()
	}
	return aoc.NewAnswer(int64(total))
}
