package day13

import (
	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/parsers"
)

// Pattern is a grid of ash '.' and rocks '#'.
type Pattern [][]byte

func (p Pattern) transpose() Pattern {
	out := make(Pattern, len(p[0]))
	for c := range out {
		out[c] = make([]byte, len(p))
		for r := range p {
			out[c][r] = p[r][c]
		}
	}
	return out
}

// mirrorRow returns how many rows lie above a horizontal line of reflection
// that has exactly smudges mismatched cells, or 0 if there is none.
func (p Pattern) mirrorRow(smudges int) int {
	for line := 1; line < len(p); line++ {
		diff := 0
		for above, below := line-1, line; above >= 0 && below < len(p) && diff <= smudges; above, below = above-1, below+1 {
			for c := range p[above] {
				if p[above][c] != p[below][c] {
					diff++
				}
			}
		}
		if diff == smudges {
			return line
		}
	}
	return 0
}

func (p Pattern) Summarize(smudges int) int {
	if row := p.mirrorRow(smudges); row > 0 {
		return 100 * row
	}
	return p.transpose().mirrorRow(smudges)
}

type Challenge struct {
	Patterns []Pattern
}

var cell = parsers.OneOf[string]("#.")

var blankLine = parsers.Both(parsers.LineEnding[string], parsers.LineEnding[string])

// Patterns are separated by a blank line. The line ending after a pattern's
// last row is rolled back by the grid so that the blank line can match.
var patterns = parsers.SeparatedList1(
	parsers.Map(parsers.Grid(cell), func(rows [][]byte) Pattern { return Pattern(rows) }),
	blankLine,
)

func Parse(input string) (aoc.Challenge, error) {
	ps, err := parsers.Finish(patterns, input)
	if err != nil {
		return nil, err
	}
	return &Challenge{Patterns: ps}, nil
}

func (c *Challenge) solve(smudges int) aoc.Answer {
	total := 0
	for _, p := range c.Patterns {
		total += p.Summarize(smudges)
	}
	return aoc.NewAnswer(int64(total))
}

func (c *Challenge) PartOne() aoc.Answer {
	return c.solve(0)
}

func (c *Challenge) PartTwo() aoc.Answer {
	return c.solve(1)
}
