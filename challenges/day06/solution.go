package day06

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/parsers"
)

type Race struct {
	Time, Distance int
}

// Ways counts the hold times that beat the record distance.
func (r Race) Ways() int {
	// holding for h travels h*(Time-h), symmetric around Time/2
	for hold := 0; hold <= r.Time/2; hold++ {
		if hold*(r.Time-hold) > r.Distance {
			return r.Time - 2*hold + 1
		}
	}
	return 0
}

type Challenge struct {
	Races []Race
	// Kerned is the single race read with the spaces between numbers removed.
	Kerned Race
}

var spaces = parsers.Space1[string]

func row(label string) parsers.Parser[string, []int] {
	return parsers.Delimited(
		parsers.Both(parsers.Tag[string](label), spaces),
		parsers.SeparatedList1(parsers.Number[int], spaces),
		parsers.LineEnding[string],
	)
}

var races = parsers.Both(row("Time:"), row("Distance:"))

func Parse(input string) (aoc.Challenge, error) {
	rows, err := parsers.Finish(races, input)
	if err != nil {
		return nil, err
	}
	if len(rows.First) != len(rows.Second) {
		return nil, fmt.Errorf("%d times but %d distances", len(rows.First), len(rows.Second))
	}
	c := &Challenge{}
	var times, distances strings.Builder
	for i := range rows.First {
		c.Races = append(c.Races, Race{Time: rows.First[i], Distance: rows.Second[i]})
		times.WriteString(strconv.Itoa(rows.First[i]))
		distances.WriteString(strconv.Itoa(rows.Second[i]))
	}
	if c.Kerned.Time, err = parsers.Finish(parsers.Number[int], times.String()); err != nil {
		return nil, fmt.Errorf("kerned time %s does not fit: %w", times.String(), err)
	}
	if c.Kerned.Distance, err = parsers.Finish(parsers.Number[int], distances.String()); err != nil {
		return nil, fmt.Errorf("kerned distance %s does not fit: %w", distances.String(), err)
	}
	return c, nil
}

func (c *Challenge) PartOne() aoc.Answer {
	product := 1
	for _, race := range c.Races {
		product *= race.Ways()
	}
	return aoc.NewAnswer(int64(product))
}

// PartTwo solves the kerned race.
func (c *Challenge) PartTwo() aoc.Answer {
	return aoc.NewAnswer(int64(c.Kerned.Ways()))
}
