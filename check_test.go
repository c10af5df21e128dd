package aoc_test

import (
	"errors"
	"strconv"
	"strings"

	. "github.com/cordialsys/aoc"
)

// counter sums its lines for part one and multiplies them for part two.
// Solving mutates it, so sharing one between parts would be visible.
type counter struct {
	values []int64
	solved bool
}

func (c *counter) PartOne() Answer {
	if c.solved {
		return NewAnswer(-1)
	}
	c.solved = true
	var total int64
	for _, v := range c.values {
		total += v
	}
	return NewAnswer(total)
}

func (c *counter) PartTwo() Answer {
	if c.solved {
		return NewAnswer(-1)
	}
	c.solved = true
	total := int64(1)
	for _, v := range c.values {
		total *= v
	}
	return NewAnswer(total)
}

func parseCounter(input string) (Challenge, error) {
	c := &counter{}
	for _, line := range strings.Fields(input) {
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, err
		}
		c.values = append(c.values, v)
	}
	return c, nil
}

func (s *AocTestSuite) TestCheck() {
	require := s.Require()
	report, err := Check(Day(1), parseCounter, "2\n3\n7\n")
	require.NoError(err)
	require.Equal(Day(1), report.Day)
	require.Equal("12", report.PartOne.String())
	require.Equal("42", report.PartTwo.String())
	require.Equal("42", report.Answer(PartTwo).String())
	require.Contains(report.String(), "day01")
}

func (s *AocTestSuite) TestCheckParseError() {
	require := s.Require()
	_, err := Check(Day(1), parseCounter, "2\nx\n")
	require.Error(err)
	require.Contains(err.Error(), "day01")

	var numErr *strconv.NumError
	require.True(errors.As(err, &numErr))
}

func (s *AocTestSuite) TestMustParse() {
	require := s.Require()
	require.Panics(func() {
		MustParse(parseCounter, "nope")
	})
	challenge := MustParse(parseCounter, "5 5")
	answer, err := Solve(challenge, PartTwo)
	require.NoError(err)
	require.Equal("25", answer.String())

	_, err = Solve(challenge, Part(0))
	require.Error(err)
}

func (s *AocTestSuite) TestRegistry() {
	require := s.Require()
	registry := NewRegistry()
	require.NoError(registry.Register(Day(9), parseCounter))
	require.NoError(registry.Register(Day(2), parseCounter))
	require.NoError(registry.Register(Day(13), parseCounter))

	require.Error(registry.Register(Day(2), parseCounter))
	require.Error(registry.Register(Day(26), parseCounter))
	require.Panics(func() {
		registry.MustRegister(Day(9), parseCounter)
	})

	require.Equal([]Day{2, 9, 13}, registry.Days())
	require.Equal(3, registry.Len())
	require.True(registry.Has(Day(9)))
	_, ok := registry.Get(Day(4))
	require.False(ok)

	inputs := map[Day]string{2: "1 2", 13: "3 4"}
	reports, err := CheckAll(registry, func(day Day) (string, bool) {
		input, ok := inputs[day]
		return input, ok
	})
	require.NoError(err)
	require.Len(reports, 2)
	require.Equal(Day(2), reports[0].Day)
	require.Equal("3", reports[0].PartOne.String())
	require.Equal(Day(13), reports[1].Day)
	require.Equal("12", reports[1].PartTwo.String())
}
