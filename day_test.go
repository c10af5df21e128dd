package aoc_test

import (
	. "github.com/cordialsys/aoc"
)

func (s *AocTestSuite) TestParseDay() {
	require := s.Require()
	for _, input := range []string{"7", "07", "day07", "Day7", " day07 "} {
		day, err := ParseDay(input)
		require.NoError(err, input)
		require.Equal(Day(7), day)
	}
	for _, input := range []string{"", "day", "0", "26", "day-1", "seven"} {
		_, err := ParseDay(input)
		require.Error(err, input)
	}
}

func (s *AocTestSuite) TestDayString() {
	require := s.Require()
	require.Equal("day01", Day(1).String())
	require.Equal("day25", Day(25).String())

	day, err := ParseDay(Day(13).String())
	require.NoError(err)
	require.Equal(Day(13), day)
}

func (s *AocTestSuite) TestParsePart() {
	require := s.Require()
	part, err := ParsePart("1")
	require.NoError(err)
	require.Equal(PartOne, part)

	part, err = ParsePart("two")
	require.NoError(err)
	require.Equal(PartTwo, part)

	_, err = ParsePart("3")
	require.Error(err)
	require.False(Part(3).Valid())
}
