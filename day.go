package aoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Day of the event, 1 through 25.
type Day int

const FirstDay Day = 1
const LastDay Day = 25

// ParseDay accepts "7", "07" or "day07".
func ParseDay(s string) (Day, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "day")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	day := Day(n)
	if !day.Valid() {
		return 0, fmt.Errorf("day %d out of range %d-%d", n, FirstDay, LastDay)
	}
	return day, nil
}

func (day Day) Valid() bool {
	return day >= FirstDay && day <= LastDay
}

// String returns the directory name used for the day, e.g. "day07".
func (day Day) String() string {
	return fmt.Sprintf("day%02d", int(day))
}

func (day Day) Int() int {
	return int(day)
}

type Part int

const PartOne Part = 1
const PartTwo Part = 2

func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "one", "part1":
		return PartOne, nil
	case "2", "two", "part2":
		return PartTwo, nil
	}
	return 0, fmt.Errorf("invalid part %q, expected 1 or 2", s)
}

func (part Part) Valid() bool {
	return part == PartOne || part == PartTwo
}

func (part Part) String() string {
	return strconv.Itoa(int(part))
}
