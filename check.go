package aoc

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Report is the outcome of solving both parts of a day.
type Report struct {
	Day     Day           `json:"day" yaml:"day"`
	PartOne Answer        `json:"part_one" yaml:"part_one"`
	PartTwo Answer        `json:"part_two" yaml:"part_two"`
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

func (r *Report) Answer(part Part) Answer {
	if part == PartTwo {
		return r.PartTwo
	}
	return r.PartOne
}

func (r *Report) String() string {
	return fmt.Sprintf("%s: part one = %s, part two = %s (%s)", r.Day, r.PartOne, r.PartTwo, r.Elapsed)
}

// Check solves both parts of day. Each part gets its own freshly parsed
// challenge so that solving one part cannot affect the other.
func Check(day Day, parse ParseFunc, input string) (*Report, error) {
	start := time.Now()
	report := &Report{Day: day}

	for _, part := range []Part{PartOne, PartTwo} {
		challenge, err := parse(input)
		if err != nil {
			return nil, fmt.Errorf("could not parse %s input: %w", day, err)
		}
		answer, err := Solve(challenge, part)
		if err != nil {
			return nil, err
		}
		if part == PartOne {
			report.PartOne = answer
		} else {
			report.PartTwo = answer
		}
	}
	report.Elapsed = time.Since(start)

	logrus.WithFields(logrus.Fields{
		"day":      day,
		"part_one": report.PartOne,
		"part_two": report.PartTwo,
		"elapsed":  report.Elapsed,
	}).Debug("checked")
	return report, nil
}

// CheckAll solves every day in the registry that has an input, in day order.
// Days without an input are skipped.
func CheckAll(registry *Registry, inputs func(Day) (string, bool)) ([]*Report, error) {
	reports := []*Report{}
	for _, day := range registry.Days() {
		input, ok := inputs(day)
		if !ok {
			logrus.WithField("day", day).Debug("no input, skipping")
			continue
		}
		parse, _ := registry.Get(day)
		report, err := Check(day, parse, input)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
