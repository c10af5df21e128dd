package aoc

import "fmt"

// Challenge is a parsed puzzle input that can solve both parts.
type Challenge interface {
	PartOne() Answer
	PartTwo() Answer
}

// ParseFunc parses a raw puzzle input into a Challenge.
type ParseFunc func(input string) (Challenge, error)

// MustParse is for tests and examples where the input is known to be good.
func MustParse(parse ParseFunc, input string) Challenge {
	challenge, err := parse(input)
	if err != nil {
		panic(fmt.Sprintf("could not parse input: %v", err))
	}
	return challenge
}

// Solve runs a single part of challenge.
func Solve(challenge Challenge, part Part) (Answer, error) {
	switch part {
	case PartOne:
		return challenge.PartOne(), nil
	case PartTwo:
		return challenge.PartTwo(), nil
	}
	return Answer{}, fmt.Errorf("invalid part %d", part)
}
