// Package challenges registers every solved day.
package challenges

import (
	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/challenges/day02"
	"github.com/cordialsys/aoc/challenges/day04"
	"github.com/cordialsys/aoc/challenges/day06"
	"github.com/cordialsys/aoc/challenges/day09"
	"github.com/cordialsys/aoc/challenges/day13"
)

// Registry returns a registry of all days with a solution. Add new days here
// after scaffolding them.
func Registry() *aoc.Registry {
	registry := aoc.NewRegistry()
	registry.MustRegister(2, day02.Parse)
	registry.MustRegister(4, day04.Parse)
	registry.MustRegister(6, day06.Parse)
	registry.MustRegister(9, day09.Parse)
	registry.MustRegister(13, day13.Parse)
	return registry
}
