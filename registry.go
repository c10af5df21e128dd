package aoc

import (
	"fmt"

	"github.com/tidwall/btree"
)

// Registry maps days to their parsers, iterated in day order.
type Registry struct {
	days *btree.Map[Day, ParseFunc]
}

func NewRegistry() *Registry {
	return &Registry{
		days: btree.NewMap[Day, ParseFunc](0),
	}
}

// Register adds parse for day. A day can only be registered once.
func (r *Registry) Register(day Day, parse ParseFunc) error {
	if !day.Valid() {
		return fmt.Errorf("cannot register %s: out of range", day)
	}
	if _, ok := r.days.Get(day); ok {
		return fmt.Errorf("%s is already registered", day)
	}
	r.days.Set(day, parse)
	return nil
}

// MustRegister is Register for package initialization.
func (r *Registry) MustRegister(day Day, parse ParseFunc) {
	if err := r.Register(day, parse); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(day Day) (ParseFunc, bool) {
	return r.days.Get(day)
}

func (r *Registry) Has(day Day) bool {
	_, ok := r.days.Get(day)
	return ok
}

// Days returns every registered day in ascending order.
func (r *Registry) Days() []Day {
	days := make([]Day, 0, r.days.Len())
	r.days.Scan(func(day Day, _ ParseFunc) bool {
		days = append(days, day)
		return true
	})
	return days
}

func (r *Registry) Len() int {
	return r.days.Len()
}
