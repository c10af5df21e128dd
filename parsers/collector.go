package parsers

import (
	"github.com/tidwall/btree"
)

// Collector accumulates list items into a container C.
type Collector[O, C any] interface {
	// Empty returns a fresh container.
	Empty() C
	// Extend adds one item and returns the updated container.
	Extend(acc C, item O) C
}

type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

type sliceCollector[O any] struct{}

func (sliceCollector[O]) Empty() []O {
	return []O{}
}

func (sliceCollector[O]) Extend(acc []O, item O) []O {
	return append(acc, item)
}

type countCollector[O any] struct{}

func (countCollector[O]) Empty() int {
	return 0
}

func (countCollector[O]) Extend(acc int, _ O) int {
	return acc + 1
}

type sumCollector[O Numeric] struct{}

func (sumCollector[O]) Empty() O {
	return 0
}

func (sumCollector[O]) Extend(acc O, item O) O {
	return acc + item
}

type lastCollector[O any] struct{}

func (lastCollector[O]) Empty() O {
	var zero O
	return zero
}

func (lastCollector[O]) Extend(_ O, item O) O {
	return item
}

type setCollector[O Ordered] struct{}

func (setCollector[O]) Empty() *btree.Set[O] {
	return &btree.Set[O]{}
}

func (setCollector[O]) Extend(acc *btree.Set[O], item O) *btree.Set[O] {
	acc.Insert(item)
	return acc
}

// IntoSlice collects items into a slice in parse order.
func IntoSlice[O any]() Collector[O, []O] {
	return sliceCollector[O]{}
}

// IntoCount discards items and counts them.
func IntoCount[O any]() Collector[O, int] {
	return countCollector[O]{}
}

// IntoSum adds items together.
func IntoSum[O Numeric]() Collector[O, O] {
	return sumCollector[O]{}
}

// IntoLast keeps only the most recent item.
func IntoLast[O any]() Collector[O, O] {
	return lastCollector[O]{}
}

// IntoSet collects items into an ordered set; duplicates collapse.
func IntoSet[O Ordered]() Collector[O, *btree.Set[O]] {
	return setCollector[O]{}
}

type foldCollector[O, C any] struct {
	init func() C
	fn   func(C, O) C
}

func (f foldCollector[O, C]) Empty() C {
	return f.init()
}

func (f foldCollector[O, C]) Extend(acc C, item O) C {
	return f.fn(acc, item)
}

// Fold builds a collector from a constructor and an accumulate function.
func Fold[O, C any](init func() C, fn func(C, O) C) Collector[O, C] {
	return foldCollector[O, C]{init: init, fn: fn}
}
