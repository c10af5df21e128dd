// Package parsers is a small parser-combinator library for fixed-format line
// inputs.
//
// A Parser consumes a prefix of its input and either returns the rest of the
// input with a value, a recoverable no-match, or a fatal failure. List
// combinators come in two forms that share the same contracts: fold-based
// (SeparatedList1, SeparatedList0, TerminateList1, Many1) and generator-based
// (GenSeparatedList1, GenSeparatedList0, GenMany1, GenSeparatedPairs), where
// each item is produced by a separate call to Resume. Collect and its
// variants turn a generator back into a Parser.
package parsers
