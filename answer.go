package aoc

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Answer is the solution to one part of a puzzle. Puzzle answers are almost
// always integers but can outgrow int64, so they are kept as decimals.
type Answer decimal.Decimal

// NewAnswer creates a new Answer from an int64
func NewAnswer(i64 int64) Answer {
	return Answer(decimal.NewFromInt(i64))
}

// NewAnswerFromUint64 creates a new Answer from a uint64
func NewAnswerFromUint64(u64 uint64) Answer {
	return Answer(decimal.NewFromBigInt(new(big.Int).SetUint64(u64), 0))
}

// NewAnswerFromStr creates a new Answer from a string
func NewAnswerFromStr(str string) (Answer, error) {
	dec, err := decimal.NewFromString(strings.TrimSpace(str))
	return Answer(dec), err
}

func (answer Answer) Decimal() decimal.Decimal {
	return decimal.Decimal(answer)
}

func (answer Answer) String() string {
	return decimal.Decimal(answer).String()
}

func (answer Answer) Equal(other Answer) bool {
	return decimal.Decimal(answer).Equal(decimal.Decimal(other))
}

func (answer Answer) Add(x Answer) Answer {
	return Answer(decimal.Decimal(answer).Add(decimal.Decimal(x)))
}

func (answer Answer) Mul(x Answer) Answer {
	return Answer(decimal.Decimal(answer).Mul(decimal.Decimal(x)))
}

func (answer Answer) IsZero() bool {
	return decimal.Decimal(answer).IsZero()
}

var _ json.Marshaler = Answer{}
var _ json.Unmarshaler = &Answer{}
var _ yaml.Unmarshaler = &Answer{}
var _ yaml.Marshaler = Answer{}
var _ yaml.IsZeroer = Answer{}
var _ encoding.TextMarshaler = Answer{}
var _ encoding.TextUnmarshaler = &Answer{}

func (b Answer) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

func (b *Answer) UnmarshalYAML(node *yaml.Node) error {
	value := strings.TrimSpace(node.Value)
	value = strings.Trim(value, "\"")
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid answer: %v", err)
	}
	*b = Answer(dec)
	return nil
}

func (b Answer) MarshalJSON() ([]byte, error) {
	return []byte("\"" + b.String() + "\""), nil
}

func (b *Answer) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	str := strings.Trim(string(p), "\"")
	dec, err := decimal.NewFromString(str)
	if err != nil {
		return err
	}
	*b = Answer(dec)
	return nil
}

func (b Answer) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Answer) UnmarshalText(p []byte) error {
	dec, err := decimal.NewFromString(string(p))
	if err != nil {
		return fmt.Errorf("invalid answer: %v", err)
	}
	*b = Answer(dec)
	return nil
}
