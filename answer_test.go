package aoc_test

import (
	"encoding/json"

	. "github.com/cordialsys/aoc"
	"gopkg.in/yaml.v3"
)

func (s *AocTestSuite) TestNewAnswer() {
	require := s.Require()
	answer := NewAnswer(123)
	require.Equal("123", answer.String())
	require.False(answer.IsZero())

	answer = NewAnswer(-42)
	require.Equal("-42", answer.String())

	answer = NewAnswerFromUint64(18446744073709551615)
	require.Equal("18446744073709551615", answer.String())
}

func (s *AocTestSuite) TestNewAnswerFromStr() {
	require := s.Require()
	answer, err := NewAnswerFromStr("71503")
	require.NoError(err)
	require.Equal("71503", answer.String())

	answer, err = NewAnswerFromStr(" 99999999999999999999999 \n")
	require.NoError(err)
	require.Equal("99999999999999999999999", answer.String())

	answer, err = NewAnswerFromStr("")
	require.Error(err)
	require.Equal("0", answer.String())

	_, err = NewAnswerFromStr("invalid")
	require.Error(err)
}

func (s *AocTestSuite) TestAnswerArithmetic() {
	require := s.Require()
	sum := NewAnswer(2).Add(NewAnswer(40))
	require.True(sum.Equal(NewAnswer(42)))
	require.True(NewAnswer(6).Mul(NewAnswer(7)).Equal(sum))
	require.True(Answer{}.IsZero())
}

func (s *AocTestSuite) TestAnswerEncoding() {
	require := s.Require()

	type wrapper struct {
		Value Answer `json:"value" yaml:"value"`
	}
	bz, err := json.Marshal(wrapper{Value: NewAnswer(405)})
	require.NoError(err)
	require.JSONEq(`{"value":"405"}`, string(bz))

	var decoded wrapper
	require.NoError(json.Unmarshal([]byte(`{"value":"400"}`), &decoded))
	require.Equal("400", decoded.Value.String())
	require.NoError(json.Unmarshal([]byte(`{"value":12}`), &decoded))
	require.Equal("12", decoded.Value.String())
	require.Error(json.Unmarshal([]byte(`{"value":"x"}`), &decoded))

	bz, err = yaml.Marshal(wrapper{Value: NewAnswer(288)})
	require.NoError(err)
	require.Equal("value: \"288\"\n", string(bz))

	require.NoError(yaml.Unmarshal([]byte("value: 1234\n"), &decoded))
	require.Equal("1234", decoded.Value.String())

	text, err := NewAnswer(7).MarshalText()
	require.NoError(err)
	require.Equal("7", string(text))
	require.NoError(decoded.Value.UnmarshalText([]byte("8")))
	require.Equal("8", decoded.Value.String())
}
