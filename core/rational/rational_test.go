package rational_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"factory-planner/core/rational"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Integer", "5", "5"},
		{"Negative", "-3", "-3"},
		{"Plus", "+2", "2"},
		{"Decimal", "1.5", "3/2"},
		{"LeadingDot", ".25", "1/4"},
		{"TrailingDot", "3.", "3"},
		{"Fraction", "2/6", "1/3"},
		{"NegativeFraction", "-3/4", "-3/4"},
		{"Spaces", "  10 / 4 ", "5/2"},
		{"Zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rational.FromString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFromString_Malformed(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "1/0", "1e3", "0x10", "1/-2", ".", "+", "1.2.3", "1/2/3"} {
		t.Run(in, func(t *testing.T) {
			_, err := rational.FromString(in)
			require.Error(t, err)

			var perr *rational.ParseError
			assert.True(t, errors.As(err, &perr))
			assert.Equal(t, in, perr.Text)
		})
	}
}

func TestFromString_TooLong(t *testing.T) {
	ok := "0." + strings.Repeat("0", rational.MaxTextLen-3) + "1"
	_, err := rational.FromString(ok)
	require.NoError(t, err)

	long := "0." + strings.Repeat("0", 1<<20) + "1"
	_, err = rational.FromString(long)
	var perr *rational.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "input too long", perr.Reason)
}

func TestArithmetic(t *testing.T) {
	a := rational.FromFrac(1, 3)
	b := rational.FromFrac(1, 6)

	assert.Equal(t, "1/2", a.Add(b).String())
	assert.Equal(t, "1/6", a.Sub(b).String())
	assert.Equal(t, "1/18", a.Mul(b).String())

	q, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, "2", q.String())

	_, err = a.Div(rational.Zero())
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)
}

func TestZeroValue(t *testing.T) {
	var z rational.Rational
	assert.True(t, z.IsZero())
	assert.True(t, z.Equal(rational.Zero()))
	assert.Equal(t, "0", z.String())
	assert.Equal(t, "1", z.Add(rational.One()).String())
}

func TestRoundTripIsExact(t *testing.T) {
	base := rational.FromFrac(7, 13)
	count := rational.MustParse("2.35")

	rate := base.Mul(count)
	back, err := rate.Div(base)
	require.NoError(t, err)
	assert.True(t, back.Equal(count))
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		in        string
		precision int
		want      string
	}{
		{"5/2", 3, "2.5"},
		{"3", 3, "3"},
		{"1/3", 3, "0.333"},
		{"2/3", 3, "0.667"},
		{"-1/3", 1, "-0.3"},
		{"1/2000", 3, "0.001"},
		{"-1/3000", 3, "0"},
		{"7/2", 0, "4"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, rational.MustParse(tt.in).Decimal(tt.precision))
		})
	}
}

func TestJSON(t *testing.T) {
	var v struct {
		A rational.Rational `json:"a"`
		B rational.Rational `json:"b"`
		C rational.Rational `json:"c"`
	}
	err := json.Unmarshal([]byte(`{"a": 1.5, "b": "1/3", "c": null}`), &v)
	require.NoError(t, err)
	assert.Equal(t, "3/2", v.A.String())
	assert.Equal(t, "1/3", v.B.String())
	assert.True(t, v.C.IsZero())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"3/2","b":"1/3","c":"0"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"a": "abc"}`), &v))
}

func TestYAML(t *testing.T) {
	var v struct {
		Time   rational.Rational `yaml:"time"`
		Amount rational.Rational `yaml:"amount"`
	}
	err := yaml.Unmarshal([]byte("time: 0.5\namount: 2/3\n"), &v)
	require.NoError(t, err)
	assert.Equal(t, "1/2", v.Time.String())
	assert.Equal(t, "2/3", v.Amount.String())
}
