package rational

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// ErrDivisionByZero is returned by Div when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ParseError reports numeric text that could not be read as a rational.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q: %s", e.Text, e.Reason)
}

var (
	decimalPattern  = regexp.MustCompile(`^([+-]?)(\d*)(?:\.(\d*))?$`)
	fractionPattern = regexp.MustCompile(`^([+-]?\d+)\s*/\s*(\d+)$`)
)

// Rational is an immutable exact fraction. The zero value is 0.
type Rational struct {
	r *big.Rat
}

// Zero returns 0.
func Zero() Rational {
	return Rational{}
}

// One returns 1.
func One() Rational {
	return FromInt(1)
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{r: new(big.Rat).SetInt64(n)}
}

// FromFrac returns num/den. It panics if den is zero, like big.Rat.
func FromFrac(num, den int64) Rational {
	return Rational{r: big.NewRat(num, den)}
}

// MaxTextLen is the longest text FromString accepts.
const MaxTextLen = 256

// FromString parses an integer ("5"), a decimal ("1.25", ".5") or a
// fraction ("3/4") into a Rational.
func FromString(text string) (Rational, error) {
	if len(text) > MaxTextLen {
		return Rational{}, &ParseError{Text: text[:32] + "...", Reason: "input too long"}
	}
	s := strings.TrimSpace(text)
	if s == "" {
		return Rational{}, &ParseError{Text: text, Reason: "empty input"}
	}

	if m := fractionPattern.FindStringSubmatch(s); m != nil {
		num, ok := new(big.Int).SetString(m[1], 10)
		if !ok {
			return Rational{}, &ParseError{Text: text, Reason: "malformed numerator"}
		}
		den, ok := new(big.Int).SetString(m[2], 10)
		if !ok {
			return Rational{}, &ParseError{Text: text, Reason: "malformed denominator"}
		}
		if den.Sign() == 0 {
			return Rational{}, &ParseError{Text: text, Reason: "zero denominator"}
		}
		return Rational{r: new(big.Rat).SetFrac(num, den)}, nil
	}

	m := decimalPattern.FindStringSubmatch(s)
	if m == nil || (m[2] == "" && m[3] == "") {
		return Rational{}, &ParseError{Text: text, Reason: "not a number"}
	}

	digits := m[2] + m[3]
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Rational{}, &ParseError{Text: text, Reason: "not a number"}
	}
	if m[1] == "-" {
		num.Neg(num)
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(m[3]))), nil)
	return Rational{r: new(big.Rat).SetFrac(num, den)}, nil
}

// MustParse is FromString for literals known to be valid.
func MustParse(text string) Rational {
	r, err := FromString(text)
	if err != nil {
		panic(err)
	}
	return r
}

func (a Rational) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

// Add returns a + b.
func (a Rational) Add(b Rational) Rational {
	return Rational{r: new(big.Rat).Add(a.rat(), b.rat())}
}

// Sub returns a - b.
func (a Rational) Sub(b Rational) Rational {
	return Rational{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

// Mul returns a * b.
func (a Rational) Mul(b Rational) Rational {
	return Rational{r: new(big.Rat).Mul(a.rat(), b.rat())}
}

// Div returns a / b, or ErrDivisionByZero.
func (a Rational) Div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{r: new(big.Rat).Quo(a.rat(), b.rat())}, nil
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Rational) Cmp(b Rational) int {
	return a.rat().Cmp(b.rat())
}

// Equal reports whether a == b.
func (a Rational) Equal(b Rational) bool {
	return a.Cmp(b) == 0
}

// IsZero reports whether a == 0.
func (a Rational) IsZero() bool {
	return a.Sign() == 0
}

// Sign returns -1, 0 or +1.
func (a Rational) Sign() int {
	return a.rat().Sign()
}

// Float64 returns the nearest float64 value.
func (a Rational) Float64() float64 {
	f, _ := a.rat().Float64()
	return f
}

// String returns "a/b", or "a" for integers.
func (a Rational) String() string {
	return a.rat().RatString()
}

// Decimal rounds to precision fractional digits, half away from zero,
// and trims trailing zeros.
func (a Rational) Decimal(precision int) string {
	if precision < 0 {
		precision = 0
	}
	s := a.rat().FloatString(precision)
	if precision > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// MarshalText encodes the canonical fraction form.
func (a Rational) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText accepts anything FromString accepts.
func (a *Rational) UnmarshalText(text []byte) error {
	parsed, err := FromString(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON encodes as a JSON string.
func (a Rational) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts a JSON number or string.
func (a *Rational) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = Rational{}
		return nil
	}
	s = strings.Trim(s, `"`)
	return a.UnmarshalText([]byte(s))
}
