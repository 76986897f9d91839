package format

import (
	"fmt"

	"factory-planner/core/rational"
)

var units = map[string]struct {
	long   string
	factor int64
}{
	UnitSecond: {"second", 1},
	UnitMinute: {"minute", 60},
	UnitHour:   {"hour", 3600},
}

// Formatter renders rates and counts according to a Config.
type Formatter struct {
	cfg    Config
	long   string
	factor rational.Rational
}

// NewFormatter validates cfg and returns a Formatter.
func NewFormatter(cfg Config) (*Formatter, error) {
	u, ok := units[cfg.RateUnit]
	if !ok {
		return nil, fmt.Errorf("unknown rate unit: %q", cfg.RateUnit)
	}
	switch cfg.Display {
	case DisplayDecimal, DisplayRational:
	case "":
		cfg.Display = DisplayDecimal
	default:
		return nil, fmt.Errorf("unknown display mode: %q", cfg.Display)
	}
	if cfg.RatePrecision < 0 || cfg.CountPrecision < 0 {
		return nil, fmt.Errorf("precision must not be negative")
	}

	return &Formatter{
		cfg:    cfg,
		long:   u.long,
		factor: rational.FromInt(u.factor),
	}, nil
}

// Default returns a per-minute formatter with three rate digits.
func Default() *Formatter {
	f, _ := NewFormatter(Config{RateUnit: UnitMinute, RatePrecision: 3, CountPrecision: 1, Display: DisplayDecimal})
	return f
}

// LongRate is the spelled-out display unit, e.g. "minute".
func (f *Formatter) LongRate() string {
	return f.long
}

// RateFactor is the number of seconds in one display unit.
func (f *Formatter) RateFactor() rational.Rational {
	return f.factor
}

// RateLabel is the caption for the rate field.
func (f *Formatter) RateLabel() string {
	return "Items/" + f.long
}

// Rate renders a per-second rate in the display unit.
func (f *Formatter) Rate(perSecond rational.Rational) string {
	return f.render(perSecond.Mul(f.factor), f.cfg.RatePrecision)
}

// Count renders a building count.
func (f *Formatter) Count(count rational.Rational) string {
	return f.render(count, f.cfg.CountPrecision)
}

func (f *Formatter) render(v rational.Rational, precision int) string {
	if f.cfg.Display == DisplayRational {
		return v.String()
	}
	return v.Decimal(precision)
}
