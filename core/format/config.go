package format

// Config holds display settings for rates and building counts.
type Config struct {
	// RateUnit is the time unit rates are shown in (s, m, h).
	RateUnit string `mapstructure:"rate_unit" default:"m" validate:"oneof=s m h"`
	// RatePrecision is the number of decimal places for rates.
	RatePrecision int `mapstructure:"rate_precision" default:"3" validate:"min=0,max=12"`
	// CountPrecision is the number of decimal places for building counts.
	CountPrecision int `mapstructure:"count_precision" default:"1" validate:"min=0,max=12"`
	// Display selects decimal or exact fraction output.
	Display string `mapstructure:"display" default:"decimal" validate:"oneof=decimal rational"`
}

const (
	UnitSecond = "s"
	UnitMinute = "m"
	UnitHour   = "h"

	DisplayDecimal  = "decimal"
	DisplayRational = "rational"
)
