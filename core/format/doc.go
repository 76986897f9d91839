// Package format turns internal rationals into display strings.
//
// Rates are stored internally as items per second. The Formatter scales them
// to the configured display unit (second, minute, hour) and rounds to the
// configured precision, or prints them as exact fractions.
//
// # Usage
//
//	f, err := format.NewFormatter(cfg.Format)
//	label := f.RateLabel()        // "Items/minute"
//	shown := f.Rate(perSecond)    // "45"
//	count := f.Count(buildings)   // "1.5"
package format
