package reconcile

import (
	"encoding/json"
	"fmt"
	"strings"

	"factory-planner/core/rational"
)

// Mode records which field of a Target the user last edited.
type Mode int

const (
	// ByBuildings makes the building count authoritative.
	ByBuildings Mode = iota
	// ByRate makes the production rate authoritative.
	ByRate
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	switch m {
	case ByBuildings:
		return "buildings"
	case ByRate:
		return "rate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "buildings":
		return ByBuildings, nil
	case "rate":
		return ByRate, nil
	default:
		return 0, fmt.Errorf("unknown mode: %q", s)
	}
}

// MarshalJSON encodes the mode by name.
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a mode name.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Target is one user-configured production goal.
type Target struct {
	// ID is the stable identifier of the target within a session.
	ID string `json:"id"`

	// Index is the creation order of the target.
	Index int `json:"index"`

	// SelectedItem is the chosen item key; empty until chosen.
	SelectedItem string `json:"item"`

	// Mode selects the authoritative field.
	Mode Mode `json:"mode"`

	// BuildingCount is authoritative in ByBuildings mode, zero otherwise.
	BuildingCount rational.Rational `json:"buildings"`

	// Rate is authoritative in ByRate mode, zero otherwise. Items per second.
	Rate rational.Rational `json:"rate"`

	// BuildingText is the building count exactly as the user entered it.
	BuildingText string `json:"building_text"`
}

// NewTarget returns a target producing item with one building.
func NewTarget(index int, item string) *Target {
	return &Target{
		Index:         index,
		SelectedItem:  item,
		Mode:          ByBuildings,
		BuildingCount: rational.One(),
		Rate:          rational.Zero(),
		BuildingText:  "1",
	}
}

// SwitchToBuildings parses text as the new building count and makes it
// authoritative. Nothing changes on error.
func (t *Target) SwitchToBuildings(text string) error {
	count, err := rational.FromString(text)
	if err != nil {
		return err
	}
	t.Mode = ByBuildings
	t.BuildingCount = count
	t.BuildingText = strings.TrimSpace(text)
	t.Rate = rational.Zero()
	return nil
}

// SwitchToRate parses text as a rate per display unit, converts it to items
// per second and makes it authoritative. Nothing changes on error.
func (t *Target) SwitchToRate(text string, rateUnitFactor rational.Rational) error {
	entered, err := rational.FromString(text)
	if err != nil {
		return err
	}
	rate, err := entered.Div(rateUnitFactor)
	if err != nil {
		return &ParseError{Text: text, Reason: "zero rate unit factor"}
	}
	t.Mode = ByRate
	t.Rate = rate
	t.BuildingCount = rational.Zero()
	t.BuildingText = ""
	return nil
}

// Reconciliation is the derived state of a Target ready for display.
type Reconciliation struct {
	// Mode is the mode the values were derived in.
	Mode Mode `json:"mode"`

	// Buildings is the building count, nil when it cannot be computed.
	Buildings *rational.Rational `json:"buildings"`

	// Rate is the production rate in items per second, nil when it cannot be computed.
	Rate *rational.Rational `json:"rate"`

	// BuildingsDisplay is the text for the building field.
	BuildingsDisplay string `json:"buildings_display"`

	// RateDisplay is the text for the rate field.
	RateDisplay string `json:"rate_display"`

	// RateDefined reports whether the recipe has a fixed per-building rate.
	RateDefined bool `json:"rate_defined"`
}

// NotAvailable is shown for a building count that cannot be derived.
const NotAvailable = "N/A"
