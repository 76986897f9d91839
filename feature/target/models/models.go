package models

import (
	"factory-planner/core/rational"
	"factory-planner/core/reconcile"
)

// Target statuses.
const (
	StatusOK         = "ok"
	StatusUnresolved = "unresolved"
)

// TargetView is a target with its derived values ready for display.
type TargetView struct {
	ID       string         `json:"id"`
	Index    int            `json:"index"`
	Item     string         `json:"item"`
	ItemName string         `json:"item_name,omitempty"`
	Mode     reconcile.Mode `json:"mode" swaggertype:"string" enums:"buildings,rate"`
	// Buildings is the building count display, "N/A" when it cannot be derived.
	Buildings string `json:"buildings"`
	// Rate is the rate display in RateLabel units, empty when undefined.
	Rate        string `json:"rate"`
	RateLabel   string `json:"rate_label"`
	RateDefined bool   `json:"rate_defined"`
	// BuildingsExact and RatePerSecond carry the exact fractions.
	BuildingsExact *rational.Rational `json:"buildings_exact,omitempty" swaggertype:"string"`
	RatePerSecond  *rational.Rational `json:"rate_per_second,omitempty" swaggertype:"string"`
	Status         string             `json:"status"`
	Error          string             `json:"error,omitempty"`
}

// CreateRequest is the body of POST /targets.
type CreateRequest struct {
	Item string `json:"item"`
}

// ItemRequest is the body of PUT /targets/:id/item.
type ItemRequest struct {
	Item string `json:"item"`
}

// ValueRequest is the body of PUT /targets/:id/buildings and /rate.
type ValueRequest struct {
	Value string `json:"value"`
}

// EditError is returned when an edit is rejected; Target is unchanged.
type EditError struct {
	Error  string      `json:"error"`
	Target *TargetView `json:"target"`
}
