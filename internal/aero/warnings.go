package aero

import (
	"fmt"
	"math"
)

type WarningKind int

const (
	WarningLargeAOA WarningKind = iota
	WarningDiscontinuity
	WarningThickFin
	WarningSupersonicFin
)

// Warning is an advisory condition detected during a calculation. Warnings
// never abort the calculation.
type Warning struct {
	Kind WarningKind
	Text string
}

func LargeAOAWarning(aoa float64) Warning {
	return Warning{
		Kind: WarningLargeAOA,
		Text: fmt.Sprintf("Large angle of attack (%.0f deg)", aoa*180/math.Pi),
	}
}

func DiscontinuityWarning() Warning {
	return Warning{
		Kind: WarningDiscontinuity,
		Text: "Discontinuity in rocket body diameter",
	}
}

func ThickFinWarning() Warning {
	return Warning{
		Kind: WarningThickFin,
		Text: "Thick fins may not be modeled accurately",
	}
}

func SupersonicFinWarning() Warning {
	return Warning{
		Kind: WarningSupersonicFin,
		Text: "Supersonic fin normal force is extrapolated from subsonic theory",
	}
}

// WarningSet collects advisory warnings, deduplicated by kind. Add is safe
// on a nil set, which acts as a discard sink.
type WarningSet struct {
	order []Warning
	seen  map[WarningKind]bool
}

func NewWarningSet() *WarningSet {
	return &WarningSet{seen: make(map[WarningKind]bool)}
}

func (w *WarningSet) Add(warning Warning) {
	if w == nil {
		return
	}
	if w.seen[warning.Kind] {
		return
	}
	w.seen[warning.Kind] = true
	w.order = append(w.order, warning)
}

func (w *WarningSet) Contains(kind WarningKind) bool {
	if w == nil {
		return false
	}
	return w.seen[kind]
}

func (w *WarningSet) Len() int {
	if w == nil {
		return 0
	}
	return len(w.order)
}

// All returns the warnings in the order they were first added.
func (w *WarningSet) All() []Warning {
	if w == nil {
		return nil
	}
	return w.order
}
