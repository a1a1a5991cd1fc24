// Package keygraph — options and sentinel errors.
package keygraph

import "errors"

// Sentinel errors for keygraph operations.
var (
	// ErrNilLayout indicates that a nil *layout.Layout was passed to Build.
	ErrNilLayout = errors.New("keygraph: layout is nil")

	// ErrIndexOutOfRange indicates a position index outside [0, NumKeys).
	ErrIndexOutOfRange = errors.New("keygraph: position index out of range")

	// ErrNoPath indicates that no route exists between the two positions.
	// It replaces the legacy "(-1, empty path)" convention.
	ErrNoPath = errors.New("keygraph: no path between positions")

	// ErrBadWeight indicates a non-positive weight in an option.
	ErrBadWeight = errors.New("keygraph: edge weight must be positive")
)

// Connectivity selects neighbor connectivity between rows:
// orthogonal only (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 links horizontal and vertical neighbors only.
	Conn4 Connectivity = iota
	// Conn8 additionally links diagonal neighbors between adjacent rows.
	Conn8
)

// Options configures graph construction.
//
// StepWeight      – cost of moving between adjacent keys within a mode.
// ModeShiftWeight – cost of switching modes at the same (row, col).
// Conn            – Conn4 or Conn8 row connectivity.
type Options struct {
	StepWeight      int64
	ModeShiftWeight int64
	Conn            Connectivity
}

// Option is a functional option for configuring Build.
type Option func(*Options)

// WithStepWeight sets the intra-mode neighbor weight.
// Panics on non-positive values (invalid configuration, caught early).
func WithStepWeight(w int64) Option {
	return func(o *Options) {
		if w <= 0 {
			panic(ErrBadWeight.Error())
		}
		o.StepWeight = w
	}
}

// WithModeShiftWeight sets the cost of crossing between adjacent modes.
// Panics on non-positive values.
func WithModeShiftWeight(w int64) Option {
	return func(o *Options) {
		if w <= 0 {
			panic(ErrBadWeight.Error())
		}
		o.ModeShiftWeight = w
	}
}

// WithConnectivity selects Conn4 or Conn8 row connectivity.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// DefaultOptions returns the defaults: unit step weight, mode switches three
// times as expensive as a key step, orthogonal connectivity.
func DefaultOptions() Options {
	return Options{
		StepWeight:      1,
		ModeShiftWeight: 3,
		Conn:            Conn4,
	}
}
