// Package layout — core types, sentinel errors, and position addressing.
package layout

import (
	"errors"
	"unicode/utf8"
)

// Sentinel errors for layout construction and manipulation.
var (
	// ErrEmptyLayout indicates a layout with no modes, no rows, or no keys.
	ErrEmptyLayout = errors.New("layout: layout must have at least one mode, row, and key")

	// ErrDuplicateChar indicates a typeable character mapped to more than one position.
	ErrDuplicateChar = errors.New("layout: typeable character appears more than once")

	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("layout: unknown preset")

	// ErrCharCount indicates a character slice whose length does not match
	// the number of typeable positions in the layout.
	ErrCharCount = errors.New("layout: character count does not match typeable positions")
)

// Position addresses a single key structurally: which mode, which row within
// that mode, and which column within that row. Rows may have differing
// lengths, so Col is bounded per-row, not per-grid.
type Position struct {
	Mode int // index into Layout modes
	Row  int // row within the mode
	Col  int // column within the row
}

// Mode is one layer of a layout: a named grid of key labels.
// Rows are independent slices; a staggered physical keyboard is represented
// simply by rows of different lengths.
type Mode struct {
	// Name identifies the layer ("default", "shifted", "caps").
	Name string

	// Rows holds the key labels, outer slice top-to-bottom.
	Rows [][]string
}

// IsControl reports whether a key label denotes a control key rather than a
// typeable character. Control keys use brace-wrapped labels: "{tab}",
// "{enter}", "{shiftl}". They keep their position under every shuffle.
func IsControl(label string) bool {
	return len(label) >= 2 && label[0] == '{' && label[len(label)-1] == '}'
}

// typeableRune returns the rune for a typeable label, or (0, false) when the
// label is a control key or not a single rune.
func typeableRune(label string) (rune, bool) {
	if IsControl(label) {
		return 0, false
	}
	if utf8.RuneCountInString(label) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(label)

	return r, true
}
