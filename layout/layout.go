// Package layout — Layout construction, validation, and lookups.
package layout

import (
	"fmt"
	"math/rand"
	"strings"
)

// Layout is an immutable multi-mode keyboard layout.
//
// Construction validates the central invariant: every typeable character
// maps to exactly one position across ALL modes. Control keys may repeat
// freely ("{enter}" appears in every mode).
type Layout struct {
	modes []Mode

	// flat enumerates every key position mode-major, row-major, col-major.
	// The slice index is the flat index used as graph vertex identity.
	flat []Position

	// flatIndex inverts flat: structural position → flat index.
	flatIndex map[Position]int

	// charPos maps each typeable character to its unique position.
	charPos map[rune]Position

	// slots lists the flat indices that hold typeable characters, in flat
	// order. slots[i] is the i-th genome slot of the genetic optimizer.
	slots []int
}

// New builds a Layout from the given modes and validates it.
//
// Validation (in order):
//  1. At least one mode, and at least one key overall (ErrEmptyLayout).
//  2. Every typeable character appears at most once (ErrDuplicateChar,
//     wrapped with the offending character and both positions).
//
// Complexity: O(K) time and memory for K keys.
func New(modes []Mode) (*Layout, error) {
	if len(modes) == 0 {
		return nil, ErrEmptyLayout
	}

	l := &Layout{
		modes:     cloneModes(modes),
		flatIndex: make(map[Position]int),
		charPos:   make(map[rune]Position),
	}

	var (
		m, r, c int
		label   string
		ch      rune
		ok      bool
	)
	for m = 0; m < len(l.modes); m++ {
		for r = 0; r < len(l.modes[m].Rows); r++ {
			for c = 0; c < len(l.modes[m].Rows[r]); c++ {
				label = l.modes[m].Rows[r][c]
				pos := Position{Mode: m, Row: r, Col: c}
				l.flatIndex[pos] = len(l.flat)
				l.flat = append(l.flat, pos)

				if ch, ok = typeableRune(label); !ok {
					continue
				}
				if prior, dup := l.charPos[ch]; dup {
					return nil, fmt.Errorf("%w: %q at %v and %v", ErrDuplicateChar, ch, prior, pos)
				}
				l.charPos[ch] = pos
				l.slots = append(l.slots, len(l.flat)-1)
			}
		}
	}

	if len(l.flat) == 0 || len(l.slots) == 0 {
		return nil, ErrEmptyLayout
	}

	return l, nil
}

// cloneModes deep-copies mode grids so the Layout owns its storage.
func cloneModes(modes []Mode) []Mode {
	out := make([]Mode, len(modes))
	for i, m := range modes {
		rows := make([][]string, len(m.Rows))
		for j, row := range m.Rows {
			rows[j] = make([]string, len(row))
			copy(rows[j], row)
		}
		out[i] = Mode{Name: m.Name, Rows: rows}
	}

	return out
}

// Modes returns a deep copy of the mode grids.
func (l *Layout) Modes() []Mode { return cloneModes(l.modes) }

// NumKeys returns the total number of key positions across all modes.
// Complexity: O(1).
func (l *Layout) NumKeys() int { return len(l.flat) }

// NumTypeable returns the number of typeable key positions (genome length).
// Complexity: O(1).
func (l *Layout) NumTypeable() int { return len(l.slots) }

// PositionAt converts a flat index back to its structural position.
// The boolean is false when idx is out of range.
func (l *Layout) PositionAt(idx int) (Position, bool) {
	if idx < 0 || idx >= len(l.flat) {
		return Position{}, false
	}

	return l.flat[idx], true
}

// FlatIndex converts a structural position to its flat index.
// The boolean is false when pos does not exist in the layout.
func (l *Layout) FlatIndex(pos Position) (int, bool) {
	idx, ok := l.flatIndex[pos]

	return idx, ok
}

// At returns the key label at pos, or "" when pos does not exist.
func (l *Layout) At(pos Position) string {
	if pos.Mode < 0 || pos.Mode >= len(l.modes) {
		return ""
	}
	rows := l.modes[pos.Mode].Rows
	if pos.Row < 0 || pos.Row >= len(rows) {
		return ""
	}
	row := rows[pos.Row]
	if pos.Col < 0 || pos.Col >= len(row) {
		return ""
	}

	return row[pos.Col]
}

// IndexOf returns the unique position of a typeable character.
// The boolean is false when ch is not on the layout.
func (l *Layout) IndexOf(ch rune) (Position, bool) {
	pos, ok := l.charPos[ch]

	return pos, ok
}

// Slots returns the flat indices of typeable positions in flat order.
// Slot i corresponds to Chars()[i]; the two slices together define the
// genome encoding of this layout.
func (l *Layout) Slots() []int {
	out := make([]int, len(l.slots))
	copy(out, l.slots)

	return out
}

// Chars returns the typeable characters in slot order.
// Complexity: O(K).
func (l *Layout) Chars() []rune {
	out := make([]rune, 0, len(l.slots))
	for _, idx := range l.slots {
		ch, _ := typeableRune(l.At(l.flat[idx]))
		out = append(out, ch)
	}

	return out
}

// WithChars returns a new Layout whose typeable positions hold chars in slot
// order, with every control key untouched. chars must be a permutation of
// some character multiset of the right length; duplicate characters are
// rejected by the constructor (ErrDuplicateChar).
//
// This is the bridge from a genetic genome back to a concrete layout.
// Complexity: O(K).
func (l *Layout) WithChars(chars []rune) (*Layout, error) {
	if len(chars) != len(l.slots) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCharCount, len(chars), len(l.slots))
	}

	modes := cloneModes(l.modes)
	for i, idx := range l.slots {
		pos := l.flat[idx]
		modes[pos.Mode].Rows[pos.Row][pos.Col] = string(chars[i])
	}

	return New(modes)
}

// Shuffle returns a new Layout with typeable characters permuted by a
// Fisher–Yates shuffle driven by rng. Control keys keep their positions.
// Callers own determinism: pass a seeded *rand.Rand.
// Complexity: O(K).
func (l *Layout) Shuffle(rng *rand.Rand) (*Layout, error) {
	chars := l.Chars()
	for i := len(chars) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		chars[i], chars[j] = chars[j], chars[i]
	}

	return l.WithChars(chars)
}

// String renders the layout grid, one bracketed line per row, modes
// separated by a blank line. The format mirrors how layouts are shown in
// training logs and on the CLI.
func (l *Layout) String() string {
	var b strings.Builder
	b.WriteString("[\n")
	for m, mode := range l.modes {
		if m > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  # " + mode.Name + "\n")
		for _, row := range mode.Rows {
			b.WriteString("  [ ")
			for _, label := range row {
				b.WriteString(label)
				b.WriteString(" ")
			}
			b.WriteString("]\n")
		}
	}
	b.WriteString("]\n")

	return b.String()
}
