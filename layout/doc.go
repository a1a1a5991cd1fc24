// Package layout models multi-mode keyboard layouts: rectangular grids of
// key labels stacked into modes (default, shifted, caps / alt-gr).
//
// A layout distinguishes two kinds of keys:
//
//   - typeable keys — single-rune labels ("a", "Q", "é"); each typeable
//     character must map to EXACTLY ONE position across all modes, and this
//     invariant is enforced at construction time,
//   - control keys — brace-wrapped labels ("{tab}", "{enter}", "{shiftl}");
//     they occupy grid positions but never participate in shuffling.
//
// Positions are addressed either structurally (mode, row, col) or through a
// flat index that enumerates every key mode-major, row-major. The flat index
// is the vertex identity used by the keygraph package.
//
// Operations:
//
//   - New / MustPreset: construct and validate a layout.
//   - IndexOf / At / FlatIndex: position lookups.
//   - Chars: the typeable character inventory (the genome of the genetic
//     optimizer).
//   - WithChars: rebuild a layout with a new permutation of its typeable
//     characters, control keys untouched.
//   - Shuffle: deterministic random permutation of typeable keys.
//
// Errors (sentinel):
//
//   - ErrEmptyLayout     if a layout has no modes, rows, or keys.
//   - ErrDuplicateChar   if a typeable character appears more than once.
//   - ErrUnknownPreset   if a preset name is not registered.
//   - ErrCharCount       if WithChars receives the wrong number of characters.
package layout
