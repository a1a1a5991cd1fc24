// Package layout_test exercises construction, validation, lookups, and the
// one-position-per-character invariant of multi-mode layouts.
package layout_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywalk/keywalk/layout"
)

// tinyModes is a two-mode, two-row toy layout used across tests.
func tinyModes() []layout.Mode {
	return []layout.Mode{
		{
			Name: "default",
			Rows: [][]string{
				{"{tab}", "a", "b"},
				{"c", "d", "{enter}"},
			},
		},
		{
			Name: "shifted",
			Rows: [][]string{
				{"{tab}", "A", "B"},
				{"C", "D", "{enter}"},
			},
		},
	}
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name  string
		modes []layout.Mode
		err   error
	}{
		{"NoModes", nil, layout.ErrEmptyLayout},
		{"NoKeys", []layout.Mode{{Name: "default"}}, layout.ErrEmptyLayout},
		{"OnlyControls", []layout.Mode{{Name: "default", Rows: [][]string{{"{tab}", "{enter}"}}}}, layout.ErrEmptyLayout},
		{"DuplicateChar", []layout.Mode{{Name: "default", Rows: [][]string{{"a", "b"}, {"a"}}}}, layout.ErrDuplicateChar},
		{"DuplicateAcrossModes", []layout.Mode{
			{Name: "default", Rows: [][]string{{"a"}}},
			{Name: "shifted", Rows: [][]string{{"a"}}},
		}, layout.ErrDuplicateChar},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layout.New(tc.modes)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_ControlKeysMayRepeat(t *testing.T) {
	// "{enter}" appears in both modes of tinyModes; that must be legal.
	l, err := layout.New(tinyModes())
	require.NoError(t, err)
	assert.Equal(t, 12, l.NumKeys())
	assert.Equal(t, 8, l.NumTypeable())
}

func TestIndexOf_EveryCharExactlyOnce(t *testing.T) {
	l, err := layout.New(tinyModes())
	require.NoError(t, err)

	seen := make(map[rune]layout.Position)
	for _, ch := range l.Chars() {
		pos, ok := l.IndexOf(ch)
		require.True(t, ok, "IndexOf(%q)", ch)

		_, dup := seen[ch]
		require.False(t, dup, "character %q mapped twice", ch)
		seen[ch] = pos
		assert.Equal(t, string(ch), l.At(pos))
	}
	assert.Len(t, seen, l.NumTypeable())
}

func TestIndexOf_MissingChar(t *testing.T) {
	l, err := layout.New(tinyModes())
	require.NoError(t, err)

	_, ok := l.IndexOf('z')
	assert.False(t, ok)
}

func TestFlatIndex_RoundTrip(t *testing.T) {
	l, err := layout.New(tinyModes())
	require.NoError(t, err)

	for idx := 0; idx < l.NumKeys(); idx++ {
		pos, ok := l.PositionAt(idx)
		require.True(t, ok)

		back, ok := l.FlatIndex(pos)
		require.True(t, ok)
		assert.Equal(t, idx, back)
	}

	_, ok := l.PositionAt(l.NumKeys())
	assert.False(t, ok)
	_, ok = l.PositionAt(-1)
	assert.False(t, ok)
}

func TestWithChars_PermutationAndErrors(t *testing.T) {
	l, err := layout.New(tinyModes())
	require.NoError(t, err)

	// Reverse the genome and rebuild.
	chars := l.Chars()
	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
	swapped, err := l.WithChars(chars)
	require.NoError(t, err)
	assert.Equal(t, chars, swapped.Chars())
	assert.Equal(t, l.NumKeys(), swapped.NumKeys())

	// Wrong length is rejected.
	_, err = l.WithChars(chars[:2])
	require.ErrorIs(t, err, layout.ErrCharCount)

	// Duplicates in the new genome are rejected by revalidation.
	dup := l.Chars()
	dup[1] = dup[0]
	_, err = l.WithChars(dup)
	require.ErrorIs(t, err, layout.ErrDuplicateChar)
}

func TestShuffle_PreservesControlsAndCharset(t *testing.T) {
	l, err := layout.Preset(layout.PresetQWERTY)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	shuffled, err := l.Shuffle(rng)
	require.NoError(t, err)

	// Same multiset of typeable characters.
	orig := l.Chars()
	got := shuffled.Chars()
	require.Len(t, got, len(orig))
	origSet := make(map[rune]int)
	for _, ch := range orig {
		origSet[ch]++
	}
	for _, ch := range got {
		origSet[ch]--
	}
	for ch, n := range origSet {
		assert.Zero(t, n, "character %q count drifted", ch)
	}

	// Control keys stay put.
	for idx := 0; idx < l.NumKeys(); idx++ {
		pos, _ := l.PositionAt(idx)
		if layout.IsControl(l.At(pos)) {
			assert.Equal(t, l.At(pos), shuffled.At(pos))
		}
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	l := layout.MustPreset(layout.PresetQWERTY)

	a, err := l.Shuffle(rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := l.Shuffle(rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, a.Chars(), b.Chars())
}

func TestPreset_Unknown(t *testing.T) {
	_, err := layout.Preset("dvorak")
	require.ErrorIs(t, err, layout.ErrUnknownPreset)
}

func TestPreset_QWERTYShape(t *testing.T) {
	l := layout.MustPreset(layout.PresetQWERTY)

	// 'q' sits on the second row of the default mode, right of "{tab}".
	pos, ok := l.IndexOf('q')
	require.True(t, ok)
	assert.Equal(t, layout.Position{Mode: 0, Row: 1, Col: 1}, pos)

	// 'Q' lives on the shifted mode at the same coordinates.
	shifted, ok := l.IndexOf('Q')
	require.True(t, ok)
	assert.Equal(t, layout.Position{Mode: 1, Row: 1, Col: 1}, shifted)
}

func TestPreset_AZERTYValidates(t *testing.T) {
	l, err := layout.Preset(layout.PresetAZERTY)
	require.NoError(t, err)

	pos, ok := l.IndexOf('a')
	require.True(t, ok)
	assert.Equal(t, layout.Position{Mode: 0, Row: 1, Col: 1}, pos)
}

func TestIsControl(t *testing.T) {
	assert.True(t, layout.IsControl("{tab}"))
	assert.True(t, layout.IsControl("{}"))
	assert.False(t, layout.IsControl("{"))
	assert.False(t, layout.IsControl("}"))
	assert.False(t, layout.IsControl("a"))
}

func TestString_RendersAllModes(t *testing.T) {
	l, err := layout.New(tinyModes())
	require.NoError(t, err)

	s := l.String()
	assert.Contains(t, s, "# default")
	assert.Contains(t, s, "# shifted")
	assert.Contains(t, s, "[ {tab} a b ]")
}
