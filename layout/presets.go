// Package layout — built-in QWERTY and AZERTY presets.
package layout

// Preset names accepted by Preset and the CLI --layout flag.
const (
	PresetQWERTY = "qwerty"
	PresetAZERTY = "azerty"
)

// qwertyModes is the two-layer US QWERTY table: default and shifted.
// The caps layer of the physical layout is omitted: it repeats the shifted
// letters verbatim, which would break the one-position-per-character
// invariant the optimizer depends on.
func qwertyModes() []Mode {
	return []Mode{
		{
			Name: "default",
			Rows: [][]string{
				{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "=", "{backspace}"},
				{"{tab}", "q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[", "]", "\\"},
				{"{caps}", "a", "s", "d", "f", "g", "h", "j", "k", "l", ";", "'", "{enter}"},
				{"{shiftl}", "z", "x", "c", "v", "b", "n", "m", ",", ".", "/", "{shiftr}"},
				{"{next}", "{space}", "{accept}"},
			},
		},
		{
			Name: "shifted",
			Rows: [][]string{
				{"~", "!", "@", "#", "$", "%", "^", "&", "*", "(", ")", "_", "+", "{backspace}"},
				{"{tab}", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "{", "}", "|"},
				{"{caps}", "A", "S", "D", "F", "G", "H", "J", "K", "L", ":", "\"", "{enter}"},
				{"{shiftl}", "Z", "X", "C", "V", "B", "N", "M", "<", ">", "?", "{shiftr}"},
				{"{next}", "{space}", "{accept}"},
			},
		},
	}
}

// azertyModes is the two-layer French AZERTY table: default and shifted.
// The alt-gr layer is omitted for the same reason as the QWERTY caps layer:
// several of its symbols repeat characters already placed on other layers.
func azertyModes() []Mode {
	return []Mode{
		{
			Name: "default",
			Rows: [][]string{
				{"²", "&", "é", "\"", "'", "(", "-", "è", "_", "ç", "à", ")", "=", "{backspace}"},
				{"{tab}", "a", "z", "e", "r", "t", "y", "u", "i", "o", "p", "^", "$", "{enter}"},
				{"{caps}", "q", "s", "d", "f", "g", "h", "j", "k", "l", "m", "ù", "*", "{enter}"},
				{"{shiftl}", "<", "w", "x", "c", "v", "b", "n", ",", ";", ":", "!", "{shiftr}"},
				{"{next}", "{space}", "{altgr}"},
			},
		},
		{
			Name: "shifted",
			Rows: [][]string{
				{"~", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "°", "+", "{backspace}"},
				{"{tab}", "A", "Z", "E", "R", "T", "Y", "U", "I", "O", "P", "¨", "£", "{enter}"},
				{"{caps}", "Q", "S", "D", "F", "G", "H", "J", "K", "L", "M", "%", "µ", "{enter}"},
				{"{shiftl}", ">", "W", "X", "C", "V", "B", "N", "?", ".", "/", "§", "{shiftr}"},
				{"{next}", "{space}", "{altgr}"},
			},
		},
	}
}

// Preset returns a validated built-in layout by name.
// Returns ErrUnknownPreset for any name that is not registered.
func Preset(name string) (*Layout, error) {
	switch name {
	case PresetQWERTY:
		return New(qwertyModes())
	case PresetAZERTY:
		return New(azertyModes())
	default:
		return nil, ErrUnknownPreset
	}
}

// MustPreset returns a built-in layout and panics on failure.
// The preset tables are covered by tests, so a panic here means the binary
// itself is miscompiled; reserve MustPreset for initialization paths.
func MustPreset(name string) *Layout {
	l, err := Preset(name)
	if err != nil {
		panic(err)
	}

	return l
}
