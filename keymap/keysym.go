// Package keymap builds XKB keymaps on demand for arbitrary Unicode
// characters and named keys. Keycodes are allocated lazily and stay stable
// for the lifetime of a builder, so events sent against an earlier rendering
// remain valid after the keymap grows.
package keymap

import (
	"fmt"
	"strings"
)

// Keysym is an XKB keysym value: an abstract identifier for what a key
// means, independent of its keycode.
type Keysym uint32

// NoSymbol is the sentinel keysym returned for unknown key names.
const NoSymbol Keysym = 0

// unicodeOffset marks keysyms derived directly from a Unicode codepoint
// (keysym = codepoint | 0x01000000), per the xkbcommon convention.
const unicodeOffset Keysym = 0x01000000

// KeysymFromRune converts a Unicode scalar value to its keysym. Printable
// Latin-1 characters map directly to their codepoint; everything else gets
// the Unicode keysym encoding.
func KeysymFromRune(r rune) Keysym {
	if (r >= 0x20 && r <= 0x7e) || (r >= 0xa0 && r <= 0xff) {
		return Keysym(r)
	}
	return Keysym(r) | unicodeOffset
}

// KeysymFromName resolves a textual key name (e.g. "Return", "Left", "F1")
// to a keysym. Matching is case-insensitive; on case-folded collisions the
// lowercase form wins, matching XKB's case-insensitive lookup.
func KeysymFromName(name string) (Keysym, bool) {
	if sym, ok := nameToSym[name]; ok {
		return sym, true
	}
	if sym, ok := lowerToSym[strings.ToLower(name)]; ok {
		return sym, true
	}
	return NoSymbol, false
}

// Name returns the canonical XKB name for the keysym, falling back to the
// "U%04X" Unicode form for keysyms without a named entry.
func (s Keysym) Name() string {
	if name, ok := symToName[s]; ok {
		return name
	}
	if s&unicodeOffset != 0 {
		return fmt.Sprintf("U%04X", uint32(s&^unicodeOffset))
	}
	if s < 0x100 {
		return fmt.Sprintf("U%04X", uint32(s))
	}
	return fmt.Sprintf("0x%08x", uint32(s))
}
