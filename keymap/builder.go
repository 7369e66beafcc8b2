package keymap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKeyName is returned when a textual key name has no keysym in the
// standard name table.
var ErrUnknownKeyName = errors.New("unknown key name")

// Entry binds an allocated keycode to a keysym and, for typed characters,
// the Unicode scalar value it stands for.
type Entry struct {
	// Code is 1-based; it always equals 1 + the entry's position in
	// allocation order and is never reassigned.
	Code uint32
	Sym  Keysym
	// Char is the associated character; valid only when HasChar is set
	// (named keys like F1 or Left carry no character).
	Char    rune
	HasChar bool
}

// Builder allocates stable keycodes for characters and keysyms on demand and
// renders the complete XKB keymap describing them.
//
// Entries are append-only: the keymap grows monotonically within a session
// and codes handed out earlier stay valid after later growth. Lookups are
// cached so repeated characters resolve in O(1).
type Builder struct {
	entries []Entry
	byChar  map[rune]uint32
	bySym   map[Keysym]uint32
}

// NewBuilder returns an empty keymap builder.
func NewBuilder() *Builder {
	return &Builder{
		byChar: make(map[rune]uint32),
		bySym:  make(map[Keysym]uint32),
	}
}

// Len returns the number of allocated entries.
func (b *Builder) Len() int { return len(b.entries) }

// CodeForChar returns the keycode for a Unicode character, allocating a new
// entry on first use. Newline, tab and escape map to their conventional
// keysyms instead of Unicode ones.
func (b *Builder) CodeForChar(ch rune) uint32 {
	if code, ok := b.byChar[ch]; ok {
		return code
	}

	var sym Keysym
	switch ch {
	case '\n':
		sym = nameToSym["Return"]
	case '\t':
		sym = nameToSym["Tab"]
	case '\x1b':
		sym = nameToSym["Escape"]
	default:
		sym = KeysymFromRune(ch)
	}
	return b.add(sym, ch, true)
}

// CodeForKeysym returns the keycode for a keysym, allocating a new entry on
// first use. Used for named keys with no printable character.
func (b *Builder) CodeForKeysym(sym Keysym) uint32 {
	if code, ok := b.bySym[sym]; ok {
		return code
	}
	return b.add(sym, 0, false)
}

// CodeForKeyName resolves a case-insensitive XKB key name to a keycode. It
// returns an error wrapping ErrUnknownKeyName when the name table has no
// entry for the name.
func (b *Builder) CodeForKeyName(name string) (uint32, error) {
	sym, ok := KeysymFromName(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKeyName, name)
	}
	return b.CodeForKeysym(sym), nil
}

// CodesForText maps every Unicode scalar value of text to its keycode, in
// order, growing the keymap as needed.
func (b *Builder) CodesForText(text string) []uint32 {
	codes := make([]uint32, 0, len(text))
	for _, ch := range text {
		codes = append(codes, b.CodeForChar(ch))
	}
	return codes
}

func (b *Builder) add(sym Keysym, ch rune, hasChar bool) uint32 {
	code := uint32(len(b.entries)) + 1
	b.entries = append(b.entries, Entry{Code: code, Sym: sym, Char: ch, HasChar: hasChar})
	if hasChar {
		b.byChar[ch] = code
	}
	// A character entry also satisfies later keysym lookups for the same
	// symbol; keep the first code so assignments stay stable.
	if _, ok := b.bySym[sym]; !ok {
		b.bySym[sym] = code
	}
	return code
}

// Render serializes the current entries into a complete XKB keymap in text
// format, ready for upload to the compositor. Keycodes on the wire are
// offset by 8 for legacy X11 compatibility; each key carries exactly one
// keysym binding (no shifted levels). Rendering is a pure function of the
// builder's state: without mutation two calls yield identical output.
func (b *Builder) Render() string {
	var s strings.Builder

	s.WriteString("xkb_keymap {\n")

	s.WriteString("xkb_keycodes \"(unnamed)\" {\n")
	s.WriteString("minimum = 8;\n")
	fmt.Fprintf(&s, "maximum = %d;\n", len(b.entries)+8+1)
	for i := range b.entries {
		fmt.Fprintf(&s, "<K%d> = %d;\n", i+1, i+8+1)
	}
	s.WriteString("};\n")

	s.WriteString("xkb_types \"(unnamed)\" { include \"complete\" };\n")
	s.WriteString("xkb_compatibility \"(unnamed)\" { include \"complete\" };\n")

	s.WriteString("xkb_symbols \"(unnamed)\" {\n")
	for i, e := range b.entries {
		fmt.Fprintf(&s, "key <K%d> {[%s]};\n", i+1, e.Sym.Name())
	}
	s.WriteString("};\n")

	s.WriteString("};\n")
	return s.String()
}
