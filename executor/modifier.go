package executor

import (
	"fmt"
	"strings"
)

// Modifier is a single modifier bit as used by the XKB modifier mask.
type Modifier uint32

const (
	Shift    Modifier = 1 << 0
	CapsLock Modifier = 1 << 1
	Ctrl     Modifier = 1 << 2
	Alt      Modifier = 1 << 3
	Logo     Modifier = 1 << 6
	AltGr    Modifier = 1 << 7
)

// ParseModifier resolves a modifier name case-insensitively. "win" is
// accepted as an alias for "logo".
func ParseModifier(name string) (Modifier, error) {
	switch strings.ToLower(name) {
	case "shift":
		return Shift, nil
	case "capslock":
		return CapsLock, nil
	case "ctrl":
		return Ctrl, nil
	case "alt":
		return Alt, nil
	case "logo", "win":
		return Logo, nil
	case "altgr":
		return AltGr, nil
	default:
		return 0, fmt.Errorf("invalid modifier name: %q", name)
	}
}

func (m Modifier) String() string {
	switch m {
	case Shift:
		return "shift"
	case CapsLock:
		return "capslock"
	case Ctrl:
		return "ctrl"
	case Alt:
		return "alt"
	case Logo:
		return "logo"
	case AltGr:
		return "altgr"
	default:
		return fmt.Sprintf("modifier(%d)", uint32(m))
	}
}

// PressMask adds a modifier to a mask.
func PressMask(mask uint32, m Modifier) uint32 { return mask | uint32(m) }

// ReleaseMask removes a modifier from a mask; removing an unset bit is a
// no-op.
func ReleaseMask(mask uint32, m Modifier) uint32 { return mask &^ uint32(m) }

// SplitMask classifies a combined mask for transmission. CapsLock is the
// only toggle-style modifier here, so its bit moves to the locked sub-mask
// and every other held bit stays depressed. Latched and group are always
// transmitted as zero.
func SplitMask(mask uint32) (depressed, locked uint32) {
	locked = mask & uint32(CapsLock)
	depressed = mask &^ uint32(CapsLock)
	return depressed, locked
}
