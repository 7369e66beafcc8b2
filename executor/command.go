package executor

import "time"

// Command is one typing action. The set is closed: the executor dispatches
// over exactly these variants, in the order the caller supplies them.
type Command interface{ isCommand() }

// TypeText types a string, waiting Delay between characters.
type TypeText struct {
	Text  string
	Delay time.Duration
}

// PressModifier adds a modifier to the held state.
type PressModifier struct{ Mod Modifier }

// ReleaseModifier removes a modifier from the held state. Releasing a
// modifier that is not held is a no-op.
type ReleaseModifier struct{ Mod Modifier }

// PressKey presses a named key and leaves it held until a matching
// ReleaseKey arrives; pairing is the caller's responsibility.
type PressKey struct{ Name string }

// ReleaseKey releases a named key.
type ReleaseKey struct{ Name string }

// Sleep pauses command execution with no protocol interaction.
type Sleep struct{ Duration time.Duration }

// TypeStdin types characters decoded from the input stream as they become
// available, waiting Delay after each one.
type TypeStdin struct{ Delay time.Duration }

func (TypeText) isCommand()        {}
func (PressModifier) isCommand()   {}
func (ReleaseModifier) isCommand() {}
func (PressKey) isCommand()        {}
func (ReleaseKey) isCommand()      {}
func (Sleep) isCommand()           {}
func (TypeStdin) isCommand()       {}
