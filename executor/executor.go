// Package executor interprets typing commands against a compositor channel,
// keeping the remote keymap in lockstep with the locally grown one.
//
// The central invariant: no key or modifier event is transmitted referencing
// a keycode the remote has not confirmed, via a completed roundtrip, as
// present in its keymap. Every keymap growth that is about to be used is
// followed by upload and roundtrip before the first event using it.
package executor

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/wltype/wltype/keymap"
	"github.com/wltype/wltype/utf8stream"
)

// Channel is the compositor-side collaborator. Upload and Send* are one-way
// messages; Roundtrip blocks until the remote endpoint has processed
// everything sent before it.
type Channel interface {
	UploadKeymap(data []byte) error
	SendKey(code uint32, pressed bool) error
	SendModifiers(depressed, latched, locked, group uint32) error
	Roundtrip() error
}

// Options tunes timing and stdin buffering. The defaults mirror observed
// compositor input-rate tolerances; they are policy, not protocol.
type Options struct {
	// SettleDelay is slept after each press and each release while typing.
	SettleDelay time.Duration
	// StdinChunkSize is the per-read byte count for stdin typing.
	StdinChunkSize int
	// PendingLimit bounds buffered undecodable stdin bytes.
	PendingLimit int
	// Stdin overrides the input source for TypeStdin; defaults to os.Stdin.
	Stdin io.Reader
}

// DefaultSettleDelay is the per-keystroke settle interval used when Options
// leaves SettleDelay zero-valued via DefaultOptions.
const DefaultSettleDelay = 2 * time.Millisecond

// DefaultOptions returns the observed-default tuning.
func DefaultOptions() Options {
	return Options{SettleDelay: DefaultSettleDelay}
}

// Executor owns the keymap builder and modifier state for one command
// sequence. Execution is strictly sequential; nothing else may touch the
// builder or the mask while a sequence runs.
type Executor struct {
	ch     Channel
	keymap *keymap.Builder
	logger *slog.Logger
	opts   Options

	mods uint32
	// uploaded is the entry count of the last keymap the remote confirmed.
	// -1 until the setup upload establishes the protocol baseline.
	uploaded int
}

// New returns an executor with a fresh, empty keymap.
func New(ch Channel, logger *slog.Logger, opts Options) *Executor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Executor{
		ch:       ch,
		keymap:   keymap.NewBuilder(),
		logger:   logger,
		opts:     opts,
		uploaded: -1,
	}
}

// Execute runs the commands in order. Setup uploads the (possibly empty)
// keymap first so a protocol baseline exists before any event; cleanup
// forces all modifiers released. Any failure aborts immediately: commands
// after the failing one do not run and cleanup is skipped, as the channel
// state is unknown at that point.
func (e *Executor) Execute(commands []Command) error {
	if err := e.uploadKeymap(); err != nil {
		return err
	}

	for _, cmd := range commands {
		if err := e.run(cmd); err != nil {
			return err
		}
	}

	// Leaving a modifier stuck would affect unrelated input after exit.
	e.mods = 0
	return e.transmitModifiers()
}

func (e *Executor) run(cmd Command) error {
	switch c := cmd.(type) {
	case TypeText:
		return e.typeText(c.Text, c.Delay)
	case PressModifier:
		e.logger.Debug("press modifier", "modifier", c.Mod.String())
		e.mods = PressMask(e.mods, c.Mod)
		return e.transmitModifiers()
	case ReleaseModifier:
		e.logger.Debug("release modifier", "modifier", c.Mod.String())
		e.mods = ReleaseMask(e.mods, c.Mod)
		return e.transmitModifiers()
	case PressKey:
		return e.sendNamedKey(c.Name, true)
	case ReleaseKey:
		return e.sendNamedKey(c.Name, false)
	case Sleep:
		time.Sleep(c.Duration)
		return nil
	case TypeStdin:
		return e.typeStream(c.Delay)
	default:
		return fmt.Errorf("unhandled command type %T", cmd)
	}
}

// typeText resolves every character up front so the keymap is uploaded at
// most once per text, then types the codes in order.
func (e *Executor) typeText(text string, delay time.Duration) error {
	codes := e.keymap.CodesForText(text)
	if err := e.syncKeymap(); err != nil {
		return err
	}
	for _, code := range codes {
		if err := e.typeCode(code); err != nil {
			return err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return nil
}

// typeCode presses and releases one key with the settle interval after each
// phase, so downstream consumers with input-rate limits keep up.
func (e *Executor) typeCode(code uint32) error {
	if err := e.ch.SendKey(code, true); err != nil {
		return fmt.Errorf("send key press: %w", err)
	}
	e.settle()
	if err := e.ch.SendKey(code, false); err != nil {
		return fmt.Errorf("send key release: %w", err)
	}
	e.settle()
	return nil
}

func (e *Executor) settle() {
	if e.opts.SettleDelay > 0 {
		time.Sleep(e.opts.SettleDelay)
	}
}

// sendNamedKey resolves a key name (growing the keymap if the key is new)
// and sends exactly one press or release event. An unknown name aborts
// before anything reaches the channel.
func (e *Executor) sendNamedKey(name string, pressed bool) error {
	code, err := e.keymap.CodeForKeyName(name)
	if err != nil {
		return err
	}
	if err := e.syncKeymap(); err != nil {
		return err
	}
	e.logger.Debug("key event", "key", name, "code", code, "pressed", pressed)
	if err := e.ch.SendKey(code, pressed); err != nil {
		return fmt.Errorf("send key event: %w", err)
	}
	return e.roundtrip()
}

func (e *Executor) transmitModifiers() error {
	depressed, locked := SplitMask(e.mods)
	if err := e.ch.SendModifiers(depressed, 0, locked, 0); err != nil {
		return fmt.Errorf("send modifiers: %w", err)
	}
	return e.roundtrip()
}

// typeStream types characters from the input source as the decoder
// completes them, one keymap sync per new character.
func (e *Executor) typeStream(delay time.Duration) error {
	in := e.opts.Stdin
	if in == nil {
		in = os.Stdin
	}
	dec := utf8stream.NewWithConfig(in, &utf8stream.Config{
		ChunkSize:    e.opts.StdinChunkSize,
		PendingLimit: e.opts.PendingLimit,
	})
	for {
		r, err := dec.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		code := e.keymap.CodeForChar(r)
		if err := e.syncKeymap(); err != nil {
			return err
		}
		if err := e.typeCode(code); err != nil {
			return err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
}

// syncKeymap re-uploads only when the keymap grew since the last confirmed
// upload.
func (e *Executor) syncKeymap() error {
	if e.keymap.Len() == e.uploaded {
		return nil
	}
	return e.uploadKeymap()
}

func (e *Executor) uploadKeymap() error {
	data := []byte(e.keymap.Render())
	e.logger.Debug("uploading keymap", "entries", e.keymap.Len(), "bytes", len(data))
	if err := e.ch.UploadKeymap(data); err != nil {
		return fmt.Errorf("upload keymap: %w", err)
	}
	if err := e.roundtrip(); err != nil {
		return err
	}
	e.uploaded = e.keymap.Len()
	return nil
}

func (e *Executor) roundtrip() error {
	if err := e.ch.Roundtrip(); err != nil {
		return fmt.Errorf("roundtrip: %w", err)
	}
	return nil
}
