// Package cmd contains the kong command implementations.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/wltype/wltype/executor"
	"github.com/wltype/wltype/internal/log"
	"github.com/wltype/wltype/wayland"
)

// Type synthesizes keyboard input on the current Wayland session.
type Type struct {
	Text []string `arg:"" optional:"" help:"Text to type. A single '-' types from stdin instead."`

	PressMod   []string        `name:"press-mod" short:"M" placeholder:"MOD" help:"Press and hold a modifier (shift, capslock, ctrl, alt, logo/win, altgr)."`
	ReleaseMod []string        `name:"release-mod" short:"m" placeholder:"MOD" help:"Release a held modifier."`
	PressKey   []string        `name:"press-key" short:"P" placeholder:"KEY" help:"Press and hold a named key (e.g. Return, Left, F5)."`
	ReleaseKey []string        `name:"release-key" short:"p" placeholder:"KEY" help:"Release a held named key."`
	TypeKey    []string        `name:"type-key" short:"k" placeholder:"KEY" help:"Press and release a named key."`
	Sleep      []time.Duration `short:"s" placeholder:"DURATION" help:"Sleep before continuing (e.g. 500ms)."`
	Stdin      bool            `help:"Type everything read from stdin."`

	Delay  time.Duration `short:"d" default:"0s" help:"Extra delay between typed characters." env:"WLTYPE_DELAY"`
	Settle time.Duration `default:"2ms" help:"Pause after each key press and release." env:"WLTYPE_SETTLE"`

	StdinChunk   int `default:"8" hidden:"" env:"WLTYPE_STDIN_CHUNK"`
	PendingLimit int `default:"4" hidden:"" env:"WLTYPE_PENDING_LIMIT"`
}

// Commands translates the parsed flags into an executable sequence. Flags of
// the same kind keep their command-line order; across kinds the order is
// text, modifier presses, modifier releases, key presses, key releases,
// typed keys, sleeps, stdin.
func (t *Type) Commands() ([]executor.Command, error) {
	var cmds []executor.Command

	var stdin bool
	for _, text := range t.Text {
		if text == "-" {
			stdin = true
			continue
		}
		cmds = append(cmds, executor.TypeText{Text: text, Delay: t.Delay})
	}

	for _, name := range t.PressMod {
		mod, err := executor.ParseModifier(name)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, executor.PressModifier{Mod: mod})
	}
	for _, name := range t.ReleaseMod {
		mod, err := executor.ParseModifier(name)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, executor.ReleaseModifier{Mod: mod})
	}

	for _, name := range t.PressKey {
		cmds = append(cmds, executor.PressKey{Name: name})
	}
	for _, name := range t.ReleaseKey {
		cmds = append(cmds, executor.ReleaseKey{Name: name})
	}
	for _, name := range t.TypeKey {
		cmds = append(cmds,
			executor.PressKey{Name: name},
			executor.ReleaseKey{Name: name},
		)
	}

	for _, d := range t.Sleep {
		cmds = append(cmds, executor.Sleep{Duration: d})
	}

	if t.Stdin || stdin {
		cmds = append(cmds, executor.TypeStdin{Delay: t.Delay})
	}

	if len(cmds) == 0 {
		return nil, errors.New("no actions given; see --help")
	}
	return cmds, nil
}

// Run is called by kong when the type command is executed.
func (t *Type) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	cmds, err := t.Commands()
	if err != nil {
		return err
	}

	if wantsStdin(cmds) && term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Warn("reading text from an interactive terminal; end input with ^D")
	}

	kb, err := wayland.Connect(logger, rawLogger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := kb.Close(); cerr != nil {
			logger.Debug("closing keyboard", "error", cerr)
		}
	}()

	ex := executor.New(kb, logger, executor.Options{
		SettleDelay:    t.Settle,
		StdinChunkSize: t.StdinChunk,
		PendingLimit:   t.PendingLimit,
	})
	if err := ex.Execute(cmds); err != nil {
		return fmt.Errorf("typing failed: %w", err)
	}
	return nil
}

func wantsStdin(cmds []executor.Command) bool {
	for _, c := range cmds {
		if _, ok := c.(executor.TypeStdin); ok {
			return true
		}
	}
	return false
}
