package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/wltype/wltype/keymap"
)

// Keymap prints the XKB keymap that typing the given input would upload,
// without connecting to a compositor. Useful for debugging symbol
// resolution.
type Keymap struct {
	Text []string `arg:"" optional:"" help:"Text whose characters to map."`
	Keys []string `name:"key" short:"k" placeholder:"KEY" help:"Named keys to map (e.g. Return, F5)."`
}

func (k *Keymap) Run() error {
	if len(k.Text) == 0 && len(k.Keys) == 0 {
		return errors.New("nothing to map; give text or --key")
	}

	b := keymap.NewBuilder()
	for _, text := range k.Text {
		b.CodesForText(text)
	}
	for _, name := range k.Keys {
		if _, err := b.CodeForKeyName(name); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(os.Stdout, b.Render())
	return err
}
