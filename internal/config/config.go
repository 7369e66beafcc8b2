// Package config defines the top-level CLI grammar.
package config

import "github.com/wltype/wltype/internal/cmd"

// LogConfig holds the logging flags shared by every command.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" enum:"trace,debug,info,warn,error" default:"info" env:"WLTYPE_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" env:"WLTYPE_LOG_FILE"`
	RawFile string `help:"Write hex dumps of every protocol frame to this file" env:"WLTYPE_LOG_RAW_FILE"`
}

// CLI is the root kong grammar. The type command is the default so plain
// `wltype hello` works.
type CLI struct {
	Log LogConfig `embed:"" prefix:"log."`

	Type   cmd.Type          `cmd:"" default:"withargs" help:"Type text and key events into the compositor"`
	Keymap cmd.Keymap        `cmd:"" help:"Print the generated XKB keymap without connecting"`
	Config cmd.ConfigCommand `cmd:"" help:"Manage configuration files"`
}
