package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wltype/wltype/executor"
)

func TestCommandsRequiresAnAction(t *testing.T) {
	_, err := (&Type{}).Commands()
	assert.Error(t, err)
}

func TestCommandsTextOnly(t *testing.T) {
	cmds, err := (&Type{Text: []string{"hello", "world"}, Delay: 10 * time.Millisecond}).Commands()
	require.NoError(t, err)

	require.Len(t, cmds, 2)
	assert.Equal(t, executor.TypeText{Text: "hello", Delay: 10 * time.Millisecond}, cmds[0])
	assert.Equal(t, executor.TypeText{Text: "world", Delay: 10 * time.Millisecond}, cmds[1])
}

func TestCommandsDashMeansStdin(t *testing.T) {
	cmds, err := (&Type{Text: []string{"-"}}).Commands()
	require.NoError(t, err)

	require.Len(t, cmds, 1)
	assert.IsType(t, executor.TypeStdin{}, cmds[0])
}

func TestCommandsOrdering(t *testing.T) {
	cmds, err := (&Type{
		Text:       []string{"hi"},
		PressMod:   []string{"ctrl"},
		ReleaseMod: []string{"ctrl"},
		PressKey:   []string{"Left"},
		ReleaseKey: []string{"Left"},
		TypeKey:    []string{"Return"},
		Sleep:      []time.Duration{time.Second},
		Stdin:      true,
	}).Commands()
	require.NoError(t, err)

	require.Len(t, cmds, 9)
	assert.Equal(t, executor.TypeText{Text: "hi"}, cmds[0])
	assert.Equal(t, executor.PressModifier{Mod: executor.Ctrl}, cmds[1])
	assert.Equal(t, executor.ReleaseModifier{Mod: executor.Ctrl}, cmds[2])
	assert.Equal(t, executor.PressKey{Name: "Left"}, cmds[3])
	assert.Equal(t, executor.ReleaseKey{Name: "Left"}, cmds[4])
	assert.Equal(t, executor.PressKey{Name: "Return"}, cmds[5])
	assert.Equal(t, executor.ReleaseKey{Name: "Return"}, cmds[6])
	assert.Equal(t, executor.Sleep{Duration: time.Second}, cmds[7])
	assert.IsType(t, executor.TypeStdin{}, cmds[8])
}

func TestCommandsTypeKeyExpandsToPressRelease(t *testing.T) {
	cmds, err := (&Type{TypeKey: []string{"Tab"}}).Commands()
	require.NoError(t, err)

	require.Len(t, cmds, 2)
	assert.Equal(t, executor.PressKey{Name: "Tab"}, cmds[0])
	assert.Equal(t, executor.ReleaseKey{Name: "Tab"}, cmds[1])
}

func TestCommandsInvalidModifier(t *testing.T) {
	_, err := (&Type{PressMod: []string{"hyper"}}).Commands()
	assert.Error(t, err)

	_, err = (&Type{ReleaseMod: []string{"hyper"}}).Commands()
	assert.Error(t, err)
}
