package executor_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wltype/wltype/executor"
	"github.com/wltype/wltype/keymap"
)

type keyEvent struct {
	code    uint32
	pressed bool
}

type modEvent struct {
	depressed, latched, locked, group uint32
}

// fakeChannel records every protocol interaction in order and can be told
// to fail a specific primitive.
type fakeChannel struct {
	trace      []string
	uploads    []string
	keys       []keyEvent
	mods       []modEvent
	roundtrips int

	failOn string
	err    error
}

func (f *fakeChannel) fail(op string) error {
	if f.failOn == op {
		return f.err
	}
	return nil
}

func (f *fakeChannel) UploadKeymap(data []byte) error {
	if err := f.fail("upload"); err != nil {
		return err
	}
	f.uploads = append(f.uploads, string(data))
	f.trace = append(f.trace, "upload")
	return nil
}

func (f *fakeChannel) SendKey(code uint32, pressed bool) error {
	if err := f.fail("key"); err != nil {
		return err
	}
	f.keys = append(f.keys, keyEvent{code, pressed})
	f.trace = append(f.trace, fmt.Sprintf("key(%d,%v)", code, pressed))
	return nil
}

func (f *fakeChannel) SendModifiers(depressed, latched, locked, group uint32) error {
	if err := f.fail("modifiers"); err != nil {
		return err
	}
	f.mods = append(f.mods, modEvent{depressed, latched, locked, group})
	f.trace = append(f.trace, fmt.Sprintf("modifiers(%d,%d)", depressed, locked))
	return nil
}

func (f *fakeChannel) Roundtrip() error {
	if err := f.fail("roundtrip"); err != nil {
		return err
	}
	f.roundtrips++
	f.trace = append(f.trace, "roundtrip")
	return nil
}

func newExecutor(ch executor.Channel) *executor.Executor {
	// Zero settle delay keeps tests fast; timing is covered by Options.
	return executor.New(ch, nil, executor.Options{})
}

func TestExecuteEmptySequence(t *testing.T) {
	ch := &fakeChannel{}
	err := newExecutor(ch).Execute(nil)
	require.NoError(t, err)

	// Setup baseline upload, then the cleanup modifier release.
	assert.Equal(t, []string{"upload", "roundtrip", "modifiers(0,0)", "roundtrip"}, ch.trace)
	require.Len(t, ch.uploads, 1)
	assert.Contains(t, ch.uploads[0], "maximum = 9;")
}

func TestTypeTextUploadsOncePerGrowth(t *testing.T) {
	ch := &fakeChannel{}
	err := newExecutor(ch).Execute([]executor.Command{
		executor.TypeText{Text: "aba"},
		executor.TypeText{Text: "ab"},
	})
	require.NoError(t, err)

	// Setup upload plus one grown upload for "aba"; "ab" adds nothing new.
	require.Len(t, ch.uploads, 2)
	assert.Contains(t, ch.uploads[1], "key <K1> {[a]};")
	assert.Contains(t, ch.uploads[1], "key <K2> {[b]};")

	// a b a a b: five press/release pairs.
	require.Len(t, ch.keys, 10)
	assert.Equal(t, keyEvent{1, true}, ch.keys[0])
	assert.Equal(t, keyEvent{1, false}, ch.keys[1])
	assert.Equal(t, keyEvent{2, true}, ch.keys[2])
	assert.Equal(t, keyEvent{2, false}, ch.keys[3])
	assert.Equal(t, keyEvent{1, true}, ch.keys[4])
}

func TestKeymapUploadPrecedesEvents(t *testing.T) {
	ch := &fakeChannel{}
	err := newExecutor(ch).Execute([]executor.Command{executor.TypeText{Text: "x"}})
	require.NoError(t, err)

	// The grown keymap must be uploaded and confirmed before the first
	// key event referencing it.
	var lastUpload, firstKey = -1, -1
	for i, op := range ch.trace {
		if op == "upload" {
			lastUpload = i
		}
		if strings.HasPrefix(op, "key(") && firstKey == -1 {
			firstKey = i
		}
	}
	require.NotEqual(t, -1, firstKey)
	assert.Less(t, lastUpload, firstKey)
	assert.Equal(t, "roundtrip", ch.trace[lastUpload+1])
}

func TestCtrlCSequence(t *testing.T) {
	ch := &fakeChannel{}
	err := newExecutor(ch).Execute([]executor.Command{
		executor.PressModifier{Mod: executor.Ctrl},
		executor.PressKey{Name: "c"},
		executor.ReleaseKey{Name: "c"},
		executor.ReleaseModifier{Mod: executor.Ctrl},
	})
	require.NoError(t, err)

	// Exactly one upload carries the binding for c.
	var withC int
	for _, u := range ch.uploads {
		if strings.Contains(u, "{[c]};") {
			withC++
		}
	}
	assert.Equal(t, 1, withC)

	// Depressed mask: Ctrl set, then cleared, then the cleanup clear.
	require.Len(t, ch.mods, 3)
	assert.Equal(t, modEvent{depressed: 4}, ch.mods[0])
	assert.Equal(t, modEvent{}, ch.mods[1])
	assert.Equal(t, modEvent{}, ch.mods[2])

	// Key press before release, same code.
	require.Len(t, ch.keys, 2)
	assert.True(t, ch.keys[0].pressed)
	assert.False(t, ch.keys[1].pressed)
	assert.Equal(t, ch.keys[0].code, ch.keys[1].code)
}

func TestCapsLockTransmitsLocked(t *testing.T) {
	ch := &fakeChannel{}
	err := newExecutor(ch).Execute([]executor.Command{
		executor.PressModifier{Mod: executor.CapsLock},
		executor.PressModifier{Mod: executor.Shift},
	})
	require.NoError(t, err)

	require.Len(t, ch.mods, 3)
	assert.Equal(t, modEvent{locked: 2}, ch.mods[0])
	assert.Equal(t, modEvent{depressed: 1, locked: 2}, ch.mods[1])
	assert.Equal(t, modEvent{}, ch.mods[2], "cleanup releases everything")
	assert.Equal(t, uint32(0), ch.mods[0].latched)
	assert.Equal(t, uint32(0), ch.mods[0].group)
}

func TestPressKeyLeavesKeyHeld(t *testing.T) {
	ch := &fakeChannel{}
	err := newExecutor(ch).Execute([]executor.Command{executor.PressKey{Name: "Left"}})
	require.NoError(t, err)

	require.Len(t, ch.keys, 1)
	assert.True(t, ch.keys[0].pressed)
}

func TestUnknownKeyNameAborts(t *testing.T) {
	ch := &fakeChannel{}
	err := newExecutor(ch).Execute([]executor.Command{
		executor.PressKey{Name: "NoSuchKey"},
		executor.TypeText{Text: "never typed"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, keymap.ErrUnknownKeyName)

	// Nothing beyond the setup upload happened: no events, no cleanup.
	assert.Empty(t, ch.keys)
	assert.Empty(t, ch.mods)
	require.Len(t, ch.uploads, 1)
}

func TestChannelFailureAborts(t *testing.T) {
	tests := []struct {
		name   string
		failOn string
	}{
		{"upload failure", "upload"},
		{"key send failure", "key"},
		{"modifier send failure", "modifiers"},
		{"roundtrip failure", "roundtrip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boom := errors.New("connection reset")
			ch := &fakeChannel{failOn: tt.failOn, err: boom}
			err := newExecutor(ch).Execute([]executor.Command{
				executor.PressModifier{Mod: executor.Shift},
				executor.TypeText{Text: "hi"},
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestTypeStdin(t *testing.T) {
	ch := &fakeChannel{}
	ex := executor.New(ch, nil, executor.Options{
		Stdin:          strings.NewReader("héllo"),
		StdinChunkSize: 1, // force the é split across reads
	})
	err := ex.Execute([]executor.Command{executor.TypeStdin{}})
	require.NoError(t, err)

	// h é l l o: five characters, each pressed and released once.
	require.Len(t, ch.keys, 10)
	// Four distinct characters grow the keymap one at a time, plus the
	// setup baseline.
	assert.Len(t, ch.uploads, 5)
	assert.Contains(t, ch.uploads[2], "{[eacute]};")

	// Repeated l reuses its code.
	assert.Equal(t, ch.keys[4].code, ch.keys[6].code)
}

func TestSleepHasNoProtocolInteraction(t *testing.T) {
	ch := &fakeChannel{}
	err := newExecutor(ch).Execute([]executor.Command{executor.Sleep{}})
	require.NoError(t, err)

	assert.Empty(t, ch.keys)
	// Only setup and cleanup traffic.
	assert.Equal(t, []string{"upload", "roundtrip", "modifiers(0,0)", "roundtrip"}, ch.trace)
}
