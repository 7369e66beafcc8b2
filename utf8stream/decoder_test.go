package utf8stream_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wltype/wltype/utf8stream"
)

// drain collects every rune until EOF.
func drain(t *testing.T, d *utf8stream.Decoder) []rune {
	t.Helper()
	var out []rune
	for {
		r, err := d.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, r)
	}
}

// chunkReader yields its payload in fixed-size pieces to force character
// splits across read boundaries.
type chunkReader struct {
	data []byte
	n    int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}
	n := c.n
	if n > len(c.data) {
		n = len(c.data)
	}
	if n > len(p) {
		n = len(p)
	}
	copy(p, c.data[:n])
	c.data = c.data[n:]
	return n, nil
}

func TestDecodeASCII(t *testing.T) {
	d := utf8stream.New(strings.NewReader("hello"))
	assert.Equal(t, []rune("hello"), drain(t, d))
}

func TestDecodeMultiByte(t *testing.T) {
	d := utf8stream.New(strings.NewReader("café 🎉"))
	assert.Equal(t, []rune("café 🎉"), drain(t, d))
}

func TestSplitAcrossReads(t *testing.T) {
	tests := []struct {
		name  string
		input string
		chunk int
	}{
		{"two-byte split", "é", 1},
		{"three-byte split", "€", 1},
		{"four-byte split", "🎉", 1},
		{"mixed text byte-wise", "aé€🎉z", 1},
		{"four-byte over two reads", "🎉", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := utf8stream.New(&chunkReader{data: []byte(tt.input), n: tt.chunk})
			assert.Equal(t, []rune(tt.input), drain(t, d))
		})
	}
}

func TestSplitEAcuteYieldsOneRune(t *testing.T) {
	// 0xC3 0xA9 delivered one byte per read must decode to exactly one é.
	d := utf8stream.New(&chunkReader{data: []byte{0xC3, 0xA9}, n: 1})
	out := drain(t, d)
	require.Len(t, out, 1)
	assert.Equal(t, 'é', out[0])
}

func TestMalformedInputMakesProgress(t *testing.T) {
	// Five bytes that can never start a valid sequence: the valve must
	// discard instead of looping forever.
	d := utf8stream.New(bytes.NewReader([]byte{0xFF, 0xFE, 0xFF, 0xFE, 0xFF}))
	assert.Empty(t, drain(t, d))
}

func TestMalformedPrefixThenValid(t *testing.T) {
	// Junk followed by enough valid text to trip the valve: the junk is
	// shifted out one byte at a time and the text decodes.
	data := append([]byte{0xFF, 0xFF}, []byte("okay!")...)
	for _, chunk := range []int{2, 8} {
		d := utf8stream.NewWithConfig(&chunkReader{data: append([]byte(nil), data...), n: chunk},
			&utf8stream.Config{ChunkSize: chunk})
		assert.Equal(t, []rune("okay!"), drain(t, d))
	}
}

func TestTruncatedTrailingSequenceDiscarded(t *testing.T) {
	// A lone UTF-8 lead byte at EOF disappears silently.
	d := utf8stream.New(bytes.NewReader([]byte{'a', 0xC3}))
	assert.Equal(t, []rune("a"), drain(t, d))
}

func TestReadError(t *testing.T) {
	boom := errors.New("boom")
	d := utf8stream.New(io.MultiReader(strings.NewReader("a"), &failReader{err: boom}))

	r, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, 'a', r)

	_, err = d.Next()
	assert.ErrorIs(t, err, boom)
}

type failReader struct{ err error }

func (f *failReader) Read([]byte) (int, error) { return 0, f.err }

func TestCustomValve(t *testing.T) {
	// With a larger valve, more junk is tolerated before dropping, but
	// decoding still terminates.
	junk := bytes.Repeat([]byte{0xFE}, 10)
	d := utf8stream.NewWithConfig(bytes.NewReader(junk), &utf8stream.Config{PendingLimit: 8})
	assert.Empty(t, drain(t, d))
}
