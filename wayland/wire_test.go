package wayland

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHeader(t *testing.T) {
	hdr := encodeHeader(3, 2, 12)
	require.Len(t, hdr, headerSize)

	obj, err := getUint(hdr, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), obj)

	word, err := getUint(hdr, 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(20), word>>16, "size covers header plus body")
	assert.Equal(t, uint32(2), word&0xffff)
}

func TestAppendStringPadsToFourBytes(t *testing.T) {
	tests := []struct {
		s       string
		wantLen int
	}{
		{"", 8},          // 4 length + NUL padded to 4
		{"abc", 8},       // 4 + "abc\0"
		{"wl_seat", 12},  // 4 + 7 + NUL = 12, already aligned
		{"wl_seats", 16}, // 4 + 8 + NUL = 13, padded to 16
	}

	for _, tt := range tests {
		b := appendString(nil, tt.s)
		assert.Len(t, b, tt.wantLen, "string %q", tt.s)
		assert.Zero(t, len(b)%4)

		got, next, err := getString(b, 0)
		require.NoError(t, err)
		assert.Equal(t, tt.s, got)
		assert.Equal(t, len(b), next)
	}
}

func TestGetStringAdvancesPastPadding(t *testing.T) {
	b := appendString(nil, "wl_seat")
	b = appendUint(b, 7)

	s, next, err := getString(b, 0)
	require.NoError(t, err)
	assert.Equal(t, "wl_seat", s)

	v, err := getUint(b, next)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), v)
}

func TestGetUintTruncated(t *testing.T) {
	_, err := getUint([]byte{1, 2}, 0)
	assert.Error(t, err)
}

func TestGetStringTruncated(t *testing.T) {
	b := appendUint(nil, 100) // claims a 100-byte string with no payload
	_, _, err := getString(b, 0)
	assert.Error(t, err)

	_, _, err = getString(appendUint(nil, 0), 0)
	assert.Error(t, err, "zero length is invalid; NUL is always counted")
}
