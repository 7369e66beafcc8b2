package wayland

import (
	"encoding/binary"
	"fmt"
)

// Wire format: every message is an 8-byte header (object id, then
// size<<16|opcode) followed by the arguments. Integers are 32-bit
// little-endian; strings carry a NUL-terminated payload preceded by its
// length and padded to 32-bit alignment. File descriptor arguments occupy
// no space in the body; they travel as SCM_RIGHTS ancillary data.

const headerSize = 8

func appendUint(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

func appendString(b []byte, s string) []byte {
	b = appendUint(b, uint32(len(s)+1))
	b = append(b, s...)
	b = append(b, 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

func encodeHeader(obj uint32, opcode uint16, bodyLen int) []byte {
	hdr := make([]byte, headerSize, headerSize+bodyLen)
	binary.LittleEndian.PutUint32(hdr[0:4], obj)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(headerSize+bodyLen)<<16|uint32(opcode))
	return hdr
}

func getUint(b []byte, off int) (uint32, error) {
	if off+4 > len(b) {
		return 0, fmt.Errorf("truncated event: need uint at offset %d, have %d bytes", off, len(b))
	}
	return binary.LittleEndian.Uint32(b[off : off+4]), nil
}

// getString decodes a string argument and returns it with the offset of the
// following argument.
func getString(b []byte, off int) (string, int, error) {
	n, err := getUint(b, off)
	if err != nil {
		return "", 0, err
	}
	start := off + 4
	end := start + int(n)
	if n == 0 || end > len(b) {
		return "", 0, fmt.Errorf("truncated event: bad string length %d at offset %d", n, off)
	}
	s := string(b[start : end-1]) // drop the NUL
	next := start + int(n)
	for next%4 != 0 {
		next++
	}
	return s, next, nil
}
