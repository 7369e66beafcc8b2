package log

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger records complete protocol frames for offline inspection.
type RawLogger interface {
	// Log records one frame. out=true means client->compositor.
	Log(out bool, frame []byte)
}

type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a RawLogger writing to w. A nil writer yields a no-op
// logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log emits a single line per frame: timestamp, direction, the decoded
// message header (object id and opcode) and a hex dump of the full frame.
func (r *rawLogger) Log(out bool, frame []byte) {
	if r.w == nil || len(frame) == 0 {
		return
	}

	dir := "comp->client"
	if out {
		dir = "client->comp"
	}

	var obj, opcode uint32
	if len(frame) >= 8 {
		obj = binary.LittleEndian.Uint32(frame[0:4])
		opcode = binary.LittleEndian.Uint32(frame[4:8]) & 0xffff
	}

	line := fmt.Sprintf("%s %s object=%d opcode=%d len=%d hex=%s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		dir, obj, opcode, len(frame),
		hex.EncodeToString(frame))

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
