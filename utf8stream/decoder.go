// Package utf8stream decodes Unicode scalar values from a byte stream
// incrementally, without assuming reads align to character boundaries.
// Multi-byte sequences split across reads are buffered until complete.
package utf8stream

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Config controls decoder buffering behavior.
type Config struct {
	// ChunkSize is the maximum number of bytes requested per read. Small
	// chunks keep per-character latency low when typing from a pipe.
	ChunkSize int
	// PendingLimit bounds how many undecodable bytes may accumulate before
	// the oldest byte is discarded to force progress. Well-formed UTF-8
	// never exceeds 4.
	PendingLimit int
}

const (
	defaultChunkSize    = 8
	defaultPendingLimit = utf8.UTFMax
)

// Decoder turns a byte source into a finite sequence of runes.
type Decoder struct {
	r       io.Reader
	chunk   int
	valve   int
	pending []byte
	out     []rune
	eof     bool
}

// New returns a decoder with default buffering.
func New(r io.Reader) *Decoder { return NewWithConfig(r, nil) }

// NewWithConfig returns a decoder with custom buffering; nil or zero fields
// fall back to defaults.
func NewWithConfig(r io.Reader, cfg *Config) *Decoder {
	d := &Decoder{r: r, chunk: defaultChunkSize, valve: defaultPendingLimit}
	if cfg != nil {
		if cfg.ChunkSize > 0 {
			d.chunk = cfg.ChunkSize
		}
		if cfg.PendingLimit > 0 {
			d.valve = cfg.PendingLimit
		}
	}
	return d
}

// Next returns the next complete scalar value from the stream. It returns
// io.EOF once the source is exhausted; an incomplete trailing sequence at
// end of stream is silently discarded.
func (d *Decoder) Next() (rune, error) {
	for {
		if len(d.out) > 0 {
			r := d.out[0]
			d.out = d.out[1:]
			return r, nil
		}
		if d.eof {
			return 0, io.EOF
		}
		if err := d.fill(); err != nil {
			return 0, err
		}
	}
}

func (d *Decoder) fill() error {
	buf := make([]byte, d.chunk)
	n, err := d.r.Read(buf)
	if n > 0 {
		d.pending = append(d.pending, buf[:n]...)
		d.decodePending()
	}
	switch {
	case err == io.EOF:
		d.eof = true
		d.pending = nil
	case err != nil:
		return fmt.Errorf("read input: %w", err)
	case n == 0:
		// A zero-length read without error also signals end of stream.
		d.eof = true
		d.pending = nil
	}
	return nil
}

// decodePending consumes every complete scalar value from the front of the
// pending buffer. A partial trailing sequence is retained for the next read;
// if undecodable bytes pile up past the valve threshold the oldest byte is
// dropped and decoding retried, guaranteeing forward progress on malformed
// input.
func (d *Decoder) decodePending() {
	for {
		d.consumeValid()
		if len(d.pending) > d.valve {
			d.pending = d.pending[1:]
			continue
		}
		return
	}
}

func (d *Decoder) consumeValid() {
	for len(d.pending) > 0 {
		r, size := utf8.DecodeRune(d.pending)
		if r == utf8.RuneError && size <= 1 {
			// Invalid or incomplete sequence at the front; wait for
			// more bytes (or the valve).
			return
		}
		d.out = append(d.out, r)
		d.pending = d.pending[size:]
	}
}
