// Package wayland speaks just enough of the Wayland client protocol to
// drive a zwp_virtual_keyboard_unstable_v1 keyboard: registry discovery,
// seat and manager binding, keymap upload over a sealed memfd, key and
// modifier events, and the wl_display.sync roundtrip barrier.
package wayland

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/wltype/wltype/internal/log"
)

const displayID = 1

// Requests we send.
const (
	opDisplaySync        = 0
	opDisplayGetRegistry = 1
	opRegistryBind       = 0

	opManagerCreateVirtualKeyboard = 0

	opKeyboardKeymap    = 0
	opKeyboardKey       = 1
	opKeyboardModifiers = 2
	opKeyboardDestroy   = 3
)

// Events we handle.
const (
	evDisplayError    = 0
	evDisplayDeleteID = 1
	evRegistryGlobal  = 0
	evCallbackDone    = 0
)

// wl_keyboard.keymap_format.xkb_v1
const keymapFormatXKBv1 = 1

const (
	seatInterface    = "wl_seat"
	managerInterface = "zwp_virtual_keyboard_manager_v1"

	// Highest wl_seat version this client understands.
	maxSeatVersion = 7
)

var (
	// ErrNoSeat indicates the compositor advertised no wl_seat.
	ErrNoSeat = errors.New("no seat advertised by the compositor")
	// ErrNoVirtualKeyboard indicates the virtual keyboard protocol
	// extension is missing.
	ErrNoVirtualKeyboard = errors.New("compositor does not support " + managerInterface)
)

// global is one wl_registry announcement.
type global struct {
	name    uint32
	iface   string
	version uint32
}

// Conn is a synchronous, single-threaded Wayland connection. Events are
// dispatched only while blocked in Roundtrip, which matches the strictly
// sequential execution model of the callers.
type Conn struct {
	sock   *net.UnixConn
	logger *slog.Logger
	raw    log.RawLogger

	nextID     uint32
	registryID uint32
	rbuf       []byte
	globals    []global
	// done tracks outstanding wl_callback objects from sync requests.
	done map[uint32]bool
}

// Keyboard is a bound zwp_virtual_keyboard_v1 object. It implements the
// channel contract consumed by the executor.
type Keyboard struct {
	conn   *Conn
	id     uint32
	seatID uint32
}

// Connect dials the compositor socket, discovers the required globals and
// creates a virtual keyboard. Missing capabilities surface as ErrNoSeat or
// ErrNoVirtualKeyboard.
func Connect(logger *slog.Logger, raw log.RawLogger) (*Keyboard, error) {
	path, err := socketPath()
	if err != nil {
		return nil, err
	}
	nc, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("connect to wayland display %s: %w", path, err)
	}
	return setup(nc.(*net.UnixConn), logger, raw)
}

// setup runs discovery and binding on an established socket.
func setup(sock *net.UnixConn, logger *slog.Logger, raw log.RawLogger) (*Keyboard, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	c := &Conn{
		sock:   sock,
		logger: logger,
		raw:    raw,
		nextID: 2,
		done:   make(map[uint32]bool),
	}

	c.registryID = c.allocID()
	if err := c.request(displayID, opDisplayGetRegistry, nil, appendUint(nil, c.registryID)); err != nil {
		return nil, err
	}
	// The roundtrip guarantees every initial global announcement arrived.
	if err := c.Roundtrip(); err != nil {
		return nil, err
	}

	seat, seatOK := c.findGlobal(seatInterface)
	manager, managerOK := c.findGlobal(managerInterface)
	if !seatOK {
		return nil, ErrNoSeat
	}
	if !managerOK {
		return nil, ErrNoVirtualKeyboard
	}

	seatID, err := c.bind(seat, seatInterface, min(seat.version, maxSeatVersion))
	if err != nil {
		return nil, err
	}
	managerID, err := c.bind(manager, managerInterface, 1)
	if err != nil {
		return nil, err
	}

	kbID := c.allocID()
	body := appendUint(appendUint(nil, seatID), kbID)
	if err := c.request(managerID, opManagerCreateVirtualKeyboard, nil, body); err != nil {
		return nil, err
	}
	c.logger.Debug("virtual keyboard created", "seat_version", min(seat.version, maxSeatVersion))

	return &Keyboard{conn: c, id: kbID, seatID: seatID}, nil
}

func (c *Conn) allocID() uint32 {
	id := c.nextID
	c.nextID++
	return id
}

func (c *Conn) findGlobal(iface string) (global, bool) {
	for _, g := range c.globals {
		if g.iface == iface {
			return g, true
		}
	}
	return global{}, false
}

func (c *Conn) bind(g global, iface string, version uint32) (uint32, error) {
	id := c.allocID()
	body := appendUint(nil, g.name)
	body = appendString(body, iface)
	body = appendUint(body, version)
	body = appendUint(body, id)
	if err := c.request(c.registryID, opRegistryBind, nil, body); err != nil {
		return 0, fmt.Errorf("bind %s: %w", iface, err)
	}
	return id, nil
}

// request frames and writes one message; fds, if any, ride along as
// ancillary data on the same write.
func (c *Conn) request(obj uint32, opcode uint16, fds []int, body []byte) error {
	msg := append(encodeHeader(obj, opcode, len(body)), body...)
	c.raw.Log(true, msg)

	var err error
	if len(fds) > 0 {
		oob := unix.UnixRights(fds...)
		_, _, err = c.sock.WriteMsgUnix(msg, oob, nil)
	} else {
		_, err = c.sock.Write(msg)
	}
	if err != nil {
		return fmt.Errorf("write request (object %d, opcode %d): %w", obj, opcode, err)
	}
	return nil
}

// Roundtrip blocks until the compositor has processed every message sent
// before it, dispatching any events that arrive in the meantime. There is
// no timeout: a hung compositor hangs the caller.
func (c *Conn) Roundtrip() error {
	cb := c.allocID()
	c.done[cb] = false
	if err := c.request(displayID, opDisplaySync, nil, appendUint(nil, cb)); err != nil {
		return err
	}
	for !c.done[cb] {
		obj, opcode, body, err := c.readEvent()
		if err != nil {
			return err
		}
		if err := c.dispatch(obj, opcode, body); err != nil {
			return err
		}
	}
	delete(c.done, cb)
	return nil
}

func (c *Conn) readEvent() (obj uint32, opcode uint16, body []byte, err error) {
	for len(c.rbuf) < headerSize {
		if err := c.readMore(); err != nil {
			return 0, 0, nil, err
		}
	}
	obj, _ = getUint(c.rbuf, 0)
	word, _ := getUint(c.rbuf, 4)
	size := int(word >> 16)
	opcode = uint16(word & 0xffff)
	if size < headerSize {
		return 0, 0, nil, fmt.Errorf("malformed event: size %d below header size", size)
	}
	for len(c.rbuf) < size {
		if err := c.readMore(); err != nil {
			return 0, 0, nil, err
		}
	}
	c.raw.Log(false, c.rbuf[:size])
	body = append([]byte(nil), c.rbuf[headerSize:size]...)
	c.rbuf = c.rbuf[size:]
	return obj, opcode, body, nil
}

func (c *Conn) readMore() error {
	buf := make([]byte, 4096)
	n, err := c.sock.Read(buf)
	if n > 0 {
		c.rbuf = append(c.rbuf, buf[:n]...)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read event: %w", err)
	}
	return errors.New("read event: connection closed")
}

func (c *Conn) dispatch(obj uint32, opcode uint16, body []byte) error {
	switch {
	case obj == displayID && opcode == evDisplayError:
		target, _ := getUint(body, 0)
		code, _ := getUint(body, 4)
		msg, _, _ := getString(body, 8)
		return fmt.Errorf("compositor protocol error on object %d (code %d): %s", target, code, msg)
	case obj == displayID && opcode == evDisplayDeleteID:
		// Server retired an id (sync callbacks); nothing to reclaim.
	case obj == c.registryID && opcode == evRegistryGlobal:
		name, err := getUint(body, 0)
		if err != nil {
			return err
		}
		iface, next, err := getString(body, 4)
		if err != nil {
			return err
		}
		version, err := getUint(body, next)
		if err != nil {
			return err
		}
		c.globals = append(c.globals, global{name: name, iface: iface, version: version})
		c.logger.Log(nil, log.LevelTrace, "global announced", "interface", iface, "version", version)
	case opcode == evCallbackDone && c.isCallback(obj):
		c.done[obj] = true
	default:
		// Seat capability/name events and unknown interfaces are
		// irrelevant to a send-only virtual keyboard.
	}
	return nil
}

func (c *Conn) isCallback(obj uint32) bool {
	_, ok := c.done[obj]
	return ok
}

// Close destroys the keyboard object and closes the connection.
func (k *Keyboard) Close() error {
	_ = k.conn.request(k.id, opKeyboardDestroy, nil, nil)
	return k.conn.sock.Close()
}

// UploadKeymap ships the XKB keymap text to the compositor through a memfd.
// The protocol requires a NUL-terminated payload; the terminator is appended
// here and counted in the advertised size.
func (k *Keyboard) UploadKeymap(data []byte) error {
	fd, err := unix.MemfdCreate("wltype-keymap", unix.MFD_CLOEXEC)
	if err != nil {
		return fmt.Errorf("memfd_create: %w", err)
	}
	defer unix.Close(fd)

	payload := make([]byte, 0, len(data)+1)
	payload = append(payload, data...)
	payload = append(payload, 0)
	if err := writeFull(fd, payload); err != nil {
		return fmt.Errorf("write keymap: %w", err)
	}

	body := appendUint(appendUint(nil, keymapFormatXKBv1), uint32(len(payload)))
	return k.conn.request(k.id, opKeyboardKeymap, []int{fd}, body)
}

// SendKey emits one press or release event for a keycode from the uploaded
// keymap.
func (k *Keyboard) SendKey(code uint32, pressed bool) error {
	var state uint32
	if pressed {
		state = 1
	}
	body := appendUint(appendUint(appendUint(nil, 0), code), state)
	return k.conn.request(k.id, opKeyboardKey, nil, body)
}

// SendModifiers transmits the full modifier state.
func (k *Keyboard) SendModifiers(depressed, latched, locked, group uint32) error {
	body := appendUint(nil, depressed)
	body = appendUint(body, latched)
	body = appendUint(body, locked)
	body = appendUint(body, group)
	return k.conn.request(k.id, opKeyboardModifiers, nil, body)
}

// Roundtrip exposes the connection barrier to the executor.
func (k *Keyboard) Roundtrip() error { return k.conn.Roundtrip() }

func writeFull(fd int, data []byte) error {
	for len(data) > 0 {
		n, err := unix.Write(fd, data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// socketPath resolves the compositor socket per the usual conventions:
// $WAYLAND_DISPLAY (absolute paths honored, default wayland-0) under
// $XDG_RUNTIME_DIR.
func socketPath() (string, error) {
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = "wayland-0"
	}
	if filepath.IsAbs(display) {
		return display, nil
	}
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		return "", errors.New("XDG_RUNTIME_DIR is not set; cannot locate the wayland socket")
	}
	return filepath.Join(dir, display), nil
}
