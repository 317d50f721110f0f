package term

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

// escapeDeadlineMs is how long ReadEvent waits for a CSI continuation
// after a bare ESC byte before concluding it really was just Escape.
const escapeDeadlineMs = 100

// EventKind identifies what ReadEvent returned.
type EventKind int

const (
	EventKey EventKind = iota
	EventMouse
	EventResize
	EventSignal
)

// Key names a single keystroke: either a printable rune (optionally with
// Ctrl held) or a named key ("Enter", "Esc", "Up", "PageDown", ...).
type Key struct {
	Rune rune
	Name string
	Ctrl bool
}

// MouseEvent is a decoded SGR or X10 mouse report.
type MouseEvent struct {
	Button              int
	X, Y                int
	Release             bool
	WheelUp, WheelDown  bool
}

// Event is whatever ReadEvent produced: exactly one of Key/Mouse/Signal is
// meaningful, selected by Kind. EventResize carries no payload — the
// caller re-queries Size.
type Event struct {
	Kind   EventKind
	Key    Key
	Mouse  MouseEvent
	Signal os.Signal
}

// ReadEvent blocks until a keystroke, mouse report, or forwarded signal is
// available, multiplexing the tty fd and the signal self-pipe with a
// single unix.Poll call over three sources (keyboard, SIGWINCH, SIGTERM),
// plus SIGINT folded in for a responsive Ctrl-C.
func (d *Device) ReadEvent() (Event, error) {
	fds := []unix.PollFd{
		{Fd: int32(d.tty.Fd()), Events: unix.POLLIN},
		{Fd: int32(d.sigPipeR.Fd()), Events: unix.POLLIN},
	}
	for {
		_, err := unix.Poll(fds, -1)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return Event{}, err
		}
		if fds[1].Revents&unix.POLLIN != 0 {
			var b [1]byte
			d.sigPipeR.Read(b[:])
			sig := d.popSignal()
			if sig == nil {
				continue
			}
			if sig == syscall.SIGWINCH {
				return Event{Kind: EventResize}, nil
			}
			return Event{Kind: EventSignal, Signal: sig}, nil
		}
		if fds[0].Revents&unix.POLLIN != 0 {
			return d.readKeyEvent()
		}
	}
}

func (d *Device) readKeyEvent() (Event, error) {
	var b [1]byte
	if _, err := d.tty.Read(b[:]); err != nil {
		return Event{}, err
	}
	if b[0] != 0x1b {
		return d.parseSingle(b[0])
	}

	fds := []unix.PollFd{{Fd: int32(d.tty.Fd()), Events: unix.POLLIN}}
	n, _ := unix.Poll(fds, escapeDeadlineMs)
	if n <= 0 {
		return Event{Kind: EventKey, Key: Key{Name: "Esc"}}, nil
	}
	var seq [32]byte
	m, err := d.tty.Read(seq[:])
	if err != nil {
		return Event{}, err
	}
	return parseEscape(seq[:m])
}

func (d *Device) parseSingle(b byte) (Event, error) {
	if b < 0x20 || b == 0x7f {
		return Event{Kind: EventKey, Key: ctrlKey(b)}, nil
	}
	if b < 0x80 {
		return Event{Kind: EventKey, Key: Key{Rune: rune(b)}}, nil
	}
	size := utf8SeqLen(b)
	full := make([]byte, size)
	full[0] = b
	if size > 1 {
		if _, err := io.ReadFull(d.tty, full[1:]); err != nil {
			return Event{}, err
		}
	}
	r, _ := utf8.DecodeRune(full)
	return Event{Kind: EventKey, Key: Key{Rune: r}}, nil
}

func ctrlKey(b byte) Key {
	switch b {
	case 0x09:
		return Key{Name: "Tab"}
	case 0x0d:
		return Key{Name: "Enter"}
	case 0x7f:
		return Key{Name: "Backspace"}
	}
	if b >= 1 && b <= 26 {
		return Key{Rune: rune('a' + b - 1), Ctrl: true}
	}
	return Key{Rune: rune(b), Ctrl: true}
}

func utf8SeqLen(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 1
}

// parseEscape parses the bytes that followed a bare ESC: a CSI
// ("[" params final"), an X10 mouse report ("[M..."), or an SGR (1006)
// mouse report ("[<..."). Anything it doesn't recognize is silently
// ignored as a transient unknown sequence.
func parseEscape(seq []byte) (Event, error) {
	if len(seq) == 0 || seq[0] != '[' {
		return Event{Kind: EventKey, Key: Key{Name: "Esc"}}, nil
	}
	rest := seq[1:]
	if len(rest) > 0 && rest[0] == 'M' {
		ev, err := parseX10Mouse(rest[1:])
		if err != nil {
			return Event{Kind: EventKey, Key: Key{Name: "Unknown"}}, nil
		}
		return ev, nil
	}
	if len(rest) > 0 && rest[0] == '<' {
		ev, err := parseSGRMouse(rest[1:])
		if err != nil {
			return Event{Kind: EventKey, Key: Key{Name: "Unknown"}}, nil
		}
		return ev, nil
	}

	i := 0
	for i < len(rest) && (rest[i] == ';' || (rest[i] >= '0' && rest[i] <= '9')) {
		i++
	}
	if i >= len(rest) {
		return Event{Kind: EventKey, Key: Key{Name: "Unknown"}}, nil
	}
	return Event{Kind: EventKey, Key: namedKey(string(rest[:i]), rest[i])}, nil
}

func namedKey(params string, final byte) Key {
	switch final {
	case 'A':
		return Key{Name: "Up"}
	case 'B':
		return Key{Name: "Down"}
	case 'C':
		return Key{Name: "Right"}
	case 'D':
		return Key{Name: "Left"}
	case 'H':
		return Key{Name: "Home"}
	case 'F':
		return Key{Name: "End"}
	case '~':
		switch params {
		case "1", "7":
			return Key{Name: "Home"}
		case "4", "8":
			return Key{Name: "End"}
		case "3":
			return Key{Name: "Delete"}
		case "5":
			return Key{Name: "PageUp"}
		case "6":
			return Key{Name: "PageDown"}
		}
	}
	return Key{Name: "Unknown"}
}

func parseX10Mouse(rest []byte) (Event, error) {
	if len(rest) < 3 {
		return Event{}, fmt.Errorf("term: short X10 mouse sequence")
	}
	b := int(rest[0]) - 32
	x := int(rest[1]) - 32 - 1
	y := int(rest[2]) - 32 - 1
	return Event{Kind: EventMouse, Mouse: decodeMouseButton(b, x, y, false)}, nil
}

func parseSGRMouse(rest []byte) (Event, error) {
	s := string(rest)
	if len(s) == 0 {
		return Event{}, fmt.Errorf("term: empty SGR mouse sequence")
	}
	final := s[len(s)-1]
	if final != 'M' && final != 'm' {
		return Event{}, fmt.Errorf("term: malformed SGR mouse sequence")
	}
	parts := strings.Split(s[:len(s)-1], ";")
	if len(parts) != 3 {
		return Event{}, fmt.Errorf("term: malformed SGR mouse sequence")
	}
	b, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Event{}, fmt.Errorf("term: non-numeric SGR mouse sequence")
	}
	return Event{Kind: EventMouse, Mouse: decodeMouseButton(b, x-1, y-1, final == 'm')}, nil
}

func decodeMouseButton(code, x, y int, release bool) MouseEvent {
	m := MouseEvent{X: x, Y: y, Release: release}
	if code&0x40 != 0 {
		if code&0x3 == 0 {
			m.WheelUp = true
		} else {
			m.WheelDown = true
		}
		return m
	}
	m.Button = code & 0x3
	return m
}
