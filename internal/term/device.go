// Package term is the terminal device: raw read/write, size querying,
// raw-mode toggling, and alternate-screen save/restore. It owns /dev/tty,
// switches it to raw mode and the alternate screen with mouse tracking
// enabled, implements viewport.Screen with real ANSI writes, and
// multiplexes keyboard input, SIGWINCH, and SIGTERM into a single
// blocking ReadEvent call via golang.org/x/sys/unix.Poll.
package term

import (
	"bufio"
	"fmt"
	"os"

	"github.com/grovetools/jsonview/internal/errorsx"
	"golang.org/x/term"
)

const (
	altScreenOn  = "\x1b[?1049h"
	altScreenOff = "\x1b[?1049l"
	cursorHide   = "\x1b[?25l"
	cursorShow   = "\x1b[?25h"
	mouseOn      = "\x1b[?1000h\x1b[?1006h"
	mouseOff     = "\x1b[?1006l\x1b[?1000l"
)

// Device is a raw-mode, alternate-screen /dev/tty, guaranteed to restore
// the original terminal state on Close.
type Device struct {
	tty      *os.File
	w        *bufio.Writer
	oldState *term.State

	sigPipeR  *os.File
	sigPipeW  *os.File
	sigCh     chan os.Signal
	popSignal func() os.Signal

	mouse bool
}

// Open switches /dev/tty to raw mode, enters the alternate screen with a
// hidden cursor (and mouse tracking, unless the caller's config disabled
// it), and starts the signal-forwarding self-pipe used by ReadEvent.
func Open(mouse bool) (*Device, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.CodeNoTTY, "open /dev/tty")
	}
	fd := int(tty.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		tty.Close()
		return nil, errorsx.Wrap(err, errorsx.CodeNoTTY, "enable raw mode")
	}

	d := &Device{tty: tty, w: bufio.NewWriter(tty), oldState: old}
	if err := d.startSignals(); err != nil {
		term.Restore(fd, old)
		tty.Close()
		return nil, errorsx.Wrap(err, errorsx.CodeInternal, "start signal multiplexer")
	}

	seq := altScreenOn + cursorHide
	if mouse {
		seq = altScreenOn + mouseOn + cursorHide
	}
	d.raw(seq)
	d.mouse = mouse
	d.Clear()
	d.Flush()
	return d, nil
}

// Close restores cooked mode, the primary screen, and the visible cursor,
// then releases the tty and signal pipe. Safe to call once on every exit
// path.
func (d *Device) Close() error {
	seq := altScreenOff + cursorShow
	if d.mouse {
		seq = mouseOff + altScreenOff + cursorShow
	}
	d.raw(seq)
	d.Flush()
	term.Restore(int(d.tty.Fd()), d.oldState)
	d.stopSignals()
	return d.tty.Close()
}

// Size queries the current terminal dimensions in columns, rows.
func (d *Device) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(d.tty.Fd()))
	if err != nil {
		return 0, 0, errorsx.Wrap(err, errorsx.CodeTermSize, "query terminal size")
	}
	return w, h, nil
}

// The following implement viewport.Screen.

func (d *Device) MoveTo(row, col int) {
	fmt.Fprintf(d.w, "\x1b[%d;%dH", row, col)
}

func (d *Device) EraseToEOL() {
	d.w.WriteString("\x1b[K")
}

func (d *Device) Clear() {
	d.w.WriteString("\x1b[2J\x1b[H")
}

func (d *Device) DeleteLines(n int) {
	fmt.Fprintf(d.w, "\x1b[%dM", n)
}

func (d *Device) InsertLines(n int) {
	fmt.Fprintf(d.w, "\x1b[%dL", n)
}

func (d *Device) Print(s string) {
	d.w.WriteString(s)
}

// Flush sends buffered writes to the tty; the caller flushes once per
// frame rather than after every Screen call.
func (d *Device) Flush() error {
	return d.w.Flush()
}

func (d *Device) raw(s string) {
	d.w.WriteString(s)
}
