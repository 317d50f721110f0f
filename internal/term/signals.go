package term

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// startSignals wires SIGWINCH/SIGTERM/SIGINT into a self-pipe so ReadEvent
// can multiplex them alongside the tty fd in a single unix.Poll call.
// os/signal only delivers to a Go channel, which requires a goroutine to
// receive it — this goroutine's only job is forwarding that channel onto
// the pipe byte-for-byte; all state it touches is guarded by a mutex, and
// the main loop remains the sole place commands actually run.
func (d *Device) startSignals() error {
	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	d.sigPipeR, d.sigPipeW = r, w
	d.sigCh = make(chan os.Signal, 4)
	signal.Notify(d.sigCh, syscall.SIGWINCH, syscall.SIGTERM, syscall.SIGINT)

	var mu sync.Mutex
	var queue []os.Signal
	d.popSignal = func() os.Signal {
		mu.Lock()
		defer mu.Unlock()
		if len(queue) == 0 {
			return nil
		}
		sig := queue[0]
		queue = queue[1:]
		return sig
	}

	go func() {
		for sig := range d.sigCh {
			mu.Lock()
			queue = append(queue, sig)
			mu.Unlock()
			w.Write([]byte{1})
		}
	}()
	return nil
}

func (d *Device) stopSignals() {
	signal.Stop(d.sigCh)
	close(d.sigCh)
	d.sigPipeR.Close()
	d.sigPipeW.Close()
}
