package uartio

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ucycg/neorv32/errcode"
)

// --- minimal fake implementing Port ---

type fakePort struct {
	mu sync.Mutex
	rx []byte
}

func (f *fakePort) inject(s string) {
	f.mu.Lock()
	f.rx = append(f.rx, s...)
	f.mu.Unlock()
}

func (f *fakePort) HasData() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rx) > 0
}

func (f *fakePort) ReadAvailable() byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.rx[0]
	f.rx = f.rx[1:]
	return b
}

func recvEvent(ch <-chan Event, d time.Duration) (Event, bool) {
	select {
	case ev := <-ch:
		return ev, true
	case <-time.After(d):
		return Event{}, false
	}
}

// --- tests ---

func TestRegisterNilPort(t *testing.T) {
	w := New(4)
	_, err := w.Register(context.Background(), ReaderCfg{})
	if errcode.Of(err) != errcode.BadConfig {
		t.Fatalf("code = %v, want bad_config", errcode.Of(err))
	}
}

func TestBytesMode(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &fakePort{}
	w := New(8)
	stop, err := w.Register(ctx, ReaderCfg{Port: p, Mode: Bytes, MaxFrame: 16})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	defer stop()

	p.inject("abc")
	ev, ok := recvEvent(w.Events(), time.Second)
	if !ok {
		t.Fatalf("timeout waiting for chunk")
	}
	if string(ev.Data) != "abc" {
		t.Fatalf("chunk = %q, want %q", ev.Data, "abc")
	}
	if ev.TS.IsZero() {
		t.Fatalf("timestamp not set")
	}
}

func TestLinesMode(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &fakePort{}
	w := New(8)
	stop, err := w.Register(ctx, ReaderCfg{Port: p, Mode: Lines, MaxFrame: 32})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	defer stop()

	p.inject("hi\r\nthere\r")

	ev, ok := recvEvent(w.Events(), time.Second)
	if !ok {
		t.Fatalf("line 1 timeout")
	}
	if string(ev.Data) != "hi" {
		t.Fatalf("line 1 = %q, want %q", ev.Data, "hi")
	}

	ev, ok = recvEvent(w.Events(), time.Second)
	if !ok {
		t.Fatalf("line 2 timeout")
	}
	if string(ev.Data) != "there" {
		t.Fatalf("line 2 = %q, want %q", ev.Data, "there")
	}
}

func TestLinesModeBoundsFrame(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &fakePort{}
	w := New(8)
	stop, err := w.Register(ctx, ReaderCfg{Port: p, Mode: Lines, MaxFrame: 1}) // clamps to 16
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	defer stop()

	p.inject("aaaaaaaaaaaaaaaaaaaaaaaa\r") // 24 bytes, over the 16-byte frame

	ev, ok := recvEvent(w.Events(), time.Second)
	if !ok {
		t.Fatalf("timeout")
	}
	if len(ev.Data) != 16 {
		t.Fatalf("frame length = %d, want 16", len(ev.Data))
	}
}

func TestCancelStopsReader(t *testing.T) {
	p := &fakePort{}
	w := New(8)
	stop, err := w.Register(context.Background(), ReaderCfg{Port: p, Mode: Bytes, Poll: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	stop()

	// Give the goroutine a moment to exit, then check nothing is drained.
	time.Sleep(20 * time.Millisecond)
	p.inject("zz")
	if _, ok := recvEvent(w.Events(), 100*time.Millisecond); ok {
		t.Fatalf("reader still draining after cancel")
	}
}
