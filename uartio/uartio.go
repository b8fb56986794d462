// Package uartio runs a cancellable polled reader on top of the driver's
// non-blocking receive pair, batching bytes or terminal lines into channel
// events. It stays strictly polling: no interrupt handler, no DMA, just a
// periodic drain of the RX FIFO.
package uartio

import (
	"context"
	"time"

	"github.com/ucycg/neorv32/errcode"
	"github.com/ucycg/neorv32/x/mathx"
)

// Port is the non-blocking receive surface of a UART instance.
// *uart.UART satisfies it.
type Port interface {
	HasData() bool
	ReadAvailable() byte
}

// Mode selects how drained bytes are grouped.
type Mode uint8

const (
	Bytes Mode = iota // emit raw chunks as the FIFO drains
	Lines             // split on CR/LF, terminators stripped
)

// Event is one batch read from a port.
type Event struct {
	Data []byte
	TS   time.Time
}

// ReaderCfg configures one polled reader.
type ReaderCfg struct {
	Port     Port
	Mode     Mode
	MaxFrame int           // clamp 16..256
	Poll     time.Duration // drain interval, clamp 1ms..100ms
}

type Worker struct {
	outQ chan Event
}

func New(outBuf int) *Worker {
	if outBuf <= 0 {
		outBuf = 64
	}
	return &Worker{outQ: make(chan Event, outBuf)}
}

func (w *Worker) Events() <-chan Event { return w.outQ }

// Register starts a bounded reader goroutine for a port. Returns cancel.
func (w *Worker) Register(ctx context.Context, cfg ReaderCfg) (func(), error) {
	if cfg.Port == nil {
		return nil, &errcode.E{C: errcode.BadConfig, Op: "uartio.Register", Msg: "nil port"}
	}
	max := mathx.Clamp(cfg.MaxFrame, 16, 256)
	poll := mathx.Clamp(cfg.Poll, time.Millisecond, 100*time.Millisecond)
	cctx, cancel := context.WithCancel(ctx)

	go func() {
		var acc []byte

		flush := func(now time.Time) {
			if len(acc) == 0 {
				return
			}
			payload := append([]byte(nil), acc...)
			acc = acc[:0]
			select {
			case w.outQ <- Event{Data: payload, TS: now}:
			default:
				// drop if consumer is slow
			}
		}

		tick := time.NewTicker(poll)
		defer tick.Stop()

		for {
			select {
			case <-cctx.Done():
				return
			case <-tick.C:
				now := time.Now()
				for cfg.Port.HasData() {
					b := cfg.Port.ReadAvailable()
					if cfg.Mode == Lines {
						switch b {
						case '\r', '\n':
							flush(now)
						default:
							if len(acc) < max {
								acc = append(acc, b)
							}
						}
						continue
					}
					acc = append(acc, b)
					if len(acc) >= max {
						flush(now)
					}
				}
				if cfg.Mode == Bytes {
					flush(now)
				}
			}
		}
	}()

	return cancel, nil
}
