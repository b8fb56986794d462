// Command console: minimal interactive console on the primary UART.
// Presence check, setup, banner, then a read/echo loop on the line scanner.
//
// Build for the target SoC; everything runs on the polled driver, so there
// is nothing to configure beyond the constants below.
package main

import (
	"github.com/ucycg/neorv32/stdio"
	"github.com/ucycg/neorv32/uart"
)

const baud = 19200

func main() {
	u, err := uart.Probe(uart.Primary)
	if err != nil {
		return // no console hardware synthesized
	}
	u.Setup(baud, 0)
	stdio.Bind(u)

	stdio.Printf("\nconsole up: %u baud, rx fifo %d, tx fifo %d\n",
		uint32(baud), u.RxFIFODepth(), u.TxFIFODepth())

	buf := make([]byte, 64)
	for {
		stdio.Puts("> ")
		n := stdio.ReadLine(buf)
		stdio.Printf("\ngot %d bytes: %s\n", n, string(buf[:n]))
	}
}
