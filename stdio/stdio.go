// Package stdio binds a process-wide console to one UART instance, giving
// the rest of the system character I/O without touching registers. The
// primary UART is the default console.
package stdio

import (
	"io"

	"github.com/ucycg/neorv32/uart"
)

var console = uart.Port(uart.Primary)

// Bind redirects the package-level helpers to u.
func Bind(u *uart.UART) { console = u }

// Console returns the currently bound UART.
func Console() *uart.UART { return console }

// Putchar sends one byte on the console, blocking on a full TX FIFO.
func Putchar(c byte) { console.PutByte(c) }

// Getchar blocks until a console byte arrives.
func Getchar() byte { return console.GetByte() }

// Puts writes s with '\n' expanded to "\r\n".
func Puts(s string) { console.PutString(s) }

// Printf formats to the console. See uart.Printf for the directive set.
func Printf(format string, args ...any) error {
	return console.Printf(format, args...)
}

// ReadLine scans one edited line into buf with echo on and returns the
// accepted length.
func ReadLine(buf []byte) int { return console.ScanLine(buf, true) }

// Writer exposes the console for io-based code. Writes are raw bytes, no
// CRLF expansion.
func Writer() io.Writer { return console }

// Reader exposes the console's blocking receive side.
func Reader() io.Reader { return console }
