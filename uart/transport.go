package uart

import "tinygo.org/x/drivers"

// PutByte writes one byte, spinning until the TX FIFO has room.
func (u *UART) PutByte(b byte) {
	for u.regs.Ctrl()&(1<<ctrlTxFull) != 0 {
		u.pause()
	}
	u.regs.SetData(uint32(b) << dataRTXLSB)
}

// GetByte blocks until a byte arrives and returns it.
func (u *UART) GetByte() byte {
	for u.regs.Ctrl()&(1<<ctrlRxNEmpty) == 0 {
		u.pause()
	}
	return byte(u.regs.Data() >> dataRTXLSB)
}

// HasData reports whether the RX FIFO holds at least one byte.
func (u *UART) HasData() bool { return u.regs.Ctrl()&(1<<ctrlRxNEmpty) != 0 }

// ReadAvailable pops one byte from the RX FIFO. Only valid after HasData
// reported true.
func (u *UART) ReadAvailable() byte { return byte(u.regs.Data() >> dataRTXLSB) }

// PutString writes s, expanding every '\n' to "\r\n".
func (u *UART) PutString(s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' {
			u.PutByte('\r')
		}
		u.PutByte(c)
	}
}

// putText streams b through the same line discipline as PutString.
func (u *UART) putText(b []byte) {
	for _, c := range b {
		if c == '\n' {
			u.PutByte('\r')
		}
		u.PutByte(c)
	}
}

// ---------------- drivers.UART conformance ----------------
//
// The raw Read/Write pair is binary-safe: no CRLF expansion, no echo.
// PutString/Printf are the text path.

var _ drivers.UART = (*UART)(nil)

// Buffered reports how many received bytes are known to be waiting. The
// hardware only exposes a not-empty flag, not a count, so this is 0 or 1.
func (u *UART) Buffered() int {
	if u.HasData() {
		return 1
	}
	return 0
}

// ReadByte blocks for one byte. It never fails.
func (u *UART) ReadByte() (byte, error) { return u.GetByte(), nil }

// WriteByte sends one byte, blocking on a full TX FIFO.
func (u *UART) WriteByte(b byte) error {
	u.PutByte(b)
	return nil
}

// Read blocks for the first byte, then drains whatever else the RX FIFO
// already holds.
func (u *UART) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = u.GetByte()
	n := 1
	for n < len(p) && u.HasData() {
		p[n] = u.ReadAvailable()
		n++
	}
	return n, nil
}

// Write sends p unmodified.
func (u *UART) Write(p []byte) (int, error) {
	for _, b := range p {
		u.PutByte(b)
	}
	return len(p), nil
}
