package uart

// ScanLine reads one edited line into buf, blocking until a carriage return
// arrives. At most len(buf)-1 bytes are accepted; a NUL terminator is
// written after them. Returns the number of accepted bytes.
//
// Per input byte:
//   - backspace (0x08) removes the previous byte and, with echo on, writes
//     "\b \b" to erase it on the terminal; on an empty line it is ignored
//   - carriage return (0x0D) terminates the read
//   - printable ASCII (0x20..0x7E) is appended while room remains, echoed
//     back when echo is on
//   - everything else (other control bytes, input past capacity) is
//     silently dropped
//
// There is no timeout and no cancellation; the scanner spins on the RX
// flag (through the yield hook, if one is set) until the line ends.
func (u *UART) ScanLine(buf []byte, echo bool) int {
	if len(buf) == 0 {
		return 0
	}

	length := 0
	for {
		c := u.GetByte()
		switch {
		case c == '\b':
			if length > 0 {
				if echo {
					u.PutString("\b \b")
				}
				length--
			}

		case c == '\r':
			buf[length] = 0
			return length

		case c >= 0x20 && c <= 0x7e && length < len(buf)-1:
			if echo {
				u.PutByte(c)
			}
			buf[length] = c
			length++
		}
	}
}
