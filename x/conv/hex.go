package conv

// Hex32 writes x as exactly 8 lowercase hex digits into buf and returns the
// used slice: zero-padded, most-significant nibble first. buf must hold at
// least 8 bytes; shorter buffers yield buf[:0].
func Hex32(buf []byte, x uint32) []byte {
	const symbols = "0123456789abcdef"

	if len(buf) < 8 {
		return buf[:0]
	}
	for i := 0; i < 8; i++ { // nibble by nibble
		buf[7-i] = symbols[(x>>(4*i))&0x0f]
	}
	return buf[:8]
}
