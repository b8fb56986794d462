package conv

// Utoa writes the shortest decimal form of x into buf and returns the used
// slice. buf must hold at least 10 bytes; shorter buffers yield buf[:0].
// No allocations; no fmt/strconv dependency.
//
// Digits are extracted least-significant first into a fixed 10-slot
// scratch, surplus high slots are blanked out, and the survivors are
// reversed into buf. Slot 0 is never blanked, so zero keeps its digit.
func Utoa(buf []byte, x uint32) []byte {
	const numbers = "0123456789"

	if len(buf) < 10 {
		return buf[:0]
	}

	var scratch [10]byte
	for i := 0; i < 10; i++ {
		scratch[i] = numbers[x%10]
		x /= 10
	}

	// Blank leading zeros, scanning down from the most-significant slot.
	i := 9
	for ; i != 0; i-- {
		if scratch[i] != '0' {
			break
		}
		scratch[i] = 0
	}

	// Reverse the surviving digits into buf.
	n := 0
	for ; i >= 0; i-- {
		buf[n] = scratch[i]
		n++
	}
	return buf[:n]
}
