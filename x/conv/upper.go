package conv

// UpperASCII folds 'a'..'z' to 'A'..'Z' in place. Other bytes pass
// unchanged.
func UpperASCII(b []byte) {
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
}
