package conv

import (
	"strconv"
	"testing"
)

func TestUtoa(t *testing.T) {
	type C struct {
		x    uint32
		want string
	}
	for _, c := range []C{
		{0, "0"},
		{1, "1"},
		{9, "9"},
		{10, "10"},
		{100, "100"},
		{1009, "1009"},
		{42, "42"},
		{1000000000, "1000000000"},
		{4294967295, "4294967295"},
	} {
		var buf [10]byte
		if got := string(Utoa(buf[:], c.x)); got != c.want {
			t.Fatalf("Utoa(%d) = %q, want %q", c.x, got, c.want)
		}
	}
}

func TestUtoaRoundTrip(t *testing.T) {
	var buf [10]byte
	for _, x := range []uint32{0, 1, 7, 99, 1023, 65536, 99999999, 1 << 31, 4294967295} {
		s := string(Utoa(buf[:], x))
		if len(s) == 0 || len(s) > 10 {
			t.Fatalf("Utoa(%d) length %d out of range", x, len(s))
		}
		if len(s) > 1 && s[0] == '0' {
			t.Fatalf("Utoa(%d) = %q has a leading zero", x, s)
		}
		back, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			t.Fatalf("ParseUint(%q): %v", s, err)
		}
		if uint32(back) != x {
			t.Fatalf("round trip: want %d, got %d", x, back)
		}
	}
}

func TestUtoaShortBuffer(t *testing.T) {
	var buf [4]byte
	if got := Utoa(buf[:], 12345); len(got) != 0 {
		t.Fatalf("short buffer should yield empty slice, got %q", string(got))
	}
}

func TestHex32(t *testing.T) {
	type C struct {
		x    uint32
		want string
	}
	for _, c := range []C{
		{0, "00000000"},
		{255, "000000ff"},
		{0xdeadbeef, "deadbeef"},
		{0x00000001, "00000001"},
		{0xffffffff, "ffffffff"},
		{0x0badf00d, "0badf00d"},
	} {
		var buf [8]byte
		got := string(Hex32(buf[:], c.x))
		if got != c.want {
			t.Fatalf("Hex32(%#x) = %q, want %q", c.x, got, c.want)
		}
		back, err := strconv.ParseUint(got, 16, 32)
		if err != nil {
			t.Fatalf("ParseUint(%q): %v", got, err)
		}
		if uint32(back) != c.x {
			t.Fatalf("round trip: want %#x, got %#x", c.x, back)
		}
	}
}

func TestHex32ShortBuffer(t *testing.T) {
	var buf [7]byte
	if got := Hex32(buf[:], 1); len(got) != 0 {
		t.Fatalf("short buffer should yield empty slice, got %q", string(got))
	}
}

func TestUpperASCII(t *testing.T) {
	b := []byte("deadBEEF-123 {}~")
	UpperASCII(b)
	if got, want := string(b), "DEADBEEF-123 {}~"; got != want {
		t.Fatalf("UpperASCII = %q, want %q", got, want)
	}
	// Idempotent on already-uppercase input.
	UpperASCII(b)
	if got, want := string(b), "DEADBEEF-123 {}~"; got != want {
		t.Fatalf("second fold = %q, want %q", got, want)
	}
}
