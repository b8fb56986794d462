package sysinfo

import "testing"

type fakeRegs struct {
	clk uint32
	soc uint32
}

func (f fakeRegs) Clk() uint32 { return f.clk }
func (f fakeRegs) Soc() uint32 { return f.soc }

func TestClockHz(t *testing.T) {
	s := New(fakeRegs{clk: 100_000_000})
	if got := s.ClockHz(); got != 100_000_000 {
		t.Fatalf("ClockHz = %d, want 100000000", got)
	}
}

func TestHas(t *testing.T) {
	s := New(fakeRegs{soc: 1<<FeatIOUART0 | 1<<FeatBootloader})
	if !s.Has(FeatIOUART0) {
		t.Fatalf("FeatIOUART0 should be present")
	}
	if !s.Has(FeatBootloader) {
		t.Fatalf("FeatBootloader should be present")
	}
	if s.Has(FeatIOUART1) {
		t.Fatalf("FeatIOUART1 should be absent")
	}
	if s.Has(FeatIOSPI) {
		t.Fatalf("FeatIOSPI should be absent")
	}
}
