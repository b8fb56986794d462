// Package sysinfo reads the SoC configuration block: the system clock
// frequency and the set of peripherals synthesized into the target.
package sysinfo

import "github.com/ucycg/neorv32/internal/mmio"

// Bus address of the SYSINFO register block.
const base uintptr = 0xFFFE0000

// Register offsets within the block.
const (
	offClk = 0x0 // system clock frequency in Hz
	offSoc = 0x8 // SoC configuration bits
)

// Feature is one bit of the SOC configuration word.
type Feature uint8

const (
	FeatBootloader Feature = 0 // bootloader ROM present
	FeatIMem       Feature = 2 // internal instruction memory
	FeatDMem       Feature = 3 // internal data memory
	FeatICache     Feature = 5
	FeatDCache     Feature = 6

	FeatIOGPIO  Feature = 16
	FeatIOMTime Feature = 17
	FeatIOUART0 Feature = 18 // primary UART synthesized
	FeatIOUART1 Feature = 19 // secondary UART synthesized
	FeatIOSPI   Feature = 20
	FeatIOTWI   Feature = 21
)

// Regs is the SYSINFO register window. Loads must observe the hardware
// directly; no caching between calls.
type Regs interface {
	Clk() uint32
	Soc() uint32
}

type mmioRegs struct {
	clk mmio.Reg32
	soc mmio.Reg32
}

func (m mmioRegs) Clk() uint32 { return m.clk.Load() }
func (m mmioRegs) Soc() uint32 { return m.soc.Load() }

// Info answers clock and capability queries for one SoC.
type Info struct {
	regs Regs
}

// New builds an Info over an explicit register source.
func New(regs Regs) *Info { return &Info{regs: regs} }

var def = New(mmioRegs{
	clk: mmio.At(base + offClk),
	soc: mmio.At(base + offSoc),
})

// Default returns the Info bound to the memory-mapped SYSINFO block.
func Default() *Info { return def }

// ClockHz returns the current system clock frequency.
func (s *Info) ClockHz() uint32 { return s.regs.Clk() }

// Has reports whether the feature was synthesized into the SoC.
func (s *Info) Has(f Feature) bool { return s.regs.Soc()&(1<<f) != 0 }
