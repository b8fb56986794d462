package uart

import (
	"github.com/ucycg/neorv32/errcode"
	"github.com/ucycg/neorv32/sysinfo"
	"github.com/ucycg/neorv32/x/mathx"
)

// Instance selects one of the SoC's UART register blocks.
type Instance uint8

const (
	Primary   Instance = iota // UART0, the boot console
	Secondary                 // UART1
)

func (i Instance) String() string {
	if i == Secondary {
		return "uart1"
	}
	return "uart0"
}

// feature maps the instance to its SYSINFO capability bit.
func (i Instance) feature() sysinfo.Feature {
	if i == Secondary {
		return sysinfo.FeatIOUART1
	}
	return sysinfo.FeatIOUART0
}

// SystemInfo answers the queries the driver needs from the SoC
// configuration block. *sysinfo.Info satisfies it.
type SystemInfo interface {
	ClockHz() uint32
	Has(f sysinfo.Feature) bool
}

// UART owns one instance's register block. The two hardware-backed owners
// are statically allocated; fetch them with Port or Probe. The driver keeps
// no state beyond the registers themselves.
type UART struct {
	inst  Instance
	regs  RegisterBlock
	info  SystemInfo
	yield func()
}

var ports = [2]*UART{
	{inst: Primary, regs: blockAt(uart0Base), info: sysinfo.Default()},
	{inst: Secondary, regs: blockAt(uart1Base), info: sysinfo.Default()},
}

// Port returns the exclusive owner of the instance's register block.
func Port(inst Instance) *UART { return ports[inst&1] }

// Probe returns the instance's port after checking that it was synthesized
// into the SoC.
func Probe(inst Instance) (*UART, error) {
	u := Port(inst)
	if !u.Available() {
		return nil, &errcode.E{C: errcode.PeripheralMissing, Op: "uart.Probe", Msg: inst.String()}
	}
	return u, nil
}

// New builds a driver over an explicit register block and SoC info source.
// Hardware access goes through Port; New exists for simulated blocks.
func New(inst Instance, regs RegisterBlock, info SystemInfo) *UART {
	return &UART{inst: inst, regs: regs, info: info}
}

// Instance reports which register block the driver owns.
func (u *UART) Instance() Instance { return u.inst }

// SetYield installs fn, called once per iteration of every blocking poll
// loop. Pass nil to spin bare.
func (u *UART) SetYield(fn func()) { u.yield = fn }

func (u *UART) pause() {
	if u.yield != nil {
		u.yield()
	}
}

// Available reports whether the instance was synthesized into the SoC.
func (u *UART) Available() bool { return u.info.Has(u.inst.feature()) }

// Setup resets the instance, derives the prescaler/divisor pair for baud
// from the current system clock and writes the whole configuration, enable
// bit included, in a single CTRL store. The low five bits of irqMask select
// the hardware interrupt sources (see the IRQ* constants); unrecognized
// bits are masked off.
func (u *UART) Setup(baud uint32, irqMask uint32) {
	u.regs.SetCtrl(0)

	clock := u.info.ClockHz()
	div := clock / (2 * baud)

	// Shrink the raw divisor into the 10-bit field. The clock-divider taps
	// at prescaler-select 2 and 4 step by x8 instead of x2.
	var prsc uint32
	for div >= baudMask {
		if prsc == 2 || prsc == 4 {
			div >>= 3
		} else {
			div >>= 1
		}
		prsc++
	}
	div = mathx.Clamp(div, 1, baudMask)

	ctrl := uint32(1) << ctrlEn
	ctrl |= (prsc & prscMask) << ctrlPrscLSB
	ctrl |= ((div - 1) & baudMask) << ctrlBaudLSB
	ctrl |= (irqMask & irqSrcMask) << ctrlIRQRxNEmpty
	u.regs.SetCtrl(ctrl)
}

// Enable sets the enable bit, leaving the rest of CTRL untouched.
func (u *UART) Enable() { u.regs.SetCtrl(u.regs.Ctrl() | 1<<ctrlEn) }

// Disable clears the enable bit.
func (u *UART) Disable() { u.regs.SetCtrl(u.regs.Ctrl() &^ (1 << ctrlEn)) }

// RTSCTSEnable switches on RTS/CTS hardware flow control.
func (u *UART) RTSCTSEnable() { u.regs.SetCtrl(u.regs.Ctrl() | 1<<ctrlHWFCEn) }

// RTSCTSDisable switches off RTS/CTS hardware flow control.
func (u *UART) RTSCTSDisable() { u.regs.SetCtrl(u.regs.Ctrl() &^ (1 << ctrlHWFCEn)) }

// EnableSim redirects TX to the simulator's text output. Simulation only.
func (u *UART) EnableSim() { u.regs.SetCtrl(u.regs.Ctrl() | 1<<ctrlSim) }

// DisableSim routes TX back to the physical transmitter.
func (u *UART) DisableSim() { u.regs.SetCtrl(u.regs.Ctrl() &^ (1 << ctrlSim)) }

// RxFIFODepth returns the hardware receive FIFO depth in entries.
func (u *UART) RxFIFODepth() int {
	return 1 << ((u.regs.Data() >> dataRxFIFOSizeLSB) & fifoSizeMask)
}

// TxFIFODepth returns the hardware transmit FIFO depth in entries.
func (u *UART) TxFIFODepth() int {
	return 1 << ((u.regs.Data() >> dataTxFIFOSizeLSB) & fifoSizeMask)
}

// TxBusy reports whether the transmitter is still shifting or holds
// buffered data.
func (u *UART) TxBusy() bool { return u.regs.Ctrl()&(1<<ctrlTxBusy) != 0 }

// RxOverrun reports the sticky RX FIFO overrun flag.
func (u *UART) RxOverrun() bool { return u.regs.Ctrl()&(1<<ctrlRxOver) != 0 }
