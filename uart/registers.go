// Package uart drives the SoC's memory-mapped UART instances: polled byte
// transport, CRLF-expanding string output, a small formatted-output engine
// and an interactive line scanner. Everything blocks by spinning on the
// control register's status flags; there is no interrupt path in here.
package uart

// Bus addresses of the two instance register blocks.
const (
	uart0Base uintptr = 0xFFF5_0000
	uart1Base uintptr = 0xFFF6_0000
)

// CTRL register layout.
const (
	ctrlEn     = 0 // UART enable
	ctrlSim    = 1 // redirect TX to the simulator's text output
	ctrlHWFCEn = 2 // RTS/CTS hardware flow control enable

	ctrlPrscLSB = 3 // 3-bit clock prescaler select
	ctrlBaudLSB = 6 // 10-bit baud divisor, bits 6..15

	// Status flags (read-only).
	ctrlRxNEmpty = 16 // RX FIFO not empty
	ctrlRxHalf   = 17
	ctrlRxFull   = 18
	ctrlTxEmpty  = 19
	ctrlTxNHalf  = 20
	ctrlTxFull   = 21 // TX FIFO full

	// Interrupt source enables, one bit per source.
	ctrlIRQRxNEmpty = 22
	ctrlIRQRxHalf   = 23
	ctrlIRQRxFull   = 24
	ctrlIRQTxEmpty  = 25
	ctrlIRQTxNHalf  = 26

	ctrlRxOver = 30 // RX FIFO overrun (sticky)
	ctrlTxBusy = 31 // transmitter shifting or TX FIFO non-empty

	prscMask = 0x7
	baudMask = 0x3ff

	irqSrcMask = 0x1f // recognized irqMask bits in Setup
)

// Interrupt sources for Setup's irqMask (low five bits; anything else is
// masked off).
const (
	IRQRxNotEmpty uint32 = 1 << 0
	IRQRxHalf     uint32 = 1 << 1
	IRQRxFull     uint32 = 1 << 2
	IRQTxEmpty    uint32 = 1 << 3
	IRQTxNotHalf  uint32 = 1 << 4
)

// DATA register layout.
const (
	dataRTXLSB        = 0  // RX/TX byte, bits 0..7
	dataRxFIFOSizeLSB = 8  // log2(RX FIFO depth), 4 bits
	dataTxFIFOSizeLSB = 12 // log2(TX FIFO depth), 4 bits

	fifoSizeMask = 0x0f
)
