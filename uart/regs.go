package uart

import "github.com/ucycg/neorv32/internal/mmio"

// RegisterBlock is the two-register window of one UART instance. Loads
// observe live hardware status and stores are commands; implementations
// must not cache register contents between calls.
type RegisterBlock interface {
	Ctrl() uint32
	SetCtrl(v uint32)
	Data() uint32
	SetData(v uint32)
}

// mmioBlock maps RegisterBlock onto an instance's bus addresses.
type mmioBlock struct {
	ctrl mmio.Reg32
	data mmio.Reg32
}

func blockAt(base uintptr) mmioBlock {
	return mmioBlock{
		ctrl: mmio.At(base + 0x0),
		data: mmio.At(base + 0x4),
	}
}

func (b mmioBlock) Ctrl() uint32     { return b.ctrl.Load() }
func (b mmioBlock) SetCtrl(v uint32) { b.ctrl.Store(v) }
func (b mmioBlock) Data() uint32     { return b.data.Load() }
func (b mmioBlock) SetData(v uint32) { b.data.Store(v) }
