// Package mmio provides raw 32-bit memory-mapped register cells.
package mmio

import "unsafe"

// Reg32 is one 32-bit hardware register at a fixed bus address. Every Load
// goes out to the bus; nothing is cached.
type Reg32 struct {
	addr uintptr
}

// At returns the register cell at addr.
func At(addr uintptr) Reg32 { return Reg32{addr: addr} }

//go:nosplit
func (r Reg32) Load() uint32 { return *(*uint32)(unsafe.Pointer(r.addr)) }

//go:nosplit
func (r Reg32) Store(v uint32) { *(*uint32)(unsafe.Pointer(r.addr)) = v }
