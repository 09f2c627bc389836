// Package invoke issues the CPU identification instruction.
//
// An Invoker takes the two input registers of a CPUID request (the leaf in
// EAX and the sub-leaf in ECX) and returns the four output registers as a
// Regs frame. Native executes the real instruction, Static replays frames
// from memory or from a raw dump file.
package invoke

import (
	"encoding/binary"
)

// In is the input of a single CPUID invocation.
type In struct {
	Leaf    uint32 // EAX on entry.
	Subleaf uint32 // ECX on entry.
}

// Regs is the register frame of one CPUID invocation.
type Regs struct {
	In  In     // Inputs that produced this frame.
	Eax uint32 // EAX on exit.
	Ebx uint32 // EBX on exit.
	Ecx uint32 // ECX on exit.
	Edx uint32 // EDX on exit.
}

// Invoker is the CPUID invocation primitive.
type Invoker interface {
	// Invoke executes CPUID for the given inputs.
	Invoke(in In) Regs
}

// Func adapts a plain function to the Invoker interface.
type Func func(in In) Regs

var _ Invoker = Func(nil)

// Invoke calls fn(in).
func (fn Func) Invoke(in In) Regs {
	return fn(in)
}

// IsZero returns true if all four output registers are zero.
func (regs Regs) IsZero() bool {
	return regs.Eax == 0 && regs.Ebx == 0 && regs.Ecx == 0 && regs.Edx == 0
}

// Bytes returns the output registers in EAX, EBX, ECX, EDX order as
// little-endian bytes, the way the CPU stores them to memory.
func (regs Regs) Bytes() (data [16]byte) {
	binary.LittleEndian.PutUint32(data[0:], regs.Eax)
	binary.LittleEndian.PutUint32(data[4:], regs.Ebx)
	binary.LittleEndian.PutUint32(data[8:], regs.Ecx)
	binary.LittleEndian.PutUint32(data[12:], regs.Edx)
	return
}
