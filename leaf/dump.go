package leaf

import (
	"github.com/ezrec/cpuid/invoke"
)

// DumpTable is the registry of raw register dumpers. Leaves without an
// entry are printed as a single frame.
var DumpTable = NewTable(dumpRaw,
	Handler{Leaf: 0x00000000, Decode: dumpBase},
	Handler{Leaf: 0x00000004, Decode: dumpStd04},
	Handler{Leaf: 0x0000000b, Decode: dumpStd0B},
	Handler{Leaf: 0x40000000, Decode: dumpBase},
	Handler{Leaf: 0x80000000, Decode: dumpBase},
)

// dumpRaw prints a frame as a raw line.
func dumpRaw(regs Regs, st *State) {
	st.printf("%s\n", invoke.Format(regs))
}

// dumpBase handles the base leaf of every range.
func dumpBase(regs Regs, st *State) {
	st.CurMax = regs.Eax
	dumpRaw(regs, st)
}

// dumpStd04 prints every deterministic cache parameter sub-leaf.
func dumpStd04(regs Regs, st *State) {
	for index := range uint32(SUBLEAF_LIMIT) {
		regs = st.Call(0x00000004, index)
		dumpRaw(regs, st)
		if (regs.Eax & 0xf) == 0 {
			break
		}
	}
}

// dumpStd0B prints every topology sub-leaf.
func dumpStd0B(regs Regs, st *State) {
	for index := range uint32(SUBLEAF_LIMIT) {
		regs = st.Call(0x0000000b, index)
		dumpRaw(regs, st)
		if regs.Eax == 0 && regs.Ebx == 0 {
			break
		}
	}
}

// DumpLeaf prints the raw frame of a single leaf and sub-leaf.
func (st *State) DumpLeaf(leaf uint32, subleaf uint32) {
	dumpRaw(st.Call(leaf, subleaf), st)
}
