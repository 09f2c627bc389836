// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package leaf

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ezrec/cpuid/invoke"
)

// Regs is a CPUID register frame.
type Regs = invoke.Regs

// PROCNAME_SIZE is the size of the processor name accumulator.
const PROCNAME_SIZE = 48

// State is the session state of a single decoding run.
//
// Vendor, Hypervisor and Sig are written once by their decoders and read
// by the decoders of later leaves. CurMax is overwritten each time a leaf
// range is entered.
type State struct {
	Verbose bool // Set to enable verbose logging.

	Out     io.Writer      // Decoded text output.
	Invoker invoke.Invoker // CPUID invocation primitive.

	Vendor     Vendor     // Processor vendor.
	Hypervisor Hypervisor // Hypervisor, if any.
	CurMax     uint32     // Highest leaf of the current range.
	Sig        Signature  // Processor signature.
	Last       invoke.In  // Inputs of the most recent invocation.

	ProcName [PROCNAME_SIZE]byte // Processor name accumulator.
}

// NewState creates a session that invokes inv and writes to out.
func NewState(inv invoke.Invoker, out io.Writer) (st *State) {
	st = &State{
		Out:     out,
		Invoker: inv,
	}

	st.Reset()

	return
}

// Reset clears all discovered facts, ready for a new run.
func (st *State) Reset() {
	st.Vendor = VENDOR_UNKNOWN
	st.Hypervisor = HYPERVISOR_NONE
	st.CurMax = 0
	st.Sig = Signature{}
	st.Last = invoke.In{}
	clear(st.ProcName[:])
}

// Call invokes CPUID for a leaf and sub-leaf with an otherwise zeroed frame.
func (st *State) Call(leaf uint32, subleaf uint32) (regs Regs) {
	in := invoke.In{Leaf: leaf, Subleaf: subleaf}
	regs = st.Invoker.Invoke(in)
	regs.In = in
	st.Last = in

	if st.Verbose {
		log.Printf("cpuid: %s", invoke.Format(regs))
	}

	return
}

// printf writes decoded text to the output.
func (st *State) printf(format string, args ...any) {
	fmt.Fprintf(st.Out, format, args...)
}

// Name returns the processor name accumulated so far, up to the first
// NUL, with surrounding whitespace trimmed and inner runs of spaces
// squeezed to one.
func (st *State) Name() string {
	name := st.ProcName[:PROCNAME_SIZE-1]
	if n := bytes.IndexByte(name, 0); n >= 0 {
		name = name[:n]
	}

	return squeeze(string(name))
}

// squeeze trims a string and collapses runs of whitespace to a single space.
func squeeze(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// identity assembles the 12 byte identity string of a base leaf from
// three registers, stopping at the first NUL.
func identity(a, b, c uint32) string {
	var buf [12]byte
	for n, value := range []uint32{a, b, c} {
		for i := range 4 {
			buf[n*4+i] = byte(value >> (8 * i))
		}
	}

	id := buf[:]
	if n := bytes.IndexByte(id, 0); n >= 0 {
		id = id[:n]
	}

	return string(id)
}
