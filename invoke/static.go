package invoke

import (
	"maps"
	"slices"
)

// Static is a replayable CPUID function.
//
// Inputs absent from the map read back as an all-zero frame.
type Static map[In]Regs

var _ Invoker = Static(nil)

// Set stores the outputs for an input.
func (s Static) Set(in In, eax, ebx, ecx, edx uint32) {
	s[in] = Regs{In: in, Eax: eax, Ebx: ebx, Ecx: ecx, Edx: edx}
}

// Invoke implements Invoker.Invoke.
func (s Static) Invoke(in In) (regs Regs) {
	regs = s[in]
	regs.In = in
	return
}

// Inputs returns the stored inputs, ordered by leaf then sub-leaf.
func (s Static) Inputs() []In {
	return slices.SortedFunc(maps.Keys(s), func(a, b In) int {
		switch {
		case a.Leaf < b.Leaf:
			return -1
		case a.Leaf > b.Leaf:
			return 1
		case a.Subleaf < b.Subleaf:
			return -1
		case a.Subleaf > b.Subleaf:
			return 1
		}
		return 0
	})
}

// Recorder wraps an Invoker and records every input it is asked for.
// If Frames is not nil, every frame returned is also stored there, so a
// run can be saved with Marshal and replayed later.
type Recorder struct {
	Invoker Invoker // Invoker that produces the frames.
	Calls   []In    // Inputs seen, in call order.
	Frames  Static  // Frames seen, by input. Optional.
}

var _ Invoker = (*Recorder)(nil)

// Invoke implements Invoker.Invoke.
func (rec *Recorder) Invoke(in In) (regs Regs) {
	rec.Calls = append(rec.Calls, in)
	regs = rec.Invoker.Invoke(in)
	if rec.Frames != nil {
		regs.In = in
		rec.Frames[in] = regs
	}
	return
}

// Reset forgets the recorded calls.
func (rec *Recorder) Reset() {
	rec.Calls = rec.Calls[:0]
}

// Leaves returns the distinct leaves recorded, in order of first call.
func (rec *Recorder) Leaves() (leaves []uint32) {
	for _, in := range rec.Calls {
		if !slices.Contains(leaves, in.Leaf) {
			leaves = append(leaves, in.Leaf)
		}
	}
	return
}
