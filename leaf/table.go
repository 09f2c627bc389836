// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package leaf

import (
	"log"
	"slices"
)

// Decoder decodes a frame of its leaf, using and updating the session state.
type Decoder func(regs Regs, st *State)

// Handler registers a decoder for a leaf.
type Handler struct {
	Leaf    uint32
	Applies func(st *State) bool // Applicability predicate. Nil always applies.
	Decode  Decoder
}

// Group is every handler registered for one leaf, in registration order.
type Group struct {
	Leaf     uint32
	Handlers []Handler
}

// Table is a leaf registry.
type Table struct {
	Groups   []Group // Ordered by ascending leaf.
	Fallback Decoder // Decoder for leaves without a group. May be nil.
}

// NewTable builds a table from handlers. Handlers are grouped by leaf;
// within a group registration order is kept.
func NewTable(fallback Decoder, handlers ...Handler) (tbl *Table) {
	sorted := slices.Clone(handlers)
	slices.SortStableFunc(sorted, func(a, b Handler) int {
		switch {
		case a.Leaf < b.Leaf:
			return -1
		case a.Leaf > b.Leaf:
			return 1
		}
		return 0
	})

	tbl = &Table{Fallback: fallback}
	for _, handler := range sorted {
		n := len(tbl.Groups)
		if n == 0 || tbl.Groups[n-1].Leaf != handler.Leaf {
			tbl.Groups = append(tbl.Groups, Group{Leaf: handler.Leaf})
			n++
		}
		tbl.Groups[n-1].Handlers = append(tbl.Groups[n-1].Handlers, handler)
	}

	return
}

// Lookup returns the handlers for a leaf, or nil if none are registered.
func (tbl *Table) Lookup(leaf uint32) []Handler {
	n, found := slices.BinarySearchFunc(tbl.Groups, leaf, func(group Group, leaf uint32) int {
		switch {
		case group.Leaf < leaf:
			return -1
		case group.Leaf > leaf:
			return 1
		}
		return 0
	})
	if !found {
		return nil
	}

	return tbl.Groups[n].Handlers
}

// Dispatch hands a frame to every applicable handler of its leaf, in
// registration order, and returns the number of decoders run. A leaf with
// no handlers goes to the fallback decoder, if there is one.
func (tbl *Table) Dispatch(regs Regs, st *State) (ran int) {
	handlers := tbl.Lookup(regs.In.Leaf)
	if handlers == nil {
		if tbl.Fallback != nil {
			st.Last = regs.In
			tbl.Fallback(regs, st)
			ran++
		}
		return
	}

	for _, handler := range handlers {
		if handler.Applies != nil && !handler.Applies(st) {
			continue
		}
		st.Last = regs.In
		handler.Decode(regs, st)
		ran++
	}

	return
}

// Run resets the session and walks every leaf range.
func (st *State) Run(tbl *Table) {
	st.Reset()

	for _, base := range Ranges {
		st.Walk(tbl, base)
	}
}

// Walk traverses one leaf range. The base leaf is always invoked, and its
// decoders set CurMax. Every leaf from base+1 through CurMax that the
// table knows of is then invoked and dispatched, in ascending order.
func (st *State) Walk(tbl *Table, base uint32) {
	st.CurMax = base
	tbl.Dispatch(st.Call(base, 0), st)

	last := st.CurMax
	if last < base || last-base > RANGE_LIMIT {
		if st.Verbose {
			log.Printf("cpuid: range 0x%08x: maximum leaf 0x%08x out of range", base, last)
		}
		return
	}

	if st.Verbose {
		log.Printf("cpuid: range 0x%08x: leaves through 0x%08x", base, last)
	}

	for leaf := base + 1; leaf <= last; leaf++ {
		if tbl.Fallback == nil && tbl.Lookup(leaf) == nil {
			continue
		}
		tbl.Dispatch(st.Call(leaf, 0), st)
	}
}

// vendorIn is an applicability predicate on the detected vendor.
func vendorIn(vendors ...Vendor) func(st *State) bool {
	return func(st *State) bool {
		return slices.Contains(vendors, st.Vendor)
	}
}

// hypervisorIs is an applicability predicate on the detected hypervisor.
func hypervisorIs(hv Hypervisor) func(st *State) bool {
	return func(st *State) bool {
		return st.Hypervisor == hv
	}
}
