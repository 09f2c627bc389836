package leaf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cpuid/invoke"
)

// idRegs packs a 12 byte identity string into three registers.
func idRegs(id string) (regs [3]uint32) {
	var buf [12]byte
	copy(buf[:], id)
	for n := range regs {
		regs[n] = binary.LittleEndian.Uint32(buf[n*4:])
	}
	return
}

// setStdBase stores a standard base leaf frame.
func setStdBase(s invoke.Static, curmax uint32, vendor string) {
	id := idRegs(vendor)
	s.Set(invoke.In{Leaf: RANGE_STD}, curmax, id[0], id[2], id[1])
}

// setVmmBase stores a hypervisor base leaf frame.
func setVmmBase(s invoke.Static, curmax uint32, hypervisor string) {
	id := idRegs(hypervisor)
	s.Set(invoke.In{Leaf: RANGE_HYPERVISOR}, curmax, id[0], id[1], id[2])
}

// newTestState creates a state recording the invocations made of s.
func newTestState(s invoke.Static) (st *State, out *bytes.Buffer, rec *invoke.Recorder) {
	out = &bytes.Buffer{}
	rec = &invoke.Recorder{Invoker: s}
	st = NewState(rec, out)
	return
}

func TestNewTable(t *testing.T) {
	assert := assert.New(t)

	var order []string
	mark := func(name string) Decoder {
		return func(regs Regs, st *State) {
			order = append(order, name)
		}
	}

	tbl := NewTable(nil,
		Handler{Leaf: 3, Decode: mark("3a")},
		Handler{Leaf: 1, Decode: mark("1")},
		Handler{Leaf: 3, Decode: mark("3b")},
		Handler{Leaf: 0, Decode: mark("0")},
		Handler{Leaf: 3, Decode: mark("3c")},
	)

	assert.Equal(3, len(tbl.Groups))
	assert.Equal(uint32(0), tbl.Groups[0].Leaf)
	assert.Equal(uint32(1), tbl.Groups[1].Leaf)
	assert.Equal(uint32(3), tbl.Groups[2].Leaf)
	assert.Equal(3, len(tbl.Lookup(3)))
	assert.Nil(tbl.Lookup(2))
	assert.Nil(tbl.Lookup(4))

	st := NewState(invoke.Static{}, &bytes.Buffer{})
	ran := tbl.Dispatch(Regs{In: invoke.In{Leaf: 3}}, st)
	assert.Equal(3, ran)
	assert.Equal([]string{"3a", "3b", "3c"}, order)
}

func TestTable_Dispatch_Applies(t *testing.T) {
	assert := assert.New(t)

	var order []string
	tbl := NewTable(nil,
		Handler{Leaf: 0x40000003, Applies: hypervisorIs(HYPERVISOR_XEN), Decode: func(regs Regs, st *State) {
			order = append(order, "xen")
		}},
		Handler{Leaf: 0x40000003, Applies: hypervisorIs(HYPERVISOR_VMWARE), Decode: func(regs Regs, st *State) {
			order = append(order, "vmware")
		}},
		Handler{Leaf: 0x40000003, Decode: func(regs Regs, st *State) {
			order = append(order, "any")
		}},
	)

	st := NewState(invoke.Static{}, &bytes.Buffer{})
	st.Hypervisor = HYPERVISOR_VMWARE

	ran := tbl.Dispatch(Regs{In: invoke.In{Leaf: 0x40000003}}, st)
	assert.Equal(2, ran)
	assert.Equal([]string{"vmware", "any"}, order)
}

func TestTable_Dispatch_Fallback(t *testing.T) {
	assert := assert.New(t)

	var seen []uint32
	tbl := NewTable(func(regs Regs, st *State) {
		seen = append(seen, regs.In.Leaf)
	}, Handler{Leaf: 1, Decode: func(regs Regs, st *State) {}})

	st := NewState(invoke.Static{}, &bytes.Buffer{})
	assert.Equal(1, tbl.Dispatch(Regs{In: invoke.In{Leaf: 1}}, st))
	assert.Equal(1, tbl.Dispatch(Regs{In: invoke.In{Leaf: 7}}, st))
	assert.Equal([]uint32{7}, seen)
	assert.Equal(invoke.In{Leaf: 7}, st.Last)

	tbl = NewTable(nil)
	assert.Equal(0, tbl.Dispatch(Regs{In: invoke.In{Leaf: 7}}, st))
}

func TestWalk_Order(t *testing.T) {
	assert := assert.New(t)

	var order []uint32
	record := func(regs Regs, st *State) {
		order = append(order, regs.In.Leaf)
	}

	tbl := NewTable(nil,
		Handler{Leaf: 4, Decode: record},
		Handler{Leaf: 2, Decode: record},
		Handler{Leaf: 0, Decode: func(regs Regs, st *State) {
			st.CurMax = regs.Eax
			record(regs, st)
		}},
		Handler{Leaf: 9, Decode: record},
	)

	s := invoke.Static{}
	s.Set(invoke.In{Leaf: 0}, 7, 0, 0, 0)

	st, _, rec := newTestState(s)
	st.Walk(tbl, RANGE_STD)

	// Leaves without an entry are never invoked, nor is anything past curmax.
	assert.Equal([]uint32{0, 2, 4}, order)
	assert.Equal([]uint32{0, 2, 4}, rec.Leaves())
	assert.Equal(uint32(7), st.CurMax)
}

func TestWalk_RangeLimit(t *testing.T) {
	assert := assert.New(t)

	s := invoke.Static{}
	// Bare metal returns unrelated data for the hypervisor base leaf.
	s.Set(invoke.In{Leaf: RANGE_HYPERVISOR}, 0x0000000d, 0x756e6547, 0x6c65746e, 0x49656e69)

	st, out, rec := newTestState(s)
	st.Walk(DecodeTable, RANGE_HYPERVISOR)

	assert.Equal(HYPERVISOR_UNKNOWN, st.Hypervisor)
	assert.Equal([]uint32{RANGE_HYPERVISOR}, rec.Leaves())
	assert.Equal("", out.String())

	s.Set(invoke.In{Leaf: RANGE_EXT}, 0xffffffff, 0, 0, 0)
	rec.Reset()
	st.Walk(DecodeTable, RANGE_EXT)
	assert.Equal([]uint32{RANGE_EXT}, rec.Leaves())
}

func TestRun_IntelStandard(t *testing.T) {
	assert := assert.New(t)

	s := invoke.Static{}
	setStdBase(s, 4, "GenuineIntel")
	s.Set(invoke.In{Leaf: 1}, 0x000906ea, 0x00100800, 0, 0)
	s.Set(invoke.In{Leaf: 2}, 0x00000001, 0, 0, 0)
	s.Set(invoke.In{Leaf: 5}, 0x40, 0x40, 3, 0x00142120)
	s.Set(invoke.In{Leaf: 0xb}, 1, 2, 0x100, 0)

	st, _, rec := newTestState(s)
	st.Walk(DecodeTable, RANGE_STD)

	assert.Equal(VENDOR_INTEL, st.Vendor)
	assert.Equal(uint32(4), st.CurMax)
	assert.Equal([]uint32{0, 1, 2, 3, 4}, rec.Leaves())
	for _, in := range rec.Calls {
		assert.LessOrEqual(in.Leaf, uint32(4))
	}
}

func TestState_Reset(t *testing.T) {
	assert := assert.New(t)

	st := NewState(invoke.Static{}, &bytes.Buffer{})
	assert.Equal(HYPERVISOR_NONE, st.Hypervisor)

	st.Vendor = VENDOR_AMD
	st.Hypervisor = HYPERVISOR_KVM
	st.CurMax = 0x80000008
	st.Sig = DecodeSignature(0x00800f11)
	st.Last = invoke.In{Leaf: 4, Subleaf: 2}
	copy(st.ProcName[:], "residue")

	st.Reset()
	assert.Equal(VENDOR_UNKNOWN, st.Vendor)
	assert.Equal(HYPERVISOR_NONE, st.Hypervisor)
	assert.Equal(uint32(0), st.CurMax)
	assert.Equal(Signature{}, st.Sig)
	assert.Equal(invoke.In{}, st.Last)
	assert.Equal([PROCNAME_SIZE]byte{}, st.ProcName)
}

func TestState_Call(t *testing.T) {
	assert := assert.New(t)

	s := invoke.Static{}
	s.Set(invoke.In{Leaf: 4, Subleaf: 1}, 1, 2, 3, 4)

	st := NewState(s, &bytes.Buffer{})
	regs := st.Call(4, 1)
	assert.Equal(uint32(1), regs.Eax)
	assert.Equal(invoke.In{Leaf: 4, Subleaf: 1}, regs.In)
	assert.Equal(invoke.In{Leaf: 4, Subleaf: 1}, st.Last)
}

func TestIdentity(t *testing.T) {
	assert := assert.New(t)

	id := idRegs("GenuineIntel")
	assert.Equal("GenuineIntel", identity(id[0], id[1], id[2]))

	id = idRegs("KVMKVMKVM")
	assert.Equal("KVMKVMKVM", identity(id[0], id[1], id[2]))

	assert.Equal("", identity(0, 0, 0))
}

func TestSqueeze(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Intel(R) Xeon(R) CPU E5-2680 0 @ 2.70GHz", squeeze("       Intel(R) Xeon(R) CPU E5-2680 0 @ 2.70GHz"))
	assert.Equal("AMD Ryzen 7 3700X 8-Core Processor", squeeze("AMD Ryzen 7 3700X 8-Core Processor             "))
	assert.Equal("a b", squeeze("a \t  b"))
	assert.Equal("", squeeze("   "))
}
