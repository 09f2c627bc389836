package leaf

import (
	"encoding/binary"
	"fmt"
)

// Extended leaves, 0x8000_0000 and above.

// decodeExtBase handles leaf 0x80000000.
func decodeExtBase(regs Regs, st *State) {
	st.CurMax = regs.Eax
}

// decodeExtProcName handles leaves 0x80000002 through 0x80000004. Each
// contributes 16 bytes of the processor name; the last one prints it.
func decodeExtProcName(regs Regs, st *State) {
	base := (st.Last.Leaf - 0x80000002) * 16
	if base > PROCNAME_SIZE-16 {
		return
	}

	if base == 0 {
		clear(st.ProcName[:])
	}

	binary.LittleEndian.PutUint32(st.ProcName[base:], regs.Eax)
	binary.LittleEndian.PutUint32(st.ProcName[base+4:], regs.Ebx)
	binary.LittleEndian.PutUint32(st.ProcName[base+8:], regs.Ecx)
	binary.LittleEndian.PutUint32(st.ProcName[base+12:], regs.Edx)

	if base == 32 {
		st.ProcName[PROCNAME_SIZE-1] = 0
		st.printf("Processor Name: %s\n\n", st.Name())
	}
}

// amdAssociativity renders the byte wide associativity of leaf 0x80000005.
func amdAssociativity(assoc uint32) string {
	switch assoc {
	case 0x00:
		return "Reserved"
	case 0x01:
		return "direct mapped"
	case 0xff:
		return "fully associative"
	default:
		return fmt.Sprintf("%d-way associative", assoc)
	}
}

// decodeExtAMDL1 handles leaf 0x80000005, the AMD L1 TLBs and caches.
// Entries that report no size are not shown.
func decodeExtAMDL1(regs Regs, st *State) {
	st.printf("L1 TLBs:\n")

	tlb := amdL1TLB.Decode(regs.Eax)
	if tlb.DEntries != 0 {
		st.printf("  Data TLB (2MB and 4MB pages): %d entries, %s\n",
			tlb.DEntries, amdAssociativity(tlb.DAssoc))
	}
	if tlb.IEntries != 0 {
		st.printf("  Instruction TLB (2MB and 4MB pages): %d entries, %s\n",
			tlb.IEntries, amdAssociativity(tlb.IAssoc))
	}

	tlb = amdL1TLB.Decode(regs.Ebx)
	if tlb.DEntries != 0 {
		st.printf("  Data TLB (4KB pages): %d entries, %s\n",
			tlb.DEntries, amdAssociativity(tlb.DAssoc))
	}
	if tlb.IEntries != 0 {
		st.printf("  Instruction TLB (4KB pages): %d entries, %s\n",
			tlb.IEntries, amdAssociativity(tlb.IAssoc))
	}

	st.printf("\n")

	data := amdL1Cache.Decode(regs.Ecx)
	code := amdL1Cache.Decode(regs.Edx)
	if data.Size != 0 || code.Size != 0 {
		st.printf("L1 caches:\n")
	}
	if data.Size != 0 {
		st.printf("  Data: %dKB, %s, %d lines per tag, %d byte line size\n",
			data.Size,
			amdAssociativity(data.Assoc),
			data.LinesPerTag,
			data.LineSize)
	}
	if code.Size != 0 {
		st.printf("  Instruction: %dKB, %s, %d lines per tag, %d byte line size\n",
			code.Size,
			amdAssociativity(code.Assoc),
			code.LinesPerTag,
			code.LineSize)
	}

	st.printf("\n")
}

// Associativity encodings of leaf 0x80000006. Empty slots are reserved.
var intelL2Assoc = [16]string{
	0x00: "Disabled",
	0x01: "Direct mapped",
	0x02: "2-way",
	0x04: "4-way",
	0x06: "8-way",
	0x08: "16-way",
	0x0f: "Fully associative",
}

var amdL2Assoc = [16]string{
	0x00: "Disabled",
	0x01: "Direct mapped",
	0x02: "2-way",
	0x04: "4-way",
	0x06: "8-way",
	0x08: "16-way",
	0x0a: "32-way",
	0x0b: "48-way",
	0x0c: "64-way",
	0x0d: "96-way",
	0x0e: "128-way",
	0x0f: "Fully associative",
}

// l2Associativity looks up an associativity index, returning unknown for
// reserved or out of range encodings.
func l2Associativity(table *[16]string, assoc uint32, unknown string) string {
	if assoc >= uint32(len(table)) || table[assoc] == "" {
		return unknown
	}
	return table[assoc]
}

// decodeExtL2 handles leaf 0x80000006, the L2 (and on AMD, L3) cache and TLBs.
func decodeExtL2(regs Regs, st *State) {
	switch st.Vendor {
	case VENDOR_INTEL:
		decodeExtL2Intel(regs, st)
	case VENDOR_AMD:
		decodeExtL2AMD(regs, st)
	}
}

func decodeExtL2Intel(regs Regs, st *State) {
	cache := intelL2Cache.Decode(regs.Ecx)
	size, unit := scaleKB(uint64(cache.Size))

	st.printf("L2 cache:\n"+
		"  %d%cB, %s associativity, %d byte line size\n\n",
		size, unit,
		l2Associativity(&intelL2Assoc, cache.Assoc, "Unknown"),
		cache.LineSize)
}

func decodeExtL2AMD(regs Regs, st *State) {
	const unknown = "unknown associativity"

	st.printf("L2 TLBs:\n")

	tlb := amdL2TLB.Decode(regs.Eax)
	if tlb.DEntries != 0 {
		st.printf("  Data TLB (2MB and 4MB pages): %d entries, %s\n",
			tlb.DEntries, l2Associativity(&amdL2Assoc, tlb.DAssoc, unknown))
	}
	if tlb.IEntries != 0 {
		st.printf("  Instruction TLB (2MB and 4MB pages): %d entries, %s\n",
			tlb.IEntries, l2Associativity(&amdL2Assoc, tlb.IAssoc, unknown))
	}

	tlb = amdL2TLB.Decode(regs.Ebx)
	if tlb.DEntries != 0 {
		st.printf("  Data TLB (4KB pages): %d entries, %s\n",
			tlb.DEntries, l2Associativity(&amdL2Assoc, tlb.DAssoc, unknown))
	}
	if tlb.IEntries != 0 {
		st.printf("  Instruction TLB (4KB pages): %d entries, %s\n",
			tlb.IEntries, l2Associativity(&amdL2Assoc, tlb.IAssoc, unknown))
	}

	st.printf("\n")

	for _, level := range []struct {
		name  string
		cache Cache
	}{
		{"L2", amdL2Cache.Decode(regs.Ecx)},
		{"L3", amdL3Cache.Decode(regs.Edx)},
	} {
		cache := level.cache
		if cache.Size == 0 {
			continue
		}
		size, unit := scaleKB(uint64(cache.Size))
		st.printf("%s cache: %d%cB, %s, %d lines per tag, %d byte line size\n",
			level.name,
			size, unit,
			l2Associativity(&amdL2Assoc, cache.Assoc, unknown),
			cache.LinesPerTag,
			cache.LineSize)
	}

	st.printf("\n")
}
