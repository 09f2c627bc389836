package leaf

import (
	"log"
)

// Legacy cache and TLB descriptors reported by leaf 0x00000002.
var intelDescriptors = map[uint8]string{
	0x01: "Instruction TLB: 4KB pages, 4-way set associative, 32 entries",
	0x02: "Instruction TLB: 4MB pages, fully associative, 2 entries",
	0x03: "Data TLB: 4KB pages, 4-way set associative, 64 entries",
	0x04: "Data TLB: 4MB pages, 4-way set associative, 8 entries",
	0x05: "Data TLB1: 4MB pages, 4-way set associative, 32 entries",
	0x06: "1st-level instruction cache: 8KB, 4-way set associative, 32 byte line size",
	0x08: "1st-level instruction cache: 16KB, 4-way set associative, 32 byte line size",
	0x09: "1st-level instruction cache: 32KB, 4-way set associative, 64 byte line size",
	0x0a: "1st-level data cache: 8KB, 2-way set associative, 32 byte line size",
	0x0b: "Instruction TLB: 4MB pages, 4-way set associative, 4 entries",
	0x0c: "1st-level data cache: 16KB, 4-way set associative, 32 byte line size",
	0x0d: "1st-level data cache: 16KB, 4-way set associative, 64 byte line size",
	0x0e: "1st-level data cache: 24KB, 6-way set associative, 64 byte line size",
	0x1d: "2nd-level cache: 128KB, 2-way set associative, 64 byte line size",
	0x21: "2nd-level cache: 256KB, 8-way set associative, 64 byte line size",
	0x22: "3rd-level cache: 512KB, 4-way set associative, 64 byte line size, 2 lines per sector",
	0x23: "3rd-level cache: 1MB, 8-way set associative, 64 byte line size, 2 lines per sector",
	0x24: "2nd-level cache: 1MB, 16-way set associative, 64 byte line size",
	0x25: "3rd-level cache: 2MB, 8-way set associative, 64 byte line size, 2 lines per sector",
	0x29: "3rd-level cache: 4MB, 8-way set associative, 64 byte line size, 2 lines per sector",
	0x2c: "1st-level data cache: 32KB, 8-way set associative, 64 byte line size",
	0x30: "1st-level instruction cache: 32KB, 8-way set associative, 64 byte line size",
	0x40: "No 2nd-level cache or, if processor contains a valid 2nd-level cache, no 3rd-level cache",
	0x41: "2nd-level cache: 128KB, 4-way set associative, 32 byte line size",
	0x42: "2nd-level cache: 256KB, 4-way set associative, 32 byte line size",
	0x43: "2nd-level cache: 512KB, 4-way set associative, 32 byte line size",
	0x44: "2nd-level cache: 1MB, 4-way set associative, 32 byte line size",
	0x45: "2nd-level cache: 2MB, 4-way set associative, 32 byte line size",
	0x46: "3rd-level cache: 4MB, 4-way set associative, 64 byte line size",
	0x47: "3rd-level cache: 8MB, 8-way set associative, 64 byte line size",
	0x48: "2nd-level cache: 3MB, 12-way set associative, 64 byte line size",
	0x49: "2nd-level cache: 4MB, 16-way set associative, 64 byte line size",
	0x4a: "3rd-level cache: 6MB, 12-way set associative, 64 byte line size",
	0x4b: "3rd-level cache: 8MB, 16-way set associative, 64 byte line size",
	0x4c: "3rd-level cache: 12MB, 12-way set associative, 64 byte line size",
	0x4d: "3rd-level cache: 16MB, 16-way set associative, 64 byte line size",
	0x4e: "2nd-level cache: 6MB, 24-way set associative, 64 byte line size",
	0x4f: "Instruction TLB: 4KB pages, 32 entries",
	0x50: "Instruction TLB: 4KB and 2MB or 4MB pages, 64 entries",
	0x51: "Instruction TLB: 4KB and 2MB or 4MB pages, 128 entries",
	0x52: "Instruction TLB: 4KB and 2MB or 4MB pages, 256 entries",
	0x55: "Instruction TLB: 2MB or 4MB pages, fully associative, 7 entries",
	0x56: "Data TLB0: 4MB pages, 4-way set associative, 16 entries",
	0x57: "Data TLB0: 4KB pages, 4-way set associative, 16 entries",
	0x59: "Data TLB0: 4KB pages, fully associative, 16 entries",
	0x5a: "Data TLB0: 2MB or 4MB pages, 4-way set associative, 32 entries",
	0x5b: "Data TLB: 4KB and 4MB pages, 64 entries",
	0x5c: "Data TLB: 4KB and 4MB pages, 128 entries",
	0x5d: "Data TLB: 4KB and 4MB pages, 256 entries",
	0x60: "1st-level data cache: 16KB, 8-way set associative, 64 byte line size",
	0x61: "Instruction TLB: 4KB pages, fully associative, 48 entries",
	0x63: "Data TLB: 2MB or 4MB pages, 4-way set associative, 32 entries; 1GB pages, 4-way set associative, 4 entries",
	0x64: "Data TLB: 4KB pages, 4-way set associative, 512 entries",
	0x66: "1st-level data cache: 8KB, 4-way set associative, 64 byte line size",
	0x67: "1st-level data cache: 16KB, 4-way set associative, 64 byte line size",
	0x68: "1st-level data cache: 32KB, 4-way set associative, 64 byte line size",
	0x6a: "uTLB: 4KB pages, 8-way set associative, 64 entries",
	0x6b: "DTLB: 4KB pages, 8-way set associative, 256 entries",
	0x6c: "DTLB: 2MB or 4MB pages, 8-way set associative, 128 entries",
	0x6d: "DTLB: 1GB pages, fully associative, 16 entries",
	0x70: "Trace cache: 12K-uops, 8-way set associative",
	0x71: "Trace cache: 16K-uops, 8-way set associative",
	0x72: "Trace cache: 32K-uops, 8-way set associative",
	0x76: "Instruction TLB: 2MB or 4MB pages, fully associative, 8 entries",
	0x78: "2nd-level cache: 1MB, 4-way set associative, 64 byte line size",
	0x79: "2nd-level cache: 128KB, 8-way set associative, 64 byte line size, 2 lines per sector",
	0x7a: "2nd-level cache: 256KB, 8-way set associative, 64 byte line size, 2 lines per sector",
	0x7b: "2nd-level cache: 512KB, 8-way set associative, 64 byte line size, 2 lines per sector",
	0x7c: "2nd-level cache: 1MB, 8-way set associative, 64 byte line size, 2 lines per sector",
	0x7d: "2nd-level cache: 2MB, 8-way set associative, 64 byte line size",
	0x7f: "2nd-level cache: 512KB, 2-way set associative, 64 byte line size",
	0x80: "2nd-level cache: 512KB, 8-way set associative, 64 byte line size",
	0x82: "2nd-level cache: 256KB, 8-way set associative, 32 byte line size",
	0x83: "2nd-level cache: 512KB, 8-way set associative, 32 byte line size",
	0x84: "2nd-level cache: 1MB, 8-way set associative, 32 byte line size",
	0x85: "2nd-level cache: 2MB, 8-way set associative, 32 byte line size",
	0x86: "2nd-level cache: 512KB, 4-way set associative, 64 byte line size",
	0x87: "2nd-level cache: 1MB, 8-way set associative, 64 byte line size",
	0xa0: "DTLB: 4KB pages, fully associative, 32 entries",
	0xb0: "Instruction TLB: 4KB pages, 4-way set associative, 128 entries",
	0xb1: "Instruction TLB: 2MB pages, 4-way, 8 entries or 4MB pages, 4-way, 4 entries",
	0xb2: "Instruction TLB: 4KB pages, 4-way set associative, 64 entries",
	0xb3: "Data TLB: 4KB pages, 4-way set associative, 128 entries",
	0xb4: "Data TLB1: 4KB pages, 4-way set associative, 256 entries",
	0xb5: "Instruction TLB: 4KB pages, 8-way set associative, 64 entries",
	0xb6: "Instruction TLB: 4KB pages, 8-way set associative, 128 entries",
	0xba: "Data TLB1: 4KB pages, 4-way set associative, 64 entries",
	0xc0: "Data TLB: 4KB and 4MB pages, 4-way set associative, 8 entries",
	0xc1: "Shared 2nd-level TLB: 4KB and 2MB pages, 8-way set associative, 1024 entries",
	0xc2: "DTLB: 4KB and 2MB pages, 4-way set associative, 16 entries",
	0xc3: "Shared 2nd-level TLB: 4KB and 2MB pages, 6-way set associative, 1536 entries; 1GB pages, 4-way set associative, 16 entries",
	0xc4: "DTLB: 2MB or 4MB pages, 4-way set associative, 32 entries",
	0xca: "Shared 2nd-level TLB: 4KB pages, 4-way set associative, 512 entries",
	0xd0: "3rd-level cache: 512KB, 4-way set associative, 64 byte line size",
	0xd1: "3rd-level cache: 1MB, 4-way set associative, 64 byte line size",
	0xd2: "3rd-level cache: 2MB, 4-way set associative, 64 byte line size",
	0xd6: "3rd-level cache: 1MB, 8-way set associative, 64 byte line size",
	0xd7: "3rd-level cache: 2MB, 8-way set associative, 64 byte line size",
	0xd8: "3rd-level cache: 4MB, 8-way set associative, 64 byte line size",
	0xdc: "3rd-level cache: 1.5MB, 12-way set associative, 64 byte line size",
	0xdd: "3rd-level cache: 3MB, 12-way set associative, 64 byte line size",
	0xde: "3rd-level cache: 6MB, 12-way set associative, 64 byte line size",
	0xe2: "3rd-level cache: 2MB, 16-way set associative, 64 byte line size",
	0xe3: "3rd-level cache: 4MB, 16-way set associative, 64 byte line size",
	0xe4: "3rd-level cache: 8MB, 16-way set associative, 64 byte line size",
	0xea: "3rd-level cache: 12MB, 24-way set associative, 64 byte line size",
	0xeb: "3rd-level cache: 18MB, 24-way set associative, 64 byte line size",
	0xec: "3rd-level cache: 24MB, 24-way set associative, 64 byte line size",
	0xf0: "64-byte prefetching",
	0xf1: "128-byte prefetching",
	0xff: "No cache information in leaf 0x00000002, see leaf 0x00000004",
}

// Descriptor 0x49 is an L3 cache on family 0xF model 0x6 (Xeon MP).
const descriptorL3Xeon49 = "3rd-level cache: 4MB, 16-way set associative, 64 byte line size"

// descriptor returns the meaning of a legacy descriptor byte.
func descriptor(desc uint8, sig Signature) (text string, ok bool) {
	if desc == 0x49 && sig.Family == 0xf && sig.Model == 0x6 {
		return descriptorL3Xeon49, true
	}

	text, ok = intelDescriptors[desc]
	return
}

// printIntelCaches prints the descriptors of one leaf 0x00000002 frame.
// A register with bit 31 set holds no descriptors. The low byte of EAX is
// the invocation count, not a descriptor. Unknown descriptors are skipped.
func printIntelCaches(regs Regs, st *State) {
	for n, value := range []uint32{regs.Eax, regs.Ebx, regs.Ecx, regs.Edx} {
		if (value & (1 << 31)) != 0 {
			continue
		}
		for i := range 4 {
			if n == 0 && i == 0 {
				continue
			}
			desc := uint8(value >> (8 * i))
			if desc == 0 {
				continue
			}
			text, ok := descriptor(desc, st.Sig)
			if !ok {
				if st.Verbose {
					log.Printf("cpuid: unknown cache descriptor 0x%02x", desc)
				}
				continue
			}
			st.printf("  %s\n", text)
		}
	}
}
