package leaf

import (
	"log"
	"slices"
)

// Feature names one bit of a feature leaf.
type Feature struct {
	Leaf    uint32
	Reg     Register
	Bit     uint
	Vendors []Vendor // Vendors defining the bit. Empty for all vendors.
	Name    string
	Text    string
}

var (
	intelOnly = []Vendor{VENDOR_INTEL}
	amdOnly   = []Vendor{VENDOR_AMD}
	psnOnly   = []Vendor{VENDOR_INTEL, VENDOR_TRANSMETA}
)

// Features is the feature bit table, in display order.
var Features = []Feature{
	{0x00000001, REG_EDX, 0, nil, "fpu", "Floating-point unit on-chip"},
	{0x00000001, REG_EDX, 1, nil, "vme", "Virtual 8086 mode enhancements"},
	{0x00000001, REG_EDX, 2, nil, "de", "Debugging extensions"},
	{0x00000001, REG_EDX, 3, nil, "pse", "Page size extension"},
	{0x00000001, REG_EDX, 4, nil, "tsc", "Time stamp counter"},
	{0x00000001, REG_EDX, 5, nil, "msr", "Model-specific registers"},
	{0x00000001, REG_EDX, 6, nil, "pae", "Physical address extension"},
	{0x00000001, REG_EDX, 7, nil, "mce", "Machine check exception"},
	{0x00000001, REG_EDX, 8, nil, "cx8", "CMPXCHG8B instruction"},
	{0x00000001, REG_EDX, 9, nil, "apic", "On-chip APIC"},
	{0x00000001, REG_EDX, 11, nil, "sep", "SYSENTER and SYSEXIT instructions"},
	{0x00000001, REG_EDX, 12, nil, "mtrr", "Memory type range registers"},
	{0x00000001, REG_EDX, 13, nil, "pge", "Page global bit"},
	{0x00000001, REG_EDX, 14, nil, "mca", "Machine check architecture"},
	{0x00000001, REG_EDX, 15, nil, "cmov", "Conditional move instructions"},
	{0x00000001, REG_EDX, 16, nil, "pat", "Page attribute table"},
	{0x00000001, REG_EDX, 17, nil, "pse36", "36-bit page size extension"},
	{0x00000001, REG_EDX, 18, psnOnly, "psn", "Processor serial number"},
	{0x00000001, REG_EDX, 19, nil, "clflush", "CLFLUSH instruction"},
	{0x00000001, REG_EDX, 21, intelOnly, "ds", "Debug store"},
	{0x00000001, REG_EDX, 22, intelOnly, "acpi", "Thermal monitor and software controlled clock"},
	{0x00000001, REG_EDX, 23, nil, "mmx", "MMX technology"},
	{0x00000001, REG_EDX, 24, nil, "fxsr", "FXSAVE and FXRSTOR instructions"},
	{0x00000001, REG_EDX, 25, nil, "sse", "SSE extensions"},
	{0x00000001, REG_EDX, 26, nil, "sse2", "SSE2 extensions"},
	{0x00000001, REG_EDX, 27, intelOnly, "ss", "Self snoop"},
	{0x00000001, REG_EDX, 28, nil, "htt", "Max APIC IDs field is valid"},
	{0x00000001, REG_EDX, 29, intelOnly, "tm", "Thermal monitor"},
	{0x00000001, REG_EDX, 30, intelOnly, "ia64", "IA-64 processor"},
	{0x00000001, REG_EDX, 31, intelOnly, "pbe", "Pending break enable"},

	{0x00000001, REG_ECX, 0, nil, "sse3", "SSE3 extensions"},
	{0x00000001, REG_ECX, 1, nil, "pclmulqdq", "PCLMULQDQ instruction"},
	{0x00000001, REG_ECX, 2, intelOnly, "dtes64", "64-bit DS area"},
	{0x00000001, REG_ECX, 3, nil, "monitor", "MONITOR and MWAIT instructions"},
	{0x00000001, REG_ECX, 4, intelOnly, "ds_cpl", "CPL qualified debug store"},
	{0x00000001, REG_ECX, 5, intelOnly, "vmx", "Virtual machine extensions"},
	{0x00000001, REG_ECX, 6, intelOnly, "smx", "Safer mode extensions"},
	{0x00000001, REG_ECX, 7, intelOnly, "est", "Enhanced Intel SpeedStep technology"},
	{0x00000001, REG_ECX, 8, intelOnly, "tm2", "Thermal monitor 2"},
	{0x00000001, REG_ECX, 9, nil, "ssse3", "Supplemental SSE3 extensions"},
	{0x00000001, REG_ECX, 10, intelOnly, "cnxt_id", "L1 context ID"},
	{0x00000001, REG_ECX, 11, intelOnly, "sdbg", "Silicon debug interface"},
	{0x00000001, REG_ECX, 12, nil, "fma", "Fused multiply-add"},
	{0x00000001, REG_ECX, 13, nil, "cx16", "CMPXCHG16B instruction"},
	{0x00000001, REG_ECX, 14, intelOnly, "xtpr", "xTPR update control"},
	{0x00000001, REG_ECX, 15, intelOnly, "pdcm", "Perfmon and debug capability"},
	{0x00000001, REG_ECX, 17, nil, "pcid", "Process-context identifiers"},
	{0x00000001, REG_ECX, 18, intelOnly, "dca", "Direct cache access"},
	{0x00000001, REG_ECX, 19, nil, "sse4_1", "SSE4.1 extensions"},
	{0x00000001, REG_ECX, 20, nil, "sse4_2", "SSE4.2 extensions"},
	{0x00000001, REG_ECX, 21, nil, "x2apic", "x2APIC"},
	{0x00000001, REG_ECX, 22, nil, "movbe", "MOVBE instruction"},
	{0x00000001, REG_ECX, 23, nil, "popcnt", "POPCNT instruction"},
	{0x00000001, REG_ECX, 24, intelOnly, "tsc_deadline", "TSC deadline timer"},
	{0x00000001, REG_ECX, 25, nil, "aes", "AES instructions"},
	{0x00000001, REG_ECX, 26, nil, "xsave", "XSAVE and XRSTOR instructions"},
	{0x00000001, REG_ECX, 27, nil, "osxsave", "XSAVE enabled by the OS"},
	{0x00000001, REG_ECX, 28, nil, "avx", "AVX instructions"},
	{0x00000001, REG_ECX, 29, nil, "f16c", "16-bit floating-point conversion instructions"},
	{0x00000001, REG_ECX, 30, nil, "rdrand", "RDRAND instruction"},
	{0x00000001, REG_ECX, 31, nil, "hypervisor", "Running under a hypervisor"},

	{0x80000001, REG_EDX, 11, nil, "syscall", "SYSCALL and SYSRET instructions"},
	{0x80000001, REG_EDX, 20, nil, "nx", "No-execute page protection"},
	{0x80000001, REG_EDX, 22, amdOnly, "mmxext", "AMD extensions to MMX"},
	{0x80000001, REG_EDX, 25, amdOnly, "fxsr_opt", "FXSAVE and FXRSTOR optimizations"},
	{0x80000001, REG_EDX, 26, nil, "pdpe1gb", "1GB pages"},
	{0x80000001, REG_EDX, 27, nil, "rdtscp", "RDTSCP instruction"},
	{0x80000001, REG_EDX, 29, nil, "lm", "Long mode"},
	{0x80000001, REG_EDX, 30, amdOnly, "3dnowext", "AMD extensions to 3DNow!"},
	{0x80000001, REG_EDX, 31, amdOnly, "3dnow", "3DNow! instructions"},

	{0x80000001, REG_ECX, 0, nil, "lahf_lm", "LAHF and SAHF in long mode"},
	{0x80000001, REG_ECX, 1, amdOnly, "cmp_legacy", "Core multi-processing legacy mode"},
	{0x80000001, REG_ECX, 2, amdOnly, "svm", "Secure virtual machine"},
	{0x80000001, REG_ECX, 3, amdOnly, "extapic", "Extended APIC space"},
	{0x80000001, REG_ECX, 4, amdOnly, "cr8_legacy", "CR8 in 32-bit mode"},
	{0x80000001, REG_ECX, 5, nil, "abm", "Advanced bit manipulation (LZCNT)"},
	{0x80000001, REG_ECX, 6, amdOnly, "sse4a", "SSE4A extensions"},
	{0x80000001, REG_ECX, 7, amdOnly, "misalignsse", "Misaligned SSE mode"},
	{0x80000001, REG_ECX, 8, nil, "3dnowprefetch", "PREFETCH and PREFETCHW instructions"},
	{0x80000001, REG_ECX, 9, amdOnly, "osvw", "OS visible workaround"},
	{0x80000001, REG_ECX, 10, amdOnly, "ibs", "Instruction based sampling"},
	{0x80000001, REG_ECX, 11, amdOnly, "xop", "Extended operation support"},
	{0x80000001, REG_ECX, 12, amdOnly, "skinit", "SKINIT and STGI instructions"},
	{0x80000001, REG_ECX, 13, amdOnly, "wdt", "Watchdog timer"},
	{0x80000001, REG_ECX, 15, amdOnly, "lwp", "Lightweight profiling"},
	{0x80000001, REG_ECX, 16, amdOnly, "fma4", "4-operand FMA instructions"},
	{0x80000001, REG_ECX, 17, amdOnly, "tce", "Translation cache extension"},
	{0x80000001, REG_ECX, 19, amdOnly, "nodeid_msr", "NodeID MSR"},
	{0x80000001, REG_ECX, 21, amdOnly, "tbm", "Trailing bit manipulation"},
	{0x80000001, REG_ECX, 22, amdOnly, "topoext", "Topology extensions"},
	{0x80000001, REG_ECX, 23, amdOnly, "perfctr_core", "Core performance counter extensions"},
	{0x80000001, REG_ECX, 24, amdOnly, "perfctr_nb", "NB performance counter extensions"},
}

// Applies returns true if the bit is defined for the vendor.
func (ft Feature) Applies(vendor Vendor) bool {
	return len(ft.Vendors) == 0 || slices.Contains(ft.Vendors, vendor)
}

// Set returns true if the feature bit is set in the frame.
func (ft Feature) Set(regs Regs) bool {
	var value uint32
	switch ft.Reg {
	case REG_EAX:
		value = regs.Eax
	case REG_EBX:
		value = regs.Ebx
	case REG_ECX:
		value = regs.Ecx
	case REG_EDX:
		value = regs.Edx
	}

	return (value & (1 << ft.Bit)) != 0
}

// FeaturesOf returns the known features set in a frame, for a vendor.
func FeaturesOf(regs Regs, vendor Vendor) (set []Feature) {
	for _, ft := range Features {
		if ft.Leaf != regs.In.Leaf || !ft.Applies(vendor) {
			continue
		}
		if ft.Set(regs) {
			set = append(set, ft)
		}
	}

	return
}

// printFeatures prints the names of the known feature bits set in a
// feature leaf frame. Bits with no name are skipped.
func printFeatures(regs Regs, st *State) {
	set := FeaturesOf(regs, st.Vendor)

	if st.Verbose {
		logUnnamedFeatures(regs, st.Vendor)
	}

	if len(set) == 0 {
		return
	}

	if regs.In.Leaf >= RANGE_EXT {
		st.printf("Extended feature flags:\n")
	} else {
		st.printf("Feature flags:\n")
	}
	for _, ft := range set {
		st.printf("  %-14s %s\n", ft.Name, ft.Text)
	}
}

// logUnnamedFeatures logs set bits of ECX and EDX that the table does not name.
func logUnnamedFeatures(regs Regs, vendor Vendor) {
	for _, reg := range []Register{REG_ECX, REG_EDX} {
		for bit := range uint(32) {
			ft := Feature{Leaf: regs.In.Leaf, Reg: reg, Bit: bit}
			if !ft.Set(regs) {
				continue
			}
			known := slices.ContainsFunc(Features, func(other Feature) bool {
				return other.Leaf == ft.Leaf && other.Reg == reg && other.Bit == bit && other.Applies(vendor)
			})
			if !known {
				log.Printf("cpuid: leaf 0x%08x %v bit %d set, unnamed", regs.In.Leaf, reg, bit)
			}
		}
	}
}
