package leaf

import (
	"io"
	"testing"

	"github.com/ezrec/cpuid/invoke"
)

// FuzzDecodeTable runs every decoder against arbitrary frames, for every
// vendor and hypervisor. Decoders must never panic or loop without bound.
func FuzzDecodeTable(f *testing.F) {
	f.Add(uint32(0x0c004121), uint32(0x01c0003f), uint32(0x3f), uint32(0))
	f.Add(uint32(0xff40ff40), uint32(0xff40ff40), uint32(0x20080140), uint32(0x40040140))
	f.Add(uint32(0x68006400), uint32(0x78006200), uint32(0x02006140), uint32(0x8000a140))
	f.Add(uint32(0xffffffff), uint32(0xffffffff), uint32(0xffffffff), uint32(0xffffffff))
	f.Add(uint32(0), uint32(0), uint32(0), uint32(0))

	f.Fuzz(func(t *testing.T, eax, ebx, ecx, edx uint32) {
		always := invoke.Func(func(in invoke.In) invoke.Regs {
			return invoke.Regs{In: in, Eax: eax, Ebx: ebx, Ecx: ecx, Edx: edx}
		})

		for _, group := range DecodeTable.Groups {
			for _, vendor := range []Vendor{VENDOR_UNKNOWN, VENDOR_INTEL, VENDOR_AMD, VENDOR_TRANSMETA, VENDOR_CYRIX} {
				for _, hv := range []Hypervisor{HYPERVISOR_NONE, HYPERVISOR_XEN, HYPERVISOR_VMWARE, HYPERVISOR_KVM} {
					st := NewState(always, io.Discard)
					st.Vendor = vendor
					st.Hypervisor = hv
					DecodeTable.Dispatch(st.Call(group.Leaf, 0), st)
					DumpTable.Dispatch(st.Call(group.Leaf, 0), st)
				}
			}
		}
	})
}
