package leaf

// Hypervisor leaves, 0x4000_0000 to 0x4fff_ffff.

var hypervisorIDs = map[string]Hypervisor{
	"XenVMMXenVMM": HYPERVISOR_XEN,
	"VMwareVMware": HYPERVISOR_VMWARE,
	"KVMKVMKVM":    HYPERVISOR_KVM,
}

// decodeVmmBase handles leaf 0x40000000. The signature is EBX, ECX, EDX.
func decodeVmmBase(regs Regs, st *State) {
	st.CurMax = regs.Eax

	hv, ok := hypervisorIDs[identity(regs.Ebx, regs.Ecx, regs.Edx)]
	if !ok {
		st.Hypervisor = HYPERVISOR_UNKNOWN
		return
	}

	st.Hypervisor = hv
	st.printf("%v hypervisor detected\n\n", hv)
}

// decodeXenVersion handles Xen leaf 0x40000001.
func decodeXenVersion(regs Regs, st *State) {
	st.printf("Xen version: %d.%d\n\n", regs.Eax>>16, regs.Eax&0xffff)
}

// decodeXenLeaf02 handles Xen leaf 0x40000002.
func decodeXenLeaf02(regs Regs, st *State) {
	st.printf("Xen features:\n"+
		"  Hypercall transfer pages: %d\n"+
		"  MSR base address: 0x%08x\n\n",
		regs.Eax,
		regs.Ebx)
}

// decodeXenLeaf03 handles Xen leaf 0x40000003. EAX is in kHz.
func decodeXenLeaf03(regs Regs, st *State) {
	st.printf("Host CPU clock frequency: %dMHz\n\n", regs.Eax/1000)
}

// decodeVMwareLeaf10 handles VMware leaf 0x40000010. EAX and EBX are in kHz.
func decodeVMwareLeaf10(regs Regs, st *State) {
	st.printf("TSC frequency: %4.2fMHz\n"+
		"Bus (local APIC timer) frequency: %4.2fMHz\n\n",
		float32(regs.Eax)/1000.0,
		float32(regs.Ebx)/1000.0)
}
