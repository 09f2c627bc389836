package leaf

// DecodeTable is the registry of decoders that print human readable text.
var DecodeTable = NewTable(nil,
	// Standard leaves
	Handler{Leaf: 0x00000000, Decode: decodeStdBase},
	Handler{Leaf: 0x00000001, Decode: decodeFeatures},
	Handler{Leaf: 0x00000002, Decode: decodeStdCache02, Applies: vendorIn(VENDOR_INTEL, VENDOR_CYRIX)},
	Handler{Leaf: 0x00000003, Decode: decodeStdPSN, Applies: vendorIn(VENDOR_INTEL, VENDOR_TRANSMETA)},
	Handler{Leaf: 0x00000004, Decode: decodeStdCache04, Applies: vendorIn(VENDOR_INTEL)},
	Handler{Leaf: 0x0000000b, Decode: decodeStdX2APIC, Applies: vendorIn(VENDOR_INTEL)},

	// Hypervisor leaves
	Handler{Leaf: 0x40000000, Decode: decodeVmmBase},
	Handler{Leaf: 0x40000001, Decode: decodeXenVersion, Applies: hypervisorIs(HYPERVISOR_XEN)},
	Handler{Leaf: 0x40000002, Decode: decodeXenLeaf02, Applies: hypervisorIs(HYPERVISOR_XEN)},
	Handler{Leaf: 0x40000003, Decode: decodeXenLeaf03, Applies: hypervisorIs(HYPERVISOR_XEN)},
	Handler{Leaf: 0x40000010, Decode: decodeVMwareLeaf10, Applies: hypervisorIs(HYPERVISOR_VMWARE)},

	// Extended leaves
	Handler{Leaf: 0x80000000, Decode: decodeExtBase},
	Handler{Leaf: 0x80000001, Decode: decodeFeatures},
	Handler{Leaf: 0x80000002, Decode: decodeExtProcName},
	Handler{Leaf: 0x80000003, Decode: decodeExtProcName},
	Handler{Leaf: 0x80000004, Decode: decodeExtProcName},
	Handler{Leaf: 0x80000005, Decode: decodeExtAMDL1, Applies: vendorIn(VENDOR_AMD)},
	Handler{Leaf: 0x80000006, Decode: decodeExtL2, Applies: vendorIn(VENDOR_INTEL, VENDOR_AMD)},
)
