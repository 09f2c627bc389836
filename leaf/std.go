package leaf

// Standard leaves, 0x0000_0000 to 0x3fff_ffff.

var vendorIDs = map[string]Vendor{
	"GenuineIntel": VENDOR_INTEL,
	"AuthenticAMD": VENDOR_AMD,
	"GenuineTMx86": VENDOR_TRANSMETA,
	"CyrixInstead": VENDOR_CYRIX,
}

// decodeStdBase handles leaf 0x00000000. The vendor string is EBX, EDX, ECX.
func decodeStdBase(regs Regs, st *State) {
	st.CurMax = regs.Eax

	vendor, ok := vendorIDs[identity(regs.Ebx, regs.Edx, regs.Ecx)]
	if !ok {
		vendor = VENDOR_UNKNOWN
	}
	st.Vendor = vendor
}

// decodeFeatures handles leaves 0x00000001 and 0x80000001.
func decodeFeatures(regs Regs, st *State) {
	if st.Last.Leaf == 0x00000001 {
		st.Sig = DecodeSignature(regs.Eax)
		info := DecodeProcessorInfo(regs.Ebx)

		family := st.Sig.EffectiveFamily()
		model := st.Sig.EffectiveModel(st.Vendor)

		st.printf("Signature:  0x%08x\n"+
			"  Family:   0x%02x (%d)\n"+
			"  Model:    0x%02x (%d)\n"+
			"  Stepping: 0x%02x (%d)\n\n",
			st.Sig.Raw,
			family, family,
			model, model,
			st.Sig.Stepping, st.Sig.Stepping)
		st.printf("Local APIC: %d\n"+
			"Logical processor count: %d\n"+
			"CLFLUSH size: %d\n"+
			"Brand ID: %d\n\n",
			info.LocalAPICID,
			info.LogicalCount,
			info.CLFlushSize,
			info.BrandID)
	}

	printFeatures(regs, st)
	st.printf("\n")
}

// decodeStdCache02 handles leaf 0x00000002, the legacy cache descriptors.
// The low byte of EAX is the number of times the leaf must be invoked.
func decodeStdCache02(regs Regs, st *State) {
	count := int(regs.Eax & 0xff)

	st.printf("Cache descriptors:\n")
	printIntelCaches(regs, st)
	for range max(count-1, 0) {
		regs = st.Call(0x00000002, 0)
		printIntelCaches(regs, st)
	}
	st.printf("\n")
}

// decodeStdPSN handles leaf 0x00000003, the processor serial number.
func decodeStdPSN(regs Regs, st *State) {
	sig := st.Call(0x00000001, 0)
	if (sig.Edx & (1 << 18)) == 0 {
		st.printf("Processor serial number: disabled (or not supported)\n\n")
		return
	}

	switch st.Vendor {
	case VENDOR_TRANSMETA:
		regs = st.Call(0x00000003, 0)
		st.printf("Processor serial number: %08X-%08X-%08X-%08X\n\n",
			regs.Eax, regs.Ebx, regs.Ecx, regs.Edx)
	case VENDOR_INTEL:
		regs = st.Call(0x00000003, 0)
		st.printf("Processor serial number: %04X-%04X-%04X-%04X-%04X-%04X\n\n",
			sig.Eax>>16, sig.Eax&0xffff,
			regs.Edx>>16, regs.Edx&0xffff,
			regs.Ecx>>16, regs.Ecx&0xffff)
	}
}

// decodeStdCache04 handles leaf 0x00000004, the deterministic cache
// parameters. Sub-leaves are walked from 0 until an all zero frame, or
// until a frame with a null cache type has been shown.
func decodeStdCache04(regs Regs, st *State) {
	st.printf("Deterministic Cache Parameters:\n")
	if !cache04EaxLayout.Valid() || !cache04EbxLayout.Valid() {
		st.printf("  WARNING: The code appears to have been incorrectly compiled.\n" +
			"           Expect wildly inaccurate output for this section.\n")
	}

	for index := range uint32(SUBLEAF_LIMIT) {
		regs = st.Call(0x00000004, index)

		// Not an official stop condition, but some processors report
		// information past the official end.
		if regs.IsZero() {
			break
		}

		cache := DecodeCacheParams(regs.Eax, regs.Ebx, regs.Ecx)

		size, unit := scaleKB(cache.Size() / 1024)
		st.printf("  %3d%cB L%d %s cache\n",
			size, unit,
			cache.Level,
			cache.Type.Name())

		if cache.FullyAssociative {
			st.printf("        fully associative\n")
		} else {
			st.printf("        %d-way set associative\n", cache.Ways)
		}

		st.printf("        %d byte line size\n"+
			"        %d partitions\n"+
			"        %d sets\n"+
			"        shared by max %d threads\n\n",
			cache.LineSize,
			cache.Partitions,
			cache.Sets,
			cache.MaxThreads)

		// Official stop condition.
		if (regs.Eax & 0xf) == 0 {
			break
		}
	}
}

// decodeStdX2APIC handles leaf 0x0000000B, the processor topology.
func decodeStdX2APIC(regs Regs, st *State) {
	if regs.Eax == 0 {
		return
	}

	st.printf("Processor Topology:\n")
	for index := range uint32(SUBLEAF_LIMIT) {
		regs = st.Call(0x0000000b, index)
		if regs.IsZero() {
			break
		}

		topo := DecodeTopology(regs.Eax, regs.Ebx, regs.Ecx, regs.Edx)
		st.printf("  Bits to shift: %d\n"+
			"  Logical at this level: %d\n"+
			"  Level number: %d\n"+
			"  Level type: %d (%s)\n"+
			"  x2APIC ID: %d\n\n",
			topo.Shift,
			topo.Logical,
			topo.Level,
			topo.RawType, topo.Type(),
			topo.X2APICID)

		if topo.Shift == 0 && topo.Logical == 0 {
			break
		}
	}
}

// scaleKB picks KB or MB for a size in kilobytes.
func scaleKB(kb uint64) (size uint64, unit byte) {
	if kb > 1024 {
		return kb / 1024, 'M'
	}
	return kb, 'K'
}
