package leaf

// Field is a named bit range within a 32-bit register.
type Field struct {
	Name  string
	Lo    uint // Lowest bit of the field.
	Width uint // Width in bits. Zero width fields are absent from a layout.
}

// Get extracts the field from a register value.
func (fd Field) Get(value uint32) uint32 {
	if fd.Width == 0 {
		return 0
	}
	return (value >> fd.Lo) & (uint32(1)<<fd.Width - 1)
}

// Flag extracts a single bit field as a bool.
func (fd Field) Flag(value uint32) bool {
	return fd.Get(value) != 0
}

// Layout is the ordered set of fields packed into one register.
type Layout []Field

// Valid returns true if the fields, in order, tile all 32 bits of the
// register without gaps or overlaps.
func (lay Layout) Valid() bool {
	var lo uint
	for _, fd := range lay {
		if fd.Width == 0 {
			continue
		}
		if fd.Lo != lo {
			return false
		}
		lo += fd.Width
	}

	return lo == 32
}

// Signature is the processor signature from leaf 0x00000001 EAX.
type Signature struct {
	Raw       uint32
	Stepping  uint8 // Bits 3:0.
	Model     uint8 // Bits 7:4.
	Family    uint8 // Bits 11:8.
	Type      uint8 // Bits 13:12.
	ExtModel  uint8 // Bits 19:16.
	ExtFamily uint8 // Bits 27:20.
}

var (
	sigStepping  = Field{"stepping", 0, 4}
	sigModel     = Field{"model", 4, 4}
	sigFamily    = Field{"family", 8, 4}
	sigType      = Field{"type", 12, 2}
	sigReserved1 = Field{"reserved", 14, 2}
	sigExtModel  = Field{"extmodel", 16, 4}
	sigExtFamily = Field{"extfamily", 20, 8}
	sigReserved2 = Field{"reserved", 28, 4}

	signatureLayout = Layout{sigStepping, sigModel, sigFamily, sigType, sigReserved1, sigExtModel, sigExtFamily, sigReserved2}
)

// DecodeSignature decodes leaf 0x00000001 EAX.
func DecodeSignature(eax uint32) Signature {
	return Signature{
		Raw:       eax,
		Stepping:  uint8(sigStepping.Get(eax)),
		Model:     uint8(sigModel.Get(eax)),
		Family:    uint8(sigFamily.Get(eax)),
		Type:      uint8(sigType.Get(eax)),
		ExtModel:  uint8(sigExtModel.Get(eax)),
		ExtFamily: uint8(sigExtFamily.Get(eax)),
	}
}

// EffectiveFamily is the base family plus the extended family, for all vendors.
func (sig Signature) EffectiveFamily() uint32 {
	return uint32(sig.Family) + uint32(sig.ExtFamily)
}

// EffectiveModel is the model including the extended model where the
// vendor defines it: Intel for families 0x6 and 0xF, AMD for family 0xF.
// The base family, before the extended family is added, picks the branch.
func (sig Signature) EffectiveModel(vendor Vendor) uint32 {
	model := uint32(sig.Model)
	ext := uint32(sig.ExtModel) << 4

	switch vendor {
	case VENDOR_INTEL:
		if sig.Family == 0x6 || sig.Family == 0xf {
			model += ext
		}
	case VENDOR_AMD:
		if sig.Family == 0xf {
			model += ext
		}
	}

	return model
}

// ProcessorInfo is leaf 0x00000001 EBX.
type ProcessorInfo struct {
	BrandID      uint8
	CLFlushSize  uint8
	LogicalCount uint8
	LocalAPICID  uint8
}

var (
	infoBrandID      = Field{"brandid", 0, 8}
	infoCLFlushSize  = Field{"clflushsz", 8, 8}
	infoLogicalCount = Field{"logicalcount", 16, 8}
	infoLocalAPICID  = Field{"localapicid", 24, 8}

	processorInfoLayout = Layout{infoBrandID, infoCLFlushSize, infoLogicalCount, infoLocalAPICID}
)

// DecodeProcessorInfo decodes leaf 0x00000001 EBX.
func DecodeProcessorInfo(ebx uint32) ProcessorInfo {
	return ProcessorInfo{
		BrandID:      uint8(infoBrandID.Get(ebx)),
		CLFlushSize:  uint8(infoCLFlushSize.Get(ebx)),
		LogicalCount: uint8(infoLogicalCount.Get(ebx)),
		LocalAPICID:  uint8(infoLocalAPICID.Get(ebx)),
	}
}

// CacheParams is one sub-leaf of the deterministic cache parameters,
// leaf 0x00000004. The +1 encoded fields are stored decoded.
type CacheParams struct {
	Type             CacheType
	Level            uint8
	SelfInitializing bool
	FullyAssociative bool
	MaxThreads       uint32 // Maximum threads sharing this cache.
	MaxCores         uint32 // Maximum processor cores in the package.
	LineSize         uint32
	Partitions       uint32
	Ways             uint32
	Sets             uint32
}

var (
	cache04Type       = Field{"type", 0, 5}
	cache04Level      = Field{"level", 5, 3}
	cache04SelfInit   = Field{"self_initializing", 8, 1}
	cache04FullyAssoc = Field{"fully_associative", 9, 1}
	cache04Reserved   = Field{"reserved", 10, 4}
	cache04MaxThreads = Field{"max_threads_sharing", 14, 12}
	cache04MaxCores   = Field{"apics_reserved", 26, 6}

	cache04EaxLayout = Layout{cache04Type, cache04Level, cache04SelfInit, cache04FullyAssoc, cache04Reserved, cache04MaxThreads, cache04MaxCores}

	cache04LineSize   = Field{"line_size", 0, 12}
	cache04Partitions = Field{"partitions", 12, 10}
	cache04Assoc      = Field{"assoc", 22, 10}

	cache04EbxLayout = Layout{cache04LineSize, cache04Partitions, cache04Assoc}
)

// DecodeCacheParams decodes a leaf 0x00000004 frame. The set count is all
// of ECX.
func DecodeCacheParams(eax, ebx, ecx uint32) CacheParams {
	return CacheParams{
		Type:             CacheType(cache04Type.Get(eax)),
		Level:            uint8(cache04Level.Get(eax)),
		SelfInitializing: cache04SelfInit.Flag(eax),
		FullyAssociative: cache04FullyAssoc.Flag(eax),
		MaxThreads:       cache04MaxThreads.Get(eax) + 1,
		MaxCores:         cache04MaxCores.Get(eax) + 1,
		LineSize:         cache04LineSize.Get(ebx) + 1,
		Partitions:       cache04Partitions.Get(ebx) + 1,
		Ways:             cache04Assoc.Get(ebx) + 1,
		Sets:             ecx + 1,
	}
}

// Size returns the cache size in bytes.
func (cp CacheParams) Size() uint64 {
	return uint64(cp.Ways) * uint64(cp.Partitions) * uint64(cp.LineSize) * uint64(cp.Sets)
}

// Topology is one sub-leaf of the x2APIC topology leaf, 0x0000000B.
type Topology struct {
	Shift    uint8  // Bits to shift the x2APIC ID to reach the next level.
	Logical  uint16 // Logical processors at this level.
	Level    uint8  // Level number, the sub-leaf index.
	RawType  uint8  // Level type, as encoded.
	X2APICID uint32
}

var (
	topoShift     = Field{"shift", 0, 5}
	topoReserved1 = Field{"reserved", 5, 27}
	topoLogical   = Field{"logical", 0, 16}
	topoReserved2 = Field{"reserved", 16, 16}
	topoLevel     = Field{"level", 0, 8}
	topoType      = Field{"type", 8, 8}
	topoReserved3 = Field{"reserved", 16, 16}

	topoEaxLayout = Layout{topoShift, topoReserved1}
	topoEbxLayout = Layout{topoLogical, topoReserved2}
	topoEcxLayout = Layout{topoLevel, topoType, topoReserved3}
)

// DecodeTopology decodes a leaf 0x0000000B frame.
func DecodeTopology(eax, ebx, ecx, edx uint32) Topology {
	return Topology{
		Shift:    uint8(topoShift.Get(eax)),
		Logical:  uint16(topoLogical.Get(ebx)),
		Level:    uint8(topoLevel.Get(ecx)),
		RawType:  uint8(topoType.Get(ecx)),
		X2APICID: edx,
	}
}

// Type returns the level type, folding reserved encodings into LEVEL_UNKNOWN.
func (topo Topology) Type() LevelType {
	if topo.RawType > uint8(LEVEL_CORE) {
		return LEVEL_UNKNOWN
	}
	return LevelType(topo.RawType)
}

// TLB is an instruction/data TLB pair packed into one register.
type TLB struct {
	IEntries uint32
	IAssoc   uint32
	DEntries uint32
	DAssoc   uint32
}

// tlbFields is the packing of a TLB pair.
type tlbFields struct {
	IEntries, IAssoc, DEntries, DAssoc Field
}

func (tf tlbFields) Layout() Layout {
	return Layout{tf.IEntries, tf.IAssoc, tf.DEntries, tf.DAssoc}
}

func (tf tlbFields) Decode(value uint32) TLB {
	return TLB{
		IEntries: tf.IEntries.Get(value),
		IAssoc:   tf.IAssoc.Get(value),
		DEntries: tf.DEntries.Get(value),
		DAssoc:   tf.DAssoc.Get(value),
	}
}

var (
	// AMD L1 TLBs, leaf 0x80000005 EAX and EBX. One byte per field.
	amdL1TLB = tlbFields{
		IEntries: Field{"itlb_ent", 0, 8},
		IAssoc:   Field{"itlb_assoc", 8, 8},
		DEntries: Field{"dtlb_ent", 16, 8},
		DAssoc:   Field{"dtlb_assoc", 24, 8},
	}

	// AMD L2 TLBs, leaf 0x80000006 EAX and EBX.
	amdL2TLB = tlbFields{
		IEntries: Field{"itlb_size", 0, 12},
		IAssoc:   Field{"itlb_assoc", 12, 4},
		DEntries: Field{"dtlb_size", 16, 12},
		DAssoc:   Field{"dtlb_assoc", 28, 4},
	}
)

// Cache is a cache descriptor packed into one register.
type Cache struct {
	LineSize    uint32 // Bytes.
	LinesPerTag uint32
	Assoc       uint32 // Associativity, as encoded.
	Size        uint32 // Kilobytes.
}

// cacheFields is the packing of a cache descriptor. Reserved fields
// are only present to complete the layout.
type cacheFields struct {
	LineSize, LinesPerTag, Reserved1, Assoc, Reserved2, Size Field
}

func (cf cacheFields) Layout() Layout {
	return Layout{cf.LineSize, cf.LinesPerTag, cf.Reserved1, cf.Assoc, cf.Reserved2, cf.Size}
}

func (cf cacheFields) Decode(value uint32) Cache {
	return Cache{
		LineSize:    cf.LineSize.Get(value),
		LinesPerTag: cf.LinesPerTag.Get(value),
		Assoc:       cf.Assoc.Get(value),
		Size:        cf.Size.Get(value),
	}
}

var (
	// AMD L1 data and instruction caches, leaf 0x80000005 ECX and EDX.
	amdL1Cache = cacheFields{
		LineSize:    Field{"linesize", 0, 8},
		LinesPerTag: Field{"linespertag", 8, 8},
		Assoc:       Field{"assoc", 16, 8},
		Size:        Field{"size", 24, 8},
	}

	// Intel L2 cache, leaf 0x80000006 ECX.
	intelL2Cache = cacheFields{
		LineSize:  Field{"linesize", 0, 8},
		Reserved1: Field{"reserved", 8, 4},
		Assoc:     Field{"assoc", 12, 4},
		Size:      Field{"size", 16, 16},
	}

	// AMD L2 cache, leaf 0x80000006 ECX.
	amdL2Cache = cacheFields{
		LineSize:    Field{"linesize", 0, 8},
		LinesPerTag: Field{"linespertag", 8, 4},
		Assoc:       Field{"assoc", 12, 4},
		Size:        Field{"size", 16, 16},
	}

	// AMD L3 cache, leaf 0x80000006 EDX.
	amdL3Cache = cacheFields{
		LineSize:    Field{"linesize", 0, 8},
		LinesPerTag: Field{"linespertag", 8, 4},
		Assoc:       Field{"assoc", 12, 4},
		Reserved2:   Field{"reserved", 16, 2},
		Size:        Field{"size", 18, 14},
	}
)

// layouts lists every register layout, for the layout check.
func layouts() []Layout {
	return []Layout{
		signatureLayout,
		processorInfoLayout,
		cache04EaxLayout,
		cache04EbxLayout,
		topoEaxLayout,
		topoEbxLayout,
		topoEcxLayout,
		amdL1TLB.Layout(),
		amdL2TLB.Layout(),
		amdL1Cache.Layout(),
		intelL2Cache.Layout(),
		amdL2Cache.Layout(),
		amdL3Cache.Layout(),
	}
}
