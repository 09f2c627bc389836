package leaf

// Vendor is the processor vendor, from the standard base leaf.
type Vendor int

//go:generate go tool stringer -linecomment -type=Vendor
const (
	VENDOR_UNKNOWN   = Vendor(0) // unknown
	VENDOR_INTEL     = Vendor(1) // Intel
	VENDOR_AMD       = Vendor(2) // AMD
	VENDOR_TRANSMETA = Vendor(3) // Transmeta
	VENDOR_CYRIX     = Vendor(4) // Cyrix
)

// Hypervisor is the hypervisor, from the hypervisor base leaf.
type Hypervisor int

//go:generate go tool stringer -linecomment -type=Hypervisor
const (
	HYPERVISOR_NONE    = Hypervisor(0) // none
	HYPERVISOR_UNKNOWN = Hypervisor(1) // unknown
	HYPERVISOR_XEN     = Hypervisor(2) // Xen
	HYPERVISOR_VMWARE  = Hypervisor(3) // VMware
	HYPERVISOR_KVM     = Hypervisor(4) // KVM
)

// CacheType is the cache type field of leaf 0x00000004.
type CacheType int

//go:generate go tool stringer -linecomment -type=CacheType
const (
	CACHE_NULL    = CacheType(0) // null
	CACHE_DATA    = CacheType(1) // data
	CACHE_CODE    = CacheType(2) // code
	CACHE_UNIFIED = CacheType(3) // unified
)

// Name returns the cache type name, or "unknown" for reserved encodings.
func (ct CacheType) Name() string {
	if ct < CACHE_NULL || ct > CACHE_UNIFIED {
		return "unknown"
	}
	return ct.String()
}

// LevelType is the topology level type field of leaf 0x0000000B.
type LevelType int

//go:generate go tool stringer -linecomment -type=LevelType
const (
	LEVEL_INVALID = LevelType(0) // Invalid
	LEVEL_THREAD  = LevelType(1) // Thread
	LEVEL_CORE    = LevelType(2) // Core
	LEVEL_UNKNOWN = LevelType(3) // Unknown
)

// Register names an output register of a frame.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_EAX = Register(0) // EAX
	REG_EBX = Register(1) // EBX
	REG_ECX = Register(2) // ECX
	REG_EDX = Register(3) // EDX
)

// Leaf range bases.
const (
	RANGE_STD        = uint32(0x00000000) // Standard leaves.
	RANGE_HYPERVISOR = uint32(0x40000000) // Hypervisor leaves.
	RANGE_EXT        = uint32(0x80000000) // Extended leaves.

	RANGE_LIMIT   = 0xffff // Largest believable leaf count past a range base.
	SUBLEAF_LIMIT = 256    // Largest sub-leaf index an iterating decoder visits.
)

// Ranges is the traversal order of the leaf ranges.
var Ranges = []uint32{RANGE_STD, RANGE_HYPERVISOR, RANGE_EXT}
