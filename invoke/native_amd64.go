//go:build amd64

package invoke

const nativeSupported = true

// cpuid is implemented in native_amd64.s.
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)
