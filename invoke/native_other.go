//go:build !amd64

package invoke

const nativeSupported = false

func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32) {
	return
}
