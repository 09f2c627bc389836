package invoke

// Native executes the CPUID instruction on the running processor.
type Native struct{}

var _ Invoker = (*Native)(nil)

// NewNative returns a native invoker, or ErrUnsupported if this
// architecture has no CPUID instruction.
func NewNative() (native *Native, err error) {
	if !nativeSupported {
		err = ErrUnsupported
		return
	}

	native = &Native{}
	return
}

// Invoke executes CPUID with the leaf in EAX and the sub-leaf in ECX.
func (native *Native) Invoke(in In) (regs Regs) {
	regs.In = in
	regs.Eax, regs.Ebx, regs.Ecx, regs.Edx = cpuid(in.Leaf, in.Subleaf)
	return
}
