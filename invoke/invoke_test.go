package invoke

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegs_Bytes(t *testing.T) {
	assert := assert.New(t)

	regs := Regs{Eax: 0x0000000d, Ebx: 0x756e6547, Ecx: 0x6c65746e, Edx: 0x49656e69}
	data := regs.Bytes()

	assert.Equal([]byte{0x0d, 0, 0, 0}, data[0:4])
	assert.Equal("Genu", string(data[4:8]))
	assert.Equal("ntel", string(data[8:12]))
	assert.Equal("ineI", string(data[12:16]))
}

func TestRegs_IsZero(t *testing.T) {
	assert := assert.New(t)

	assert.True(Regs{In: In{Leaf: 4, Subleaf: 3}}.IsZero())
	assert.False(Regs{Edx: 1}.IsZero())
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	regs := Regs{In: In{Leaf: 0}, Eax: 0x0000000d, Ebx: 0x756e6547, Ecx: 0x6c65746e, Edx: 0x49656e69}
	assert.Equal("CPUID 00000000:00 = 0000000d 756e6547 6c65746e 49656e69 | ....GenuntelineI", Format(regs))

	regs = Regs{In: In{Leaf: 0x80000006, Subleaf: 0x1f}}
	assert.Equal("CPUID 80000006:1f = 00000000 00000000 00000000 00000000 | ................", Format(regs))
}

func TestStatic(t *testing.T) {
	assert := assert.New(t)

	s := Static{}
	s.Set(In{Leaf: 4, Subleaf: 1}, 1, 2, 3, 4)

	regs := s.Invoke(In{Leaf: 4, Subleaf: 1})
	assert.Equal(Regs{In: In{Leaf: 4, Subleaf: 1}, Eax: 1, Ebx: 2, Ecx: 3, Edx: 4}, regs)

	regs = s.Invoke(In{Leaf: 4, Subleaf: 2})
	assert.True(regs.IsZero())
	assert.Equal(In{Leaf: 4, Subleaf: 2}, regs.In)
}

func TestStatic_Inputs(t *testing.T) {
	assert := assert.New(t)

	s := Static{}
	s.Set(In{Leaf: 0x80000000}, 0, 0, 0, 0)
	s.Set(In{Leaf: 4, Subleaf: 1}, 0, 0, 0, 0)
	s.Set(In{Leaf: 4, Subleaf: 0}, 0, 0, 0, 0)
	s.Set(In{Leaf: 0}, 0, 0, 0, 0)

	assert.Equal([]In{
		{Leaf: 0},
		{Leaf: 4, Subleaf: 0},
		{Leaf: 4, Subleaf: 1},
		{Leaf: 0x80000000},
	}, s.Inputs())
}

func TestStatic_Unmarshal(t *testing.T) {
	assert := assert.New(t)

	dump := strings.Join([]string{
		"CPUID 00000000:00 = 0000000d 756e6547 6c65746e 49656e69 | ....GenuntelineI",
		"",
		"Vendor ID: GenuineIntel",
		"CPUID 00000004:01 = 1c004122 01c0003f 0000003f 00000000 | \"A..?...?.......",
		"  CPUID 80000000:00 = 80000008 00000000 00000000 00000000",
	}, "\n")

	s := Static{}
	err := s.Unmarshal(strings.NewReader(dump))
	assert.NoError(err)
	assert.Equal(3, len(s))

	regs := s.Invoke(In{Leaf: 4, Subleaf: 1})
	assert.Equal(uint32(0x1c004122), regs.Eax)
	assert.Equal(uint32(0x01c0003f), regs.Ebx)
	assert.Equal(uint32(0x0000003f), regs.Ecx)

	regs = s.Invoke(In{Leaf: 0x80000000})
	assert.Equal(uint32(0x80000008), regs.Eax)
}

func TestStatic_Unmarshal_Error(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		line string
		err  error
	}){
		{"short", "CPUID 00000000:00 = 0000000d", ErrDumpLine},
		{"value", "CPUID 00000000:00 = 0000000d zzzzzzzz 6c65746e 49656e69", ErrParseNumber("zzzzzzzz")},
		{"range", "CPUID 00000000:00 = 1ffffffff 0 0 0", ErrParseNumber("1ffffffff")},
	}

	for _, entry := range table {
		s := Static{}
		err := s.Unmarshal(strings.NewReader("\n" + entry.line))
		assert.Error(err, entry.name)

		var syntax ErrSyntax
		assert.True(errors.As(err, &syntax), entry.name)
		assert.Equal(2, syntax.LineNo, entry.name)
		assert.Equal(entry.line, syntax.Line, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

func TestStatic_Marshal(t *testing.T) {
	assert := assert.New(t)

	s := Static{}
	s.Set(In{Leaf: 0x80000000}, 0x80000008, 0, 0, 0)
	s.Set(In{Leaf: 0}, 0x0000000d, 0x756e6547, 0x6c65746e, 0x49656e69)

	buf := &bytes.Buffer{}
	assert.NoError(s.Marshal(buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(2, len(lines))
	assert.True(strings.HasPrefix(lines[0], "CPUID 00000000:00 = 0000000d"))
	assert.True(strings.HasPrefix(lines[1], "CPUID 80000000:00 = 80000008"))

	loaded := Static{}
	assert.NoError(loaded.Unmarshal(buf))
	assert.Equal(s, loaded)
}

func TestRecorder(t *testing.T) {
	assert := assert.New(t)

	s := Static{}
	s.Set(In{Leaf: 2}, 0x01, 0, 0, 0)

	rec := &Recorder{Invoker: s}
	rec.Invoke(In{Leaf: 0})
	regs := rec.Invoke(In{Leaf: 2})
	rec.Invoke(In{Leaf: 2})
	rec.Invoke(In{Leaf: 4, Subleaf: 1})

	assert.Equal(uint32(0x01), regs.Eax)
	assert.Equal(4, len(rec.Calls))
	assert.Equal([]uint32{0, 2, 4}, rec.Leaves())

	rec.Reset()
	assert.Equal(0, len(rec.Calls))
}

func TestRecorder_Frames(t *testing.T) {
	assert := assert.New(t)

	s := Static{}
	s.Set(In{Leaf: 0}, 0x0d, 0x756e6547, 0x6c65746e, 0x49656e69)
	s.Set(In{Leaf: 4, Subleaf: 1}, 0x1c004122, 0x01c0003f, 0x3f, 0)

	rec := &Recorder{Invoker: s, Frames: Static{}}
	rec.Invoke(In{Leaf: 0})
	rec.Invoke(In{Leaf: 4, Subleaf: 1})
	rec.Invoke(In{Leaf: 7})

	// Saved frames replay the same run, missing leaves included.
	buf := &bytes.Buffer{}
	assert.NoError(rec.Frames.Marshal(buf))

	loaded := Static{}
	assert.NoError(loaded.Unmarshal(buf))
	assert.Equal(3, len(loaded))
	for _, in := range rec.Calls {
		assert.Equal(s.Invoke(in), loaded.Invoke(in), "%v", in)
	}
}

func TestFunc(t *testing.T) {
	assert := assert.New(t)

	var inv Invoker = Func(func(in In) Regs {
		return Regs{In: in, Eax: in.Leaf + in.Subleaf}
	})

	assert.Equal(uint32(7), inv.Invoke(In{Leaf: 3, Subleaf: 4}).Eax)
}
