//go:build amd64

package invoke

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNative(t *testing.T) {
	assert := assert.New(t)

	native, err := NewNative()
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	regs := native.Invoke(In{Leaf: 0})
	assert.Equal(In{Leaf: 0}, regs.In)
	assert.NotZero(regs.Eax)

	// The vendor string is always printable ASCII.
	data := regs.Bytes()
	for _, b := range data[4:] {
		assert.True(b >= 0x20 && b <= 0x7e, "vendor byte 0x%02x", b)
	}
}
