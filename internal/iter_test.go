package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := map[string]uint32{"STD": 0, "EXT": 0x80000000}
	b := map[string]uint32{"EXT": 6, "L2": 0x80000006}

	merged := maps.Collect(Concat2(maps.All(a), maps.All(b)))
	assert.Equal(map[string]uint32{"STD": 0, "EXT": 6, "L2": 0x80000006}, merged)

	// Stopping early stops every sequence.
	var keys []string
	for key := range Concat2(maps.All(a), maps.All(b)) {
		keys = append(keys, key)
		break
	}
	assert.Equal(1, len(keys))

	assert.Empty(slices.Collect(maps.Keys(maps.Collect(Concat2[string, uint32]()))))
}
