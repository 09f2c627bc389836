package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFlags(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		leafExpr string
		set      map[string]bool
		err      error
	}){
		{"", map[string]bool{}, nil},
		{"", map[string]bool{"d": true, "v": true}, nil},
		{"EXT+6", map[string]bool{"l": true}, nil},
		{"4", map[string]bool{"l": true, "s": true}, nil},
		{"", map[string]bool{"s": true}, ErrSubleafWithoutLeaf},
		{"", map[string]bool{"d": true, "s": true}, ErrSubleafWithoutLeaf},
	}

	for n, entry := range table {
		assert.Equal(entry.err, checkFlags(entry.leafExpr, entry.set), "case %d", n)
	}
}
