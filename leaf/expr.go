package leaf

import (
	"errors"
	"iter"
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cpuid/internal"
)

// Predefined leaf expression equates.
var leafEquate = map[string]uint32{
	"STD":        RANGE_STD,
	"HYPERVISOR": RANGE_HYPERVISOR,
	"EXT":        RANGE_EXT,
}

// ParseLeaf evaluates a leaf or sub-leaf expression, such as "EXT+6" or
// "0x4". The range bases STD, HYPERVISOR and EXT are predeclared, along
// with any extra equates given.
func ParseLeaf(expr string, equates ...map[string]uint32) (value uint32, err error) {
	thread := starlark.Thread{Name: "leaf"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}

	seqs := []iter.Seq2[string, uint32]{maps.All(leafEquate)}
	for _, equate := range equates {
		seqs = append(seqs, maps.All(equate))
	}
	for key, value := range internal.Concat2(seqs...) {
		pred[key] = starlark.MakeUint(uint(value))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "leaf", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_uint64, ok := st_int.Uint64()
	if !ok || st_uint64 > 0xffffffff {
		err = ErrParseExpression(expr)
		return
	}

	value = uint32(st_uint64)
	return
}
