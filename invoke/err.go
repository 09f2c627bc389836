package invoke

import (
	"errors"

	"github.com/ezrec/cpuid/translate"
)

var f = translate.From

var (
	ErrUnsupported = errors.New(f("cpuid instruction unsupported on this architecture"))
	ErrDumpLine    = errors.New(f("malformed dump line"))
)

// ErrSyntax locates a malformed line in a raw dump.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a hexadecimal register value", string(err))
}
