package leaf

import (
	"github.com/ezrec/cpuid/translate"
)

var f = translate.From

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not a valid leaf expression", string(err))
}
