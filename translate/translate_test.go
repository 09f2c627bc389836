package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("'EXT+' is not a valid leaf expression", From("'%v' is not a valid leaf expression", "EXT+"))
	assert.Equal("line 7", From("line %d", 7))
}
