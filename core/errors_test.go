package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSomething = errors.New("something broke")

func TestWrapKeepsChain(t *testing.T) {
	err := WrapError(errSomething, ESTRUCTURE, "cannot split [%s]", "div")
	assert.ErrorIs(t, err, errSomething)
	assert.Equal(t, ESTRUCTURE, Code(err))
	assert.Equal(t, "cannot split [div]", UserMessage(err))
	assert.Contains(t, err.Error(), "[124]")
}

func TestCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errSomething))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "internal error", UserMessage(errSomething))
	err := WrapError(nil, EMISSING, "")
	assert.NotNil(t, err)
	assert.Equal(t, "missing", UserMessage(err))
	assert.Equal(t, EINVALID, Code(Error(EINVALID, "bad %d", 1)))
}
