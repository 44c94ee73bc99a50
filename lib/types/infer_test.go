package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromGo(t *testing.T) {
	assert.Equal(t, "i8?", FromGo[int8]().String())
	assert.Equal(t, "i16?", FromGo[int16]().String())
	assert.Equal(t, "i32?", FromGo[int32]().String())
	assert.Equal(t, "i64?", FromGo[int64]().String())
	assert.Equal(t, "fp32?", FromGo[float32]().String())
	assert.Equal(t, "fp64?", FromGo[float64]().String())
	assert.Equal(t, "string?", FromGo[string]().String())
	assert.Equal(t, "binary?", FromGo[[]byte]().String())

	assert.Equal(t, "i32", FromGo[int32](false).String())

	// matches the factory output exactly
	f := NewFactory()
	assert.Equal(t, f.I64(false).String(), FromGo[int64](false).String())
	assert.True(t, SameKind(f.Binary(), FromGo[[]byte]()))
}
