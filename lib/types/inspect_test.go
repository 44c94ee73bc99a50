package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameKind(t *testing.T) {
	f := NewFactory()

	assert.True(t, SameKind(f.I32(), f.I32(false)))
	assert.False(t, SameKind(f.I32(), f.I64()))
	assert.False(t, SameKind(f.I32(), f.String()))

	fc8, err := f.FixedChar(8)
	require.NoError(t, err)
	fc16, err := f.FixedChar(16, false)
	require.NoError(t, err)
	fb8, err := f.FixedBinary(8)
	require.NoError(t, err)
	assert.True(t, SameKind(fc8, fc16))
	assert.False(t, SameKind(fc8, fb8))

	assert.True(t, SameKind(f.List(f.I32()), f.List(f.String())))
	assert.False(t, SameKind(f.List(f.I32()), f.Map(f.I32(), f.I32())))
	assert.True(t, SameKind(f.Struct(nil), f.Struct([]Type{f.I8()})))
}

func TestNumTypes(t *testing.T) {
	f := NewFactory()

	assert.Equal(t, 1, NumTypes(f.I32()))
	assert.Equal(t, 1, NumTypes(f.List(f.I32())))
	assert.Equal(t, 3, NumTypes(f.Struct([]Type{f.I32(), f.String()})))
	assert.Equal(t, 5, NumTypes(f.Struct([]Type{
		f.I32(),
		f.Struct([]Type{f.String(), f.Fp64()}),
	})))
}

func TestChildren(t *testing.T) {
	f := NewFactory()

	assert.Nil(t, Children(f.I32()))
	assert.Nil(t, Children(f.List(f.I32())))

	kids := Children(f.Struct([]Type{f.I32(), f.String(false)}))
	require.Len(t, kids, 2)
	assert.Equal(t, "i32?", kids[0].String())
	assert.Equal(t, "string", kids[1].String())
}
