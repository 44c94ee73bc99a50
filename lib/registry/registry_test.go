package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/westonpace/substrait-expr/lib/types"
)

func TestRegisterTypeIsIdempotent(t *testing.T) {
	reg := NewExtensionsRegistry()

	first := reg.RegisterType("my_uri", "my_type")
	again := reg.RegisterType("my_uri", "my_type")
	assert.Equal(t, first, again)

	other := reg.RegisterType("my_uri", "other_type")
	assert.NotEqual(t, first, other)

	name, ok := reg.LookupType(first)
	require.True(t, ok)
	assert.Equal(t, QualifiedName{URI: "my_uri", Name: "my_type"}, name)
	assert.Equal(t, "my_uri#my_type", name.String())

	_, ok = reg.LookupType(9999)
	assert.False(t, ok)
}

func TestRegisterFunction(t *testing.T) {
	reg := NewExtensionsRegistry()

	fn := reg.RegisterFunction("fn_uri", "add")
	typ := reg.RegisterType("fn_uri", "add")
	// types and functions share the anchor space but not records
	assert.NotEqual(t, fn, typ)

	name, ok := reg.LookupFunction(fn)
	require.True(t, ok)
	assert.Equal(t, "fn_uri#add", name.String())

	_, ok = reg.LookupFunction(typ)
	assert.False(t, ok)
}

func TestTypesAccessor(t *testing.T) {
	reg := NewExtensionsRegistry()

	f := reg.Types()
	assert.Equal(t, "i32?", f.I32().String())

	typ, err := f.Decimal(16, 8)
	require.NoError(t, err)
	assert.Equal(t, "decimal?<16,8>", typ.String())

	// registry limits flow into the factory
	bounded := NewExtensionsRegistryWithLimits(types.Limits{MaxStringLength: 4, MaxPrecision: 38})
	_, err = bounded.Types().Varchar(5)
	assert.Error(t, err)
}

func TestUnknownType(t *testing.T) {
	reg := NewExtensionsRegistry()

	unknown := reg.Unknown()
	assert.Equal(t, "https://substrait.io/types#unknown?", unknown.String())
	assert.True(t, unknown.Nullable())
	assert.True(t, types.IsUnknown(unknown))
	assert.False(t, types.IsUnknown(reg.Types().I32()))

	// registering again keeps the same anchor
	first := unknown.(types.UserDefined).Anchor()
	assert.Equal(t, first, reg.Unknown().(types.UserDefined).Anchor())
}

func TestUserDefinedTypeBuilder(t *testing.T) {
	reg := NewExtensionsRegistry()

	builder := reg.UserDefined("my_uri", "my_type")
	assert.Equal(t, "my_uri#my_type?", builder.WithNullability(true).String())
	assert.Equal(t, "my_uri#my_type", builder.WithNullability(false).String())
	assert.False(t, types.IsUnknown(builder.WithNullability(true)))

	// the builder can be reused and anchors stay stable
	a := builder.WithNullability(true).(types.UserDefined).Anchor()
	b := reg.UserDefined("my_uri", "my_type").WithNullability(false).(types.UserDefined).Anchor()
	assert.Equal(t, a, b)
}

func TestConcurrentRegistration(t *testing.T) {
	reg := NewExtensionsRegistry()

	var wg sync.WaitGroup
	anchors := make([]uint32, 16)
	for i := range anchors {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			anchors[i] = reg.RegisterType("uri", "name")
		}(i)
	}
	wg.Wait()

	for _, anchor := range anchors {
		assert.Equal(t, anchors[0], anchor)
	}
}
