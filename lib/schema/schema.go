// Package schema assembles named fields into schemas using types built
// by a type factory.
package schema

import (
	"github.com/samber/lo"

	"github.com/westonpace/substrait-expr/lib/types"
)

// Field is a named column in a schema.
type Field struct {
	Name string
	Type types.Type
}

// Schema is an ordered list of named fields. Names are not required to
// be unique; duplicates are kept in insertion order.
type Schema struct {
	Fields []Field
}

// Names returns the field names in order.
func (s Schema) Names() []string {
	return lo.Map(s.Fields, func(f Field, _ int) string { return f.Name })
}

// Types returns the field types in order.
func (s Schema) Types() []types.Type {
	return lo.Map(s.Fields, func(f Field, _ int) types.Type { return f.Type })
}

// AsStruct returns the schema as a single struct type. The root is
// non-nullable when the nullability is omitted since an entire row
// cannot be null.
func (s Schema) AsStruct(nullable ...bool) types.Type {
	root := len(nullable) > 0 && nullable[0]
	return types.NewFactory().Struct(s.Types(), root)
}
