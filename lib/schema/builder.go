package schema

import (
	"slices"

	"github.com/westonpace/substrait-expr/lib/registry"
	"github.com/westonpace/substrait-expr/lib/types"
)

// SchemaBuilder accumulates named fields in insertion order. It is a
// single mutable accumulator and must not be mutated from multiple
// goroutines without external synchronization.
type SchemaBuilder struct {
	registry *registry.ExtensionsRegistry
	fields   []Field
}

// NewBuilder creates a builder with a fresh extensions registry.
func NewBuilder() *SchemaBuilder {
	return NewBuilderWithRegistry(registry.NewExtensionsRegistry())
}

// NewBuilderWithRegistry creates a builder bound to an existing
// registry. This is only needed when type anchors must be maintained
// across builders.
func NewBuilderWithRegistry(reg *registry.ExtensionsRegistry) *SchemaBuilder {
	return &SchemaBuilder{registry: reg}
}

// Types returns a factory for building types destined for this schema.
func (b *SchemaBuilder) Types() *types.TypeFactory {
	return b.registry.Types()
}

// Registry returns the extensions registry backing this builder.
func (b *SchemaBuilder) Registry() *registry.ExtensionsRegistry {
	return b.registry
}

// Field appends a field and returns the builder for chaining. No
// validation is performed beyond what the type factory already did;
// duplicate names are accepted silently.
func (b *SchemaBuilder) Field(name string, typ types.Type) *SchemaBuilder {
	b.fields = append(b.fields, Field{Name: name, Type: typ})
	return b
}

// Nested appends a struct field whose children are assembled by build
// on a child builder sharing this builder's registry.
func (b *SchemaBuilder) Nested(name string, nullable bool, build func(*SchemaBuilder) *SchemaBuilder) *SchemaBuilder {
	child := build(NewBuilderWithRegistry(b.registry))
	return b.Field(name, child.Build().AsStruct(nullable))
}

// Build returns a snapshot of the accumulated fields. The builder
// stays usable afterwards.
func (b *SchemaBuilder) Build() Schema {
	return Schema{Fields: slices.Clone(b.fields)}
}
