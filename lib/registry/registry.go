// Package registry tracks the extensions referenced by a plan.
//
// Substrait refers to extension types and functions with "anchors",
// lightweight integer stand-ins for a uri/name pair. The registry
// hands out anchors and keeps both directions of the mapping so a
// lookup is cheap in memory.
package registry

import (
	"sync"

	"github.com/westonpace/substrait-expr/lib/types"
)

// QualifiedName is a uri paired with a name.
type QualifiedName struct {
	URI  string
	Name string
}

func (q QualifiedName) String() string {
	return q.URI + "#" + q.Name
}

type record struct {
	name   QualifiedName
	anchor uint32
}

// ExtensionsRegistry is mutable: types and functions can be registered
// at any time. All access is guarded by a lock so the registry is safe
// for concurrent use.
type ExtensionsRegistry struct {
	mu            sync.RWMutex
	factory       *types.TypeFactory
	counter       uint32
	typesByKey    map[string]record
	typesByAnchor map[uint32]record
	funcsByKey    map[string]record
	funcsByAnchor map[uint32]record
}

// NewExtensionsRegistry creates an empty registry using the default
// type parameter limits.
func NewExtensionsRegistry() *ExtensionsRegistry {
	return NewExtensionsRegistryWithLimits(types.DefaultLimits())
}

// NewExtensionsRegistryWithLimits creates an empty registry whose type
// factories enforce the given limits.
func NewExtensionsRegistryWithLimits(limits types.Limits) *ExtensionsRegistry {
	return &ExtensionsRegistry{
		factory:       types.NewFactoryWithLimits(limits),
		counter:       1,
		typesByKey:    make(map[string]record),
		typesByAnchor: make(map[uint32]record),
		funcsByKey:    make(map[string]record),
		funcsByAnchor: make(map[uint32]record),
	}
}

func (r *ExtensionsRegistry) register(byKey map[string]record, byAnchor map[uint32]record, uri, name string) uint32 {
	key := uri + name
	if rec, ok := byKey[key]; ok {
		return rec.anchor
	}
	rec := record{name: QualifiedName{URI: uri, Name: name}, anchor: r.counter}
	r.counter++
	byKey[key] = rec
	byAnchor[rec.anchor] = rec
	return rec.anchor
}

// RegisterType registers an extension type and returns an anchor for
// it. Registering the same uri/name again returns the same anchor.
func (r *ExtensionsRegistry) RegisterType(uri, name string) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(r.typesByKey, r.typesByAnchor, uri, name)
}

// RegisterFunction registers an extension function and returns an
// anchor for it. Registering the same uri/name again returns the same
// anchor.
func (r *ExtensionsRegistry) RegisterFunction(uri, name string) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(r.funcsByKey, r.funcsByAnchor, uri, name)
}

// LookupType returns the qualified name registered for a type anchor.
func (r *ExtensionsRegistry) LookupType(anchor uint32) (QualifiedName, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.typesByAnchor[anchor]
	return rec.name, ok
}

// LookupFunction returns the qualified name registered for a function
// anchor.
func (r *ExtensionsRegistry) LookupFunction(anchor uint32) (QualifiedName, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.funcsByAnchor[anchor]
	return rec.name, ok
}

// Types returns the type factory bound to this registry's parameter
// limits. The factory is stateless so the same instance is shared.
func (r *ExtensionsRegistry) Types() *types.TypeFactory {
	return r.factory
}

// Unknown returns the unknown type, registering it if needed.
//
// The unknown type is special during function resolution: it matches
// any argument, and its presence makes the function's return type
// unknown as well. It is normally used when the schema is not type
// aware. It is always nullable.
func (r *ExtensionsRegistry) Unknown() types.Type {
	anchor := r.RegisterType(types.UnknownTypeURI, types.UnknownTypeName)
	return types.NewUserDefined(types.UnknownTypeURI, types.UnknownTypeName, anchor)
}

// UserDefined registers a user defined type and returns a builder that
// creates instances of it.
func (r *ExtensionsRegistry) UserDefined(uri, name string) UserDefinedTypeBuilder {
	return UserDefinedTypeBuilder{
		uri:    uri,
		name:   name,
		anchor: r.RegisterType(uri, name),
	}
}

// UserDefinedTypeBuilder creates instances of one user defined type.
type UserDefinedTypeBuilder struct {
	uri    string
	name   string
	anchor uint32
}

// WithNullability creates an instance of the type with the given
// nullability. It does not consume the builder and can be called many
// times.
func (b UserDefinedTypeBuilder) WithNullability(nullable bool) types.Type {
	return types.NewUserDefined(b.uri, b.name, b.anchor, nullable)
}
