// Package types models the substrait type system: scalar, parameterized
// and nested types, each carrying a nullability flag, together with a
// canonical human readable rendering of every type.
package types

import "slices"

// Type is a single constructed data type. A Type is immutable once
// constructed and can be freely shared, including across goroutines.
// Composite types hold already constructed children, so a type tree is
// always acyclic.
type Type interface {
	isType()
	// Nullable reports whether the type admits nulls.
	Nullable() bool
	// String returns the canonical rendering of the type.
	String() string
}

var _ Type = Primitive{}
var _ Type = FixedChar{}
var _ Type = FixedBinary{}
var _ Type = Varchar{}
var _ Type = Decimal{}
var _ Type = List{}
var _ Type = Map{}
var _ Type = Struct{}
var _ Type = UserDefined{}

// Primitive is a simple scalar type with no parameters.
type Primitive struct {
	kind     Kind
	nullable bool
}

func (p Primitive) isType()        {}
func (p Primitive) Nullable() bool { return p.nullable }
func (p Primitive) Kind() Kind     { return p.kind }
func (p Primitive) String() string { return Format(p) }

// FixedChar is a fixed length string type.
type FixedChar struct {
	length   int32
	nullable bool
}

func (f FixedChar) isType()        {}
func (f FixedChar) Nullable() bool { return f.nullable }
func (f FixedChar) Length() int32  { return f.length }
func (f FixedChar) String() string { return Format(f) }

// FixedBinary is a fixed length binary type.
type FixedBinary struct {
	length   int32
	nullable bool
}

func (f FixedBinary) isType()        {}
func (f FixedBinary) Nullable() bool { return f.nullable }
func (f FixedBinary) Length() int32  { return f.length }
func (f FixedBinary) String() string { return Format(f) }

// Varchar is a bounded length string type.
type Varchar struct {
	length   int32
	nullable bool
}

func (v Varchar) isType()        {}
func (v Varchar) Nullable() bool { return v.nullable }
func (v Varchar) Length() int32  { return v.length }
func (v Varchar) String() string { return Format(v) }

// Decimal is a fixed point number with a precision and a scale.
type Decimal struct {
	precision int32
	scale     int32
	nullable  bool
}

func (d Decimal) isType()          {}
func (d Decimal) Nullable() bool   { return d.nullable }
func (d Decimal) Precision() int32 { return d.precision }
func (d Decimal) Scale() int32     { return d.scale }
func (d Decimal) String() string   { return Format(d) }

// List is a variable length sequence of a single element type.
type List struct {
	element  Type
	nullable bool
}

func (l List) isType()        {}
func (l List) Nullable() bool { return l.nullable }
func (l List) Element() Type  { return l.element }
func (l List) String() string { return Format(l) }

// Map is an associative container with a key type and a value type.
type Map struct {
	key      Type
	value    Type
	nullable bool
}

func (m Map) isType()        {}
func (m Map) Nullable() bool { return m.nullable }
func (m Map) Key() Type      { return m.key }
func (m Map) Value() Type    { return m.value }
func (m Map) String() string { return Format(m) }

// Struct is an ordered collection of child types.
type Struct struct {
	fields   []Type
	nullable bool
}

func (s Struct) isType()        {}
func (s Struct) Nullable() bool { return s.nullable }
func (s Struct) String() string { return Format(s) }

// Fields returns the child types in order.
func (s Struct) Fields() []Type { return slices.Clone(s.fields) }
