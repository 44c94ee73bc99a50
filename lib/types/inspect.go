package types

import (
	"reflect"
	"slices"
)

// SameKind reports whether two types are the same kind, ignoring
// nullability and type parameters.
func SameKind(a, b Type) bool {
	if pa, ok := a.(Primitive); ok {
		pb, ok := b.(Primitive)
		return ok && pa.kind == pb.kind
	}
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// NumTypes returns the total number of types, including t itself,
// represented by t. This is 1 unless t is a struct.
func NumTypes(t Type) int {
	s, ok := t.(Struct)
	if !ok {
		return 1
	}
	total := 1
	for _, field := range s.fields {
		total += NumTypes(field)
	}
	return total
}

// Children returns the child types of a struct, nil for any other
// type.
func Children(t Type) []Type {
	if s, ok := t.(Struct); ok {
		return slices.Clone(s.fields)
	}
	return nil
}
