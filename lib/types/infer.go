package types

// Native enumerates the Go types that map directly onto a scalar
// substrait type.
type Native interface {
	int8 | int16 | int32 | int64 | float32 | float64 | string | []byte
}

// FromGo creates the scalar type corresponding to a native Go type,
// for example FromGo[int32]() is the nullable i32 type.
func FromGo[T Native](nullable ...bool) Type {
	var zero T
	var kind Kind
	switch any(zero).(type) {
	case int8:
		kind = KindI8
	case int16:
		kind = KindI16
	case int32:
		kind = KindI32
	case int64:
		kind = KindI64
	case float32:
		kind = KindFp32
	case float64:
		kind = KindFp64
	case string:
		kind = KindString
	case []byte:
		kind = KindBinary
	}
	return Primitive{kind: kind, nullable: nullability(nullable)}
}
