package types

import (
	"iter"
	"math"
	"slices"
)

// Limits are the parameter bounds a TypeFactory enforces. They are
// supplied by whatever owns the factory, typically an extensions
// registry, so a registry could legitimately vary them.
type Limits struct {
	// MaxStringLength bounds the length parameter of fixedchar,
	// fixedbinary and varchar.
	MaxStringLength int64
	// MaxPrecision bounds the precision parameter of decimal.
	MaxPrecision int32
}

// DefaultLimits returns the bounds defined by the substrait
// specification.
func DefaultLimits() Limits {
	return Limits{
		MaxStringLength: math.MaxInt32,
		MaxPrecision:    38,
	}
}

// TypeFactory constructs types, validating parameters as it goes. It
// is the single place where illegal parameter combinations are
// rejected; a type that came out of a factory always formats cleanly.
//
// Every method takes an optional trailing nullability which defaults
// to nullable when omitted.
type TypeFactory struct {
	limits Limits
}

// NewFactory returns a factory enforcing the default limits.
func NewFactory() *TypeFactory {
	return NewFactoryWithLimits(DefaultLimits())
}

// NewFactoryWithLimits returns a factory enforcing the given limits.
func NewFactoryWithLimits(limits Limits) *TypeFactory {
	return &TypeFactory{limits: limits}
}

func nullability(nullable []bool) bool {
	if len(nullable) == 0 {
		return true
	}
	return nullable[0]
}

func (f *TypeFactory) primitive(kind Kind, nullable []bool) Type {
	return Primitive{kind: kind, nullable: nullability(nullable)}
}

// I8 creates an instance of the i8 type.
func (f *TypeFactory) I8(nullable ...bool) Type { return f.primitive(KindI8, nullable) }

// I16 creates an instance of the i16 type.
func (f *TypeFactory) I16(nullable ...bool) Type { return f.primitive(KindI16, nullable) }

// I32 creates an instance of the i32 type.
func (f *TypeFactory) I32(nullable ...bool) Type { return f.primitive(KindI32, nullable) }

// I64 creates an instance of the i64 type.
func (f *TypeFactory) I64(nullable ...bool) Type { return f.primitive(KindI64, nullable) }

// Fp32 creates an instance of the fp32 type.
func (f *TypeFactory) Fp32(nullable ...bool) Type { return f.primitive(KindFp32, nullable) }

// Fp64 creates an instance of the fp64 type.
func (f *TypeFactory) Fp64(nullable ...bool) Type { return f.primitive(KindFp64, nullable) }

// String creates an instance of the string type.
func (f *TypeFactory) String(nullable ...bool) Type { return f.primitive(KindString, nullable) }

// Binary creates an instance of the binary type.
func (f *TypeFactory) Binary(nullable ...bool) Type { return f.primitive(KindBinary, nullable) }

// Timestamp creates an instance of the timestamp type.
func (f *TypeFactory) Timestamp(nullable ...bool) Type { return f.primitive(KindTimestamp, nullable) }

// TimestampTz creates an instance of the timestamp_tz type.
func (f *TypeFactory) TimestampTz(nullable ...bool) Type {
	return f.primitive(KindTimestampTz, nullable)
}

// Date creates an instance of the date type.
func (f *TypeFactory) Date(nullable ...bool) Type { return f.primitive(KindDate, nullable) }

// Time creates an instance of the time type.
func (f *TypeFactory) Time(nullable ...bool) Type { return f.primitive(KindTime, nullable) }

// IntervalYear creates an instance of the interval_year type.
func (f *TypeFactory) IntervalYear(nullable ...bool) Type {
	return f.primitive(KindIntervalYear, nullable)
}

// IntervalDay creates an instance of the interval_day type.
func (f *TypeFactory) IntervalDay(nullable ...bool) Type {
	return f.primitive(KindIntervalDay, nullable)
}

// UUID creates an instance of the uuid type.
func (f *TypeFactory) UUID(nullable ...bool) Type { return f.primitive(KindUUID, nullable) }

func (f *TypeFactory) checkLength(length int64) (int32, error) {
	if length > f.limits.MaxStringLength {
		return 0, rangeErrorf("length (%d) greater than 2^31-1", length)
	}
	if length < 0 {
		return 0, rangeErrorf("length (%d) is negative", length)
	}
	return int32(length), nil
}

// FixedChar creates an instance of the fixedchar type with the given
// length. The length must be in [0, 2^31-1].
func (f *TypeFactory) FixedChar(length int64, nullable ...bool) (Type, error) {
	checked, err := f.checkLength(length)
	if err != nil {
		return nil, err
	}
	return FixedChar{length: checked, nullable: nullability(nullable)}, nil
}

// FixedBinary creates an instance of the fixedbinary type with the
// given length. The length must be in [0, 2^31-1].
func (f *TypeFactory) FixedBinary(length int64, nullable ...bool) (Type, error) {
	checked, err := f.checkLength(length)
	if err != nil {
		return nil, err
	}
	return FixedBinary{length: checked, nullable: nullability(nullable)}, nil
}

// Varchar creates an instance of the varchar type with the given
// length. The length must be in [0, 2^31-1].
func (f *TypeFactory) Varchar(length int64, nullable ...bool) (Type, error) {
	checked, err := f.checkLength(length)
	if err != nil {
		return nil, err
	}
	return Varchar{length: checked, nullable: nullability(nullable)}, nil
}

// Decimal creates an instance of the decimal type. The precision must
// be in [1, 38] and the scale in [0, precision]. The precision is
// checked first.
func (f *TypeFactory) Decimal(precision, scale int32, nullable ...bool) (Type, error) {
	if precision < 1 || precision > f.limits.MaxPrecision {
		return nil, rangeErrorf("invalid precision (%d)", precision)
	}
	if scale < 0 || scale > precision {
		return nil, rangeErrorf("invalid scale (%d) given precision (%d)", scale, precision)
	}
	return Decimal{precision: precision, scale: scale, nullable: nullability(nullable)}, nil
}

// List creates an instance of the list type wrapping an already
// constructed element type.
func (f *TypeFactory) List(element Type, nullable ...bool) Type {
	return List{element: element, nullable: nullability(nullable)}
}

// Map creates an instance of the map type wrapping already constructed
// key and value types.
func (f *TypeFactory) Map(key, value Type, nullable ...bool) Type {
	return Map{key: key, value: value, nullable: nullability(nullable)}
}

// Struct creates an instance of the struct type from already
// constructed children. The slice is copied; order is preserved.
func (f *TypeFactory) Struct(fields []Type, nullable ...bool) Type {
	return Struct{fields: slices.Clone(fields), nullable: nullability(nullable)}
}

// StructSeq creates an instance of the struct type from a sequence of
// already constructed children. The sequence is consumed exactly once
// and its order is preserved, so a single-use producer is fine.
func (f *TypeFactory) StructSeq(fields iter.Seq[Type], nullable ...bool) Type {
	var collected []Type
	for typ := range fields {
		collected = append(collected, typ)
	}
	return Struct{fields: collected, nullable: nullability(nullable)}
}
