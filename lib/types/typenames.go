package types

// Kind identifies a simple scalar type.
type Kind int

const (
	KindI8 Kind = iota
	KindI16
	KindI32
	KindI64
	KindFp32
	KindFp64
	KindString
	KindBinary
	KindTimestamp
	KindTimestampTz
	KindDate
	KindTime
	KindIntervalYear
	KindIntervalDay
	KindUUID
)

var kindNames = [...]string{
	KindI8:           "i8",
	KindI16:          "i16",
	KindI32:          "i32",
	KindI64:          "i64",
	KindFp32:         "fp32",
	KindFp64:         "fp64",
	KindString:       "string",
	KindBinary:       "binary",
	KindTimestamp:    "timestamp",
	KindTimestampTz:  "timestamp_tz",
	KindDate:         "date",
	KindTime:         "time",
	KindIntervalYear: "interval_year",
	KindIntervalDay:  "interval_day",
	KindUUID:         "uuid",
}

// String returns the canonical keyword for the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}
