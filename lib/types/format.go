package types

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Format renders a type in its canonical human readable form.
//
// The syntax follows https://substrait.io/types/type_parsing: the type
// keyword, then "?" if the type is nullable, then any parameters in
// angle brackets, comma separated with no whitespace. Nested types are
// rendered recursively with the same rules. Format never fails for a
// type produced by a TypeFactory.
func Format(t Type) string {
	var sb strings.Builder
	writeType(&sb, t)
	return sb.String()
}

func writeType(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case Primitive:
		sb.WriteString(t.kind.String())
		writeNullMarker(sb, t.nullable)
	case FixedChar:
		writeParams(sb, "fixedchar", t.nullable, formatInt(t.length))
	case FixedBinary:
		writeParams(sb, "fixedbinary", t.nullable, formatInt(t.length))
	case Varchar:
		writeParams(sb, "varchar", t.nullable, formatInt(t.length))
	case Decimal:
		writeParams(sb, "decimal", t.nullable, formatInt(t.precision), formatInt(t.scale))
	case List:
		writeParams(sb, "list", t.nullable, Format(t.element))
	case Map:
		writeParams(sb, "map", t.nullable, Format(t.key), Format(t.value))
	case Struct:
		children := lo.Map(t.fields, func(f Type, _ int) string { return Format(f) })
		writeParams(sb, "struct", t.nullable, children...)
	case UserDefined:
		sb.WriteString(t.uri)
		sb.WriteByte('#')
		sb.WriteString(t.name)
		writeNullMarker(sb, t.nullable)
	}
}

func writeNullMarker(sb *strings.Builder, nullable bool) {
	if nullable {
		sb.WriteByte('?')
	}
}

func writeParams(sb *strings.Builder, keyword string, nullable bool, params ...string) {
	sb.WriteString(keyword)
	writeNullMarker(sb, nullable)
	sb.WriteByte('<')
	sb.WriteString(strings.Join(params, ","))
	sb.WriteByte('>')
}

func formatInt(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
