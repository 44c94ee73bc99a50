package types

// UnknownTypeURI is the URI of the unknown extension type.
const UnknownTypeURI = "https://substrait.io/types"

// UnknownTypeName is the name of the unknown extension type.
const UnknownTypeName = "unknown"

// UserDefined is an extension type registered against an extensions
// registry. It carries its qualified name so formatting never needs
// the registry; the anchor is kept for downstream serialization.
type UserDefined struct {
	uri      string
	name     string
	anchor   uint32
	nullable bool
}

// NewUserDefined creates an extension type. The anchor should come
// from registering the uri/name pair with an extensions registry.
func NewUserDefined(uri, name string, anchor uint32, nullable ...bool) UserDefined {
	return UserDefined{uri: uri, name: name, anchor: anchor, nullable: nullability(nullable)}
}

func (u UserDefined) isType()        {}
func (u UserDefined) Nullable() bool { return u.nullable }
func (u UserDefined) URI() string    { return u.uri }
func (u UserDefined) Name() string   { return u.name }
func (u UserDefined) Anchor() uint32 { return u.anchor }
func (u UserDefined) String() string { return Format(u) }

// IsUnknown reports whether t is the unknown extension type.
func IsUnknown(t Type) bool {
	u, ok := t.(UserDefined)
	return ok && u.uri == UnknownTypeURI && u.name == UnknownTypeName
}
