package resolve

import (
	"github.com/grounzero/graphql-sourcegen-sub001/internal/common"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/schema"
)

// ShapeKind distinguishes plain record shapes from discriminated unions.
type ShapeKind int

const (
	// ShapeRecord is a plain object shape with a flat field list.
	ShapeRecord ShapeKind = iota
	// ShapeDiscriminatedUnion is a polymorphic shape with a discriminant
	// field, hoisted common fields and per-type variants.
	ShapeDiscriminatedUnion
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRecord:
		return "Record"
	case ShapeDiscriminatedUnion:
		return "DiscriminatedUnion"
	default:
		return common.UnknownStr
	}
}

// ResolvedFragment is the resolution result for a single named fragment.
type ResolvedFragment struct {
	Name   string
	OnType string
	Shape  *ResolvedShape
}

// ResolvedShape describes one object-valued level of a fragment after
// spread inlining and schema lookup.
type ResolvedShape struct {
	Kind ShapeKind

	// Fields holds the record members, or the hoisted common fields when
	// Kind is ShapeDiscriminatedUnion. Document order is preserved.
	Fields []ResolvedField

	// Variants holds one entry per explicitly selected concrete type.
	// Empty unless Kind is ShapeDiscriminatedUnion.
	Variants []Variant

	// Discriminant names the field used to select a variant at
	// deserialization time. Set to "__typename" on discriminated unions.
	Discriminant string
}

// Variant is the type-conditional portion of a discriminated union shape.
type Variant struct {
	OnType string
	Shape  *ResolvedShape
}

// ResolvedField is a single selected field with its schema type attached.
// When the schema could not supply a type the field carries a string-like
// placeholder and Unresolved is set.
type ResolvedField struct {
	Name              string
	Key               string
	Type              schema.TypeRef
	Unresolved        bool
	Enum              bool
	Deprecated        bool
	DeprecationReason string
	Description       string

	// Shape is non-nil for object-valued fields and holds the nested
	// selection's resolved shape.
	Shape *ResolvedShape
}

// IsObject reports whether the field carries a nested shape.
func (f ResolvedField) IsObject() bool {
	return f.Shape != nil
}

// placeholderType is attached to fields the schema could not resolve.
// Generation treats it as a nullable string.
func placeholderType() schema.TypeRef {
	return schema.TypeRef{Name: "String", Nullable: true}
}
