package model

import (
	"github.com/grounzero/graphql-sourcegen-sub001/internal/common"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/scalars"
)

// Scope controls where a shape's declaration is placed in generated code.
type Scope int

const (
	// ScopeTopLevel emits the shape as a named top-level declaration.
	ScopeTopLevel Scope = iota
	// ScopeNested renders the shape inline at its single reference site.
	ScopeNested
)

func (s Scope) String() string {
	switch s {
	case ScopeTopLevel:
		return "TopLevel"
	case ScopeNested:
		return "Nested"
	default:
		return common.UnknownStr
	}
}

// ShapeKind distinguishes plain records from discriminated unions.
type ShapeKind int

const (
	ShapeRecord ShapeKind = iota
	ShapeVariant
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRecord:
		return "Record"
	case ShapeVariant:
		return "Variant"
	default:
		return common.UnknownStr
	}
}

// MemberKind says how a member's type expression is built.
type MemberKind int

const (
	// MemberScalar carries a mapped target type, wrapper structure included.
	MemberScalar MemberKind = iota
	// MemberShape references another shape in the tree by name.
	MemberShape
	// MemberList wraps an element type.
	MemberList
)

// MemberType is a member's type expression. Scalar members carry their
// full wrapper structure inside Scalar; shape references build theirs
// from Optional, Kind and Elem.
type MemberType struct {
	Kind     MemberKind
	Scalar   scalars.TargetType
	Ref      string
	Optional bool
	Elem     *MemberType
}

// Member is a single generated field of a shape.
type Member struct {
	Name              string
	Key               string
	Type              MemberType
	Deprecated        bool
	DeprecationReason string
	Description       string
}

// VariantRef points at the shape generated for one type condition of a
// discriminated union.
type VariantRef struct {
	OnType string
	Ref    string
}

// Shape is one named model produced from a fragment selection.
type Shape struct {
	Name     string
	Scope    Scope
	Kind     ShapeKind
	Depth    int
	OnType   string
	Fragment string
	Members  []Member

	// Variants and Discriminant are set for ShapeVariant shapes only.
	Variants     []VariantRef
	Discriminant string
}

// Tree is the assembled model set for one fragment. Shapes appear in
// dependency order: every shape comes after the shapes it references.
type Tree struct {
	Fragment string
	OnType   string
	Root     string
	Shapes   []*Shape
}

// Shape returns the named shape, or nil when the tree does not declare it.
func (t *Tree) Shape(name string) *Shape {
	for _, s := range t.Shapes {
		if s.Name == name {
			return s
		}
	}

	return nil
}
