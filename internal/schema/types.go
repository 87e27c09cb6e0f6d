package schema

import (
	"sort"
	"strings"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/common"
)

// TypeRef is a possibly-nullable, possibly-list-wrapped reference to a named
// type. Nested lists chain through Elem.
type TypeRef struct {
	Name     string   // Base type name (empty on list wrappers)
	Nullable bool     // Whether null is allowed at this level
	List     bool     // Whether this level is a list wrapper
	Elem     *TypeRef // For lists, the element type
}

// String renders the reference in schema-language notation, e.g. "[Int!]!".
func (t TypeRef) String() string {
	var sb strings.Builder

	if t.List {
		sb.WriteString("[")

		if t.Elem != nil {
			sb.WriteString(t.Elem.String())
		}

		sb.WriteString("]")
	} else {
		sb.WriteString(t.Name)
	}

	if !t.Nullable {
		sb.WriteString("!")
	}

	return sb.String()
}

// BaseName returns the named type at the bottom of the list chain.
func (t TypeRef) BaseName() string {
	if t.List && t.Elem != nil {
		return t.Elem.BaseName()
	}

	return t.Name
}

// Kind represents the kind of a named type definition.
type Kind int

const (
	KindUnknown   Kind = iota
	KindObject         // object type with fields
	KindInterface      // interface with fields
	KindUnion          // union over possible object types
	KindEnum           // enum (name and metadata only)
	KindInput          // input object (name and metadata only)
	KindScalar         // scalar (name and metadata only)
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindInterface:
		return "interface"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindInput:
		return "input"
	case KindScalar:
		return "scalar"
	default:
		return common.UnknownStr
	}
}

// FieldDef describes a field declared by an object or interface type.
type FieldDef struct {
	Name              string  // Field name
	Type              TypeRef // Declared type
	Deprecated        bool    // Whether the field carries a deprecation marker
	DeprecationReason string  // Reason attached to the deprecation marker
	Description       string  // Schema description, if any
}

// ObjectDef describes an object type definition.
type ObjectDef struct {
	Name        string              // Type name
	Interfaces  []string            // Implemented interfaces, declaration order
	Fields      map[string]FieldDef // Declared fields by name
	Description string
}

// InterfaceDef describes an interface definition.
type InterfaceDef struct {
	Name        string              // Interface name
	Fields      map[string]FieldDef // Declared fields by name
	Description string
}

// UnionDef describes a union definition. PossibleTypes preserves declaration
// order; field resolution over it is evaluated left to right.
type UnionDef struct {
	Name          string
	PossibleTypes []string
	Description   string
}

// EnumDef describes an enum definition (name and metadata only).
type EnumDef struct {
	Name        string
	Description string
}

// InputDef describes an input object definition (name and metadata only).
type InputDef struct {
	Name        string
	Description string
}

// ScalarDef describes a scalar definition (name and metadata only).
type ScalarDef struct {
	Name        string
	Description string
}

// Schema is the in-memory index of all type definitions. It is built once
// per generation run and treated as an immutable snapshot afterwards.
type Schema struct {
	Objects    map[string]*ObjectDef
	Interfaces map[string]*InterfaceDef
	Unions     map[string]*UnionDef
	Enums      map[string]*EnumDef
	Inputs     map[string]*InputDef
	Scalars    map[string]*ScalarDef
}

// builtinScalars are always present in the index.
var builtinScalars = []string{"Int", "Float", "String", "Boolean", "ID"}

// New creates an empty Schema pre-populated with the built-in scalars.
func New() *Schema {
	s := &Schema{
		Objects:    make(map[string]*ObjectDef),
		Interfaces: make(map[string]*InterfaceDef),
		Unions:     make(map[string]*UnionDef),
		Enums:      make(map[string]*EnumDef),
		Inputs:     make(map[string]*InputDef),
		Scalars:    make(map[string]*ScalarDef),
	}

	for _, name := range builtinScalars {
		s.Scalars[name] = &ScalarDef{Name: name}
	}

	return s
}

// KindOf returns the kind of the named definition, or KindUnknown if the
// name does not resolve in the index.
func (s *Schema) KindOf(name string) Kind {
	switch {
	case s == nil:
		return KindUnknown
	case s.Objects[name] != nil:
		return KindObject
	case s.Interfaces[name] != nil:
		return KindInterface
	case s.Unions[name] != nil:
		return KindUnion
	case s.Enums[name] != nil:
		return KindEnum
	case s.Inputs[name] != nil:
		return KindInput
	case s.Scalars[name] != nil:
		return KindScalar
	default:
		return KindUnknown
	}
}

// IsComposite reports whether the named type can carry a selection set.
func (s *Schema) IsComposite(name string) bool {
	switch s.KindOf(name) {
	case KindObject, KindInterface, KindUnion:
		return true
	default:
		return false
	}
}

// ImplementsInterface reports whether the object type implements the
// named interface.
func (s *Schema) ImplementsInterface(typeName, ifaceName string) bool {
	if s == nil {
		return false
	}

	obj, ok := s.Objects[typeName]
	if !ok {
		return false
	}

	for _, name := range obj.Interfaces {
		if name == ifaceName {
			return true
		}
	}

	return false
}

// Implementors returns the names of all object types implementing the
// interface, sorted for deterministic iteration.
func (s *Schema) Implementors(ifaceName string) []string {
	if s == nil {
		return nil
	}

	var names []string

	for name, obj := range s.Objects {
		for _, iface := range obj.Interfaces {
			if iface == ifaceName {
				names = append(names, name)

				break
			}
		}
	}

	sort.Strings(names)

	return names
}

// PossibleTypes returns the union's possible type names in declaration
// order, or nil if the name is not a union.
func (s *Schema) PossibleTypes(unionName string) []string {
	if s == nil {
		return nil
	}

	u, ok := s.Unions[unionName]
	if !ok {
		return nil
	}

	return u.PossibleTypes
}

// FieldNames returns the sorted names of all fields resolvable on the
// named type, including fields inherited from implemented interfaces.
// Used for did-you-mean diagnostics.
func (s *Schema) FieldNames(typeName string) []string {
	if s == nil {
		return nil
	}

	seen := make(map[string]bool)

	if obj, ok := s.Objects[typeName]; ok {
		for name := range obj.Fields {
			seen[name] = true
		}

		for _, ifaceName := range obj.Interfaces {
			if iface, ok := s.Interfaces[ifaceName]; ok {
				for name := range iface.Fields {
					seen[name] = true
				}
			}
		}
	}

	if iface, ok := s.Interfaces[typeName]; ok {
		for name := range iface.Fields {
			seen[name] = true
		}
	}

	if len(seen) == 0 {
		return nil
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
