package scalars

import (
	"strings"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/schema"
)

// TargetType describes the target representation of a resolved leaf type.
type TargetType struct {
	Name     string      // Target type expression, e.g. "string" or "time.Time"
	Kind     Kind        // Classification of the representation
	Optional bool        // Whether the level admits absence
	List     bool        // Whether this level is a list container
	Elem     *TargetType // For lists, the element representation
}

// String renders the Go type expression. Optional lists render as plain
// slices, since a nil slice already expresses absence.
func (t TargetType) String() string {
	var sb strings.Builder

	if t.List {
		sb.WriteString("[]")

		if t.Elem != nil {
			sb.WriteString(t.Elem.String())
		}

		return sb.String()
	}

	if t.Optional {
		sb.WriteString("*")
	}

	sb.WriteString(t.Name)

	return sb.String()
}

// builtins maps the built-in scalar names to their natural representations.
var builtins = map[string]TargetType{
	"String":  {Name: "string", Kind: KindString},
	"ID":      {Name: "string", Kind: KindString},
	"Int":     {Name: "int", Kind: KindInt},
	"Float":   {Name: "float64", Kind: KindFloat},
	"Boolean": {Name: "bool", Kind: KindBool},
}

// fallback is the representation for scalars absent from both the custom
// mappings and the built-in table.
var fallback = TargetType{Name: "string", Kind: KindString}

// Resolver maps resolved leaf type names to target representations using
// the built-in table plus user-supplied overrides.
type Resolver struct {
	custom map[string]string
}

// NewResolver creates a Resolver with the given custom scalar mappings.
// Custom values are target type expressions; a leading "*" marks a mapping
// that already denotes optionality.
func NewResolver(custom map[string]string) *Resolver {
	return &Resolver{custom: custom}
}

// Map maps a leaf type name to its target representation, wrapping one list
// level and attaching the optional marker as requested. The second return
// reports whether the name was recognized; unknown scalars fall back to the
// string-like default.
func (r *Resolver) Map(typeName string, list, nullable bool) (TargetType, bool) {
	base, known := r.base(typeName)

	if list {
		elem := base
		base = TargetType{List: true, Elem: &elem}
	}

	// Never double-apply: a custom mapping spelled "*T" is already
	// optional.
	if nullable && !base.Optional {
		base.Optional = true
	}

	return base, known
}

// MapRef maps a full type reference, recursing through nested lists.
func (r *Resolver) MapRef(ref schema.TypeRef) (TargetType, bool) {
	if ref.List {
		known := true

		var elem TargetType
		if ref.Elem != nil {
			elem, known = r.MapRef(*ref.Elem)
		}

		out := TargetType{List: true, Optional: ref.Nullable, Elem: &elem}

		return out, known
	}

	return r.Map(ref.Name, false, ref.Nullable)
}

// base resolves the unwrapped representation for a leaf name.
func (r *Resolver) base(typeName string) (TargetType, bool) {
	if target, ok := r.custom[typeName]; ok {
		base := TargetType{Name: target, Kind: KindCustom}

		if rest, found := strings.CutPrefix(target, "*"); found {
			base.Name = rest
			base.Optional = true
		}

		return base, true
	}

	if base, ok := builtins[typeName]; ok {
		return base, true
	}

	return fallback, false
}
