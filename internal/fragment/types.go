package fragment

// Fragment is the top-level unit of compilation: a named selection of
// fields against a declared base type. One model tree is produced per
// fragment.
type Fragment struct {
	Name      string       // Fragment name
	OnType    string       // Base type the selection applies to
	Selection SelectionSet // Top-level selection
}

// SelectionSet is one level of selected content: plain fields in document
// order, type-conditional cases, and the names of spread fragments whose
// field sets merge in at this level.
type SelectionSet struct {
	Fields    []Field    // Plain fields, document order
	TypeCases []TypeCase // Selections qualified by a concrete type name
	Spreads   []string   // Spread fragment names, document order, deduplicated
}

// IsEmpty reports whether the selection selects nothing at all.
func (s SelectionSet) IsEmpty() bool {
	return len(s.Fields) == 0 && len(s.TypeCases) == 0 && len(s.Spreads) == 0
}

// TypeCase is a sub-selection applying only when the concrete runtime type
// matches OnType.
type TypeCase struct {
	OnType    string
	Selection SelectionSet
}

// Field is a single selected field. A field with a non-empty selection is
// object-valued; its selection describes the shape of a generated
// sub-model.
type Field struct {
	Name              string       // Field name as declared in the schema
	Alias             string       // Response alias, empty when none was written
	Deprecated        bool         // Explicit deprecation on the selection itself
	DeprecationReason string       // Reason attached to the explicit marker
	Selection         SelectionSet // Sub-selection, empty for leaf fields
}

// Key returns the response key the field materializes under: the alias when
// present, the field name otherwise.
func (f Field) Key() string {
	if f.Alias != "" {
		return f.Alias
	}

	return f.Name
}

// Index builds a name lookup over a fragment list.
func Index(frags []*Fragment) map[string]*Fragment {
	out := make(map[string]*Fragment, len(frags))

	for _, f := range frags {
		out[f.Name] = f
	}

	return out
}
