package schema

// Compatible reports whether type reference b can satisfy an expectation of
// type reference a. The check is deliberately asymmetric in nullability:
// when names match, a nullable first operand accepts a non-null second, but
// a non-null first operand rejects a nullable second. Callers relying on
// union common-field resolution must keep the representative declaration as
// the first operand.
func (s *Schema) Compatible(a, b TypeRef) bool {
	if a.List && b.List {
		if a.Elem == nil || b.Elem == nil {
			return false
		}

		return s.Compatible(*a.Elem, *b.Elem)
	}

	if a.List != b.List {
		return false
	}

	if a.Name != b.Name {
		return s.interfaceRelated(a.Name, b.Name)
	}

	if a.Nullable != b.Nullable {
		return a.Nullable
	}

	return true
}

// interfaceRelated reports whether one name is an interface implemented by
// the type the other name denotes, in either direction.
func (s *Schema) interfaceRelated(a, b string) bool {
	return s.ImplementsInterface(b, a) || s.ImplementsInterface(a, b)
}
