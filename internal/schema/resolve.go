package schema

// ResolveField resolves a field against the named parent type.
//
// Lookup order:
//  1. An object type declaring the field directly wins.
//  2. Otherwise the object's interfaces are consulted in declaration order.
//  3. An interface returns its own declaration.
//  4. A union resolves the field in every possible type, left to right; the
//     field must be present everywhere and all declarations must be
//     compatible, with the first declaration acting as the representative.
func (s *Schema) ResolveField(typeName, fieldName string) (FieldDef, bool) {
	if s == nil {
		return FieldDef{}, false
	}

	if obj, ok := s.Objects[typeName]; ok {
		if fd, ok := obj.Fields[fieldName]; ok {
			return fd, true
		}

		for _, ifaceName := range obj.Interfaces {
			if fd, ok := s.ResolveField(ifaceName, fieldName); ok {
				return fd, true
			}
		}

		return FieldDef{}, false
	}

	if iface, ok := s.Interfaces[typeName]; ok {
		fd, ok := iface.Fields[fieldName]

		return fd, ok
	}

	if u, ok := s.Unions[typeName]; ok {
		return s.resolveUnionField(u, fieldName)
	}

	return FieldDef{}, false
}

// resolveUnionField computes the union's common field. The first possible
// type's declaration is the representative and the first operand of every
// compatibility comparison; a field missing from any branch means the union
// has no such common field.
func (s *Schema) resolveUnionField(u *UnionDef, fieldName string) (FieldDef, bool) {
	var rep FieldDef

	found := false

	for _, typeName := range u.PossibleTypes {
		fd, ok := s.ResolveField(typeName, fieldName)
		if !ok {
			return FieldDef{}, false
		}

		if !found {
			rep = fd
			found = true

			continue
		}

		if !s.Compatible(rep.Type, fd.Type) {
			return FieldDef{}, false
		}
	}

	return rep, found
}
