package schema

import (
	"fmt"
	"os"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Load reads and parses the schema definition files into a Schema index.
// An empty path list returns a nil Schema, which callers treat as
// schema-less generation.
func Load(paths []string) (*Schema, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	sources := make([]*ast.Source, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading schema file: %w", err)
		}

		sources = append(sources, &ast.Source{Name: path, Input: string(data)})
	}

	return Parse(sources...)
}

// Parse builds a Schema index from schema-definition-language sources.
// Multiple sources merge into one index.
func Parse(sources ...*ast.Source) (*Schema, error) {
	doc, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	return fromAST(doc), nil
}

// fromAST converts the parsed schema document into the index form.
func fromAST(doc *ast.Schema) *Schema {
	s := New()

	for name, def := range doc.Types {
		if def.BuiltIn {
			continue
		}

		switch def.Kind {
		case ast.Object:
			s.Objects[name] = &ObjectDef{
				Name:        name,
				Interfaces:  def.Interfaces,
				Fields:      fieldsFromAST(def.Fields),
				Description: def.Description,
			}
		case ast.Interface:
			s.Interfaces[name] = &InterfaceDef{
				Name:        name,
				Fields:      fieldsFromAST(def.Fields),
				Description: def.Description,
			}
		case ast.Union:
			s.Unions[name] = &UnionDef{
				Name:          name,
				PossibleTypes: def.Types,
				Description:   def.Description,
			}
		case ast.Enum:
			s.Enums[name] = &EnumDef{Name: name, Description: def.Description}
		case ast.InputObject:
			s.Inputs[name] = &InputDef{Name: name, Description: def.Description}
		case ast.Scalar:
			s.Scalars[name] = &ScalarDef{Name: name, Description: def.Description}
		}
	}

	return s
}

// fieldsFromAST converts a field definition list, skipping introspection
// fields.
func fieldsFromAST(fields ast.FieldList) map[string]FieldDef {
	out := make(map[string]FieldDef, len(fields))

	for _, f := range fields {
		deprecated, reason := deprecationFromDirectives(f.Directives)

		out[f.Name] = FieldDef{
			Name:              f.Name,
			Type:              TypeRefFromAST(f.Type),
			Deprecated:        deprecated,
			DeprecationReason: reason,
			Description:       f.Description,
		}
	}

	return out
}

// TypeRefFromAST converts a parser type node into a TypeRef.
func TypeRefFromAST(t *ast.Type) TypeRef {
	if t == nil {
		return TypeRef{}
	}

	if t.NamedType != "" {
		return TypeRef{Name: t.NamedType, Nullable: !t.NonNull}
	}

	elem := TypeRefFromAST(t.Elem)

	return TypeRef{List: true, Nullable: !t.NonNull, Elem: &elem}
}

// deprecationFromDirectives extracts the deprecation marker and its reason.
func deprecationFromDirectives(directives ast.DirectiveList) (bool, string) {
	d := directives.ForName("deprecated")
	if d == nil {
		return false, ""
	}

	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		return true, arg.Value.Raw
	}

	return true, ""
}
