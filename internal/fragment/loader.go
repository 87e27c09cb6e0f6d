package fragment

import (
	"fmt"
	"os"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/diagnostic"
)

// LoadDocuments reads and parses query documents, collecting every fragment
// definition they contain. Operations in the same documents are skipped
// with an info diagnostic. Duplicate fragment names across all documents
// are an error.
func LoadDocuments(paths []string) ([]*Fragment, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	var frags []*Fragment

	seen := make(map[string]string)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, diags, fmt.Errorf("reading document: %w", err)
		}

		parsed, fileDiags, err := Parse(string(data), path)
		diags.Merge(*fileDiags)

		if err != nil {
			return nil, diags, err
		}

		for _, f := range parsed {
			if prev, ok := seen[f.Name]; ok {
				return nil, diags, fmt.Errorf("duplicate fragment %q in %s (first defined in %s)", f.Name, path, prev)
			}

			seen[f.Name] = path
			frags = append(frags, f)
		}
	}

	return frags, diags, nil
}

// Parse extracts fragment definitions from one query document. Full
// document validation is not performed; the text only has to parse.
func Parse(src, filename string) ([]*Fragment, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	doc, err := parser.ParseQuery(&ast.Source{Name: filename, Input: src})
	if err != nil {
		return nil, diags, fmt.Errorf("parsing document: %w", err)
	}

	for _, op := range doc.Operations {
		name := op.Name
		if name == "" {
			name = string(op.Operation)
		}

		diags.AddInfo("operation_ignored",
			fmt.Sprintf("operation %q skipped: only fragments are compiled", name), "", "")
	}

	frags := make([]*Fragment, 0, len(doc.Fragments))

	duplicates := make(map[string]bool)

	for _, fd := range doc.Fragments {
		if duplicates[fd.Name] {
			return nil, diags, fmt.Errorf("duplicate fragment %q in %s", fd.Name, filename)
		}

		duplicates[fd.Name] = true

		frags = append(frags, &Fragment{
			Name:      fd.Name,
			OnType:    fd.TypeCondition,
			Selection: fromSelectionSet(fd.SelectionSet, diags, fd.Name),
		})
	}

	return frags, diags, nil
}

// fromSelectionSet converts a parsed selection set, splitting it into plain
// fields, type cases, and spread names.
func fromSelectionSet(sel ast.SelectionSet, diags *diagnostic.Diagnostics, fragName string) SelectionSet {
	var out SelectionSet

	seenSpreads := make(map[string]bool)

	for _, s := range sel {
		switch node := s.(type) {
		case *ast.Field:
			deprecated, reason := deprecationFromDirectives(node.Directives)

			f := Field{
				Name:              node.Name,
				Deprecated:        deprecated,
				DeprecationReason: reason,
				Selection:         fromSelectionSet(node.SelectionSet, diags, fragName),
			}

			// The parser fills Alias with the field name when the document
			// does not write one; only a real alias is kept.
			if node.Alias != node.Name {
				f.Alias = node.Alias
			}

			out.Fields = append(out.Fields, f)

		case *ast.FragmentSpread:
			if seenSpreads[node.Name] {
				diags.AddInfo("duplicate_spread",
					fmt.Sprintf("fragment %q spread more than once in one selection", node.Name),
					fragName, "")

				continue
			}

			seenSpreads[node.Name] = true
			out.Spreads = append(out.Spreads, node.Name)

		case *ast.InlineFragment:
			out.TypeCases = append(out.TypeCases, TypeCase{
				OnType:    node.TypeCondition,
				Selection: fromSelectionSet(node.SelectionSet, diags, fragName),
			})
		}
	}

	return out
}

// deprecationFromDirectives extracts an explicit deprecation marker written
// on a selection.
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
