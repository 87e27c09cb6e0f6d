package resolve

import (
	"fmt"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/config"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/diagnostic"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/fragment"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/match"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/schema"
)

// Diagnostic codes emitted during field resolution.
const (
	codeUnresolvedField      = "unresolved_field"
	codeUnknownSpread        = "unknown_fragment_spread"
	codeSpreadCycle          = "spread_cycle"
	codeMissingSchema        = "missing_schema"
	codeMissingSelection     = "missing_selection"
	codeUnionFieldNotCommon  = "union_field_not_common"
	codeTypeConditionIgnored = "type_condition_ignored"
)

// discriminantField names the member used to select a variant when a
// polymorphic shape is deserialized.
const discriminantField = "__typename"

// maxSelectionDepth bounds selection recursion. Fragment documents that
// nest deeper than this almost certainly contain a spread cycle routed
// through a field selection, which per-level cycle detection cannot see.
const maxSelectionDepth = 50

// Resolver attaches schema types to fragment selections. One resolver is
// built per generation run and processes fragments sequentially.
type Resolver struct {
	schema    *schema.Schema
	fragments map[string]*fragment.Fragment
	cfg       *config.Config

	schemaNoted bool
}

// NewResolver builds a resolver over the loaded schema and the run's
// fragment index. A nil schema, or a config with schema inference
// disabled, degrades every field lookup to a placeholder.
func NewResolver(s *schema.Schema, fragments map[string]*fragment.Fragment, cfg *config.Config) *Resolver {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Resolver{
		schema:    s,
		fragments: fragments,
		cfg:       cfg,
	}
}

func (r *Resolver) schemaEnabled() bool {
	return r.schema != nil && r.cfg.UseSchemaForTypeInference
}

// Resolve walks one fragment's selection and produces its resolved shape.
// Resolution never aborts: fields the schema cannot explain keep a
// string-like placeholder type and the walk continues.
func (r *Resolver) Resolve(frag *fragment.Fragment) (*ResolvedFragment, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	parent := ""
	if r.schemaEnabled() {
		parent = frag.OnType
	} else if !r.schemaNoted {
		diags.AddInfo(codeMissingSchema, "no schema available, fields resolve to string placeholders", frag.Name, "")
		r.schemaNoted = true
	}

	shape := r.resolveSelection(frag.Selection, parent, frag.Name, "", 0, diags)

	return &ResolvedFragment{
		Name:   frag.Name,
		OnType: frag.OnType,
		Shape:  shape,
	}, diags
}

// resolveSelection resolves one object-valued level. parentType is the
// schema type the selection applies to, or "" when no type information is
// available for this level.
func (r *Resolver) resolveSelection(sel fragment.SelectionSet, parentType, fragName, path string, depth int, diags *diagnostic.Diagnostics) *ResolvedShape {
	if depth > maxSelectionDepth {
		diags.AddWarning(codeSpreadCycle,
			fmt.Sprintf("selection nests deeper than %d levels, possible fragment cycle, truncating", maxSelectionDepth),
			fragName, path)

		return &ResolvedShape{Kind: ShapeRecord}
	}

	chain := map[string]bool{fragName: true}
	fields, cases := r.flatten(sel, fragName, path, chain, diags)

	// Conditions naming the parent itself, or an interface the parent
	// implements, always apply. Their fields fold into the plain list.
	var variantCases []fragment.TypeCase

	for _, tc := range cases {
		if r.caseAppliesDirectly(tc.OnType, parentType) {
			fs, cs := r.flatten(tc.Selection, fragName, path, map[string]bool{fragName: true}, diags)
			fields = mergeFields(fields, fs)
			variantCases = mergeCases(variantCases, cs)

			continue
		}

		variantCases = mergeCases(variantCases, []fragment.TypeCase{tc})
	}

	if len(variantCases) > 0 {
		if r.polymorphicParent(parentType) {
			return r.resolveVariantShape(fields, variantCases, parentType, fragName, path, depth, diags)
		}

		for _, tc := range variantCases {
			diags.AddInfo(codeTypeConditionIgnored,
				fmt.Sprintf("type condition on %q can never match %s, selection dropped", tc.OnType, parentType),
				fragName, path)
		}
	}

	shape := &ResolvedShape{Kind: ShapeRecord}
	for _, f := range fields {
		shape.Fields = append(shape.Fields, r.resolveField(f, parentType, fragName, path, depth, diags))
	}

	return shape
}

// resolveVariantShape builds a discriminated union shape: the implied
// discriminant, the hoisted fields shared by every branch, and one variant
// per explicitly selected type condition.
func (r *Resolver) resolveVariantShape(commonFields []fragment.Field, cases []fragment.TypeCase, parentType, fragName, path string, depth int, diags *diagnostic.Diagnostics) *ResolvedShape {
	shape := &ResolvedShape{
		Kind:         ShapeDiscriminatedUnion,
		Discriminant: discriminantField,
	}

	isUnion := parentType != "" && r.schema.KindOf(parentType) == schema.KindUnion

	for _, f := range commonFields {
		if f.Name == discriminantField {
			// Covered by the discriminant member.
			continue
		}

		if isUnion {
			if _, ok := r.schema.ResolveField(parentType, f.Name); !ok {
				diags.AddInfo(codeUnionFieldNotCommon,
					fmt.Sprintf("field %q is not shared by every possible type of union %s, dropped from the common shape", f.Name, parentType),
					fragName, joinPath(path, f.Key()))

				continue
			}
		}

		shape.Fields = append(shape.Fields, r.resolveField(f, parentType, fragName, path, depth, diags))
	}

	for _, tc := range cases {
		casePath := fmt.Sprintf("%s[%s]", path, tc.OnType)

		variantParent := ""
		if r.schemaEnabled() {
			variantParent = tc.OnType
		}

		shape.Variants = append(shape.Variants, Variant{
			OnType: tc.OnType,
			Shape:  r.resolveSelection(tc.Selection, variantParent, fragName, casePath, depth+1, diags),
		})
	}

	return shape
}

// resolveField types a single field. A schema miss degrades the field to a
// nullable string placeholder instead of failing the run.
func (r *Resolver) resolveField(f fragment.Field, parentType, fragName, path string, depth int, diags *diagnostic.Diagnostics) ResolvedField {
	fieldPath := joinPath(path, f.Key())

	out := ResolvedField{
		Name:              f.Name,
		Key:               f.Key(),
		Deprecated:        f.Deprecated,
		DeprecationReason: f.DeprecationReason,
	}

	found := false

	switch {
	case f.Name == discriminantField:
		out.Type = schema.TypeRef{Name: "String"}
		found = true

	case parentType != "":
		var def schema.FieldDef

		def, found = r.schema.ResolveField(parentType, f.Name)
		if found {
			out.Type = def.Type
			out.Description = def.Description
			out.Enum = r.schema.KindOf(def.Type.BaseName()) == schema.KindEnum

			// An explicit marker on the selection wins over the schema's.
			if !f.Deprecated && def.Deprecated {
				out.Deprecated = true
				out.DeprecationReason = def.DeprecationReason
			}
		} else {
			suggestions := match.SuggestNames(f.Name, r.schema.FieldNames(parentType), match.DefaultMinScore, match.DefaultMaxSuggestions)
			diags.AddWarningWithSuggestions(codeUnresolvedField,
				fmt.Sprintf("field %q does not resolve on type %s, emitting string placeholder", f.Name, parentType),
				fragName, fieldPath, suggestions)
		}
	}

	if !found {
		out.Type = placeholderType()
		out.Unresolved = true
	}

	if f.Selection.IsEmpty() {
		if found && r.schema.IsComposite(out.Type.BaseName()) {
			diags.AddWarning(codeMissingSelection,
				fmt.Sprintf("field %q has object type %s but selects no sub-fields, emitting string placeholder", f.Name, out.Type.BaseName()),
				fragName, fieldPath)

			out.Type = placeholderType()
			out.Unresolved = true
		}

		return out
	}

	childParent := ""
	if found && f.Name != discriminantField {
		childParent = out.Type.BaseName()
	}

	out.Shape = r.resolveSelection(f.Selection, childParent, fragName, fieldPath, depth+1, diags)

	return out
}

// flatten returns the selection's direct fields with every spread inlined,
// plus its type-conditional cases merged by type condition. Spread fields
// come first, then the selection's own fields, deduplicated by response
// key. chain holds the spread names already inlined on this level and
// breaks direct cycles.
func (r *Resolver) flatten(sel fragment.SelectionSet, fragName, path string, chain map[string]bool, diags *diagnostic.Diagnostics) ([]fragment.Field, []fragment.TypeCase) {
	var fields []fragment.Field
	var cases []fragment.TypeCase

	for _, name := range sel.Spreads {
		target, ok := r.fragments[name]
		if !ok {
			diags.AddWarning(codeUnknownSpread,
				fmt.Sprintf("fragment %q is not defined in any loaded document", name),
				fragName, path)

			continue
		}

		if chain[name] {
			diags.AddWarning(codeSpreadCycle,
				fmt.Sprintf("fragment %q spreads into itself, cycle broken", name),
				fragName, path)

			continue
		}

		chain[name] = true
		fs, cs := r.flatten(target.Selection, fragName, path, chain, diags)
		delete(chain, name)

		fields = mergeFields(fields, fs)
		cases = mergeCases(cases, cs)
	}

	fields = mergeFields(fields, sel.Fields)
	cases = mergeCases(cases, sel.TypeCases)

	return fields, cases
}

// caseAppliesDirectly reports whether a type condition is always true for
// the parent, making its fields unconditional.
func (r *Resolver) caseAppliesDirectly(onType, parentType string) bool {
	if parentType == "" {
		return false
	}

	if onType == parentType {
		return true
	}

	return r.schema.KindOf(parentType) == schema.KindObject && r.schema.ImplementsInterface(parentType, onType)
}

// polymorphicParent reports whether type conditions on the parent select
// between runtime types. Unknown parents count: without schema knowledge
// the selection's own structure decides.
func (r *Resolver) polymorphicParent(parentType string) bool {
	if parentType == "" {
		return true
	}

	switch r.schema.KindOf(parentType) {
	case schema.KindUnion, schema.KindInterface, schema.KindUnknown:
		return true
	default:
		return false
	}
}

// mergeFields appends src entries to dst, deduplicating by response key.
// When the same key is selected twice with sub-selections the selections
// merge; everything else keeps the first occurrence.
func mergeFields(dst, src []fragment.Field) []fragment.Field {
	idx := make(map[string]int, len(dst))
	for i, f := range dst {
		idx[f.Key()] = i
	}

	for _, f := range src {
		i, ok := idx[f.Key()]
		if !ok {
			idx[f.Key()] = len(dst)
			dst = append(dst, f)

			continue
		}

		if !f.Selection.IsEmpty() {
			dst[i].Selection = mergeSelections(dst[i].Selection, f.Selection)
		}
	}

	return dst
}

// mergeCases appends src entries to dst, merging selections that share a
// type condition.
func mergeCases(dst, src []fragment.TypeCase) []fragment.TypeCase {
	idx := make(map[string]int, len(dst))
	for i, tc := range dst {
		idx[tc.OnType] = i
	}

	for _, tc := range src {
		i, ok := idx[tc.OnType]
		if !ok {
			idx[tc.OnType] = len(dst)
			dst = append(dst, tc)

			continue
		}

		dst[i].Selection = mergeSelections(dst[i].Selection, tc.Selection)
	}

	return dst
}

func mergeSelections(a, b fragment.SelectionSet) fragment.SelectionSet {
	return fragment.SelectionSet{
		Fields:    append(append([]fragment.Field{}, a.Fields...), b.Fields...),
		TypeCases: append(append([]fragment.TypeCase{}, a.TypeCases...), b.TypeCases...),
		Spreads:   append(append([]string{}, a.Spreads...), b.Spreads...),
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}
