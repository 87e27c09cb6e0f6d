package model

import (
	"fmt"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/common"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/config"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/diagnostic"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/resolve"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/scalars"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/schema"
)

// Diagnostic codes emitted during assembly.
const (
	codeInvalidIdentifier = "invalid_identifier"
	codeNamingCollision   = "naming_collision"
	codeUnknownScalar     = "unknown_scalar"
)

// Assembler turns resolved fragments into model trees. It shares one
// registry across a run so model names deduplicate between fragments.
type Assembler struct {
	scalars *scalars.Resolver
	reg     *Registry
	cfg     *config.Config
}

// NewAssembler wires an assembler from the run's scalar resolver, name
// registry and config. Nil collaborators fall back to defaults built
// from the config.
func NewAssembler(sc *scalars.Resolver, reg *Registry, cfg *config.Config) *Assembler {
	if cfg == nil {
		cfg = config.Default()
	}

	if sc == nil {
		sc = scalars.NewResolver(cfg.CustomScalarMappings)
	}

	if reg == nil {
		reg = NewRegistry(cfg)
	}

	return &Assembler{scalars: sc, reg: reg, cfg: cfg}
}

// Registry exposes the assembler's name registry, mainly so callers can
// share it across assemblers or inspect claims afterwards.
func (a *Assembler) Registry() *Registry {
	return a.reg
}

// Assemble turns one resolved fragment into its model tree. The two
// fatal conditions, an invalid generated identifier and a name collision
// between structurally different shapes, abort this fragment only;
// everything else lands in the returned diagnostics while assembly
// continues.
func (a *Assembler) Assemble(rf *resolve.ResolvedFragment) (*Tree, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	rootName := a.reg.CanonicalName(rf.Name, rf.OnType)
	if !common.IsValidIdent(rootName) {
		diags.AddError(codeInvalidIdentifier,
			fmt.Sprintf("fragment %q produces invalid model name %q", rf.Name, rootName),
			rf.Name, "")

		return nil, diags, diags.Error()
	}

	tree := &Tree{Fragment: rf.Name, OnType: rf.OnType, Root: rootName}
	b := &treeBuilder{a: a, tree: tree, frag: rf.Name, diags: diags}

	if err := b.addShape(rootName, "", rf.OnType, rf.Shape, 0); err != nil {
		return nil, diags, err
	}

	if err := b.sortShapes(); err != nil {
		return nil, diags, err
	}

	return tree, diags, nil
}

// treeBuilder accumulates shapes for a single fragment's tree.
type treeBuilder struct {
	a     *Assembler
	tree  *Tree
	frag  string
	diags *diagnostic.Diagnostics
}

// addShape claims a name for the resolved shape and, when the claim is
// new, builds its members and appends it to the tree. Children are added
// before their parent, so the tree grows roughly in dependency order
// already; sortShapes makes that exact.
func (b *treeBuilder) addShape(name, parent, onType string, rs *resolve.ResolvedShape, depth int) error {
	created, err := b.a.reg.Register(name, Fingerprint(rs))
	if err != nil {
		b.diags.AddError(codeNamingCollision, err.Error(), b.frag, "")

		return b.diags.Error()
	}

	b.a.reg.RecordChild(parent, name)

	if !created {
		// Same name, same structure: the earlier claim's declaration
		// serves this reference too.
		return nil
	}

	shape := &Shape{
		Name:     name,
		Kind:     shapeKind(rs.Kind),
		Depth:    depth,
		OnType:   onType,
		Fragment: b.frag,
	}

	seen := make(map[string]string)

	if shape.Kind == ShapeVariant {
		shape.Discriminant = rs.Discriminant

		target, _ := b.a.scalars.Map("String", false, false)
		shape.Members = append(shape.Members, Member{
			Name: "Typename",
			Key:  rs.Discriminant,
			Type: MemberType{Kind: MemberScalar, Scalar: target},
		})
		seen["Typename"] = rs.Discriminant
	}

	for _, f := range rs.Fields {
		m, err := b.buildMember(name, f, depth)
		if err != nil {
			return err
		}

		if prev, ok := seen[m.Name]; ok {
			b.diags.AddError(codeNamingCollision,
				fmt.Sprintf("fields %q and %q both map to member %s of %s", prev, m.Key, m.Name, name),
				b.frag, m.Key)

			return b.diags.Error()
		}

		seen[m.Name] = m.Key
		shape.Members = append(shape.Members, m)
	}

	for _, v := range rs.Variants {
		canonical := b.a.reg.CanonicalName(v.OnType, v.OnType)
		if !common.IsValidIdent(canonical) {
			b.diags.AddError(codeInvalidIdentifier,
				fmt.Sprintf("type condition %q produces invalid model name %q", v.OnType, canonical),
				b.frag, "")

			return b.diags.Error()
		}

		child := QualifiedName(name, canonical)
		if err := b.addShape(child, name, v.OnType, v.Shape, depth+1); err != nil {
			return err
		}

		// The variant accessor the emitter will generate competes for
		// the same member namespace.
		asName := "As" + common.Capitalize(v.OnType)
		if prev, ok := seen[asName]; ok {
			b.diags.AddError(codeNamingCollision,
				fmt.Sprintf("field %q and variant %q both map to member %s of %s", prev, v.OnType, asName, name),
				b.frag, "")

			return b.diags.Error()
		}

		seen[asName] = v.OnType
		shape.Variants = append(shape.Variants, VariantRef{OnType: v.OnType, Ref: child})
	}

	shape.Scope = b.a.reg.ScopeFor(name, depth)
	b.tree.Shapes = append(b.tree.Shapes, shape)

	return nil
}

// buildMember maps one resolved field to a generated member, recursing
// into nested shapes.
func (b *treeBuilder) buildMember(parentShape string, f resolve.ResolvedField, depth int) (Member, error) {
	m := Member{
		Name:              common.Capitalize(f.Key),
		Key:               f.Key,
		Deprecated:        f.Deprecated,
		DeprecationReason: f.DeprecationReason,
		Description:       f.Description,
	}

	if !common.IsValidIdent(m.Name) {
		b.diags.AddError(codeInvalidIdentifier,
			fmt.Sprintf("field %q produces invalid member name %q", f.Key, m.Name),
			b.frag, f.Key)

		return Member{}, b.diags.Error()
	}

	if f.Shape == nil {
		target, known := b.a.scalars.MapRef(f.Type)
		if !known && !f.Enum && !f.Unresolved {
			b.diags.AddWarning(codeUnknownScalar,
				fmt.Sprintf("no mapping for scalar %q, using string", f.Type.BaseName()),
				b.frag, f.Key)
		}

		m.Type = MemberType{Kind: MemberScalar, Scalar: target}

		return m, nil
	}

	base := ""
	if !f.Unresolved {
		base = f.Type.BaseName()
	}

	canonical := b.a.reg.CanonicalName(f.Key, base)
	if !common.IsValidIdent(canonical) {
		b.diags.AddError(codeInvalidIdentifier,
			fmt.Sprintf("field %q produces invalid model name %q", f.Key, canonical),
			b.frag, f.Key)

		return Member{}, b.diags.Error()
	}

	child := QualifiedName(parentShape, canonical)
	if err := b.addShape(child, parentShape, base, f.Shape, depth+1); err != nil {
		return Member{}, err
	}

	if f.Unresolved {
		// The selection fixes the shape, but without schema help the
		// wrapper is unknowable. A single optional reference is the
		// conservative reading.
		m.Type = MemberType{Kind: MemberShape, Ref: child, Optional: true}

		return m, nil
	}

	m.Type = refMemberType(f.Type, child)

	return m, nil
}

// refMemberType rebuilds a schema type's list and nullability structure
// around a shape reference.
func refMemberType(t schema.TypeRef, ref string) MemberType {
	if t.List {
		mt := MemberType{Kind: MemberList, Optional: t.Nullable}

		var elem MemberType
		if t.Elem != nil {
			elem = refMemberType(*t.Elem, ref)
		} else {
			elem = MemberType{Kind: MemberShape, Ref: ref}
		}

		mt.Elem = &elem

		return mt
	}

	return MemberType{Kind: MemberShape, Ref: ref, Optional: t.Nullable}
}

// sortShapes rewrites the tree's shape slice into exact dependency
// order: every shape after the shapes its members reference.
func (b *treeBuilder) sortShapes() error {
	idx := make(map[string]int, len(b.tree.Shapes))
	for i, s := range b.tree.Shapes {
		idx[s.Name] = i
	}

	deps := func(i int) []int {
		var out []int

		for _, m := range b.tree.Shapes[i].Members {
			for t := &m.Type; t != nil; t = t.Elem {
				if t.Kind != MemberShape {
					continue
				}

				if j, ok := idx[t.Ref]; ok {
					out = append(out, j)
				}
			}
		}

		for _, v := range b.tree.Shapes[i].Variants {
			if j, ok := idx[v.Ref]; ok {
				out = append(out, j)
			}
		}

		return out
	}

	order, err := topoSortShapes(len(b.tree.Shapes), deps)
	if err != nil {
		return fmt.Errorf("ordering shapes for %s: %w", b.tree.Fragment, err)
	}

	sorted := make([]*Shape, 0, len(b.tree.Shapes))
	for _, i := range order {
		sorted = append(sorted, b.tree.Shapes[i])
	}

	b.tree.Shapes = sorted

	return nil
}

func shapeKind(k resolve.ShapeKind) ShapeKind {
	if k == resolve.ShapeDiscriminatedUnion {
		return ShapeVariant
	}

	return ShapeRecord
}
