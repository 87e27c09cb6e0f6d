package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/common"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/config"
)

// modelSuffix terminates every derived model name. Custom name mappings
// are used verbatim and may omit it.
const modelSuffix = "Model"

// Registry tracks every model name claimed during one generation run.
// It is the run's only shared state: a fresh registry per run keeps runs
// independent and repeatable.
type Registry struct {
	cfg     *config.Config
	entries map[string]*regEntry
}

type regEntry struct {
	fingerprint string
	uses        int
	children    map[string]bool
}

// NewRegistry builds an empty registry bound to the run's config.
func NewRegistry(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Registry{
		cfg:     cfg,
		entries: make(map[string]*regEntry),
	}
}

// CanonicalName derives the unqualified model name for a fragment or
// field. Custom mappings win, consulted by the source name first and the
// resolved base type name second; otherwise the name is capitalized and
// suffixed.
func (r *Registry) CanonicalName(name, baseType string) string {
	if mapped, ok := r.cfg.CustomModelNameMappings[name]; ok {
		return mapped
	}

	if baseType != "" {
		if mapped, ok := r.cfg.CustomModelNameMappings[baseType]; ok {
			return mapped
		}
	}

	return common.Capitalize(name) + modelSuffix
}

// QualifiedName scopes a canonical name under its parent model by
// prefixing the parent's name minus the suffix. Shapes claimed under
// different parents never contend for one name.
func QualifiedName(parent, canonical string) string {
	if parent == "" {
		return canonical
	}

	return strings.TrimSuffix(parent, modelSuffix) + canonical
}

// Register claims a name for a shape with the given structural
// fingerprint. The first claim creates the entry and reports created.
// Re-claiming with the same fingerprint is idempotent: the shape is
// already declared, only the use count grows. A different fingerprint is
// a naming collision and fails.
func (r *Registry) Register(name, fingerprint string) (bool, error) {
	e, ok := r.entries[name]
	if !ok {
		r.entries[name] = &regEntry{fingerprint: fingerprint, uses: 1}

		return true, nil
	}

	if e.fingerprint != fingerprint {
		return false, fmt.Errorf("model name %q is already taken by a structurally different shape", name)
	}

	e.uses++

	return false, nil
}

// RecordChild links a child shape under its parent. Recorded for every
// reference, including deduplicated ones.
func (r *Registry) RecordChild(parent, child string) {
	if parent == "" {
		return
	}

	e, ok := r.entries[parent]
	if !ok {
		return
	}

	if e.children == nil {
		e.children = make(map[string]bool)
	}

	e.children[child] = true
}

// Uses returns how many times the name has been claimed so far.
func (r *Registry) Uses(name string) int {
	e, ok := r.entries[name]
	if !ok {
		return 0
	}

	return e.uses
}

// Children returns the sorted child shape names recorded under a parent.
func (r *Registry) Children(parent string) []string {
	e, ok := r.entries[parent]
	if !ok || len(e.children) == 0 {
		return nil
	}

	out := make([]string, 0, len(e.children))
	for name := range e.children {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// ScopeFor applies the nested-model policy to one shape. Roots are
// always top level, a depth cap forces hoisting, and the Mixed policy
// hoists shapes claimed more than once.
func (r *Registry) ScopeFor(name string, depth int) Scope {
	if depth == 0 {
		return ScopeTopLevel
	}

	if r.cfg.MaxNestedDepth > 0 && depth > r.cfg.MaxNestedDepth {
		return ScopeTopLevel
	}

	switch r.cfg.NestedModelBehavior {
	case config.BehaviorNested:
		return ScopeNested
	case config.BehaviorMixed:
		if r.Uses(name) > 1 {
			return ScopeTopLevel
		}

		return ScopeNested
	default:
		return ScopeTopLevel
	}
}
