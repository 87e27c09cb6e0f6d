package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/common"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/config"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/match"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/model"
)

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateDocComments enables doc comments on generated types.
	GenerateDocComments bool
	// IncludeFieldDescriptions copies schema descriptions onto members.
	IncludeFieldDescriptions bool
	// EmitGetters additionally emits value-receiver getters per member.
	EmitGetters bool
	// EmitValidators emits a Validate method checking required members.
	EmitValidators bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		PackageName:         "models",
		OutputDir:           "./models",
		GenerateDocComments: true,
	}
}

// RunConfig derives generator settings from the run configuration.
func RunConfig(cfg *config.Config, outDir string) Config {
	return Config{
		PackageName:              cfg.Namespace,
		OutputDir:                outDir,
		GenerateDocComments:      cfg.GenerateDocComments,
		IncludeFieldDescriptions: cfg.IncludeFieldDescriptions,
		EmitGetters:              cfg.EmitImmutableValueTypes,
		EmitValidators:           cfg.ValidateNonNullableFields,
	}
}

// Generator renders model trees into Go source files.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "article_card_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Filename returns the output file name for a fragment.
func Filename(fragment string) string {
	return match.SnakeCase(fragment) + "_gen.go"
}

// templateData holds all data needed for the model file template.
type templateData struct {
	PackageName string
	Decls       []string
}

// Generate renders one fragment's model tree into a source file. A tree
// whose shapes were all claimed by earlier fragments produces no file
// and returns nil.
func (g *Generator) Generate(tree *model.Tree) (*GeneratedFile, error) {
	data := &templateData{PackageName: g.config.PackageName}

	for _, s := range tree.Shapes {
		if s.Scope != model.ScopeTopLevel {
			continue
		}

		data.Decls = append(data.Decls, g.buildShapeDecl(tree, s))

		if g.config.EmitGetters {
			data.Decls = append(data.Decls, g.buildGetters(tree, s)...)
		}

		if g.config.EmitValidators {
			data.Decls = append(data.Decls, g.buildValidate(s))
		}
	}

	if common.IsEmpty(data.Decls) {
		return nil, nil
	}

	filename := Filename(tree.Fragment)

	var buf bytes.Buffer
	if err := modelFileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// goimports both formats and fixes the import block, so scalar
	// mappings like time.Time come with their imports attached.
	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// GenerateAll renders every tree, skipping the empty ones.
func (g *Generator) GenerateAll(trees []*model.Tree) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, tree := range trees {
		file, err := g.Generate(tree)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", tree.Fragment, err)
		}

		if file != nil {
			files = append(files, *file)
		}
	}

	return files, nil
}

// buildShapeDecl renders one top-level shape as a struct declaration.
func (g *Generator) buildShapeDecl(tree *model.Tree, s *model.Shape) string {
	var b strings.Builder

	if g.config.GenerateDocComments {
		b.WriteString("// " + shapeDoc(s) + "\n")

		if s.Kind == model.ShapeVariant {
			b.WriteString("// The concrete variant is selected by Typename.\n")
		}
	}

	fmt.Fprintf(&b, "type %s struct {\n", s.Name)
	g.writeMembers(&b, tree, s)
	b.WriteString("}\n")

	return b.String()
}

// writeMembers renders the member lines of a shape, shared between named
// declarations and inline structs.
func (g *Generator) writeMembers(b *strings.Builder, tree *model.Tree, s *model.Shape) {
	for _, m := range s.Members {
		for _, line := range g.memberDocLines(m) {
			b.WriteString("\t// " + line + "\n")
		}

		fmt.Fprintf(b, "\t%s %s `json:%q`\n", m.Name, g.memberType(tree, m.Type), m.Key)
	}

	for _, v := range s.Variants {
		if g.config.GenerateDocComments {
			fmt.Fprintf(b, "\t// As%s is set when Typename is %q.\n", common.Capitalize(v.OnType), v.OnType)
		}

		fmt.Fprintf(b, "\tAs%s *%s `json:\"-\"`\n", common.Capitalize(v.OnType), g.shapeExpr(tree, v.Ref))
	}
}

// memberDocLines collects the doc comment lines for one member.
func (g *Generator) memberDocLines(m model.Member) []string {
	var lines []string

	if g.config.IncludeFieldDescriptions && m.Description != "" {
		for _, line := range strings.Split(strings.TrimSpace(m.Description), "\n") {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	if m.Deprecated {
		reason := m.DeprecationReason
		if reason == "" {
			reason = "marked deprecated in the source document."
		}

		lines = append(lines, "Deprecated: "+reason)
	}

	return lines
}

// memberType renders a member's Go type expression.
func (g *Generator) memberType(tree *model.Tree, mt model.MemberType) string {
	switch mt.Kind {
	case model.MemberScalar:
		return mt.Scalar.String()
	case model.MemberList:
		if mt.Elem == nil {
			return "[]interface{}"
		}

		return "[]" + g.memberType(tree, *mt.Elem)
	case model.MemberShape:
		expr := g.shapeExpr(tree, mt.Ref)
		if mt.Optional {
			return "*" + expr
		}

		return expr
	default:
		return "interface{}"
	}
}

// shapeExpr resolves a shape reference to a type expression: the name
// for hoisted shapes and shapes declared by earlier fragments, an inline
// anonymous struct for nested ones.
func (g *Generator) shapeExpr(tree *model.Tree, ref string) string {
	s := tree.Shape(ref)
	if s == nil || s.Scope == model.ScopeTopLevel {
		return ref
	}

	var b strings.Builder
	b.WriteString("struct {\n")
	g.writeMembers(&b, tree, s)
	b.WriteString("}")

	return b.String()
}

// buildGetters renders one value-receiver getter per member.
func (g *Generator) buildGetters(tree *model.Tree, s *model.Shape) []string {
	out := make([]string, 0, len(s.Members))

	for _, m := range s.Members {
		var b strings.Builder

		if g.config.GenerateDocComments {
			fmt.Fprintf(&b, "// Get%s returns the %s member.\n", m.Name, m.Name)
		}

		fmt.Fprintf(&b, "func (m %s) Get%s() %s {\n\treturn m.%s\n}\n",
			s.Name, m.Name, g.memberType(tree, m.Type), m.Name)

		out = append(out, b.String())
	}

	return out
}

// buildValidate renders the Validate method: the discriminant must be
// set on variant shapes and required lists must be non-nil.
func (g *Generator) buildValidate(s *model.Shape) string {
	var b strings.Builder

	if g.config.GenerateDocComments {
		fmt.Fprintf(&b, "// Validate checks that required members of %s are present.\n", s.Name)
	}

	fmt.Fprintf(&b, "func (m %s) Validate() error {\n", s.Name)

	if s.Kind == model.ShapeVariant {
		fmt.Fprintf(&b, "\tif m.Typename == \"\" {\n\t\treturn errors.New(%q)\n\t}\n",
			s.Name+".Typename: discriminant is missing")
	}

	for _, m := range s.Members {
		if !requiredList(m.Type) {
			continue
		}

		fmt.Fprintf(&b, "\tif m.%s == nil {\n\t\treturn errors.New(%q)\n\t}\n",
			m.Name, fmt.Sprintf("%s.%s: required list is missing", s.Name, m.Name))
	}

	b.WriteString("\treturn nil\n}\n")

	return b.String()
}

// requiredList reports whether the member renders as a slice that the
// source type marks non-nullable.
func requiredList(mt model.MemberType) bool {
	switch mt.Kind {
	case model.MemberList:
		return !mt.Optional
	case model.MemberScalar:
		return mt.Scalar.List && !mt.Scalar.Optional
	default:
		return false
	}
}

// shapeDoc is the one-line doc comment for a generated type.
func shapeDoc(s *model.Shape) string {
	if s.OnType != "" {
		return fmt.Sprintf("%s is generated from fragment %s on %s.", s.Name, s.Fragment, s.OnType)
	}

	return fmt.Sprintf("%s is generated from fragment %s.", s.Name, s.Fragment)
}

// Template for the model file.

var modelFileTemplate = template.Must(template.New("models").Parse(`// Code generated by graphql-sourcegen. DO NOT EDIT.

package {{.PackageName}}
{{range .Decls}}
{{.}}{{end}}`))
