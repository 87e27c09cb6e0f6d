package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/model"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/scalars"
)

func stringMember(optional bool) model.MemberType {
	return model.MemberType{
		Kind:   model.MemberScalar,
		Scalar: scalars.TargetType{Name: "string", Kind: scalars.KindString, Optional: optional},
	}
}

// cardTree is a two-shape record tree: a root with scalar members, a list
// and a reference to a nested author shape.
func cardTree() *model.Tree {
	author := &model.Shape{
		Name:     "ArticleCardAuthorModel",
		Scope:    model.ScopeTopLevel,
		Kind:     model.ShapeRecord,
		Depth:    1,
		OnType:   "Author",
		Fragment: "ArticleCard",
		Members: []model.Member{
			{Name: "Name", Key: "name", Type: stringMember(false)},
			{Name: "Email", Key: "email", Type: stringMember(true)},
		},
	}

	root := &model.Shape{
		Name:     "ArticleCardModel",
		Scope:    model.ScopeTopLevel,
		Kind:     model.ShapeRecord,
		Depth:    0,
		OnType:   "Article",
		Fragment: "ArticleCard",
		Members: []model.Member{
			{Name: "Id", Key: "id", Type: stringMember(false)},
			{Name: "Title", Key: "title", Type: stringMember(false)},
			{Name: "PublishedAt", Key: "publishedAt", Type: model.MemberType{
				Kind:   model.MemberScalar,
				Scalar: scalars.TargetType{Name: "time.Time", Kind: scalars.KindCustom, Optional: true},
			}},
			{Name: "Tags", Key: "tags", Type: model.MemberType{
				Kind: model.MemberScalar,
				Scalar: scalars.TargetType{
					List: true,
					Elem: &scalars.TargetType{Name: "string", Kind: scalars.KindString},
				},
			}},
			{Name: "Author", Key: "author", Type: model.MemberType{
				Kind: model.MemberShape,
				Ref:  "ArticleCardAuthorModel",
			}},
		},
	}

	return &model.Tree{
		Fragment: "ArticleCard",
		OnType:   "Article",
		Root:     "ArticleCardModel",
		Shapes:   []*model.Shape{author, root},
	}
}

// searchTree is a discriminated variant tree over a two-member union.
func searchTree() *model.Tree {
	article := &model.Shape{
		Name:     "SearchPartsArticleModel",
		Scope:    model.ScopeTopLevel,
		Kind:     model.ShapeRecord,
		Depth:    1,
		OnType:   "Article",
		Fragment: "SearchParts",
		Members: []model.Member{
			{Name: "Body", Key: "body", Type: stringMember(false)},
		},
	}

	video := &model.Shape{
		Name:     "SearchPartsVideoModel",
		Scope:    model.ScopeTopLevel,
		Kind:     model.ShapeRecord,
		Depth:    1,
		OnType:   "Video",
		Fragment: "SearchParts",
		Members: []model.Member{
			{Name: "Duration", Key: "duration", Type: model.MemberType{
				Kind:   model.MemberScalar,
				Scalar: scalars.TargetType{Name: "int", Kind: scalars.KindInt},
			}},
		},
	}

	root := &model.Shape{
		Name:         "SearchPartsModel",
		Scope:        model.ScopeTopLevel,
		Kind:         model.ShapeVariant,
		Depth:        0,
		OnType:       "SearchResult",
		Fragment:     "SearchParts",
		Discriminant: "__typename",
		Members: []model.Member{
			{Name: "Typename", Key: "__typename", Type: stringMember(false)},
			{Name: "Title", Key: "title", Type: stringMember(false)},
		},
		Variants: []model.VariantRef{
			{OnType: "Article", Ref: "SearchPartsArticleModel"},
			{OnType: "Video", Ref: "SearchPartsVideoModel"},
		},
	}

	return &model.Tree{
		Fragment: "SearchParts",
		OnType:   "SearchResult",
		Root:     "SearchPartsModel",
		Shapes:   []*model.Shape{article, video, root},
	}
}

func TestGenerator_Generate_RecordTree(t *testing.T) {
	gen := NewGenerator(Config{PackageName: "models", GenerateDocComments: true})

	file, err := gen.Generate(cardTree())
	require.NoError(t, err)
	require.NotNil(t, file)

	assert.Equal(t, "article_card_gen.go", file.Filename)

	content := string(file.Content)

	assert.True(t, strings.HasPrefix(content, "// Code generated by graphql-sourcegen"))
	assert.Contains(t, content, "package models")
	assert.Contains(t, content, "// ArticleCardModel is generated from fragment ArticleCard on Article.")
	assert.Contains(t, content, "type ArticleCardModel struct")
	assert.Contains(t, content, "type ArticleCardAuthorModel struct")

	// Referenced shapes are declared before their dependents.
	assert.Less(t,
		strings.Index(content, "type ArticleCardAuthorModel"),
		strings.Index(content, "type ArticleCardModel"))

	// goimports resolves the import for the mapped time scalar.
	assert.Contains(t, content, `"time"`)
	assert.Regexp(t, `PublishedAt\s+\*time\.Time`, content)
	assert.Regexp(t, `Tags\s+\[\]string`, content)
	assert.Regexp(t, `Author\s+ArticleCardAuthorModel`, content)
	assert.Contains(t, content, "`json:\"publishedAt\"`")
	assert.Contains(t, content, "`json:\"author\"`")
}

func TestGenerator_Generate_NestedInline(t *testing.T) {
	tree := cardTree()
	tree.Shape("ArticleCardAuthorModel").Scope = model.ScopeNested

	gen := NewGenerator(Config{PackageName: "models"})

	file, err := gen.Generate(tree)
	require.NoError(t, err)

	content := string(file.Content)

	// Nested scope means no standalone declaration, the struct is inlined.
	assert.NotContains(t, content, "type ArticleCardAuthorModel")
	assert.Regexp(t, `Author\s+struct {`, content)
	assert.Regexp(t, `Name\s+string`, content)
	assert.Contains(t, content, "`json:\"author\"`")
}

func TestGenerator_Generate_VariantTree(t *testing.T) {
	gen := NewGenerator(Config{PackageName: "models", GenerateDocComments: true})

	file, err := gen.Generate(searchTree())
	require.NoError(t, err)

	content := string(file.Content)

	assert.Contains(t, content, "// The concrete variant is selected by Typename.")
	assert.Regexp(t, `Typename\s+string`, content)
	assert.Contains(t, content, "`json:\"__typename\"`")
	assert.Regexp(t, `AsArticle\s+\*SearchPartsArticleModel`, content)
	assert.Regexp(t, `AsVideo\s+\*SearchPartsVideoModel`, content)
	assert.Contains(t, content, "`json:\"-\"`")
	assert.Contains(t, content, `// AsArticle is set when Typename is "Article".`)
}

func TestGenerator_Generate_Getters(t *testing.T) {
	gen := NewGenerator(Config{PackageName: "models", EmitGetters: true})

	file, err := gen.Generate(cardTree())
	require.NoError(t, err)

	content := string(file.Content)

	assert.Contains(t, content, "func (m ArticleCardModel) GetTitle() string {")
	assert.Contains(t, content, "func (m ArticleCardModel) GetPublishedAt() *time.Time {")
	assert.Contains(t, content, "func (m ArticleCardAuthorModel) GetName() string {")
	assert.Contains(t, content, "return m.Title")
}

func TestGenerator_Generate_Validators(t *testing.T) {
	gen := NewGenerator(Config{PackageName: "models", EmitValidators: true})

	file, err := gen.Generate(cardTree())
	require.NoError(t, err)

	content := string(file.Content)

	assert.Contains(t, content, "func (m ArticleCardModel) Validate() error {")
	assert.Contains(t, content, "if m.Tags == nil {")
	assert.Contains(t, content, "ArticleCardModel.Tags: required list is missing")
	assert.Contains(t, content, `"errors"`)

	file, err = gen.Generate(searchTree())
	require.NoError(t, err)

	content = string(file.Content)
	assert.Contains(t, content, `if m.Typename == "" {`)
	assert.Contains(t, content, "SearchPartsModel.Typename: discriminant is missing")
}

func TestGenerator_Generate_FieldDescriptions(t *testing.T) {
	tree := cardTree()
	tree.Shape("ArticleCardModel").Members[1].Description = "The display title."
	tree.Shape("ArticleCardModel").Members[0].Deprecated = true
	tree.Shape("ArticleCardModel").Members[0].DeprecationReason = "use slug instead"

	gen := NewGenerator(Config{PackageName: "models", IncludeFieldDescriptions: true})

	file, err := gen.Generate(tree)
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "// The display title.")
	assert.Contains(t, content, "// Deprecated: use slug instead")

	// Descriptions are dropped when the option is off; deprecation is kept.
	gen = NewGenerator(Config{PackageName: "models"})

	file, err = gen.Generate(tree)
	require.NoError(t, err)

	content = string(file.Content)
	assert.NotContains(t, content, "The display title.")
	assert.Contains(t, content, "// Deprecated: use slug instead")
}

func TestGenerator_Generate_EmptyTree(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	// A tree with no shapes of its own (everything deduplicated away)
	// produces no file.
	file, err := gen.Generate(&model.Tree{Fragment: "Dup", Root: "DupModel"})
	require.NoError(t, err)
	assert.Nil(t, file)
}

func TestGenerator_GenerateAll_SkipsEmpty(t *testing.T) {
	gen := NewGenerator(Config{PackageName: "models"})

	files, err := gen.GenerateAll([]*model.Tree{
		cardTree(),
		{Fragment: "Dup", Root: "DupModel"},
	})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "article_card_gen.go", files[0].Filename)
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	gen := NewGenerator(Config{PackageName: "models", GenerateDocComments: true})

	first, err := gen.Generate(cardTree())
	require.NoError(t, err)

	second, err := gen.Generate(cardTree())
	require.NoError(t, err)

	if !assert.Equal(t, first.Content, second.Content) {
		spew.Dump(first.Filename, second.Filename)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		fragment string
		want     string
	}{
		{"ArticleCard", "article_card_gen.go"},
		{"URLParts", "url_parts_gen.go"},
		{"contentParts", "content_parts_gen.go"},
	}

	for _, tt := range tests {
		if got := Filename(tt.fragment); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.fragment, got, tt.want)
		}
	}
}

func TestGenerator_buildShapeDecl_Golden(t *testing.T) {
	tree := cardTree()
	gen := NewGenerator(Config{PackageName: "models", GenerateDocComments: true})

	decl := gen.buildShapeDecl(tree, tree.Shape("ArticleCardModel"))

	g := goldie.New(t)
	g.Assert(t, "article_card_model", []byte(decl))
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	files := []GeneratedFile{
		{Filename: "article_card_gen.go", Content: []byte("package models\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	content, err := os.ReadFile(filepath.Join(dir, "article_card_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package models\n", string(content))
}
