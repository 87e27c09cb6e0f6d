package model

import (
	"testing"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/config"
)

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name   string
		source string
		base   string
		want   string
	}{
		{"plain field", "author", "Author", "AuthorModel"},
		{"camel case field", "publishedAt", "DateTime", "PublishedAtModel"},
		{"fragment name", "ArticleCard", "Article", "ArticleCardModel"},
		{"already capitalized", "Author", "Author", "AuthorModel"},
	}

	reg := NewRegistry(config.Default())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reg.CanonicalName(tt.source, tt.base)
			if got != tt.want {
				t.Fatalf("CanonicalName(%q, %q) = %q, want %q", tt.source, tt.base, got, tt.want)
			}
		})
	}
}

func TestCanonicalNameCustomMappings(t *testing.T) {
	cfg := config.Default()
	cfg.CustomModelNameMappings = map[string]string{
		"author": "Writer",
		"Video":  "Clip",
	}

	reg := NewRegistry(cfg)

	if got := reg.CanonicalName("author", "Author"); got != "Writer" {
		t.Errorf("source name mapping: got %q, want Writer", got)
	}

	if got := reg.CanonicalName("clip", "Video"); got != "Clip" {
		t.Errorf("base type mapping: got %q, want Clip", got)
	}

	if got := reg.CanonicalName("title", "String"); got != "TitleModel" {
		t.Errorf("unmapped name: got %q, want TitleModel", got)
	}
}

func TestQualifiedName(t *testing.T) {
	tests := []struct {
		parent    string
		canonical string
		want      string
	}{
		{"", "ArticleCardModel", "ArticleCardModel"},
		{"ArticleCardModel", "AuthorModel", "ArticleCardAuthorModel"},
		{"ArticleCardAuthorModel", "AvatarModel", "ArticleCardAuthorAvatarModel"},
		// A custom-mapped parent without the suffix stays whole.
		{"Writer", "AvatarModel", "WriterAvatarModel"},
	}

	for _, tt := range tests {
		if got := QualifiedName(tt.parent, tt.canonical); got != tt.want {
			t.Errorf("QualifiedName(%q, %q) = %q, want %q", tt.parent, tt.canonical, got, tt.want)
		}
	}
}

func TestRegisterIdempotent(t *testing.T) {
	reg := NewRegistry(config.Default())

	created, err := reg.Register("AuthorModel", "fp1")
	if err != nil || !created {
		t.Fatalf("first claim: created=%v err=%v", created, err)
	}

	created, err = reg.Register("AuthorModel", "fp1")
	if err != nil {
		t.Fatalf("same fingerprint must be idempotent: %v", err)
	}

	if created {
		t.Fatal("second claim must not report created")
	}

	if got := reg.Uses("AuthorModel"); got != 2 {
		t.Fatalf("Uses = %d, want 2", got)
	}
}

func TestRegisterCollision(t *testing.T) {
	reg := NewRegistry(config.Default())

	if _, err := reg.Register("AuthorModel", "fp1"); err != nil {
		t.Fatal(err)
	}

	if _, err := reg.Register("AuthorModel", "fp2"); err == nil {
		t.Fatal("differing fingerprint must collide")
	}
}

func TestRecordChildren(t *testing.T) {
	reg := NewRegistry(config.Default())

	reg.Register("CardModel", "fp")
	reg.RecordChild("CardModel", "CardAuthorModel")
	reg.RecordChild("CardModel", "CardStatsModel")
	reg.RecordChild("CardModel", "CardAuthorModel")

	got := reg.Children("CardModel")
	want := []string{"CardAuthorModel", "CardStatsModel"}

	if len(got) != len(want) {
		t.Fatalf("Children = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Children = %v, want %v", got, want)
		}
	}

	if reg.Children("UnknownModel") != nil {
		t.Fatal("unknown parent must have no children")
	}
}

func TestScopeForPolicies(t *testing.T) {
	tests := []struct {
		name     string
		behavior config.NestedModelBehavior
		maxDepth int
		uses     int
		depth    int
		want     Scope
	}{
		{"root is always top level", config.BehaviorNested, 0, 1, 0, ScopeTopLevel},
		{"nested keeps children inline", config.BehaviorNested, 0, 1, 2, ScopeNested},
		{"flattened hoists everything", config.BehaviorFlattened, 0, 1, 1, ScopeTopLevel},
		{"mixed single use stays inline", config.BehaviorMixed, 0, 1, 1, ScopeNested},
		{"mixed shared shape hoists", config.BehaviorMixed, 0, 2, 1, ScopeTopLevel},
		{"depth cap forces hoisting", config.BehaviorNested, 1, 1, 2, ScopeTopLevel},
		{"within depth cap stays inline", config.BehaviorNested, 2, 1, 2, ScopeNested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.NestedModelBehavior = tt.behavior
			cfg.MaxNestedDepth = tt.maxDepth

			reg := NewRegistry(cfg)
			for i := 0; i < tt.uses; i++ {
				reg.Register("ShapeModel", "fp")
			}

			if got := reg.ScopeFor("ShapeModel", tt.depth); got != tt.want {
				t.Fatalf("ScopeFor depth %d = %v, want %v", tt.depth, got, tt.want)
			}
		})
	}
}
