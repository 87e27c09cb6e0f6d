package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/common"
)

// NestedModelBehavior selects where generated shapes are placed.
type NestedModelBehavior int

const (
	// BehaviorNested keeps every generated shape inside its parent,
	// recursively.
	BehaviorNested NestedModelBehavior = iota
	// BehaviorFlattened hoists every shape to the top level of its
	// owning fragment.
	BehaviorFlattened
	// BehaviorMixed hoists shapes shared by more than one field and keeps
	// single-use shapes nested.
	BehaviorMixed
)

// String returns the configuration spelling of the behavior.
func (b NestedModelBehavior) String() string {
	switch b {
	case BehaviorNested:
		return "nested"
	case BehaviorFlattened:
		return "flattened"
	case BehaviorMixed:
		return "mixed"
	default:
		return common.UnknownStr
	}
}

// ParseNestedModelBehavior parses the configuration spelling of a
// placement behavior.
func ParseNestedModelBehavior(s string) (NestedModelBehavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nested":
		return BehaviorNested, nil
	case "flattened":
		return BehaviorFlattened, nil
	case "mixed":
		return BehaviorMixed, nil
	default:
		return BehaviorNested, fmt.Errorf("unknown nestedModelBehavior %q (want nested, flattened, or mixed)", s)
	}
}

// UnmarshalYAML parses the behavior from its string spelling.
func (b *NestedModelBehavior) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseNestedModelBehavior(s)
	if err != nil {
		return err
	}

	*b = parsed

	return nil
}

// MarshalYAML emits the string spelling.
func (b NestedModelBehavior) MarshalYAML() (any, error) {
	return b.String(), nil
}

// Config enumerates every knob of a generation run.
type Config struct {
	// Namespace is the package name generated files belong to.
	Namespace string `yaml:"namespace"`
	// EmitImmutableValueTypes additionally emits value-receiver getters
	// per member.
	EmitImmutableValueTypes bool `yaml:"emitImmutableValueTypes"`
	// GenerateDocComments emits a doc comment per generated type.
	GenerateDocComments bool `yaml:"generateDocComments"`
	// UseSchemaForTypeInference disables all schema lookups when false,
	// forcing the placeholder path even when a schema is loaded.
	UseSchemaForTypeInference bool `yaml:"useSchemaForTypeInference"`
	// SchemaFilePaths lists the schema definition files merged into one
	// index. Empty means schema-less generation.
	SchemaFilePaths []string `yaml:"schemaFilePaths"`
	// CustomScalarMappings overrides the built-in scalar table, keyed by
	// scalar name.
	CustomScalarMappings map[string]string `yaml:"customScalarMappings"`
	// ValidateNonNullableFields emits a Validate method checking required
	// members.
	ValidateNonNullableFields bool `yaml:"validateNonNullableFields"`
	// IncludeFieldDescriptions copies schema descriptions onto generated
	// members as doc comments.
	IncludeFieldDescriptions bool `yaml:"includeFieldDescriptions"`
	// NestedModelBehavior selects shape placement.
	NestedModelBehavior NestedModelBehavior `yaml:"nestedModelBehavior"`
	// MaxNestedDepth forces shapes deeper than this to hoist regardless of
	// behavior. Zero means unlimited.
	MaxNestedDepth int `yaml:"maxNestedDepth"`
	// CustomModelNameMappings overrides generated shape names, keyed by
	// field or type name.
	CustomModelNameMappings map[string]string `yaml:"customModelNameMappings"`
}

// Default returns the configuration used when keys are absent.
func Default() *Config {
	return &Config{
		Namespace:                 "models",
		GenerateDocComments:       true,
		UseSchemaForTypeInference: true,
		NestedModelBehavior:       BehaviorFlattened,
	}
}

// Validate checks the configuration for values that would make the run
// fail later in less obvious ways.
func (c *Config) Validate() error {
	if !common.IsValidIdent(c.Namespace) {
		return fmt.Errorf("namespace %q is not a legal identifier", c.Namespace)
	}

	if c.MaxNestedDepth < 0 {
		return fmt.Errorf("maxNestedDepth must not be negative, got %d", c.MaxNestedDepth)
	}

	for scalar, target := range c.CustomScalarMappings {
		if scalar == "" || target == "" {
			return fmt.Errorf("customScalarMappings entries must not be empty (%q: %q)", scalar, target)
		}
	}

	for name, model := range c.CustomModelNameMappings {
		if name == "" || !common.IsValidIdent(model) {
			return fmt.Errorf("customModelNameMappings[%q] = %q is not a legal model name", name, model)
		}
	}

	switch c.NestedModelBehavior {
	case BehaviorNested, BehaviorFlattened, BehaviorMixed:
	default:
		return fmt.Errorf("unknown nestedModelBehavior %d", c.NestedModelBehavior)
	}

	return nil
}
