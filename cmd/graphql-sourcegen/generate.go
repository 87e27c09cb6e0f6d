package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/fragment"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/gen"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/model"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/resolve"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/scalars"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	OutDir      string
	SchemaPaths []string
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate [fragment files...]",
		Short: "Generate Go model files from fragment documents",
		Long: `Generate parses the given fragment documents, resolves them against the
configured schema and writes one Go model file per fragment into the
output directory.

A fragment that fails (an invalid generated identifier or a naming
collision) is logged and skipped; the remaining fragments still
generate. The exit code is non-zero when any fragment failed.

Example:
  graphql-sourcegen generate queries/*.graphql --out ./models
  graphql-sourcegen generate fragments.graphql --schema schema.graphql -v`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "./models", "output directory for generated files")
	cmd.Flags().StringArrayVar(&opts.SchemaPaths, "schema", nil, "schema file (repeatable, overrides the configuration)")

	return cmd
}

func runGenerate(opts *GenerateOptions, args []string, cmd *cobra.Command) error {
	runID := newRunID()
	slog.Info("starting generation", "run", runID, "documents", len(args))

	cfg, err := loadConfig(opts.ConfigPath, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	schemaPaths := cfg.SchemaFilePaths
	if len(opts.SchemaPaths) > 0 {
		schemaPaths = opts.SchemaPaths
	}

	idx, err := loadSchema(schemaPaths)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	frags, loadDiags, err := loadFragments(args)
	if err != nil {
		return fmt.Errorf("loading fragments: %w", err)
	}

	logDiagnostics(loadDiags)

	resolver := resolve.NewResolver(idx, fragment.Index(frags), cfg)
	assembler := model.NewAssembler(scalars.NewResolver(cfg.CustomScalarMappings), model.NewRegistry(cfg), cfg)
	generator := gen.NewGenerator(gen.RunConfig(cfg, opts.OutDir))

	var files []gen.GeneratedFile

	failed := 0

	for _, frag := range frags {
		resolved, diags := resolver.Resolve(frag)

		tree, asmDiags, err := assembler.Assemble(resolved)
		diags.Merge(*asmDiags)
		logDiagnostics(diags)

		if err != nil {
			slog.Error("fragment failed", "fragment", frag.Name, "error", err)

			failed++

			continue
		}

		file, err := generator.Generate(tree)
		if err != nil {
			slog.Error("fragment failed", "fragment", frag.Name, "error", err)

			failed++

			continue
		}

		if file == nil {
			slog.Debug("fragment produced no new models", "fragment", frag.Name)

			continue
		}

		files = append(files, *file)
	}

	if len(files) > 0 {
		if err := gen.WriteFiles(files, opts.OutDir); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	slog.Info("generation complete", "run", runID, "files", len(files), "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d fragment(s) failed", failed, len(frags))
	}

	return nil
}
