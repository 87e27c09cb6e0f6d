package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/diagnostic"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/fragment"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/model"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/resolve"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/scalars"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Strict      bool
	SchemaPaths []string
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check [fragment files...]",
		Short: "Resolve fragments and report diagnostics without writing files",
		Long: `Check runs the full resolution and naming pipeline and prints every
diagnostic, without generating any code. The exit code is non-zero when
any fragment produced an error, or, with --strict, any warning.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "treat warnings as failures")
	cmd.Flags().StringArrayVar(&opts.SchemaPaths, "schema", nil, "schema file (repeatable, overrides the configuration)")

	return cmd
}

func runCheck(opts *CheckOptions, args []string, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

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

	total := &diagnostic.Diagnostics{}
	total.Merge(*loadDiags)

	resolver := resolve.NewResolver(idx, fragment.Index(frags), cfg)
	assembler := model.NewAssembler(scalars.NewResolver(cfg.CustomScalarMappings), model.NewRegistry(cfg), cfg)

	for _, frag := range frags {
		resolved, diags := resolver.Resolve(frag)
		total.Merge(*diags)

		// The tree is discarded; assembly runs for its naming and
		// collision diagnostics.
		_, asmDiags, _ := assembler.Assemble(resolved)
		total.Merge(*asmDiags)
	}

	printDiagnostics(out, total)

	fmt.Fprintf(out, "%d fragment(s): %d error(s), %d warning(s)\n",
		len(frags), len(total.Errors), len(total.Warnings))

	if total.HasErrors() {
		return fmt.Errorf("check failed: %d error(s)", len(total.Errors))
	}

	if opts.Strict && len(total.Warnings) > 0 {
		return fmt.Errorf("check failed: %d warning(s) in strict mode", len(total.Warnings))
	}

	return nil
}

// printDiagnostics writes every diagnostic to the writer, most severe
// first.
func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	for _, d := range diags.Warnings {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	for _, d := range diags.Infos {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
