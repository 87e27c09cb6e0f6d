package main

import (
	"errors"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/config"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/diagnostic"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/fragment"
	"github.com/grounzero/graphql-sourcegen-sub001/internal/schema"
)

// newRunID tags one CLI invocation in the logs, so interleaved runs in CI
// output stay attributable.
func newRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// loadConfig reads the configuration file. The default file may be
// absent, in which case defaults apply; an explicitly given path must
// exist.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			slog.Debug("no configuration file, using defaults", "path", path)

			return config.Default(), nil
		}

		return nil, err
	}

	slog.Debug("configuration loaded", "path", path)

	return cfg, nil
}

// loadSchema merges the schema files into one index. No files means
// schema-less generation and a nil index.
func loadSchema(paths []string) (*schema.Schema, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	return schema.Load(paths)
}

// loadFragments parses the fragment documents and sorts the fragments by
// name, so name claims and dedup decisions are deterministic run to run.
func loadFragments(paths []string) ([]*fragment.Fragment, *diagnostic.Diagnostics, error) {
	frags, diags, err := fragment.LoadDocuments(paths)
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(frags, func(i, j int) bool { return frags[i].Name < frags[j].Name })

	return frags, diags, nil
}

// logDiagnostics reports recoverable diagnostics through the structured
// logger: warnings at warn level, infos at debug level.
func logDiagnostics(diags *diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		slog.Warn(d.Message, diagAttrs(d)...)
	}

	for _, d := range diags.Infos {
		slog.Debug(d.Message, diagAttrs(d)...)
	}
}

func diagAttrs(d diagnostic.Diagnostic) []any {
	attrs := []any{"code", d.Code}

	if d.Fragment != "" {
		attrs = append(attrs, "fragment", d.Fragment)
	}

	if d.FieldPath != "" {
		attrs = append(attrs, "path", d.FieldPath)
	}

	if len(d.Suggestions) > 0 {
		attrs = append(attrs, "suggestions", strings.Join(d.Suggestions, ", "))
	}

	return attrs
}
