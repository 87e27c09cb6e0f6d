package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated model files to the output directory,
// creating it if needed. Files land side by side in one package
// directory, one per fragment.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// writeDebugUnformatted writes source that failed formatting to a
// sidecar file next to the intended output. Best-effort: generation
// already failed, this must not fail it harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// Keep the .go extension for editor highlighting without colliding
	// with the real output name.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
