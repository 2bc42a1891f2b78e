package vsmconfig

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// RenderedFile is a rendered config file for one schema.
type RenderedFile struct {
	// Schema is the schema the config was derived from.
	Schema string
	// Filename is relative to the output directory, e.g. "music/vsmsummary.cfg".
	Filename string
	// Content is the rendered config.
	Content []byte
}

// NewRenderedFile renders cfg for the named schema.
func NewRenderedFile(schemaName string, cfg *Config, format Format) (RenderedFile, error) {
	content, err := Render(cfg, format)
	if err != nil {
		return RenderedFile{}, fmt.Errorf("rendering %s for %s: %w", DefName, schemaName, err)
	}

	return RenderedFile{
		Schema:   schemaName,
		Filename: filepath.Join(schemaName, DefName+format.Ext()),
		Content:  content,
	}, nil
}

// WriteFiles writes all rendered files below the output directory,
// creating directories as needed.
func WriteFiles(files []RenderedFile, outputDir string) error {
	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
