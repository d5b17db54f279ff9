package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONExporter implements Exporter by writing indented JSON files into a
// directory
type JSONExporter struct {
	dir string
	mu  sync.Mutex
}

// NewJSONExporter creates an exporter that writes into dir, creating the
// directory if needed
func NewJSONExporter(dir string) (*JSONExporter, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &JSONExporter{dir: dir}, nil
}

// Dir returns the directory exports are written to
func (e *JSONExporter) Dir() string {
	return e.dir
}

// Export writes doc to <dir>/tasks_<date>.json, replacing any export from
// the same day
func (e *JSONExporter) Export(doc *ExportDocument) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("nothing to export")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}

	path := filepath.Join(e.dir, doc.FileName())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

// ReadExport decodes a previously written export file
func ReadExport(path string) (*ExportDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode export %s: %w", path, err)
	}
	return &doc, nil
}
