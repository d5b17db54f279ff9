package storage

// Exporter defines the interface for writing task exports.
// This allows swapping the JSON file writer for another sink.
type Exporter interface {
	// Export writes doc and returns where it was written
	Export(doc *ExportDocument) (string, error)
}
