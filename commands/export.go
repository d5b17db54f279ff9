package commands

import (
	"errors"

	"taskdeck/storage"
)

var errExportDisabled = errors.New("export is not configured")

func init() {
	Register(&Command{
		Name:        "/export",
		Usage:       "/export",
		Description: "Export all tasks to a JSON file",
		Handler: func(s *Session, args []string) bool {
			list := s.Store.Tasks()
			if len(list) == 0 {
				s.Println("No tasks to export!")
				return false
			}
			if s.Exporter == nil {
				s.printError(errExportDisabled)
				return false
			}

			doc := storage.NewExportDocument(list, s.Store.Now())
			path, err := s.Exporter.Export(doc)
			if err != nil {
				s.printError(err)
				return false
			}

			s.Logger.Info("tasks exported", "path", path, "export_id", doc.ExportID, "count", doc.TotalTasks)
			s.Printf("Exported %s to %s\n", plural(doc.TotalTasks, "task"), path)
			return false
		},
	})
}
