package storage

import (
	"time"

	"github.com/google/uuid"

	"taskdeck/tasks"
)

// ExportDocument is the downloadable snapshot of a task list
type ExportDocument struct {
	ExportID   string       `json:"exportId"`
	ExportDate time.Time    `json:"exportDate"`
	TotalTasks int          `json:"totalTasks"`
	Tasks      []tasks.Task `json:"tasks"`
}

// NewExportDocument wraps a task list with an export id and timestamp
func NewExportDocument(list []tasks.Task, exportedAt time.Time) *ExportDocument {
	if list == nil {
		list = []tasks.Task{}
	}
	return &ExportDocument{
		ExportID:   uuid.New().String(),
		ExportDate: exportedAt.UTC(),
		TotalTasks: len(list),
		Tasks:      list,
	}
}

// FileName returns the file name an export is written to, keyed by the
// export date.
func (d *ExportDocument) FileName() string {
	return "tasks_" + d.ExportDate.Format("2006-01-02") + ".json"
}
