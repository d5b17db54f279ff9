package commands

import (
	"fmt"
	"strings"
)

func init() {
	Register(&Command{
		Name:        "/toggleall",
		Usage:       "/toggleall",
		Description: "Complete all pending tasks, or reopen all if none are pending",
		Handler: func(s *Session, args []string) bool {
			if s.Store.Len() == 0 {
				s.Println("No tasks to toggle! Add some tasks first.")
				return false
			}

			changed := s.Store.ToggleAll()
			st := s.Store.Stats()
			s.Logger.Debug("tasks toggled", "changed", changed, "completed", st.Completed)

			if st.Pending == 0 {
				s.Printf("Completed %s.\n", plural(changed, "task"))
			} else {
				s.Printf("Marked %s pending.\n", plural(changed, "task"))
			}
			return false
		},
	})

	Register(&Command{
		Name:        "/clear",
		Usage:       "/clear",
		Description: "Remove all completed tasks after confirmation",
		Handler: func(s *Session, args []string) bool {
			var done []string
			for _, t := range s.Store.Tasks() {
				if t.Completed {
					done = append(done, "  • "+t.Text)
				}
			}
			if len(done) == 0 {
				s.Println("No completed tasks to clear!")
				return false
			}

			prompt := fmt.Sprintf("Clear %s?\n\nCompleted tasks:\n%s", plural(len(done), "completed task"), strings.Join(done, "\n"))
			if !s.confirm(prompt) {
				s.Println("Clear cancelled.")
				return false
			}

			removed := s.Store.ClearCompleted()
			s.Logger.Debug("completed tasks cleared", "removed", len(removed), "total", s.Store.Len())
			s.Printf("Cleared %s.\n", plural(len(removed), "completed task"))
			return false
		},
	})
}
