package commands

import "taskdeck/tasks"

func init() {
	Register(&Command{
		Name:        "/stats",
		Usage:       "/stats",
		Description: "Show task counters",
		Handler: func(s *Session, args []string) bool {
			st := s.Store.Stats()
			s.Printf("Total: %d  Completed: %d  Pending: %d  (%.1f%% done)\n",
				st.Total, st.Completed, st.Pending, st.CompletionRate())

			for _, p := range tasks.Priorities {
				s.Printf("  %s %s: %d total, %d completed\n",
					p.Icon(), s.styles.badge(p), st.ByPriority[p], st.CompletedByPriority[p])
			}

			if st.Total > 0 && st.Pending == 0 {
				s.Println("All tasks complete!")
			}
			return false
		},
	})

	Register(&Command{
		Name:        "/report",
		Usage:       "/report",
		Description: "Print the full task report",
		Handler: func(s *Session, args []string) bool {
			s.Printf("%s", s.Store.FormatReport())
			return false
		},
	})

	Register(&Command{
		Name:        "/productivity",
		Usage:       "/productivity",
		Description: "Analyze productivity with advice and a quote",
		Handler: func(s *Session, args []string) bool {
			s.Printf("%s", s.Store.ProductivityReport(s.Pick))
			return false
		},
	})
}
