package commands

import "log/slog"

func init() {
	Register(&Command{
		Name:        "/debug",
		Usage:       "/debug",
		Description: "Toggle debug logging",
		Handler: func(s *Session, args []string) bool {
			if s.LogLevel == nil {
				s.Println("Debug logging is not available.")
				return false
			}

			if s.LogLevel.Level() > slog.LevelDebug {
				s.LogLevel.Set(slog.LevelDebug)
				s.Println("Debug mode: ON")
				return false
			}

			off := s.baseLevel
			if off <= slog.LevelDebug {
				off = slog.LevelInfo
			}
			s.LogLevel.Set(off)
			s.Println("Debug mode: OFF")
			return false
		},
	})
}
