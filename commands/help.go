package commands

func init() {
	Register(&Command{
		Name:        "/help",
		Usage:       "/help [command]",
		Description: "Show available commands",
		Handler: func(s *Session, args []string) bool {
			if len(args) > 0 {
				cmd := GetByName(args[0])
				if cmd == nil {
					s.Printf("Unknown command: %s\n", args[0])
					return false
				}
				s.Printf("%s\n  %s\n", cmd.Usage, cmd.Description)
				return false
			}

			s.Println("Available commands:")
			for _, cmd := range List() {
				s.Printf("  %-15s - %s\n", cmd.Name, cmd.Description)
			}
			s.Println("Text without a leading / is added as a low priority task.")
			return false
		},
	})
}
