package commands

import "fmt"

func init() {
	Register(&Command{
		Name:        "/quit",
		Usage:       "/quit",
		Description: "Exit taskdeck",
		Handler:     quit,
	})

	// Alias
	Register(&Command{
		Name:        "/exit",
		Usage:       "/exit",
		Description: "Exit taskdeck",
		Handler:     quit,
	})
}

// quit asks for confirmation while tasks are still pending, since
// nothing survives the session
func quit(s *Session, args []string) bool {
	if pending := s.Store.Stats().Pending; pending > 0 {
		prompt := fmt.Sprintf("You have %s. Tasks are not saved between sessions. Leave anyway?", plural(pending, "pending task"))
		if !s.confirm(prompt) {
			s.Println("Staying.")
			return false
		}
	}

	s.Println("Goodbye!")
	return true
}
