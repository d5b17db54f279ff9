package commands

import (
	"fmt"
	"sort"
	"strings"
)

// Command represents a REPL command
type Command struct {
	Name        string
	Usage       string
	Description string
	Handler     func(s *Session, args []string) bool // returns true to quit
}

var registry = make(map[string]*Command)

// Register adds a command to the registry
func Register(cmd *Command) {
	registry[strings.ToLower(cmd.Name)] = cmd
}

// Execute runs a command by name with arguments
func Execute(s *Session, input string) (bool, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return false, fmt.Errorf("empty command")
	}

	cmdName := strings.ToLower(parts[0])
	args := parts[1:]

	cmd, exists := registry[cmdName]
	if !exists {
		return false, fmt.Errorf("unknown command: %s", cmdName)
	}

	return cmd.Handler(s, args), nil
}

// List returns all registered commands sorted by name
func List() []*Command {
	cmds := make([]*Command, 0, len(registry))
	for _, cmd := range registry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name < cmds[j].Name
	})
	return cmds
}

// GetByName returns a command by name (with or without leading /)
func GetByName(name string) *Command {
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	return registry[strings.ToLower(name)]
}

// usage prints the usage line of a command
func usage(s *Session, name string) {
	if cmd := GetByName(name); cmd != nil {
		s.Printf("Usage: %s\n", cmd.Usage)
	}
}
