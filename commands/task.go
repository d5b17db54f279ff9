package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"taskdeck/tasks"
)

func init() {
	Register(&Command{
		Name:        "/add",
		Usage:       "/add [-p high|medium|low] <task text>",
		Description: "Add a task (default priority low)",
		Handler:     addTask,
	})

	Register(&Command{
		Name:        "/list",
		Usage:       "/list",
		Description: "List all tasks",
		Handler: func(s *Session, args []string) bool {
			list := s.Store.Tasks()
			if len(list) == 0 {
				s.Println("No tasks yet! Add your first task with /add <text>")
				return false
			}

			st := s.Store.Stats()
			s.Printf("Tasks (%d pending, %d completed):\n", st.Pending, st.Completed)
			for _, t := range list {
				s.Println(s.styles.taskLine(t))
			}
			return false
		},
	})

	Register(&Command{
		Name:        "/toggle",
		Usage:       "/toggle <id>",
		Description: "Mark a task completed or pending",
		Handler:     toggleTask,
	})

	// Alias
	Register(&Command{
		Name:        "/done",
		Usage:       "/done <id>",
		Description: "Alias for /toggle",
		Handler:     toggleTask,
	})

	Register(&Command{
		Name:        "/delete",
		Usage:       "/delete <id>",
		Description: "Delete a task after confirmation",
		Handler: func(s *Session, args []string) bool {
			id, ok := parseID(s, "/delete", args)
			if !ok {
				return false
			}

			task, err := s.Store.Get(id)
			if err != nil {
				s.printError(err)
				return false
			}

			prompt := fmt.Sprintf("Delete this task?\n\n  %q\n\nThis action cannot be undone.", task.Text)
			if !s.confirm(prompt) {
				s.Println("Deletion cancelled.")
				return false
			}

			if _, err := s.Store.Remove(id); err != nil {
				s.printError(err)
				return false
			}

			s.Logger.Debug("task deleted", "id", id, "total", s.Store.Len())
			s.Printf("Deleted task %d: %s\n", task.ID, task.Text)
			return false
		},
	})

	Register(&Command{
		Name:        "/samples",
		Usage:       "/samples",
		Description: "Add the demonstration tasks",
		Handler: func(s *Session, args []string) bool {
			added := s.Store.AddSamples()
			s.Logger.Debug("sample tasks added", "count", len(added), "total", s.Store.Len())
			s.Printf("Added %s.\n", plural(len(added), "sample task"))
			return false
		},
	})
}

func addTask(s *Session, args []string) bool {
	if len(args) == 0 {
		usage(s, "/add")
		return false
	}

	fs := pflag.NewFlagSet("add", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	priority := fs.StringP("priority", "p", string(tasks.PriorityLow), "task priority")
	if err := fs.Parse(args); err != nil {
		s.printError(err)
		usage(s, "/add")
		return false
	}

	task, err := s.Store.Add(strings.Join(fs.Args(), " "), *priority)
	if err != nil {
		s.printError(err)
		return false
	}

	s.Logger.Debug("task added", "id", task.ID, "priority", task.Priority, "total", s.Store.Len())
	s.Printf("Added task %d: %s %s\n", task.ID, task.Text, s.styles.badge(task.Priority))
	return false
}

func toggleTask(s *Session, args []string) bool {
	id, ok := parseID(s, "/toggle", args)
	if !ok {
		return false
	}

	task, err := s.Store.Toggle(id)
	if err != nil {
		s.printError(err)
		return false
	}

	s.Logger.Debug("task toggled", "id", task.ID, "completed", task.Completed)
	if task.Completed {
		s.Printf("Task %d completed: %s\n", task.ID, task.Text)
	} else {
		s.Printf("Task %d marked pending: %s\n", task.ID, task.Text)
	}
	return false
}

// parseID reads the task id argument, printing usage or an error when it
// is missing or malformed
func parseID(s *Session, name string, args []string) (int, bool) {
	if len(args) == 0 {
		usage(s, name)
		return 0, false
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		s.printError(fmt.Errorf("%w: id must be a number, got %q", tasks.ErrValidation, args[0]))
		return 0, false
	}
	return id, true
}

// isUserError reports whether err is a mistake in user input rather than
// an internal failure
func isUserError(err error) bool {
	return errors.Is(err, tasks.ErrValidation) || errors.Is(err, tasks.ErrNotFound)
}
