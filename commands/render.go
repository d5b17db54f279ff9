package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskdeck/tasks"
)

type styles struct {
	priority map[tasks.Priority]lipgloss.Style
	done     lipgloss.Style
	check    lipgloss.Style
	errText  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *styles {
	return &styles{
		priority: map[tasks.Priority]lipgloss.Style{
			tasks.PriorityHigh:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			tasks.PriorityMedium: r.NewStyle().Foreground(lipgloss.Color("11")),
			tasks.PriorityLow:    r.NewStyle().Foreground(lipgloss.Color("10")),
		},
		done:    r.NewStyle().Faint(true),
		check:   r.NewStyle().Foreground(lipgloss.Color("10")),
		errText: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// badge renders a priority as an upper-case colored label
func (st *styles) badge(p tasks.Priority) string {
	label := strings.ToUpper(string(p))
	if style, ok := st.priority[p]; ok {
		return style.Render(label)
	}
	return label
}

// taskLine renders one entry of the task list
func (st *styles) taskLine(t tasks.Task) string {
	status := "[ ]"
	text := t.Text
	if t.Completed {
		status = st.check.Render("[✓]")
		text = st.done.Render(text)
	}

	extras := []string{"created " + t.CreatedAt.Format("2006-01-02")}
	if t.Completed && t.CompletedAt != nil {
		extras = append(extras, "completed "+t.CompletedAt.Format("2006-01-02"))
	}

	return fmt.Sprintf("  %s %d. %s %s (%s)", status, t.ID, text, st.badge(t.Priority), strings.Join(extras, ", "))
}

// printError reports a failed operation without ending the session
func (s *Session) printError(err error) {
	if isUserError(err) {
		s.Logger.Debug("command rejected", "err", err)
	} else {
		s.Logger.Warn("command failed", "err", err)
	}
	s.Println(s.styles.errText.Render("Error: " + err.Error()))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
