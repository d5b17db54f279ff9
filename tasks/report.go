package tasks

import (
	"fmt"
	"strings"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// FormatReport renders the full task report: every task in display order
// followed by the statistics block. Output depends only on the store
// contents and its clock.
func (s *Store) FormatReport() string {
	now := s.clock.Now()
	st := s.Stats()

	var b strings.Builder
	b.WriteString("COMPREHENSIVE TASK REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	b.WriteString("DETAILED TASK LIST:\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	if len(s.tasks) == 0 {
		b.WriteString("\n(no tasks)\n")
	}
	for i, t := range s.tasks {
		status := "PENDING"
		if t.Completed {
			status = "COMPLETED"
		}
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, status)
		fmt.Fprintf(&b, "   Task: %s\n", t.Text)
		fmt.Fprintf(&b, "   %s Priority: %s\n", t.Priority.Icon(), strings.ToUpper(string(t.Priority)))
		fmt.Fprintf(&b, "   Created: %s\n", t.CreatedAt.Format(dateLayout))
		fmt.Fprintf(&b, "   Days ago: %d\n", t.AgeDays(now))
		if t.Completed && t.CompletedAt != nil {
			fmt.Fprintf(&b, "   Completed: %s\n", t.CompletedAt.Format(dateLayout))
		}
	}

	b.WriteString("\n\nSTATISTICAL ANALYSIS:\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	fmt.Fprintf(&b, "Total Tasks: %d\n", st.Total)
	fmt.Fprintf(&b, "Completed: %d (%.1f%%)\n", st.Completed, st.CompletionRate())
	fmt.Fprintf(&b, "Pending: %d (%.1f%%)\n\n", st.Pending, st.PendingRate())

	b.WriteString("PRIORITY DISTRIBUTION:\n")
	for _, p := range Priorities {
		fmt.Fprintf(&b, "%s %s: %d total, %d completed (%.1f%%)\n",
			p.Icon(), strings.ToUpper(string(p)),
			st.ByPriority[p], st.CompletedByPriority[p], st.PriorityCompletionRate(p))
	}

	fmt.Fprintf(&b, "\nReport Generated: %s\n", now.Format(dateTimeLayout))
	return b.String()
}

// ProductivityReport renders the productivity analysis: overall counters,
// the success rate, a per-priority breakdown, advice for the rate and a
// quote chosen with pick (see MotivationalQuote).
func (s *Store) ProductivityReport(pick func(n int) int) string {
	if len(s.tasks) == 0 {
		return "No tasks to analyze yet! Add some tasks to see your productivity stats.\n"
	}

	st := s.Stats()
	rate := st.RoundedRate()

	var b strings.Builder
	b.WriteString("PRODUCTIVITY ANALYSIS REPORT\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	b.WriteString("OVERALL STATISTICS:\n")
	fmt.Fprintf(&b, "Completed Tasks: %d\n", st.Completed)
	fmt.Fprintf(&b, "Pending Tasks: %d\n", st.Pending)
	fmt.Fprintf(&b, "Total Tasks: %d\n", st.Total)
	fmt.Fprintf(&b, "Success Rate: %.1f%%\n\n", rate)

	b.WriteString("PRIORITY BREAKDOWN:\n")
	for _, p := range Priorities {
		name := string(p)
		fmt.Fprintf(&b, "%s %s Priority: %d total (%d completed)\n",
			p.Icon(), strings.ToUpper(name[:1])+name[1:],
			st.ByPriority[p], st.CompletedByPriority[p])
	}

	fmt.Fprintf(&b, "\n%s\n\n", ProductivityAdvice(rate))
	fmt.Fprintf(&b, "\"%s\"\n\n", MotivationalQuote(rate, pick))
	fmt.Fprintf(&b, "Report Generated: %s\n", s.clock.Now().Format(dateTimeLayout))
	return b.String()
}
