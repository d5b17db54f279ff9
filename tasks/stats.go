package tasks

import "math"

// Stats is a snapshot of counters derived from the task list
type Stats struct {
	Total               int
	Completed           int
	Pending             int
	ByPriority          map[Priority]int
	CompletedByPriority map[Priority]int
}

// Stats tallies the current task list. Both priority maps carry an entry
// for every priority, zero when no task has it.
func (s *Store) Stats() Stats {
	st := Stats{
		Total:               len(s.tasks),
		ByPriority:          make(map[Priority]int, len(Priorities)),
		CompletedByPriority: make(map[Priority]int, len(Priorities)),
	}
	for _, p := range Priorities {
		st.ByPriority[p] = 0
		st.CompletedByPriority[p] = 0
	}

	for _, t := range s.tasks {
		st.ByPriority[t.Priority]++
		if t.Completed {
			st.Completed++
			st.CompletedByPriority[t.Priority]++
		}
	}
	st.Pending = st.Total - st.Completed
	return st
}

// CompletionRate is the percentage of tasks completed, 0 for an empty list
func (st Stats) CompletionRate() float64 {
	return percent(st.Completed, st.Total)
}

// PendingRate is the percentage of tasks still pending, 0 for an empty list
func (st Stats) PendingRate() float64 {
	return percent(st.Pending, st.Total)
}

// PriorityCompletionRate is the percentage of tasks at priority p that are
// completed, 0 when there are none.
func (st Stats) PriorityCompletionRate(p Priority) float64 {
	return percent(st.CompletedByPriority[p], st.ByPriority[p])
}

// RoundedRate is CompletionRate rounded to one decimal place, the same
// value the reports print. Advice tiers are chosen from this value so
// that a printed 90.0% always reads as the top tier.
func (st Stats) RoundedRate() float64 {
	return math.Round(st.CompletionRate()*10) / 10
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
