package tasks

import (
	"time"

	"taskdeck/clock"
)

// Store owns an ordered list of tasks. Insertion order is display order.
type Store struct {
	clock  clock.Clock
	tasks  []*Task
	nextID int
}

// NewStore creates an empty store that stamps times from clk. A nil clock
// falls back to the wall clock.
func NewStore(clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.Real()
	}
	return &Store{
		clock:  clk,
		tasks:  []*Task{},
		nextID: 1,
	}
}

// Now returns the store's idea of the current time
func (s *Store) Now() time.Time {
	return s.clock.Now()
}

// Add validates and normalizes rawText, then appends a new pending task.
// Nothing changes, including the id counter, when validation fails.
func (s *Store) Add(rawText, priority string) (Task, error) {
	text, err := NormalizeText(rawText)
	if err != nil {
		return Task{}, err
	}
	p, err := ParsePriority(priority)
	if err != nil {
		return Task{}, err
	}

	task := &Task{
		ID:        s.nextID,
		Text:      text,
		Priority:  p,
		Completed: false,
		CreatedAt: s.clock.Now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, task)

	return task.clone(), nil
}

// Get returns the task with the given id
func (s *Store) Get(id int) (Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, notFound(id)
	}
	return s.tasks[i].clone(), nil
}

// Toggle flips a task between pending and completed
func (s *Store) Toggle(id int) (Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, notFound(id)
	}

	t := s.tasks[i]
	t.setCompleted(!t.Completed, s.clock.Now())
	return t.clone(), nil
}

// Remove deletes a task and returns it so the caller can report what
// went away.
func (s *Store) Remove(id int) (Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, notFound(id)
	}

	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return removed.clone(), nil
}

// ToggleAll completes every pending task when at least one is pending,
// and otherwise marks every task pending again. Completed tasks share a
// single timestamp. Returns the number of tasks that changed state.
func (s *Store) ToggleAll() int {
	completeAll := false
	for _, t := range s.tasks {
		if !t.Completed {
			completeAll = true
			break
		}
	}

	now := s.clock.Now()
	changed := 0
	for _, t := range s.tasks {
		if t.Completed != completeAll {
			t.setCompleted(completeAll, now)
			changed++
		}
	}
	return changed
}

// ClearCompleted removes every completed task and returns them in their
// original order.
func (s *Store) ClearCompleted() []Task {
	removed := []Task{}
	kept := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Completed {
			removed = append(removed, t.clone())
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	return removed
}

// Tasks returns a copy of the task list
func (s *Store) Tasks() []Task {
	tasks := make([]Task, len(s.tasks))
	for i, t := range s.tasks {
		tasks[i] = t.clone()
	}
	return tasks
}

// Len returns the number of tasks held
func (s *Store) Len() int {
	return len(s.tasks)
}

// samples are the demonstration tasks seeded by AddSamples
var samples = []struct {
	text     string
	priority Priority
}{
	{"Learn Go basics", PriorityHigh},
	{"Practice terminal rendering", PriorityMedium},
	{"Complete coding assignment", PriorityHigh},
	{"Review function concepts", PriorityLow},
}

// AddSamples appends the demonstration tasks and returns them
func (s *Store) AddSamples() []Task {
	added := make([]Task, 0, len(samples))
	for _, sample := range samples {
		task, err := s.Add(sample.text, string(sample.priority))
		if err != nil {
			// samples are constants; a failure here is a programming error
			panic(err)
		}
		added = append(added, task)
	}
	return added
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
