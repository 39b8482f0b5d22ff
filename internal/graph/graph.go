package graph

import "strings"

// New builds a TaskSet from declarations in file order. Names and
// dependency names are trimmed of surrounding whitespace; empty dependency
// tokens are dropped and repeated dependency names keep their first
// occurrence. There are no error conditions at this layer: sign checks,
// dangling references, duplicates, and cycles are Validate's concern.
func New(tasks []Task) *TaskSet {
	s := &TaskSet{Tasks: make(map[string]*Task, len(tasks))}
	dup := make(map[string]bool)
	for i := range tasks {
		t := tasks[i]
		t.Name = strings.TrimSpace(t.Name)
		t.Deps = normalizeDeps(t.Deps)
		if _, seen := s.Tasks[t.Name]; seen {
			if !dup[t.Name] {
				dup[t.Name] = true
				s.Duplicates = append(s.Duplicates, t.Name)
			}
		} else {
			s.Order = append(s.Order, t.Name)
		}
		s.Tasks[t.Name] = &t
	}
	return s
}

func normalizeDeps(deps []string) []string {
	if len(deps) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(deps))
	out := make([]string, 0, len(deps))
	for _, d := range deps {
		d = strings.TrimSpace(d)
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Lookup returns the task declared under name.
func (s *TaskSet) Lookup(name string) (*Task, bool) {
	t, ok := s.Tasks[name]
	return t, ok
}

// InOrder returns the tasks in declaration order as a fresh slice.
func (s *TaskSet) InOrder() []*Task {
	out := make([]*Task, 0, len(s.Order))
	for _, name := range s.Order {
		out = append(out, s.Tasks[name])
	}
	return out
}

// Len returns the number of distinct tasks.
func (s *TaskSet) Len() int {
	return len(s.Tasks)
}
