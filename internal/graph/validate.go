package graph

import (
	"fmt"
	"strings"
)

// ProblemKind classifies a validation finding.
type ProblemKind string

const (
	NegativeDuration   ProblemKind = "negative-duration"
	SelfDependency     ProblemKind = "self-dependency"
	DanglingDependency ProblemKind = "dangling-dependency"
	DuplicateName      ProblemKind = "duplicate-name"
	CycleDetected      ProblemKind = "cycle"
)

// Problem is a single validation finding. Task names the task it was
// detected on; for cycles, the task the trace starts from.
type Problem struct {
	Kind    ProblemKind `json:"kind"`
	Task    string      `json:"task"`
	Message string      `json:"message"`
}

func (p Problem) String() string { return p.Message }

// Validate runs every structural check and accumulates findings in a
// deterministic order: per-task checks in declaration order (duration
// sign, self-dependency, dangling references), then duplicate
// declarations, then dependency cycles. It never stops at the first
// problem; an empty slice is the only "valid" signal. Validation is
// read-only and repeatable.
func (s *TaskSet) Validate() []Problem {
	var problems []Problem

	for _, name := range s.Order {
		t := s.Tasks[name]
		// NaN durations fail this comparison too.
		if !(t.Duration >= 0) {
			problems = append(problems, Problem{
				Kind:    NegativeDuration,
				Task:    name,
				Message: fmt.Sprintf("task %q: duration must be non-negative (got %g)", name, t.Duration),
			})
		}
		for _, dep := range t.Deps {
			if dep == name {
				problems = append(problems, Problem{
					Kind:    SelfDependency,
					Task:    name,
					Message: fmt.Sprintf("task %q: depends on itself", name),
				})
				continue
			}
			if _, ok := s.Tasks[dep]; !ok {
				problems = append(problems, Problem{
					Kind:    DanglingDependency,
					Task:    name,
					Message: fmt.Sprintf("task %q: depends on undeclared task %q", name, dep),
				})
			}
		}
	}

	if len(s.Duplicates) > 0 {
		dup := make(map[string]bool, len(s.Duplicates))
		for _, name := range s.Duplicates {
			dup[name] = true
		}
		for _, name := range s.Order {
			if dup[name] {
				problems = append(problems, Problem{
					Kind:    DuplicateName,
					Task:    name,
					Message: fmt.Sprintf("task %q: declared more than once", name),
				})
			}
		}
	}

	for _, cycle := range s.findCycles() {
		problems = append(problems, Problem{
			Kind:    CycleDetected,
			Task:    cycle[0],
			Message: fmt.Sprintf("dependency cycle: %s", strings.Join(cycle, " -> ")),
		})
	}

	return problems
}

const (
	white = 0
	gray  = 1
	black = 2
)

// findCycles walks the dependency direction (task -> its deps) with an
// iterative three-color depth-first search and returns each cycle it
// closes as the current path suffix starting at the gray dependency, with
// that dependency repeated at the end. Roots and edges are taken in
// declaration order, so repeated runs report the same cycles in the same
// order. Dependency names that resolve to no declared task are skipped
// here; the dangling check reports them.
func (s *TaskSet) findCycles() [][]string {
	color := make(map[string]int, len(s.Tasks))
	seen := make(map[string]bool)
	var cycles [][]string

	type frame struct {
		name string
		next int // index of the next dependency edge to follow
	}

	for _, root := range s.Order {
		if color[root] != white {
			continue
		}
		color[root] = gray
		stack := []frame{{name: root}}
		path := []string{root}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			deps := s.Tasks[f.name].Deps
			if f.next >= len(deps) {
				color[f.name] = black
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]
				continue
			}
			dep := deps[f.next]
			f.next++
			if _, ok := s.Tasks[dep]; !ok {
				continue
			}
			switch color[dep] {
			case white:
				color[dep] = gray
				stack = append(stack, frame{name: dep})
				path = append(path, dep)
			case gray:
				i := len(path) - 1
				for i >= 0 && path[i] != dep {
					i--
				}
				trace := append(append([]string{}, path[i:]...), dep)
				key := strings.Join(trace, " -> ")
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, trace)
				}
			}
		}
	}
	return cycles
}
