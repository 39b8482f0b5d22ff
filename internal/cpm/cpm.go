package cpm

import (
	"fmt"
	"sort"

	"github.com/veenaghorakavi/SampleScheduler/internal/graph"
)

// Slack below this is treated as zero when flagging critical tasks;
// float sums along long chains accumulate rounding error.
const criticalSlack = 1e-9

// Order computes a deterministic topological order with Kahn's algorithm.
// The ready worklist is strict FIFO, seeded with zero-in-degree tasks in
// declaration order; dependents are scanned in declaration order, so ties
// always resolve by declaration. On a cyclic task set the result is
// silently shorter than s.Len(); callers that need an error use Analyze.
func Order(s *graph.TaskSet) []string {
	inDegree := make(map[string]int, s.Len())
	for _, name := range s.Order {
		n := 0
		for _, dep := range s.Tasks[name].Deps {
			if _, ok := s.Tasks[dep]; ok {
				n++
			}
		}
		inDegree[name] = n
	}

	queue := make([]string, 0, s.Len())
	for _, name := range s.Order {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	succs := dependents(s)
	order := make([]string, 0, s.Len())
	for len(queue) > 0 {
		// Pop front
		name := queue[0]
		queue = queue[1:]
		order = append(order, name)

		for _, succ := range succs[name] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}
	return order
}

// Analyze performs critical path method analysis on a task set: a forward
// pass for earliest start/finish and the makespan, a backward pass for
// latest start/finish and slack, then critical-path and wave extraction.
// Durations are used as declared; callers are expected to have validated
// first, so the cycle check here is a guard, not a diagnostic.
func Analyze(s *graph.TaskSet) (*Result, error) {
	order := Order(s)
	if len(order) != s.Len() {
		return nil, fmt.Errorf("topological sort failed: graph has a cycle (%d of %d tasks sorted)", len(order), s.Len())
	}

	result := &Result{
		Order: order,
		Tasks: make(map[string]*TaskSchedule, len(order)),
	}
	for _, name := range order {
		result.Tasks[name] = &TaskSchedule{Name: name}
	}

	// Forward pass: ES = max(EF of all dependencies), EF = ES + duration.
	// Dependency names that resolve to no declared task contribute nothing.
	for _, name := range order {
		t := s.Tasks[name]
		ts := result.Tasks[name]
		es := 0.0
		for _, dep := range t.Deps {
			depTS, ok := result.Tasks[dep]
			if !ok {
				continue
			}
			if depTS.EF > es {
				es = depTS.EF
			}
		}
		ts.ES = es
		ts.EF = es + t.Duration
	}

	// Makespan: the latest earliest-finish, 0 for an empty set.
	makespan := 0.0
	for _, ts := range result.Tasks {
		if ts.EF > makespan {
			makespan = ts.EF
		}
	}
	result.Makespan = makespan

	// Backward pass in reverse topological order: LF = min(LS of all
	// dependents), defaulting to the makespan for tasks nothing depends on.
	succs := dependents(s)
	for i := len(order) - 1; i >= 0; i-- {
		name := order[i]
		ts := result.Tasks[name]
		lf := makespan
		for _, succ := range succs[name] {
			if succTS := result.Tasks[succ]; succTS.LS < lf {
				lf = succTS.LS
			}
		}
		ts.LF = lf
		ts.LS = lf - s.Tasks[name].Duration
		ts.Slack = ts.LS - ts.ES
		ts.Critical = ts.Slack < criticalSlack
	}

	// Build critical path (critical tasks in topological order)
	for _, name := range order {
		if result.Tasks[name].Critical {
			result.CriticalPath = append(result.CriticalPath, name)
		}
	}

	result.Waves = computeWaves(result)

	return result, nil
}

// dependents maps each task name to the declared tasks that depend on it,
// listed in the dependents' declaration order.
func dependents(s *graph.TaskSet) map[string][]string {
	out := make(map[string][]string, s.Len())
	for _, name := range s.Order {
		for _, dep := range s.Tasks[name].Deps {
			if _, ok := s.Tasks[dep]; !ok {
				continue
			}
			out[dep] = append(out[dep], name)
		}
	}
	return out
}

// computeWaves groups tasks by their earliest start time. Wave indices
// ascend with start time; within a wave, tasks keep topological order.
func computeWaves(result *Result) []Wave {
	groups := make(map[float64][]string)
	for _, name := range result.Order {
		es := result.Tasks[name].ES
		groups[es] = append(groups[es], name)
	}

	starts := make([]float64, 0, len(groups))
	for es := range groups {
		starts = append(starts, es)
	}
	sort.Float64s(starts)

	waves := make([]Wave, len(starts))
	for i, es := range starts {
		names := groups[es]
		critical := false
		for _, name := range names {
			result.Tasks[name].Wave = i
			if result.Tasks[name].Critical {
				critical = true
			}
		}
		waves[i] = Wave{Index: i, Names: names, Critical: critical}
	}
	return waves
}
