package planner

import (
	"strings"
	"testing"

	"github.com/veenaghorakavi/SampleScheduler/internal/cpm"
	"github.com/veenaghorakavi/SampleScheduler/internal/graph"
)

func analyze(t *testing.T, tasks []graph.Task) (*graph.TaskSet, *cpm.Result) {
	t.Helper()
	set := graph.New(tasks)
	res, err := cpm.Analyze(set)
	if err != nil {
		t.Fatalf("cpm analyze: %v", err)
	}
	return set, res
}

func TestBuild_Diamond(t *testing.T) {
	// a(1) -> b(2) -> d(1)
	// a(1) -> c(3) -> d(1)
	set, res := analyze(t, []graph.Task{
		{Name: "a", Duration: 1},
		{Name: "b", Duration: 2, Deps: []string{"a"}},
		{Name: "c", Duration: 3, Deps: []string{"a"}},
		{Name: "d", Duration: 1, Deps: []string{"b", "c"}},
	})

	plan := Build(set, res, "pipeline.txt")

	if !strings.HasPrefix(plan.ID, "sched-") {
		t.Errorf("expected sched- plan ID, got %s", plan.ID)
	}
	if plan.Source != "pipeline.txt" {
		t.Errorf("expected source pipeline.txt, got %s", plan.Source)
	}
	if plan.TaskCount != 4 {
		t.Errorf("expected 4 tasks, got %d", plan.TaskCount)
	}
	if plan.Makespan != 5 {
		t.Errorf("expected makespan 5, got %g", plan.Makespan)
	}

	// Tasks come out in topological order.
	if len(plan.Tasks) != 4 {
		t.Fatalf("expected 4 task plans, got %d", len(plan.Tasks))
	}
	for i, name := range []string{"a", "b", "c", "d"} {
		if plan.Tasks[i].Name != name {
			t.Errorf("task %d: expected %s, got %s", i, name, plan.Tasks[i].Name)
		}
	}

	b := plan.Tasks[1]
	if b.ES != 1 || b.EF != 3 || b.LS != 2 || b.Slack != 1 || b.Critical {
		t.Errorf("unexpected schedule for b: %+v", b)
	}
	if len(b.Deps) != 1 || b.Deps[0] != "a" {
		t.Errorf("expected b deps=[a], got %v", b.Deps)
	}

	if len(plan.CriticalPath) != 3 || plan.CriticalPath[1] != "c" {
		t.Errorf("expected critical path [a c d], got %v", plan.CriticalPath)
	}
}

func TestBuild_WaveStarts(t *testing.T) {
	set, res := analyze(t, []graph.Task{
		{Name: "a", Duration: 2},
		{Name: "b", Duration: 1, Deps: []string{"a"}},
		{Name: "c", Duration: 4, Deps: []string{"a"}},
	})

	plan := Build(set, res, "waves.txt")

	if len(plan.Waves) != 2 {
		t.Fatalf("expected 2 waves, got %d", len(plan.Waves))
	}
	if plan.Waves[0].Start != 0 {
		t.Errorf("expected wave 0 to start at 0, got %g", plan.Waves[0].Start)
	}
	if plan.Waves[1].Start != 2 {
		t.Errorf("expected wave 1 to start at 2, got %g", plan.Waves[1].Start)
	}
	if len(plan.Waves[1].Names) != 2 {
		t.Errorf("expected 2 tasks in wave 1, got %v", plan.Waves[1].Names)
	}
}

func TestBuild_Empty(t *testing.T) {
	set, res := analyze(t, nil)

	plan := Build(set, res, "empty.txt")

	if plan.TaskCount != 0 {
		t.Errorf("expected 0 tasks, got %d", plan.TaskCount)
	}
	if plan.Makespan != 0 {
		t.Errorf("expected makespan 0, got %g", plan.Makespan)
	}
	if len(plan.Tasks) != 0 || len(plan.Waves) != 0 {
		t.Errorf("expected empty plan, got %+v", plan)
	}
}
