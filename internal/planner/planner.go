// Package planner folds a task set and its critical path analysis into a
// single serializable plan document.
package planner

import (
	"fmt"
	"time"

	"github.com/veenaghorakavi/SampleScheduler/internal/cpm"
	"github.com/veenaghorakavi/SampleScheduler/internal/graph"
)

// Build assembles the plan for one analyzed task set. source names where
// the tasks came from, usually the task file path.
func Build(set *graph.TaskSet, res *cpm.Result, source string) *Plan {
	plan := &Plan{
		ID:           fmt.Sprintf("sched-%s", time.Now().Format("2006-01-02-150405")),
		GeneratedAt:  time.Now(),
		Source:       source,
		TaskCount:    set.Len(),
		Makespan:     res.Makespan,
		Order:        res.Order,
		CriticalPath: res.CriticalPath,
	}

	for _, name := range res.Order {
		task := set.Tasks[name]
		ts := res.Tasks[name]
		plan.Tasks = append(plan.Tasks, TaskPlan{
			Name:     name,
			Duration: task.Duration,
			Deps:     task.Deps,
			ES:       ts.ES,
			EF:       ts.EF,
			LS:       ts.LS,
			LF:       ts.LF,
			Slack:    ts.Slack,
			Critical: ts.Critical,
			Wave:     ts.Wave,
		})
	}

	for _, wave := range res.Waves {
		wp := WavePlan{
			Index:    wave.Index,
			Names:    wave.Names,
			Critical: wave.Critical,
		}
		if len(wave.Names) > 0 {
			wp.Start = res.Tasks[wave.Names[0]].ES
		}
		plan.Waves = append(plan.Waves, wp)
	}

	return plan
}
