package planner

import "time"

// Plan is the complete serializable result of analyzing one task file:
// the model, the topological order, and the critical path schedule. It is
// the --json contract and the viewer payload.
type Plan struct {
	ID           string     `json:"id"`
	GeneratedAt  time.Time  `json:"generated_at"`
	Source       string     `json:"source"`
	TaskCount    int        `json:"task_count"`
	Makespan     float64    `json:"makespan"`
	Order        []string   `json:"order"`
	CriticalPath []string   `json:"critical_path"`
	Tasks        []TaskPlan `json:"tasks"`
	Waves        []WavePlan `json:"waves"`
}

// TaskPlan is one task's schedule. Plan.Tasks lists them in topological
// order.
type TaskPlan struct {
	Name     string   `json:"name"`
	Duration float64  `json:"duration"`
	Deps     []string `json:"deps,omitempty"`
	ES       float64  `json:"es"`
	EF       float64  `json:"ef"`
	LS       float64  `json:"ls"`
	LF       float64  `json:"lf"`
	Slack    float64  `json:"slack"`
	Critical bool     `json:"critical"`
	Wave     int      `json:"wave"`
}

// WavePlan is a group of tasks that can start together.
type WavePlan struct {
	Index    int      `json:"index"`
	Start    float64  `json:"start"`
	Names    []string `json:"names"`
	Critical bool     `json:"critical"`
}
