package cpm

// Result holds a complete critical path analysis.
type Result struct {
	Order        []string // topological order the analysis walked
	Tasks        map[string]*TaskSchedule
	Makespan     float64 // latest earliest-finish over all tasks, seconds
	CriticalPath []string // critical task names in topological order
	Waves        []Wave   // parallelizable groups by earliest start
}

// TaskSchedule holds the scheduling info for a single task. All times are
// seconds from the start of the schedule.
type TaskSchedule struct {
	Name     string
	ES, EF   float64 // earliest start/finish
	LS, LF   float64 // latest start/finish
	Slack    float64
	Critical bool
	Wave     int // which parallel wave this belongs to
}

// Wave represents a group of tasks that share an earliest start time and
// can begin together under unlimited parallelism.
type Wave struct {
	Index    int
	Names    []string
	Critical bool // true if the wave contains critical path tasks
}
