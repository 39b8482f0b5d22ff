package graph

// Task is a single declared task: a name, a duration in seconds, and the
// names of the tasks it depends on.
type Task struct {
	Name     string   `json:"name"`
	Duration float64  `json:"duration"`
	Deps     []string `json:"deps,omitempty"`
}

// TaskSet is a collection of tasks keyed by name. It is immutable once
// built: every analysis is a read.
//
// Order holds the distinct names in first-declaration order and is the
// iteration order for every downstream computation; map iteration order is
// never observable in results. When a name is declared more than once the
// map keeps the last declaration's content, the name keeps its first
// position in Order, and the name is recorded in Duplicates for the
// validator to report.
type TaskSet struct {
	Tasks      map[string]*Task
	Order      []string
	Duplicates []string
}
