// Package taskfile loads task declarations from disk in the formats the
// scheduler understands: the line-oriented text format plus JSON, JSONL,
// YAML, and HCL documents. Loaders reject malformed records (empty names,
// missing durations); everything structural beyond that is the
// validator's concern.
package taskfile

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/veenaghorakavi/SampleScheduler/internal/graph"
)

// Input formats accepted by Load.
const (
	FormatAuto  = "auto"
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
	FormatHCL   = "hcl"
)

// Formats lists every accepted format name.
func Formats() []string {
	return []string{FormatAuto, FormatText, FormatJSON, FormatJSONL, FormatYAML, FormatHCL}
}

// Load reads one task file and builds the TaskSet. With FormatAuto the
// format resolves from the file extension; unrecognized extensions are
// treated as the text format.
func Load(path, format string) (*graph.TaskSet, error) {
	if format == "" || format == FormatAuto {
		format = Detect(path)
	}

	var (
		tasks []graph.Task
		err   error
	)
	switch format {
	case FormatText:
		tasks, err = loadText(path)
	case FormatJSON:
		tasks, err = loadJSON(path)
	case FormatJSONL:
		tasks, err = loadJSONL(path)
	case FormatYAML:
		tasks, err = loadYAML(path)
	case FormatHCL:
		tasks, err = loadHCL(path)
	default:
		return nil, fmt.Errorf("unknown task file format %q", format)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("task file loaded", "path", path, "format", format, "tasks", len(tasks))
	return graph.New(tasks), nil
}

// Detect maps a file extension to a format name.
func Detect(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".jsonl", ".ndjson":
		return FormatJSONL
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl":
		return FormatHCL
	default:
		return FormatText
	}
}

// document is the JSON and YAML task file shape.
type document struct {
	Tasks []record `json:"tasks" yaml:"tasks"`
}

type record struct {
	Name     string   `json:"name" yaml:"name"`
	Duration *float64 `json:"duration" yaml:"duration"`
	Deps     []string `json:"deps" yaml:"deps"`
}

func convert(recs []record) ([]graph.Task, error) {
	tasks := make([]graph.Task, 0, len(recs))
	for i, r := range recs {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("task %d: name is empty", i+1)
		}
		if r.Duration == nil {
			return nil, fmt.Errorf("task %q: duration is missing", r.Name)
		}
		tasks = append(tasks, graph.Task{Name: r.Name, Duration: *r.Duration, Deps: r.Deps})
	}
	return tasks, nil
}
