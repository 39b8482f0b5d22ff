package taskfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/veenaghorakavi/SampleScheduler/internal/graph"
)

// loadJSONL reads one task object per line. Blank lines are skipped;
// anything else must be a valid JSON object with name and duration.
func loadJSONL(path string) ([]graph.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	var tasks []graph.Task
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !gjson.Valid(line) {
			return nil, fmt.Errorf("%s:%d: invalid JSON", path, lineNo)
		}

		name := gjson.Get(line, "name")
		if !name.Exists() || strings.TrimSpace(name.String()) == "" {
			return nil, fmt.Errorf("%s:%d: task name is missing", path, lineNo)
		}
		duration := gjson.Get(line, "duration")
		if !duration.Exists() {
			return nil, fmt.Errorf("%s:%d: task %q has no duration", path, lineNo, name.String())
		}

		var deps []string
		gjson.Get(line, "deps").ForEach(func(_, dep gjson.Result) bool {
			deps = append(deps, dep.String())
			return true
		})

		tasks = append(tasks, graph.Task{
			Name:     name.String(),
			Duration: duration.Float(),
			Deps:     deps,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return tasks, nil
}
