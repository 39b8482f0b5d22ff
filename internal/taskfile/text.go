package taskfile

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/veenaghorakavi/SampleScheduler/internal/graph"
)

func loadText(path string) ([]graph.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	tasks, err := ParseText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tasks, nil
}

// ParseText reads the line-oriented task format: one task per line as
// "name, duration, dep, dep, ...". Blank lines and lines starting with #
// are skipped. A "-" in a dependency position declares no dependency.
func ParseText(r io.Reader) ([]graph.Task, error) {
	var tasks []graph.Task
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			slog.Debug("skipping line", "line", lineNo)
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected \"name, duration[, deps...]\", got %q", lineNo, line)
		}

		name := strings.TrimSpace(fields[0])
		if name == "" {
			return nil, fmt.Errorf("line %d: task name is empty", lineNo)
		}

		durField := strings.TrimSpace(fields[1])
		duration, err := strconv.ParseFloat(durField, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad duration %q for task %q", lineNo, durField, name)
		}

		var deps []string
		for _, dep := range fields[2:] {
			dep = strings.TrimSpace(dep)
			if dep == "" || dep == "-" {
				continue
			}
			deps = append(deps, dep)
		}

		tasks = append(tasks, graph.Task{Name: name, Duration: duration, Deps: deps})
		slog.Debug("parsed task", "line", lineNo, "name", name, "deps", len(deps))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return tasks, nil
}
