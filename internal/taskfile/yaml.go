package taskfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/veenaghorakavi/SampleScheduler/internal/graph"
)

func loadYAML(path string) ([]graph.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		// An empty document declares no tasks.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: decode tasks: %w", path, err)
	}

	tasks, err := convert(doc.Tasks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tasks, nil
}
