package taskfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/veenaghorakavi/SampleScheduler/internal/graph"
)

//go:embed schema.json
var taskSchema string

var compiledSchema = jsonschema.MustCompileString("taskfile.json", taskSchema)

func loadJSON(path string) ([]graph.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	// Validate the document shape before decoding. The schema constrains
	// shape only; a negative duration loads fine and is the validator's
	// to report.
	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%s: parse JSON: %w", path, err)
	}
	if err := compiledSchema.Validate(obj); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: decode tasks: %w", path, err)
	}

	tasks, err := convert(doc.Tasks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tasks, nil
}
