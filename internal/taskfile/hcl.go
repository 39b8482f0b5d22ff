package taskfile

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/veenaghorakavi/SampleScheduler/internal/graph"
)

type hclDoc struct {
	Tasks []hclTask `hcl:"task,block"`
}

type hclTask struct {
	Name     string   `hcl:"name,label"`
	Duration float64  `hcl:"duration"`
	Deps     []string `hcl:"deps,optional"`
}

// loadHCL reads task blocks: task "name" { duration = 1.5  deps = [...] }.
func loadHCL(path string) ([]graph.Task, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse HCL task file %s: %s", path, diags.Error())
	}

	var doc hclDoc
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("decode HCL task file %s: %s", path, diags.Error())
	}

	tasks := make([]graph.Task, 0, len(doc.Tasks))
	for _, t := range doc.Tasks {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("%s: task block with empty name", path)
		}
		tasks = append(tasks, graph.Task{Name: t.Name, Duration: t.Duration, Deps: t.Deps})
	}
	return tasks, nil
}
