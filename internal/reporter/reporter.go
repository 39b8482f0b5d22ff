package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/veenaghorakavi/SampleScheduler/internal/graph"
	"github.com/veenaghorakavi/SampleScheduler/internal/planner"
	"github.com/veenaghorakavi/SampleScheduler/internal/ui"
)

// Reporter renders a computed schedule plan for humans and machines.
type Reporter struct {
	Plan      *planner.Plan
	ShowWaves bool
}

// New creates a Reporter for the given plan.
func New(plan *planner.Plan) *Reporter {
	return &Reporter{Plan: plan, ShowWaves: true}
}

// PrintPlan writes the full schedule: header stats, then the per-wave task
// table with early/late times and slack. With ShowWaves disabled the tasks
// are listed flat in topological order instead.
func (r *Reporter) PrintPlan(w io.Writer) {
	p := r.Plan

	fmt.Fprintf(w, "🎯 %s\n", ui.BoldCyan("Execution Schedule"))
	fmt.Fprintln(w, ui.Cyan("═══════════════════════════"))
	fmt.Fprintln(w)
	if p.Source != "" {
		fmt.Fprintf(w, "Source:    %s\n", ui.Bold(p.Source))
	}
	fmt.Fprintf(w, "Tasks:     %s\n", ui.Bold(p.TaskCount))
	fmt.Fprintf(w, "Waves:     %s\n", ui.Bold(len(p.Waves)))
	fmt.Fprintf(w, "Makespan:  %s\n", ui.Bold(fmtSeconds(p.Makespan)))
	fmt.Fprintf(w, "⚡ Critical path: %s (%d tasks)\n",
		ui.BoldYellow(strings.Join(p.CriticalPath, " → ")), len(p.CriticalPath))
	fmt.Fprintln(w)

	if !r.ShowWaves {
		for _, t := range p.Tasks {
			printTask(w, t)
		}
		return
	}

	byName := r.taskIndex()
	for _, wave := range p.Waves {
		start := ui.Dim(fmt.Sprintf("starts %s", fmtSeconds(wave.Start)))
		fmt.Fprintf(w, "🌊 %s %d (%d tasks, %s):\n",
			ui.BoldWhite("Wave"), wave.Index+1, len(wave.Names), start)
		for _, name := range wave.Names {
			printTask(w, byName[name])
		}
		fmt.Fprintln(w)
	}
}

func printTask(w io.Writer, t planner.TaskPlan) {
	crit := "  "
	if t.Critical {
		crit = ui.BoldYellow("⚡") + " "
	}
	name := ui.BoldMagenta(fmt.Sprintf("%-16s", t.Name))
	fmt.Fprintf(w, "  %s%s %-8s ES %-7s EF %-7s LS %-7s LF %-7s slack %s\n",
		crit, name, fmtSeconds(t.Duration),
		fmtSeconds(t.ES), fmtSeconds(t.EF), fmtSeconds(t.LS), fmtSeconds(t.LF),
		fmtSeconds(t.Slack))
}

// PrintOrder writes the topological execution order, one task per line.
func (r *Reporter) PrintOrder(w io.Writer) {
	p := r.Plan
	byName := r.taskIndex()

	fmt.Fprintf(w, "📋 %s (%d tasks)\n", ui.BoldCyan("Topological Order"), len(p.Order))
	for i, name := range p.Order {
		crit := ""
		if t, ok := byName[name]; ok && t.Critical {
			crit = " " + ui.BoldYellow("⚡")
		}
		fmt.Fprintf(w, "  %2d. %s%s\n", i+1, ui.BoldMagenta(name), crit)
	}
}

// PrintWaves writes an ASCII view of the schedule grouped by wave, with
// dependency edges drawn under each task.
func (r *Reporter) PrintWaves(w io.Writer) {
	p := r.Plan
	byName := r.taskIndex()
	succs := r.successors()

	fmt.Fprintf(w, "🔗 %s\n", ui.BoldCyan("Task Dependency Graph"))
	fmt.Fprintln(w, ui.Cyan("═══════════════════════"))
	fmt.Fprintln(w)

	for _, wave := range p.Waves {
		fmt.Fprintf(w, "%s 🌊 Wave %d %s\n", ui.Cyan("──"), wave.Index+1, ui.Cyan("──────────────────────────────"))
		for _, name := range wave.Names {
			t := byName[name]
			crit := " "
			if t.Critical {
				crit = ui.BoldYellow("⚡")
			}
			fmt.Fprintf(w, "  %s [%s] %s\n", crit, ui.BoldMagenta(t.Name), fmtSeconds(t.Duration))
			for _, succ := range succs[name] {
				fmt.Fprintf(w, "      %s %s\n", ui.Dim("└──→"), ui.Magenta(succ))
			}
		}
		fmt.Fprintln(w)
	}
}

// JSON returns the plan as indented JSON.
func (r *Reporter) JSON() ([]byte, error) {
	return json.MarshalIndent(r.Plan, "", "  ")
}

// WriteDOT writes the dependency graph in Graphviz DOT format. Critical
// tasks and the edges between them are highlighted.
func (r *Reporter) WriteDOT(w io.Writer) error {
	p := r.Plan

	fmt.Fprintln(w, "digraph schedule {")
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  node [shape=box, style=rounded];")
	fmt.Fprintln(w)

	critical := make(map[string]bool, len(p.Tasks))
	for _, t := range p.Tasks {
		label := fmt.Sprintf("%s\\n%s", t.Name, fmtSeconds(t.Duration))
		attrs := fmt.Sprintf(`label="%s"`, label)
		if t.Critical {
			attrs += `, style="rounded,bold", color=red`
			critical[t.Name] = true
		}
		fmt.Fprintf(w, "  %q [%s];\n", t.Name, attrs)
	}

	fmt.Fprintln(w)

	for _, t := range p.Tasks {
		for _, dep := range t.Deps {
			style := ""
			if critical[dep] && critical[t.Name] {
				style = ` [color=red, penwidth=2]`
			}
			fmt.Fprintf(w, "  %q -> %q%s;\n", dep, t.Name, style)
		}
	}

	fmt.Fprintln(w, "}")
	return nil
}

// PrintProblems writes one line per validation problem followed by a count.
func PrintProblems(w io.Writer, problems []graph.Problem) {
	for _, p := range problems {
		fmt.Fprintf(w, "%s %s\n", ui.ProblemIcon(), p.Message)
	}
	noun := "problems"
	if len(problems) == 1 {
		noun = "problem"
	}
	fmt.Fprintf(w, "\n🚫 %s %s found in the task list.\n", ui.BoldRed(len(problems)), noun)
}

// PrintOK confirms a clean validation pass.
func PrintOK(w io.Writer, taskCount int) {
	fmt.Fprintf(w, "%s task list OK (%s tasks, no problems)\n", ui.OKIcon(), ui.Bold(taskCount))
}

func (r *Reporter) taskIndex() map[string]planner.TaskPlan {
	idx := make(map[string]planner.TaskPlan, len(r.Plan.Tasks))
	for _, t := range r.Plan.Tasks {
		idx[t.Name] = t
	}
	return idx
}

// successors inverts the per-task dependency lists. Tasks are visited in
// topological order, so each successor list comes out in that order too.
func (r *Reporter) successors() map[string][]string {
	succs := make(map[string][]string)
	for _, t := range r.Plan.Tasks {
		for _, dep := range t.Deps {
			succs[dep] = append(succs[dep], t.Name)
		}
	}
	return succs
}

// fmtSeconds renders a duration in seconds without trailing zeros.
func fmtSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "s"
}
