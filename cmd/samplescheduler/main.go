package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/veenaghorakavi/SampleScheduler/internal/config"
	"github.com/veenaghorakavi/SampleScheduler/internal/cpm"
	"github.com/veenaghorakavi/SampleScheduler/internal/graph"
	"github.com/veenaghorakavi/SampleScheduler/internal/planner"
	"github.com/veenaghorakavi/SampleScheduler/internal/reporter"
	"github.com/veenaghorakavi/SampleScheduler/internal/taskfile"
	"github.com/veenaghorakavi/SampleScheduler/internal/ui"
	"github.com/veenaghorakavi/SampleScheduler/internal/viewer"
)

var (
	flagConfig   string
	flagInput    string
	flagInFormat string
	flagNoColor  bool
	flagVerbose  bool
	flagJSON     bool
	flagOutput   string
	flagNoWaves  bool
	flagVizFmt   string
	flagPort     int
	flagNoOpen   bool
)

var cfg *config.Config

// errProblems marks a run that found validation problems so main can exit
// with a distinct status code.
var errProblems = errors.New("task list has problems")

func main() {
	rootCmd := &cobra.Command{
		Use:   "samplescheduler",
		Short: "Validate task lists and compute critical-path schedules",
		Long: `SampleScheduler reads a list of tasks with durations and dependencies,
checks the dependency graph for problems, and computes a critical path
method schedule: earliest and latest start times, slack, and the waves
of tasks that can run in parallel.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: search for "+config.FileName+")")
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "Task list file to read")
	rootCmd.PersistentFlags().StringVar(&flagInFormat, "input-format", "", "Input format (auto, text, json, jsonl, yaml, hcl)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(orderCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(vizCmd())
	rootCmd.AddCommand(viewCmd())

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errProblems) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

// setup loads the config file and applies flag overrides, then wires logging.
func setup() error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagInFormat != "" {
		cfg.Format = flagInFormat
	}
	if flagNoColor {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.NoColor {
		ui.Disable()
	}
	if cfg.Output == "json" {
		flagJSON = true
	}

	level := cfg.SlogLevel()
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return nil
}

// inputFrom prefers a positional task-file argument over the --input flag.
func inputFrom(args []string) {
	if len(args) > 0 {
		flagInput = args[0]
	}
}

// loadTasks reads the input file and parses it into a task set.
func loadTasks() (*graph.TaskSet, error) {
	if flagInput == "" {
		return nil, fmt.Errorf("no task file (pass one as an argument or via --input)")
	}
	return taskfile.Load(flagInput, cfg.Format)
}

// buildPlan is shared logic for the order, plan, viz, and view commands.
// Validation problems go to stderr so data output stays clean.
func buildPlan() (*planner.Plan, error) {
	set, err := loadTasks()
	if err != nil {
		return nil, err
	}

	if problems := set.Validate(); len(problems) > 0 {
		reporter.PrintProblems(os.Stderr, problems)
		return nil, errProblems
	}

	result, err := cpm.Analyze(set)
	if err != nil {
		return nil, fmt.Errorf("CPM analysis: %w", err)
	}

	return planner.Build(set, result, flagInput), nil
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [taskfile]",
		Short: "Validate the task list and report every problem",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFrom(args)
			set, err := loadTasks()
			if err != nil {
				return err
			}

			problems := set.Validate()
			if flagJSON {
				if len(problems) == 0 {
					problems = []graph.Problem{}
				}
				if err := outputJSON(struct {
					OK       bool            `json:"ok"`
					Tasks    int             `json:"tasks"`
					Problems []graph.Problem `json:"problems"`
				}{len(problems) == 0, set.Len(), problems}); err != nil {
					return err
				}
				if len(problems) > 0 {
					return errProblems
				}
				return nil
			}

			if len(problems) > 0 {
				reporter.PrintProblems(os.Stdout, problems)
				return errProblems
			}

			reporter.PrintOK(os.Stdout, set.Len())
			return nil
		},
	}
}

func orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order [taskfile]",
		Short: "Print the topological execution order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFrom(args)
			plan, err := buildPlan()
			if err != nil {
				return err
			}

			if flagJSON {
				return outputJSON(plan.Order)
			}

			reporter.New(plan).PrintOrder(os.Stdout)
			return nil
		},
	}
}

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [taskfile]",
		Short: "Compute the full critical-path schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFrom(args)
			plan, err := buildPlan()
			if err != nil {
				return err
			}

			rpt := reporter.New(plan)
			rpt.ShowWaves = cfg.ShowWaves && !flagNoWaves

			if flagJSON || flagOutput != "" {
				data, err := rpt.JSON()
				if err != nil {
					return err
				}
				if flagOutput != "" {
					return os.WriteFile(flagOutput, data, 0644)
				}
				fmt.Println(string(data))
				return nil
			}

			rpt.PrintPlan(os.Stdout)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Save plan JSON to file")
	cmd.Flags().BoolVar(&flagNoWaves, "no-waves", false, "List tasks flat instead of grouped by wave")

	return cmd
}

func vizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viz [taskfile]",
		Short: "Print the dependency graph as ASCII waves or DOT",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFrom(args)
			plan, err := buildPlan()
			if err != nil {
				return err
			}

			rpt := reporter.New(plan)
			if flagVizFmt == "dot" {
				return rpt.WriteDOT(os.Stdout)
			}
			rpt.PrintWaves(os.Stdout)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagVizFmt, "format", "ascii", "Output format (ascii, dot)")

	return cmd
}

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [taskfile]",
		Short: "Serve the schedule in your browser",
		Long: `Computes the schedule, starts a local web server with an interactive
view of the plan, and opens it in your browser. The server also exposes
the raw plan at /plan.json and a Graphviz rendering at /plan.dot.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFrom(args)
			plan, err := buildPlan()
			if err != nil {
				return err
			}

			port := cfg.Port
			if cmd.Flags().Changed("port") {
				port = flagPort
			}

			url, err := viewer.Start(plan, port)
			if err != nil {
				return err
			}

			ui.PrintLogo()
			if !flagNoOpen {
				openBrowser(url)
				fmt.Printf("🌐 Opened %s\n", url)
			} else {
				fmt.Printf("🌐 Open %s in your browser\n", url)
			}
			fmt.Println(ui.Dim("Press Ctrl+C to stop."))

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			fmt.Fprintf(os.Stderr, "\n🛑 %s\n", ui.Yellow("Received interrupt, shutting down."))
			return nil
		},
	}

	cmd.Flags().IntVar(&flagPort, "port", 4517, "Viewer port (0 picks a free port)")
	cmd.Flags().BoolVar(&flagNoOpen, "no-open", false, "Skip opening browser")

	return cmd
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		cmd = exec.Command("cmd", "/c", "start", url)
	}
	cmd.Start()
}

// --- Output helpers ---

func outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
