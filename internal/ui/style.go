package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	Bold        = color.New(color.Bold).SprintFunc()
	Dim         = color.New(color.Faint).SprintFunc()
	Cyan        = color.New(color.FgCyan).SprintFunc()
	Green       = color.New(color.FgGreen).SprintFunc()
	Red         = color.New(color.FgRed).SprintFunc()
	Yellow      = color.New(color.FgYellow).SprintFunc()
	Magenta     = color.New(color.FgMagenta).SprintFunc()
	BoldCyan    = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen   = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldRed     = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldYellow  = color.New(color.Bold, color.FgYellow).SprintFunc()
	BoldMagenta = color.New(color.Bold, color.FgMagenta).SprintFunc()
	BoldWhite   = color.New(color.Bold, color.FgWhite).SprintFunc()
)

// Disable turns off all color output for the process.
func Disable() {
	color.NoColor = true
}

// ProblemIcon is the marker printed before a validation problem.
func ProblemIcon() string {
	return BoldRed("✗")
}

// OKIcon is the marker for a clean validation run.
func OKIcon() string {
	return BoldGreen("✓")
}

// CriticalMark flags a task on the critical path.
func CriticalMark() string {
	return BoldYellow("⚡")
}

// PrintLogo renders the colored scheduler logo to stderr.
func PrintLogo() {
	w := os.Stderr
	frame := color.New(color.FgCyan)
	bars := color.New(color.FgYellow)
	brand := color.New(color.Bold, color.FgMagenta)
	tag := color.New(color.Faint)

	fmt.Fprintln(w)
	frame.Fprintln(w, "   +--------------------------------+")
	bars.Fprintln(w, "   |  ====                          |")
	bars.Fprintln(w, "   |      =========                 |")
	bars.Fprintln(w, "   |      ====                      |")
	bars.Fprintln(w, "   |               =======          |")
	frame.Fprintln(w, "   |--------------------------------|")
	brand.Fprintln(w, "   |  S A M P L E S C H E D U L E R |")
	frame.Fprintln(w, "   +--------------------------------+")
	tag.Fprintln(w, "   critical paths from task lists")
	fmt.Fprintln(w)
}
