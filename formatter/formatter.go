package formatter

import (
	"strings"

	"github.com/fatih/color"

	"github.com/gnoverse/tinysynth/internal/bottomup"
	tt "github.com/gnoverse/tinysynth/internal/types"
)

var (
	taskStyle    = color.New(color.FgCyan, color.Bold)
	exampleStyle = color.New(color.FgHiBlue)
	programStyle = color.New(color.FgGreen, color.Bold)
	probeStyle   = color.New(color.FgYellow)
	failStyle    = color.New(color.FgRed, color.Bold)
)

// FormatReports renders one block per task report.
func FormatReports(reports []tt.Report) string {
	var builder strings.Builder
	for _, report := range reports {
		builder.WriteString(formatReport(report))
	}
	return builder.String()
}

func formatReport(report tt.Report) string {
	var builder strings.Builder
	builder.WriteString(taskStyle.Sprintf("%s\n", title(report.Task)))
	builder.WriteString(exampleStyle.Sprintf("  examples: %v -> %v\n", report.Task.Inputs, report.Task.Outputs))

	if !report.Found {
		builder.WriteString(failStyle.Sprintf("  could not synthesize a program after %d rounds\n\n", depthOf(report.Task)))
		return builder.String()
	}

	builder.WriteString(programStyle.Sprintf("  program: %s\n", report.Program))
	if report.Task.Probe != nil && report.Probe != "" {
		builder.WriteString(probeStyle.Sprintf("  program(%v) = %s\n", *report.Task.Probe, report.Probe))
	}
	builder.WriteString("\n")
	return builder.String()
}

func depthOf(task tt.Task) int {
	if task.MaxDepth > 0 {
		return task.MaxDepth
	}
	return bottomup.DefaultMaxDepth
}

func title(task tt.Task) string {
	if task.Name != "" {
		return task.Name
	}
	return "unnamed task"
}
