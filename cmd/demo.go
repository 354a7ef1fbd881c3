package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoverse/tinysynth/formatter"
	tt "github.com/gnoverse/tinysynth/internal/types"
	"github.com/gnoverse/tinysynth/synth"
)

func probe(v float64) *float64 { return &v }

// demoSuite reproduces the reference scenarios: three functions the
// grammar can express and three it cannot. The last three are expected
// to report a clean failure, not to succeed.
var demoSuite = tt.Suite{
	Name: "demo",
	Tasks: []tt.Task{
		{Name: "f(x) = x", Inputs: []float64{1, 2, 3}, Outputs: []float64{1, 2, 3}, MaxDepth: 2, Probe: probe(10)},
		{Name: "f(x) = 0", Inputs: []float64{1, 2, 8}, Outputs: []float64{0, 0, 0}, MaxDepth: 2, Probe: probe(10)},
		{Name: "f(x) = x + 1", Inputs: []float64{1, 2, 15}, Outputs: []float64{2, 3, 16}, MaxDepth: 2, Probe: probe(10)},
		{Name: "f(x) = 7x + 1", Inputs: []float64{1, 2, 0.5}, Outputs: []float64{8, 15, 4.5}, MaxDepth: 6, Probe: probe(10)},
		{Name: "f(x) = x/2 + 1", Inputs: []float64{2, 4, 8}, Outputs: []float64{2, 3, 5}, MaxDepth: 6, Probe: probe(10)},
		{Name: "f(x) = x^3", Inputs: []float64{2, 4, 5}, Outputs: []float64{8, 64, 125}, MaxDepth: 6, Probe: probe(3)},
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demonstration scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		reports, err := synth.RunTasks(ctx, logger, demoSuite.Tasks, !noProgress)
		if err != nil {
			logger.Error("Error running demo suite", zap.Error(err))
			os.Exit(1)
		}
		fmt.Print(formatter.FormatReports(reports))
	},
}
