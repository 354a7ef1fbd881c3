package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoverse/tinysynth/formatter"
	"github.com/gnoverse/tinysynth/synth"
)

var runCmd = &cobra.Command{
	Use:   "run [suites...]",
	Short: "Run synthesis task suites from YAML files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide suite file paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		for _, path := range args {
			suite, err := synth.LoadSuite(path)
			if err != nil {
				logger.Fatal("Failed to load suite", zap.String("path", path), zap.Error(err))
			}

			reports, err := synth.RunTasks(ctx, logger, suite.Tasks, !noProgress)
			if err != nil {
				logger.Error("Error running suite", zap.String("suite", suite.Name), zap.Error(err))
				os.Exit(1)
			}
			fmt.Print(formatter.FormatReports(reports))
		}
	},
}
