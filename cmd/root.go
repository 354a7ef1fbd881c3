package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	timeout    time.Duration
	noProgress bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tinysynth",
	Short: "tinysynth - bottom-up enumerative program synthesis over a tiny numeric grammar",
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		// Format: tinysynth [suite1 suite2 ...] => behaves like the run subcommand
		runCmd.Run(runCmd, args)
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Set a timeout for the search")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "Disable the task progress bar")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(initCmd)
}
