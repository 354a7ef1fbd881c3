package cmd

import (
	"fmt"

	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	tt "github.com/gnoverse/tinysynth/internal/types"
)

// initCmd: tinysynth init
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a starter task suite file",
	Run: func(cmd *cobra.Command, args []string) {
		path := "tinysynth.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if err := initSuiteFile(path); err != nil {
			logger.Error("Error initializing suite file", zap.Error(err))
			return
		}
		fmt.Printf("Suite file created: %s\n", path)
	},
}

func initSuiteFile(path string) error {
	suite := tt.Suite{
		Name: "starter",
		Tasks: []tt.Task{
			{
				Name:     "f(x) = x + 1",
				Inputs:   []float64{1, 2, 15},
				Outputs:  []float64{2, 3, 16},
				MaxDepth: 2,
				Probe:    probe(10),
			},
		},
	}
	d, err := yaml.Marshal(suite)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	if err != nil {
		return err
	}

	return nil
}
