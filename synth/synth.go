package synth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnoverse/tinysynth/internal/bottomup"
	tt "github.com/gnoverse/tinysynth/internal/types"
)

// LoadSuite reads a task suite from a YAML file and validates every
// task's example set before any search runs.
func LoadSuite(path string) (*tt.Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var suite tt.Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing suite %s: %w", path, err)
	}
	for i, task := range suite.Tasks {
		if len(task.Inputs) != len(task.Outputs) {
			return nil, fmt.Errorf("task %d (%q): %w: %d inputs, %d outputs",
				i, task.Name, bottomup.ErrExampleMismatch, len(task.Inputs), len(task.Outputs))
		}
	}
	return &suite, nil
}

// RunTasks runs every task in order and collects one report per task.
// A task that exhausts its depth bound yields a report with Found false;
// only context cancellation or invalid task data abort the run.
func RunTasks(ctx context.Context, logger *zap.Logger, tasks []tt.Task, showProgress bool) ([]tt.Report, error) {
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(tasks),
			progressbar.OptionSetDescription("synthesizing"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
		)
	}

	reports := make([]tt.Report, 0, len(tasks))
	for _, task := range tasks {
		select {
		case <-ctx.Done():
			return reports, ctx.Err()
		default:
		}

		report, err := RunTask(task)
		if err != nil {
			if logger != nil {
				logger.Error("Error running task", zap.String("task", task.Name), zap.Error(err))
			}
			return reports, err
		}
		if logger != nil {
			logger.Debug("Task finished",
				zap.String("task", task.Name),
				zap.Bool("found", report.Found),
				zap.String("program", report.Program))
		}
		reports = append(reports, report)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return reports, nil
}

// RunTask synthesizes a single task and probes the result when asked.
// An exhausted search is a normal outcome: the report carries the
// ErrNoSolution sentinel and the returned error is nil.
func RunTask(task tt.Task) (tt.Report, error) {
	report := tt.Report{Task: task}

	inputs, err := toRats(task.Inputs)
	if err != nil {
		return report, fmt.Errorf("task %q: bad input: %w", task.Name, err)
	}
	outputs, err := toRats(task.Outputs)
	if err != nil {
		return report, fmt.Errorf("task %q: bad output: %w", task.Name, err)
	}

	program, err := bottomup.Synthesize(inputs, outputs, task.MaxDepth)
	if err != nil {
		if errors.Is(err, bottomup.ErrNoSolution) {
			report.Err = err
			return report, nil
		}
		return report, fmt.Errorf("task %q: %w", task.Name, err)
	}

	report.Found = true
	report.Program = program.String()
	if task.Probe != nil {
		probe, err := ratFromFloat(*task.Probe)
		if err != nil {
			return report, fmt.Errorf("task %q: bad probe: %w", task.Name, err)
		}
		report.Probe = bottomup.Eval(program, probe).RatString()
	}
	return report, nil
}

func toRats(vals []float64) ([]*big.Rat, error) {
	rats := make([]*big.Rat, len(vals))
	for i, v := range vals {
		r, err := ratFromFloat(v)
		if err != nil {
			return nil, err
		}
		rats[i] = r
	}
	return rats, nil
}

func ratFromFloat(v float64) (*big.Rat, error) {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return nil, fmt.Errorf("value %v is not finite", v)
	}
	return r, nil
}
