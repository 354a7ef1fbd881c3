package tinysynth

import (
	"context"
	"math/big"

	"go.uber.org/zap"

	"github.com/gnoverse/tinysynth/internal/bottomup"
	tt "github.com/gnoverse/tinysynth/internal/types"
	"github.com/gnoverse/tinysynth/synth"
)

// Expr is a program in the synthesis grammar.
type Expr = bottomup.Expr

// Task, Suite and Report describe driver-level synthesis runs.
type (
	Task   = tt.Task
	Suite  = tt.Suite
	Report = tt.Report
)

// DefaultMaxDepth is the depth bound used when a caller passes one <= 0.
const DefaultMaxDepth = bottomup.DefaultMaxDepth

var (
	ErrExampleMismatch = bottomup.ErrExampleMismatch
	ErrNoSolution      = bottomup.ErrNoSolution
)

// Evaluate runs expr against the input n using exact rational arithmetic.
func Evaluate(expr Expr, n *big.Rat) *big.Rat {
	return bottomup.Eval(expr, n)
}

// Synthesize searches for the smallest-generation program whose
// evaluation matches every example pair, up to maxDepth growth rounds.
func Synthesize(inputs, outputs []*big.Rat, maxDepth int) (Expr, error) {
	return bottomup.Synthesize(inputs, outputs, maxDepth)
}

// LoadSuite reads a task suite from a YAML file.
func LoadSuite(path string) (*Suite, error) {
	return synth.LoadSuite(path)
}

// RunTasks runs tasks in order, producing one report per task.
func RunTasks(ctx context.Context, logger *zap.Logger, tasks []Task, showProgress bool) ([]Report, error) {
	return synth.RunTasks(ctx, logger, tasks, showProgress)
}
