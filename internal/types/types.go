package types

// Task is one synthesis problem: paired example inputs and outputs, a
// depth bound and an optional probe input applied to the result.
// MaxDepth <= 0 means the engine default.
type Task struct {
	Name     string    `yaml:"name"`
	Inputs   []float64 `yaml:"inputs"`
	Outputs  []float64 `yaml:"outputs"`
	MaxDepth int       `yaml:"max_depth"`
	Probe    *float64  `yaml:"probe,omitempty"`
}

// Suite is a named collection of tasks, usually loaded from a YAML file.
type Suite struct {
	Name  string `yaml:"name"`
	Tasks []Task `yaml:"tasks"`
}

// Report is the outcome of running one task.
type Report struct {
	Task    Task
	Found   bool
	Program string // rendering of the synthesized program
	Probe   string // exact probe result, when a probe was requested
	Err     error  // set when the search exhausted its depth bound
}
