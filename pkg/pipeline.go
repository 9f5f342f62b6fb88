package pypub

import (
	"context"
	"fmt"
	"log/slog"
)

// Step is one named stage of the release pipeline.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// StepError reports which pipeline step failed. It unwraps to the underlying
// cause so callers can inspect exec exit errors and the like.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// runPipeline executes steps strictly in order, stopping at the first
// failure. Nothing after a failed step runs; there are no retries.
func runPipeline(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		slog.Info("running step", "step", step.Name)
		if err := step.Run(ctx); err != nil {
			return &StepError{Step: step.Name, Err: err}
		}
		slog.Debug("step complete", "step", step.Name)
	}

	return nil
}
