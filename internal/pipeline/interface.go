package pipeline

import "context"

// Orchestrator drives one lecture job through the four processing stages and
// leaves the job in a terminal, inspectable state no matter what happens.
type Orchestrator interface {
	Run(ctx context.Context, jobID string)
}
