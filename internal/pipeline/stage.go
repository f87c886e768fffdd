package pipeline

import "fmt"

// Stage names one step of a run.
type Stage string

// Stages in execution order.
const (
	StageLoad     Stage = "load"
	StageEncode   Stage = "encode"
	StageBuild    Stage = "build"
	StagePaths    Stage = "paths"
	StageDiameter Stage = "diameter"
	StageReport   Stage = "report"
)

// StageError reports which stage aborted a run and why.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }

func (e *StageError) Unwrap() error { return e.Err }

func fail(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
