package neuroscan

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Stage identifies a step of the analysis pipeline. Stage names appear in
// StageError and in run telemetry.
type Stage string

const (
	// StageClassify invokes the external image classifier.
	StageClassify Stage = "classify"

	// StageRender writes the Grad-CAM explanation image. Rendering is an
	// explainability requirement, not an optional extra; its failure is
	// fatal to the run.
	StageRender Stage = "render"

	// StageExplain queries the knowledge base and generates the medical
	// explanation.
	StageExplain Stage = "explain"

	// StageReport synthesizes the final report text.
	StageReport Stage = "report"
)

// String returns the stage name.
func (s Stage) String() string {
	return string(s)
}

// runState tracks a run through the linear pipeline state machine. There is
// no branching back; stateFailed is terminal and reachable from any
// non-terminal state.
type runState int

const (
	stateStart runState = iota
	stateClassified
	stateExplained
	stateReported
	stateDone
	stateFailed
)

// String returns the state name used in logs.
func (s runState) String() string {
	switch s {
	case stateStart:
		return "START"
	case stateClassified:
		return "CLASSIFIED"
	case stateExplained:
		return "EXPLAINED"
	case stateReported:
		return "REPORTED"
	case stateDone:
		return "DONE"
	case stateFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("runState(%d)", int(s))
	}
}

// StageError wraps a failure from one pipeline stage. The orchestrator halts
// the run on the first stage failure and surfaces it upward; the remaining
// stages are not attempted and nothing is retried.
type StageError struct {
	// Stage is the pipeline step that failed.
	Stage Stage

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("neuroscan: stage %q failed: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying failure.
func (e *StageError) Unwrap() error {
	return e.Err
}

// GradCAMPath derives the output path for the explanation heat-map from the
// input image path: a "_gradcam" suffix inserted before the file extension.
//
//	uploads/scan_042.jpg -> uploads/scan_042_gradcam.jpg
func GradCAMPath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + "_gradcam" + ext
}
