package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neuroscan-ai/sdk/types"
)

// DefaultQueue is the queue name used when callers have no reason to shard.
const DefaultQueue = "neuroscan:analysis"

// AnalysisJob is a single unit of work: one MRI image to analyze, with
// optional patient metadata.
type AnalysisJob struct {
	// ID uniquely identifies the job and correlates its Result.
	ID string `json:"id"`

	// ImagePath is the stored location of the uploaded MRI image.
	ImagePath string `json:"image_path"`

	// Patient is the optional patient metadata supplied at upload.
	Patient *types.PatientInfo `json:"patient_info,omitempty"`

	// SubmittedAt is the Unix timestamp in milliseconds when the job was
	// enqueued.
	SubmittedAt int64 `json:"submitted_at"`
}

// NewAnalysisJob creates a job for the given image with a fresh ID and the
// current submission time.
func NewAnalysisJob(imagePath string, patient *types.PatientInfo) AnalysisJob {
	return AnalysisJob{
		ID:          uuid.NewString(),
		ImagePath:   imagePath,
		Patient:     patient,
		SubmittedAt: time.Now().UnixMilli(),
	}
}

// Validate checks that the job carries the fields a worker needs.
func (j AnalysisJob) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("job id is required")
	}
	if j.ImagePath == "" {
		return fmt.Errorf("job image path is required")
	}
	return nil
}

// Result status values.
const (
	// StatusCompleted indicates the analysis run finished and ResultJSON
	// carries the serialized AnalysisResult.
	StatusCompleted = "completed"

	// StatusFailed indicates the run failed and Error carries the cause.
	StatusFailed = "failed"
)

// Result is the outcome of executing an AnalysisJob, published on a pub/sub
// channel for the submitter to collect.
type Result struct {
	// JobID correlates this result with the original job.
	JobID string `json:"job_id"`

	// Status is StatusCompleted or StatusFailed.
	Status string `json:"status"`

	// ResultJSON is the serialized types.AnalysisResult. Empty on failure.
	ResultJSON string `json:"result_json,omitempty"`

	// Error is the failure message. Empty on success.
	Error string `json:"error,omitempty"`

	// CompletedAt is the Unix timestamp in milliseconds when the run
	// finished.
	CompletedAt int64 `json:"completed_at"`
}

// CompletedResult builds a successful Result carrying the serialized
// analysis record.
func CompletedResult(jobID string, res *types.AnalysisResult) (Result, error) {
	data, err := json.Marshal(res)
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal analysis result: %w", err)
	}
	return Result{
		JobID:       jobID,
		Status:      StatusCompleted,
		ResultJSON:  string(data),
		CompletedAt: time.Now().UnixMilli(),
	}, nil
}

// FailedResult builds a failed Result from the run error.
func FailedResult(jobID string, runErr error) Result {
	return Result{
		JobID:       jobID,
		Status:      StatusFailed,
		Error:       runErr.Error(),
		CompletedAt: time.Now().UnixMilli(),
	}
}
