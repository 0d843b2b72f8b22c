package types

import "time"

// AnalysisResult is the record assembled at the end of a successful analysis
// run. It is the unit handed to the caller's reporting or persistence layer;
// a failed run produces no AnalysisResult.
type AnalysisResult struct {
	// RunID uniquely identifies this analysis run.
	RunID string `json:"run_id"`

	// Timestamp is when the result was assembled.
	Timestamp time.Time `json:"timestamp"`

	// ImagePath is the path of the analyzed MRI image.
	ImagePath string `json:"image_path"`

	// Patient is the optional patient metadata supplied with the run.
	Patient *PatientInfo `json:"patient_info,omitempty"`

	// Classification is the classifier outcome for the image.
	Classification Classification `json:"classification"`

	// Report is the final synthesized report text, verbatim from the
	// narrative generator.
	Report string `json:"report"`

	// GradCAMPath is where the explanation heat-map image was written.
	GradCAMPath string `json:"gradcam_path"`
}
