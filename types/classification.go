package types

import "fmt"

// Classification labels produced by the image classifier.
const (
	// LabelNormal indicates no tumor was detected in the scan.
	LabelNormal = "Normal"

	// LabelTumor indicates a tumor was detected in the scan.
	LabelTumor = "Tumor"
)

// Classification is the outcome of running the image classifier on a single
// MRI scan. It is produced by the classifier boundary and consumed unchanged
// by the knowledge lookup and report stages.
type Classification struct {
	// Label is the predicted class, either LabelNormal or LabelTumor.
	Label string `json:"label"`

	// Confidence is the model's confidence in the label, in [0, 1].
	Confidence float64 `json:"confidence"`

	// TumorDetected is the boolean detection signal derived from the label.
	TumorDetected bool `json:"tumor_detected"`

	// RawScore is the unthresholded model output.
	RawScore float64 `json:"raw_score"`
}

// Validate checks that the classification carries a known label, a confidence
// within [0, 1], and a detection flag consistent with the label.
func (c Classification) Validate() error {
	switch c.Label {
	case LabelNormal, LabelTumor:
	default:
		return fmt.Errorf("unknown classification label %q", c.Label)
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("confidence %v outside [0, 1]", c.Confidence)
	}
	if c.TumorDetected != (c.Label == LabelTumor) {
		return fmt.Errorf("tumor_detected=%v inconsistent with label %q", c.TumorDetected, c.Label)
	}
	return nil
}

// ConfidencePercent formats the confidence as a percentage with one decimal,
// e.g. 0.973 -> "97.3%". This is the presentation used in prompts and
// classification summaries.
func (c Classification) ConfidencePercent() string {
	return fmt.Sprintf("%.1f%%", c.Confidence*100)
}
