// Package types provides the core record definitions shared across the
// NeuroScan SDK.
//
// These types flow between the pipeline stages: a Classification produced by
// the image classifier, optional PatientInfo supplied by the caller, and the
// AnalysisResult record assembled at the end of a successful run.
//
// All records are plain data carriers with JSON tags so they can be persisted
// or transmitted by callers without additional mapping:
//
//	result := &types.AnalysisResult{
//	    RunID:          "a4c1...",
//	    ImagePath:      "uploads/scan_042.jpg",
//	    Classification: classification,
//	    Report:         reportText,
//	    GradCAMPath:    "uploads/scan_042_gradcam.jpg",
//	}
//	data, _ := json.Marshal(result)
package types
