package neuroscan

import (
	"fmt"
	"strings"
	"time"

	"github.com/neuroscan-ai/sdk/knowledge"
	"github.com/neuroscan-ai/sdk/types"
)

// timestampLayout is the presentation format for report timestamps.
const timestampLayout = "2006-01-02 15:04:05"

// classificationSummary renders the classify stage outcome as the text block
// embedded in the final report prompt.
func classificationSummary(c types.Classification, gradcamPath string) string {
	detected := "No"
	if c.TumorDetected {
		detected = "Yes"
	}

	var sb strings.Builder
	sb.WriteString("MRI Image Analysis Complete\n\n")
	fmt.Fprintf(&sb, "Diagnosis: %s\n", c.Label)
	fmt.Fprintf(&sb, "Confidence Level: %s\n", c.ConfidencePercent())
	fmt.Fprintf(&sb, "Tumor Detected: %s\n", detected)
	fmt.Fprintf(&sb, "Raw Prediction Score: %.4f\n", c.RawScore)
	sb.WriteString("\nExplainability Analysis:\n")
	sb.WriteString("- Grad-CAM heatmap shows which brain regions influenced the classification decision\n")
	fmt.Fprintf(&sb, "- Visualization saved to: %s\n", gradcamPath)
	return sb.String()
}

// explanationPrompt composes the first narrative-generator prompt: diagnosis,
// confidence as a percentage with one decimal, and the stringified facts
// bundle.
func explanationPrompt(c types.Classification, bundle *knowledge.FactsBundle) string {
	var sb strings.Builder
	sb.WriteString("You are a medical expert providing comprehensive analysis of brain MRI results.\n\n")
	sb.WriteString("Classification Results:\n")
	fmt.Fprintf(&sb, "- Diagnosis: %s\n", c.Label)
	fmt.Fprintf(&sb, "- Confidence: %s\n", c.ConfidencePercent())
	sb.WriteString("\nMedical Knowledge Base Information:\n")
	sb.WriteString(bundle.String())
	sb.WriteString(`
Please provide a comprehensive medical explanation including:
1. What this diagnosis means in medical terms
2. Common symptoms and warning signs
3. Possible causes and risk factors
4. Available treatment options
5. Recommended next steps
6. Important medical considerations

Write in clear, professional medical language while being understandable.`)
	return sb.String()
}

// explanationReport wraps the generated explanation with the knowledge-base
// statistics carried into the final report prompt.
func explanationReport(explanation string, bundle *knowledge.FactsBundle) string {
	var sb strings.Builder
	sb.WriteString(explanation)
	sb.WriteString("\n\nKnowledge Base Statistics:\n")
	fmt.Fprintf(&sb, "- Symptoms Identified: %d\n", len(bundle.Symptoms))
	fmt.Fprintf(&sb, "- Risk Factors: %d\n", len(bundle.Causes))
	fmt.Fprintf(&sb, "- Treatment Options: %d\n", len(bundle.Treatments))
	return sb.String()
}

// patientBlock renders patient metadata with every absent field replaced by
// the "N/A" placeholder.
func patientBlock(p *types.PatientInfo) string {
	if p == nil {
		return "No patient information provided"
	}
	filled := p.WithDefaults()
	return fmt.Sprintf("Name: %s\nAge: %s\nGender: %s", filled.Name, filled.Age, filled.Gender)
}

// reportPrompt composes the second narrative-generator prompt. Its output is
// used verbatim as the final report text.
func reportPrompt(patient *types.PatientInfo, summary, explanation string, ts time.Time) string {
	var sb strings.Builder
	sb.WriteString("You are a medical documentation specialist creating a comprehensive medical report.\n\n")
	sb.WriteString("Patient Information:\n")
	sb.WriteString(patientBlock(patient))
	sb.WriteString("\n\nClassification Results:\n")
	sb.WriteString(summary)
	sb.WriteString("\nMedical Analysis:\n")
	sb.WriteString(explanation)
	fmt.Fprintf(&sb, "\nReport Timestamp: %s\n", ts.Format(timestampLayout))
	sb.WriteString(`
Generate a complete, professionally formatted medical report with the following sections:

# COMPREHENSIVE BRAIN MRI ANALYSIS REPORT

## EXECUTIVE SUMMARY
## PATIENT INFORMATION
## DIAGNOSTIC RESULTS
## VISUAL ANALYSIS
## MEDICAL INTERPRETATION
## TREATMENT RECOMMENDATIONS
## NEXT STEPS
## IMPORTANT DISCLAIMERS

Format the report professionally with clear sections and bullet points where appropriate.`)
	return sb.String()
}
