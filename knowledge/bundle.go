package knowledge

import (
	"fmt"
	"strings"
)

// Bundle status values.
const (
	// StatusNormal indicates the scan showed no tumor.
	StatusNormal = "Normal"

	// StatusTumorDetected indicates the scan showed a tumor.
	StatusTumorDetected = "Tumor Detected"
)

// SymptomRow is one symptom linked to a tumor type.
type SymptomRow struct {
	Name      string `json:"symptom"`
	Severity  string `json:"severity"`
	Frequency string `json:"frequency"`
}

// CauseRow is one risk factor linked to a tumor type.
type CauseRow struct {
	Name     string `json:"cause"`
	Category string `json:"category"`
	Risk     string `json:"risk"`
}

// TreatmentRow is one treatment option for a tumor type.
type TreatmentRow struct {
	Name          string            `json:"treatment"`
	Description   string            `json:"description"`
	Effectiveness string            `json:"effectiveness"`
	Priority      TreatmentPriority `json:"priority"`
}

// DiagnosticRow is one diagnostic method for a tumor type.
type DiagnosticRow struct {
	Method      string `json:"method"`
	Description string `json:"description"`
	Accuracy    string `json:"accuracy"`
}

// TreatmentPriorityRow is one row of the full tumor-type/treatment join
// returned by Engine.AllTreatmentPriorities.
type TreatmentPriorityRow struct {
	TumorType   string            `json:"tumor_type"`
	Treatment   string            `json:"treatment"`
	Description string            `json:"description"`
	Priority    TreatmentPriority `json:"priority"`
}

// FactsBundle is the merged result of the knowledge queries for one
// classification outcome. A Normal bundle carries only the advisory message
// and recommendations; a Tumor Detected bundle carries the four fact lists.
type FactsBundle struct {
	Status          string          `json:"status"`
	Message         string          `json:"message,omitempty"`
	Symptoms        []SymptomRow    `json:"symptoms,omitempty"`
	Causes          []CauseRow      `json:"causes,omitempty"`
	Treatments      []TreatmentRow  `json:"treatments,omitempty"`
	Diagnostics     []DiagnosticRow `json:"diagnostics,omitempty"`
	Recommendations []string        `json:"recommendations"`
}

// String renders the bundle as plain text for embedding in a narrative
// generation prompt.
func (b *FactsBundle) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Status: %s\n", b.Status)
	if b.Message != "" {
		fmt.Fprintf(&sb, "Message: %s\n", b.Message)
	}

	if len(b.Symptoms) > 0 {
		sb.WriteString("Symptoms:\n")
		for _, s := range b.Symptoms {
			fmt.Fprintf(&sb, "  - %s (severity: %s, frequency: %s)\n", s.Name, s.Severity, s.Frequency)
		}
	}
	if len(b.Causes) > 0 {
		sb.WriteString("Causes and Risk Factors:\n")
		for _, c := range b.Causes {
			fmt.Fprintf(&sb, "  - %s (category: %s, risk: %s)\n", c.Name, c.Category, c.Risk)
		}
	}
	if len(b.Treatments) > 0 {
		sb.WriteString("Treatments (in priority order):\n")
		for _, tr := range b.Treatments {
			fmt.Fprintf(&sb, "  - %s [%s]: %s (effectiveness: %s)\n", tr.Name, tr.Priority, tr.Description, tr.Effectiveness)
		}
	}
	if len(b.Diagnostics) > 0 {
		sb.WriteString("Diagnostic Methods:\n")
		for _, d := range b.Diagnostics {
			fmt.Fprintf(&sb, "  - %s: %s (accuracy: %s)\n", d.Method, d.Description, d.Accuracy)
		}
	}

	if len(b.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		for _, r := range b.Recommendations {
			fmt.Fprintf(&sb, "  - %s\n", r)
		}
	}

	return sb.String()
}
