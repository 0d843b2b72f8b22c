package ontology

import "fmt"

// Node labels and relationship types used in the knowledge graph.
const (
	LabelTumorType  = "TumorType"
	LabelSymptom    = "Symptom"
	LabelCause      = "Cause"
	LabelTreatment  = "Treatment"
	LabelDiagnostic = "Diagnostic"

	// RelCausesSymptom links a TumorType to a Symptom it produces.
	RelCausesSymptom = "CAUSES_SYMPTOM"

	// RelIncreasesRiskOf links a Cause to the TumorType whose risk it raises.
	RelIncreasesRiskOf = "INCREASES_RISK_OF"

	// RelTreatedWith links a TumorType to an applicable Treatment.
	RelTreatedWith = "TREATED_WITH"

	// RelDiagnoses links a Diagnostic method to the TumorType it detects.
	RelDiagnoses = "DIAGNOSES"
)

// Symptom severity values.
const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// Cause categories.
const (
	CategoryEnvironmental = "Environmental"
	CategoryGenetic       = "Genetic"
	CategoryDemographic   = "Demographic"
	CategoryMedical       = "Medical"
)

// TumorType is a class of brain tumor. Name is the natural key.
type TumorType struct {
	Name        string
	Description string
	Prevalence  string
}

// Symptom is a clinical sign associated with one or more tumor types.
type Symptom struct {
	Name     string
	Severity string
}

// Cause is a risk factor for developing a tumor.
type Cause struct {
	Name     string
	Category string
}

// Treatment is a therapeutic option for a tumor type.
type Treatment struct {
	Name          string
	Description   string
	Effectiveness string
}

// Diagnostic is a method used to detect or confirm a tumor.
type Diagnostic struct {
	Name        string
	Description string
	Accuracy    string
}

// SymptomLink is a CAUSES_SYMPTOM edge: TumorType -> Symptom.
type SymptomLink struct {
	TumorType string
	Symptom   string
	Frequency string
}

// RiskLink is an INCREASES_RISK_OF edge: Cause -> TumorType.
type RiskLink struct {
	Cause     string
	TumorType string
	Risk      string
}

// TreatmentLink is a TREATED_WITH edge: TumorType -> Treatment. Priority is
// one of the enumerated treatment priorities; it drives result ordering.
type TreatmentLink struct {
	TumorType string
	Treatment string
	Priority  string
}

// DiagnosticLink is a DIAGNOSES edge: Diagnostic -> TumorType. Role describes
// where the method sits in the diagnostic workflow.
type DiagnosticLink struct {
	Diagnostic string
	TumorType  string
	Role       string
}

// Dataset is the complete ontology: all nodes and all edges. Edges reference
// nodes by their unique names.
type Dataset struct {
	TumorTypes  []TumorType
	Symptoms    []Symptom
	Causes      []Cause
	Treatments  []Treatment
	Diagnostics []Diagnostic

	SymptomLinks    []SymptomLink
	RiskLinks       []RiskLink
	TreatmentLinks  []TreatmentLink
	DiagnosticLinks []DiagnosticLink
}

// Default returns the compiled-in brain tumor ontology.
func Default() Dataset {
	return Dataset{
		TumorTypes: []TumorType{
			{
				Name:        "Glioma",
				Description: "Tumors that arise from glial cells in the brain",
				Prevalence:  "Most common primary brain tumor in adults",
			},
			{
				Name:        "Meningioma",
				Description: "Tumors that develop from the meninges",
				Prevalence:  "Most common benign brain tumor",
			},
			{
				Name:        "Pituitary Adenoma",
				Description: "Tumors of the pituitary gland",
				Prevalence:  "Common, usually benign",
			},
		},
		Symptoms: []Symptom{
			{Name: "Persistent Headaches", Severity: SeverityHigh},
			{Name: "Seizures", Severity: SeverityHigh},
			{Name: "Vision Problems", Severity: SeverityMedium},
			{Name: "Nausea and Vomiting", Severity: SeverityMedium},
			{Name: "Muscle Weakness", Severity: SeverityHigh},
			{Name: "Cognitive Changes", Severity: SeverityMedium},
			{Name: "Balance Problems", Severity: SeverityMedium},
		},
		Causes: []Cause{
			{Name: "Previous Radiation Exposure", Category: CategoryEnvironmental},
			{Name: "Genetic Mutations", Category: CategoryGenetic},
			{Name: "Family History", Category: CategoryGenetic},
			{Name: "Age (Risk increases with age)", Category: CategoryDemographic},
			{Name: "Weakened Immune System", Category: CategoryMedical},
		},
		Treatments: []Treatment{
			{
				Name:          "Surgical Resection",
				Description:   "Removal of tumor through surgery",
				Effectiveness: "High for accessible tumors",
			},
			{
				Name:          "Radiation Therapy",
				Description:   "Use of high-energy radiation to kill tumor cells",
				Effectiveness: "High when combined with other treatments",
			},
			{
				Name:          "Chemotherapy",
				Description:   "Drug-based treatment to kill cancer cells",
				Effectiveness: "Variable depending on tumor type",
			},
			{
				Name:          "Targeted Therapy",
				Description:   "Drugs targeting specific molecular changes in tumor cells",
				Effectiveness: "Growing effectiveness for specific tumor types",
			},
		},
		Diagnostics: []Diagnostic{
			{
				Name:        "MRI Scan",
				Description: "Magnetic Resonance Imaging for detailed brain images",
				Accuracy:    "Very High",
			},
			{
				Name:        "CT Scan",
				Description: "Computed Tomography for brain imaging",
				Accuracy:    "High",
			},
			{
				Name:        "Biopsy",
				Description: "Tissue sample analysis for definitive diagnosis",
				Accuracy:    "Gold Standard",
			},
		},
		SymptomLinks: []SymptomLink{
			{TumorType: "Glioma", Symptom: "Persistent Headaches", Frequency: "Common"},
			{TumorType: "Glioma", Symptom: "Seizures", Frequency: "Common"},
			{TumorType: "Glioma", Symptom: "Cognitive Changes", Frequency: "Frequent"},
			{TumorType: "Glioma", Symptom: "Muscle Weakness", Frequency: "Common"},
		},
		RiskLinks: []RiskLink{
			{Cause: "Previous Radiation Exposure", TumorType: "Glioma", Risk: "Moderate"},
			{Cause: "Genetic Mutations", TumorType: "Glioma", Risk: "High"},
			{Cause: "Family History", TumorType: "Glioma", Risk: "Moderate"},
		},
		TreatmentLinks: []TreatmentLink{
			{TumorType: "Glioma", Treatment: "Surgical Resection", Priority: "Primary"},
			{TumorType: "Glioma", Treatment: "Radiation Therapy", Priority: "Adjuvant"},
			{TumorType: "Glioma", Treatment: "Chemotherapy", Priority: "Adjuvant"},
			{TumorType: "Glioma", Treatment: "Targeted Therapy", Priority: "Emerging"},
		},
		DiagnosticLinks: []DiagnosticLink{
			{Diagnostic: "MRI Scan", TumorType: "Glioma", Role: "Primary method"},
			{Diagnostic: "CT Scan", TumorType: "Glioma", Role: "Secondary method"},
			{Diagnostic: "Biopsy", TumorType: "Glioma", Role: "Confirmatory"},
		},
	}
}

// Validate checks the dataset's internal consistency: unique names per entity
// type, enumerated attribute values, and edges that reference existing nodes.
func (d Dataset) Validate() error {
	tumors := nameSet(len(d.TumorTypes))
	for _, t := range d.TumorTypes {
		if err := tumors.add(LabelTumorType, t.Name); err != nil {
			return err
		}
	}

	symptoms := nameSet(len(d.Symptoms))
	for _, s := range d.Symptoms {
		if err := symptoms.add(LabelSymptom, s.Name); err != nil {
			return err
		}
		switch s.Severity {
		case SeverityLow, SeverityMedium, SeverityHigh:
		default:
			return fmt.Errorf("symptom %q has unknown severity %q", s.Name, s.Severity)
		}
	}

	causes := nameSet(len(d.Causes))
	for _, c := range d.Causes {
		if err := causes.add(LabelCause, c.Name); err != nil {
			return err
		}
		switch c.Category {
		case CategoryEnvironmental, CategoryGenetic, CategoryDemographic, CategoryMedical:
		default:
			return fmt.Errorf("cause %q has unknown category %q", c.Name, c.Category)
		}
	}

	treatments := nameSet(len(d.Treatments))
	for _, t := range d.Treatments {
		if err := treatments.add(LabelTreatment, t.Name); err != nil {
			return err
		}
	}

	diagnostics := nameSet(len(d.Diagnostics))
	for _, dg := range d.Diagnostics {
		if err := diagnostics.add(LabelDiagnostic, dg.Name); err != nil {
			return err
		}
	}

	for _, l := range d.SymptomLinks {
		if !tumors.has(l.TumorType) {
			return fmt.Errorf("symptom link references unknown tumor type %q", l.TumorType)
		}
		if !symptoms.has(l.Symptom) {
			return fmt.Errorf("symptom link references unknown symptom %q", l.Symptom)
		}
	}
	for _, l := range d.RiskLinks {
		if !causes.has(l.Cause) {
			return fmt.Errorf("risk link references unknown cause %q", l.Cause)
		}
		if !tumors.has(l.TumorType) {
			return fmt.Errorf("risk link references unknown tumor type %q", l.TumorType)
		}
	}
	for _, l := range d.TreatmentLinks {
		if !tumors.has(l.TumorType) {
			return fmt.Errorf("treatment link references unknown tumor type %q", l.TumorType)
		}
		if !treatments.has(l.Treatment) {
			return fmt.Errorf("treatment link references unknown treatment %q", l.Treatment)
		}
	}
	for _, l := range d.DiagnosticLinks {
		if !diagnostics.has(l.Diagnostic) {
			return fmt.Errorf("diagnostic link references unknown diagnostic %q", l.Diagnostic)
		}
		if !tumors.has(l.TumorType) {
			return fmt.Errorf("diagnostic link references unknown tumor type %q", l.TumorType)
		}
	}

	return nil
}

type names map[string]struct{}

func nameSet(capacity int) names {
	return make(names, capacity)
}

func (n names) add(label, name string) error {
	if name == "" {
		return fmt.Errorf("%s with empty name", label)
	}
	if _, dup := n[name]; dup {
		return fmt.Errorf("duplicate %s name %q", label, name)
	}
	n[name] = struct{}{}
	return nil
}

func (n names) has(name string) bool {
	_, ok := n[name]
	return ok
}
