package ontology

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neuroscan-ai/sdk/graph"
)

// SeedError reports a failure during ontology population. The graph may be
// left partially rebuilt; the operation is reported, not retried.
type SeedError struct {
	// Step is the name of the statement that failed (e.g. "clear",
	// "treatment_links").
	Step string

	// Err is the underlying store error.
	Err error
}

// Error implements the error interface.
func (e *SeedError) Error() string {
	return fmt.Sprintf("ontology: seed step %q failed: %v", e.Step, e.Err)
}

// Unwrap returns the underlying store error.
func (e *SeedError) Unwrap() error {
	return e.Err
}

// Seeder installs the fixed ontology into the graph store.
type Seeder struct {
	runner  graph.Runner
	dataset Dataset
	logger  *slog.Logger
}

// SeederOption configures a Seeder.
type SeederOption func(*Seeder)

// WithLogger sets the structured logger used for seed progress.
func WithLogger(logger *slog.Logger) SeederOption {
	return func(s *Seeder) {
		s.logger = logger
	}
}

// WithDataset overrides the compiled-in dataset. Used by tests; production
// callers seed Default().
func WithDataset(d Dataset) SeederOption {
	return func(s *Seeder) {
		s.dataset = d
	}
}

// NewSeeder creates a Seeder that writes through the given runner.
func NewSeeder(runner graph.Runner, opts ...SeederOption) *Seeder {
	s := &Seeder{
		runner:  runner,
		dataset: Default(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// seedStep is one statement in the fixed seeding sequence.
type seedStep struct {
	name   string
	cypher string
	params map[string]any
}

// Seed wipes the graph and repopulates it from the dataset. The sequence is
// fixed: delete everything, create all nodes, then create all edges by
// matching nodes on their unique names. Re-running produces an identical end
// state. A mid-sequence failure is wrapped in SeedError with the failing
// step's name; the sequence is not transactional and is not retried.
func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.dataset.Validate(); err != nil {
		return &SeedError{Step: "validate", Err: err}
	}

	for _, step := range s.steps() {
		if _, err := s.runner.Run(ctx, step.cypher, step.params); err != nil {
			return &SeedError{Step: step.name, Err: err}
		}
	}

	s.logger.Info("knowledge base seeded",
		"tumor_types", len(s.dataset.TumorTypes),
		"symptoms", len(s.dataset.Symptoms),
		"causes", len(s.dataset.Causes),
		"treatments", len(s.dataset.Treatments),
		"diagnostics", len(s.dataset.Diagnostics))
	return nil
}

// steps builds the ordered statement sequence for the current dataset.
func (s *Seeder) steps() []seedStep {
	d := s.dataset

	tumorRows := make([]map[string]any, 0, len(d.TumorTypes))
	for _, t := range d.TumorTypes {
		tumorRows = append(tumorRows, map[string]any{
			"name":        t.Name,
			"description": t.Description,
			"prevalence":  t.Prevalence,
		})
	}

	symptomRows := make([]map[string]any, 0, len(d.Symptoms))
	for _, sy := range d.Symptoms {
		symptomRows = append(symptomRows, map[string]any{
			"name":     sy.Name,
			"severity": sy.Severity,
		})
	}

	causeRows := make([]map[string]any, 0, len(d.Causes))
	for _, c := range d.Causes {
		causeRows = append(causeRows, map[string]any{
			"name":     c.Name,
			"category": c.Category,
		})
	}

	treatmentRows := make([]map[string]any, 0, len(d.Treatments))
	for _, t := range d.Treatments {
		treatmentRows = append(treatmentRows, map[string]any{
			"name":          t.Name,
			"description":   t.Description,
			"effectiveness": t.Effectiveness,
		})
	}

	diagnosticRows := make([]map[string]any, 0, len(d.Diagnostics))
	for _, dg := range d.Diagnostics {
		diagnosticRows = append(diagnosticRows, map[string]any{
			"name":        dg.Name,
			"description": dg.Description,
			"accuracy":    dg.Accuracy,
		})
	}

	symptomLinkRows := make([]map[string]any, 0, len(d.SymptomLinks))
	for _, l := range d.SymptomLinks {
		symptomLinkRows = append(symptomLinkRows, map[string]any{
			"tumor_type": l.TumorType,
			"symptom":    l.Symptom,
			"frequency":  l.Frequency,
		})
	}

	riskLinkRows := make([]map[string]any, 0, len(d.RiskLinks))
	for _, l := range d.RiskLinks {
		riskLinkRows = append(riskLinkRows, map[string]any{
			"cause":      l.Cause,
			"tumor_type": l.TumorType,
			"risk":       l.Risk,
		})
	}

	treatmentLinkRows := make([]map[string]any, 0, len(d.TreatmentLinks))
	for _, l := range d.TreatmentLinks {
		treatmentLinkRows = append(treatmentLinkRows, map[string]any{
			"tumor_type": l.TumorType,
			"treatment":  l.Treatment,
			"priority":   l.Priority,
		})
	}

	diagnosticLinkRows := make([]map[string]any, 0, len(d.DiagnosticLinks))
	for _, l := range d.DiagnosticLinks {
		diagnosticLinkRows = append(diagnosticLinkRows, map[string]any{
			"diagnostic": l.Diagnostic,
			"tumor_type": l.TumorType,
			"role":       l.Role,
		})
	}

	return []seedStep{
		{
			name:   "clear",
			cypher: "MATCH (n) DETACH DELETE n",
			params: nil,
		},
		{
			name: "tumor_types",
			cypher: `UNWIND $rows AS row
CREATE (:TumorType {name: row.name, description: row.description, prevalence: row.prevalence})`,
			params: map[string]any{"rows": tumorRows},
		},
		{
			name: "symptoms",
			cypher: `UNWIND $rows AS row
CREATE (:Symptom {name: row.name, severity: row.severity})`,
			params: map[string]any{"rows": symptomRows},
		},
		{
			name: "causes",
			cypher: `UNWIND $rows AS row
CREATE (:Cause {name: row.name, category: row.category})`,
			params: map[string]any{"rows": causeRows},
		},
		{
			name: "treatments",
			cypher: `UNWIND $rows AS row
CREATE (:Treatment {name: row.name, description: row.description, effectiveness: row.effectiveness})`,
			params: map[string]any{"rows": treatmentRows},
		},
		{
			name: "diagnostics",
			cypher: `UNWIND $rows AS row
CREATE (:Diagnostic {name: row.name, description: row.description, accuracy: row.accuracy})`,
			params: map[string]any{"rows": diagnosticRows},
		},
		{
			name: "symptom_links",
			cypher: `UNWIND $rows AS row
MATCH (t:TumorType {name: row.tumor_type})
MATCH (s:Symptom {name: row.symptom})
CREATE (t)-[:CAUSES_SYMPTOM {frequency: row.frequency}]->(s)`,
			params: map[string]any{"rows": symptomLinkRows},
		},
		{
			name: "risk_links",
			cypher: `UNWIND $rows AS row
MATCH (c:Cause {name: row.cause})
MATCH (t:TumorType {name: row.tumor_type})
CREATE (c)-[:INCREASES_RISK_OF {risk: row.risk}]->(t)`,
			params: map[string]any{"rows": riskLinkRows},
		},
		{
			name: "treatment_links",
			cypher: `UNWIND $rows AS row
MATCH (t:TumorType {name: row.tumor_type})
MATCH (tr:Treatment {name: row.treatment})
CREATE (t)-[:TREATED_WITH {priority: row.priority}]->(tr)`,
			params: map[string]any{"rows": treatmentLinkRows},
		},
		{
			name: "diagnostic_links",
			cypher: `UNWIND $rows AS row
MATCH (d:Diagnostic {name: row.diagnostic})
MATCH (t:TumorType {name: row.tumor_type})
CREATE (d)-[:DIAGNOSES {role: row.role}]->(t)`,
			params: map[string]any{"rows": diagnosticLinkRows},
		},
	}
}
