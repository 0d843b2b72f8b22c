package knowledge

import (
	"context"
	"fmt"
	"sort"

	"github.com/neuroscan-ai/sdk/graph"
)

// Query identities carried by QueryError.
const (
	QuerySymptoms            = "symptoms"
	QueryCauses              = "causes"
	QueryTreatments          = "treatments"
	QueryDiagnostics         = "diagnostics"
	QuerySymptomsBySeverity  = "symptoms_by_severity"
	QueryTreatmentPriorities = "treatment_priorities"
)

// Parameterized Cypher templates. The ontology is fixed, so the statements
// are compiled in alongside it.
const (
	symptomsCypher = `MATCH (t:TumorType)-[r:CAUSES_SYMPTOM]->(s:Symptom)
RETURN s.name AS symptom, s.severity AS severity, r.frequency AS frequency`

	causesCypher = `MATCH (c:Cause)-[r:INCREASES_RISK_OF]->(t:TumorType)
RETURN c.name AS cause, c.category AS category, r.risk AS risk`

	treatmentsCypher = `MATCH (t:TumorType)-[r:TREATED_WITH]->(tr:Treatment)
RETURN tr.name AS treatment, tr.description AS description, tr.effectiveness AS effectiveness, r.priority AS priority`

	diagnosticsCypher = `MATCH (d:Diagnostic)-[r:DIAGNOSES]->(t:TumorType)
RETURN d.name AS method, d.description AS description, d.accuracy AS accuracy`

	symptomsBySeverityCypher = `MATCH (s:Symptom {severity: $severity})
RETURN s.name AS symptom`

	treatmentPrioritiesCypher = `MATCH (t:TumorType)-[r:TREATED_WITH]->(tr:Treatment)
RETURN t.name AS tumor_type, tr.name AS treatment, tr.description AS description, r.priority AS priority`
)

// Fixed recommendation lists returned with each bundle.
var (
	normalRecommendations = []string{
		"Continue regular health checkups",
		"Maintain healthy lifestyle",
		"Monitor for any new symptoms",
	}

	tumorRecommendations = []string{
		"Immediate consultation with a neurologist or neurosurgeon",
		"Additional diagnostic tests (biopsy) for tumor characterization",
		"Discussion of treatment options based on tumor type and location",
		"Consider second opinion from specialized cancer center",
	}
)

// normalMessage is the advisory text for a scan with no detected tumor.
const normalMessage = "No tumor detected. Brain scan appears normal."

// QueryError reports that a single read query failed. Lookup fails atomically
// when any sub-query errors; no partial bundle is returned.
type QueryError struct {
	// Query identifies the failed query (e.g. QueryCauses).
	Query string

	// Err is the underlying store error.
	Err error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("knowledge: %s query failed: %v", e.Query, e.Err)
}

// Unwrap returns the underlying store error.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Engine answers knowledge lookups against the graph store. It holds no
// state beyond the runner and is safe for concurrent use.
type Engine struct {
	runner graph.Runner
}

// NewEngine creates an Engine that reads through the given runner.
func NewEngine(runner graph.Runner) *Engine {
	return &Engine{runner: runner}
}

// Lookup translates the detection outcome into a facts bundle.
//
// With tumorDetected false it returns the Normal bundle without issuing any
// graph query. With tumorDetected true it runs the four read queries and
// merges the results; treatments are sorted ascending by priority rank with
// stable ties. Any sub-query failure aborts the whole lookup.
func (e *Engine) Lookup(ctx context.Context, tumorDetected bool) (*FactsBundle, error) {
	if !tumorDetected {
		return &FactsBundle{
			Status:          StatusNormal,
			Message:         normalMessage,
			Recommendations: append([]string(nil), normalRecommendations...),
		}, nil
	}

	symptoms, err := e.querySymptoms(ctx)
	if err != nil {
		return nil, err
	}
	causes, err := e.queryCauses(ctx)
	if err != nil {
		return nil, err
	}
	treatments, err := e.queryTreatments(ctx)
	if err != nil {
		return nil, err
	}
	diagnostics, err := e.queryDiagnostics(ctx)
	if err != nil {
		return nil, err
	}

	return &FactsBundle{
		Status:          StatusTumorDetected,
		Symptoms:        symptoms,
		Causes:          causes,
		Treatments:      treatments,
		Diagnostics:     diagnostics,
		Recommendations: append([]string(nil), tumorRecommendations...),
	}, nil
}

// SymptomsBySeverity returns the names of all symptoms whose severity exactly
// matches the given value.
func (e *Engine) SymptomsBySeverity(ctx context.Context, severity string) ([]string, error) {
	records, err := e.runner.Run(ctx, symptomsBySeverityCypher, map[string]any{"severity": severity})
	if err != nil {
		return nil, &QueryError{Query: QuerySymptomsBySeverity, Err: err}
	}

	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, stringField(rec, "symptom"))
	}
	return names, nil
}

// AllTreatmentPriorities returns the full tumor-type/treatment join across
// every tumor type, unordered. The seeded ontology links treatments to one
// tumor type today; the join shape supports multi-tumor ontologies.
func (e *Engine) AllTreatmentPriorities(ctx context.Context) ([]TreatmentPriorityRow, error) {
	records, err := e.runner.Run(ctx, treatmentPrioritiesCypher, nil)
	if err != nil {
		return nil, &QueryError{Query: QueryTreatmentPriorities, Err: err}
	}

	rows := make([]TreatmentPriorityRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, TreatmentPriorityRow{
			TumorType:   stringField(rec, "tumor_type"),
			Treatment:   stringField(rec, "treatment"),
			Description: stringField(rec, "description"),
			Priority:    TreatmentPriority(stringField(rec, "priority")),
		})
	}
	return rows, nil
}

func (e *Engine) querySymptoms(ctx context.Context) ([]SymptomRow, error) {
	records, err := e.runner.Run(ctx, symptomsCypher, nil)
	if err != nil {
		return nil, &QueryError{Query: QuerySymptoms, Err: err}
	}

	rows := make([]SymptomRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, SymptomRow{
			Name:      stringField(rec, "symptom"),
			Severity:  stringField(rec, "severity"),
			Frequency: stringField(rec, "frequency"),
		})
	}
	return rows, nil
}

func (e *Engine) queryCauses(ctx context.Context) ([]CauseRow, error) {
	records, err := e.runner.Run(ctx, causesCypher, nil)
	if err != nil {
		return nil, &QueryError{Query: QueryCauses, Err: err}
	}

	rows := make([]CauseRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, CauseRow{
			Name:     stringField(rec, "cause"),
			Category: stringField(rec, "category"),
			Risk:     stringField(rec, "risk"),
		})
	}
	return rows, nil
}

func (e *Engine) queryTreatments(ctx context.Context) ([]TreatmentRow, error) {
	records, err := e.runner.Run(ctx, treatmentsCypher, nil)
	if err != nil {
		return nil, &QueryError{Query: QueryTreatments, Err: err}
	}

	rows := make([]TreatmentRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, TreatmentRow{
			Name:          stringField(rec, "treatment"),
			Description:   stringField(rec, "description"),
			Effectiveness: stringField(rec, "effectiveness"),
			Priority:      TreatmentPriority(stringField(rec, "priority")),
		})
	}

	// Ascending by ordinal rank, stable so equal-rank rows keep traversal
	// order. The first element is what the report presents first.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Priority.Rank() < rows[j].Priority.Rank()
	})
	return rows, nil
}

func (e *Engine) queryDiagnostics(ctx context.Context) ([]DiagnosticRow, error) {
	records, err := e.runner.Run(ctx, diagnosticsCypher, nil)
	if err != nil {
		return nil, &QueryError{Query: QueryDiagnostics, Err: err}
	}

	rows := make([]DiagnosticRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, DiagnosticRow{
			Method:      stringField(rec, "method"),
			Description: stringField(rec, "description"),
			Accuracy:    stringField(rec, "accuracy"),
		})
	}
	return rows, nil
}

// stringField extracts a string column from a record, tolerating missing or
// differently typed values by returning "".
func stringField(rec graph.Record, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}
