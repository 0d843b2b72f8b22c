package neuroscan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/neuroscan-ai/sdk/graph"
	"github.com/neuroscan-ai/sdk/knowledge"
	"github.com/neuroscan-ai/sdk/llm"
	"github.com/neuroscan-ai/sdk/ontology"
	"github.com/neuroscan-ai/sdk/types"
)

type fakeClassifier struct {
	result types.Classification
	err    error
	calls  int
	path   string
}

func (f *fakeClassifier) Classify(_ context.Context, imagePath string) (types.Classification, error) {
	f.calls++
	f.path = imagePath
	return f.result, f.err
}

type fakeRenderer struct {
	err    error
	calls  int
	input  string
	output string
}

func (f *fakeRenderer) RenderExplanation(_ context.Context, imagePath, outputPath string) error {
	f.calls++
	f.input = imagePath
	f.output = outputPath
	return f.err
}

type fakeGenerator struct {
	responses []string
	errAt     int
	err       error
	calls     int
	prompts   []string
	temps     []*float64
}

func (f *fakeGenerator) Complete(_ context.Context, req llm.CompletionRequest, opts ...llm.CompletionOption) (llm.CompletionResponse, error) {
	req.ApplyOptions(opts...)
	f.calls++
	f.prompts = append(f.prompts, req.Messages[len(req.Messages)-1].Content)
	f.temps = append(f.temps, req.Temperature)
	if f.err != nil && f.calls == f.errAt {
		return llm.CompletionResponse{}, f.err
	}
	content := ""
	if n := f.calls - 1; n < len(f.responses) {
		content = f.responses[n]
	}
	return llm.CompletionResponse{Content: content, FinishReason: "stop"}, nil
}

// countingRunner serves empty result sets for every read query and records
// how many statements were issued.
type countingRunner struct {
	calls   int
	cyphers []string
	err     error
}

func (r *countingRunner) Run(_ context.Context, cypher string, _ map[string]any) ([]graph.Record, error) {
	r.calls++
	r.cyphers = append(r.cyphers, cypher)
	if r.err != nil {
		return nil, r.err
	}
	return nil, nil
}

func tumorClassification() types.Classification {
	return types.Classification{
		Label:         types.LabelTumor,
		Confidence:    0.973,
		TumorDetected: true,
		RawScore:      0.9731,
	}
}

func normalClassification() types.Classification {
	return types.Classification{
		Label:         types.LabelNormal,
		Confidence:    0.88,
		TumorDetected: false,
		RawScore:      0.12,
	}
}

func newTestAnalyzer(t *testing.T, classifier *fakeClassifier, renderer *fakeRenderer, generator *fakeGenerator, runner graph.Runner, opts ...Option) *Analyzer {
	t.Helper()
	a, err := New(classifier, renderer, generator, knowledge.NewEngine(runner), opts...)
	require.NoError(t, err)
	return a
}

func TestNewRequiresCollaborators(t *testing.T) {
	engine := knowledge.NewEngine(&countingRunner{})
	gen := &fakeGenerator{}

	tests := []struct {
		name    string
		build   func() (*Analyzer, error)
		missing string
	}{
		{
			name: "nil classifier",
			build: func() (*Analyzer, error) {
				return New(nil, &fakeRenderer{}, gen, engine)
			},
			missing: "classifier",
		},
		{
			name: "nil renderer",
			build: func() (*Analyzer, error) {
				return New(&fakeClassifier{}, nil, gen, engine)
			},
			missing: "renderer",
		},
		{
			name: "nil generator",
			build: func() (*Analyzer, error) {
				return New(&fakeClassifier{}, &fakeRenderer{}, nil, engine)
			},
			missing: "generator",
		},
		{
			name: "nil engine",
			build: func() (*Analyzer, error) {
				return New(&fakeClassifier{}, &fakeRenderer{}, gen, nil)
			},
			missing: "engine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.build()
			assert.Nil(t, a)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotConfigured)

			var serr *Error
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, KindValidation, serr.Kind)
			assert.Equal(t, tt.missing, serr.Context["missing"])
		})
	}
}

func TestRunRejectsEmptyImagePath(t *testing.T) {
	a := newTestAnalyzer(t, &fakeClassifier{result: tumorClassification()},
		&fakeRenderer{}, &fakeGenerator{}, &countingRunner{})

	result, err := a.Run(context.Background(), RunInput{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRunTumorPath(t *testing.T) {
	classifier := &fakeClassifier{result: tumorClassification()}
	renderer := &fakeRenderer{}
	generator := &fakeGenerator{responses: []string{"the explanation", "the final report"}}
	runner := &countingRunner{}
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	a := newTestAnalyzer(t, classifier, renderer, generator, runner,
		WithClock(func() time.Time { return now }))

	patient := &types.PatientInfo{Name: "Jane Doe", Age: "54"}
	result, err := a.Run(context.Background(), RunInput{
		ImagePath: "uploads/scan_042.jpg",
		Patient:   patient,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, now, result.Timestamp)
	assert.Equal(t, "uploads/scan_042.jpg", result.ImagePath)
	assert.Equal(t, patient, result.Patient)
	assert.Equal(t, tumorClassification(), result.Classification)
	assert.Equal(t, "the final report", result.Report)
	assert.Equal(t, "uploads/scan_042_gradcam.jpg", result.GradCAMPath)

	assert.Equal(t, 1, classifier.calls)
	assert.Equal(t, "uploads/scan_042.jpg", classifier.path)
	assert.Equal(t, 1, renderer.calls)
	assert.Equal(t, "uploads/scan_042_gradcam.jpg", renderer.output)
	assert.Equal(t, 4, runner.calls)

	require.Equal(t, 2, generator.calls)
	explain := generator.prompts[0]
	assert.Contains(t, explain, "medical expert")
	assert.Contains(t, explain, "Diagnosis: Tumor")
	assert.Contains(t, explain, "Confidence: 97.3%")
	assert.Contains(t, explain, "Tumor Detected")

	report := generator.prompts[1]
	assert.Contains(t, report, "medical documentation specialist")
	assert.Contains(t, report, "Name: Jane Doe")
	assert.Contains(t, report, "Gender: N/A")
	assert.Contains(t, report, "Raw Prediction Score: 0.9731")
	assert.Contains(t, report, "uploads/scan_042_gradcam.jpg")
	assert.Contains(t, report, "the explanation")
	assert.Contains(t, report, "Report Timestamp: 2026-03-14 09:26:53")
	assert.Contains(t, report, "Knowledge Base Statistics")

	for _, temp := range generator.temps {
		require.NotNil(t, temp)
		assert.Equal(t, 0.7, *temp)
	}
}

func TestRunNormalPathSkipsGraph(t *testing.T) {
	generator := &fakeGenerator{responses: []string{"all clear", "normal report"}}
	runner := &countingRunner{}

	a := newTestAnalyzer(t, &fakeClassifier{result: normalClassification()},
		&fakeRenderer{}, generator, runner)

	result, err := a.Run(context.Background(), RunInput{ImagePath: "uploads/scan_007.png"})
	require.NoError(t, err)

	assert.Equal(t, 0, runner.calls)
	assert.Equal(t, "normal report", result.Report)
	assert.Nil(t, result.Patient)

	require.Equal(t, 2, generator.calls)
	assert.Contains(t, generator.prompts[0], "No tumor detected. Brain scan appears normal.")
	assert.Contains(t, generator.prompts[1], "No patient information provided")
}

func TestRunRenderFailureAbortsBeforeGeneration(t *testing.T) {
	renderErr := errors.New("overlay write failed")
	generator := &fakeGenerator{}
	runner := &countingRunner{}

	a := newTestAnalyzer(t, &fakeClassifier{result: tumorClassification()},
		&fakeRenderer{err: renderErr}, generator, runner)

	result, err := a.Run(context.Background(), RunInput{ImagePath: "uploads/scan_042.jpg"})
	assert.Nil(t, result)

	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageRender, serr.Stage)
	assert.ErrorIs(t, err, renderErr)

	assert.Equal(t, 0, generator.calls)
	assert.Equal(t, 0, runner.calls)
}

func TestRunClassifierFailure(t *testing.T) {
	boom := errors.New("model runtime unavailable")
	renderer := &fakeRenderer{}

	a := newTestAnalyzer(t, &fakeClassifier{err: boom}, renderer,
		&fakeGenerator{}, &countingRunner{})

	result, err := a.Run(context.Background(), RunInput{ImagePath: "scan.jpg"})
	assert.Nil(t, result)

	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageClassify, serr.Stage)
	assert.Equal(t, 0, renderer.calls)
}

func TestRunInvalidClassificationFailsClassifyStage(t *testing.T) {
	classifier := &fakeClassifier{result: types.Classification{Label: "Maybe"}}

	a := newTestAnalyzer(t, classifier, &fakeRenderer{}, &fakeGenerator{}, &countingRunner{})

	_, err := a.Run(context.Background(), RunInput{ImagePath: "scan.jpg"})
	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageClassify, serr.Stage)
}

func TestRunLookupFailureFailsExplainStage(t *testing.T) {
	storeErr := errors.New("session expired")
	generator := &fakeGenerator{}

	a := newTestAnalyzer(t, &fakeClassifier{result: tumorClassification()},
		&fakeRenderer{}, generator, &countingRunner{err: storeErr})

	_, err := a.Run(context.Background(), RunInput{ImagePath: "scan.jpg"})
	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageExplain, serr.Stage)

	var qerr *knowledge.QueryError
	assert.ErrorAs(t, err, &qerr)
	assert.Equal(t, 0, generator.calls)
}

func TestRunReportFailureFailsReportStage(t *testing.T) {
	generator := &fakeGenerator{
		responses: []string{"the explanation"},
		errAt:     2,
		err:       errors.New("rate limited"),
	}

	a := newTestAnalyzer(t, &fakeClassifier{result: normalClassification()},
		&fakeRenderer{}, generator, &countingRunner{})

	result, err := a.Run(context.Background(), RunInput{ImagePath: "scan.jpg"})
	assert.Nil(t, result)

	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageReport, serr.Stage)
	assert.Equal(t, 2, generator.calls)
}

func TestRunWithTemperatureOverride(t *testing.T) {
	generator := &fakeGenerator{responses: []string{"a", "b"}}

	a := newTestAnalyzer(t, &fakeClassifier{result: normalClassification()},
		&fakeRenderer{}, generator, &countingRunner{},
		WithTemperature(0.2))

	_, err := a.Run(context.Background(), RunInput{ImagePath: "scan.jpg"})
	require.NoError(t, err)
	for _, temp := range generator.temps {
		require.NotNil(t, temp)
		assert.Equal(t, 0.2, *temp)
	}
}

func TestRunEmitsStageSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	a := newTestAnalyzer(t, &fakeClassifier{result: normalClassification()},
		&fakeRenderer{}, &fakeGenerator{responses: []string{"a", "b"}}, &countingRunner{},
		WithTracerProvider(tp))

	_, err := a.Run(context.Background(), RunInput{ImagePath: "scan.jpg"})
	require.NoError(t, err)

	names := make([]string, 0)
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{
		"neuroscan.stage.classify",
		"neuroscan.stage.render",
		"neuroscan.stage.explain",
		"neuroscan.stage.report",
		"neuroscan.run",
	}, names)
}

func TestRunSpanRecordsFailure(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	a := newTestAnalyzer(t, &fakeClassifier{result: tumorClassification()},
		&fakeRenderer{err: errors.New("disk full")}, &fakeGenerator{}, &countingRunner{},
		WithTracerProvider(tp))

	_, err := a.Run(context.Background(), RunInput{ImagePath: "scan.jpg"})
	require.Error(t, err)

	spans := recorder.Ended()
	require.NotEmpty(t, spans)
	run := spans[len(spans)-1]
	assert.Equal(t, "neuroscan.run", run.Name())
	assert.NotEmpty(t, run.Events())
}

func TestSeedKnowledgeBase(t *testing.T) {
	runner := &countingRunner{}
	seeder := ontology.NewSeeder(runner)

	a := newTestAnalyzer(t, &fakeClassifier{result: normalClassification()},
		&fakeRenderer{}, &fakeGenerator{}, runner,
		WithSeeder(seeder))

	require.NoError(t, a.SeedKnowledgeBase(context.Background()))
	assert.Greater(t, runner.calls, 0)
	require.NotEmpty(t, runner.cyphers)
	assert.Contains(t, runner.cyphers[0], "DETACH DELETE")
}

func TestSeedKnowledgeBaseWithoutSeeder(t *testing.T) {
	a := newTestAnalyzer(t, &fakeClassifier{result: normalClassification()},
		&fakeRenderer{}, &fakeGenerator{}, &countingRunner{})

	err := a.SeedKnowledgeBase(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestHealthReportsConfiguredTargets(t *testing.T) {
	a := newTestAnalyzer(t, &fakeClassifier{result: normalClassification()},
		&fakeRenderer{}, &fakeGenerator{}, &countingRunner{})

	report := a.Health(context.Background())
	assert.Empty(t, report)
	assert.True(t, report.Healthy())

	dir := t.TempDir()
	b := newTestAnalyzer(t, &fakeClassifier{result: normalClassification()},
		&fakeRenderer{}, &fakeGenerator{}, &countingRunner{},
		WithHealthChecks(nil, "does/not/exist.keras", dir))

	report = b.Health(context.Background())
	assert.True(t, report["model"].IsUnhealthy())
	assert.True(t, report["storage:"+dir].IsHealthy())
	assert.False(t, report.Healthy())
}
