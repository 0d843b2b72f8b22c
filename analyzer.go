package neuroscan

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/neuroscan-ai/sdk/health"
	"github.com/neuroscan-ai/sdk/knowledge"
	"github.com/neuroscan-ai/sdk/llm"
	"github.com/neuroscan-ai/sdk/ontology"
	"github.com/neuroscan-ai/sdk/types"
)

// instrumentationName identifies this module in telemetry.
const instrumentationName = "github.com/neuroscan-ai/sdk"

// defaultTemperature is the sampling temperature for both narrative calls
// unless WithTemperature overrides it.
const defaultTemperature = 0.7

// Classifier labels an MRI image. Implementations wrap the external model
// runtime serving the trained classifier.
type Classifier interface {
	// Classify returns the detection outcome for the image at imagePath.
	Classify(ctx context.Context, imagePath string) (types.Classification, error)
}

// Renderer produces the Grad-CAM explanation image for a classified scan.
type Renderer interface {
	// RenderExplanation writes the heat-map overlay for imagePath to
	// outputPath.
	RenderExplanation(ctx context.Context, imagePath, outputPath string) error
}

// RunInput is the request for one analysis run.
type RunInput struct {
	// ImagePath locates the MRI image to analyze. Required.
	ImagePath string

	// Patient carries optional patient metadata for the report. Absent
	// fields are presented as "N/A".
	Patient *types.PatientInfo
}

// Analyzer orchestrates the analysis pipeline. It is safe for concurrent
// use; each Run is independent.
type Analyzer struct {
	classifier Classifier
	renderer   Renderer
	generator  llm.Client
	engine     *knowledge.Engine

	seeder      *ontology.Seeder
	verifier    health.ConnectivityVerifier
	modelPath   string
	storageDirs []string

	logger      *slog.Logger
	tracer      trace.Tracer
	runs        metric.Int64Counter
	now         func() time.Time
	temperature float64
}

// New creates an Analyzer from its four required collaborators. All four must
// be non-nil; optional behavior is attached through Options.
func New(classifier Classifier, renderer Renderer, generator llm.Client, engine *knowledge.Engine, opts ...Option) (*Analyzer, error) {
	missing := ""
	switch {
	case classifier == nil:
		missing = "classifier"
	case renderer == nil:
		missing = "renderer"
	case generator == nil:
		missing = "generator"
	case engine == nil:
		missing = "engine"
	}
	if missing != "" {
		return nil, &Error{
			Op:      "New",
			Kind:    KindValidation,
			Err:     ErrNotConfigured,
			Context: map[string]any{"missing": missing},
		}
	}

	cfg := analyzerConfig{
		logger:         slog.Default(),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
		now:            time.Now,
		temperature:    defaultTemperature,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.meterProvider.Meter(instrumentationName)
	runs, err := meter.Int64Counter("neuroscan.analysis.runs",
		metric.WithDescription("Completed and failed analysis runs"))
	if err != nil {
		return nil, &Error{Op: "New", Kind: KindInternal, Err: err}
	}

	return &Analyzer{
		classifier:  classifier,
		renderer:    renderer,
		generator:   generator,
		engine:      engine,
		seeder:      cfg.seeder,
		verifier:    cfg.verifier,
		modelPath:   cfg.modelPath,
		storageDirs: cfg.storageDirs,
		logger:      cfg.logger,
		tracer:      cfg.tracerProvider.Tracer(instrumentationName),
		runs:        runs,
		now:         cfg.now,
		temperature: cfg.temperature,
	}, nil
}

// Run executes the full pipeline for one image and returns the assembled
// result. The stages run strictly in order; the first failing stage aborts
// the run with a *StageError and no partial result is returned.
func (a *Analyzer) Run(ctx context.Context, input RunInput) (*types.AnalysisResult, error) {
	if input.ImagePath == "" {
		return nil, &Error{
			Op:      "Analyzer.Run",
			Kind:    KindValidation,
			Err:     ErrInvalidInput,
			Context: map[string]any{"missing": "image_path"},
		}
	}

	runID := uuid.NewString()
	ctx, span := a.tracer.Start(ctx, "neuroscan.run", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.String("image.path", input.ImagePath),
	))
	defer span.End()

	state := stateStart
	a.logger.Info("analysis run started",
		"run_id", runID, "state", state.String(), "image_path", input.ImagePath)

	var classification types.Classification
	err := a.stage(ctx, StageClassify, func(ctx context.Context) error {
		var err error
		classification, err = a.classifier.Classify(ctx, input.ImagePath)
		if err != nil {
			return err
		}
		return classification.Validate()
	})
	if err != nil {
		return nil, a.fail(ctx, span, runID, StageClassify, err)
	}
	state = stateClassified
	a.logger.Info("image classified",
		"run_id", runID, "state", state.String(),
		"label", classification.Label, "confidence", classification.Confidence)

	gradcamPath := GradCAMPath(input.ImagePath)
	err = a.stage(ctx, StageRender, func(ctx context.Context) error {
		return a.renderer.RenderExplanation(ctx, input.ImagePath, gradcamPath)
	})
	if err != nil {
		return nil, a.fail(ctx, span, runID, StageRender, err)
	}
	a.logger.Debug("explanation image rendered",
		"run_id", runID, "gradcam_path", gradcamPath)

	var bundle *knowledge.FactsBundle
	var explanation string
	err = a.stage(ctx, StageExplain, func(ctx context.Context) error {
		var err error
		bundle, err = a.engine.Lookup(ctx, classification.TumorDetected)
		if err != nil {
			return err
		}
		resp, err := a.complete(ctx, explanationPrompt(classification, bundle))
		if err != nil {
			return err
		}
		explanation = resp.Content
		return nil
	})
	if err != nil {
		return nil, a.fail(ctx, span, runID, StageExplain, err)
	}
	state = stateExplained
	a.logger.Info("explanation generated",
		"run_id", runID, "state", state.String(), "status", bundle.Status)

	timestamp := a.now()
	summary := classificationSummary(classification, gradcamPath)
	var report string
	err = a.stage(ctx, StageReport, func(ctx context.Context) error {
		prompt := reportPrompt(input.Patient, summary,
			explanationReport(explanation, bundle), timestamp)
		resp, err := a.complete(ctx, prompt)
		if err != nil {
			return err
		}
		report = resp.Content
		return nil
	})
	if err != nil {
		return nil, a.fail(ctx, span, runID, StageReport, err)
	}
	state = stateReported

	result := &types.AnalysisResult{
		RunID:          runID,
		Timestamp:      timestamp,
		ImagePath:      input.ImagePath,
		Patient:        input.Patient,
		Classification: classification,
		Report:         report,
		GradCAMPath:    gradcamPath,
	}

	state = stateDone
	span.SetStatus(codes.Ok, "")
	a.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "completed")))
	a.logger.Info("analysis run completed",
		"run_id", runID, "state", state.String(), "label", classification.Label)
	return result, nil
}

// SeedKnowledgeBase populates the graph store with the medical ontology.
// Requires a seeder attached via WithSeeder.
func (a *Analyzer) SeedKnowledgeBase(ctx context.Context) error {
	if a.seeder == nil {
		return &Error{
			Op:      "Analyzer.SeedKnowledgeBase",
			Kind:    KindValidation,
			Err:     ErrNotConfigured,
			Context: map[string]any{"missing": "seeder"},
		}
	}
	return a.seeder.Seed(ctx)
}

// Health probes the targets attached via WithHealthChecks and returns a
// report keyed by component name. Unconfigured targets are skipped.
func (a *Analyzer) Health(ctx context.Context) health.Report {
	report := health.Report{}
	if a.verifier != nil {
		report["graph"] = health.GraphCheck(ctx, a.verifier)
	}
	if a.modelPath != "" {
		report["model"] = health.FileCheck(a.modelPath)
	}
	for _, dir := range a.storageDirs {
		report["storage:"+dir] = health.DirWritableCheck(dir)
	}
	return report
}

// stage runs fn inside a child span named after the stage.
func (a *Analyzer) stage(ctx context.Context, s Stage, fn func(context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, "neuroscan.stage."+s.String())
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// complete issues one narrative-generator call with the configured
// temperature.
func (a *Analyzer) complete(ctx context.Context, prompt string) (llm.CompletionResponse, error) {
	req := llm.NewRequest(llm.NewUserMessage(prompt))
	return a.generator.Complete(ctx, req, llm.WithTemperature(a.temperature))
}

// fail records the stage failure on the run span and counter, logs it, and
// wraps it for the caller.
func (a *Analyzer) fail(ctx context.Context, span trace.Span, runID string, stage Stage, err error) error {
	serr := &StageError{Stage: stage, Err: err}
	span.RecordError(serr)
	span.SetStatus(codes.Error, serr.Error())
	a.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", "failed"),
		attribute.String("stage", stage.String()),
	))
	a.logger.Error("analysis run failed",
		"run_id", runID, "state", stateFailed.String(),
		"stage", stage.String(), "error", err)
	return serr
}
