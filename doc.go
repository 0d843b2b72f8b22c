// Package neuroscan provides the analysis pipeline of the NeuroScan SDK:
// a structured medical report produced from an MRI image by chaining image
// classification, knowledge-graph lookup, and narrative synthesis.
//
// # Architecture
//
// An Analyzer sequences three stages per run:
//
//   - Classify: the external classifier labels the image and the heat-map
//     renderer writes the explanation image next to it.
//   - Explain: the knowledge engine turns the detection outcome into a
//     medical facts bundle and the narrative model expands it into a
//     medical explanation.
//   - Report: the narrative model synthesizes the final report from the
//     classification summary, the explanation, and patient metadata.
//
// The stages are strictly sequential within a run; separate runs are
// independent and may execute concurrently against the shared graph store.
//
// # Getting Started
//
//	store, err := graph.Connect(ctx, graph.Config{URI: cfg.Graph.URI, Username: cfg.Graph.Username, Password: cfg.Graph.Password})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close(ctx)
//
//	analyzer, err := neuroscan.New(classifier, renderer, llmClient,
//	    knowledge.NewEngine(store),
//	    neuroscan.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := analyzer.Run(ctx, neuroscan.RunInput{
//	    ImagePath: "uploads/scan_042.jpg",
//	    Patient:   &types.PatientInfo{Name: "Jane Doe", Age: "54"},
//	})
//
// A failed run returns a *StageError naming the failing stage and produces
// no partial result.
package neuroscan
