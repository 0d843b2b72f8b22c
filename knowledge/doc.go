// Package knowledge translates a binary classification outcome into a
// structured bundle of medical facts drawn from the graph store.
//
// The single entry point is Engine.Lookup:
//
//	engine := knowledge.NewEngine(store)
//	bundle, err := engine.Lookup(ctx, classification.TumorDetected)
//
// When no tumor was detected, Lookup short-circuits without touching the
// store and returns a Normal bundle with fixed wellness recommendations.
// When a tumor was detected, it issues four read queries (symptoms, causes,
// treatments, diagnostics) and merges them; treatments are always returned
// in priority-rank order so callers can present the primary option first.
//
// Lookup fails atomically: if any of the four queries errors, the whole call
// returns a QueryError naming the failed query and no partial bundle is
// produced. Empty result sets are not errors — an unseeded store yields a
// bundle with empty lists.
package knowledge
