// Package ontology defines the fixed medical knowledge dataset for brain
// tumor analysis and the seeder that installs it into the graph store.
//
// The ontology is small and fixed domain data (tens of nodes), so it is
// compiled in rather than loaded from configuration. It covers five entity
// types — tumor types, symptoms, causes, treatments, and diagnostics — and
// the four typed relationships between them.
//
// Seeding is destructive and idempotent: every Seed call deletes the entire
// graph and recreates it from the compiled-in dataset, so the end state is
// identical regardless of what was there before:
//
//	seeder := ontology.NewSeeder(store)
//	if err := seeder.Seed(ctx); err != nil {
//	    var se *ontology.SeedError
//	    if errors.As(err, &se) {
//	        log.Error("seeding failed", "step", se.Step)
//	    }
//	}
//
// Seed is an administrative operation. It is not transactional across the
// statement sequence and is not safe to run concurrently with in-flight
// lookups; deployments should run it with no concurrent read traffic.
package ontology
