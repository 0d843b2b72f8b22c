// Package graph owns the connection to the Neo4j knowledge store and provides
// scoped query execution for the rest of the SDK.
//
// A Store is created once per process with Connect, which verifies liveness
// before returning and tolerates a store that is still starting up by
// retrying the connectivity check a fixed number of times:
//
//	store, err := graph.Connect(ctx, graph.Config{
//	    URI:      "bolt://localhost:7687",
//	    Username: "neo4j",
//	    Password: password,
//	})
//	if err != nil {
//	    log.Fatal(err) // the process must not proceed without a live store
//	}
//	defer store.Close(ctx)
//
// Query execution goes through the Runner interface, which higher layers
// (the ontology seeder and the knowledge query engine) depend on instead of
// the concrete driver, keeping them testable without a live database:
//
//	records, err := store.Run(ctx,
//	    "MATCH (s:Symptom {severity: $severity}) RETURN s.name AS symptom",
//	    map[string]any{"severity": "High"})
//
// Every Run call is a fresh round trip; the package performs no result
// caching. Each call acquires its own session, so a single shared Store is
// safe for concurrent analysis runs.
package graph
