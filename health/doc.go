// Package health provides reusable health check functions for NeuroScan
// deployments. It offers standardized ways to verify the knowledge store,
// the classifier weights, and local storage before accepting analysis runs.
//
//	status := health.FileCheck(cfg.Model.Path)
//	if status.IsUnhealthy() {
//	    log.Fatal("classifier weights missing")
//	}
//
// Checks return a Status rather than an error so degraded-but-usable states
// can be reported without aborting startup.
package health
