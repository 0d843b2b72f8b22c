// Package queue provides a Redis-backed job queue for analysis runs.
//
// Deployments that accept uploads faster than they can analyze them enqueue
// an AnalysisJob per image; worker processes dequeue jobs, run the pipeline,
// and publish a Result on a pub/sub channel for the submitter to collect:
//
//	job := queue.NewAnalysisJob("uploads/scan_042.jpg", &patient)
//	if err := client.Enqueue(ctx, queue.DefaultQueue, job); err != nil {
//	    return err
//	}
//
//	// worker side
//	job, err := client.Dequeue(ctx, queue.DefaultQueue) // blocks
//
// The queue carries work items only; it is not used as a cache and the
// pipeline itself never reads from it.
package queue
