// Package llm defines the narrative-generator boundary of the NeuroScan SDK.
//
// The pipeline talks to a language model exactly twice per analysis run: once
// to produce the medical explanation and once to synthesize the final report.
// Both calls go through the Client interface, so any provider can be plugged
// in (a hosted chat API, a local model, or a test fake):
//
//	resp, err := client.Complete(ctx, llm.NewRequest(
//	    llm.NewSystemMessage("You are a medical expert..."),
//	    llm.NewUserMessage(prompt),
//	), llm.WithTemperature(0.7))
//
// The package carries only the request/response shapes; prompt composition
// lives with the pipeline that owns the templates.
package llm
