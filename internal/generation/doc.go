// Package generation provides the boundary between the application and
// external text-generation (LLM) services. It defines the Generator
// interface implemented by the OpenAI and Gemini adapters, an optional
// capability wrapper (Client) that makes "not configured" an explicit state,
// the prompt sent to the model, and the deterministic keyword heuristic used
// when no model is available or the model call fails.
package generation
