// Package openai provides an implementation of the generation.Generator
// interface using the OpenAI chat completions API.
package openai
