// Package llm sends the assembled prompt to a chat-completion endpoint.
//
// The Cerebras inference API speaks the OpenAI chat-completions wire, so the
// client is go-openai pointed at a configurable base URL, with bearer auth, a
// fixed sampling temperature, a max-output-token cap, and json_object
// response format. One request per run; failures are terminal.
//
// [Sanitize] strips markdown fences from replies when the model ignores the
// response-format instruction.
package llm
