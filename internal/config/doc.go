// Package config resolves cerascan configuration once at startup.
//
// Precedence (highest to lowest):
//  1. CLI flags (passed in as an override map)
//  2. Environment variables (CEREBRAS_BASE_URL, CEREBRAS_API_KEY,
//     CEREBRAS_MODEL_ID, CEREBRAS_MAX_TOKENS)
//  3. Built-in defaults
//
// The resulting [Config] value is handed to the pipeline components; nothing
// reads ambient process state after [Load] returns. A missing API key is the
// one fatal configuration error and is reported before any network activity.
package config
