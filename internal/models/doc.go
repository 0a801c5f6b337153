// Package models lists the OpenAI chat models that the fallback
// transcriber can use with the configured API key.
package models
