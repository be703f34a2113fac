// Package model carries the static registry of supported Vertex AI
// models: which API family each model identifier belongs to and its
// requests-per-minute rate, from which per-model concurrency limits are
// derived. The registry is defined once and never mutated at runtime.
package model
