// Package pipeline fans motif files out to a fixed pool of workers. Each
// worker builds the motif's PWM, scores every peak through a Scorer and
// writes one cache entry per TF bound by the motif.
//
// The only contract to implement is Scorer (ScoreAll).
// This keeps the pipeline swappable and testable.
package pipeline
