// Package pipeline drives the per-channel analysis: for every channel it runs
// the piecewise-linear interpolator and the least-squares solver, and it
// writes one equation report per channel.
//
// Channels are independent, so Analyze fans them out over a bounded set of
// goroutines. Each call owns its inputs and outputs; nothing is shared
// between channels except the read-only time axis.
//
// Failures of individual channels are collected into a single
// *multierror.Error; Analyze never returns partial results.
package pipeline
