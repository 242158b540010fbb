// Package readings parses raw per-core temperature logs.
//
// The input format is one line per sampling step, each line holding one
// whitespace-separated temperature per CPU core:
//
//	61.0 63.0 50.0 58.0
//	80.0 81.0 68.0 77.0
//	62.0 63.0 52.0 60.0
//
// Line k (blank lines excluded) is stamped with time k·StepSize seconds.
// Channels transposes parsed readings into the parallel x / y sequences the
// interp and lsq packages consume.
package readings
