package pipeline

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/thermofit/interp"
)

// Options configures Analyze.
type Options struct {
	Density     int
	Concurrency int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns interp.DefaultDensity and one worker per GOMAXPROCS.
func DefaultOptions() Options {
	return Options{
		Density:     interp.DefaultDensity,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithDensity forwards the interpolation density. Panics if n < interp.MinDensity.
func WithDensity(n int) Option {
	if n < interp.MinDensity {
		panic(fmt.Sprintf("pipeline: WithDensity: density must be >= %d, got %d", interp.MinDensity, n))
	}

	return func(o *Options) { o.Density = n }
}

// WithConcurrency bounds the number of channels analysed at once. Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("pipeline: WithConcurrency: need at least one worker, got %d", n))
	}

	return func(o *Options) { o.Concurrency = n }
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
