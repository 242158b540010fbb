package interp

import "fmt"

// DefaultDensity is the number of generated points per segment.
const DefaultDensity = 100

// MinDensity is the smallest density that still spans both segment endpoints.
const MinDensity = 2

// DefaultCheckOrder enables the strictly-increasing x precondition check.
const DefaultCheckOrder = true

// Options configures Interpolate.
//
// Fields:
//   - Density: generated points per segment (endpoints included).
//   - CheckOrder: reject x that is not strictly increasing with ErrInvalidInput.
//     When disabled the caller owns that precondition; violating it yields
//     meaningless (but non-panicking) output.
type Options struct {
	Density    int
	CheckOrder bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Density: DefaultDensity, CheckOrder: DefaultCheckOrder}
}

// WithDensity sets the number of generated points per segment.
// Panics if n < MinDensity (programmer error).
func WithDensity(n int) Option {
	if n < MinDensity {
		panic(fmt.Sprintf("interp: WithDensity: density must be >= %d, got %d", MinDensity, n))
	}

	return func(o *Options) { o.Density = n }
}

// WithoutOrderCheck skips the strictly-increasing x validation.
func WithoutOrderCheck() Option {
	return func(o *Options) { o.CheckOrder = false }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
