// SPDX-License-Identifier: MIT
// Package synth generates deterministic synthetic per-core temperature logs.
//
// Purpose:
//   - Provide reproducible multi-channel fixtures for tests and benchmarks.
//   - Shape: idle baseline + triangular load pulses + linear drift + Gaussian noise.
//
// Contract:
//   - Trace(n, seed, opts...) returns n sample times and one slice of n
//     temperatures per core. Identical (n, seed, options) give identical output.
//   - O(n·cores) time and memory; no global state.
package synth

import (
	"fmt"
	"math"
	"math/rand"
)

// Defaults (no magic numbers).
const (
	DefaultCores     = 4
	DefaultStep      = 30.0  // seconds between samples
	DefaultBaseline  = 45.0  // idle temperature, °C
	DefaultAmplitude = 25.0  // pulse height above baseline, °C
	DefaultFrequency = 0.05  // pulse frequency in cycles/sample (period 20)
	DefaultDrift     = 0.01  // °C added per sample
	DefaultSigma     = 0.75  // Gaussian noise, °C
	coreSpread       = 1.5   // per-core baseline offset, °C
	phaseShift       = 0.125 // per-core pulse phase offset, cycles
)

// Options holds every generator knob.
type Options struct {
	Cores     int
	Step      float64
	Baseline  float64
	Amplitude float64
	Frequency float64
	Drift     float64
	Sigma     float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Cores:     DefaultCores,
		Step:      DefaultStep,
		Baseline:  DefaultBaseline,
		Amplitude: DefaultAmplitude,
		Frequency: DefaultFrequency,
		Drift:     DefaultDrift,
		Sigma:     DefaultSigma,
	}
}

// WithCores sets the number of channels. Panics if n < 1.
func WithCores(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("synth: WithCores: need at least one core, got %d", n))
	}

	return func(o *Options) { o.Cores = n }
}

// WithNoise sets the Gaussian noise sigma; 0 disables noise. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic(fmt.Sprintf("synth: WithNoise: sigma must be >= 0, got %g", sigma))
	}

	return func(o *Options) { o.Sigma = sigma }
}

// WithDrift sets the linear drift per sample.
func WithDrift(perSample float64) Option {
	return func(o *Options) { o.Drift = perSample }
}

// WithAmplitude sets the load-pulse height; 0 gives a pure drift line.
func WithAmplitude(a float64) Option {
	return func(o *Options) { o.Amplitude = a }
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

// Trace returns n sample times and the per-core temperature channels.
// n < 1 yields nil slices.
func Trace(n int, seed int64, opts ...Option) (times []float64, channels [][]float64) {
	if n < 1 {
		return nil, nil
	}
	o := gatherOptions(opts)

	rng := rand.New(rand.NewSource(seed))
	times = make([]float64, n)
	for i := range times {
		times[i] = float64(i) * o.Step
	}

	channels = make([][]float64, o.Cores)
	var frac, tri, v float64
	for c := range channels {
		ch := make([]float64, n)
		for i := 0; i < n; i++ {
			// Triangle in [0,1]: 1 − |2*frac − 1|.
			frac = math.Mod(float64(i)*o.Frequency+float64(c)*phaseShift, 1)
			tri = 1 - math.Abs(2*frac-1)

			v = o.Baseline + float64(c)*coreSpread + o.Amplitude*tri + o.Drift*float64(i)
			if o.Sigma > 0 {
				v += o.Sigma * rng.NormFloat64()
			}
			ch[i] = v
		}
		channels[c] = ch
	}

	return times, channels
}
