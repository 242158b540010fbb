package readings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultStepSize is the sampling step, in seconds, between consecutive lines.
const DefaultStepSize = 30.0

// ErrMalformed reports a line that is not a row of floats matching the first
// row's column count.
var ErrMalformed = errors.New("readings: malformed input")

// ErrEmpty reports input without a single data line.
var ErrEmpty = errors.New("readings: no data")

// Reading is one sampling step: its time and one temperature per core.
type Reading struct {
	Time  float64
	Temps []float64
}

// Options configures Parse.
type Options struct {
	StepSize float64
}

// Option mutates Options.
type Option func(*Options)

// WithStepSize sets the seconds between consecutive lines.
// Panics on a non-positive step (programmer error).
func WithStepSize(seconds float64) Option {
	if !(seconds > 0) {
		panic(fmt.Sprintf("readings: WithStepSize: step must be > 0, got %g", seconds))
	}

	return func(o *Options) { o.StepSize = seconds }
}

// Parse reads every data line of r.
// Errors: ErrMalformed (wrapped with the 1-based line number), ErrEmpty, or
// the reader's own error.
func Parse(r io.Reader, opts ...Option) ([]Reading, error) {
	o := gatherOptions(opts)

	var (
		out    []Reading
		cols   int
		lineNo int
		step   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("line %d: %d columns, want %d: %w", lineNo, len(fields), cols, ErrMalformed)
		}

		temps := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %q: %w", lineNo, i+1, f, ErrMalformed)
			}
			temps[i] = v
		}
		out = append(out, Reading{Time: float64(step) * o.StepSize, Temps: temps})
		step++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("readings: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}

	return out, nil
}

// Channels splits readings into one shared time axis and one y sequence per
// core. Every reading must carry the same number of cores.
func Channels(rs []Reading) (times []float64, channels [][]float64, err error) {
	if len(rs) == 0 {
		return nil, nil, ErrEmpty
	}
	cores := len(rs[0].Temps)
	times = make([]float64, len(rs))
	channels = make([][]float64, cores)
	for c := range channels {
		channels[c] = make([]float64, len(rs))
	}
	for i, r := range rs {
		if len(r.Temps) != cores {
			return nil, nil, fmt.Errorf("reading %d: %d cores, want %d: %w", i, len(r.Temps), cores, ErrMalformed)
		}
		times[i] = r.Time
		for c, v := range r.Temps {
			channels[c][i] = v
		}
	}

	return times, channels, nil
}

// ChannelName is the stable name of channel i: "core-00", "core-01", ...
func ChannelName(i int) string {
	return fmt.Sprintf("core-%02d", i)
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts []Option) Options {
	o := Options{StepSize: DefaultStepSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
