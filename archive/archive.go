package archive

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/arloliu/mebo/blob"
	"github.com/arloliu/mebo/format"

	"github.com/katalvlaran/thermofit/readings"
)

// MaxPoints is mebo's per-metric data point limit.
const MaxPoints = math.MaxUint16

// microsPerSecond converts sample times to mebo's integer timestamps.
const microsPerSecond = 1e6

var (
	// ErrEmpty reports an archive request or blob without channels or samples.
	ErrEmpty = errors.New("archive: no channels")

	// ErrTooManyPoints reports a channel longer than MaxPoints.
	ErrTooManyPoints = errors.New("archive: too many points per channel")

	// ErrInconsistent reports channels whose lengths or timestamps disagree.
	ErrInconsistent = errors.New("archive: inconsistent channels")
)

// Encode writes every channel, sampled at times, into a single mebo blob.
func Encode(times []float64, channels [][]float64, opts ...Option) ([]byte, error) {
	o := gatherOptions(opts)
	if len(channels) == 0 || len(times) == 0 {
		return nil, ErrEmpty
	}
	if len(times) > MaxPoints {
		return nil, fmt.Errorf("%d samples, max %d: %w", len(times), MaxPoints, ErrTooManyPoints)
	}

	ts := make([]int64, len(times))
	for i, t := range times {
		ts[i] = toMicros(t)
	}

	enc, err := blob.NewNumericEncoder(time.UnixMicro(ts[0]),
		blob.WithLittleEndian(),
		blob.WithTagsEnabled(false),
		blob.WithTimestampEncoding(format.TypeDelta),
		blob.WithValueEncoding(format.TypeGorilla),
		blob.WithTimestampCompression(o.Compression),
		blob.WithValueCompression(o.Compression),
	)
	if err != nil {
		return nil, fmt.Errorf("archive: encoder: %w", err)
	}

	for c, values := range channels {
		name := readings.ChannelName(c)
		if len(values) != len(ts) {
			return nil, fmt.Errorf("%s: %d values for %d timestamps: %w", name, len(values), len(ts), ErrInconsistent)
		}
		if err = enc.StartMetricName(name, len(ts)); err != nil {
			return nil, fmt.Errorf("archive: %s: %w", name, err)
		}
		for i, v := range values {
			if err = enc.AddDataPoint(ts[i], v, ""); err != nil {
				return nil, fmt.Errorf("archive: %s[%d]: %w", name, i, err)
			}
		}
		if err = enc.EndMetric(); err != nil {
			return nil, fmt.Errorf("archive: %s: %w", name, err)
		}
	}

	data, err := enc.Finish()
	if err != nil {
		return nil, fmt.Errorf("archive: finish: %w", err)
	}

	return data, nil
}

// Decode reads back the channels written by Encode. Channels are looked up
// as core-00, core-01, ... up to the blob's metric count; all of them must
// share the first channel's timestamps.
func Decode(data []byte) (times []float64, channels [][]float64, err error) {
	dec, err := blob.NewNumericDecoder(data)
	if err != nil {
		return nil, nil, fmt.Errorf("archive: decoder: %w", err)
	}
	b, err := dec.Decode()
	if err != nil {
		return nil, nil, fmt.Errorf("archive: decode: %w", err)
	}

	count := b.MetricCount()
	if count == 0 {
		return nil, nil, ErrEmpty
	}

	var ts []int64
	channels = make([][]float64, count)
	for c := 0; c < count; c++ {
		name := readings.ChannelName(c)
		n := b.LenByName(name)
		if n == 0 {
			return nil, nil, fmt.Errorf("%s missing: %w", name, ErrInconsistent)
		}
		if ts == nil {
			ts = make([]int64, 0, n)
			for t := range b.AllTimestampsByName(name) {
				ts = append(ts, t)
			}
		} else if n != len(ts) {
			return nil, nil, fmt.Errorf("%s: %d points, want %d: %w", name, n, len(ts), ErrInconsistent)
		}

		values, err := collectValues(name, ts, b.AllByName(name))
		if err != nil {
			return nil, nil, err
		}
		channels[c] = values
	}

	times = make([]float64, len(ts))
	for i, t := range ts {
		times[i] = float64(t) / microsPerSecond
	}

	return times, channels, nil
}

// collectValues drains one channel's points, requiring exactly the timestamps in ts.
func collectValues(name string, ts []int64, points iter.Seq2[int, blob.NumericDataPoint]) ([]float64, error) {
	values := make([]float64, 0, len(ts))
	for i, dp := range points {
		if i >= len(ts) {
			return nil, fmt.Errorf("%s: more than %d points: %w", name, len(ts), ErrInconsistent)
		}
		if dp.Ts != ts[i] {
			return nil, fmt.Errorf("%s[%d]: timestamp %d, want %d: %w", name, i, dp.Ts, ts[i], ErrInconsistent)
		}
		values = append(values, dp.Val)
	}
	if len(values) != len(ts) {
		return nil, fmt.Errorf("%s: %d points, want %d: %w", name, len(values), len(ts), ErrInconsistent)
	}

	return values, nil
}

func toMicros(seconds float64) int64 {
	return int64(math.Round(seconds * microsPerSecond))
}
