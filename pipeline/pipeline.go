package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/observability"

	"github.com/katalvlaran/thermofit/curve"
	"github.com/katalvlaran/thermofit/interp"
	"github.com/katalvlaran/thermofit/lsq"
	"github.com/katalvlaran/thermofit/readings"
)

// ErrNoChannels reports a call without any channel to analyse.
var ErrNoChannels = errors.New("pipeline: no channels")

// ChannelResult is the analysis of one channel.
type ChannelResult struct {
	Index         int
	Name          string
	Interpolation interp.Result
	Fit           curve.Line
	// SSE is the sum of squared residuals of Fit over the original samples.
	SSE float64
}

// Analyze interpolates and fits every channel against the shared time axis.
// Results are ordered by channel index. If any channel fails, the returned
// error aggregates every failure and no results are returned.
func Analyze(ctx context.Context, times []float64, channels [][]float64, opts ...Option) ([]ChannelResult, error) {
	o := gatherOptions(opts)
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	logger.Debugf(ctx, "analysing %d channels of %d samples (density=%d, workers=%d)",
		len(channels), len(times), o.Density, o.Concurrency)

	results := make([]ChannelResult, len(channels))
	errs := make([]error, len(channels))

	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := min(o.Concurrency, len(channels))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		observability.Go(ctx, func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx], errs[idx] = analyzeChannel(ctx, idx, times, channels[idx], o)
			}
		})
	}

feed:
	for idx := range channels {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	var mErr *multierror.Error
	for _, err := range errs {
		if err != nil {
			mErr = multierror.Append(mErr, err)
		}
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return results, nil
}

func analyzeChannel(ctx context.Context, idx int, times, y []float64, o Options) (ChannelResult, error) {
	name := readings.ChannelName(idx)

	res, err := interp.Interpolate(times, y, interp.WithDensity(o.Density))
	if err != nil {
		return ChannelResult{}, fmt.Errorf("%s: %w", name, err)
	}
	fit, err := lsq.FitLine(times, y)
	if err != nil {
		return ChannelResult{}, fmt.Errorf("%s: %w", name, err)
	}
	r, err := lsq.Residuals(times, y, fit)
	if err != nil {
		return ChannelResult{}, fmt.Errorf("%s: %w", name, err)
	}
	sse := lsq.SumSquares(r)

	logger.Debugf(ctx, "%s: %d segments, fit y = %.4f + %.4f x, sse=%.4f",
		name, len(res.Segments), fit.Intercept, fit.Slope, sse)

	return ChannelResult{
		Index:         idx,
		Name:          name,
		Interpolation: res,
		Fit:           fit,
		SSE:           sse,
	}, nil
}
