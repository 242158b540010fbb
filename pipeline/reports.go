package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/thermofit/report"
)

// WriteReports writes one equation report per result. Files are named after
// input (see report.FileName); when outDir is non-empty they are placed there
// instead of next to input. Every file is attempted; failures are aggregated.
func WriteReports(ctx context.Context, input, outDir string, times []float64, results []ChannelResult) error {
	var mErr *multierror.Error
	for _, r := range results {
		path := report.FileName(input, r.Index)
		if outDir != "" {
			path = filepath.Join(outDir, filepath.Base(path))
		}
		if err := writeReport(ctx, path, times, r); err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("%s: %w", r.Name, err))
		}
	}

	return mErr.ErrorOrNil()
}

func writeReport(ctx context.Context, path string, times []float64, r ChannelResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	n, err := report.WriteChannel(f, times, r.Interpolation.Segments, r.Fit)
	if err != nil {
		return err
	}
	logger.Infof(ctx, "wrote %s (%d bytes)", path, n)

	return nil
}
