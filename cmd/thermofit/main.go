// Command thermofit reads a per-core temperature log, interpolates every core
// piecewise-linearly, fits a least-squares line per core and writes one
// equation report per core.
//
//	thermofit [flags] <input>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/thermofit/archive"
	"github.com/katalvlaran/thermofit/interp"
	"github.com/katalvlaran/thermofit/pipeline"
	"github.com/katalvlaran/thermofit/readings"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	step := pflag.Float64("step", readings.DefaultStepSize, "Seconds between consecutive input lines")
	density := pflag.Int("density", interp.DefaultDensity, "Interpolated points per segment (>= 2)")
	outDir := pflag.String("out-dir", "", "Directory for the reports (default: next to the input)")
	archivePath := pflag.String("archive", "", "Also store the parsed channels as a mebo blob at this path")
	compression := pflag.String("compression", "none", "Archive compression: none, zstd, s2 or lz4")
	fromArchive := pflag.Bool("from-archive", false, "Treat the input as a mebo blob written by --archive")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <input>\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	cfg := config{
		input:       pflag.Arg(0),
		step:        *step,
		density:     *density,
		outDir:      *outDir,
		archivePath: *archivePath,
		compression: *compression,
		fromArchive: *fromArchive,
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		pflag.Usage()
		os.Exit(2)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	os.Exit(execute(ctx, cfg))
}

type config struct {
	input       string
	step        float64
	density     int
	outDir      string
	archivePath string
	compression string
	fromArchive bool
}

func (cfg config) validate() error {
	if cfg.density < interp.MinDensity {
		return fmt.Errorf("--density must be >= %d, got %d", interp.MinDensity, cfg.density)
	}
	if !(cfg.step > 0) {
		return fmt.Errorf("--step must be > 0, got %g", cfg.step)
	}

	return nil
}

// execute returns the process exit code; the logger is flushed before main exits.
func execute(ctx context.Context, cfg config) int {
	defer belt.Flush(ctx)
	if err := run(ctx, cfg); err != nil {
		logger.Errorf(ctx, "%v", err)
		return 1
	}

	return 0
}

func run(ctx context.Context, cfg config) error {
	times, channels, err := load(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.archivePath != "" {
		if err := store(ctx, cfg, times, channels); err != nil {
			return err
		}
	}

	results, err := pipeline.Analyze(ctx, times, channels, pipeline.WithDensity(cfg.density))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return pipeline.WriteReports(ctx, cfg.input, cfg.outDir, times, results)
}

func load(ctx context.Context, cfg config) ([]float64, [][]float64, error) {
	if cfg.fromArchive {
		data, err := os.ReadFile(cfg.input)
		if err != nil {
			return nil, nil, err
		}
		logger.Debugf(ctx, "decoding archive %s (%d bytes)", cfg.input, len(data))

		return archive.Decode(data)
	}

	f, err := os.Open(cfg.input)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rs, err := readings.Parse(f, readings.WithStepSize(cfg.step))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", cfg.input, err)
	}
	logger.Debugf(ctx, "parsed %d readings from %s", len(rs), cfg.input)

	return readings.Channels(rs)
}

func store(ctx context.Context, cfg config, times []float64, channels [][]float64) error {
	comp, err := archive.ParseCompression(cfg.compression)
	if err != nil {
		return err
	}
	data, err := archive.Encode(times, channels, archive.WithCompression(comp))
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.archivePath, data, 0o644); err != nil {
		return err
	}
	logger.Infof(ctx, "archived %d channels to %s (%d bytes, %s)", len(channels), cfg.archivePath, len(data), comp)

	return nil
}
