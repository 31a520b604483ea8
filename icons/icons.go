// Package icons generates a set of web and app icons from a single logo
// image.
package icons

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rusq/imgkit/bitmap"
)

var (
	// ErrSourceNotFound is returned if the source image does not exist.
	ErrSourceNotFound = errors.New("source image not found")
	// ErrFilter is returned for unknown or low quality resampling filters.
	ErrFilter = errors.New("unsupported resampling filter")
)

// Size is a square icon of Edge pixels written to Path.
type Size struct {
	Edge int
	Path string
}

// Config is the icon generator configuration.
type Config struct {
	SourcePath  string
	Sizes       []Size
	FaviconEdge int
	FaviconPath string // ICO container
	Filter      string // resampling filter name, see bitmap.AllFilters
}

// DefaultConfig returns the configuration for the standard set of web icons,
// the source logo and all outputs are located in dir.
func DefaultConfig(dir string) Config {
	return Config{
		SourcePath: filepath.Join(dir, "new_logo.png"),
		Sizes: []Size{
			{192, filepath.Join(dir, "icon-192.png")},
			{512, filepath.Join(dir, "icon-512.png")},
			{180, filepath.Join(dir, "apple-touch-icon.png")},
			{48, filepath.Join(dir, "favicon.png")},
		},
		FaviconEdge: 48,
		FaviconPath: filepath.Join(dir, "favicon.ico"),
		Filter:      bitmap.DefaultFilter,
	}
}

// Result describes the generated file.
type Result struct {
	Path string
	Edge int
}

type options struct {
	lg       *slog.Logger
	progress func(Result)
}

// Option is the generator option.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(o *options) {
		if lg != nil {
			o.lg = lg
		}
	}
}

// WithProgress sets the function that is called after each file is written.
func WithProgress(fn func(Result)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// Generate writes all icons from cfg.  It stops on the first error, files
// written before the error are left in place.  If the source does not exist,
// ErrSourceNotFound is returned and nothing is written.
func Generate(ctx context.Context, cfg Config, opts ...Option) ([]Result, error) {
	o := options{
		lg:       slog.Default(),
		progress: func(Result) {},
	}
	for _, opt := range opts {
		opt(&o)
	}
	lg := o.lg.With("source", cfg.SourcePath)

	filter, ok := bitmap.Filter(cfg.Filter)
	if !ok {
		return nil, fmt.Errorf("%w: %q, use one of %v", ErrFilter, cfg.Filter, bitmap.AllFilters())
	}
	if _, err := os.Stat(cfg.SourcePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, cfg.SourcePath)
		}
		return nil, err
	}

	src, err := bitmap.Open(cfg.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source image: %w", err)
	}
	lg.DebugContext(ctx, "source decoded", "bounds", src.Bounds())

	results := make([]Result, 0, len(cfg.Sizes)+1)
	emit := func(r Result) {
		lg.DebugContext(ctx, "generated", "path", r.Path, "edge", r.Edge)
		results = append(results, r)
		o.progress(r)
	}

	for _, sz := range cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if err := bitmap.Save(bitmap.Square(src, sz.Edge, filter), sz.Path); err != nil {
			return results, fmt.Errorf("failed to write %s: %w", sz.Path, err)
		}
		emit(Result{Path: sz.Path, Edge: sz.Edge})
	}

	if cfg.FaviconPath == "" {
		return results, nil
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	if err := bitmap.SaveICO(bitmap.Square(src, cfg.FaviconEdge, filter), cfg.FaviconPath); err != nil {
		return results, fmt.Errorf("failed to write %s: %w", cfg.FaviconPath, err)
	}
	emit(Result{Path: cfg.FaviconPath, Edge: cfg.FaviconEdge})

	return results, nil
}
