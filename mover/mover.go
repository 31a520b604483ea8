// Package mover copies a folder of images into another folder, removing a
// fixed substring from every filename on the way.
//
// Images are decoded and re-encoded unmodified.  Despite the files being
// called "cropped", no cropping is performed.
package mover

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rusq/imgkit/bitmap"
)

// ErrSourceNotFound is returned if the source directory does not exist.
var ErrSourceNotFound = errors.New("source directory not found")

// Config is the mover configuration.
type Config struct {
	SourceDir  string
	TargetDir  string
	Strip      string   // substring removed from output filenames
	Extensions []string // lower case, with the leading dot
}

// DefaultExtensions are the image extensions processed by default.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SourceDir:  filepath.Join(".", "scripts", "icons"),
		TargetDir:  filepath.Join(".", "scripts", "cropped_icons"),
		Strip:      "cropped_",
		Extensions: DefaultExtensions,
	}
}

// Outcome is the result of processing a single image.
type Outcome struct {
	Name   string // source filename
	Output string // output filename, without the directory
	Err    error
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

// Summary is the result of the run.
type Summary struct {
	// Total is the number of entries in the source directory, including
	// the ones that are not images.
	Total    int
	Outcomes []Outcome
}

// Processed returns the number of successfully processed images.
func (s *Summary) Processed() int {
	var n int
	for _, o := range s.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failures returns the outcomes of failed images.
func (s *Summary) Failures() []Outcome {
	var ff []Outcome
	for _, o := range s.Outcomes {
		if !o.OK() {
			ff = append(ff, o)
		}
	}
	return ff
}

// Mover runs the batch.
type Mover struct {
	cfg      Config
	lg       *slog.Logger
	progress func(Outcome)

	mu      sync.Mutex
	current string
	summary Summary
}

// Option is the mover option.
type Option func(*Mover)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(m *Mover) {
		if lg != nil {
			m.lg = lg
		}
	}
}

// WithProgress sets the function that is called after each image is
// processed, successfully or not.
func WithProgress(fn func(Outcome)) Option {
	return func(m *Mover) {
		m.progress = fn
	}
}

// New creates a new Mover.  Empty Strip and Extensions in cfg are left as is,
// nil Extensions fall back to DefaultExtensions.
func New(cfg Config, opts ...Option) *Mover {
	if cfg.Extensions == nil {
		cfg.Extensions = DefaultExtensions
	}
	m := &Mover{
		cfg:      cfg,
		lg:       slog.Default(),
		progress: func(Outcome) {},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run processes all images in the source directory.  Failure to process an
// individual image is recorded in the summary and does not stop the run.  The
// error is returned only if the run could not start or was cancelled, in the
// latter case the summary contains everything processed so far.
func (m *Mover) Run(ctx context.Context) (*Summary, error) {
	lg := m.lg.With("source", m.cfg.SourceDir, "target", m.cfg.TargetDir)

	if _, err := os.Stat(m.cfg.SourceDir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, m.cfg.SourceDir)
		}
		return nil, err
	}
	if err := os.MkdirAll(m.cfg.TargetDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create target directory: %w", err)
	}
	entries, err := os.ReadDir(m.cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list source directory: %w", err)
	}

	m.mu.Lock()
	m.summary = Summary{Total: len(entries)}
	m.mu.Unlock()
	lg.DebugContext(ctx, "scanning source directory", "entries", len(entries))

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return m.snapshot(), err
		}
		if !IsImage(e.Name(), m.cfg.Extensions) {
			lg.DebugContext(ctx, "skipping", "name", e.Name())
			continue
		}
		o := m.process(e.Name())
		if o.OK() {
			lg.DebugContext(ctx, "processed", "name", o.Name, "output", o.Output)
		} else {
			lg.WarnContext(ctx, "failed to process image", "name", o.Name, "error", o.Err)
		}
		m.record(o)
		m.progress(o)
	}
	s := m.snapshot()
	lg.InfoContext(ctx, "done", "processed", s.Processed(), "total", s.Total)
	return s, nil
}

func (m *Mover) process(name string) Outcome {
	m.mu.Lock()
	m.current = name
	m.mu.Unlock()

	o := Outcome{Name: name, Output: OutputName(name, m.cfg.Strip)}
	img, err := bitmap.Open(filepath.Join(m.cfg.SourceDir, name))
	if err != nil {
		o.Err = fmt.Errorf("decode: %w", err)
		return o
	}
	if err := bitmap.Save(img, filepath.Join(m.cfg.TargetDir, o.Output)); err != nil {
		o.Err = fmt.Errorf("encode: %w", err)
	}
	return o
}

func (m *Mover) record(o Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = ""
	m.summary.Outcomes = append(m.summary.Outcomes, o)
}

func (m *Mover) snapshot() *Summary {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Summary{
		Total:    m.summary.Total,
		Outcomes: append([]Outcome(nil), m.summary.Outcomes...),
	}
	return &s
}

// Info writes the current progress to w.  It is safe to call from another
// goroutine while Run is in progress.
func (m *Mover) Info(w io.Writer) {
	s := m.snapshot()
	m.mu.Lock()
	current := m.current
	m.mu.Unlock()
	fmt.Fprintf(w, "mover: %d processed, %d failed, %d entries\n", s.Processed(), len(s.Failures()), s.Total)
	if current != "" {
		fmt.Fprintf(w, "mover: processing %s\n", current)
	}
}

// OutputName returns the name with all occurrences of strip removed.
func OutputName(name, strip string) string {
	if strip == "" {
		return name
	}
	return strings.ReplaceAll(name, strip, "")
}

// IsImage reports whether the name ends with one of the extensions, the case
// of the name is ignored.
func IsImage(name string, exts []string) bool {
	lname := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lname, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
