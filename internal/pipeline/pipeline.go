// Package pipeline runs batch cover generation: many slugs rendered in
// parallel into content-addressed PNG files plus a manifest. Each cover
// is independent and deterministic, so workers need no coordination
// beyond distinct output paths.
package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/AnyUserName/coverart-cli/internal/manifest"
	"github.com/AnyUserName/coverart-cli/internal/render"
)

// Config holds all parameters for a batch run.
type Config struct {
	Slugs     []string
	OutputDir string
	Width     int
	Height    int
	Workers   int
	Logger    *log.Logger
}

// Pipeline orchestrates batch cover generation.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Width <= 0 {
		cfg.Width = render.DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = render.DefaultHeight
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Pipeline{cfg: cfg}
}

// Run generates every cover and returns the manifest.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	if len(p.cfg.Slugs) == 0 {
		return nil, fmt.Errorf("no slugs to generate")
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	results := make([]coverResult, len(p.cfg.Slugs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, slug := range p.cfg.Slugs {
		wg.Add(1)
		go func(idx int, s string) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			p.cfg.Logger.Debug("generating", "slug", s)
			results[idx] = generateCover(s, p.cfg)
			if results[idx].err == nil {
				p.cfg.Logger.Debug("done", "slug", s, "path", results[idx].cover.Path)
			}
		}(i, slug)
	}
	wg.Wait()

	m := manifest.New(p.cfg.Width, p.cfg.Height)

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Covers[r.slug] = r.cover
	}

	// Report per-slug failures but only fail the run when nothing
	// succeeded.
	if len(errs) > 0 {
		for _, e := range errs {
			p.cfg.Logger.Error("generate failed", "err", e)
		}
		if len(errs) == len(p.cfg.Slugs) {
			return nil, fmt.Errorf("all %d covers failed to generate", len(errs))
		}
		p.cfg.Logger.Warn("partial batch", "failed", len(errs), "total", len(p.cfg.Slugs))
	}

	m.BuildInfo = &manifest.BuildInfo{Workers: p.cfg.Workers}
	m.Stats.Failed = len(errs)
	m.ComputeStats()
	return m, nil
}
