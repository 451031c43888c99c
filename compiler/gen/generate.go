package gen

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/kpoet/spec"
)

// Generator renders files in parallel and writes them below a target
// directory, one file per package path (com/example/User.kt).
//
// Each file is rendered by its own CodeWriter; the worker count bounds how
// many are in flight at once.
//
// Example:
//
//	cfg, err := gen.NewConfig(gen.WithTarget("build/generated"), gen.WithDefaultImports())
//	if err != nil {
//		return err
//	}
//	g, err := gen.NewGenerator(cfg)
//	if err != nil {
//		return err
//	}
//	return g.Generate(ctx, files...)
type Generator struct {
	cfg *Config

	mu      sync.Mutex
	metrics Metrics
}

// Metrics summarizes the output of a Generator.
type Metrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// NewGenerator returns a generator for cfg. The target directory is required.
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, NewConfigError("Config", nil, "missing configuration")
	}
	if cfg.Target == "" {
		return nil, NewConfigError("Target", nil, "missing target directory: use WithTarget")
	}
	return &Generator{cfg: cfg}, nil
}

// Generate renders files with options opts and writes them below the
// configured target directory.
func Generate(ctx context.Context, files []*spec.File, opts ...Option) error {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return err
	}
	g, err := NewGenerator(cfg)
	if err != nil {
		return err
	}
	return g.Generate(ctx, files...)
}

// Generate renders and writes files. Two files resolving to the same path
// are rejected before anything is written. The first failure cancels the
// files not yet started.
func (g *Generator) Generate(ctx context.Context, files ...*spec.File) error {
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if f == nil {
			return NewGenerationError("plan", "", "nil file", nil)
		}
		p := f.Path()
		if seen[p] {
			return NewGenerationError("plan", p, "duplicate output file", nil)
		}
		seen[p] = true
	}
	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return NewGenerationError("write", g.cfg.Target, "create target directory", err)
	}

	start := time.Now()
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(max(g.cfg.Workers, 1))
	for _, f := range files {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.generateFile(f)
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}

	m := g.Metrics()
	g.cfg.logger().Info("kotlin sources generated",
		"target", g.cfg.Target,
		"files", m.FilesGenerated,
		"bytes", m.TotalBytes,
		"duration", time.Since(start),
	)
	return nil
}

// generateFile renders f in memory and writes it only when rendering
// succeeded, so a failed file never leaves partial output behind.
func (g *Generator) generateFile(f *spec.File) error {
	rel := f.Path()
	src, err := Render(g.cfg, f)
	if err != nil {
		return NewGenerationError("render", rel, "", err)
	}
	path := filepath.Join(g.cfg.Target, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return NewGenerationError("write", rel, "", err)
	}
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		return NewGenerationError("write", rel, "", err)
	}

	g.mu.Lock()
	g.metrics.FilesGenerated++
	g.metrics.TotalBytes += int64(len(src))
	g.mu.Unlock()

	g.cfg.logger().Debug("rendered file", "file", rel, "bytes", len(src))
	return nil
}

// Metrics returns the totals accumulated by the generator so far.
func (g *Generator) Metrics() Metrics {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.metrics
}
