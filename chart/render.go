package chart

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Render writes the figure to w in the given format.
func (f *Figure) Render(w io.Writer, format Format) error {
	if err := f.chart.Render(format.provider(), w); err != nil {
		return fmt.Errorf("chart: render %s: %w", f.Name, err)
	}
	return nil
}

// WriteFile renders the figure to dir/<Name>.<ext> and returns the path.
// The file is only created once rendering has succeeded.
func (f *Figure) WriteFile(dir string, format Format) (string, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf, format); err != nil {
		return "", err
	}
	path := filepath.Join(dir, f.Name+"."+format.Ext())
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("chart: write %s: %w", path, err)
	}
	return path, nil
}

// RenderAll writes every figure into dir, creating it if needed. Up to
// parallel figures render at once; parallel <= 0 means no limit. The first
// failure cancels figures that have not started yet. Paths are returned in
// the order of figs.
func RenderAll(ctx context.Context, figs []*Figure, dir string, format Format, parallel int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("chart: create output dir: %w", err)
	}

	paths := make([]string, len(figs))
	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, f := range figs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := f.WriteFile(dir, format)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
