package chart

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/cinderella-arcs/narrative"
)

func TestRenderAllWritesEveryFigure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	figs := Figures(narrative.All(), lowRes())

	paths, err := RenderAll(context.Background(), figs, dir, FormatPNG, 2)
	require.NoError(t, err)
	require.Len(t, paths, 5)

	for i, p := range paths {
		assert.Equal(t, filepath.Join(dir, figs[i].Name+".png"), p)
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngSignature), "%s is not a PNG", p)
	}
}

func TestRenderAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := RenderAll(ctx, Figures(narrative.All(), lowRes()), dir, FormatPNG, 0)
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFileSVGExtension(t *testing.T) {
	dir := t.TempDir()
	path, err := VariantFigure(narrative.Grimm1812(), lowRes()).WriteFile(dir, FormatSVG)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "figure3_grimm_1812.svg"), path)
}
