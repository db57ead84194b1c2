package render

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		w, h         float64
		maxW, maxH   float64
		wantW, wantH float64
	}{
		{name: "wide image bound by width", w: 4000, h: 1000, maxW: 600, maxH: 800, wantW: 600, wantH: 150},
		{name: "small image never upscaled", w: 100, h: 100, maxW: 600, maxH: 800, wantW: 100, wantH: 100},
		{name: "tall image bound by height", w: 1000, h: 4000, maxW: 600, maxH: 800, wantW: 200, wantH: 800},
		{name: "exact fit unchanged", w: 600, h: 800, maxW: 600, maxH: 800, wantW: 600, wantH: 800},
		{name: "zero size falls back to box", w: 0, h: 0, maxW: 600, maxH: 800, wantW: 600, wantH: 800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Fit(tt.w, tt.h, tt.maxW, tt.maxH)
			assert.InDelta(t, tt.wantW, w, 0.001)
			assert.InDelta(t, tt.wantH, h, 0.001)
		})
	}
}

func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
	return path
}

func TestProbeSize(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "shot.png", 320, 240)

	w, h, err := ProbeSize(path)
	require.NoError(t, err)
	assert.Equal(t, 320.0, w)
	assert.Equal(t, 240.0, h)

	_, _, err = ProbeSize(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestFitFileFallsBackOnUnreadableImage(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "corrupt.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))

	w, h, err := FitFile(bad, 300, 300)
	assert.Error(t, err)
	assert.Greater(t, w, 0.0)
	assert.LessOrEqual(t, w, 300.0)
	assert.LessOrEqual(t, h, 300.0)
}
