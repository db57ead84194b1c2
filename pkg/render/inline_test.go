package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStepsInterleavesTextAndImages(t *testing.T) {
	images := map[string]string{"screenshot1.png": "/uploads/f1/abc.png"}

	segments := SplitSteps("Click login\nscreenshot1.png\nSubmit form", images)
	require.Len(t, segments, 3)

	assert.Equal(t, "Click login", segments[0].Text)
	assert.False(t, segments[0].IsImage())

	assert.True(t, segments[1].IsImage())
	assert.Equal(t, "screenshot1.png", segments[1].ImageName)
	assert.Equal(t, "/uploads/f1/abc.png", segments[1].ImagePath)

	assert.Equal(t, "Submit form", segments[2].Text)
}

func TestSplitStepsTextBeforeImageOnSameLine(t *testing.T) {
	images := map[string]string{"proof.png": "/uploads/proof.png"}

	segments := SplitSteps("Payload gönderildi proof.png", images)
	require.Len(t, segments, 2)
	assert.Equal(t, "Payload gönderildi", segments[0].Text)
	assert.Equal(t, "proof.png", segments[1].ImageName)
}

func TestSplitStepsEdgeCases(t *testing.T) {
	images := map[string]string{"shot.png": "/uploads/shot.png"}

	t.Run("unresolvable token stays text", func(t *testing.T) {
		segments := SplitSteps("Bakınız missing.png", images)
		require.Len(t, segments, 1)
		assert.Equal(t, "Bakınız missing.png", segments[0].Text)
		assert.False(t, segments[0].IsImage())
	})

	t.Run("leading slash resolves", func(t *testing.T) {
		segments := SplitSteps("/shot.png", images)
		require.Len(t, segments, 1)
		assert.True(t, segments[0].IsImage())
		assert.Equal(t, "shot.png", segments[0].ImageName)
	})

	t.Run("trailing punctuation trimmed", func(t *testing.T) {
		segments := SplitSteps("Ekran görüntüsü: shot.png.", images)
		require.Len(t, segments, 2)
		assert.True(t, segments[1].IsImage())
	})

	t.Run("extension match is case-insensitive", func(t *testing.T) {
		upper := map[string]string{"SHOT.PNG": "/uploads/SHOT.PNG"}
		segments := SplitSteps("SHOT.PNG", upper)
		require.Len(t, segments, 1)
		assert.True(t, segments[0].IsImage())
	})

	t.Run("empty lines dropped", func(t *testing.T) {
		segments := SplitSteps("first\n\n\nsecond", nil)
		require.Len(t, segments, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SplitSteps("", images))
	})
}

func TestReferencedImages(t *testing.T) {
	referenced := ReferencedImages("Step one\n/a.png\nnote b.jpg here\nplain text")

	assert.True(t, referenced["a.png"])
	assert.True(t, referenced["/a.png"])
	assert.True(t, referenced["b.jpg"])
	assert.False(t, referenced["plain"])

	assert.Empty(t, ReferencedImages(""))
}
