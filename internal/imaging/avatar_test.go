package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAvatarWebPScalesDown(t *testing.T) {
	out, err := AvatarWebP(bytes.NewReader(pngOf(t, 600, 300)), AvatarMaxSide)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
}

func TestAvatarWebPKeepsSmallImages(t *testing.T) {
	out, err := AvatarWebP(bytes.NewReader(pngOf(t, 40, 80)), AvatarMaxSide)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
}

func TestAvatarWebPRejectsGarbage(t *testing.T) {
	_, err := AvatarWebP(strings.NewReader("not an image"), AvatarMaxSide)
	assert.Error(t, err)
}

func TestFit(t *testing.T) {
	w, h := fit(100, 1000, 256)
	assert.Equal(t, 25, w)
	assert.Equal(t, 256, h)

	w, h = fit(1000, 1, 256)
	assert.Equal(t, 256, w)
	assert.Equal(t, 1, h)
}
