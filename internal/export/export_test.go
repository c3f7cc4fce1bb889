package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/candleterm/market"
	"github.com/rustyeddy/candleterm/term"
)

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.txt")
	rendered := term.Colorize("┃", term.Green, term.ProfileTrueColor) + "\n"

	require.NoError(t, WriteText(path, rendered))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "┃\n", string(data), "escape sequences are stripped")
}

func TestWritePNG(t *testing.T) {
	fv := func(v float64) *float64 { return &v }
	candles := []market.Candle{
		{Open: 100, High: 105, Low: 99, Close: 103, Volume: fv(10)},
		{Open: 103, High: 108, Low: 102, Close: 106, Volume: fv(20)},
		{Open: 106, High: 104, Low: 101, Close: 102, Volume: fv(15)},
	}

	t.Run("writes a decodable image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chart.png")
		require.NoError(t, WritePNG(path, candles, PNGOptions{Width: 300, Height: 150}))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		img, err := png.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, 300, img.Bounds().Dx())
		assert.Equal(t, 150, img.Bounds().Dy())
	})

	t.Run("defaults the dimensions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chart.png")
		require.NoError(t, WritePNG(path, candles, PNGOptions{}))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		cfg, err := png.DecodeConfig(f)
		require.NoError(t, err)
		assert.Equal(t, 1200, cfg.Width)
		assert.Equal(t, 600, cfg.Height)
	})

	t.Run("no candles fails", func(t *testing.T) {
		err := WritePNG(filepath.Join(t.TempDir(), "chart.png"), nil, PNGOptions{})
		assert.Error(t, err)
	})
}
