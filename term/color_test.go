package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		c, err := Parse("green")
		require.NoError(t, err)
		r, g, b := c.RGBValues()
		assert.Equal(t, [3]uint8{52, 208, 88}, [3]uint8{r, g, b})
	})

	t.Run("triple", func(t *testing.T) {
		c, err := Parse("10, 20, 30")
		require.NoError(t, err)
		r, g, b := c.RGBValues()
		assert.Equal(t, [3]uint8{10, 20, 30}, [3]uint8{r, g, b})
	})

	t.Run("hex", func(t *testing.T) {
		c, err := Parse("#ff8000")
		require.NoError(t, err)
		r, g, b := c.RGBValues()
		assert.Equal(t, [3]uint8{255, 128, 0}, [3]uint8{r, g, b})
	})

	t.Run("raw escape", func(t *testing.T) {
		c, err := Parse("\x1b[35m")
		require.NoError(t, err)
		assert.Equal(t, "\x1b[35mhi\x1b[0m", Colorize("hi", c, ProfileTrueColor))
	})

	t.Run("errors", func(t *testing.T) {
		for _, bad := range []string{"", "nope", "1,2", "300,0,0", "#zzz"} {
			_, err := Parse(bad)
			assert.Error(t, err, "input %q", bad)
		}
	})
}

func TestColorize(t *testing.T) {
	c := RGB(52, 208, 88)

	t.Run("no profile passes through", func(t *testing.T) {
		assert.Equal(t, "x", Colorize("x", c, ProfileNone))
	})

	t.Run("truecolor", func(t *testing.T) {
		assert.Equal(t, "\x1b[38;2;52;208;88mx\x1b[0m", Colorize("x", c, ProfileTrueColor))
	})

	t.Run("basic degrades", func(t *testing.T) {
		assert.Equal(t, "\x1b[32mx\x1b[0m", Colorize("x", c, ProfileBasic))
	})
}

func TestNearestBasic(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    int
	}{
		{255, 0, 0, 31},
		{0, 200, 0, 32},
		{30, 40, 220, 34},
		{230, 220, 20, 33},
		{20, 210, 200, 36},
		{200, 30, 210, 35},
		{220, 220, 220, 37},
		{20, 20, 20, 30},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, nearestBasic(tc.r, tc.g, tc.b), "rgb(%d,%d,%d)", tc.r, tc.g, tc.b)
	}
}

func TestStrip(t *testing.T) {
	colored := Colorize("abc", RGB(1, 2, 3), ProfileTrueColor) + Colorize("de", Green, ProfileBasic)
	assert.Equal(t, "abcde", Strip(colored))
	assert.Equal(t, 5, VisibleWidth(colored))
}
