package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoxFormat(t *testing.T) {
	for _, name := range []string{"xyxy", "xywh", "center_xywh"} {
		f, err := ParseBoxFormat(name)
		require.NoError(t, err)
		assert.True(t, f.Valid())
	}

	_, err := ParseBoxFormat("yxyx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yxyx")
	assert.False(t, BoxFormat("").Valid())
}

// TestFormatConversions checks each declared convention against the same
// physical box: corners (2,4)-(12,24), i.e. a 10x20 box.
func TestFormatConversions(t *testing.T) {
	want := Rect{X1: 2, Y1: 4, X2: 12, Y2: 24}

	tests := []struct {
		format BoxFormat
		raw    Box
	}{
		{FormatXYXY, Box{2, 4, 12, 24}},
		{FormatXYWH, Box{2, 4, 10, 20}},
		{FormatCenterXYWH, Box{7, 14, 10, 20}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got := tt.format.ToCorners(tt.raw)
			assert.Equal(t, want, got)
			assert.Equal(t, tt.raw, tt.format.FromCorners(got), "round trip must be exact")
		})
	}
}
