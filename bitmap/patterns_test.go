package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckers(t *testing.T) {
	img := Checkers(4, 2)
	assert.Equal(t, color.RGBAModel.Convert(color.White), img.At(0, 0))
	assert.Equal(t, color.RGBAModel.Convert(color.Black), img.At(1, 0))
	assert.Equal(t, color.RGBAModel.Convert(color.Black), img.At(0, 1))
	assert.Equal(t, color.RGBAModel.Convert(color.White), img.At(1, 1))
}

func TestFrame(t *testing.T) {
	img := Frame(5, 5)
	black := color.RGBAModel.Convert(color.Black)
	for _, p := range []image.Point{{0, 0}, {4, 0}, {0, 4}, {4, 4}, {2, 0}, {0, 2}} {
		assert.Equal(t, black, img.At(p.X, p.Y), "point %v", p)
	}
	assert.Equal(t, color.RGBAModel.Convert(color.White), img.At(2, 2))
}

func TestLogo(t *testing.T) {
	tests := []struct {
		name string
		edge int
	}{
		{"regular", 512},
		{"tiny", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Logo(tt.edge)
			assert.Equal(t, image.Rect(0, 0, tt.edge, tt.edge), img.Bounds())
		})
	}
}

func TestAllSamplePatterns(t *testing.T) {
	assert.Equal(t, []string{"checkers", "frame", "slant"}, AllSamplePatterns())
}
