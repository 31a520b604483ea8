package bitmap

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		wantOK bool
	}{
		{"empty is default", "", true},
		{"lanczos", "lanczos", true},
		{"catmull-rom", "catmull-rom", true},
		{"mitchell", "mitchell", true},
		{"nearest is not registered", "nearest", false},
		{"box is not registered", "box", false},
		{"unknown", "bicubic-ish", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Filter(tt.filter)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.NotNil(t, f.Kernel)
				assert.Greater(t, f.Support, 1.0, "filter support too small for quality resampling")
			}
		})
	}
}

func TestAllFilters(t *testing.T) {
	assert.Equal(t, []string{"catmull-rom", "lanczos", "mitchell"}, AllFilters())
}

func TestSquare(t *testing.T) {
	tests := []struct {
		name string
		src  image.Image
		edge int
	}{
		{"downscale square", Checkers(600, 600), 192},
		{"upscale square", Checkers(100, 100), 512},
		{"stretches wide source", Frame(400, 100), 180},
		{"stretches tall source", Slant(40, 300), 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := Filter(DefaultFilter)
			got := Square(tt.src, tt.edge, f)
			assert.Equal(t, image.Rect(0, 0, tt.edge, tt.edge), got.Bounds())
		})
	}
}
