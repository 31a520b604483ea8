package bitmap

import (
	"image"
	"sort"

	"github.com/disintegration/imaging"
)

// DefaultFilter is the name of the filter used when none is specified.
const DefaultFilter = "lanczos"

// filters only lists filters that are good enough for downscaling icons,
// nearest-neighbour and box produce visible aliasing and are not registered.
var filters = map[string]imaging.ResampleFilter{
	"lanczos":     imaging.Lanczos,
	"catmull-rom": imaging.CatmullRom,
	"mitchell":    imaging.MitchellNetravali,
}

// Filter returns a registered resampling filter by name.  Empty name returns
// the default filter.
func Filter(name string) (imaging.ResampleFilter, bool) {
	if name == "" {
		name = DefaultFilter
	}
	f, ok := filters[name]
	if !ok {
		return imaging.ResampleFilter{}, false
	}
	return f, true
}

// AllFilters returns a sorted list of all available filter names.
func AllFilters() []string {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Square resizes the image to exactly edge x edge pixels.  Aspect ratio is not
// preserved, non-square sources are stretched.
func Square(img image.Image, edge int, filter imaging.ResampleFilter) *image.NRGBA {
	return imaging.Resize(img, edge, edge, filter)
}
