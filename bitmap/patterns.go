package bitmap

import (
	"image"
	"image/color"
	"sort"

	"golang.org/x/image/draw"
)

// SamplePatterns are the sample images that can be generated by name.  Each
// function takes the width and height of the image.
var SamplePatterns = map[string]func(dx, dy int) image.Image{
	"checkers": func(dx, dy int) image.Image { return Checkers(dx, dy) },
	"frame":    func(dx, dy int) image.Image { return Frame(dx, dy) },
	"slant":    func(dx, dy int) image.Image { return Slant(dx, dy) },
}

// AllSamplePatterns returns sorted pattern names.
func AllSamplePatterns() []string {
	names := make([]string, 0, len(SamplePatterns))
	for name := range SamplePatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func canvas(dx, dy int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, dx, dy))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

// Checkers draws a one pixel checkerboard, top left pixel is white.
func Checkers(dx, dy int) *image.RGBA {
	img := canvas(dx, dy)
	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			if (x+y)%2 != 0 {
				img.Set(x, y, color.Black)
			}
		}
	}
	return img
}

// Frame draws a one pixel black frame around the image.
func Frame(dx, dy int) *image.RGBA {
	img := canvas(dx, dy)
	for x := 0; x < dx; x++ {
		img.Set(x, 0, color.Black)    // top
		img.Set(x, dy-1, color.Black) // bottom
	}
	for y := 0; y < dy; y++ {
		img.Set(0, y, color.Black)    // left
		img.Set(dx-1, y, color.Black) // right
	}
	return img
}

// Slant draws a line from the top-left corner at 45 degrees.
func Slant(dx, dy int) *image.RGBA {
	img := canvas(dx, dy)
	for i := 0; i < min(dx, dy); i++ {
		img.Set(i, i, color.Black)
	}
	return img
}

// Logo draws a square sample logo: a coloured tile on a transparent
// background with a checkerboard inset in the middle.
func Logo(edge int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, edge, edge))
	pad := edge / 8
	tile := image.Rect(pad, pad, edge-pad, edge-pad)
	draw.Draw(img, tile, image.NewUniform(color.NRGBA{R: 0x1e, G: 0x6f, B: 0xd9, A: 0xff}), image.Point{}, draw.Src)

	inset := tile.Inset(edge / 4)
	if inset.Empty() {
		return img
	}
	board := Checkers(inset.Dx(), inset.Dy())
	draw.Copy(img, inset.Min, board, board.Bounds(), draw.Over, nil)
	return img
}
