// Package bitmap provides image codec and resampling functions.
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
)

// ErrUnsupportedFormat is returned when the output filename extension does not
// map to any known encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Open opens and decodes the image file. The format is detected from the file
// contents, not the extension. For animated GIFs only the first frame is
// decoded.
func Open(filename string) (image.Image, error) {
	img, err := imaging.Open(filename)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Save encodes the image into the file, the format is determined by the
// filename extension (jpg, jpeg, png, gif, bmp, tif, tiff).  Existing file is
// overwritten.
func Save(img image.Image, filename string) error {
	if _, err := imaging.FormatFromFilename(filename); err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	return imaging.Save(img, filename)
}

// SaveICO writes the image as a single-resolution ICO container.
func SaveICO(img image.Image, filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return ico.Encode(f, img)
}
