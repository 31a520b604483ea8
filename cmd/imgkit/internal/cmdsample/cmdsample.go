// Package cmdsample provides the subcommand that creates sample images to try
// the other commands on.
package cmdsample

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/rusq/imgkit/bitmap"
	"github.com/rusq/imgkit/cmd/imgkit/internal/cfg"
	"github.com/rusq/imgkit/cmd/imgkit/internal/console"
	"github.com/rusq/imgkit/cmd/imgkit/internal/golang/base"
)

var CmdSample = &base.Command{
	Run:        runSample,
	UsageLine:  "imgkit sample [flags]",
	Short:      "creates sample images",
	FlagMask:   cfg.OmitTraceFlag,
	PrintFlags: true,
	Long: `
Creates a sample directory layout:

	<dir>/public/new_logo.png   logo for "imgkit icons -dir <dir>/public"
	<dir>/icons/                images for "imgkit move -src <dir>/icons"

The icons directory contains "cropped_" images in different formats, an
image that is named "cropped_" twice, a file that is not an image and a
corrupt image.
`,
}

var (
	outdir = "sample"
	imgSz  = 384
)

func init() {
	CmdSample.Flag.StringVar(&outdir, "d", outdir, "output `directory`")
	CmdSample.Flag.IntVar(&imgSz, "s", imgSz, "size of the images in `pixels`")
}

func runSample(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) > 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	if imgSz < 2 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("image size too small: %d", imgSz)
	}
	if err := writeSamples(outdir, imgSz, console.Created); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	return nil
}

// formats are assigned to sample patterns in turn.
var formats = []string{".png", ".jpg", ".gif"}

// writeSamples creates the sample files in dir, calling created for each
// file.
func writeSamples(dir string, sz int, created func(filename string)) error {
	var (
		public = filepath.Join(dir, "public")
		icons  = filepath.Join(dir, "icons")
	)
	for _, d := range []string{public, icons} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}

	type job struct {
		filename string
		img      image.Image
		raw      []byte // written as is, if img is nil
	}
	jobs := []job{
		{filename: filepath.Join(public, "new_logo.png"), img: bitmap.Logo(sz)},
		{filename: filepath.Join(icons, "cropped_cropped_logo.bmp"), img: bitmap.Logo(sz / 2)},
		{filename: filepath.Join(icons, "notes.txt"), raw: []byte("not an image, skipped by the mover\n")},
		{filename: filepath.Join(icons, "cropped_broken.png"), raw: []byte("not a png either\n")},
	}
	for i, name := range bitmap.AllSamplePatterns() {
		jobs = append(jobs, job{
			filename: filepath.Join(icons, "cropped_"+name+formats[i%len(formats)]),
			img:      bitmap.SamplePatterns[name](sz, sz/2),
		})
	}

	for _, j := range jobs {
		var err error
		if j.img != nil {
			err = bitmap.Save(j.img, j.filename)
		} else {
			err = os.WriteFile(j.filename, j.raw, 0o644)
		}
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", j.filename, err)
		}
		created(j.filename)
	}
	return nil
}
