// Package cmdmove provides the batch image mover subcommand.
package cmdmove

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rusq/imgkit/cmd/imgkit/internal/cfg"
	"github.com/rusq/imgkit/cmd/imgkit/internal/console"
	"github.com/rusq/imgkit/cmd/imgkit/internal/golang/base"
	"github.com/rusq/imgkit/mover"
)

var CmdMove = &base.Command{
	Run:        runMove,
	UsageLine:  "imgkit move [flags]",
	Short:      "copies images to the target folder removing the name prefix",
	PrintFlags: true,
	Long: `
Copies every image from the source directory to the target directory,
removing the strip substring from the filename, i.e. "cropped_logo.png"
becomes "logo.png".

Images are decoded and encoded again, the pixels are not changed and no
cropping is performed.  The target directory is created if it does not
exist, files with the same name are overwritten.  Files that are not images
are skipped.  Failure to process an image is reported and the command
carries on with the next one.
`,
}

var (
	params     = mover.DefaultConfig()
	extensions = strings.Join(mover.DefaultExtensions, ",")
)

func init() {
	CmdMove.Flag.StringVar(&params.SourceDir, "src", params.SourceDir, "source `directory`")
	CmdMove.Flag.StringVar(&params.TargetDir, "dst", params.TargetDir, "target `directory`, created if missing")
	CmdMove.Flag.StringVar(&params.Strip, "strip", params.Strip, "`substring` to remove from filenames")
	CmdMove.Flag.StringVar(&extensions, "ext", extensions, "comma separated `list` of image extensions")
}

func runMove(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) > 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	exts := parseExtensions(extensions)
	if len(exts) == 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("no image extensions specified")
	}
	p := params
	p.Extensions = exts

	m := mover.New(p, mover.WithLogger(cfg.Log), mover.WithProgress(console.Moved))
	cfg.RegisterSigInfoReporter(m.Info)

	s, err := m.Run(ctx)
	console.MoveSummary(s)
	if err != nil {
		switch {
		case errors.Is(err, mover.ErrSourceNotFound):
			base.SetExitStatus(base.SInvalidParameters)
		case errors.Is(err, context.Canceled):
			base.SetExitStatus(base.SCancelled)
		default:
			base.SetExitStatus(base.SApplicationError)
		}
		return err
	}
	return nil
}

// parseExtensions parses the comma separated extension list, adding the
// leading dot where missing.
func parseExtensions(list string) []string {
	var exts []string
	for _, ext := range strings.Split(list, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}
