// Package cmdicons provides the icon generation subcommand.
package cmdicons

import (
	"context"
	"errors"
	"fmt"

	"github.com/rusq/imgkit/bitmap"
	"github.com/rusq/imgkit/cmd/imgkit/internal/cfg"
	"github.com/rusq/imgkit/cmd/imgkit/internal/console"
	"github.com/rusq/imgkit/cmd/imgkit/internal/golang/base"
	"github.com/rusq/imgkit/icons"
)

var CmdIcons = &base.Command{
	Run:        runIcons,
	UsageLine:  "imgkit icons [flags]",
	Short:      "generates web and app icons from the logo",
	PrintFlags: true,
	Long: `
Generates the standard set of icons from the logo image:

	icon-192.png          192x192
	icon-512.png          512x512
	apple-touch-icon.png  180x180
	favicon.png           48x48
	favicon.ico           48x48

The logo is read from -src, or from new_logo.png in the output directory if
-src is not given.  Existing icons are overwritten.  Generation stops on the
first error, icons generated before the error are kept.
`,
}

var (
	outputDir = "public"
	source    string
	filter    = bitmap.DefaultFilter
)

func init() {
	CmdIcons.Flag.StringVar(&outputDir, "dir", outputDir, "output `directory`")
	CmdIcons.Flag.StringVar(&source, "src", "", "source logo `filename` (default: new_logo.png in the output directory)")
	CmdIcons.Flag.StringVar(&filter, "filter", filter, fmt.Sprintf("resampling filter, one of: %v", bitmap.AllFilters()))
}

func runIcons(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) > 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	p := icons.DefaultConfig(outputDir)
	if source != "" {
		p.SourcePath = source
	}
	p.Filter = filter

	if _, err := icons.Generate(ctx, p, icons.WithLogger(cfg.Log), icons.WithProgress(console.Generated)); err != nil {
		switch {
		case errors.Is(err, icons.ErrSourceNotFound), errors.Is(err, icons.ErrFilter):
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
