// Package console prints human readable progress messages.  The output is
// informational and is not meant to be parsed.
package console

import (
	"github.com/pterm/pterm"

	"github.com/rusq/imgkit/icons"
	"github.com/rusq/imgkit/mover"
)

// Moved prints the outcome of a single image.
func Moved(o mover.Outcome) {
	if o.OK() {
		pterm.Success.Printfln("%s -> %s", o.Name, o.Output)
		return
	}
	pterm.Error.Printfln("%s: %v", o.Name, o.Err)
}

// MoveSummary prints the final count.
func MoveSummary(s *mover.Summary) {
	if s == nil {
		return
	}
	pterm.Info.Printfln("%d of %d files processed, %d failed", s.Processed(), s.Total, len(s.Failures()))
}

// Generated prints the generated icon.
func Generated(r icons.Result) {
	pterm.Success.Printfln("Generated %s (%dx%d)", r.Path, r.Edge, r.Edge)
}

// Created prints the created file.
func Created(filename string) {
	pterm.Success.Printfln("Created %s", filename)
}

// Disable disables colours and styling, i.e. when the output is redirected to
// a file.
func Disable() {
	pterm.DisableStyling()
}
