// Package help implements the "imgkit help" command.
package help

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/rusq/imgkit/cmd/imgkit/internal/cfg"
	"github.com/rusq/imgkit/cmd/imgkit/internal/golang/base"
)

// Help implements the 'help' command.
func Help(w io.Writer, args []string) {
	cmd := base.ImgkitCommand
Args:
	for i, arg := range args {
		for _, sub := range cmd.Commands {
			if sub.Name() == arg {
				cmd = sub
				continue Args
			}
		}

		// helpSuccess is the help command using as many args as possible
		// that would succeed.
		helpSuccess := "imgkit help"
		if i > 0 {
			helpSuccess += " " + strings.Join(args[:i], " ")
		}
		fmt.Fprintf(os.Stderr, "imgkit help %s: unknown help topic. Run '%s'.\n", strings.Join(args, " "), helpSuccess)
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
	}

	if len(cmd.Commands) > 0 {
		PrintUsage(w, cmd)
	} else {
		tmpl(w, helpTemplate, cmd)
	}
}

var usageTemplate = `{{.Long | trim}}

Usage:

	{{.UsageLine}} <command> [arguments]

The commands are:
{{range .Commands}}{{if .Runnable}}
	{{.Name | printf "%-11s"}} {{.Short}}{{end}}{{end}}

Use "imgkit help{{with .LongName}} {{.}}{{end}} <command>" for more information about a command.
`

var helpTemplate = `{{if .Runnable}}usage: {{.UsageLine}}
{{end}}{{.Long | trim}}
{{if .PrintFlags}}
Flags:
{{flags .}}{{end}}`

// An errWriter wraps a writer, recording whether a write error occurred.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(b []byte) (int, error) {
	n, err := w.w.Write(b)
	if err != nil {
		w.err = err
	}
	return n, err
}

// tmpl executes the given template text on data, writing the result to w.
func tmpl(w io.Writer, text string, data any) {
	t := template.New("top")
	t.Funcs(template.FuncMap{
		"trim":  strings.TrimSpace,
		"flags": flags,
	})
	template.Must(t.Parse(text))
	ew := &errWriter{w: w}
	err := t.Execute(ew, data)
	if ew.err != nil {
		// I/O error writing. Ignore write on closed pipe.
		if strings.Contains(ew.err.Error(), "pipe") {
			base.SetExitStatus(base.SGenericError)
			base.Exit()
		}
		fmt.Fprintf(os.Stderr, "writing output: %v\n", ew.err)
		base.SetExitStatus(base.SGenericError)
		base.Exit()
	}
	if err != nil {
		panic(err)
	}
}

// flags renders the command flags together with the global ones.
func flags(cmd *base.Command) string {
	var sb strings.Builder
	cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
	cmd.Flag.SetOutput(&sb)
	cmd.Flag.PrintDefaults()
	return sb.String()
}

// PrintUsage prints the usage of the command and its subcommands.
func PrintUsage(w io.Writer, cmd *base.Command) {
	bw := bufio.NewWriter(w)
	tmpl(bw, usageTemplate, cmd)
	bw.Flush()
}
