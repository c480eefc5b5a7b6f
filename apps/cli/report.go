package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/acm19/phototransformer/internal/photos"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
)

const banner = `
 +-+-+-+-+-+ +-+-+-+-+-+-+-+-+-+-+-+
 |P|h|o|t|o| |T|r|a|n|s|f|o|r|m|e|r|
 +-+-+-+-+-+ +-+-+-+-+-+-+-+-+-+-+-+
`

// reporter prints the console text around a run. When interactive it waits
// for a line of input after the banner and after the final message.
type reporter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

func newReporter(in io.Reader, out io.Writer, interactive bool) *reporter {
	return &reporter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// isInteractive reports whether prompts should block on in.
func isInteractive(in io.Reader, yes bool) bool {
	if yes {
		return false
	}
	file, ok := in.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Start prints the banner and the resolved settings.
func (r *reporter) Start(run *photos.Run) {
	fmt.Fprint(r.out, banner)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "You are using the following settings, please make sure they're OK.")
	fmt.Fprintln(r.out, renderSettings(run))
	fmt.Fprintln(r.out)

	if r.interactive {
		fmt.Fprintf(r.out, "There are %d photos found to transform. Press enter to start.\n", len(run.Photos))
		r.wait()
		return
	}
	fmt.Fprintf(r.out, "There are %d photos found to transform.\n", len(run.Photos))
}

// Progress overwrites the current line with the photo counter.
func (r *reporter) Progress(event photos.ProgressEvent) {
	fmt.Fprintf(r.out, "\rTransforming photo nr: %d   ", event.Current)
}

// Done prints the completion message.
func (r *reporter) Done(result *photos.Result) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Our work is done here: %d photos transformed in %s.\n", len(result.Outputs), result.Duration.Round(time.Millisecond))
	r.pause("Press enter to exit.")
}

// Failure prints err and its immediate cause, each once.
func (r *reporter) Failure(err error) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Something went wrong.")
	fmt.Fprintln(r.out)

	var perr *photos.Error
	if errors.As(err, &perr) {
		fmt.Fprintln(r.out, perr.Summary())
		if perr.Err != nil {
			fmt.Fprintln(r.out)
			fmt.Fprintf(r.out, "Cause: %v\n", perr.Err)
		}
	} else {
		fmt.Fprintln(r.out, err.Error())
	}
	r.pause("Press enter to exit.")
}

func (r *reporter) pause(prompt string) {
	if !r.interactive {
		return
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, prompt)
	r.wait()
}

func (r *reporter) wait() {
	// EOF and read errors end the wait as well
	_, _ = r.in.ReadString('\n')
}

func renderSettings(run *photos.Run) string {
	cfg := run.Config

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Setting", "Value"})
	tw.AppendRows([]table.Row{
		{"Location folder", cfg.SourceDir},
		{"Formats to find", cfg.Format.String() + " files"},
		{"Output folder", run.OutputDir},
		{"Mirroring", cfg.Mirror.String()},
		{"Quality", qualityLabel(cfg)},
		{"Filename prefix", cfg.Prefix},
	})
	return tw.Render()
}

func qualityLabel(cfg photos.RunConfig) string {
	if cfg.Format == photos.PNG {
		return "lossless"
	}
	return fmt.Sprintf("%d", cfg.Quality)
}
