package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const banner = `
╔═══════════════════════════════════════════════════════════╗
║                                                           ║
║   ██████╗ ██╗ ██████╗████████╗ █████╗ ████████╗███████╗   ║
║   ██╔══██╗██║██╔════╝╚══██╔══╝██╔══██╗╚══██╔══╝██╔════╝   ║
║   ██║  ██║██║██║        ██║   ███████║   ██║   █████╗     ║
║   ██║  ██║██║██║        ██║   ██╔══██║   ██║   ██╔══╝     ║
║   ██████╔╝██║╚██████╗   ██║   ██║  ██║   ██║   ███████╗   ║
║   ╚═════╝ ╚═╝ ╚═════╝   ╚═╝   ╚═╝  ╚═╝   ╚═╝   ╚══════╝   ║
║                                                           ║
║              VOICE-TO-TEXT TRANSCRIPTION SYSTEM           ║
╚═══════════════════════════════════════════════════════════╝`

// Terminal renders the retro status output. Colors are disabled automatically
// when the writer is not a tty.
type Terminal struct {
	out    io.Writer
	green  *color.Color
	bright *color.Color
	red    *color.Color
	dim    *color.Color
}

// NewTerminal creates a Terminal writing to out.
func NewTerminal(out io.Writer) *Terminal {
	t := &Terminal{
		out:    out,
		green:  color.New(color.FgGreen),
		bright: color.New(color.FgHiGreen, color.Bold),
		red:    color.New(color.FgRed),
		dim:    color.New(color.Faint),
	}

	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		for _, c := range []*color.Color{t.green, t.bright, t.red, t.dim} {
			c.DisableColor()
		}
	}

	return t
}

// Clear wipes the screen and homes the cursor.
func (t *Terminal) Clear() {
	fmt.Fprint(t.out, "\033[2J\033[H")
}

// Banner prints the startup banner.
func (t *Terminal) Banner() {
	t.bright.Fprintln(t.out, banner)
}

// Info prints an informational status line.
func (t *Terminal) Info(msg string) {
	t.green.Fprintf(t.out, "[●] %s\n", msg)
}

// Success prints a success status line.
func (t *Terminal) Success(msg string) {
	t.bright.Fprintf(t.out, "[✓] %s\n", msg)
}

// Error prints an error status line.
func (t *Terminal) Error(msg string) {
	t.red.Fprintf(t.out, "[✗] %s\n", msg)
}

// Prompt prints a prompt without a trailing newline.
func (t *Terminal) Prompt(msg string) {
	t.bright.Fprintf(t.out, "> %s", msg)
}

// Dim prints de-emphasized text.
func (t *Terminal) Dim(msg string) {
	t.dim.Fprintln(t.out, msg)
}

// Println prints a blank line.
func (t *Terminal) Println() {
	fmt.Fprintln(t.out)
}
