package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Terminal color codes
const (
	reset   = "\033[0m"
	red     = "\033[31m"
	green   = "\033[32m"
	yellow  = "\033[33m"
	magenta = "\033[35m"
	cyan    = "\033[36m"
)

// Prompt returns the prompt for a session ID, shortened to eight characters.
func Prompt(sessionID string, color bool) string {
	text := "explorer"
	if len(sessionID) >= 8 {
		text += " [" + sessionID[:8] + "]"
	}
	if !color {
		return text + " > "
	}
	return yellow + text + " > " + reset
}

// printer writes colored lines and aligned tables.
type printer struct {
	out   io.Writer
	color bool
}

func (p printer) paint(code, text string) string {
	if !p.color {
		return text
	}
	return code + text + reset
}

func (p printer) line(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p printer) title(text string) {
	p.line("%s", p.paint(cyan, text))
}

func (p printer) note(text string) {
	p.line("%s", p.paint(yellow, text))
}

func (p printer) banner(err error) {
	p.line("%s", p.paint(red, "Error: "+err.Error()))
}

// table prints header and rows as tab-aligned columns.
func (p printer) table(header []string, rows [][]string) {
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	seps := make([]string, len(header))
	for i, h := range header {
		seps[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(seps, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
}
