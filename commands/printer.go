package commands

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const gridWidth = 40

// Printer displays text with optional decorations. With every toggle off it
// writes the text unchanged.
type Printer struct {
	LineNumbers bool
	Header      bool
	Grid        bool
}

// paint colors decorations, fatih/color turns itself off when stdout isn't a
// terminal.
func (p *Printer) paint(c *color.Color, s string) string {
	return c.Sprint(s)
}

func (p *Printer) decorated() bool {
	return p.LineNumbers || p.Header || p.Grid
}

// Print writes content to w, title is shown in the header.
func (p *Printer) Print(w io.Writer, title string, content []byte) error {
	if !p.decorated() {
		_, err := w.Write(content)
		return err
	}

	var out bytes.Buffer
	rule := p.paint(ColorFaint, strings.Repeat("─", gridWidth))

	if p.Grid {
		fmt.Fprintln(&out, rule)
	}
	if p.Header {
		fmt.Fprintf(&out, "File: %s\n", p.paint(ColorBoldBlue, title))
		if p.Grid {
			fmt.Fprintln(&out, rule)
		}
	}

	lines := strings.Split(string(content), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		if p.LineNumbers {
			out.WriteString(p.paint(ColorFaint, fmt.Sprintf("%4d ", i+1)))
		}
		if p.Grid {
			out.WriteString(p.paint(ColorFaint, "│ "))
		}
		out.WriteString(line)
		out.WriteString("\n")
	}

	if p.Grid {
		fmt.Fprintln(&out, rule)
	}

	_, err := out.WriteTo(w)
	return err
}
