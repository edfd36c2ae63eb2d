package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{` _   _ _           _             _          `, "#34d399"},
		{`| \ | | |__   ___ | |__  _ __   | |__   ___ `, "#2dd4bf"},
		{`|  \| | '_ \ / _ \| '_ \| '_ \  | '_ \ / _ \`, "#22d3ee"},
		{`| |\  | | | | (_) | | | | | | | | | | |  __/`, "#38bdf8"},
		{`|_| \_|_| |_|\___/|_| |_|_| |_| |_| |_|\___|`, "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
