package commands

import (
	"fmt"
	"io"
	"strings"
)

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

func paragraph(w io.Writer, text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(w, text)
}

func bullets(w io.Writer, items []string) {
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
}

// field prints "label: value", skipping empty values.
func field(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "  %s: %s\n", label, value)
}
