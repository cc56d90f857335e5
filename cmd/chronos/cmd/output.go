package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// field is one labeled line of human output
type field struct {
	key   string
	value string
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printBlock prints a titled block of labeled values
func printBlock(w io.Writer, title string, fields []field) {
	lines := []string{titleStyle.Render(title)}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(f.key), valueStyle.Render(f.value)))
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

// printList prints values one per line
func printList(w io.Writer, title string, values []string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	if len(values) == 0 {
		fmt.Fprintln(w, typeStyle.Render("  (none)"))
		return
	}
	for _, v := range values {
		fmt.Fprintln(w, "  "+valueStyle.Render(v))
	}
}
