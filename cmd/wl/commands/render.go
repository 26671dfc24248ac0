package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

const (
	titleWidth = 15
	indexWidth = 5
)

// renderList prints a centred title followed by numbered rows. Styling is
// dropped automatically when w is not a terminal.
func renderList(w io.Writer, title string, items []string) {
	r := lipgloss.NewRenderer(w)
	titleStyle := r.NewStyle().Italic(true).Underline(true)
	indexStyle := r.NewStyle().Bold(true)

	fmt.Fprintln(w, r.PlaceHorizontal(titleWidth, lipgloss.Center, titleStyle.Render(title)))
	for i, item := range items {
		n := r.PlaceHorizontal(indexWidth, lipgloss.Right, indexStyle.Render(strconv.Itoa(i+1)))
		fmt.Fprintf(w, "%s. | %s\n", n, item)
	}
}
