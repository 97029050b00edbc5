// ABOUTME: lipgloss styles for results printed after a popup closes
// ABOUTME: Palette results are shown in the picked color next to its index and name

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/termpopup/pkg/popup"
)

var resultStyle = lipgloss.NewStyle().Bold(true)

// paletteResult formats a palette index as "<index> <name>", the name
// drawn in the chosen color.
func paletteResult(i int) string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(i)))
	return fmt.Sprintf("%d %s", i, swatch.Render(popup.PaletteName(i)))
}
