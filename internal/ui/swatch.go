package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/token-studio/internal/colors"
	"github.com/rcliao/token-studio/internal/model"
)

// Swatch renders a token as a colored block with contrasting text. Tokens
// whose value is not a color render as a bordered label.
func Swatch(t model.Token, width int) string {
	if width <= 0 {
		width = 32
	}
	label := fmt.Sprintf("%s  %s", t.Name, t.Value)

	c, ok := colors.Parse(t.Value)
	if t.Type != model.TypeColor || !ok {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(width).
			Render(label)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(colors.ContrastColor(c.Hex()))).
		Padding(1, 2).
		Width(width).
		Render(label)
}

// States renders a row of small swatches for a color token's interactive
// states, in canonical order.
func States(t model.Token) string {
	attrs, ok := t.Color()
	if !ok || len(attrs.InteractiveStates) == 0 {
		return ""
	}
	var blocks []string
	for _, s := range model.InteractiveStates {
		v, ok := attrs.InteractiveStates[s]
		if !ok {
			continue
		}
		c, ok := colors.Parse(v)
		if !ok {
			continue
		}
		blocks = append(blocks, lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(lipgloss.Color(colors.ContrastColor(c.Hex()))).
			Padding(0, 1).
			Render(string(s)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
