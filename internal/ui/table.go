package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rcliao/token-studio/internal/model"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// TokenTable lists tokens one per row.
func TokenTable(tokens []model.Token) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "NAME", "TYPE", "CATEGORY", "VALUE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, tok := range tokens {
		t.Row(tok.ID, tok.Name, string(tok.Type), string(tok.Category), tok.Value)
	}
	return t.String()
}

// GroupTable lists groups with their token counts.
func GroupTable(groups []model.TokenGroup) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "NAME", "CATEGORY", "TOKENS", "COLLAPSED").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, g := range groups {
		collapsed := "no"
		if g.Collapsed {
			collapsed = "yes"
		}
		t.Row(g.ID, g.Name, string(g.Category), strconv.Itoa(len(g.Tokens)), collapsed)
	}
	return t.String()
}
