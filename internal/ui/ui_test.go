package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/rcliao/token-studio/internal/model"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestNotifier(t *testing.T) {
	noColor(t)
	var out, errOut bytes.Buffer
	n := Notifier{Out: &out, Err: &errOut}

	n.Success("Token %q created successfully", "brand/primary")
	n.Error("Invalid token file format")
	n.Detail("value: %s", "#fff")

	assert.Equal(t, " OK  Token \"brand/primary\" created successfully\n  value: #fff\n", out.String())
	assert.Equal(t, " ERROR  Invalid token file format\n", errOut.String())
}

func TestMemoryClipboard(t *testing.T) {
	var c MemoryClipboard
	var cb Clipboard = &c
	assert.NoError(t, cb.Copy("--brand: #fff;"))
	assert.Equal(t, "--brand: #fff;", c.Last)
}

func TestSwatchContainsLabel(t *testing.T) {
	tok := model.Token{Name: "brand/primary", Value: "#4F46E5", Type: model.TypeColor}
	out := Swatch(tok, 40)
	assert.Contains(t, out, "brand/primary")
	assert.Contains(t, out, "#4F46E5")

	spacing := model.Token{Name: "space/md", Value: "16px", Type: model.TypeSpacing}
	assert.Contains(t, Swatch(spacing, 0), "space/md")
}

func TestStates(t *testing.T) {
	tok := model.Token{
		Name: "button", Value: "#4F46E5", Type: model.TypeColor,
		Attrs: &model.ColorAttrs{InteractiveStates: map[model.InteractiveState]string{
			model.StateDisabled: "#C7D2FE",
			model.StateHover:    "#3730A3",
		}},
	}
	out := States(tok)
	assert.Less(t, strings.Index(out, "hover"), strings.Index(out, "disabled"))

	assert.Empty(t, States(model.Token{Type: model.TypeSpacing}))
}

func TestTokenTable(t *testing.T) {
	out := TokenTable([]model.Token{
		{ID: "id-1", Name: "brand/primary", Type: model.TypeColor, Category: model.CategoryPrimary, Value: "#4F46E5"},
		{ID: "id-2", Name: "gap", Type: model.TypeSpacing, Category: model.CategoryOther, Value: "8px"},
	})
	for _, want := range []string{"NAME", "brand/primary", "#4F46E5", "gap", "spacing"} {
		assert.Contains(t, out, want)
	}
}

func TestGroupTable(t *testing.T) {
	out := GroupTable([]model.TokenGroup{
		{ID: "g-1", Name: "Brand", Category: model.CategoryPrimary, Tokens: []model.Token{{ID: "a"}, {ID: "b"}}, Collapsed: true},
	})
	assert.Contains(t, out, "Brand")
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "yes")
	assert.Equal(t, 1, strings.Count(out, "Brand"))
}
