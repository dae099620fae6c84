package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/rcliao/token-studio/internal/model"
	"github.com/rcliao/token-studio/internal/storage"
	"github.com/rcliao/token-studio/internal/store"
)

func colorToken(name, value string) model.Token {
	return model.Token{Name: name, Value: value, Type: model.TypeColor, Category: model.CategoryPrimary}
}

func samplePalette() Palette {
	return BuildPalette("demo", []model.Token{
		colorToken("primary/default", "#4F46E5"),
		colorToken("primary/hover", "#3730A3"),
		{Name: "space/md", Value: "16px", Type: model.TypeSpacing, Category: model.CategoryOther},
	})
}

func TestCSSExample(t *testing.T) {
	out, err := Render(FormatCSS, samplePalette(), Options{})
	require.NoError(t, err)
	assert.Equal(t, ":root {\n"+
		"  --color-primary-default: #4F46E5;\n"+
		"  --color-primary-hover: #3730A3;\n"+
		"  --spacing-space-md: 16px;\n"+
		"}", out)
}

func TestVariableFormats(t *testing.T) {
	p := samplePalette()

	scss, err := Render(FormatSCSS, p, Options{})
	require.NoError(t, err)
	assert.Equal(t, "$color-primary-default: #4F46E5;\n$color-primary-hover: #3730A3;\n$spacing-space-md: 16px;\n", scss)

	less, err := Render(FormatLESS, p, Options{Prefix: "ds-"})
	require.NoError(t, err)
	assert.Equal(t, "@ds-color-primary-default: #4F46E5;\n@ds-color-primary-hover: #3730A3;\n@ds-spacing-space-md: 16px;\n", less)
}

func TestJSONFormats(t *testing.T) {
	p := BuildPalette("demo", []model.Token{colorToken("primary/hover", "#3730A3")})

	out, err := Render(FormatJSON, p, Options{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"demo\",\n  \"palette\": {\n    \"primary\": {\n      \"hover\": \"#3730A3\"\n    }\n  }\n}", out)

	compact, err := Render(FormatJSON, p, Options{Minify: true})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"demo","palette":{"primary":{"hover":"#3730A3"}}}`, compact)

	js, err := Render(FormatJS, p, Options{Minify: true})
	require.NoError(t, err)
	assert.Equal(t, `export const designTokens = {"name":"demo","palette":{"primary":{"hover":"#3730A3"}}};`, js)
}

func TestTypeScript(t *testing.T) {
	p := BuildPalette("demo", []model.Token{
		colorToken("primary/default", "#4F46E5"),
		colorToken("primary/hover", "#3730A3"),
		colorToken("brand/primary-500", "#000"),
	})
	out, err := Render(FormatTS, p, Options{Minify: true})
	require.NoError(t, err)

	want := "interface DesignTokens {\n" +
		"  name: string;\n" +
		"  palette: {\n" +
		"    primary: {\n" +
		"      default: string;\n" +
		"      hover: string;\n" +
		"    };\n" +
		"    brand: {\n" +
		"      \"primary-500\": string;\n" +
		"    };\n" +
		"  };\n" +
		"}\n\n" +
		"export const designTokens: DesignTokens = "
	assert.True(t, strings.HasPrefix(out, want), "got:\n%s", out)
	assert.True(t, strings.HasSuffix(out, "};"))
}

func TestFigma(t *testing.T) {
	p := BuildPalette("demo", []model.Token{
		colorToken("primary/default", "#4F46E5"),
		{Name: "type/body", Value: "16px", Type: model.TypeTypography, Category: model.CategoryText, Description: "Body copy"},
	})
	out, err := Render(FormatFigma, p, Options{Minify: true})
	require.NoError(t, err)
	assert.Equal(t, `{"primary":{"default":{"value":"#4F46E5","type":"color"}},"type":{"body":{"value":"16px","type":"fontSizes","description":"Body copy"}}}`, out)
}

func TestSketch(t *testing.T) {
	p := BuildPalette("demo", []model.Token{
		colorToken("primary/default", "#FF0000"),
		{Name: "space/md", Value: "16px", Type: model.TypeSpacing, Category: model.CategoryOther},
		colorToken("overlay/scrim", "rgba(0, 0, 255, 0.5)"),
	})
	out, err := Render(FormatSketch, p, Options{})
	require.NoError(t, err)

	var doc struct {
		CompatibleVersion string `json:"compatibleVersion"`
		PluginVersion     string `json:"pluginVersion"`
		Colors            []struct {
			Name  string  `json:"name"`
			Red   float64 `json:"red"`
			Green float64 `json:"green"`
			Blue  float64 `json:"blue"`
			Alpha float64 `json:"alpha"`
		} `json:"colors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "2.0", doc.CompatibleVersion)
	assert.Equal(t, "2.22", doc.PluginVersion)
	require.Len(t, doc.Colors, 2, "non-color leaves are skipped")
	assert.Equal(t, "primary-default", doc.Colors[0].Name)
	assert.Equal(t, 1.0, doc.Colors[0].Red)
	assert.Equal(t, 0.0, doc.Colors[0].Green)
	assert.Equal(t, 1.0, doc.Colors[0].Alpha)

	assert.Equal(t, "overlay-scrim", doc.Colors[1].Name)
	assert.Equal(t, 1.0, doc.Colors[1].Blue)
	assert.Equal(t, 1.0, doc.Colors[1].Alpha, "translucent colors are written opaque")
}

func TestBuildPalette(t *testing.T) {
	tokens := []model.Token{
		colorToken("primary/default", "#111111"),
		{Name: "accent", Value: "#222222", Type: model.TypeColor, Category: model.CategoryFunctional},
		colorToken("primary/default", "#333333"),
		{
			Name: "button/bg", Value: "#4F46E5", Type: model.TypeColor, Category: model.CategoryPrimary,
			Attrs: &model.ColorAttrs{InteractiveStates: map[model.InteractiveState]string{
				model.StateDisabled: "#C7D2FE",
				model.StateHover:    "#3730A3",
			}},
		},
	}
	p := BuildPalette("", tokens)

	assert.Equal(t, DefaultPaletteName, p.Name)
	require.Len(t, p.Categories, 3)

	// Duplicate keys keep the first position and the last value.
	assert.Equal(t, "primary", p.Categories[0].Key)
	assert.Equal(t, []Leaf{{State: "default", Value: "#333333", Type: model.TypeColor}}, p.Categories[0].Leaves)

	// A bare name falls back to the token category.
	assert.Equal(t, "functional", p.Categories[1].Key)
	assert.Equal(t, "accent", p.Categories[1].Leaves[0].State)

	// Interactive states follow the base leaf in canonical order.
	var states []string
	for _, l := range p.Categories[2].Leaves {
		states = append(states, l.State)
	}
	assert.Equal(t, []string{"bg", "bg-hover", "bg-disabled"}, states)
	assert.Equal(t, 5, p.Len())
}

func TestDemoPalette(t *testing.T) {
	p := DemoPalette()
	assert.Equal(t, "design-token-studio", p.Name)

	var keys []string
	for _, c := range p.Categories {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"primary", "secondary", "accent", "success", "warning", "danger", "surface", "background", "border", "text"}, keys)
	assert.Equal(t, 42, p.Len())

	css, err := Render(FormatCSS, p, Options{})
	require.NoError(t, err)
	assert.Contains(t, css, "  --color-primary-hover: #3730A3;\n")
	assert.Contains(t, css, "  --color-text-onDanger: #FFFFFF;\n")
	assert.True(t, strings.HasPrefix(css, ":root {\n  --color-primary-default: #4F46E5;\n"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("SCSS")
	require.NoError(t, err)
	assert.Equal(t, FormatSCSS, f)
	assert.Equal(t, "design-tokens.scss", f.FileName())
	assert.Equal(t, "json", FormatFigma.Extension())
	assert.Equal(t, "json", FormatSketch.Extension())

	_, err = ParseFormat("yaml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = Render(Format("yaml"), Palette{}, Options{})
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestDocument(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 8_000_000, time.UTC)
	tokens := []model.Token{
		{ID: "a", Name: "a", Value: "#000", Type: model.TypeColor, Category: model.CategoryText, UpdatedAt: now.Add(-time.Hour)},
		{ID: "b", Name: "b", Value: "4px", Type: model.TypeBorderRadius, Category: model.CategoryOther, UpdatedAt: now.Add(-time.Minute)},
	}

	doc := NewDocument(tokens, now, false)
	assert.Equal(t, "2025-03-04T05:06:07.008Z", doc.ExportedAt)
	assert.Equal(t, "1.0.0", doc.Version)
	assert.Nil(t, doc.Metadata)

	doc = NewDocument(tokens, now, true)
	require.NotNil(t, doc.Metadata)
	assert.Equal(t, 2, doc.Metadata.TotalTokens)
	assert.Equal(t, []string{"Text", "Other"}, doc.Metadata.Categories)
	assert.Equal(t, "2025-03-04T05:05:07.008Z", doc.Metadata.LastModified)

	out, err := doc.Encode(false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{\n  \"tokens\": [\n"))
	assert.Contains(t, out, `"version": "1.0.0"`)
}

func TestParseImport(t *testing.T) {
	legacy := `{"tokens":[{"id":1700000000000,"name":"radius-sm","value":"4px","type":"border-radius","category":"Other"}],"exportedAt":"x","version":"1.0.0"}`
	tokens, err := ParseImport(strings.NewReader(legacy))
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "1700000000000", tokens[0].ID)
	assert.Equal(t, model.TypeBorderRadius, tokens[0].Type)

	tokens, err = ParseImport(strings.NewReader(`{"tokens":[]}`))
	require.NoError(t, err)
	assert.Empty(t, tokens)

	for _, bad := range []string{
		`{"tokens":{"a":1}}`,
		`{"tokens":"nope"}`,
		`{"items":[]}`,
		`[1,2,3]`,
		`not json`,
	} {
		_, err := ParseImport(strings.NewReader(bad))
		assert.True(t, errors.Is(err, ErrImportFormat), "input %s: %v", bad, err)
	}
}

func TestSnippet(t *testing.T) {
	tok := model.Token{Name: "brand/primary", Value: "#4F46E5", Type: model.TypeColor}
	assert.Equal(t, "/* CSS Custom Property */\n:root {\n  --brand-primary: #4F46E5;\n}\n\n/* Usage Example */\n.element {\n  background-color: var(--brand-primary);\n}", Snippet(tok))

	tok = model.Token{Name: "shadow-md", Value: "2px 4px 8px #000000", Type: model.TypeShadow}
	assert.Equal(t, "--shadow-md: 2px 4px 8px #000000;\nbox-shadow: var(--shadow-md);", CopyLine(tok))
}

func TestExportImportRoundTrip(t *testing.T) {
	types := []model.Type{model.TypeColor, model.TypeSpacing, model.TypeTypography, model.TypeBorderRadius, model.TypeShadow, model.TypeGradient}

	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		src, err := store.New(ctx, store.Options{Storage: storage.NewMemory(0)})
		if err != nil {
			t.Fatalf("new: %v", err)
		}

		n := rapid.IntRange(0, 10).Draw(t, "n")
		for i := 0; i < n; i++ {
			src.Add(ctx, store.AddParams{
				Name:        rapid.StringMatching(`[a-zA-Z0-9/_-]{1,20}`).Draw(t, "name"),
				Value:       rapid.StringMatching(`[ -~]{0,24}`).Draw(t, "value"),
				Type:        rapid.SampledFrom(types).Draw(t, "type"),
				Category:    rapid.SampledFrom(model.Categories).Draw(t, "category"),
				Description: rapid.StringMatching(`[ -~]{0,16}`).Draw(t, "description"),
			})
		}

		out, err := NewDocument(src.Tokens(), time.Now(), rapid.Bool().Draw(t, "meta")).Encode(rapid.Bool().Draw(t, "minify"))
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		imported, err := ParseImport(strings.NewReader(out))
		if err != nil {
			t.Fatalf("parse: %v", err)
		}

		dst, _ := store.New(ctx, store.Options{Storage: storage.NewMemory(0)})
		if err := dst.Import(ctx, imported); err != nil {
			t.Fatalf("import: %v", err)
		}

		want, got := src.Tokens(), dst.Tokens()
		if len(want) != len(got) {
			t.Fatalf("expected %d tokens, got %d", len(want), len(got))
		}
		for i := range want {
			w := fmt.Sprintf("%s|%s|%s|%s|%s", want[i].Name, want[i].Value, want[i].Type, want[i].Category, want[i].Description)
			g := fmt.Sprintf("%s|%s|%s|%s|%s", got[i].Name, got[i].Value, got[i].Type, got[i].Category, got[i].Description)
			if w != g {
				t.Fatalf("token %d: want %s, got %s", i, w, g)
			}
		}
	})
}
