package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rcliao/token-studio/internal/colors"
	"github.com/rcliao/token-studio/internal/model"
)

// ErrUnknownFormat is returned for a format name that has no renderer.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names an export target.
type Format string

const (
	FormatCSS    Format = "css"
	FormatSCSS   Format = "scss"
	FormatLESS   Format = "less"
	FormatJSON   Format = "json"
	FormatJS     Format = "js"
	FormatTS     Format = "ts"
	FormatFigma  Format = "figma"
	FormatSketch Format = "sketch"
)

// Formats lists every supported format.
var Formats = []Format{FormatCSS, FormatSCSS, FormatLESS, FormatJSON, FormatJS, FormatTS, FormatFigma, FormatSketch}

var extensions = map[Format]string{
	FormatJSON:   "json",
	FormatCSS:    "css",
	FormatSCSS:   "scss",
	FormatLESS:   "less",
	FormatJS:     "js",
	FormatTS:     "ts",
	FormatFigma:  "json",
	FormatSketch: "json",
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := extensions[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Extension is the file extension for f, "json" for anything unknown.
func (f Format) Extension() string {
	if ext, ok := extensions[f]; ok {
		return ext
	}
	return "json"
}

// FileName is the download name for f.
func (f Format) FileName() string {
	return "design-tokens." + f.Extension()
}

// Options tunes rendering.
type Options struct {
	Prefix string // prepended to CSS/SCSS/LESS variable names
	Minify bool   // compact JSON in json, js, ts, figma and sketch output
}

var varPrefix = map[model.Type]string{
	model.TypeColor:        "color",
	model.TypeSpacing:      "spacing",
	model.TypeTypography:   "font-size",
	model.TypeBorderRadius: "radius",
	model.TypeShadow:       "shadow",
	model.TypeGradient:     "gradient",
}

var figmaType = map[model.Type]string{
	model.TypeColor:        "color",
	model.TypeSpacing:      "spacing",
	model.TypeTypography:   "fontSizes",
	model.TypeBorderRadius: "borderRadius",
	model.TypeShadow:       "boxShadow",
	model.TypeGradient:     "color",
}

func varName(prefix string, cat string, l Leaf) string {
	tp, ok := varPrefix[l.Type]
	if !ok {
		tp = "color"
	}
	return prefix + tp + "-" + cat + "-" + l.State
}

// Render serializes the palette in the given format.
func Render(f Format, p Palette, opts Options) (string, error) {
	switch f {
	case FormatCSS:
		return renderVars(p, opts, ":root {\n", "  --", "}"), nil
	case FormatSCSS:
		return renderVars(p, opts, "", "$", ""), nil
	case FormatLESS:
		return renderVars(p, opts, "", "@", ""), nil
	case FormatJSON:
		return encode(p, opts.Minify)
	case FormatJS:
		body, err := encode(p, opts.Minify)
		if err != nil {
			return "", err
		}
		return "export const designTokens = " + body + ";", nil
	case FormatTS:
		return renderTS(p, opts)
	case FormatFigma:
		return renderFigma(p, opts)
	case FormatSketch:
		return renderSketch(p, opts)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func renderVars(p Palette, opts Options, open, sigil, end string) string {
	var b strings.Builder
	b.WriteString(open)
	for _, c := range p.Categories {
		for _, l := range c.Leaves {
			fmt.Fprintf(&b, "%s%s: %s;\n", sigil, varName(opts.Prefix, c.Key, l), l.Value)
		}
	}
	b.WriteString(end)
	return b.String()
}

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func tsKey(k string) string {
	if identRe.MatchString(k) {
		return k
	}
	return quote(k)
}

func renderTS(p Palette, opts Options) (string, error) {
	body, err := encode(p, opts.Minify)
	if err != nil {
		return "", err
	}

	cats := make([]string, len(p.Categories))
	for i, c := range p.Categories {
		states := make([]string, len(c.Leaves))
		for j, l := range c.Leaves {
			states[j] = tsKey(l.State) + ": string;"
		}
		cats[i] = tsKey(c.Key) + ": {\n      " + strings.Join(states, "\n      ") + "\n    };"
	}

	return "interface DesignTokens {\n" +
		"  name: string;\n" +
		"  palette: {\n" +
		"    " + strings.Join(cats, "\n    ") + "\n" +
		"  };\n" +
		"}\n\n" +
		"export const designTokens: DesignTokens = " + body + ";", nil
}

type figmaLeaf struct {
	Value       string `json:"value"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

func renderFigma(p Palette, opts Options) (string, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for ci, c := range p.Categories {
		if ci > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(c.Key))
		b.WriteString(":{")
		for li, l := range c.Leaves {
			if li > 0 {
				b.WriteByte(',')
			}
			typ, ok := figmaType[l.Type]
			if !ok {
				typ = "color"
			}
			leaf, err := marshal(figmaLeaf{Value: l.Value, Type: typ, Description: l.Description})
			if err != nil {
				return "", err
			}
			b.WriteString(quote(l.State))
			b.WriteByte(':')
			b.Write(leaf)
		}
		b.WriteByte('}')
	}
	b.WriteByte('}')
	return format(b.Bytes(), opts.Minify)
}

type sketchColor struct {
	Name  string  `json:"name"`
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

type sketchPalette struct {
	CompatibleVersion string        `json:"compatibleVersion"`
	PluginVersion     string        `json:"pluginVersion"`
	Colors            []sketchColor `json:"colors"`
}

// renderSketch keeps only leaves whose value parses as a color. Every
// entry is opaque.
func renderSketch(p Palette, opts Options) (string, error) {
	out := sketchPalette{CompatibleVersion: "2.0", PluginVersion: "2.22", Colors: []sketchColor{}}
	for _, c := range p.Categories {
		for _, l := range c.Leaves {
			rgb, ok := colors.Parse(l.Value)
			if !ok {
				continue
			}
			r, g, bl, err := colors.HexToRGB(rgb.Hex())
			if err != nil {
				return "", err
			}
			out.Colors = append(out.Colors, sketchColor{
				Name:  c.Key + "-" + l.State,
				Red:   r,
				Green: g,
				Blue:  bl,
				Alpha: 1,
			})
		}
	}
	return encode(out, opts.Minify)
}

// marshal is json.Marshal without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func quote(s string) string {
	b, _ := marshal(s)
	return string(b)
}

func encode(v any, minify bool) (string, error) {
	b, err := marshal(v)
	if err != nil {
		return "", err
	}
	return format(b, minify)
}

// format pretty-prints compact JSON with two-space indentation unless
// minify is set.
func format(compact []byte, minify bool) (string, error) {
	if minify {
		return string(compact), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
