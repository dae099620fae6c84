// Package export turns tokens into palette files (CSS, SCSS, LESS, JSON,
// JS, TS, Figma Tokens, Sketch) and reads and writes the token document
// used for import and backup.
package export

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/rcliao/token-studio/internal/model"
)

// DefaultPaletteName names palettes when nothing else is configured.
const DefaultPaletteName = "design-token-studio"

// Leaf is one state of a palette category.
type Leaf struct {
	State       string
	Value       string
	Type        model.Type
	Description string
}

// Category is an ordered set of leaves.
type Category struct {
	Key    string
	Leaves []Leaf
}

// Palette is an ordered category -> state -> value tree.
type Palette struct {
	Name       string
	Categories []Category
}

// Len counts the leaves.
func (p Palette) Len() int {
	n := 0
	for _, c := range p.Categories {
		n += len(c.Leaves)
	}
	return n
}

// set keeps the first position of a key and the last value written to it.
func (p *Palette) set(cat string, leaf Leaf) {
	for ci := range p.Categories {
		c := &p.Categories[ci]
		if c.Key != cat {
			continue
		}
		for li := range c.Leaves {
			if c.Leaves[li].State == leaf.State {
				c.Leaves[li] = leaf
				return
			}
		}
		c.Leaves = append(c.Leaves, leaf)
		return
	}
	p.Categories = append(p.Categories, Category{Key: cat, Leaves: []Leaf{leaf}})
}

var unsafeKey = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func keyPart(s string) string {
	return strings.Trim(unsafeKey.ReplaceAllString(strings.TrimSpace(s), "-"), "-")
}

// paletteKeys splits a token name into its category and state keys. A
// name with a path uses its first segment as the category; a bare name
// falls back to the token category.
func paletteKeys(t model.Token) (cat, state string) {
	parts := strings.Split(t.Name, "/")
	state = keyPart(parts[len(parts)-1])
	if len(parts) > 1 {
		cat = strings.ToLower(keyPart(parts[0]))
	}
	if cat == "" {
		cat = strings.ToLower(keyPart(string(t.Category)))
	}
	if cat == "" {
		cat = strings.ToLower(string(model.CategoryOther))
	}
	if state == "" {
		state = "default"
	}
	return cat, state
}

// BuildPalette arranges live tokens into a palette in token order. Color
// tokens with interactive states contribute one extra leaf per state.
func BuildPalette(name string, tokens []model.Token) Palette {
	if name == "" {
		name = DefaultPaletteName
	}
	p := Palette{Name: name}
	for _, t := range tokens {
		cat, state := paletteKeys(t)
		p.set(cat, Leaf{State: state, Value: t.Value, Type: t.Type, Description: t.Description})

		c, ok := t.Color()
		if !ok {
			continue
		}
		for _, is := range model.InteractiveStates {
			if v := c.InteractiveStates[is]; v != "" {
				p.set(cat, Leaf{State: state + "-" + string(is), Value: v, Type: model.TypeColor})
			}
		}
	}
	return p
}

// MarshalJSON writes {"name": ..., "palette": {category: {state: value}}}
// keeping palette order.
func (p Palette) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(`{"name":`)
	b.WriteString(quote(p.Name))
	b.WriteString(`,"palette":{`)
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
			b.WriteString(quote(l.State))
			b.WriteByte(':')
			b.WriteString(quote(l.Value))
		}
		b.WriteByte('}')
	}
	b.WriteString("}}")
	return b.Bytes(), nil
}

type demoCategory struct {
	key      string
	category model.Category
	states   [][2]string
}

var demo = []demoCategory{
	{"primary", model.CategoryPrimary, [][2]string{{"default", "#4F46E5"}, {"hover", "#3730A3"}, {"active", "#4338CA"}, {"disabled", "#C7D2FE"}}},
	{"secondary", model.CategorySecondary, [][2]string{{"default", "#a7d2d2"}, {"hover", "#85c1c1"}, {"active", "#74b8b8"}, {"disabled", "#eefff1"}}},
	{"accent", model.CategoryFunctional, [][2]string{{"default", "#0EA5E9"}, {"hover", "#0E7490"}, {"active", "#1580CA"}, {"disabled", "#B3E5FC"}}},
	{"success", model.CategoryFunctional, [][2]string{{"default", "#10B981"}, {"hover", "#059669"}, {"active", "#0D9488"}, {"disabled", "#86EFAC"}}},
	{"warning", model.CategoryFunctional, [][2]string{{"default", "#F59E0B"}, {"hover", "#D97706"}, {"active", "#C27803"}, {"disabled", "#FCD34D"}}},
	{"danger", model.CategoryFunctional, [][2]string{{"default", "#EF4444"}, {"hover", "#DC2626"}, {"active", "#CB2323"}, {"disabled", "#FECACA"}}},
	{"surface", model.CategoryOther, [][2]string{{"default", "#F9FAFB"}, {"muted", "#D97706"}, {"subtle", "#daefe7"}, {"elevated", "#FCD34D"}}},
	{"background", model.CategoryOther, [][2]string{{"default", "#F3F4F6"}, {"inverted", "#D1D5DB"}}},
	{"border", model.CategoryOther, [][2]string{{"default", "#cbd4dc"}, {"focus", "#4F46E5"}}},
	{"text", model.CategoryText, [][2]string{
		{"default", "#1F2937"}, {"muted", "#9CA3AF"}, {"subtle", "#728eb0"}, {"disabled", "#9CA3AF"},
		{"onPrimary", "#FFFFFF"}, {"onSecondary", "#FFFFFF"}, {"onAccent", "#FFFFFF"},
		{"onSuccess", "#FFFFFF"}, {"onWarning", "#FFFFFF"}, {"onDanger", "#FFFFFF"},
	}},
}

// DemoTokens returns the sample palette as color tokens named
// "{category}/{state}". IDs and timestamps are left for the store to fill.
func DemoTokens() []model.Token {
	var out []model.Token
	for _, c := range demo {
		for _, s := range c.states {
			out = append(out, model.Token{
				Name:     c.key + "/" + s[0],
				Value:    s[1],
				Type:     model.TypeColor,
				Category: c.category,
			})
		}
	}
	return out
}

// DemoPalette is the sample palette built from DemoTokens.
func DemoPalette() Palette {
	return BuildPalette(DefaultPaletteName, DemoTokens())
}
