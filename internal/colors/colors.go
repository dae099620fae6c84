// Package colors parses CSS color values and derives contrast helpers from
// them.
package colors

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RGB is an 8-bit color with a 0-1 alpha.
type RGB struct {
	R, G, B uint8
	A       float64
}

// Hex returns the #RRGGBB form, dropping alpha.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Floats returns the channels normalised to 0..1.
func (c RGB) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// Brightness is the perceptual brightness (0.299R + 0.587G + 0.114B) on a
// 0-255 scale.
func (c RGB) Brightness() float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

var named = map[string]string{
	"red":    "#FF0000",
	"blue":   "#0000FF",
	"green":  "#008000",
	"yellow": "#FFFF00",
	"orange": "#FFA500",
	"purple": "#800080",
	"pink":   "#FFC0CB",
	"brown":  "#A52A2A",
	"black":  "#000000",
	"white":  "#FFFFFF",
	"gray":   "#808080",
	"grey":   "#808080",
}

var (
	rgbRe = regexp.MustCompile(`(?i)^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([\d.]+)\s*)?\)$`)
	hslRe = regexp.MustCompile(`(?i)^hsla?\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*(?:,\s*([\d.]+)\s*)?\)$`)
)

// Parse reads a hex, rgb(a), hsl(a) or named color.
func Parse(value string) (RGB, bool) {
	v := strings.TrimSpace(value)
	if hex, ok := named[strings.ToLower(v)]; ok {
		v = hex
	}
	if strings.HasPrefix(v, "#") {
		return parseHex(v)
	}
	if m := rgbRe.FindStringSubmatch(v); m != nil {
		c := RGB{R: channel(m[1]), G: channel(m[2]), B: channel(m[3]), A: alpha(m[4])}
		return c, true
	}
	if m := hslRe.FindStringSubmatch(v); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		s, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		c := fromHSL(h, math.Min(s, 100)/100, math.Min(l, 100)/100)
		c.A = alpha(m[4])
		return c, true
	}
	return RGB{}, false
}

func parseHex(s string) (RGB, bool) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, false
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 1}, true
}

func channel(s string) uint8 {
	n, _ := strconv.Atoi(s)
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

func alpha(s string) float64 {
	if s == "" {
		return 1
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1
	}
	return math.Max(0, math.Min(1, f))
}

func fromHSL(h, s, l float64) RGB {
	h = math.Mod(h, 360) / 360
	if s == 0 {
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	conv := func(t float64) uint8 {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		var v float64
		switch {
		case t < 1.0/6:
			v = p + (q-p)*6*t
		case t < 0.5:
			v = q
		case t < 2.0/3:
			v = p + (q-p)*(2.0/3-t)*6
		default:
			v = p
		}
		return uint8(math.Round(v * 255))
	}
	return RGB{R: conv(h + 1.0/3), G: conv(h), B: conv(h - 1.0/3)}
}

// HexToRGB converts #RRGGBB (or #RGB) into 0..1 floats.
func HexToRGB(hex string) (r, g, b float64, err error) {
	c, ok := parseHex(strings.TrimSpace(hex))
	if !ok {
		return 0, 0, 0, fmt.Errorf("not a hex color: %q", hex)
	}
	r, g, b = c.Floats()
	return r, g, b, nil
}

// ContrastColor picks black or white text for a background. Unparseable
// input gets white text.
func ContrastColor(background string) string {
	c, ok := Parse(background)
	if ok && c.Brightness() > 125 {
		return "#000000"
	}
	return "#ffffff"
}

func luminance(c RGB) float64 {
	lin := func(v uint8) float64 {
		f := float64(v) / 255
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// Ratio is the WCAG 2 contrast ratio between two colors, from 1 to 21.
func Ratio(a, b RGB) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Check is a WCAG contrast verdict for normal-size text.
type Check struct {
	Ratio float64 `json:"ratio"`
	AA    bool    `json:"aa"`
	AAA   bool    `json:"aaa"`
}

// Contrast rates fg on bg. The ratio is rounded to two decimals.
func Contrast(fg, bg RGB) Check {
	r := Ratio(fg, bg)
	return Check{
		Ratio: math.Round(r*100) / 100,
		AA:    r >= 4.5,
		AAA:   r >= 7,
	}
}
