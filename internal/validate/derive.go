package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rcliao/token-studio/internal/model"
)

var (
	unitRe   = regexp.MustCompile(`^\d+(?:\.\d+)?(px|rem|em|%)$`)
	offsetRe = regexp.MustCompile(`(\d+(?:\.\d+)?)px`)
	colorRe  = regexp.MustCompile(`(#[A-Fa-f0-9]{6}|#[A-Fa-f0-9]{3}|rgba?\([^)]+\))`)
)

// Derive fills the attributes that can be read straight off a valid
// value: the unit of a dimension, the font size of a typography token, the
// offsets and color of a shadow and the hex of a hex color. It returns nil
// when nothing can be derived.
func Derive(t model.Type, value string) model.Attrs {
	if !Value(t, value).Valid {
		return nil
	}
	switch t {
	case model.TypeColor:
		if hexRe.MatchString(value) {
			return &model.ColorAttrs{Hex: value}
		}
	case model.TypeSpacing:
		return &model.SpacingAttrs{Unit: unitRe.FindStringSubmatch(value)[1]}
	case model.TypeBorderRadius:
		return &model.BorderRadiusAttrs{Unit: unitRe.FindStringSubmatch(value)[1]}
	case model.TypeTypography:
		return &model.TypographyAttrs{FontSize: value}
	case model.TypeShadow:
		return deriveShadow(value)
	}
	return nil
}

func deriveShadow(value string) *model.ShadowAttrs {
	color := colorRe.FindString(value)
	offsets := offsetRe.FindAllStringSubmatch(strings.Replace(value, color, "", 1), -1)

	nums := make([]float64, 4)
	for i, m := range offsets {
		if i >= len(nums) {
			break
		}
		nums[i], _ = strconv.ParseFloat(m[1], 64)
	}
	return &model.ShadowAttrs{
		X:      nums[0],
		Y:      nums[1],
		Blur:   nums[2],
		Spread: nums[3],
		Color:  color,
		Inset:  strings.HasSuffix(value, "inset"),
	}
}
