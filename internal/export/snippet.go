package export

import (
	"fmt"
	"strings"

	"github.com/rcliao/token-studio/internal/model"
)

var cssProperty = map[model.Type]string{
	model.TypeColor:        "background-color",
	model.TypeSpacing:      "padding",
	model.TypeTypography:   "font-size",
	model.TypeBorderRadius: "border-radius",
	model.TypeShadow:       "box-shadow",
	model.TypeGradient:     "background-image",
}

// CSSProperty is the property a token of type t is usually applied to.
func CSSProperty(t model.Type) string {
	if p, ok := cssProperty[t]; ok {
		return p
	}
	return "color"
}

// VarName turns a token name into a custom property name, "brand/primary"
// becoming "brand-primary".
func VarName(name string) string {
	return keyPart(strings.ReplaceAll(name, "/", "-"))
}

// Snippet renders a custom property declaration and a usage example.
func Snippet(t model.Token) string {
	name := VarName(t.Name)
	return fmt.Sprintf("/* CSS Custom Property */\n:root {\n  --%s: %s;\n}\n\n/* Usage Example */\n.element {\n  %s: var(--%s);\n}",
		name, t.Value, CSSProperty(t.Type), name)
}

// CopyLine is the two-line clipboard form of a token.
func CopyLine(t model.Token) string {
	name := VarName(t.Name)
	return fmt.Sprintf("--%s: %s;\n%s: var(--%s);", name, t.Value, CSSProperty(t.Type), name)
}
