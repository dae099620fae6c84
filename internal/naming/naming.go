// Package naming derives default token names.
package naming

import (
	"fmt"
	"regexp"

	"github.com/rcliao/token-studio/internal/model"
)

// Placeholder replaces a value that has no alphanumeric characters.
const Placeholder = "Default"

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Generate returns "{category}/{type}/{value}" with every non-alphanumeric
// character stripped from value. Names are not checked for uniqueness.
func Generate(category model.Category, typ model.Type, value string) string {
	v := nonAlnum.ReplaceAllString(value, "")
	if v == "" {
		v = Placeholder
	}
	return fmt.Sprintf("%s/%s/%s", category, typ, v)
}
