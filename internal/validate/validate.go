// Package validate checks token names and values against the syntax each
// token type accepts.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rcliao/token-studio/internal/model"
)

// ErrInvalidFormat is wrapped by every validation failure.
var ErrInvalidFormat = errors.New("invalid format")

// MaxNameLength is the longest accepted token name.
const MaxNameLength = 100

// Result is the outcome of a single check.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Err converts a failed Result into an error wrapping ErrInvalidFormat.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidFormat, r.Error)
}

func ok() Result { return Result{Valid: true} }

func fail(msg string) Result { return Result{Error: msg} }

var (
	hexRe   = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	rgbRe   = regexp.MustCompile(`(?i)^rgba?\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*(,\s*[\d.]+)?\s*\)$`)
	hslRe   = regexp.MustCompile(`(?i)^hsla?\(\s*\d+\s*,\s*\d+%\s*,\s*\d+%\s*(,\s*[\d.]+)?\s*\)$`)
	alphaRe = regexp.MustCompile(`,\s*([\d.]+)\s*\)$`)

	spacingRe    = regexp.MustCompile(`^\d+(\.\d+)?(px|rem|em|%)$`)
	typographyRe = regexp.MustCompile(`^\d+(\.\d+)?(px|rem|em)$`)
	radiusRe     = regexp.MustCompile(`^\d+(\.\d+)?(px|rem|em|%)$`)
	shadowRe     = regexp.MustCompile(`^(\d+(\.\d+)?px\s+){2,4}(#[A-Fa-f0-9]{6}|#[A-Fa-f0-9]{3}|rgba?\([^)]+\))(\s+inset)?$`)

	nameRe = regexp.MustCompile(`^[a-zA-Z0-9/_-]+$`)
)

// NamedColors is the allow-list of CSS color keywords accepted by Color.
var NamedColors = []string{"red", "blue", "green", "yellow", "orange", "purple", "pink", "brown", "black", "white", "gray", "grey"}

// Color accepts #RGB, #RRGGBB, rgb()/rgba() with an optional 0-1 alpha,
// hsl()/hsla(), or one of NamedColors.
func Color(value string) Result {
	if hexRe.MatchString(value) {
		return ok()
	}
	if rgbRe.MatchString(value) || hslRe.MatchString(value) {
		if m := alphaRe.FindStringSubmatch(value); m != nil && !alphaInRange(m[1]) {
			return fail("Invalid color format. Alpha must be between 0 and 1.")
		}
		return ok()
	}
	for _, n := range NamedColors {
		if strings.EqualFold(value, n) {
			return ok()
		}
	}
	return fail("Invalid color format. Use hex (#000000), rgb(), hsl(), or named colors.")
}

func alphaInRange(s string) bool {
	var f float64
	if _, err := fmt.Sscanf(s, "%g", &f); err != nil {
		return false
	}
	return f >= 0 && f <= 1
}

// Spacing accepts a non-negative number followed by px, rem, em or %.
func Spacing(value string) Result {
	if spacingRe.MatchString(value) {
		return ok()
	}
	return fail("Invalid spacing format. Use px, rem, em, or % units (e.g., 16px, 1rem).")
}

// Typography accepts a non-negative number followed by px, rem or em.
func Typography(value string) Result {
	if typographyRe.MatchString(value) {
		return ok()
	}
	return fail("Invalid typography format. Use px, rem, or em units (e.g., 16px, 1.2rem).")
}

// BorderRadius accepts a non-negative number followed by px, rem, em or %.
func BorderRadius(value string) Result {
	if radiusRe.MatchString(value) {
		return ok()
	}
	return fail("Invalid border radius format. Use px, rem, em, or % units (e.g., 4px, 0.5rem).")
}

// Shadow accepts two to four px offsets, a hex or rgb()/rgba() color and an
// optional trailing inset keyword.
func Shadow(value string) Result {
	if shadowRe.MatchString(value) {
		return ok()
	}
	return fail("Invalid shadow format. Use CSS box-shadow syntax (e.g., 2px 4px 8px #000000).")
}

// Name checks that a token name is present, short enough and uses the
// allowed charset.
func Name(name string) Result {
	if strings.TrimSpace(name) == "" {
		return fail("Token name is required")
	}
	if len(name) > MaxNameLength {
		return fail("Token name must be less than 100 characters")
	}
	if !nameRe.MatchString(name) {
		return fail("Token name can only contain letters, numbers, slashes, hyphens, and underscores")
	}
	return ok()
}

// Value dispatches to the validator for t. Gradients have no value syntax
// check and always pass.
func Value(t model.Type, value string) Result {
	switch t {
	case model.TypeColor:
		return Color(value)
	case model.TypeSpacing:
		return Spacing(value)
	case model.TypeTypography:
		return Typography(value)
	case model.TypeBorderRadius:
		return BorderRadius(value)
	case model.TypeShadow:
		return Shadow(value)
	case model.TypeGradient:
		return ok()
	}
	return fail(fmt.Sprintf("Unknown token type %q", t))
}

// Report lists every problem found with a token.
type Report struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Err joins the report's messages into one error wrapping ErrInvalidFormat.
func (r Report) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidFormat, strings.Join(r.Errors, "; "))
}

// Token runs the name check and the type-specific value check and returns
// all failures, not just the first.
func Token(t model.Token) Report {
	errs := []string{}

	if r := Name(t.Name); !r.Valid {
		errs = append(errs, r.Error)
	}

	if t.Value == "" {
		errs = append(errs, "Token value is required")
	} else if r := Value(t.Type, t.Value); !r.Valid {
		errs = append(errs, r.Error)
	}

	return Report{Valid: len(errs) == 0, Errors: errs}
}
