package validate

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/rcliao/token-studio/internal/model"
)

func TestColor(t *testing.T) {
	valid := []string{
		"#FFF", "#ffffff", "#4F46E5",
		"rgb(255, 0, 0)", "rgba(0,0,0,0.5)", "RGB(1,2,3)",
		"hsl(120, 50%, 50%)", "hsla(0, 0%, 0%, 1)",
		"red", "Grey", "WHITE",
	}
	for _, v := range valid {
		assert.True(t, Color(v).Valid, "expected %q to be valid", v)
	}

	invalid := []string{
		"", "FFFFFF", "#FFFF", "#GGGGGG", "#1234567",
		"rgb(255, 0)", "rgba(0,0,0,1.5)", "hsl(120, 50, 50)",
		"cyan", "transparent",
	}
	for _, v := range invalid {
		r := Color(v)
		assert.False(t, r.Valid, "expected %q to be invalid", v)
		assert.NotEmpty(t, r.Error)
	}
}

func TestColorErrorMessage(t *testing.T) {
	r := Color("nope")
	assert.Equal(t, "Invalid color format. Use hex (#000000), rgb(), hsl(), or named colors.", r.Error)
	assert.True(t, errors.Is(r.Err(), ErrInvalidFormat))
	assert.NoError(t, Color("#000").Err())
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) Result
		ok    []string
		bad   []string
	}{
		{"spacing", Spacing, []string{"16px", "1rem", "1.5em", "50%", "0px"}, []string{"16", "px", "-4px", "16pt", "1.rem", " 16px"}},
		{"typography", Typography, []string{"16px", "1.2rem", "2em"}, []string{"50%", "16", "bold"}},
		{"borderRadius", BorderRadius, []string{"4px", "0.5rem", "50%"}, []string{"4", "round", "4vh"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.ok {
				assert.True(t, tt.check(v).Valid, "expected %q to be valid", v)
			}
			for _, v := range tt.bad {
				assert.False(t, tt.check(v).Valid, "expected %q to be invalid", v)
			}
		})
	}
}

func TestShadow(t *testing.T) {
	for _, v := range []string{
		"2px 4px 8px #000000",
		"0px 1px #FFF",
		"1px 2px 3px 4px rgba(0,0,0,0.25)",
		"2px 4px 8px #000000 inset",
	} {
		assert.True(t, Shadow(v).Valid, "expected %q to be valid", v)
	}
	for _, v := range []string{
		"none",
		"2px #000",
		"2px 4px 8px",
		"2px 4px 8px black",
		"1px 2px 3px 4px 5px #000",
		"inset 2px 4px #000",
	} {
		assert.False(t, Shadow(v).Valid, "expected %q to be invalid", v)
	}
}

func TestName(t *testing.T) {
	assert.True(t, Name("Primary/color/FF5733").Valid)
	assert.True(t, Name("spacing_md-2").Valid)

	assert.Equal(t, "Token name is required", Name("").Error)
	assert.Equal(t, "Token name is required", Name("   ").Error)
	assert.Equal(t, "Token name must be less than 100 characters", Name(strings.Repeat("a", 101)).Error)
	assert.True(t, Name(strings.Repeat("a", 100)).Valid)
	assert.Equal(t, "Token name can only contain letters, numbers, slashes, hyphens, and underscores", Name("bad name").Error)
}

func TestValueDispatch(t *testing.T) {
	assert.True(t, Value(model.TypeColor, "#fff").Valid)
	assert.False(t, Value(model.TypeColor, "16px").Valid)
	assert.True(t, Value(model.TypeSpacing, "16px").Valid)
	assert.False(t, Value(model.TypeTypography, "50%").Valid)
	assert.True(t, Value(model.TypeGradient, "anything goes").Valid)
	assert.False(t, Value(model.Type("opacity"), "1").Valid)
}

func TestTokenCollectsAllErrors(t *testing.T) {
	r := Token(model.Token{Name: "bad name!", Type: model.TypeColor, Value: "nope"})
	require.False(t, r.Valid)
	require.Len(t, r.Errors, 2)
	assert.Contains(t, r.Errors[0], "Token name can only contain")
	assert.Contains(t, r.Errors[1], "Invalid color format")
	assert.True(t, errors.Is(r.Err(), ErrInvalidFormat))

	r = Token(model.Token{Name: "ok", Type: model.TypeSpacing})
	assert.Equal(t, []string{"Token value is required"}, r.Errors)

	r = Token(model.Token{Name: "space/md", Type: model.TypeSpacing, Value: "16px"})
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	assert.NoError(t, r.Err())
}

func TestHexProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hex := rapid.StringMatching(`[0-9A-Fa-f]{6}`).Draw(t, "hex")
		if !Color("#" + hex).Valid {
			t.Fatalf("#%s rejected", hex)
		}
		if Color(hex).Valid {
			t.Fatalf("%s without # accepted", hex)
		}
	})
}

func TestHexWrongLengthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 9).Filter(func(n int) bool { return n != 3 && n != 6 }).Draw(t, "n")
		hex := rapid.StringMatching(fmt.Sprintf(`[0-9a-f]{%d}`, n)).Draw(t, "hex")
		if Color("#" + hex).Valid {
			t.Fatalf("#%s with %d digits accepted", hex, n)
		}
	})
}

func TestDimensionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		whole := rapid.IntRange(0, 10000).Draw(t, "whole")
		frac := rapid.IntRange(0, 99).Draw(t, "frac")
		num := fmt.Sprintf("%d.%d", whole, frac)
		if rapid.Bool().Draw(t, "integer") {
			num = fmt.Sprintf("%d", whole)
		}

		spacingUnit := rapid.SampledFrom([]string{"px", "rem", "em", "%"}).Draw(t, "spacingUnit")
		if !Spacing(num + spacingUnit).Valid {
			t.Fatalf("spacing %s%s rejected", num, spacingUnit)
		}
		if !BorderRadius(num + spacingUnit).Valid {
			t.Fatalf("border radius %s%s rejected", num, spacingUnit)
		}

		typeUnit := rapid.SampledFrom([]string{"px", "rem", "em"}).Draw(t, "typeUnit")
		if !Typography(num + typeUnit).Valid {
			t.Fatalf("typography %s%s rejected", num, typeUnit)
		}

		badUnit := rapid.SampledFrom([]string{"pt", "vh", "vw", "ch", ""}).Draw(t, "badUnit")
		if Spacing(num+badUnit).Valid || Typography(num+badUnit).Valid || BorderRadius(num+badUnit).Valid {
			t.Fatalf("%s%s accepted", num, badUnit)
		}
		if Spacing(spacingUnit).Valid {
			t.Fatalf("bare unit %s accepted", spacingUnit)
		}
	})
}
