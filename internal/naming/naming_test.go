package naming

import (
	"testing"

	"github.com/rcliao/token-studio/internal/model"
	"github.com/rcliao/token-studio/internal/validate"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		category model.Category
		typ      model.Type
		value    string
		want     string
	}{
		{model.CategoryPrimary, model.TypeColor, "#FF5733", "Primary/color/FF5733"},
		{model.CategoryOther, model.TypeSpacing, "1.5rem", "Other/spacing/15rem"},
		{model.CategoryText, model.TypeShadow, "2px 4px 8px rgba(0,0,0,0.2)", "Text/shadow/2px4px8pxrgba00002"},
		{model.CategoryGradient, model.TypeGradient, "", "Gradient/gradient/Default"},
		{model.CategorySecondary, model.TypeBorderRadius, "%%%", "Secondary/borderRadius/Default"},
	}
	for _, tt := range tests {
		got := Generate(tt.category, tt.typ, tt.value)
		if got != tt.want {
			t.Errorf("Generate(%s, %s, %q) = %q, want %q", tt.category, tt.typ, tt.value, got, tt.want)
		}
	}
}

func TestGeneratedNamesAreValid(t *testing.T) {
	for _, c := range model.Categories {
		for _, typ := range model.Types {
			name := Generate(c, typ, "#4F46E5")
			if r := validate.Name(name); !r.Valid {
				t.Errorf("generated name %q invalid: %s", name, r.Error)
			}
		}
	}
}
