// Package model defines the core design token data types.
package model

import (
	"strings"
	"time"
)

// Type is the closed set of token kinds.
type Type string

const (
	TypeColor        Type = "color"
	TypeSpacing      Type = "spacing"
	TypeTypography   Type = "typography"
	TypeBorderRadius Type = "borderRadius"
	TypeShadow       Type = "shadow"
	TypeGradient     Type = "gradient"
)

// Types lists every token type in display order.
var Types = []Type{TypeColor, TypeSpacing, TypeTypography, TypeBorderRadius, TypeShadow, TypeGradient}

// Category is the closed set of token and group categories.
type Category string

const (
	CategoryPrimary    Category = "Primary"
	CategorySecondary  Category = "Secondary"
	CategoryFunctional Category = "Functional"
	CategoryText       Category = "Text"
	CategoryGradient   Category = "Gradient"
	CategoryOther      Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryPrimary, CategorySecondary, CategoryFunctional, CategoryText, CategoryGradient, CategoryOther}

// ValidTypes are the allowed token types.
var ValidTypes = map[Type]bool{
	TypeColor:        true,
	TypeSpacing:      true,
	TypeTypography:   true,
	TypeBorderRadius: true,
	TypeShadow:       true,
	TypeGradient:     true,
}

// ValidCategories are the allowed categories.
var ValidCategories = map[Category]bool{
	CategoryPrimary:    true,
	CategorySecondary:  true,
	CategoryFunctional: true,
	CategoryText:       true,
	CategoryGradient:   true,
	CategoryOther:      true,
}

// ParseType resolves a user or file supplied type name. Matching is
// case-insensitive and accepts the legacy "border-radius" spelling.
func ParseType(s string) (Type, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "border-radius" || norm == "border_radius" {
		return TypeBorderRadius, true
	}
	for _, t := range Types {
		if strings.ToLower(string(t)) == norm {
			return t, true
		}
	}
	return Type(s), false
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	norm := strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), norm) {
			return c, true
		}
	}
	return Category(s), false
}

// Token is a named design value.
type Token struct {
	ID          string
	Name        string
	Value       string
	Type        Type
	Category    Category
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Attrs carries the type-specific enrichment. It is optional and, when
	// set, its TokenType matches Type.
	Attrs Attrs
}

// Clone returns a deep copy of the token.
func (t Token) Clone() Token {
	out := t
	out.Attrs = CloneAttrs(t.Attrs)
	return out
}

// Color returns the color attributes, if the token has them.
func (t Token) Color() (*ColorAttrs, bool) {
	a, ok := t.Attrs.(*ColorAttrs)
	return a, ok
}

// Shadow returns the shadow attributes, if the token has them.
func (t Token) Shadow() (*ShadowAttrs, bool) {
	a, ok := t.Attrs.(*ShadowAttrs)
	return a, ok
}

// Gradient returns the gradient attributes, if the token has them.
func (t Token) Gradient() (*GradientAttrs, bool) {
	a, ok := t.Attrs.(*GradientAttrs)
	return a, ok
}

// TokenGroup is a named, ordered bucket of token copies.
type TokenGroup struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Tokens    []Token  `json:"tokens"`
	Collapsed bool     `json:"collapsed"`
}

// Clone returns a deep copy of the group and its embedded tokens.
func (g TokenGroup) Clone() TokenGroup {
	out := g
	out.Tokens = make([]Token, len(g.Tokens))
	for i, t := range g.Tokens {
		out.Tokens[i] = t.Clone()
	}
	return out
}

// Contains reports whether the group holds a token with the given id.
func (g TokenGroup) Contains(tokenID string) bool {
	for _, t := range g.Tokens {
		if t.ID == tokenID {
			return true
		}
	}
	return false
}
