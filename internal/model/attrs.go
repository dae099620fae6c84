package model

// Attrs is the type-specific part of a token. The set of implementations is
// closed: one variant per Type.
type Attrs interface {
	TokenType() Type
	sealed()
}

// InteractiveState names a color variant used for interactive components.
type InteractiveState string

const (
	StateDefault  InteractiveState = "default"
	StateHover    InteractiveState = "hover"
	StateActive   InteractiveState = "active"
	StateFocus    InteractiveState = "focus"
	StateDisabled InteractiveState = "disabled"
)

// InteractiveStates lists the states in their canonical order.
var InteractiveStates = []InteractiveState{StateDefault, StateHover, StateActive, StateFocus, StateDisabled}

// Contrast records a precomputed WCAG check for a color token.
type Contrast struct {
	AA    bool    `json:"aa"`
	AAA   bool    `json:"aaa"`
	Ratio float64 `json:"ratio"`
}

// ColorAttrs enriches color tokens.
type ColorAttrs struct {
	Hex               string                      `json:"hex,omitempty"`
	Light             string                      `json:"light,omitempty"`
	Dark              string                      `json:"dark,omitempty"`
	InteractiveStates map[InteractiveState]string `json:"interactive_states,omitempty"`
	Usage             string                      `json:"usage,omitempty"`
	Tints             []string                    `json:"tints,omitempty"`
	Contrast          *Contrast                   `json:"contrast,omitempty"`
}

// SpacingAttrs enriches spacing tokens.
type SpacingAttrs struct {
	Unit  string    `json:"unit,omitempty"`
	Scale []float64 `json:"scale,omitempty"`
}

// TypographyAttrs enriches typography tokens.
type TypographyAttrs struct {
	FontSize      string  `json:"fontSize,omitempty"`
	FontWeight    float64 `json:"fontWeight,omitempty"`
	LineHeight    string  `json:"lineHeight,omitempty"`
	LetterSpacing string  `json:"letterSpacing,omitempty"`
	FontFamily    string  `json:"fontFamily,omitempty"`
}

// BorderRadiusAttrs enriches border radius tokens.
type BorderRadiusAttrs struct {
	Unit string `json:"unit,omitempty"`
}

// ShadowAttrs enriches shadow tokens.
type ShadowAttrs struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Blur   float64 `json:"blur"`
	Spread float64 `json:"spread"`
	Color  string  `json:"color,omitempty"`
	Inset  bool    `json:"inset,omitempty"`
}

// GradientStop is one color stop of a gradient.
type GradientStop struct {
	Color    string   `json:"color"`
	Position float64  `json:"position"`
	Opacity  *float64 `json:"opacity,omitempty"`
}

// GradientAttrs enriches gradient tokens.
type GradientAttrs struct {
	Direction string         `json:"direction,omitempty"` // linear | radial
	Stops     []GradientStop `json:"stops,omitempty"`
}

func (*ColorAttrs) TokenType() Type        { return TypeColor }
func (*SpacingAttrs) TokenType() Type      { return TypeSpacing }
func (*TypographyAttrs) TokenType() Type   { return TypeTypography }
func (*BorderRadiusAttrs) TokenType() Type { return TypeBorderRadius }
func (*ShadowAttrs) TokenType() Type       { return TypeShadow }
func (*GradientAttrs) TokenType() Type     { return TypeGradient }

func (*ColorAttrs) sealed()        {}
func (*SpacingAttrs) sealed()      {}
func (*TypographyAttrs) sealed()   {}
func (*BorderRadiusAttrs) sealed() {}
func (*ShadowAttrs) sealed()       {}
func (*GradientAttrs) sealed()     {}

// newAttrs returns an empty variant for t, or nil for unknown types.
func newAttrs(t Type) Attrs {
	switch t {
	case TypeColor:
		return &ColorAttrs{}
	case TypeSpacing:
		return &SpacingAttrs{}
	case TypeTypography:
		return &TypographyAttrs{}
	case TypeBorderRadius:
		return &BorderRadiusAttrs{}
	case TypeShadow:
		return &ShadowAttrs{}
	case TypeGradient:
		return &GradientAttrs{}
	}
	return nil
}

// CloneAttrs returns a deep copy of a, or nil.
func CloneAttrs(a Attrs) Attrs {
	switch v := a.(type) {
	case *ColorAttrs:
		c := *v
		if v.InteractiveStates != nil {
			c.InteractiveStates = make(map[InteractiveState]string, len(v.InteractiveStates))
			for k, s := range v.InteractiveStates {
				c.InteractiveStates[k] = s
			}
		}
		c.Tints = append([]string(nil), v.Tints...)
		if v.Contrast != nil {
			ct := *v.Contrast
			c.Contrast = &ct
		}
		return &c
	case *SpacingAttrs:
		c := *v
		c.Scale = append([]float64(nil), v.Scale...)
		return &c
	case *TypographyAttrs:
		c := *v
		return &c
	case *BorderRadiusAttrs:
		c := *v
		return &c
	case *ShadowAttrs:
		c := *v
		return &c
	case *GradientAttrs:
		c := *v
		if v.Stops == nil {
			return &c
		}
		c.Stops = make([]GradientStop, len(v.Stops))
		for i, s := range v.Stops {
			c.Stops[i] = s
			if s.Opacity != nil {
				o := *s.Opacity
				c.Stops[i].Opacity = &o
			}
		}
		return &c
	}
	return nil
}
