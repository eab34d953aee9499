package core

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// FromHex parses "#rrggbb" into an RGB. Malformed input yields black
func FromHex(hex string) RGB {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBBlack
	}
	return FromColorful(c)
}

// FromColorful converts a colorful.Color to 8-bit channels
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Colorful converts to colorful.Color for color-space math
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Max returns per-channel maximum (non-destructive highlight)
func (c RGB) Max(src RGB) RGB {
	return RGB{
		R: max(c.R, src.R),
		G: max(c.G, src.G),
		B: max(c.B, src.B),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Lighten blends toward white in Lab space, perceptually uniform
func (c RGB) Lighten(t float64) RGB {
	if t <= 0 {
		return c
	}
	return FromColorful(c.Colorful().BlendLab(colorful.Color{R: 1, G: 1, B: 1}, t))
}

// Darken blends toward black in Lab space
func (c RGB) Darken(t float64) RGB {
	if t <= 0 {
		return c
	}
	return FromColorful(c.Colorful().BlendLab(colorful.Color{R: 0, G: 0, B: 0}, t))
}
