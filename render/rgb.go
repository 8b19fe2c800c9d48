package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, converted to tcell at draw time
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBGrass     = RGB{24, 64, 28}
	RGBRoad      = RGB{110, 110, 118}
	RGBWall      = RGB{190, 60, 50}
	RGBStartLine = RGB{235, 235, 235}
	RGBCar       = RGB{250, 210, 40}
	RGBDrift     = RGB{255, 120, 20}
	RGBText      = RGB{220, 220, 220}
	RGBDim       = RGB{120, 120, 120}
	RGBAccent    = RGB{80, 200, 255}
	RGBFinish    = RGB{120, 255, 120}
)

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

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
