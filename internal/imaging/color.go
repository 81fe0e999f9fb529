package imaging

import (
	"image"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex   string   `json:"hex"`   // Hex format "#RRGGBB" (no alpha)
	RGB   RGBColor `json:"rgb"`   // RGB components
	HSL   HSLColor `json:"hsl"`   // HSL representation
	Alpha uint8    `json:"alpha"` // Mean alpha (0-255)
}

// MeanColor averages every pixel of img. An empty image yields black.
//
// Components are averaged in sRGB space on the premultiplied values returned
// by color.Color.RGBA, so transparent pixels pull the mean towards black.
func MeanColor(img image.Image) ColorResult {
	bounds := img.Bounds()
	n := float64(bounds.Dx() * bounds.Dy())
	if n == 0 {
		return ColorResult{Hex: "#000000"}
	}

	var rs, gs, bs, as float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			rs += float64(r)
			gs += float64(g)
			bs += float64(b)
			as += float64(a)
		}
	}

	c := colorful.Color{R: rs / n / 0xffff, G: gs / n / 0xffff, B: bs / n / 0xffff}.Clamped()
	r8, g8, b8 := c.RGB255()
	h, s, l := c.Hsl()

	return ColorResult{
		Hex:   strings.ToUpper(c.Hex()),
		RGB:   RGBColor{R: r8, G: g8, B: b8},
		HSL:   HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		Alpha: uint8(as / n / 0xffff * 255),
	}
}
