package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for terminal cells.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

// paletteRGB holds the reference RGB value of each named cell color.
var paletteRGB = map[Color][3]uint8{
	ColorRed:           {170, 0, 0},
	ColorGreen:         {0, 170, 0},
	ColorYellow:        {170, 85, 0},
	ColorBlue:          {0, 0, 170},
	ColorMagenta:       {170, 0, 170},
	ColorCyan:          {0, 170, 170},
	ColorWhite:         {170, 170, 170},
	ColorBrightRed:     {255, 85, 85},
	ColorBrightGreen:   {85, 255, 85},
	ColorBrightYellow:  {255, 255, 85},
	ColorBrightBlue:    {85, 85, 255},
	ColorBrightMagenta: {255, 85, 255},
	ColorBrightCyan:    {85, 255, 255},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 135, 0},
	ColorGray:          {138, 138, 138},
	ColorBlack:         {0, 0, 0},
}

// NearestColor maps an arbitrary color to the closest cell color.
// Fully transparent colors map to ColorDefault.
func NearestColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return ColorDefault
	}
	// Un-premultiply to compare against the opaque palette.
	r8 := int(r * 0xff / a)
	g8 := int(g * 0xff / a)
	b8 := int(b * 0xff / a)

	best := ColorDefault
	bestDist := -1
	for name, p := range paletteRGB {
		dr := r8 - int(p[0])
		dg := g8 - int(p[1])
		db := b8 - int(p[2])
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist || (d == bestDist && name < best) {
			best = name
			bestDist = d
		}
	}
	return best
}
