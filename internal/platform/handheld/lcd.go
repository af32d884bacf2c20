package handheld

import (
	"image"
	"image/color"

	"github.com/vovakirdan/bounce-kit/internal/core"
)

// Braille cells pack a 2x4 dot matrix into one rune.
const (
	dotsX       = 2
	dotsY       = 4
	brailleBase = 0x2800

	// A pixel lights a dot when its luminance differs from the background
	// by at least this much (0..255).
	lumaThreshold = 48
)

// dotBits maps a dot position [x][y] to its braille bit.
var dotBits = [dotsX][dotsY]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// LCD samples a framebuffer into a character screen.
type LCD struct {
	screen *core.Screen
}

// NewLCD creates an LCD of cols x rows terminal cells.
func NewLCD(cols, rows int) *LCD {
	return &LCD{screen: core.NewScreen(max(cols, 1), max(rows, 1))}
}

// Screen returns the cell buffer filled by the last Rasterize.
func (l *LCD) Screen() *core.Screen { return l.screen }

// Resize changes the LCD size in cells.
func (l *LCD) Resize(cols, rows int) {
	l.screen.Resize(max(cols, 1), max(rows, 1))
}

// Scale returns how many framebuffer pixels one dot covers on each axis for
// an image of w x h pixels. The same scale is used on both axes so the
// picture keeps its aspect ratio.
func (l *LCD) Scale(w, h int) int {
	sx := ceilDiv(w, l.screen.Width()*dotsX)
	sy := ceilDiv(h, l.screen.Height()*dotsY)
	return max(sx, sy, 1)
}

// Rasterize samples img into the cell buffer. Each dot covers a square
// block of pixels and lights up when any pixel in it stands out from bg.
// The cell colour is the average of its lit pixels.
func (l *LCD) Rasterize(img *image.RGBA, bg color.RGBA) {
	b := img.Bounds()
	scale := l.Scale(b.Dx(), b.Dy())
	bgLuma := luma(bg.R, bg.G, bg.B)

	l.screen.Clear()
	for cy := 0; cy < l.screen.Height(); cy++ {
		for cx := 0; cx < l.screen.Width(); cx++ {
			var bits rune
			var sum [3]int
			lit := 0
			for dx := 0; dx < dotsX; dx++ {
				for dy := 0; dy < dotsY; dy++ {
					x0 := b.Min.X + (cx*dotsX+dx)*scale
					y0 := b.Min.Y + (cy*dotsY+dy)*scale
					block := image.Rect(x0, y0, x0+scale, y0+scale).Intersect(b)
					on := false
					for py := block.Min.Y; py < block.Max.Y; py++ {
						for px := block.Min.X; px < block.Max.X; px++ {
							i := img.PixOffset(px, py)
							r, g, bl := img.Pix[i], img.Pix[i+1], img.Pix[i+2]
							if abs(luma(r, g, bl)-bgLuma) < lumaThreshold {
								continue
							}
							on = true
							sum[0] += int(r)
							sum[1] += int(g)
							sum[2] += int(bl)
							lit++
						}
					}
					if on {
						bits |= dotBits[dx][dy]
					}
				}
			}
			if bits == 0 {
				continue
			}
			avg := color.RGBA{
				R: uint8(sum[0] / lit),
				G: uint8(sum[1] / lit),
				B: uint8(sum[2] / lit),
				A: 0xff,
			}
			l.screen.SetCell(cx, cy, brailleBase+bits, core.NearestColor(avg))
		}
	}
}

// luma is the integer Rec. 601 luminance.
func luma(r, g, b uint8) int {
	return (299*int(r) + 587*int(g) + 114*int(b)) / 1000
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 1
	}
	return (a + b - 1) / b
}
