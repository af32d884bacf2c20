package handheld

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/bounce-kit/internal/core"
)

// Canvas is a software framebuffer at the demo's logical resolution. The
// LCD view samples it into terminal cells after every frame.
type Canvas struct {
	img *image.RGBA
	bg  color.RGBA
}

// NewCanvas creates a w x h framebuffer cleared to white.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	c.Clear(color.White)
	return c
}

// Size returns the logical screen size.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the framebuffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Background returns the colour of the last Clear.
func (c *Canvas) Background() color.RGBA { return c.bg }

// Clear fills the framebuffer with col.
func (c *Canvas) Clear(col color.Color) {
	c.bg = color.RGBAModel.Convert(col).(color.RGBA)
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.bg), image.Point{}, draw.Src)
}

// DrawTexture draws a handheld texture centred on (op.X, op.Y), rotated
// clockwise and scaled about its centre.
func (c *Canvas) DrawTexture(t core.Texture, op core.DrawOptions) {
	tex, ok := t.(*Texture)
	if !ok || tex == nil || tex.img == nil {
		return
	}

	scale := op.Scale
	if scale == 0 {
		scale = 1
	}
	alpha := op.Alpha
	if alpha == 0 {
		alpha = 1
	}

	src := tex.img
	w := float64(src.Bounds().Dx())
	h := float64(src.Bounds().Dy())
	sin, cos := math.Sincos(op.Rotation)

	// Source to destination: centre, scale, rotate, move to (X, Y).
	a, b := scale*cos, -scale*sin
	d, e := scale*sin, scale*cos
	m := f64.Aff3{
		a, b, op.X - (a*w/2 + b*h/2),
		d, e, op.Y - (d*w/2 + e*h/2),
	}

	var opts *xdraw.Options
	if alpha < 1 {
		opts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: uint8(core.ClampF(alpha, 0, 1) * 255)}),
		}
	}
	xdraw.NearestNeighbor.Transform(c.img, m, src, src.Bounds(), xdraw.Over, opts)
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Canvas) DrawText(f core.Font, text string, x, y float64, col color.Color) {
	fnt, ok := f.(*Font)
	if !ok || fnt == nil || fnt.face == nil {
		return
	}
	ascent := fnt.face.Metrics().Ascent.Ceil()
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: fnt.face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))+ascent),
	}
	d.DrawString(text)
}

// FillRect fills r with col, blending over what is already drawn.
func (c *Canvas) FillRect(r core.Rect, col color.Color) {
	rect := image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.Right())), int(math.Round(r.Bottom())),
	)
	draw.Draw(c.img, rect, image.NewUniform(col), image.Point{}, draw.Over)
}

// DrawParticle draws a size x size square centred on (x, y). col is not
// premultiplied. Additive particles add their light to the framebuffer.
func (c *Canvas) DrawParticle(x, y, size float64, col color.RGBA, additive bool) {
	if col.A == 0 || size <= 0 {
		return
	}
	half := size / 2
	rect := image.Rect(
		int(math.Floor(x-half)), int(math.Floor(y-half)),
		int(math.Floor(x+half)), int(math.Floor(y+half)),
	).Intersect(c.img.Bounds())

	a := uint32(col.A)
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			i := c.img.PixOffset(px, py)
			pix := c.img.Pix[i : i+3 : i+3]
			src := [3]uint32{uint32(col.R), uint32(col.G), uint32(col.B)}
			for k := range pix {
				dst := uint32(pix[k])
				if additive {
					pix[k] = uint8(min(255, dst+src[k]*a/255))
				} else {
					pix[k] = uint8((src[k]*a + dst*(255-a)) / 255)
				}
			}
		}
	}
}
