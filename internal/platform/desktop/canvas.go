package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/bounce-kit/internal/core"
)

// Canvas draws onto the frame's screen image.
type Canvas struct {
	dst   *ebiten.Image
	pixel *ebiten.Image
}

// newCanvas creates a canvas with the 1x1 white image used for rectangles
// and particles.
func newCanvas() *Canvas {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Canvas{pixel: pixel}
}

// target sets the image drawn to for this frame.
func (c *Canvas) target(dst *ebiten.Image) { c.dst = dst }

// Size returns the logical screen size.
func (c *Canvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the screen.
func (c *Canvas) Clear(col color.Color) {
	c.dst.Fill(col)
}

// DrawTexture draws a texture centred on (op.X, op.Y).
func (c *Canvas) DrawTexture(t core.Texture, op core.DrawOptions) {
	tex, ok := t.(*Texture)
	if !ok || tex == nil || tex.img == nil {
		return
	}
	w, h := tex.Size()

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM = textureGeoM(float64(w), float64(h), op)
	if op.Alpha != 0 {
		opts.ColorScale.ScaleAlpha(float32(core.ClampF(op.Alpha, 0, 1)))
	}
	c.dst.DrawImage(tex.img, opts)
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Canvas) DrawText(f core.Font, s string, x, y float64, col color.Color) {
	fnt, ok := f.(*Font)
	if !ok || fnt == nil {
		return
	}
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, fnt.face, opts)
}

// FillRect fills r with col.
func (c *Canvas) FillRect(r core.Rect, col color.Color) {
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(r.W, r.H)
	opts.GeoM.Translate(r.X, r.Y)
	opts.ColorScale.ScaleWithColor(col)
	c.dst.DrawImage(c.pixel, opts)
}

// DrawParticle draws a size x size quad centred on (x, y). Additive
// particles use lighter blending.
func (c *Canvas) DrawParticle(x, y, size float64, col color.RGBA, additive bool) {
	if col.A == 0 || size <= 0 {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(size, size)
	opts.GeoM.Translate(x-size/2, y-size/2)
	opts.ColorScale.ScaleWithColor(straight(col))
	if additive {
		opts.Blend = ebiten.BlendLighter
	}
	c.dst.DrawImage(c.pixel, opts)
}

// textureGeoM places a w x h texture: scale and rotate about its centre,
// then move the centre to (X, Y).
func textureGeoM(w, h float64, op core.DrawOptions) ebiten.GeoM {
	scale := op.Scale
	if scale == 0 {
		scale = 1
	}
	var g ebiten.GeoM
	g.Translate(-w/2, -h/2)
	g.Scale(scale, scale)
	g.Rotate(op.Rotation)
	g.Translate(op.X, op.Y)
	return g
}

// straight reinterprets a particle colour, which carries non-premultiplied
// alpha, for colour scaling.
func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
