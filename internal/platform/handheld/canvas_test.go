package handheld

import (
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/bounce-kit/internal/core"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func solidTexture(w, h int, c color.RGBA) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return &Texture{img: img}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(8, 4)
	if w, h := c.Size(); w != 8 || h != 4 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if got := c.Image().RGBAAt(3, 2); got != white {
		t.Errorf("new canvas pixel = %v, want white", got)
	}

	c.Clear(color.Black)
	if got := c.Image().RGBAAt(7, 3); got != black {
		t.Errorf("cleared pixel = %v, want black", got)
	}
	if c.Background() != black {
		t.Errorf("background = %v", c.Background())
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillRect(core.NewRect(2, 3, 4, 2), red)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{2, 3, red},
		{5, 4, red},
		{6, 4, white},
		{2, 5, white},
		{1, 3, white},
	}
	for _, tt := range tests {
		if got := c.Image().RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCanvasDrawTexture(t *testing.T) {
	tests := []struct {
		name string
		tex  *Texture
		op   core.DrawOptions
		in   []image.Point
		out  []image.Point
	}{
		{
			name: "unscaled",
			tex:  solidTexture(2, 2, red),
			op:   core.DrawOptions{X: 5, Y: 5},
			in:   []image.Point{{4, 4}, {5, 5}},
			out:  []image.Point{{3, 3}, {6, 6}},
		},
		{
			name: "scaled",
			tex:  solidTexture(2, 2, red),
			op:   core.DrawOptions{X: 5, Y: 5, Scale: 2},
			in:   []image.Point{{3, 3}, {6, 6}},
			out:  []image.Point{{2, 2}, {7, 7}},
		},
		{
			name: "quarter turn",
			tex:  solidTexture(4, 2, red),
			op:   core.DrawOptions{X: 10, Y: 10, Rotation: math.Pi / 2},
			in:   []image.Point{{9, 8}, {10, 11}},
			out:  []image.Point{{8, 10}, {11, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(20, 20)
			c.DrawTexture(tt.tex, tt.op)
			for _, p := range tt.in {
				if got := c.Image().RGBAAt(p.X, p.Y); got != red {
					t.Errorf("pixel %v = %v, want red", p, got)
				}
			}
			for _, p := range tt.out {
				if got := c.Image().RGBAAt(p.X, p.Y); got != white {
					t.Errorf("pixel %v = %v, want white", p, got)
				}
			}
		})
	}
}

func TestCanvasDrawTextureIgnoresForeignTextures(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawTexture(nil, core.DrawOptions{X: 2, Y: 2})
	released := solidTexture(2, 2, red)
	released.Release()
	c.DrawTexture(released, core.DrawOptions{X: 2, Y: 2})
	if got := c.Image().RGBAAt(2, 2); got != white {
		t.Errorf("pixel = %v, want untouched", got)
	}
}

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(20, 20)
	c.DrawText(&Font{face: basicfont.Face7x13}, "H", 0, 0, black)

	inked := 0
	for y := 0; y < 13; y++ {
		for x := 0; x < 7; x++ {
			if c.Image().RGBAAt(x, y) == black {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("no glyph pixels inside the 7x13 cell")
	}
	for y := 13; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if c.Image().RGBAAt(x, y) != white {
				t.Fatalf("pixel (%d,%d) inked below the line", x, y)
			}
		}
	}
}

func TestCanvasDrawParticle(t *testing.T) {
	tests := []struct {
		name     string
		bg       color.Color
		col      color.RGBA
		additive bool
		want     color.RGBA
	}{
		{"opaque over white", color.White, black, false, black},
		{"half over black", color.Black, color.RGBA{R: 255, G: 255, B: 255, A: 128}, false, color.RGBA{R: 128, G: 128, B: 128, A: 255}},
		{"additive saturates", color.White, color.RGBA{R: 255, A: 255}, true, white},
		{"additive on black", color.Black, color.RGBA{R: 200, G: 100, B: 0, A: 255}, true, color.RGBA{R: 200, G: 100, A: 255}},
		{"transparent", color.White, color.RGBA{}, false, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(20, 20)
			c.Clear(tt.bg)
			c.DrawParticle(10, 10, 4, tt.col, tt.additive)
			if got := c.Image().RGBAAt(9, 9); got != tt.want {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanvasDrawParticleFootprint(t *testing.T) {
	c := NewCanvas(20, 20)
	c.DrawParticle(10, 10, 4, black, false)
	for y := 6; y < 14; y++ {
		for x := 6; x < 14; x++ {
			inside := x >= 8 && x < 12 && y >= 8 && y < 12
			got := c.Image().RGBAAt(x, y) == black
			if got != inside {
				t.Errorf("pixel (%d,%d) drawn = %v, want %v", x, y, got, inside)
			}
		}
	}

	// Clipped at the edges without panicking.
	c.DrawParticle(0, 0, 4, black, true)
	c.DrawParticle(19.5, 19.5, 4, black, false)
}
