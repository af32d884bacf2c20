package handheld

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io/fs"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"golang.org/x/image/font"

	"github.com/vovakirdan/bounce-kit/internal/assets"
	"github.com/vovakirdan/bounce-kit/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// ErrMuted is returned by LoadSound when audio is switched off.
var ErrMuted = errors.New("audio muted")

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the audio device once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	return speakerErr
}

// Texture is a sprite reduced to the LCD's two tones.
type Texture struct {
	img *image.RGBA
}

// Size returns the texture dimensions.
func (t *Texture) Size() (int, int) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Release drops the pixels.
func (t *Texture) Release() { t.img = nil }

// Sound is a decoded sound effect played through the speaker.
type Sound struct {
	buf    *beep.Buffer
	volume float64
	ctrl   *beep.Ctrl
}

// Play starts the sound, cutting off a previous play of it.
func (s *Sound) Play() {
	if s.buf == nil {
		return
	}
	s.stop()

	var streamer beep.Streamer = s.buf.Streamer(0, s.buf.Len())
	if s.volume != 1 {
		streamer = &effects.Volume{
			Streamer: streamer,
			Base:     2,
			Volume:   math.Log2(max(s.volume, 1e-3)),
			Silent:   s.volume <= 0,
		}
	}
	s.ctrl = &beep.Ctrl{Streamer: streamer}
	speaker.Play(s.ctrl)
}

func (s *Sound) stop() {
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Streamer = nil
	speaker.Unlock()
	s.ctrl = nil
}

// Release stops the sound and frees its samples.
func (s *Sound) Release() {
	s.stop()
	s.buf = nil
}

// Font wraps a font face.
type Font struct {
	face font.Face
}

// Measure returns the size of text in this font.
func (f *Font) Measure(text string) (float64, float64) {
	return assets.Measure(f.face, text)
}

// Assets loads demo assets for the terminal.
type Assets struct {
	fsys   fs.FS
	volume float64
	mute   bool
}

// NewAssets creates a loader over fsys. Sounds play at volume
// (1 is unchanged) unless mute is set.
func NewAssets(fsys fs.FS, volume float64, mute bool) *Assets {
	return &Assets{fsys: fsys, volume: volume, mute: mute}
}

// LoadTexture decodes an image and dithers it to two tones.
func (a *Assets) LoadTexture(name string) (core.Texture, error) {
	img, err := assets.DecodeImage(a.fsys, name)
	if err != nil {
		return nil, err
	}
	return &Texture{img: Monochrome(img)}, nil
}

// LoadSound decodes a WAV file and opens the speaker.
func (a *Assets) LoadSound(name string) (core.Sound, error) {
	if a.mute {
		return nil, ErrMuted
	}
	buf, err := decodeSound(a.fsys, name, sampleRate)
	if err != nil {
		return nil, err
	}
	if err := initSpeaker(); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Sound{buf: buf, volume: a.volume}, nil
}

// LoadFont resolves a font name.
func (a *Assets) LoadFont(name string) (core.Font, error) {
	face, err := assets.LoadFace(a.fsys, name)
	if err != nil {
		return nil, err
	}
	return &Font{face: face}, nil
}

// decodeSound reads a WAV file into memory at the given sample rate.
func decodeSound(fsys fs.FS, name string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, streamer)
		format.SampleRate = rate
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return buf, nil
}

// Monochrome reduces img to its two most representative colours with
// Floyd-Steinberg dithering. Pixels under half opacity become transparent
// and the rest opaque.
func Monochrome(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)

	// Quantize against white paper so transparent areas do not pull the
	// palette towards black.
	flat := image.NewRGBA(b)
	draw.Draw(flat, b, image.White, image.Point{}, draw.Src)
	draw.Draw(flat, b, img, b.Min, draw.Over)

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make([]color.Color, 0, 2), flat)
	if len(p) == 0 {
		draw.Draw(out, b, img, b.Min, draw.Src)
		return out
	}

	dst := image.NewPaletted(b, p)
	draw.FloydSteinberg.Draw(dst, b, flat, b.Min)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a < 0x8000 {
				continue
			}
			r, g, bl, _ := dst.At(x, y).RGBA()
			out.SetRGBA(x, y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: 0xff})
		}
	}
	return out
}

// Host is the terminal host handed to demos.
type Host struct {
	assets *Assets
	logger *log.Logger
}

// NewHost creates a host.
func NewHost(a *Assets, logger *log.Logger) *Host {
	return &Host{assets: a, logger: logger}
}

func (h *Host) Assets() core.Assets { return h.assets }
func (h *Host) Logger() *log.Logger { return h.logger }
