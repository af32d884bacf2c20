package assets

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const defaultFontSize = 14

// builtinFonts maps font family names to TrueType data.
var builtinFonts = map[string][]byte{
	"go-regular": goregular.TTF,
	"go-bold":    gobold.TTF,
	"go-mono":    gomono.TTF,
}

// LoadFace resolves a font name to a face. Accepted names:
//
//	basic-7x13             the fixed bitmap font
//	go-regular[-SIZE]      Go Regular at SIZE points (default 14)
//	go-bold[-SIZE]         Go Bold
//	go-mono[-SIZE]         Go Mono
//	NAME.ttf[:SIZE]        a TrueType/OpenType file from fsys
func LoadFace(fsys fs.FS, name string) (font.Face, error) {
	if name == "basic-7x13" {
		return basicfont.Face7x13, nil
	}

	if ext := strings.ToLower(path.Ext(strings.SplitN(name, ":", 2)[0])); ext == ".ttf" || ext == ".otf" {
		file, size, err := splitSize(name, ":")
		if err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, err
		}
		return newFace(data, size)
	}

	family, size, err := splitSize(name, "-")
	if err != nil {
		return nil, err
	}
	data, ok := builtinFonts[family]
	if !ok {
		return nil, fmt.Errorf("unknown font %q", name)
	}
	return newFace(data, size)
}

// splitSize splits "family<sep>size" where the size suffix is optional.
func splitSize(name, sep string) (string, float64, error) {
	i := strings.LastIndex(name, sep)
	if i < 0 {
		return name, defaultFontSize, nil
	}
	size, err := strconv.ParseFloat(name[i+1:], 64)
	if err != nil {
		if sep == "-" {
			// "go-regular" has a dash but no size.
			return name, defaultFontSize, nil
		}
		return "", 0, fmt.Errorf("font %q: bad size: %w", name, err)
	}
	if size <= 0 {
		return "", 0, fmt.Errorf("font %q: size must be positive", name)
	}
	return name[:i], size, nil
}

func newFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// Measure returns the advance width and line height of text in face.
func Measure(face font.Face, text string) (w, h float64) {
	adv := font.MeasureString(face, text)
	return float64(adv.Ceil()), float64(face.Metrics().Height.Ceil())
}
