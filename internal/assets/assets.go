// Package assets bundles the default demo files and resolves asset names
// against an optional override directory.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

//go:embed files
var files embed.FS

// Embedded returns the built-in asset files.
func Embedded() fs.FS {
	sub, err := fs.Sub(files, "files")
	if err != nil {
		panic(err) // the directory is part of the binary
	}
	return sub
}

// Open returns the asset file system. Files in dir, when set, shadow the
// embedded ones.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets dir %s: not a directory", dir)
	}
	return Overlay(os.DirFS(dir), Embedded()), nil
}

// Overlay returns a file system that serves names from top and falls back
// to bottom when top does not have them.
func Overlay(top, bottom fs.FS) fs.FS {
	return overlayFS{top: top, bottom: bottom}
}

type overlayFS struct {
	top, bottom fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.top.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.bottom.Open(name)
}

// DecodeImage reads and decodes a PNG, BMP or WebP image.
func DecodeImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
