// Copyright 2026 The SportGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets loads packaged resources (raw bytes, text, images)
// from any [fs.FS], typically an embed.FS compiled into the
// application.
package assets

import (
	"fmt"
	"image"
	"io/fs"

	// decoders for the image formats asset packs typically carry
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// LoadBytes loads raw bytes from the named resource.
func LoadBytes(fsys fs.FS, name string) ([]byte, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: reading resource %q: %w", name, err)
	}
	return b, nil
}

// LoadString loads UTF-8 text from the named resource.
func LoadString(fsys fs.FS, name string) (string, error) {
	b, err := LoadBytes(fsys, name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LoadImage loads and decodes an image from the named resource.
// PNG, JPEG, BMP, and TIFF are supported.
func LoadImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: opening resource %q: %w", name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decoding image %q: %w", name, err)
	}
	return img, nil
}
