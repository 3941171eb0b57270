package raster

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/tiff"

	"legacy2pbr/internal/services"
)

// Format returns the canonical codec name for a file name's extension, or
// false when the extension is unrecognized. Extension matching is
// case-insensitive and the format is derived from the name alone, the same
// way the legacy tooling dispatched on extensions.
func Format(name string) (string, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tga":
		return "tga", true
	case ".tif", ".tiff":
		return "tif", true
	case ".png":
		return "png", true
	}
	return "", false
}

// Decode reads and normalizes an input texture.
func Decode(path string) (*Buffer, error) {
	format, ok := Format(path)
	if !ok {
		return nil, services.Wrap(services.ErrDecode, "codec", "decode", "unknown image format "+path, nil)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrDecode, "codec", "open", path, err)
	}
	defer file.Close()

	var img image.Image
	switch format {
	case "tga":
		img, err = tga.Decode(file)
	case "tif":
		img, err = tiff.Decode(file)
	case "png":
		img, err = png.Decode(file)
	}
	if err != nil {
		return nil, services.Wrap(services.ErrDecode, "codec", "decode", path, err)
	}
	return FromImage(img), nil
}

// Encode writes a buffer to path using the codec selected by its extension.
// TIFF output is uncompressed and PNG/TGA use the codec defaults, matching
// the fixed flags the legacy tooling passed.
func Encode(path string, buf *Buffer) error {
	format, ok := Format(path)
	if !ok {
		return services.Wrap(services.ErrEncode, "codec", "encode", "unknown image format "+path, nil)
	}

	file, err := os.Create(path)
	if err != nil {
		return services.Wrap(services.ErrEncode, "codec", "create", path, err)
	}
	defer file.Close()

	img := buf.NRGBA()
	switch format {
	case "tga":
		err = tga.Encode(file, img)
	case "tif":
		err = tiff.Encode(file, img, &tiff.Options{Compression: tiff.Uncompressed})
	case "png":
		err = png.Encode(file, img)
	}
	if err != nil {
		return services.Wrap(services.ErrEncode, "codec", "encode", path, err)
	}
	if err := file.Close(); err != nil {
		return services.Wrap(services.ErrEncode, "codec", "flush", path, err)
	}
	return nil
}
