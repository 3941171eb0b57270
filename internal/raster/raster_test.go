package raster_test

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"legacy2pbr/internal/raster"
	"legacy2pbr/internal/services"
)

func TestFromImageSynthesizesOpaqueAlpha(t *testing.T) {
	// YCbCr has no alpha channel; the buffer must come out fully opaque.
	src := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444)
	buf := raster.FromImage(src)

	if buf.Width != 2 || buf.Height != 2 {
		t.Fatalf("unexpected dimensions: %dx%d", buf.Width, buf.Height)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := buf.At(x, y, raster.ChanA); got != 255 {
				t.Fatalf("alpha at (%d,%d) = %d, want 255", x, y, got)
			}
		}
	}
}

func TestFromImagePreservesChannelBytes(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	buf := raster.FromImage(src)
	want := []uint8{10, 20, 30, 40}
	for c, value := range want {
		if got := buf.At(0, 0, c); got != value {
			t.Fatalf("channel %d = %d, want %d", c, got, value)
		}
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(3, 3, 5, 5))
	src.SetNRGBA(3, 3, color.NRGBA{R: 7, A: 255})

	buf := raster.FromImage(src)
	if buf.Width != 2 || buf.Height != 2 {
		t.Fatalf("unexpected dimensions: %dx%d", buf.Width, buf.Height)
	}
	if got := buf.At(0, 0, raster.ChanR); got != 7 {
		t.Fatalf("origin pixel R = %d, want 7", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name   string
		format string
		ok     bool
	}{
		{"a.tga", "tga", true},
		{"a.TGA", "tga", true},
		{"a.tif", "tif", true},
		{"a.tiff", "tif", true},
		{"a.png", "png", true},
		{"a.bmp", "", false},
		{"a", "", false},
	}
	for _, tc := range cases {
		format, ok := raster.Format(tc.name)
		if format != tc.format || ok != tc.ok {
			t.Errorf("Format(%q) = %q,%v want %q,%v", tc.name, format, ok, tc.format, tc.ok)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	buf := raster.New(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			buf.Set(x, y, raster.ChanR, uint8(x*40))
			buf.Set(x, y, raster.ChanG, uint8(y*80))
			buf.Set(x, y, raster.ChanB, 200)
			buf.Set(x, y, raster.ChanA, 255)
		}
	}

	for _, ext := range []string{"png", "tga", "tif"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tex."+ext)
			if err := raster.Encode(path, buf); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := raster.Decode(path)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !decoded.SameSize(buf) {
				t.Fatalf("dimensions changed: %dx%d", decoded.Width, decoded.Height)
			}
			for i, value := range buf.Pix {
				if decoded.Pix[i] != value {
					t.Fatalf("byte %d = %d, want %d", i, decoded.Pix[i], value)
				}
			}
		})
	}
}

func TestDecodeUnknownExtension(t *testing.T) {
	_, err := raster.Decode(filepath.Join(t.TempDir(), "tex.bmp"))
	if !errors.Is(err, services.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestEncodeUnknownExtension(t *testing.T) {
	err := raster.Encode(filepath.Join(t.TempDir(), "tex.bmp"), raster.New(1, 1))
	if !errors.Is(err, services.ErrEncode) {
		t.Fatalf("expected ErrEncode, got %v", err)
	}
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := raster.Decode(filepath.Join(t.TempDir(), "absent.png"))
	if !errors.Is(err, services.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestResizeToPrimaryDimensions(t *testing.T) {
	buf := raster.New(2, 2)
	for i := range buf.Pix {
		buf.Pix[i] = 128
	}

	for _, filter := range []raster.Filter{raster.FilterLinear, raster.FilterNearest} {
		resized := raster.Resize(buf, 4, 4, filter)
		if resized.Width != 4 || resized.Height != 4 {
			t.Fatalf("%s: unexpected dimensions %dx%d", filter, resized.Width, resized.Height)
		}
		// A constant image stays constant under any resampling kernel.
		for i, value := range resized.Pix {
			if value != 128 {
				t.Fatalf("%s: byte %d = %d, want 128", filter, i, value)
			}
		}
	}
}

func TestResizeNoopReturnsSameBuffer(t *testing.T) {
	buf := raster.New(4, 4)
	if got := raster.Resize(buf, 4, 4, raster.FilterLinear); got != buf {
		t.Fatal("expected the same buffer for a no-op resize")
	}
}

func TestParseFilter(t *testing.T) {
	if _, err := raster.ParseFilter("linear"); err != nil {
		t.Fatalf("linear: %v", err)
	}
	if _, err := raster.ParseFilter("nearest"); err != nil {
		t.Fatalf("nearest: %v", err)
	}
	if _, err := raster.ParseFilter("cubic"); err == nil {
		t.Fatal("expected error for unknown filter")
	}
}
