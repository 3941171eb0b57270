package raster

import (
	"image"
	"image/draw"
)

// Channel indices into Buffer.Pix, logical RGBA order.
const (
	ChanR = 0
	ChanG = 1
	ChanB = 2
	ChanA = 3
)

// Buffer is a decoded texture normalized to 4 channels, 8 bits per channel,
// in non-premultiplied R, G, B, A byte order. Each conversion set owns its
// buffers exclusively; nothing is shared across sets.
type Buffer struct {
	Width  int
	Height int
	// Pix holds Width*Height*4 bytes, rows top to bottom.
	Pix []uint8
}

// New allocates a zeroed buffer.
func New(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// FromImage normalizes any decoded image to the 4-channel layout. Sources
// without an alpha channel come out fully opaque.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 && bounds.Min == (image.Point{}) {
		buf := New(width, height)
		copy(buf.Pix, nrgba.Pix)
		return buf
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return &Buffer{Width: width, Height: height, Pix: dst.Pix}
}

// NRGBA returns an image view sharing the buffer's pixel storage.
func (b *Buffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// SameSize reports whether the other buffer has identical dimensions.
func (b *Buffer) SameSize(other *Buffer) bool {
	return b.Width == other.Width && b.Height == other.Height
}

// At returns the value of one channel at a pixel coordinate.
func (b *Buffer) At(x, y, channel int) uint8 {
	return b.Pix[(y*b.Width+x)*4+channel]
}

// Set assigns one channel at a pixel coordinate.
func (b *Buffer) Set(x, y, channel int, value uint8) {
	b.Pix[(y*b.Width+x)*4+channel] = value
}
