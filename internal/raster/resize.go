package raster

import (
	"fmt"

	"github.com/anthonynsimon/bild/transform"
)

// Filter selects the resampling kernel used when an input must be resized.
type Filter string

const (
	// FilterLinear is the default bilinear kernel.
	FilterLinear Filter = "linear"
	// FilterNearest picks the nearest source pixel, preserving hard edges.
	FilterNearest Filter = "nearest"
)

// ParseFilter maps a configuration string to a Filter.
func ParseFilter(value string) (Filter, error) {
	switch Filter(value) {
	case FilterLinear:
		return FilterLinear, nil
	case FilterNearest:
		return FilterNearest, nil
	}
	return "", fmt.Errorf("unknown resize filter %q", value)
}

// Resize resamples the buffer to the requested dimensions. A buffer already
// at the target size is returned unchanged.
func Resize(buf *Buffer, width, height int, filter Filter) *Buffer {
	if buf.Width == width && buf.Height == height {
		return buf
	}
	kernel := transform.Linear
	if filter == FilterNearest {
		kernel = transform.NearestNeighbor
	}
	resized := transform.Resize(buf.NRGBA(), width, height, kernel)
	return FromImage(resized)
}
