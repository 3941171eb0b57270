// Package raster owns the in-memory pixel representation and the image
// codecs. Every decoded input is normalized to a 4-channel 8-bit RGBA buffer
// before the repacker touches it, so channel indices mean the same thing
// regardless of the source format. Codec dispatch is extension-driven (tga,
// tif/tiff, png) and resizing goes through bild's transform kernels.
package raster
