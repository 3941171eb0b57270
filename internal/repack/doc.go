// Package repack converts one aligned set of legacy texture buffers into the
// packed NMO (normal/material/occlusion) and BCR (base-color/roughness)
// maps. The channel mapping is a fixed per-pixel copy with no blending or
// color-space conversion; the only knobs are the NMO alpha formula and how
// mismatched input dimensions are handled.
package repack
