package repack

import (
	"fmt"

	"legacy2pbr/internal/raster"
	"legacy2pbr/internal/services"
)

// OcclusionAlpha selects the NMO alpha-channel formula. The legacy tools
// disagreed on this, so both behaviors are explicit policies.
type OcclusionAlpha string

const (
	// OcclusionDirect copies the ambient-shadow green channel.
	OcclusionDirect OcclusionAlpha = "direct"
	// OcclusionAverage blends the ambient-shadow green channel with the
	// normal-map blue channel.
	OcclusionAverage OcclusionAlpha = "average"
)

// DimensionPolicy controls specular/diffuse inputs whose dimensions disagree
// with the normal map. The ambient map is always resampled on mismatch.
type DimensionPolicy string

const (
	// DimensionStrict fails the set on any specular/diffuse mismatch.
	DimensionStrict DimensionPolicy = "strict"
	// DimensionResize resamples mismatched inputs to the normal map's size.
	DimensionResize DimensionPolicy = "resize"
)

// Policy bundles the configurable repacking behaviors.
type Policy struct {
	OcclusionAlpha  OcclusionAlpha
	DimensionPolicy DimensionPolicy
	ResizeFilter    raster.Filter
}

// PolicyFromStrings builds a Policy from configuration values.
func PolicyFromStrings(occlusionAlpha, dimensionPolicy, resizeFilter string) (Policy, error) {
	policy := Policy{
		OcclusionAlpha:  OcclusionAlpha(occlusionAlpha),
		DimensionPolicy: DimensionPolicy(dimensionPolicy),
	}
	switch policy.OcclusionAlpha {
	case OcclusionDirect, OcclusionAverage:
	default:
		return Policy{}, fmt.Errorf("unknown occlusion alpha policy %q", occlusionAlpha)
	}
	switch policy.DimensionPolicy {
	case DimensionStrict, DimensionResize:
	default:
		return Policy{}, fmt.Errorf("unknown dimension policy %q", dimensionPolicy)
	}
	filter, err := raster.ParseFilter(resizeFilter)
	if err != nil {
		return Policy{}, err
	}
	policy.ResizeFilter = filter
	return policy, nil
}

// Inputs holds the four decoded role buffers for one conversion set.
type Inputs struct {
	Normal   *raster.Buffer
	Specular *raster.Buffer
	Ambient  *raster.Buffer
	Diffuse  *raster.Buffer
}

// Outputs holds the two packed maps, both sized like the normal map.
type Outputs struct {
	NMO *raster.Buffer
	BCR *raster.Buffer
}

// Prepare aligns all inputs to the normal map's dimensions. The ambient map
// is resampled whenever it disagrees; specular and diffuse follow the
// dimension policy and fail the set under DimensionStrict.
func (in *Inputs) Prepare(policy Policy) error {
	width, height := in.Normal.Width, in.Normal.Height

	in.Ambient = raster.Resize(in.Ambient, width, height, policy.ResizeFilter)

	for _, role := range []struct {
		name string
		buf  **raster.Buffer
	}{
		{"smdi", &in.Specular},
		{"co", &in.Diffuse},
	} {
		if (*role.buf).SameSize(in.Normal) {
			continue
		}
		if policy.DimensionPolicy == DimensionStrict {
			return services.Wrap(
				services.ErrDimension,
				"repack",
				"check dimensions",
				fmt.Sprintf("%s is %dx%d, normal map is %dx%d",
					role.name, (*role.buf).Width, (*role.buf).Height, width, height),
				nil,
			)
		}
		*role.buf = raster.Resize(*role.buf, width, height, policy.ResizeFilter)
	}
	return nil
}

// Repack computes the two packed maps by per-pixel, per-channel copy:
//
//	NMO: R=smdi.G  G=nohq.G  B=nohq.B  A=as.G (or the as.G/nohq.B average)
//	BCR: R=co.R    G=co.G    B=co.B    A=smdi.B
//
// All inputs must already share the normal map's dimensions; call Prepare
// first.
func Repack(in Inputs, policy Policy) (Outputs, error) {
	for _, buf := range []*raster.Buffer{in.Specular, in.Ambient, in.Diffuse} {
		if !buf.SameSize(in.Normal) {
			return Outputs{}, services.Wrap(
				services.ErrDimension,
				"repack",
				"verify prepared inputs",
				fmt.Sprintf("input is %dx%d, normal map is %dx%d",
					buf.Width, buf.Height, in.Normal.Width, in.Normal.Height),
				nil,
			)
		}
	}

	width, height := in.Normal.Width, in.Normal.Height
	nmo := raster.New(width, height)
	bcr := raster.New(width, height)

	average := policy.OcclusionAlpha == OcclusionAverage
	for i := 0; i < len(nmo.Pix); i += 4 {
		nmo.Pix[i+raster.ChanR] = in.Specular.Pix[i+raster.ChanG]
		nmo.Pix[i+raster.ChanG] = in.Normal.Pix[i+raster.ChanG]
		nmo.Pix[i+raster.ChanB] = in.Normal.Pix[i+raster.ChanB]
		if average {
			sum := uint16(in.Ambient.Pix[i+raster.ChanG]) + uint16(in.Normal.Pix[i+raster.ChanB])
			nmo.Pix[i+raster.ChanA] = uint8(sum / 2)
		} else {
			nmo.Pix[i+raster.ChanA] = in.Ambient.Pix[i+raster.ChanG]
		}

		bcr.Pix[i+raster.ChanR] = in.Diffuse.Pix[i+raster.ChanR]
		bcr.Pix[i+raster.ChanG] = in.Diffuse.Pix[i+raster.ChanG]
		bcr.Pix[i+raster.ChanB] = in.Diffuse.Pix[i+raster.ChanB]
		bcr.Pix[i+raster.ChanA] = in.Specular.Pix[i+raster.ChanB]
	}

	return Outputs{NMO: nmo, BCR: bcr}, nil
}
