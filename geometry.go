package torosphere

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Geometry holds the closed-form quantities derived from a set of HeadParams.
// Points are stored with X as the radial coordinate and Y as the axial
// coordinate, z=0 being the open (flange) end and +z pointing to the apex.
//
// Outer surface quantities share the arc centers of the inner surface since the
// outer surface is the inner surface offset by T along the normal. As a
// consequence Alpha and Phi are the same for both surfaces.
type Geometry struct {
	Params HeadParams

	// ZSphere is the axial coordinate of the crown sphere center.
	// It is negative for most practical proportions.
	ZSphere float64
	// Ratio is (D/2-Rk)/(Rc-Rk), the sine of Phi and cosine of Alpha.
	Ratio float64
	// Alpha is the knuckle arc sweep angle measured from the radially
	// outward direction at the knuckle center.
	Alpha float64
	// Phi is the crown arc polar half-angle measured from the revolution axis.
	// Alpha+Phi = π/2.
	Phi float64

	// KnuckleCenter is the center of the knuckle arcs, (D/2-Rk, H).
	KnuckleCenter r2.Vec
	// InnerTangency and OuterTangency are the crown-knuckle tangency points.
	InnerTangency r2.Vec
	OuterTangency r2.Vec

	// ApexInner and ApexOuter are axial coordinates of the surfaces on the axis.
	ApexInner float64
	ApexOuter float64
}

// NewGeometry validates p and derives its geometry.
func NewGeometry(p HeadParams) (Geometry, error) {
	if err := p.Validate(); err != nil {
		return Geometry{}, err
	}
	return Derive(p), nil
}

// Derive computes the geometry of a torospherical head. p must have passed
// validation; Derive does not check it again and returns meaningless values
// for invalid parameters.
func Derive(p HeadParams) Geometry {
	rkc := p.knuckleCenter()
	// Tangent circles: |O_sphere - O_knuckle| = Rc - Rk.
	zsc := p.H - math.Sqrt((p.Rc-p.Rk)*(p.Rc-p.Rk)-rkc*rkc)
	ratio := p.ratio()
	g := Geometry{
		Params:        p,
		ZSphere:       zsc,
		Ratio:         ratio,
		Alpha:         math.Acos(ratio),
		Phi:           math.Asin(ratio),
		KnuckleCenter: r2.Vec{X: rkc, Y: p.H},
		InnerTangency: tangency(p.Rc, ratio, zsc),
		OuterTangency: tangency(p.Rc+p.T, ratio, zsc),
		ApexInner:     zsc + p.Rc,
		ApexOuter:     zsc + p.Rc + p.T,
	}
	return g
}

// tangency returns the point where a crown arc of radius R centered on the axis
// at zsc meets the knuckle arc.
func tangency(R, ratio, zsc float64) r2.Vec {
	r := R * ratio
	return r2.Vec{X: r, Y: zsc + math.Sqrt(R*R-r*r)}
}

// CrownRadius returns the crown arc radius of the inner or outer surface.
func (g Geometry) CrownRadius(outer bool) float64 {
	if outer {
		return g.Params.Rc + g.Params.T
	}
	return g.Params.Rc
}

// KnuckleRadius returns the knuckle arc radius of the inner or outer surface.
func (g Geometry) KnuckleRadius(outer bool) float64 {
	if outer {
		return g.Params.Rk + g.Params.T
	}
	return g.Params.Rk
}

// SphereCenter returns the crown sphere center in the radial-axial half-plane.
func (g Geometry) SphereCenter() r2.Vec { return r2.Vec{X: 0, Y: g.ZSphere} }

// Depth returns the overall head height measured from the open end to the
// outer apex.
func (g Geometry) Depth() float64 { return g.ApexOuter }

// OuterRadius is the outside radius of the straight flange, D/2+T.
func (g Geometry) OuterRadius() float64 { return g.Params.D/2 + g.Params.T }
