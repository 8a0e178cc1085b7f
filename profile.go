package torosphere

import (
	"math"

	"github.com/pkg/errors"
	"github.com/soypat/torosphere/internal/d2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Zone is one of the eight named segments that make up a head profile.
type Zone int

// Zones in profile traversal order.
const (
	ZoneInnerCrown Zone = iota
	ZoneInnerKnuckle
	ZoneInnerFlange
	ZoneBottomRim
	ZoneOuterFlange
	ZoneOuterKnuckle
	ZoneOuterCrown
	ZoneApexFlat
	numZones
)

var zoneNames = [numZones]string{
	ZoneInnerCrown:   "Inner crown arc",
	ZoneInnerKnuckle: "Inner knuckle arc",
	ZoneInnerFlange:  "Inner straight flange",
	ZoneBottomRim:    "Bottom rim",
	ZoneOuterFlange:  "Outer straight flange",
	ZoneOuterKnuckle: "Outer knuckle arc",
	ZoneOuterCrown:   "Outer crown arc",
	ZoneApexFlat:     "Apex flat",
}

func (z Zone) String() string {
	if z < 0 || z >= numZones {
		return "Zone(?)"
	}
	return zoneNames[z]
}

// IsArc reports whether the zone is a curved segment sampled at arc resolution.
func (z Zone) IsArc() bool {
	return z == ZoneInnerCrown || z == ZoneInnerKnuckle || z == ZoneOuterKnuckle || z == ZoneOuterCrown
}

// Zones returns all zones in traversal order.
func Zones() []Zone {
	z := make([]Zone, numZones)
	for i := range z {
		z[i] = Zone(i)
	}
	return z
}

// ParseZone returns the zone with the given display name.
func ParseZone(name string) (Zone, error) {
	for i, n := range zoneNames {
		if n == name {
			return Zone(i), nil
		}
	}
	return -1, errors.Errorf("unknown zone %q", name)
}

// Segment is a single zone of the profile sampled as an independent point
// sequence which includes both of its endpoints.
type Segment struct {
	Zone   Zone
	Points []r2.Vec
}

// Profile is a closed polyline in the radial-axial half-plane. X is the radial
// coordinate (never negative) and Y the axial coordinate.
// The first and last points are identical.
type Profile []r2.Vec

// Segments samples the eight profile zones of g in traversal order. Curved
// zones have arcRes evenly spaced points, straight zones have their two
// endpoints. Segments are not de-duplicated at junctions. Segments panics if
// arcRes < 1.
func Segments(g Geometry, arcRes int) []Segment {
	if arcRes < 1 {
		panic("arc resolution must be positive")
	}
	p := g.Params
	rkc := g.KnuckleCenter
	ri, ro := p.D/2, p.D/2+p.T
	return []Segment{
		{Zone: ZoneInnerCrown, Points: crownArc(p.Rc, g.ZSphere, 0, g.Phi, arcRes)},
		{Zone: ZoneInnerKnuckle, Points: knuckleArc(rkc, p.Rk, g.Alpha, 0, arcRes)},
		{Zone: ZoneInnerFlange, Points: []r2.Vec{{X: ri, Y: p.H}, {X: ri, Y: 0}}},
		{Zone: ZoneBottomRim, Points: []r2.Vec{{X: ri, Y: 0}, {X: ro, Y: 0}}},
		{Zone: ZoneOuterFlange, Points: []r2.Vec{{X: ro, Y: 0}, {X: ro, Y: p.H}}},
		{Zone: ZoneOuterKnuckle, Points: knuckleArc(rkc, p.Rk+p.T, 0, g.Alpha, arcRes)},
		{Zone: ZoneOuterCrown, Points: crownArc(p.Rc+p.T, g.ZSphere, g.Phi, 0, arcRes)},
		{Zone: ZoneApexFlat, Points: []r2.Vec{{X: 0, Y: g.ApexOuter}, {X: 0, Y: g.ApexInner}}},
	}
}

// SampleProfile samples g into a single closed polyline. Each segment except
// the last contributes all but its final point, the last segment contributes
// both its points and the first point is appended again to close the loop.
// The result has 4*arcRes+2 points. SampleProfile panics if arcRes < 1.
func SampleProfile(g Geometry, arcRes int) Profile {
	segs := Segments(g, arcRes)
	prof := make(Profile, 0, 4*arcRes+2)
	for i, seg := range segs {
		if i == len(segs)-1 {
			prof = append(prof, seg.Points...)
			break
		}
		prof = append(prof, seg.Points[:len(seg.Points)-1]...)
	}
	return append(prof, prof[0])
}

// crownArc samples a spherical arc of radius R centered on the axis at zsc.
// phi is the polar angle from the +z axis (0 is the apex).
func crownArc(R, zsc, phiStart, phiEnd float64, n int) []r2.Vec {
	phi := linspace(phiStart, phiEnd, n)
	pts := make([]r2.Vec, n)
	for i, a := range phi {
		s, c := math.Sincos(a)
		pts[i] = r2.Vec{X: R * s, Y: zsc + R*c}
	}
	return pts
}

// knuckleArc samples a toroidal arc of radius r centered at c.
// theta is measured from the radially outward direction at c: 0 is the
// junction with the straight flange, Alpha is the crown tangency.
func knuckleArc(c r2.Vec, r, thetaStart, thetaEnd float64, n int) []r2.Vec {
	theta := linspace(thetaStart, thetaEnd, n)
	pts := make([]r2.Vec, n)
	for i, a := range theta {
		s, co := math.Sincos(a)
		pts[i] = r2.Vec{X: c.X + r*co, Y: c.Y + r*s}
	}
	return pts
}

// linspace returns n evenly spaced values over [start, end].
func linspace(start, end float64, n int) []float64 {
	if n == 1 {
		return []float64{start}
	}
	v := floats.Span(make([]float64, n), start, end)
	// Endpoints are exact so apex points land on the axis.
	v[0], v[n-1] = start, end
	return v
}

// Closed reports whether the first and last points of p coincide.
func (p Profile) Closed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

// Bounds returns the bounding box of the profile. An empty profile has a
// zero box.
func (p Profile) Bounds() r2.Box {
	if len(p) == 0 {
		return r2.Box{}
	}
	set := d2.Set(p)
	return r2.Box{Min: set.Min(), Max: set.Max()}
}
