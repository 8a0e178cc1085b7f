package torosphere

import (
	"math"

	"github.com/soypat/torosphere/internal/d2"
	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// Area returns the area enclosed by the closed profile, that is, the area
// of the wall cross-section on one side of the axis.
func (p Profile) Area() float64 {
	if len(p) < 4 {
		return 0
	}
	return math.Abs(p.polygon().Area())
}

// Centroid returns the area centroid of the wall cross-section.
func (p Profile) Centroid() r2.Vec {
	var a2, cx, cy float64
	for i := 0; i < len(p)-1; i++ {
		v0, v1 := p[i], p[i+1]
		cross := r2.Cross(v0, v1)
		a2 += cross
		cx += (v0.X + v1.X) * cross
		cy += (v0.Y + v1.Y) * cross
	}
	if a2 == 0 {
		return r2.Vec{}
	}
	return r2.Vec{X: cx / (3 * a2), Y: cy / (3 * a2)}
}

// WallVolume returns the material volume of the revolved wall, computed with
// Pappus's centroid theorem.
func (p Profile) WallVolume() float64 {
	return tau * p.Centroid().X * p.Area()
}

func (p Profile) polygon() *geom.Polygon {
	ring := make([]geom.Coord, len(p))
	for i, v := range p {
		ring[i] = geom.Coord{v.X, v.Y}
	}
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring})
}

// Vertices returns the polygon vertices of the cross-section without the
// closing point. Consecutive points closer than a tolerance relative to the
// profile size are merged.
func (p Profile) Vertices() []r2.Vec {
	if len(p) == 0 {
		return nil
	}
	bb := p.Bounds()
	tol := tolerance * math.Max(bb.Max.X-bb.Min.X, bb.Max.Y-bb.Min.Y)
	v := d2.Set(p).Compact(tol)
	if len(v) > 1 && d2.EqualWithin(v[0], v[len(v)-1], tol) {
		v = v[:len(v)-1]
	}
	return v
}
