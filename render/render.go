// Package render turns revolved head meshes into triangles, STL files,
// shaded images and cross-section figures.
package render

import (
	"github.com/soypat/torosphere"
	"github.com/soypat/torosphere/internal/d3"
	"github.com/soypat/torosphere/revolve"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle. Vertices are ordered counter-clockwise when
// seen from the side its normal points to.
type Triangle3 [3]r3.Vec

// Normal returns the unit normal of the triangle.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate reports whether the triangle has a zero area within tol.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t[0], t[1], tol) ||
		d3.EqualWithin(t[1], t[2], tol) ||
		d3.EqualWithin(t[2], t[0], tol) ||
		r3.Norm(r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))) <= tol*tol
}

// Triangulate splits every quad of the grid cells selected by w into two
// triangles with normals pointing away from the wall material. Degenerate
// triangles, such as those touching a pole row, are dropped.
func Triangulate(m *revolve.Mesh, w revolve.Window) []Triangle3 {
	rows, cols := m.Indices(w)
	out := make([]Triangle3, 0, 2*(len(rows)-1)*(len(cols)-1))
	for a := 0; a < len(rows)-1; a++ {
		i0, i1 := rows[a], rows[a+1]
		for b := 0; b < len(cols)-1; b++ {
			j0, j1 := cols[b], cols[b+1]
			p00, p01 := m.At(i0, j0), m.At(i0, j1)
			p10, p11 := m.At(i1, j0), m.At(i1, j1)
			out = appendNonDegenerate(out,
				Triangle3{p00, p01, p11},
				Triangle3{p00, p11, p10},
			)
		}
	}
	return out
}

// TriangulateZones triangulates each zone of m separately. The result is
// indexed by zone.
func TriangulateZones(m *revolve.Mesh, w revolve.Window, arcRes int) [][]Triangle3 {
	ranges := revolve.ZoneRowRanges(arcRes)
	out := make([][]Triangle3, len(ranges))
	for _, zr := range ranges {
		out[zr.Zone] = Triangulate(m, w.ZoneWindow(zr))
	}
	return out
}

// CutFace returns the wall cross-section at azimuth angle as triangles. The
// face fills the region between inner profile row i and its outer
// counterpart 4n-1-i for i in [0, 2n-1], where n is arcRes.
func CutFace(profile torosphere.Profile, arcRes int, angle float64) []Triangle3 {
	outer := 4*arcRes - 1
	if len(profile) <= outer {
		panic("profile too short for arc resolution")
	}
	out := make([]Triangle3, 0, 4*arcRes)
	for i := 0; i < 2*arcRes-1; i++ {
		a := d3.Revolve(profile[i], angle)
		b := d3.Revolve(profile[i+1], angle)
		c := d3.Revolve(profile[outer-i-1], angle)
		d := d3.Revolve(profile[outer-i], angle)
		out = appendNonDegenerate(out,
			Triangle3{a, b, c},
			Triangle3{a, c, d},
		)
	}
	return out
}

func appendNonDegenerate(dst []Triangle3, tris ...Triangle3) []Triangle3 {
	for _, t := range tris {
		if !t.Degenerate(0) {
			dst = append(dst, t)
		}
	}
	return dst
}

// SignedVolume returns the volume enclosed by a closed, consistently
// oriented triangle set. It is positive for outward facing normals.
func SignedVolume(model []Triangle3) float64 {
	var v float64
	for _, t := range model {
		v += r3.Dot(t[0], r3.Cross(t[1], t[2]))
	}
	return v / 6
}
