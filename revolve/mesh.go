// Package revolve sweeps a torospherical head profile about its symmetry axis
// into a structured 3D grid of points.
package revolve

import (
	"math"

	"github.com/pkg/errors"
	"github.com/soypat/torosphere"
	"github.com/soypat/torosphere/internal/d3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a structured grid of 3D points indexed by profile position (row)
// and azimuth position (column). The last column is identical to the first.
// A Mesh is never modified after Revolve returns it.
type Mesh struct {
	rows, cols int
	pts        []r3.Vec // row-major
	profile    torosphere.Profile
	theta      []float64
}

// Extents are the bounding extents of a revolved mesh.
type Extents struct {
	ZMin, ZMax float64
	RMax       float64
}

// Revolve sweeps profile a full turn about the Z axis. The resulting mesh has
// len(profile) rows and azimuthDivisions+1 columns, the angles being evenly
// spaced over [0, 2π] inclusive. Point (i,j) is
//
//	(r_i·cos θ_j, r_i·sin θ_j, z_i)
//
// Profile points with radial coordinate 0 collapse to a single axis point for
// every azimuth. A negative radial coordinate returns an error wrapping
// torosphere.ErrInvalidInput.
func Revolve(profile torosphere.Profile, azimuthDivisions int) (*Mesh, error) {
	if azimuthDivisions < 1 {
		return nil, errors.Wrapf(torosphere.ErrOutOfRange, "azimuth divisions must be positive (got %d)", azimuthDivisions)
	}
	if len(profile) == 0 {
		return nil, errors.Wrap(torosphere.ErrInvalidInput, "empty profile")
	}
	for i, v := range profile {
		if !(v.X >= 0) {
			return nil, errors.Wrapf(torosphere.ErrInvalidInput, "profile point %d has radial coordinate %g, must be >= 0", i, v.X)
		}
	}
	cols := azimuthDivisions + 1
	theta := floats.Span(make([]float64, cols), 0, 2*math.Pi)
	theta[0], theta[cols-1] = 0, 2*math.Pi
	sin := make([]float64, cols)
	cos := make([]float64, cols)
	for j, a := range theta {
		sin[j], cos[j] = math.Sincos(a)
	}
	m := &Mesh{
		rows:    len(profile),
		cols:    cols,
		pts:     make([]r3.Vec, len(profile)*cols),
		profile: append(torosphere.Profile(nil), profile...),
		theta:   theta,
	}
	for i, v := range profile {
		row := m.pts[i*cols : (i+1)*cols]
		for j := 0; j < cols-1; j++ {
			row[j] = r3.Vec{X: v.X * cos[j], Y: v.X * sin[j], Z: v.Y}
		}
		// sin(2π) is not exactly zero, seal the seam by copying.
		row[cols-1] = row[0]
	}
	return m, nil
}

// Shape returns the number of rows and columns of the grid.
func (m *Mesh) Shape() (rows, cols int) { return m.rows, m.cols }

// At returns the point at row i and column j.
func (m *Mesh) At(i, j int) r3.Vec {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("mesh index out of range")
	}
	return m.pts[i*m.cols+j]
}

// Row returns a copy of row i.
func (m *Mesh) Row(i int) []r3.Vec {
	return append([]r3.Vec(nil), m.pts[i*m.cols:(i+1)*m.cols]...)
}

// Column returns a copy of column j.
func (m *Mesh) Column(j int) []r3.Vec {
	col := make([]r3.Vec, m.rows)
	for i := range col {
		col[i] = m.At(i, j)
	}
	return col
}

// Profile returns a copy of the profile the mesh was revolved from.
func (m *Mesh) Profile() torosphere.Profile {
	return append(torosphere.Profile(nil), m.profile...)
}

// Theta returns a copy of the azimuth angles of each column.
func (m *Mesh) Theta() []float64 { return append([]float64(nil), m.theta...) }

// AzimuthDivisions returns the number of azimuthal subdivisions (columns-1).
func (m *Mesh) AzimuthDivisions() int { return m.cols - 1 }

// HalfColumns returns the number of columns spanning azimuths [0, π] (or the
// closest division below π for odd division counts).
func (m *Mesh) HalfColumns() int { return (m.cols-1)/2 + 1 }

// Quads returns the number of quadrilateral cells in the grid.
func (m *Mesh) Quads() int { return (m.rows - 1) * (m.cols - 1) }

// Extents returns the minimum and maximum axial coordinate and the maximum
// radial coordinate over all grid points.
func (m *Mesh) Extents() Extents {
	set := d3.Set(m.pts)
	lo, hi := set.Min(), set.Max()
	e := Extents{ZMin: lo.Z, ZMax: hi.Z}
	for _, p := range m.pts {
		e.RMax = math.Max(e.RMax, math.Hypot(p.X, p.Y))
	}
	return e
}

// Bounds returns the axis aligned bounding box of the grid.
func (m *Mesh) Bounds() r3.Box {
	set := d3.Set(m.pts)
	return r3.Box{Min: set.Min(), Max: set.Max()}
}
