// Package solid builds a signed distance model of a torospherical head wall
// with github.com/deadsy/sdfx. The model is the closed cross-section polygon
// revolved a full turn about the Z axis.
package solid

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
	"github.com/soypat/torosphere"
	rdr "github.com/soypat/torosphere/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is the wall of a head as a signed distance function. Distances are
// negative inside the material.
type Solid struct {
	s sdf.SDF3
}

// New validates p and returns the solid of its profile sampled with arcRes.
func New(p torosphere.HeadParams, arcRes int) (*Solid, error) {
	if arcRes < 1 {
		return nil, errors.Wrapf(torosphere.ErrOutOfRange, "arc resolution must be positive (got %d)", arcRes)
	}
	g, err := torosphere.NewGeometry(p)
	if err != nil {
		return nil, err
	}
	return FromProfile(torosphere.SampleProfile(g, arcRes))
}

// FromProfile revolves a closed cross-section profile.
func FromProfile(prof torosphere.Profile) (*Solid, error) {
	verts := prof.Vertices()
	if len(verts) < 3 {
		return nil, errors.Wrapf(torosphere.ErrInvalidInput, "profile has %d distinct vertices, need 3", len(verts))
	}
	poly := make([]v2.Vec, len(verts))
	for i, v := range verts {
		if !(v.X >= 0) {
			return nil, errors.Wrapf(torosphere.ErrInvalidInput, "profile point %d has radial coordinate %g, must be >= 0", i, v.X)
		}
		poly[i] = v2.Vec{X: v.X, Y: v.Y}
	}
	s2, err := sdf.Polygon2D(poly)
	if err != nil {
		return nil, errors.Wrap(err, "cross-section polygon")
	}
	s3, err := sdf.Revolve3D(s2)
	if err != nil {
		return nil, errors.Wrap(err, "revolve cross-section")
	}
	return &Solid{s: s3}, nil
}

// Evaluate returns the signed distance from v to the wall surface.
func (s *Solid) Evaluate(v r3.Vec) float64 {
	return s.s.Evaluate(v3.Vec{X: v.X, Y: v.Y, Z: v.Z})
}

// Bounds returns the bounding box of the solid.
func (s *Solid) Bounds() r3.Box {
	bb := s.s.BoundingBox()
	return r3.Box{
		Min: r3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z},
		Max: r3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z},
	}
}

// Triangles tessellates the solid with uniform marching cubes using cells
// cells along the longest bounding box side. Walls thinner than a cell may
// come out with holes.
func (s *Solid) Triangles(cells int) ([]rdr.Triangle3, error) {
	if cells < 2 {
		return nil, errors.Wrapf(torosphere.ErrOutOfRange, "mesh cells must be 2 or larger (got %d)", cells)
	}
	tris := render.ToTriangles(s.s, render.NewMarchingCubesUniform(cells))
	out := make([]rdr.Triangle3, 0, len(tris))
	for _, tri := range tris {
		var t rdr.Triangle3
		for j := 0; j < 3; j++ {
			v := tri[j]
			t[j] = r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
		}
		if !t.Degenerate(0) {
			out = append(out, t)
		}
	}
	return out, nil
}
