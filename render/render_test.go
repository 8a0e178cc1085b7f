package render_test

import (
	"math"
	"testing"

	"github.com/soypat/torosphere"
	"github.com/soypat/torosphere/render"
	"github.com/soypat/torosphere/revolve"
	"gonum.org/v1/gonum/spatial/r3"
)

var fdHead = torosphere.HeadParams{D: 1524, Rc: 1524, Rk: 100, T: 10, H: 50}

func headMesh(t testing.TB, p torosphere.HeadParams, arcRes, azDiv int) *revolve.Mesh {
	g, err := torosphere.NewGeometry(p)
	if err != nil {
		t.Fatal(err)
	}
	m, err := revolve.Revolve(torosphere.SampleProfile(g, arcRes), azDiv)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func triangleArea(t render.Triangle3) float64 {
	return r3.Norm(r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))) / 2
}

// A revolved polygon swept by an N-gon encloses the Pappus volume scaled by
// the N-gon to circle area ratio.
func TestTriangulateEnclosedVolume(t *testing.T) {
	const arcRes, azDiv = 64, 360
	for _, p := range []torosphere.HeadParams{
		fdHead,
		{D: 1000, Rc: 1000, Rk: 60, T: 8, H: 0},
		{D: 2, Rc: 1.5, Rk: 0.9, T: 0.1, H: 0.2},
	} {
		m := headMesh(t, p, arcRes, azDiv)
		model := render.Triangulate(m, m.FullWindow())
		for i, tri := range model {
			if tri.Degenerate(0) {
				t.Fatalf("%+v: triangle %d is degenerate: %v", p, i, tri)
			}
		}
		f := azDiv * math.Sin(2*math.Pi/azDiv) / (2 * math.Pi)
		want := f * m.Profile().WallVolume()
		got := render.SignedVolume(model)
		if got <= 0 {
			t.Fatalf("%+v: normals point inward, volume %g", p, got)
		}
		if math.Abs(got-want)/want > 1e-6 {
			t.Errorf("%+v: enclosed volume %g, want %g", p, got, want)
		}
	}
}

func TestTriangulateWindowCount(t *testing.T) {
	m := headMesh(t, fdHead, 8, 12)
	rows, cols := m.Shape()
	full := render.Triangulate(m, m.FullWindow())
	// Every quad gives two triangles except those on the axis.
	poleQuads := 0
	prof := m.Profile()
	for i := 0; i < rows-1; i++ {
		if prof[i].X == 0 || prof[i+1].X == 0 {
			poleQuads++
		}
	}
	maxTris := 2 * (rows - 1) * (cols - 1)
	if len(full) >= maxTris || len(full) < maxTris-2*poleQuads*(cols-1) {
		t.Errorf("got %d triangles for %d quads", len(full), m.Quads())
	}
	half := render.Triangulate(m, m.HalfWindow())
	if len(half) != len(full)/2 {
		t.Errorf("half window got %d triangles, want %d", len(half), len(full)/2)
	}
	w := m.FullWindow()
	w.Stride = 3
	if strided := render.Triangulate(m, w); len(strided) >= len(full) {
		t.Errorf("stride did not reduce triangle count: %d >= %d", len(strided), len(full))
	}
}

func TestTriangulateZones(t *testing.T) {
	const arcRes = 16
	m := headMesh(t, fdHead, arcRes, 24)
	zones := render.TriangulateZones(m, m.FullWindow(), arcRes)
	if len(zones) != 8 {
		t.Fatalf("got %d zones", len(zones))
	}
	total := 0
	for z, tris := range zones {
		if torosphere.Zone(z) != torosphere.ZoneApexFlat && len(tris) == 0 {
			t.Errorf("zone %v has no triangles", torosphere.Zone(z))
		}
		total += len(tris)
	}
	if full := render.Triangulate(m, m.FullWindow()); total != len(full) {
		t.Errorf("zones hold %d triangles, full mesh %d", total, len(full))
	}
}

func TestCutFace(t *testing.T) {
	const arcRes = 32
	g := torosphere.Derive(fdHead)
	prof := torosphere.SampleProfile(g, arcRes)
	for _, angle := range []float64{0, math.Pi / 3, math.Pi} {
		face := render.CutFace(prof, arcRes, angle)
		var area float64
		for _, tri := range face {
			area += triangleArea(tri)
			for _, v := range tri {
				r := math.Hypot(v.X, v.Y)
				if r > 0 && math.Abs(math.Atan2(v.Y, v.X)-math.Atan2(math.Sin(angle), math.Cos(angle))) > 1e-9 {
					t.Fatalf("angle %g: vertex %v off the cut plane", angle, v)
				}
			}
		}
		if want := prof.Area(); math.Abs(area-want)/want > 1e-9 {
			t.Errorf("angle %g: cut face area %g, want %g", angle, area, want)
		}
	}
}

func TestCutFacePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for short profile")
		}
	}()
	render.CutFace(torosphere.Profile{{X: 1}, {X: 2}}, 4, 0)
}

func TestDegenerate(t *testing.T) {
	a, b := r3.Vec{X: 1}, r3.Vec{Y: 1}
	if (render.Triangle3{a, b, r3.Vec{}}).Degenerate(0) {
		t.Error("right triangle reported degenerate")
	}
	if !(render.Triangle3{a, a, b}).Degenerate(0) {
		t.Error("repeated vertex not degenerate")
	}
	if !(render.Triangle3{a, r3.Scale(2, a), r3.Scale(3, a)}).Degenerate(0) {
		t.Error("collinear vertices not degenerate")
	}
	n := (render.Triangle3{r3.Vec{}, a, b}).Normal()
	if n != (r3.Vec{Z: 1}) {
		t.Errorf("normal got %v, want +Z", n)
	}
}
