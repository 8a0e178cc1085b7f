package revolve_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/torosphere"
	"github.com/soypat/torosphere/revolve"
	"gonum.org/v1/gonum/spatial/r2"
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

func TestMeshShape(t *testing.T) {
	m := headMesh(t, fdHead, 64, 60)
	rows, cols := m.Shape()
	if rows != 258 || cols != 61 {
		t.Errorf("got shape %dx%d, want 258x61", rows, cols)
	}
	if rows != revolve.TotalRows(64) {
		t.Errorf("TotalRows mismatch")
	}
	if m.AzimuthDivisions() != 60 || m.HalfColumns() != 31 {
		t.Errorf("divisions %d half columns %d", m.AzimuthDivisions(), m.HalfColumns())
	}
	theta := m.Theta()
	if theta[0] != 0 || theta[len(theta)-1] != 2*math.Pi {
		t.Errorf("azimuth must span [0, 2π], got [%g, %g]", theta[0], theta[len(theta)-1])
	}
}

func TestRevolvePeriodicity(t *testing.T) {
	for _, azDiv := range []int{1, 2, 3, 7, 60, 361} {
		m := headMesh(t, fdHead, 16, azDiv)
		rows, cols := m.Shape()
		for i := 0; i < rows; i++ {
			if m.At(i, 0) != m.At(i, cols-1) {
				t.Fatalf("azDiv=%d row %d: first column %v != last column %v", azDiv, i, m.At(i, 0), m.At(i, cols-1))
			}
		}
	}
}

func TestRevolvePoints(t *testing.T) {
	const tol = 1e-9
	m := headMesh(t, fdHead, 32, 24)
	prof := m.Profile()
	theta := m.Theta()
	rows, cols := m.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p := m.At(i, j)
			r := math.Hypot(p.X, p.Y)
			if math.Abs(r-prof[i].X) > tol*fdHead.D {
				t.Fatalf("(%d,%d): radius %g, want %g", i, j, r, prof[i].X)
			}
			if p.Z != prof[i].Y {
				t.Fatalf("(%d,%d): z %g, want %g", i, j, p.Z, prof[i].Y)
			}
			if prof[i].X > 0 && j < cols-1 {
				want := math.Cos(theta[j]) * prof[i].X
				if math.Abs(p.X-want) > tol*fdHead.D {
					t.Fatalf("(%d,%d): x %g, want %g", i, j, p.X, want)
				}
			}
		}
	}
}

func TestPoleRows(t *testing.T) {
	m := headMesh(t, fdHead, 8, 12)
	rows, cols := m.Shape()
	poles := 0
	for i := 0; i < rows; i++ {
		if m.Profile()[i].X != 0 {
			continue
		}
		poles++
		for j := 0; j < cols; j++ {
			p := m.At(i, j)
			if p.X != 0 || p.Y != 0 {
				t.Errorf("pole row %d column %d off axis: %v", i, j, p)
			}
		}
	}
	// Inner apex, outer apex, inner apex again and the closing row.
	if poles != 4 {
		t.Errorf("got %d pole rows, want 4", poles)
	}
}

func TestRevolveErrors(t *testing.T) {
	bad := torosphere.Profile{{X: 1, Y: 0}, {X: -1e-3, Y: 1}, {X: 1, Y: 0}}
	if _, err := revolve.Revolve(bad, 8); !errors.Is(err, torosphere.ErrInvalidInput) {
		t.Errorf("negative radius: got %v, want invalid input", err)
	}
	good := torosphere.Profile{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 0}}
	if _, err := revolve.Revolve(good, 0); !errors.Is(err, torosphere.ErrOutOfRange) {
		t.Errorf("zero divisions: got %v, want out of range", err)
	}
	if _, err := revolve.Revolve(nil, 4); !errors.Is(err, torosphere.ErrInvalidInput) {
		t.Errorf("empty profile: got %v, want invalid input", err)
	}
}

func TestRevolveCopiesProfile(t *testing.T) {
	prof := torosphere.Profile{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 0}}
	m, err := revolve.Revolve(prof, 4)
	if err != nil {
		t.Fatal(err)
	}
	prof[1] = r2.Vec{X: 100, Y: 100}
	if m.Profile()[1].X != 2 || m.At(1, 0).X != 2 {
		t.Error("mesh must not alias caller profile")
	}
}

func TestExtents(t *testing.T) {
	m := headMesh(t, fdHead, 64, 60)
	g := torosphere.Derive(fdHead)
	e := m.Extents()
	if e.ZMin != 0 {
		t.Errorf("ZMin got %g, want 0", e.ZMin)
	}
	if math.Abs(e.ZMax-g.ApexOuter) > 1e-9 {
		t.Errorf("ZMax got %g, want %g", e.ZMax, g.ApexOuter)
	}
	if want := g.OuterRadius(); math.Abs(e.RMax-want) > 1e-9 {
		t.Errorf("RMax got %g, want %g", e.RMax, want)
	}
	bb := m.Bounds()
	if math.Abs(bb.Max.X-g.OuterRadius()) > 1e-9 || math.Abs(bb.Min.X+g.OuterRadius()) > 1e-9 {
		t.Errorf("unexpected bounds %+v", bb)
	}
}
