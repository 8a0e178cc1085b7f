package revolve_test

import (
	"testing"

	"github.com/soypat/torosphere"
	"github.com/soypat/torosphere/revolve"
)

func TestZoneRowRanges(t *testing.T) {
	for _, n := range []int{2, 3, 8, 64, 128} {
		ranges := revolve.ZoneRowRanges(n)
		if len(ranges) != 8 {
			t.Fatalf("got %d ranges", len(ranges))
		}
		total := revolve.TotalRows(n)
		if ranges[0].Start != 0 || ranges[7].End != total-1 {
			t.Errorf("n=%d: ranges span [%d,%d], want [0,%d]", n, ranges[0].Start, ranges[7].End, total-1)
		}
		covered := make([]int, total)
		for i, zr := range ranges {
			if zr.Zone != torosphere.Zone(i) {
				t.Errorf("range %d has zone %v", i, zr.Zone)
			}
			if zr.Start > zr.End {
				t.Errorf("n=%d %v: empty range [%d,%d]", n, zr.Zone, zr.Start, zr.End)
			}
			if i > 0 && ranges[i-1].End != zr.Start {
				t.Errorf("n=%d: %v and %v do not share a boundary row", n, ranges[i-1].Zone, zr.Zone)
			}
			for r := zr.Start; r <= zr.End; r++ {
				covered[r]++
			}
		}
		for r, c := range covered {
			if c == 0 {
				t.Errorf("n=%d: row %d not covered", n, r)
			}
			if c > 2 {
				t.Errorf("n=%d: row %d covered %d times", n, r, c)
			}
		}
	}
}

func TestZoneRowRangesConcrete(t *testing.T) {
	const n = 64
	want := []revolve.ZoneRange{
		{Zone: torosphere.ZoneInnerCrown, Start: 0, End: 63},
		{Zone: torosphere.ZoneInnerKnuckle, Start: 63, End: 126},
		{Zone: torosphere.ZoneInnerFlange, Start: 126, End: 127},
		{Zone: torosphere.ZoneBottomRim, Start: 127, End: 128},
		{Zone: torosphere.ZoneOuterFlange, Start: 128, End: 129},
		{Zone: torosphere.ZoneOuterKnuckle, Start: 129, End: 192},
		{Zone: torosphere.ZoneOuterCrown, Start: 192, End: 255},
		{Zone: torosphere.ZoneApexFlat, Start: 255, End: 257},
	}
	got := revolve.ZoneRowRanges(n)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("zone %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

// Slicing the profile by zone ranges must reproduce the zone segments.
func TestZoneRangesMatchSegments(t *testing.T) {
	const n = 20
	g := torosphere.Derive(fdHead)
	prof := torosphere.SampleProfile(g, n)
	segs := torosphere.Segments(g, n)
	for _, zr := range revolve.ZoneRowRanges(n) {
		seg := segs[zr.Zone]
		if zr.Zone == torosphere.ZoneApexFlat {
			// The apex flat range also holds the closing row.
			if zr.Rows() != len(seg.Points)+1 {
				t.Errorf("%v: %d rows for %d points", zr.Zone, zr.Rows(), len(seg.Points))
			}
			continue
		}
		if zr.Rows() != len(seg.Points) {
			t.Errorf("%v: %d rows for %d points", zr.Zone, zr.Rows(), len(seg.Points))
		}
		// Leading points match exactly, the shared end row comes from the next zone.
		for k := 0; k < len(seg.Points)-1; k++ {
			if prof[zr.Start+k] != seg.Points[k] {
				t.Errorf("%v: row %d = %v, want %v", zr.Zone, zr.Start+k, prof[zr.Start+k], seg.Points[k])
			}
		}
	}
}

func TestWindowIndices(t *testing.T) {
	m := headMesh(t, fdHead, 8, 10)
	rows, cols := m.Indices(m.FullWindow())
	r, c := m.Shape()
	if len(rows) != r || len(cols) != c {
		t.Errorf("full window got %dx%d, want %dx%d", len(rows), len(cols), r, c)
	}
	half := m.HalfWindow()
	half.Stride = 4
	_, cols = m.Indices(half)
	wantCols := []int{0, 4, 5}
	if len(cols) != len(wantCols) {
		t.Fatalf("half strided cols %v, want %v", cols, wantCols)
	}
	for i := range cols {
		if cols[i] != wantCols[i] {
			t.Fatalf("half strided cols %v, want %v", cols, wantCols)
		}
	}
	zr := revolve.ZoneRowRanges(8)[torosphere.ZoneInnerKnuckle]
	w := m.FullWindow()
	w.Stride = 3
	rows, _ = m.Indices(w.ZoneWindow(zr))
	if rows[0] != zr.Start || rows[len(rows)-1] != zr.End {
		t.Errorf("zone window rows %v must start at %d and end at %d", rows, zr.Start, zr.End)
	}
}
