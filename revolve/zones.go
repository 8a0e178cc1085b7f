package revolve

import (
	"github.com/soypat/torosphere"
)

// ZoneRange is the inclusive row range a zone occupies in a de-duplicated
// profile and therefore in a revolved mesh.
type ZoneRange struct {
	Zone       torosphere.Zone
	Start, End int
}

// Rows returns the number of rows in the range.
func (zr ZoneRange) Rows() int { return zr.End - zr.Start + 1 }

// TotalRows returns the number of points in a profile sampled with arcRes.
func TotalRows(arcRes int) int { return 4*arcRes + 2 }

// ZoneRowRanges returns the row range of each zone for a profile sampled with
// arcRes, in traversal order. Adjacent ranges share their boundary row so that
// rendering each slice independently covers every row without gaps.
// The apex flat range ends on the closing row.
func ZoneRowRanges(arcRes int) []ZoneRange {
	ranges := make([]ZoneRange, 0, 8)
	start := 0
	for _, z := range torosphere.Zones() {
		var contrib int
		switch {
		case z.IsArc():
			contrib = arcRes - 1
		case z == torosphere.ZoneApexFlat:
			// Both apex points plus the closing row.
			contrib = 2
		default:
			contrib = 1
		}
		ranges = append(ranges, ZoneRange{Zone: z, Start: start, End: start + contrib})
		start += contrib
	}
	return ranges
}

// Window selects a sub-grid of a mesh. Rows and columns are inclusive.
// Stride subsamples both directions; the last row and column of the window
// are always kept so adjacent windows still join seamlessly.
type Window struct {
	RowStart, RowEnd int
	ColStart, ColEnd int
	Stride           int
}

// FullWindow returns the window covering the whole mesh.
func (m *Mesh) FullWindow() Window {
	return Window{RowEnd: m.rows - 1, ColEnd: m.cols - 1, Stride: 1}
}

// HalfWindow returns the window covering azimuths [0, π], used for half
// section views.
func (m *Mesh) HalfWindow() Window {
	return Window{RowEnd: m.rows - 1, ColEnd: m.HalfColumns() - 1, Stride: 1}
}

// ZoneWindow restricts w to the rows of zone range zr.
func (w Window) ZoneWindow(zr ZoneRange) Window {
	w.RowStart, w.RowEnd = zr.Start, zr.End
	return w
}

// Indices returns the row and column indices selected by w.
func (m *Mesh) Indices(w Window) (rows, cols []int) {
	if w.RowStart < 0 || w.RowEnd >= m.rows || w.RowStart > w.RowEnd ||
		w.ColStart < 0 || w.ColEnd >= m.cols || w.ColStart > w.ColEnd {
		panic("window out of mesh range")
	}
	return strided(w.RowStart, w.RowEnd, w.Stride), strided(w.ColStart, w.ColEnd, w.Stride)
}

func strided(start, end, stride int) []int {
	if stride < 1 {
		stride = 1
	}
	idx := make([]int, 0, (end-start)/stride+2)
	for i := start; i < end; i += stride {
		idx = append(idx, i)
	}
	return append(idx, end)
}
