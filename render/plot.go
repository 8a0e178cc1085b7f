package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"github.com/soypat/torosphere"
	"github.com/soypat/torosphere/internal/d2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

const ghostSamples = 80

// CrossSectionPlot returns a figure of the head cross-section in the
// radial-axial half-plane: the wall filled, each zone in its own color, the
// crown and knuckle construction circles dashed, tangency points and arc
// centers marked, and the derived geometry summarized in a corner.
// The mirror half (r<0) is drawn in grey for context. Axis ranges are set so
// one unit has the same length along r and z on a width×height canvas.
func CrossSectionPlot(g torosphere.Geometry, arcRes int, width, height vg.Length) (*plot.Plot, error) {
	p := g.Params
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Torospherical head cross-section\nD=%.0f  Rc=%.0f  rk=%.0f  t=%.0f  h=%.0f",
		p.D, p.Rc, p.Rk, p.T, p.H)
	pl.X.Label.Text = "r"
	pl.Y.Label.Text = "z"
	pl.Legend.Top = true
	pl.Legend.Left = true
	pl.Add(plotter.NewGrid())

	prof := torosphere.SampleProfile(g, arcRes)
	for _, fill := range []struct {
		sign float64
		c    color.Color
	}{{-1, color.Gray{Y: 235}}, {1, color.RGBA{R: 0xD6, G: 0xE4, B: 0xF5, A: 255}}} {
		wall, err := plotter.NewPolygon(xys(prof, fill.sign))
		if err != nil {
			return nil, err
		}
		wall.Color = fill.c
		wall.LineStyle.Width = 0
		pl.Add(wall)
	}

	segs := torosphere.Segments(g, arcRes)
	for _, seg := range segs {
		mirror, err := plotter.NewLine(xys(seg.Points, -1))
		if err != nil {
			return nil, err
		}
		mirror.LineStyle.Color = color.Gray{Y: 170}
		mirror.LineStyle.Width = vg.Points(1)
		pl.Add(mirror)
	}
	for i, seg := range segs {
		l, err := plotter.NewLine(xys(seg.Points, 1))
		if err != nil {
			return nil, errors.Wrapf(err, "zone %v", seg.Zone)
		}
		l.LineStyle.Color = zoneRGBA(seg.Zone)
		l.LineStyle.Width = vg.Points(2.5)
		pl.Add(l)
		pl.Legend.Add(fmt.Sprintf("%d. %v", i+1, seg.Zone), l)
	}

	// Construction arcs extend past the segments they generate.
	crownEnd := g.Phi * 1.12
	for _, outer := range []bool{false, true} {
		z := torosphere.ZoneInnerCrown
		if outer {
			z = torosphere.ZoneOuterCrown
		}
		ghost := make([]r2.Vec, ghostSamples)
		for k, phi := range floats.Span(make([]float64, ghostSamples), 0, crownEnd) {
			// Polar angle measured from the axis.
			ghost[k] = r2.Add(g.SphereCenter(), d2.Pol{R: g.CrownRadius(outer), Theta: math.Pi/2 - phi}.PolarToCartesian())
		}
		if err := addDashed(pl, ghost, zoneRGBA(z)); err != nil {
			return nil, err
		}

		z = torosphere.ZoneInnerKnuckle
		if outer {
			z = torosphere.ZoneOuterKnuckle
		}
		for k, theta := range floats.Span(make([]float64, ghostSamples), -0.08, g.Alpha+0.12) {
			ghost[k] = r2.Add(g.KnuckleCenter, d2.Pol{R: g.KnuckleRadius(outer), Theta: theta}.PolarToCartesian())
		}
		if err := addDashed(pl, ghost, zoneRGBA(z)); err != nil {
			return nil, err
		}
	}

	tangency, err := plotter.NewScatter(xys([]r2.Vec{g.InnerTangency, g.OuterTangency}, 1))
	if err != nil {
		return nil, err
	}
	tangency.GlyphStyle.Shape = draw.CircleGlyph{}
	tangency.GlyphStyle.Color = color.RGBA{R: 255, G: 215, A: 255} // gold
	tangency.GlyphStyle.Radius = vg.Points(4)
	pl.Add(tangency)
	pl.Legend.Add("Tangency points", tangency)

	centers := []r2.Vec{g.KnuckleCenter}
	if g.ZSphere >= -2*g.Depth() {
		centers = append(centers, g.SphereCenter())
	}
	markers, err := plotter.NewScatter(xys(centers, 1))
	if err != nil {
		return nil, err
	}
	markers.GlyphStyle.Shape = draw.TriangleGlyph{}
	markers.GlyphStyle.Color = color.Black
	markers.GlyphStyle.Radius = vg.Points(3)
	pl.Add(markers)
	pl.Legend.Add("Arc centers", markers)

	extent := d2.Set(append(prof[:len(prof):len(prof)], centers...))
	setAxes(pl, extent.Min(), extent.Max(), p.T)
	equalAspect(pl, width, height)
	if err := addSummary(pl, g); err != nil {
		return nil, err
	}
	return pl, nil
}

// SaveCrossSection writes the cross-section figure of g to path. The image
// format is taken from the file extension (png, svg, pdf...).
func SaveCrossSection(g torosphere.Geometry, arcRes int, width, height vg.Length, path string) error {
	pl, err := CrossSectionPlot(g, arcRes, width, height)
	if err != nil {
		return err
	}
	return pl.Save(width, height, path)
}

func addDashed(pl *plot.Plot, pts []r2.Vec, c color.Color) error {
	l, err := plotter.NewLine(xys(pts, 1))
	if err != nil {
		return err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(0.9)
	l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	pl.Add(l)
	return nil
}

// xys converts points to plotter values, scaling the radial coordinate by sign.
func xys(pts []r2.Vec, sign float64) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, v := range pts {
		out[i].X = sign * v.X
		out[i].Y = v.Y
	}
	return out
}

// setAxes fixes equal axis spans around the box.
func setAxes(pl *plot.Plot, lo, hi r2.Vec, margin float64) {
	lo.X = -hi.X // mirror half
	span := math.Max(hi.X-lo.X, hi.Y-lo.Y) + 4*margin
	mid := r2.Scale(0.5, r2.Add(lo, hi))
	pl.X.Min, pl.X.Max = mid.X-span/2, mid.X+span/2
	pl.Y.Min, pl.Y.Max = mid.Y-span/2, mid.Y+span/2
}

// equalAspect grows one axis range so data units along X and Y span the same
// length in the data area of a width×height canvas. Tick labels change with
// the ranges, so the fit is repeated a few times.
func equalAspect(pl *plot.Plot, width, height vg.Length) {
	c := draw.Canvas{
		Canvas:    new(recorder.Canvas),
		Rectangle: vg.Rectangle{Max: vg.Point{X: width, Y: height}},
	}
	for range 3 {
		da := pl.DataCanvas(c)
		dw, dh := float64(da.Max.X-da.Min.X), float64(da.Max.Y-da.Min.Y)
		if dw <= 0 || dh <= 0 {
			return
		}
		xs, ys := pl.X.Max-pl.X.Min, pl.Y.Max-pl.Y.Min
		switch {
		case xs/dw > ys/dh:
			grow(&pl.Y.Min, &pl.Y.Max, xs*dh/dw)
		case ys/dh > xs/dw:
			grow(&pl.X.Min, &pl.X.Max, ys*dw/dh)
		}
	}
}

// grow widens [lo,hi] about its middle to span.
func grow(lo, hi *float64, span float64) {
	mid := (*lo + *hi) / 2
	*lo, *hi = mid-span/2, mid+span/2
}

// summaryLabel is the derived geometry text of the figure.
func summaryLabel(g torosphere.Geometry) string {
	return fmt.Sprintf("Derived geometry\n"+
		"z_sc = %.1f\n"+
		"α = %.2f°  φ = %.2f°\n"+
		"Inner tangency: r=%.1f, z=%.1f\n"+
		"Outer tangency: r=%.1f, z=%.1f\n"+
		"Dome height above flange: %.1f",
		g.ZSphere, torosphere.RtoD(g.Alpha), torosphere.RtoD(g.Phi),
		g.InnerTangency.X, g.InnerTangency.Y, g.OuterTangency.X, g.OuterTangency.Y,
		g.ApexInner-g.Params.H)
}

// addSummary writes the derived geometry in the top right corner of the axes.
func addSummary(pl *plot.Plot, g torosphere.Geometry) error {
	pad := 0.02 * (pl.X.Max - pl.X.Min)
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: pl.X.Max - pad, Y: pl.Y.Max - pad}},
		Labels: []string{summaryLabel(g)},
	})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XRight
		labels.TextStyle[i].YAlign = text.YTop
	}
	pl.Add(labels)
	return nil
}
