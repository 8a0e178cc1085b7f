package render

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/soypat/torosphere"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

func TestCrossSectionEqualAspect(t *testing.T) {
	g := torosphere.Derive(torosphere.HeadParams{D: 1524, Rc: 1524, Rk: 100, T: 10, H: 50})
	for _, size := range [][2]vg.Length{{900, 800}, {600, 600}, {400, 900}} {
		w, h := size[0], size[1]
		pl, err := CrossSectionPlot(g, 16, w, h)
		if err != nil {
			t.Fatal(err)
		}
		da := pl.DataCanvas(draw.Canvas{
			Canvas:    new(recorder.Canvas),
			Rectangle: vg.Rectangle{Max: vg.Point{X: w, Y: h}},
		})
		xPerLen := (pl.X.Max - pl.X.Min) / float64(da.Max.X-da.Min.X)
		yPerLen := (pl.Y.Max - pl.Y.Min) / float64(da.Max.Y-da.Min.Y)
		if math.Abs(xPerLen/yPerLen-1) > 0.02 {
			t.Errorf("%vx%v: r and z scales differ, ratio %.4f", w, h, xPerLen/yPerLen)
		}
		// The whole section stays in view.
		bb := torosphere.SampleProfile(g, 16).Bounds()
		if pl.X.Min > -bb.Max.X || pl.X.Max < bb.Max.X || pl.Y.Min > bb.Min.Y || pl.Y.Max < bb.Max.Y {
			t.Errorf("%vx%v: axes [%g,%g]x[%g,%g] clip the section", w, h, pl.X.Min, pl.X.Max, pl.Y.Min, pl.Y.Max)
		}
	}
}

func TestSummaryLabel(t *testing.T) {
	g := torosphere.Derive(torosphere.HeadParams{D: 1524, Rc: 1524, Rk: 100, T: 10, H: 50})
	s := summaryLabel(g)
	for _, want := range []string{"z_sc", "α", "φ", "Inner tangency", "Outer tangency", "Dome height above flange"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
	if want := fmt.Sprintf("Dome height above flange: %.1f", g.ApexInner-50); !strings.Contains(s, want) {
		t.Errorf("summary %q missing %q", s, want)
	}
}
