package render_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/torosphere"
	"github.com/soypat/torosphere/render"
)

func TestParseView(t *testing.T) {
	for _, v := range []render.View{render.View2D, render.ViewSimple, render.ViewZones, render.ViewHalf} {
		got, err := render.ParseView(v.String())
		if err != nil || got != v {
			t.Errorf("ParseView(%q) = %v, %v", v.String(), got, err)
		}
	}
	if _, err := render.ParseView("wireframe"); err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestZoneColor(t *testing.T) {
	seen := map[string]bool{}
	for _, z := range torosphere.Zones() {
		c := render.ZoneColor(z)
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("%v: bad color %q", z, c)
		}
		if seen[c] {
			t.Errorf("%v: color %s reused", z, c)
		}
		seen[c] = true
	}
}

func TestSceneImage(t *testing.T) {
	const w, h = 96, 64
	m := headMesh(t, fdHead, 8, 16)
	s := render.Scene{
		Layers: []render.Layer{{Color: "#4A90D9", Triangles: render.Triangulate(m, m.FullWindow())}},
		Width:  w,
		Height: h,
		Scale:  2,
	}
	img, err := s.Image()
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("image size %v, want %dx%d", b, w, h)
	}
	// The head is centered, so the middle pixel is not background.
	bg := color.RGBAModel.Convert(color.White)
	if center := color.RGBAModel.Convert(img.At(w/2, h/2)); center == bg {
		t.Error("center pixel is background, head not drawn")
	}
	if _, err := (&render.Scene{Width: w, Height: h}).Image(); err == nil {
		t.Error("expected error for empty scene")
	}
}

func TestRenderViews(t *testing.T) {
	const arcRes = 8
	g := torosphere.Derive(fdHead)
	m := headMesh(t, fdHead, arcRes, 12)
	dir := t.TempDir()
	for _, v := range []render.View{render.View2D, render.ViewSimple, render.ViewZones, render.ViewHalf} {
		path := filepath.Join(dir, v.String()+".png")
		req := render.Request{
			Geometry:      g,
			Mesh:          m,
			ArcResolution: arcRes,
			Stride:        2,
			Width:         400,
			Height:        360,
		}
		if err := render.Render(v, req, path); err != nil {
			t.Fatalf("%v: %v", v, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%v: empty image file", v)
		}
	}
	if err := render.Render(render.ViewZones, render.Request{Width: 10, Height: 10}, filepath.Join(dir, "x.png")); err == nil {
		t.Error("expected error for 3D view without mesh")
	}
}
