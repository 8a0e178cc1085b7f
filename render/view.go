package render

import (
	"github.com/pkg/errors"
	"github.com/soypat/torosphere"
	"github.com/soypat/torosphere/revolve"
	"gonum.org/v1/plot/vg"
)

// View selects one of the head visualizations.
type View int

const (
	// View2D is the annotated cross-section figure.
	View2D View = iota
	// ViewSimple is the full revolved surface in a single color.
	ViewSimple
	// ViewZones is the full revolved surface colored by zone.
	ViewZones
	// ViewHalf is the half section θ∈[0,π] colored by zone with the wall
	// cross-section filled at both cut planes.
	ViewHalf
)

var viewNames = [...]string{
	View2D:     "2d",
	ViewSimple: "simple",
	ViewZones:  "zones",
	ViewHalf:   "half",
}

func (v View) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return "View(?)"
	}
	return viewNames[v]
}

// ParseView returns the view named s.
func ParseView(s string) (View, error) {
	for i, name := range viewNames {
		if name == s {
			return View(i), nil
		}
	}
	return -1, errors.Errorf("unknown view %q, want one of %v", s, viewNames)
}

// Request holds everything a view may need to draw a head.
type Request struct {
	Geometry      torosphere.Geometry
	Mesh          *revolve.Mesh
	ArcResolution int
	// Stride subsamples the mesh in both directions for 3D views.
	Stride        int
	Width, Height int
}

type renderFunc func(req Request, path string) error

var renderers = map[View]renderFunc{
	View2D:     render2D,
	ViewSimple: renderSimple,
	ViewZones:  renderZones,
	ViewHalf:   renderHalf,
}

// Render draws view v of the request to an image file at path.
func Render(v View, req Request, path string) error {
	fn, ok := renderers[v]
	if !ok {
		return errors.Errorf("unknown view %d", v)
	}
	if req.Width < 1 || req.Height < 1 {
		return errors.Errorf("invalid image size %dx%d", req.Width, req.Height)
	}
	if v != View2D && req.Mesh == nil {
		return errors.Errorf("view %v requires a mesh", v)
	}
	return fn(req, path)
}

// Figure pixels are converted to lengths at 96 dpi.
func render2D(req Request, path string) error {
	const dpi = 96
	w := vg.Length(req.Width) * vg.Inch / dpi
	h := vg.Length(req.Height) * vg.Inch / dpi
	return SaveCrossSection(req.Geometry, req.ArcResolution, w, h, path)
}

func renderSimple(req Request, path string) error {
	w := req.Mesh.FullWindow()
	w.Stride = req.Stride
	s := Scene{
		Layers: []Layer{{Color: singleHex, Triangles: Triangulate(req.Mesh, w)}},
		View:   OrbitView(28, -45, 3.2),
		Width:  req.Width, Height: req.Height, Scale: 2,
	}
	return s.SavePNG(path)
}

func renderZones(req Request, path string) error {
	w := req.Mesh.FullWindow()
	w.Stride = req.Stride
	s := Scene{
		Layers: zoneLayers(TriangulateZones(req.Mesh, w, req.ArcResolution)),
		View:   OrbitView(28, -45, 3.2),
		Width:  req.Width, Height: req.Height, Scale: 2,
	}
	return s.SavePNG(path)
}

func renderHalf(req Request, path string) error {
	w := req.Mesh.HalfWindow()
	w.Stride = req.Stride
	layers := zoneLayers(TriangulateZones(req.Mesh, w, req.ArcResolution))
	prof := req.Mesh.Profile()
	// Odd azimuth divisions end the half window short of π.
	end := req.Mesh.Theta()[req.Mesh.HalfColumns()-1]
	cut := append(CutFace(prof, req.ArcResolution, 0), CutFace(prof, req.ArcResolution, end)...)
	layers = append(layers, Layer{Color: cutFaceHex, Triangles: cut})
	s := Scene{
		Layers: layers,
		View:   OrbitView(22, 15, 3.2),
		Width:  req.Width, Height: req.Height, Scale: 2,
	}
	return s.SavePNG(path)
}

func zoneLayers(zones [][]Triangle3) []Layer {
	layers := make([]Layer, len(zones))
	for z, tris := range zones {
		layers[z] = Layer{Color: ZoneColor(torosphere.Zone(z)), Triangles: tris}
	}
	return layers
}
