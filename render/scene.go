package render

import (
	"image"
	"math"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/soypat/torosphere"
	"github.com/soypat/torosphere/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Layer is a set of triangles drawn with a single color.
type Layer struct {
	Color     string // hex color
	Triangles []Triangle3
}

// Scene is a set of layers drawn together with a shared camera. Layers are
// fit in a bi-unit cube centered at the origin before drawing.
type Scene struct {
	Layers []Layer
	View   ViewConfig
	// Width and Height of the output image in pixels.
	Width, Height int
	// Supersampling factor for antialiasing. Values below 1 mean 1.
	Scale int
}

// ViewConfig positions the camera. Eye, LookAt and Up are in the normalized
// bi-unit space of the scene.
type ViewConfig struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eye       r3.Vec
	Near, Far float64
}

// defaultView is an iso view.
var defaultView = ViewConfig{
	Up:   r3.Vec{Z: 1},
	Eye:  d3.Elem(2.4),
	Near: 1,
	Far:  10,
}

// OrbitView returns a camera at distance dist from the origin with the given
// elevation and azimuth in degrees, Z being up.
func OrbitView(elevation, azimuth, dist float64) ViewConfig {
	se, ce := math.Sincos(torosphere.DtoR(elevation))
	sa, ca := math.Sincos(torosphere.DtoR(azimuth))
	return ViewConfig{
		Up:   r3.Vec{Z: 1},
		Eye:  r3.Vec{X: dist * ce * ca, Y: dist * ce * sa, Z: dist * se},
		Near: dist / 4,
		Far:  dist * 4,
	}
}

// Image renders the scene.
func (s *Scene) Image() (image.Image, error) {
	if s.Width < 1 || s.Height < 1 {
		return nil, errors.Errorf("invalid image size %dx%d", s.Width, s.Height)
	}
	var all d3.Set
	for _, l := range s.Layers {
		for _, t := range l.Triangles {
			all = append(all, t[:]...)
		}
	}
	if len(all) == 0 {
		return nil, errors.New("empty scene")
	}
	const fovy = 30 // vertical field of view in degrees
	scale := max(s.Scale, 1)
	view := s.View
	if view == (ViewConfig{}) {
		view = defaultView
	}
	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)          // camera position
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z) // view center position
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
	)
	// fit scene in a bi-unit cube centered at the origin.
	lo, hi := all.Min(), all.Max()
	mid := r3.Scale(0.5, r3.Add(lo, hi))
	size := r3.Sub(hi, lo)
	fit := 2 / math.Max(size.X, math.Max(size.Y, size.Z))

	context := fauxgl.NewContext(s.Width*scale, s.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor(backgroundHex))
	// Half sections expose back faces through the cut.
	context.Cull = fauxgl.CullNone
	aspect := float64(s.Width) / float64(s.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	context.Shader = shader
	for _, l := range s.Layers {
		if len(l.Triangles) == 0 {
			continue
		}
		tris := make([]*fauxgl.Triangle, len(l.Triangles))
		for i, t := range l.Triangles {
			tris[i] = fauxgl.NewTriangleForPoints(
				fitVector(t[0], mid, fit),
				fitVector(t[1], mid, fit),
				fitVector(t[2], mid, fit),
			)
		}
		shader.ObjectColor = fauxgl.HexColor(l.Color)
		context.DrawMesh(fauxgl.NewTriangleMesh(tris))
	}
	// downsample image for antialiasing
	img := context.Image()
	if scale > 1 {
		img = resize.Resize(uint(s.Width), uint(s.Height), img, resize.Bilinear)
	}
	return img, nil
}

// SavePNG renders the scene to a PNG file at path.
func (s *Scene) SavePNG(path string) error {
	img, err := s.Image()
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}

func fitVector(v, mid r3.Vec, fit float64) fauxgl.Vector {
	v = r3.Scale(fit, r3.Sub(v, mid))
	return fauxgl.V(v.X, v.Y, v.Z)
}
