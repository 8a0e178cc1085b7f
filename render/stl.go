package render

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/hschendel/stl"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// ReadSTL reads the triangles of an ASCII or binary STL file.
func ReadSTL(path string) ([]Triangle3, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(solid.Triangles) == 0 {
		return nil, errors.Errorf("%s: no triangles", path)
	}
	model := make([]Triangle3, len(solid.Triangles))
	for i, t := range solid.Triangles {
		for j, v := range t.Vertices {
			model[i][j] = r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
		}
	}
	return model, nil
}

// CreateSTL writes model triangles to a binary STL file at path.
func CreateSTL(path string, model []Triangle3) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(file, 50*trianglesInBuffer)
	if err = WriteSTL(bw, model); err != nil {
		file.Close()
		return err
	}
	if err = bw.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteSTL writes model triangles to a writer in binary STL file format.
// Triangles whose single precision coordinates overflow or are NaN are
// rejected.
func WriteSTL(w io.Writer, model []Triangle3) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	header := stlHeader{
		Count: uint32(len(model)), // size of stl triangles is 50
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	var (
		d   stlTriangle
		buf [50 * trianglesInBuffer]byte
		nb  int
	)
	for i, triangle := range model {
		n := triangle.Normal()
		d.Normal = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
		d.Vertex1 = [3]float32{float32(triangle[0].X), float32(triangle[0].Y), float32(triangle[0].Z)}
		d.Vertex2 = [3]float32{float32(triangle[1].X), float32(triangle[1].Y), float32(triangle[1].Z)}
		d.Vertex3 = [3]float32{float32(triangle[2].X), float32(triangle[2].Y), float32(triangle[2].Z)}
		if err := d.validate(); err != nil {
			return errors.Wrapf(err, "triangle %d", i)
		}
		d.put(buf[nb:])
		nb += 50
		if nb == len(buf) {
			if _, err := w.Write(buf[:nb]); err != nil {
				return err
			}
			nb = 0
		}
	}
	_, err := w.Write(buf[:nb])
	return err
}

const trianglesInBuffer = 1 << 10

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

func (t stlTriangle) put(b []byte) {
	if len(b) < 50 {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

func (t stlTriangle) validate() error {
	if bad3F32(t.Vertex1) || bad3F32(t.Vertex2) || bad3F32(t.Vertex3) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	if bad3F32(t.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	return nil
}
