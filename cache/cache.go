// Package cache memoizes head meshes keyed by their parameters and
// resolutions so interactive callers can redraw without rebuilding.
package cache

import (
	"math"
	"strconv"
	"strings"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/soypat/torosphere"
	"github.com/soypat/torosphere/revolve"
	"golang.org/x/sync/singleflight"
)

// Key identifies a built mesh.
type Key struct {
	Params           torosphere.HeadParams
	ArcResolution    int
	AzimuthDivisions int
}

// String encodes k exactly, floats by their bit patterns.
func (k Key) String() string {
	var sb strings.Builder
	for _, f := range []float64{k.Params.D, k.Params.Rc, k.Params.Rk, k.Params.T, k.Params.H} {
		sb.WriteString(strconv.FormatUint(math.Float64bits(f), 16))
		sb.WriteByte(':')
	}
	sb.WriteString(strconv.Itoa(k.ArcResolution))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(k.AzimuthDivisions))
	return sb.String()
}

// Entry is the result of building a head. Entries are shared between
// callers and must not be modified.
type Entry struct {
	Geometry torosphere.Geometry
	Profile  torosphere.Profile
	Mesh     *revolve.Mesh
}

// Build runs the full pipeline for k: validate, derive, sample and revolve.
func Build(k Key) (*Entry, error) {
	if k.ArcResolution < 1 {
		return nil, errors.Wrapf(torosphere.ErrOutOfRange, "arc resolution must be positive (got %d)", k.ArcResolution)
	}
	g, err := torosphere.NewGeometry(k.Params)
	if err != nil {
		return nil, err
	}
	prof := torosphere.SampleProfile(g, k.ArcResolution)
	m, err := revolve.Revolve(prof, k.AzimuthDivisions)
	if err != nil {
		return nil, err
	}
	return &Entry{Geometry: g, Profile: prof, Mesh: m}, nil
}

// Meshes is a bounded cache of built heads safe for concurrent use.
// Concurrent requests for the same key build it once.
type Meshes struct {
	cache *ristretto.Cache[string, *Entry]
	group singleflight.Group
}

// New returns a cache holding up to maxEntries built heads.
func New(maxEntries int64) (*Meshes, error) {
	if maxEntries < 1 {
		return nil, errors.Errorf("cache must hold at least one entry (got %d)", maxEntries)
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, *Entry]{
		NumCounters:        10 * maxEntries,
		MaxCost:            maxEntries,
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating mesh cache")
	}
	return &Meshes{cache: c}, nil
}

// Get returns the entry for k, building and storing it on a miss.
// Build errors are returned and never cached.
func (m *Meshes) Get(k Key) (*Entry, error) {
	key := k.String()
	if e, ok := m.cache.Get(key); ok {
		glog.V(2).Infof("mesh cache hit %+v", k)
		return e, nil
	}
	glog.V(2).Infof("mesh cache miss %+v", k)
	v, err, _ := m.group.Do(key, func() (interface{}, error) {
		e, err := Build(k)
		if err != nil {
			return nil, err
		}
		m.cache.Set(key, e, 1)
		m.cache.Wait()
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Entry), nil
}

// Invalidate removes the entry for k.
func (m *Meshes) Invalidate(k Key) {
	m.cache.Del(k.String())
	m.cache.Wait()
}

// Clear removes every entry.
func (m *Meshes) Clear() { m.cache.Clear() }

// Ratio returns the cache hit ratio.
func (m *Meshes) Ratio() float64 { return m.cache.Metrics.Ratio() }

// Close stops the cache goroutines. The cache must not be used afterwards.
func (m *Meshes) Close() { m.cache.Close() }
