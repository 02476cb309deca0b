// Package index is an R-tree over geometry envelopes.
//
// The store uses it to answer bounding box queries without decoding every
// stored value. Entries are keyed by a caller-chosen comparable id:
//
//	ix := index.New[string]()
//	ix.Insert("harbor", g)
//	ids := ix.Search(geom.NewEnvelope(-71.5, 42.0, -71.0, 42.5))
//
// An Index is not safe for concurrent use.
package index

import (
	"math"

	"github.com/arloliu/wkb/geom"
	"github.com/dhconnelly/rtreego"
)

// R-tree node fan-out.
const (
	minChildren = 25
	maxChildren = 50
)

// entry wraps an id for R-tree storage.
type entry[K comparable] struct {
	id  K
	env geom.Envelope
}

// Bounds implements rtreego.Spatial.
func (e *entry[K]) Bounds() rtreego.Rect {
	rect, _ := toRect(e.env)
	return rect
}

// Index maps ids to envelopes and finds the ids whose envelopes intersect a
// query box.
type Index[K comparable] struct {
	tree    *rtreego.Rtree
	entries map[K]*entry[K]
}

// New creates an empty index.
func New[K comparable]() *Index[K] {
	return &Index[K]{
		tree:    rtreego.NewTree(2, minChildren, maxChildren),
		entries: make(map[K]*entry[K]),
	}
}

// Insert indexes g under id, replacing any previous entry for id.
//
// Empty geometries have no envelope and are not indexed; Insert reports
// whether g was indexed.
func (ix *Index[K]) Insert(id K, g geom.Geometry) bool {
	return ix.InsertEnvelope(id, g.Envelope())
}

// InsertEnvelope indexes env under id, replacing any previous entry for id.
// Empty and non-finite envelopes are not indexed.
func (ix *Index[K]) InsertEnvelope(id K, env geom.Envelope) bool {
	ix.Delete(id)
	if !indexable(env) {
		return false
	}

	e := &entry[K]{id: id, env: env}
	ix.tree.Insert(e)
	ix.entries[id] = e

	return true
}

// Delete removes id and reports whether it was present.
func (ix *Index[K]) Delete(id K) bool {
	e, ok := ix.entries[id]
	if !ok {
		return false
	}
	delete(ix.entries, id)

	return ix.tree.Delete(e)
}

// Envelope returns the envelope indexed for id.
func (ix *Index[K]) Envelope(id K) (geom.Envelope, bool) {
	e, ok := ix.entries[id]
	if !ok {
		return geom.EmptyEnvelope(), false
	}

	return e.env, true
}

// Search returns the ids whose envelopes intersect query, touching edges
// included. The order of the result is unspecified.
func (ix *Index[K]) Search(query geom.Envelope) []K {
	if query.IsEmpty() || ix.tree.Size() == 0 {
		return nil
	}

	rect, err := toRect(clampEnvelope(query))
	if err != nil {
		return nil
	}

	candidates := ix.tree.SearchIntersect(rect)
	ids := make([]K, 0, len(candidates))
	for _, c := range candidates {
		e, _ := c.(*entry[K])
		// rects are padded, so confirm against the exact envelope
		if e.env.Intersects(query) {
			ids = append(ids, e.id)
		}
	}

	return ids
}

// Len returns the number of indexed ids.
func (ix *Index[K]) Len() int {
	return len(ix.entries)
}

func indexable(env geom.Envelope) bool {
	if env.IsEmpty() {
		return false
	}

	for _, v := range []float64{env.MinX, env.MinY, env.MaxX, env.MaxY} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}

	return true
}

func clampEnvelope(env geom.Envelope) geom.Envelope {
	clamp := func(v float64) float64 {
		return math.Max(-math.MaxFloat64/4, math.Min(math.MaxFloat64/4, v))
	}

	return geom.Envelope{
		MinX: clamp(env.MinX), MinY: clamp(env.MinY),
		MaxX: clamp(env.MaxX), MaxY: clamp(env.MaxY),
	}
}

// toRect converts env to an R-tree rect. The R-tree rejects zero extents, so
// every side is pushed out by one ulp; points and axis-aligned lines become
// tiny boxes and touching envelopes overlap.
func toRect(env geom.Envelope) (rtreego.Rect, error) {
	minX := math.Nextafter(env.MinX, math.Inf(-1))
	minY := math.Nextafter(env.MinY, math.Inf(-1))
	maxX := math.Nextafter(env.MaxX, math.Inf(1))
	maxY := math.Nextafter(env.MaxY, math.Inf(1))

	return rtreego.NewRect(rtreego.Point{minX, minY}, []float64{maxX - minX, maxY - minY})
}
