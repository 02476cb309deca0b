package reader

import (
	"encoding/hex"
	"math"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/internal/cursor"
	"github.com/arloliu/wkb/internal/options"
	"github.com/arloliu/wkb/section"
	"github.com/cockroachdb/errors"
)

// Reader decodes WKB and EWKB records into geom.Geometry values.
//
// A Reader holds configuration and a scratch ordinate buffer. All other
// decode state is local to a call, so a failed decode leaves nothing behind
// and the Reader can be reused. A Reader is not safe for concurrent use.
type Reader struct {
	cfg       Config
	ordValues []float64
}

// decodeState is the per-call decode state.
type decodeState struct {
	cur      *cursor.Cursor
	orderSet bool
	depth    int
}

// New creates a Reader. The defaults are lenient mode, DefaultMaxDepth,
// DefaultMaxElements, borrowed coordinates and a floating precision factory.
func New(opts ...Option) (*Reader, error) {
	r := &Reader{cfg: defaultConfig()}
	if err := options.Apply(&r.cfg, opts...); err != nil {
		return nil, err
	}
	r.ordValues = make([]float64, format.XY)

	return r, nil
}

// Strict reports whether the reader runs in strict mode.
func (r *Reader) Strict() bool {
	return r.cfg.strict
}

// Factory returns the factory the reader builds geometries with.
func (r *Reader) Factory() geom.Factory {
	return r.cfg.factory
}

// Read decodes the record at the start of data. Bytes after the record are
// ignored.
//
// Unless WithOwnedCoordinates is set, the returned geometry may borrow data;
// see geom.Geometry.Materialize.
func (r *Reader) Read(data []byte) (geom.Geometry, error) {
	g, _, err := r.ReadPrefix(data)

	return g, err
}

// ReadPrefix decodes the record at the start of data and also returns the
// number of bytes it occupied.
func (r *Reader) ReadPrefix(data []byte) (geom.Geometry, int, error) {
	st := &decodeState{cur: cursor.New(data, endian.GetBigEndianEngine())}

	g, err := r.readGeometry(st, 0)
	if err != nil {
		return nil, 0, err
	}

	return g, st.cur.Pos(), nil
}

// ReadHex decodes a hex-encoded record. Both letter cases are accepted.
//
// The hex text is decoded into a fresh buffer, so the result never borrows s.
func (r *Reader) ReadHex(s string) (geom.Geometry, error) {
	data, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}

	return r.Read(data)
}

// DecodeHex converts hex text to bytes, failing with errs.ErrInvalidHexInput
// on odd length or a non-hex character.
func DecodeHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(errs.ErrInvalidHexInput, "%v", err)
	}

	return data, nil
}

// readGeometry decodes one full record. When expect is non-zero the record
// must be of that type.
func (r *Reader) readGeometry(st *decodeState, expect format.GeometryType) (geom.Geometry, error) {
	start := st.cur.Pos()

	st.depth++
	defer func() { st.depth-- }()
	if st.depth > r.cfg.maxDepth {
		return nil, errs.Atf(start, errs.ErrRecursionLimitExceeded,
			"nesting depth exceeds %d", r.cfg.maxDepth)
	}

	if err := r.readByteOrder(st); err != nil {
		return nil, err
	}

	typeOffset := st.cur.Pos()
	word, err := st.cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	desc := section.TypeWord(word).Descriptor()

	srid := 0
	if desc.HasSRID {
		v, err := st.cur.ReadInt32()
		if err != nil {
			return nil, err
		}
		srid = int(v)
	}

	if !desc.Type.IsWireType() {
		return nil, errs.Atf(typeOffset, errs.ErrUnknownGeometryType,
			"unknown geometry type code %d", uint8(desc.Type))
	}
	if expect != 0 && desc.Type != expect {
		return nil, errs.Atf(start, errs.ErrTypeMismatch,
			"expected %s, got %s", expect, desc.Type)
	}

	r.ensureScratch(desc.Dimension)

	var g geom.Geometry
	switch desc.Type {
	case format.TypePoint:
		g, err = r.readPoint(st, desc.Dimension)
	case format.TypeLineString:
		g, err = r.readLineString(st, desc.Dimension)
	case format.TypePolygon:
		g, err = r.readPolygon(st, desc.Dimension)
	case format.TypeMultiPoint:
		g, err = r.readMultiPoint(st, desc.Dimension)
	case format.TypeMultiLineString:
		g, err = r.readMultiLineString(st, desc.Dimension)
	case format.TypeMultiPolygon:
		g, err = r.readMultiPolygon(st, desc.Dimension)
	case format.TypeGeometryCollection:
		g, err = r.readGeometryCollection(st, desc.Dimension)
	default:
		return nil, errs.Atf(typeOffset, errs.ErrUnknownGeometryType, "unknown geometry type %s", desc.Type)
	}
	if err != nil {
		return nil, errs.At(start, err)
	}

	if srid != 0 {
		g.SetSRID(srid)
	}

	return g, nil
}

// readByteOrder consumes the byte order marker of a record.
//
// The first marker fixes the order for the rest of the tree. An unrecognized
// marker read leniently fixes the order already in effect.
func (r *Reader) readByteOrder(st *decodeState) error {
	offset := st.cur.Pos()
	marker, err := st.cur.ReadByte()
	if err != nil {
		return err
	}

	engine, ok := endian.EngineForMarker(marker)
	if !ok {
		if r.cfg.strict {
			return errs.Atf(offset, errs.ErrMalformedHeader, "unrecognized byte order marker 0x%02x", marker)
		}
		// the current order now decodes this record, so it is fixed as well
		st.orderSet = true

		return nil
	}

	if st.orderSet && engine != st.cur.Engine() {
		return errs.Atf(offset, errs.ErrMixedByteOrder, "record switches from %s to %s",
			endian.Name(st.cur.Engine()), endian.Name(engine))
	}
	st.cur.SetEngine(engine)
	st.orderSet = true

	return nil
}

// ensureScratch grows the scratch ordinate buffer to hold one coordinate of dim.
func (r *Reader) ensureScratch(dim format.Dimension) {
	if len(r.ordValues) < int(dim) {
		r.ordValues = make([]float64, dim)
	}
}

// readCount reads a uint32 count and checks it against limit and against the
// bytes left, given that each counted item takes at least minSize bytes.
// A limit of 0 means unlimited.
func (r *Reader) readCount(st *decodeState, minSize, limit int) (int, error) {
	offset := st.cur.Pos()
	v, err := st.cur.ReadUint32()
	if err != nil {
		return 0, err
	}

	// compare as uint64 so counts above MaxInt32 cannot wrap on 32-bit int
	if limit > 0 && uint64(v) > uint64(limit) {
		return 0, errs.Atf(offset, errs.ErrTooManyElements, "count %d exceeds limit %d", v, limit)
	}
	if uint64(v) > uint64(st.cur.Remaining()/minSize) {
		return 0, errs.Atf(offset, errs.ErrOutOfBounds,
			"count %d needs at least %d bytes, %d remaining", v, uint64(v)*uint64(minSize), st.cur.Remaining())
	}

	return int(v), nil
}

// readCoordinates reads n coordinates of dim, as a view over the input or as
// an owned copy.
func (r *Reader) readCoordinates(st *decodeState, n int, dim format.Dimension) (geom.CoordSeq, error) {
	stride := dim.Stride()
	if n > st.cur.Remaining()/stride {
		return nil, errs.Atf(st.cur.Pos(), errs.ErrOutOfBounds,
			"%d coordinates need %d bytes, %d remaining", n, n*stride, st.cur.Remaining())
	}

	engine := st.cur.Engine()
	view, err := st.cur.Take(n * stride)
	if err != nil {
		return nil, err
	}

	pm := r.cfg.factory.PrecisionModel()
	if !r.cfg.owned {
		return geom.NewViewSequence(view, engine, dim, n, pm), nil
	}

	seq := geom.NewSequence(dim, n)
	flat := seq.Flat()
	ords := r.ordValues[:dim]
	for i := range n {
		coord := view[i*stride:]
		for ord := range ords {
			ords[ord] = math.Float64frombits(engine.Uint64(coord[ord*8:]))
		}
		ords[geom.X] = pm.MakePrecise(ords[geom.X])
		ords[geom.Y] = pm.MakePrecise(ords[geom.Y])
		copy(flat[i*int(dim):], ords)
	}

	return seq, nil
}

// readSequence reads a point count followed by that many coordinates.
func (r *Reader) readSequence(st *decodeState, dim format.Dimension) (geom.CoordSeq, error) {
	n, err := r.readCount(st, dim.Stride(), 0)
	if err != nil {
		return nil, err
	}

	return r.readCoordinates(st, n, dim)
}

func (r *Reader) readPoint(st *decodeState, dim format.Dimension) (*geom.Point, error) {
	seq, err := r.readCoordinates(st, 1, dim)
	if err != nil {
		return nil, err
	}

	return r.cfg.factory.CreatePoint(seq)
}

func (r *Reader) readLineString(st *decodeState, dim format.Dimension) (*geom.LineString, error) {
	offset := st.cur.Pos()
	seq, err := r.readSequence(st, dim)
	if err != nil {
		return nil, err
	}

	if !r.cfg.strict && seq.Len() == 1 {
		seq = geom.Extend(seq, 2)
		r.notify(Repair{
			Kind:   RepairLineStringExtended,
			Type:   format.TypeLineString,
			Offset: offset,
			Before: 1,
			After:  2,
		})
	}

	return r.cfg.factory.CreateLineString(seq)
}

func (r *Reader) readRing(st *decodeState, dim format.Dimension) (*geom.LinearRing, error) {
	offset := st.cur.Pos()
	seq, err := r.readSequence(st, dim)
	if err != nil {
		return nil, err
	}

	if !r.cfg.strict && !geom.IsRing(seq) {
		before := seq.Len()
		kind := RepairRingClosed
		if before < geom.MinRingSize {
			kind = RepairRingPadded
		}
		seq = geom.EnsureValidRing(seq)
		r.notify(Repair{
			Kind:   kind,
			Type:   format.TypeLinearRing,
			Offset: offset,
			Before: before,
			After:  seq.Len(),
		})
	}

	ring, err := r.cfg.factory.CreateLinearRing(seq)
	if err != nil {
		return nil, errs.At(offset, err)
	}

	return ring, nil
}

func (r *Reader) readPolygon(st *decodeState, dim format.Dimension) (*geom.Polygon, error) {
	numRings, err := r.readCount(st, section.CountSize, r.cfg.maxElements)
	if err != nil {
		return nil, err
	}
	if numRings == 0 {
		return r.cfg.factory.CreatePolygon(dim, nil, nil)
	}

	shell, err := r.readRing(st, dim)
	if err != nil {
		return nil, err
	}

	var holes []*geom.LinearRing
	if numRings > 1 {
		holes = make([]*geom.LinearRing, numRings-1)
		for i := range holes {
			if holes[i], err = r.readRing(st, dim); err != nil {
				return nil, err
			}
		}
	}

	return r.cfg.factory.CreatePolygon(dim, shell, holes)
}

func (r *Reader) readMultiPoint(st *decodeState, dim format.Dimension) (*geom.MultiPoint, error) {
	points, err := readMembers[*geom.Point](r, st, format.TypeMultiPoint)
	if err != nil {
		return nil, err
	}

	return r.cfg.factory.CreateMultiPoint(dim, points)
}

func (r *Reader) readMultiLineString(st *decodeState, dim format.Dimension) (*geom.MultiLineString, error) {
	lines, err := readMembers[*geom.LineString](r, st, format.TypeMultiLineString)
	if err != nil {
		return nil, err
	}

	return r.cfg.factory.CreateMultiLineString(dim, lines)
}

func (r *Reader) readMultiPolygon(st *decodeState, dim format.Dimension) (*geom.MultiPolygon, error) {
	polygons, err := readMembers[*geom.Polygon](r, st, format.TypeMultiPolygon)
	if err != nil {
		return nil, err
	}

	return r.cfg.factory.CreateMultiPolygon(dim, polygons)
}

func (r *Reader) readGeometryCollection(st *decodeState, dim format.Dimension) (*geom.GeometryCollection, error) {
	geoms, err := readMembers[geom.Geometry](r, st, format.TypeGeometryCollection)
	if err != nil {
		return nil, err
	}

	return r.cfg.factory.CreateGeometryCollection(dim, geoms)
}

// readMembers reads the member count of container and then each member
// record. Multi* members must be of the container's element type.
func readMembers[T geom.Geometry](r *Reader, st *decodeState, container format.GeometryType) ([]T, error) {
	n, err := r.readCount(st, section.MinRecordSize, r.cfg.maxElements)
	if err != nil {
		return nil, err
	}

	expect, _ := container.ElementType()
	members := make([]T, n)
	for i := range members {
		offset := st.cur.Pos()
		g, err := r.readGeometry(st, expect)
		if err != nil {
			if errors.Is(err, errs.ErrTypeMismatch) {
				return nil, errs.At(offset, errors.Wrapf(err, "%s member %d", container, i))
			}

			return nil, err
		}

		m, ok := g.(T)
		if !ok {
			return nil, errs.Atf(offset, errs.ErrTypeMismatch, "%s member %d has type %s", container, i, g.Type())
		}
		members[i] = m
	}

	return members, nil
}

func (r *Reader) notify(rep Repair) {
	if r.cfg.observer != nil {
		r.cfg.observer(rep)
	}
}
