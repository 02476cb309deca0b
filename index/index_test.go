package index

import (
	"math"
	"slices"
	"testing"

	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
	"github.com/stretchr/testify/require"
)

func point(t *testing.T, x, y float64) geom.Geometry {
	t.Helper()
	p, err := geom.NewFactory(nil).CreatePoint(geom.SequenceOf(format.XY, geom.Coord{X: x, Y: y}))
	require.NoError(t, err)

	return p
}

func line(t *testing.T, coords ...geom.Coord) geom.Geometry {
	t.Helper()
	ls, err := geom.NewFactory(nil).CreateLineString(geom.SequenceOf(format.XY, coords...))
	require.NoError(t, err)

	return ls
}

func sorted(ids []string) []string {
	slices.Sort(ids)
	return ids
}

func TestIndexSearch(t *testing.T) {
	ix := New[string]()
	require.True(t, ix.Insert("a", point(t, 1, 1)))
	require.True(t, ix.Insert("b", point(t, 5, 5)))
	require.True(t, ix.Insert("h", line(t, geom.Coord{X: 0, Y: 10}, geom.Coord{X: 10, Y: 10})))
	require.True(t, ix.Insert("v", line(t, geom.Coord{X: 20, Y: 0}, geom.Coord{X: 20, Y: 3})))
	require.Equal(t, 4, ix.Len())

	tests := []struct {
		name  string
		query geom.Envelope
		want  []string
	}{
		{name: "All", query: geom.NewEnvelope(-100, -100, 100, 100), want: []string{"a", "b", "h", "v"}},
		{name: "Corner", query: geom.NewEnvelope(0, 0, 2, 2), want: []string{"a"}},
		{name: "TouchingEdge", query: geom.NewEnvelope(5, 5, 6, 6), want: []string{"b"}},
		{name: "PointQuery", query: geom.NewEnvelope(1, 1, 1, 1), want: []string{"a"}},
		{name: "HorizontalLine", query: geom.NewEnvelope(4, 9, 6, 11), want: []string{"h"}},
		{name: "VerticalLine", query: geom.NewEnvelope(19, 1, 21, 2), want: []string{"v"}},
		{name: "Miss", query: geom.NewEnvelope(30, 30, 40, 40), want: []string{}},
		{name: "NearMiss", query: geom.NewEnvelope(1.0000001, 1.0000001, 2, 2), want: []string{}},
		{name: "Empty", query: geom.EmptyEnvelope(), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Search(tt.query)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.Equal(t, tt.want, sorted(got))
		})
	}
}

func TestIndexInfiniteQuery(t *testing.T) {
	ix := New[int]()
	ix.Insert(1, point(t, 1e300, -1e300))

	got := ix.Search(geom.NewEnvelope(math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1)))
	require.Equal(t, []int{1}, got)
}

func TestIndexInsertReplaces(t *testing.T) {
	ix := New[string]()
	ix.Insert("a", point(t, 1, 1))
	ix.Insert("a", point(t, 50, 50))

	require.Equal(t, 1, ix.Len())
	require.Empty(t, ix.Search(geom.NewEnvelope(0, 0, 2, 2)))
	require.Equal(t, []string{"a"}, ix.Search(geom.NewEnvelope(49, 49, 51, 51)))

	env, ok := ix.Envelope("a")
	require.True(t, ok)
	require.Equal(t, geom.NewEnvelope(50, 50, 50, 50), env)
}

func TestIndexSkipsEmpty(t *testing.T) {
	ix := New[string]()

	empty, err := geom.NewFactory(nil).CreateLineString(geom.SequenceOf(format.XY))
	require.NoError(t, err)
	require.False(t, ix.Insert("e", empty))
	require.False(t, ix.InsertEnvelope("inf", geom.NewEnvelope(0, 0, math.Inf(1), 1)))
	require.Zero(t, ix.Len())

	_, ok := ix.Envelope("e")
	require.False(t, ok)
}

func TestIndexDelete(t *testing.T) {
	ix := New[string]()
	for i, id := range []string{"a", "b", "c"} {
		ix.Insert(id, point(t, float64(i), float64(i)))
	}

	require.True(t, ix.Delete("b"))
	require.False(t, ix.Delete("b"))
	require.False(t, ix.Delete("missing"))
	require.Equal(t, 2, ix.Len())
	require.Equal(t, []string{"a", "c"}, sorted(ix.Search(geom.NewEnvelope(-1, -1, 3, 3))))
}

func TestIndexMany(t *testing.T) {
	ix := New[int]()
	for i := range 1000 {
		ix.Insert(i, point(t, float64(i%100), float64(i/100)))
	}
	require.Equal(t, 1000, ix.Len())

	got := ix.Search(geom.NewEnvelope(10, 2, 12, 3))
	slices.Sort(got)
	require.Equal(t, []int{210, 211, 212, 310, 311, 312}, got)
}
