package geom

// MinRingSize is the smallest number of points in a non-empty linear ring.
const MinRingSize = 4

// IsClosed reports whether the first and last coordinates of seq have the
// same X and Y. Empty sequences are closed.
func IsClosed(seq CoordSeq) bool {
	n := seq.Len()
	if n == 0 {
		return true
	}

	return seq.Ordinate(0, X) == seq.Ordinate(n-1, X) &&
		seq.Ordinate(0, Y) == seq.Ordinate(n-1, Y)
}

// IsRing reports whether seq is a valid ring: empty, or closed with at least
// MinRingSize points.
func IsRing(seq CoordSeq) bool {
	n := seq.Len()
	if n == 0 {
		return true
	}
	if n < MinRingSize {
		return false
	}

	return IsClosed(seq)
}

// Extend returns an owned copy of seq grown to size coordinates by repeating
// its last coordinate. An empty seq is grown with zero coordinates.
// seq is copied unchanged when it already has size or more coordinates.
func Extend(seq CoordSeq, size int) *Sequence {
	n := seq.Len()
	if n >= size {
		return seq.Copy()
	}

	out := NewSequence(seq.Dimension(), size)
	for i := range n {
		out.Set(i, seq.Coord(i))
	}
	if n > 0 {
		last := seq.Coord(n - 1)
		for i := n; i < size; i++ {
			out.Set(i, last)
		}
	}

	return out
}

// EnsureValidRing returns seq when it is already a ring, otherwise an owned
// closed copy: sequences shorter than MinRingSize are padded to MinRingSize
// with the first coordinate, longer unclosed ones get the first coordinate
// appended.
func EnsureValidRing(seq CoordSeq) CoordSeq {
	n := seq.Len()
	if n == 0 {
		return seq
	}
	if n < MinRingSize {
		return closedRing(seq, MinRingSize)
	}
	if IsClosed(seq) {
		return seq
	}

	return closedRing(seq, n+1)
}

func closedRing(seq CoordSeq, size int) *Sequence {
	n := seq.Len()
	out := NewSequence(seq.Dimension(), size)
	for i := range n {
		out.Set(i, seq.Coord(i))
	}

	first := seq.Coord(0)
	for i := n; i < size; i++ {
		out.Set(i, first)
	}

	return out
}
