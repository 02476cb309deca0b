package reader

import (
	"fmt"

	"github.com/arloliu/wkb/format"
)

// RepairKind identifies a structural repair.
type RepairKind uint8

const (
	// RepairLineStringExtended marks a one-point line string extended to two
	// points by repeating its coordinate.
	RepairLineStringExtended RepairKind = iota + 1
	// RepairRingPadded marks a ring of 1 to 3 points padded to 4 with copies of
	// its first point.
	RepairRingPadded
	// RepairRingClosed marks an unclosed ring of 4 or more points closed by
	// appending its first point.
	RepairRingClosed
)

func (k RepairKind) String() string {
	switch k {
	case RepairLineStringExtended:
		return "LineStringExtended"
	case RepairRingPadded:
		return "RingPadded"
	case RepairRingClosed:
		return "RingClosed"
	default:
		return "Unknown"
	}
}

// Repair describes one repair applied while decoding.
type Repair struct {
	Kind RepairKind
	// Type is TypeLineString or TypeLinearRing.
	Type format.GeometryType
	// Offset is the byte offset of the repaired point count.
	Offset int
	// Before and After are the point counts around the repair.
	Before int
	After  int
}

func (r Repair) String() string {
	return fmt.Sprintf("%s at offset %d: %d -> %d points", r.Kind, r.Offset, r.Before, r.After)
}
