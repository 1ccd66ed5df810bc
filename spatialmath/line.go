package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// intersectionTolerance is the direction magnitude below which an axis is treated as parallel,
// and the parametric distance below which two intersection points are treated as one.
const intersectionTolerance = 1e-6

// Line is a parametrized line origin + t*direction. Intersection tests only consider the
// bounded segment t in [0, 1].
type Line struct {
	origin    r3.Vector
	direction r3.Vector
}

// NewLine returns the line starting at origin and reaching origin+direction at t = 1.
func NewLine(origin, direction r3.Vector) Line {
	return Line{origin: origin, direction: direction}
}

// NewLineSegment returns the line running from `from` at t = 0 to `to` at t = 1.
func NewLineSegment(from, to r3.Vector) Line {
	return Line{origin: from, direction: to.Sub(from)}
}

// Origin returns the point at t = 0.
func (l Line) Origin() r3.Vector {
	return l.origin
}

// Direction returns the offset from the origin to the point at t = 1.
func (l Line) Direction() r3.Vector {
	return l.direction
}

// End returns the point at t = 1.
func (l Line) End() r3.Vector {
	return l.origin.Add(l.direction)
}

// PointAt returns origin + t*direction.
func (l Line) PointAt(t float64) r3.Vector {
	return l.origin.Add(l.direction.Mul(t))
}

// String returns a human readable string that represents the line.
func (l Line) String() string {
	return fmt.Sprintf("Type: Line | Origin: X:%.2f, Y:%.2f, Z:%.2f | Direction: X:%.2f, Y:%.2f, Z:%.2f",
		l.origin.X, l.origin.Y, l.origin.Z, l.direction.X, l.direction.Y, l.direction.Z)
}

// TestIntersection reports whether the segment of line overlaps b.
func (b BoundingBox) TestIntersection(line Line) bool {
	tNear, tFar, ok := b.slabInterval(line)
	return ok && segmentOverlaps(tNear, tFar)
}

// IntersectLine reports whether the segment of line overlaps b and returns the points where
// the line crosses the box surface within the segment. At most two points are returned; a
// near/far pair closer than the tolerance is reported once. A segment lying entirely inside
// the box intersects it but yields no points.
func (b BoundingBox) IntersectLine(line Line) ([]r3.Vector, bool) {
	tNear, tFar, ok := b.slabInterval(line)
	if !ok {
		return nil, false
	}

	var points []r3.Vector
	nearOnSegment := tNear >= 0 && tNear <= 1
	if nearOnSegment {
		points = append(points, line.PointAt(tNear))
	}
	if tFar >= 0 && tFar <= 1 {
		if math.Abs(tFar-tNear) > intersectionTolerance || !nearOnSegment {
			points = append(points, line.PointAt(tFar))
		}
	}

	return points, segmentOverlaps(tNear, tFar)
}

// slabInterval narrows the parametric interval [tNear, tFar] against the slab of each axis.
// ok is false when the line misses the box entirely.
func (b BoundingBox) slabInterval(line Line) (tNear, tFar float64, ok bool) {
	tNear = math.Inf(-1)
	tFar = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := component(line.origin, axis)
		direction := component(line.direction, axis)
		min := component(b.min, axis)
		max := component(b.max, axis)

		// Parallel to this slab: the origin must already lie between its planes.
		if math.Abs(direction) < intersectionTolerance {
			if origin < min || origin > max {
				return 0, 0, false
			}
			continue
		}

		t1 := (min - origin) / direction
		t2 := (max - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tNear = math.Max(tNear, t1)
		tFar = math.Min(tFar, t2)
		if tNear > tFar {
			return 0, 0, false
		}
	}

	return tNear, tFar, true
}

// segmentOverlaps reports whether [tNear, tFar] overlaps the segment range [0, 1].
func segmentOverlaps(tNear, tFar float64) bool {
	return tNear <= tFar && !(tFar < 0 || tNear > 1)
}
