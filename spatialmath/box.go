// Package spatialmath defines the geometry primitives the quadtree is built on: axis-aligned
// bounding boxes, parametrized lines and 4x4 projection matrices.
package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"

	"go.viam.com/qtree/utils"
)

const boxEpsilon = 1e-8

// BoundingBox is an axis-aligned box in 3D space described by its min and max corners.
// The zero value is the degenerate box at the origin.
type BoundingBox struct {
	min r3.Vector
	max r3.Vector
}

// NewBoundingBox instantiates a new BoundingBox from its corners. Min must not exceed max on
// any axis; zero-sized axes are allowed.
func NewBoundingBox(min, max r3.Vector) (BoundingBox, error) {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return BoundingBox{}, newBadBoundingBoxError(min, max)
	}
	return BoundingBox{min: min, max: max}, nil
}

// NewBoundingBoxFromCenter instantiates a BoundingBox spanning center-extents to center+extents.
func NewBoundingBoxFromCenter(center, extents r3.Vector) (BoundingBox, error) {
	return NewBoundingBox(center.Sub(extents), center.Add(extents))
}

// Min returns the minimum corner.
func (b BoundingBox) Min() r3.Vector {
	return b.min
}

// Max returns the maximum corner.
func (b BoundingBox) Max() r3.Vector {
	return b.max
}

// Center returns the point halfway between the corners.
func (b BoundingBox) Center() r3.Vector {
	return b.min.Add(b.max).Mul(0.5)
}

// Extents returns the half size of the box along each axis.
func (b BoundingBox) Extents() r3.Vector {
	return b.max.Sub(b.min).Mul(0.5)
}

// Size returns the full size of the box along each axis.
func (b BoundingBox) Size() r3.Vector {
	return b.max.Sub(b.min)
}

// ContainsBox reports whether other lies entirely inside b. Shared faces count as contained.
func (b BoundingBox) ContainsBox(other BoundingBox) bool {
	return other.min.X >= b.min.X && other.max.X <= b.max.X &&
		other.min.Y >= b.min.Y && other.max.Y <= b.max.Y &&
		other.min.Z >= b.min.Z && other.max.Z <= b.max.Z
}

// ContainsPoint reports whether p lies inside b or on its boundary.
func (b BoundingBox) ContainsPoint(p r3.Vector) bool {
	return p.X >= b.min.X && p.X <= b.max.X &&
		p.Y >= b.min.Y && p.Y <= b.max.Y &&
		p.Z >= b.min.Z && p.Z <= b.max.Z
}

// Vertices returns the 8 corners of the box. Bit 0 of the corner index selects min X, bit 1
// min Y and bit 2 min Z; a clear bit selects the max coordinate.
func (b BoundingBox) Vertices() [8]r3.Vector {
	var verts [8]r3.Vector
	for i := range verts {
		verts[i] = b.vertex(i)
	}
	return verts
}

func (b BoundingBox) vertex(sel int) r3.Vector {
	v := b.max
	if sel&1 != 0 {
		v.X = b.min.X
	}
	if sel&2 != 0 {
		v.Y = b.min.Y
	}
	if sel&4 != 0 {
		v.Z = b.min.Z
	}
	return v
}

// AlmostEqual compares two boxes corner by corner.
func (b BoundingBox) AlmostEqual(other BoundingBox) bool {
	return vectorAlmostEqual(b.min, other.min) && vectorAlmostEqual(b.max, other.max)
}

// String returns a human readable string that represents the box.
func (b BoundingBox) String() string {
	return fmt.Sprintf("Type: BoundingBox | Min: X:%.2f, Y:%.2f, Z:%.2f | Max: X:%.2f, Y:%.2f, Z:%.2f",
		b.min.X, b.min.Y, b.min.Z, b.max.X, b.max.Y, b.max.Z)
}

func vectorAlmostEqual(a, b r3.Vector) bool {
	return utils.Float64AlmostEqual(a.X, b.X, boxEpsilon) &&
		utils.Float64AlmostEqual(a.Y, b.Y, boxEpsilon) &&
		utils.Float64AlmostEqual(a.Z, b.Z, boxEpsilon)
}

// component returns the coordinate of v on the given axis (0 = X, 1 = Y, 2 = Z).
func component(v r3.Vector, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
