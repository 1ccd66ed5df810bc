package spatialmath

// ClipStatus classifies a box against the view volume of a projection matrix.
type ClipStatus uint8

const (
	// ClipOutside means every corner lies beyond one common clip plane.
	ClipOutside ClipStatus = iota
	// ClipInside means no corner violates any clip plane.
	ClipInside
	// ClipClipped covers everything else, including some boxes that are actually outside.
	ClipClipped
)

// Clip plane bits, one per plane of the clip cube.
const (
	clipLeft = 1 << iota
	clipRight
	clipBottom
	clipTop
	clipNear
	clipFar
)

// String returns a human readable name for the status.
func (s ClipStatus) String() string {
	switch s {
	case ClipOutside:
		return "Outside"
	case ClipInside:
		return "Inside"
	case ClipClipped:
		return "Clipped"
	default:
		return "Unknown"
	}
}

// ClipStatus transforms the 8 corners of b by viewProjection and tests each of them against
// the clip planes -w <= x, y, z <= w. The box is Inside when no corner violates a plane and
// Outside when all corners violate a shared plane. This is conservative: a box that straddles
// the corner of the frustum without touching it is still reported as Clipped.
func (b BoundingBox) ClipStatus(viewProjection *Matrix) ClipStatus {
	andFlags := uint8(0xff)
	orFlags := uint8(0)

	for i := 0; i < 8; i++ {
		v := viewProjection.TransformPoint(b.vertex(i))
		x, y, z, w := v[0], v[1], v[2], v[3]

		var clip uint8
		if x < -w {
			clip |= clipLeft
		} else if x > w {
			clip |= clipRight
		}
		if y < -w {
			clip |= clipBottom
		} else if y > w {
			clip |= clipTop
		}
		if z < -w {
			clip |= clipFar
		} else if z > w {
			clip |= clipNear
		}

		andFlags &= clip
		orFlags |= clip
	}

	switch {
	case orFlags == 0:
		return ClipInside
	case andFlags != 0:
		return ClipOutside
	default:
		return ClipClipped
	}
}
