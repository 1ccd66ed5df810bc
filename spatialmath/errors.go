package spatialmath

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

func newBadBoundingBoxError(min, max r3.Vector) error {
	return errors.Errorf("invalid bounding box: min (%.2f, %.2f, %.2f) exceeds max (%.2f, %.2f, %.2f)",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z)
}

func newSingularMatrixError() error {
	return errors.New("matrix is singular and cannot be inverted")
}
