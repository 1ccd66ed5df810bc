package quadtree

import (
	"github.com/pkg/errors"
)

// NewZeroDepthError is used when a tree is initialized with a depth of 0.
func NewZeroDepthError() error {
	return errors.New("quadtree depth must be greater than 0")
}

// NewDepthTooLargeError is used when a tree is initialized deeper than MaxTreeDepth.
func NewDepthTooLargeError(depth uint8) error {
	return errors.Errorf("quadtree depth %d exceeds the maximum of %d", depth, MaxTreeDepth)
}

// NewLevelOutOfRangeError is used when a level is addressed that no tree can have.
func NewLevelOutOfRangeError(level uint8) error {
	return errors.Errorf("level %d out of range [0, %d)", level, MaxTreeDepth)
}

// NewGridCoordinateOutOfRangeError is used when a column or row does not exist on a level.
func NewGridCoordinateOutOfRangeError(level uint8, col, row uint16) error {
	return errors.Errorf("column %d or row %d out of range for level %d (grid width %d)", col, row, level, 1<<level)
}

// NewNodeIndexOutOfRangeError is used when a flat node index is past the end of the tree.
func NewNodeIndexOutOfRangeError(index, numNodes int) error {
	return errors.Errorf("node index %d out of range [0, %d)", index, numNodes)
}

// NewChildIndexOutOfRangeError is used when a child slot outside [0, 4) is requested.
func NewChildIndexOutOfRangeError(index int) error {
	return errors.Errorf("child index %d out of range [0, %d)", index, numChildren)
}

// NewEmptyTreeError is used when a tree is queried before Initialize.
func NewEmptyTreeError() error {
	return errors.New("quadtree has not been initialized")
}
