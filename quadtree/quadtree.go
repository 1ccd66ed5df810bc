// Package quadtree implements a complete, array-backed quadtree over the X/Z plane of a 3D
// bounding box. Every level of the tree is fully populated at initialization and all nodes live
// in one contiguous slice, laid out level by level in row-major order. Y is never subdivided:
// every node spans the full height of the root box.
package quadtree

import (
	"fmt"

	"github.com/golang/geo/r3"

	"go.viam.com/qtree/logging"
	"go.viam.com/qtree/spatialmath"
	"go.viam.com/qtree/utils"
)

// MaxTreeDepth is the deepest tree that can be initialized. Columns and rows are addressed
// with 16 bits, so the deepest level may hold at most 2^15 cells per side.
const MaxTreeDepth = 16

// QuadTree is a fixed-depth quadtree holding one element of type T per node.
//
// A QuadTree is not safe for concurrent use. Node pointers returned by any method are
// invalidated by Reset and Initialize.
type QuadTree[T Element] struct {
	logger       logging.Logger
	nodes        []Node[T]
	rootBBox     spatialmath.BoundingBox
	baseNodeSize r3.Vector
	depth        uint8
}

// New returns an empty tree. Call Initialize before querying it. A nil logger logs through a
// "quadtree" sublogger of the global logger.
func New[T Element](logger logging.Logger) *QuadTree[T] {
	if logger == nil {
		logger = logging.Global().Sublogger("quadtree")
	}
	return &QuadTree[T]{logger: logger}
}

// Initialize builds a complete tree of the given depth covering box, discarding any previous
// contents. Depth counts levels, so a depth of 1 is a lone root. It panics if depth is 0 or
// greater than MaxTreeDepth.
func (qt *QuadTree[T]) Initialize(box spatialmath.BoundingBox, depth uint8) {
	if depth == 0 {
		qt.contractViolation(NewZeroDepthError())
	}
	if depth > MaxTreeDepth {
		qt.contractViolation(NewDepthTooLargeError(depth))
	}

	qt.rootBBox = box
	qt.depth = depth

	cellsPerSide := float64(utils.PowerOfTwo(uint(depth - 1)))
	size := box.Size()
	qt.baseNodeSize = r3.Vector{X: size.X / cellsPerSide, Y: size.Y, Z: size.Z / cellsPerSide}

	qt.nodes = make([]Node[T], CalculateNumberNodes(depth))
	qt.nodes[0].initialize(qt, 0, 0, 0)

	qt.logger.Debugw("initialized quadtree",
		"depth", depth,
		"nodes", len(qt.nodes),
		"bbox", box.String(),
		"base_node_size", formatVector(qt.baseNodeSize),
	)
}

// Reset drops every node and returns the tree to its uninitialized state.
func (qt *QuadTree[T]) Reset() {
	if len(qt.nodes) > 0 {
		qt.logger.Debugw("resetting quadtree", "depth", qt.depth, "nodes", len(qt.nodes))
	}
	qt.nodes = nil
	qt.depth = 0
	qt.rootBBox = spatialmath.BoundingBox{}
	qt.baseNodeSize = r3.Vector{}
}

// RootBBox returns the box the tree was initialized with.
func (qt *QuadTree[T]) RootBBox() spatialmath.BoundingBox {
	return qt.rootBBox
}

// TreeDepth returns the number of levels in the tree, 0 when uninitialized.
func (qt *QuadTree[T]) TreeDepth() uint8 {
	return qt.depth
}

// NumberNodes returns the number of allocated nodes.
func (qt *QuadTree[T]) NumberNodes() int {
	return len(qt.nodes)
}

// BaseNodeSize returns the size of a node on the deepest level.
func (qt *QuadTree[T]) BaseNodeSize() r3.Vector {
	return qt.baseNodeSize
}

// CalculateNumberNodes returns the number of nodes in a complete tree with the given number of
// levels. It panics if levels exceeds MaxTreeDepth.
func (qt *QuadTree[T]) CalculateNumberNodes(levels uint8) int {
	if levels > MaxTreeDepth {
		qt.contractViolation(NewDepthTooLargeError(levels))
	}
	return CalculateNumberNodes(levels)
}

// CalculateNodeIndex returns the flat index of the node at (col, row) on a level.
// It panics if level is not below MaxTreeDepth or col or row is outside the level's grid.
func (qt *QuadTree[T]) CalculateNodeIndex(level uint8, col, row uint16) int {
	if level >= MaxTreeDepth {
		qt.contractViolation(NewLevelOutOfRangeError(level))
	}
	if !gridContains(level, col, row) {
		qt.contractViolation(NewGridCoordinateOutOfRangeError(level, col, row))
	}
	return nodeIndex(level, col, row)
}

// RootNode returns the root. It panics on an uninitialized tree.
func (qt *QuadTree[T]) RootNode() *Node[T] {
	if len(qt.nodes) == 0 {
		qt.contractViolation(NewEmptyTreeError())
	}
	return &qt.nodes[0]
}

// NodeByIndex returns the node at a flat index. It panics if index is out of range.
func (qt *QuadTree[T]) NodeByIndex(index int) *Node[T] {
	if index < 0 || index >= len(qt.nodes) {
		qt.contractViolation(NewNodeIndexOutOfRangeError(index, len(qt.nodes)))
	}
	return &qt.nodes[index]
}

// FindContainmentNode returns the deepest node whose box contains box, or nil when box is not
// inside the root. It panics on an uninitialized tree.
func (qt *QuadTree[T]) FindContainmentNode(box spatialmath.BoundingBox) *Node[T] {
	return qt.RootNode().FindContainmentNodeRecursive(box)
}

// Optimize prunes every subtree that holds no present element and reports whether anything in
// the tree still holds one. It panics on an uninitialized tree.
func (qt *QuadTree[T]) Optimize() bool {
	root := qt.RootNode()
	before := root.CountNodes()
	hasContent := root.OptimizeRecursive()
	after := root.CountNodes()
	qt.logger.Debugw("optimized quadtree",
		"has_content", hasContent,
		"reachable_nodes", after,
		"pruned_nodes", before-after,
	)
	return hasContent
}

func (qt *QuadTree[T]) contractViolation(err error) {
	qt.logger.Errorw("quadtree misuse", "error", err)
	panic(err)
}

// CalculateNumberNodes returns (4^levels - 1) / 3, the node count of a complete quadtree with
// the given number of levels. It panics if levels exceeds MaxTreeDepth.
func CalculateNumberNodes(levels uint8) int {
	if levels > MaxTreeDepth {
		panic(NewDepthTooLargeError(levels))
	}
	return (utils.PowerOfFour(uint(levels)) - 1) / 3
}

func formatVector(v r3.Vector) string {
	return fmt.Sprintf("X:%.2f, Y:%.2f, Z:%.2f", v.X, v.Y, v.Z)
}

func nodeIndex(level uint8, col, row uint16) int {
	return CalculateNumberNodes(level) + (int(row) << level) + int(col)
}

func gridContains(level uint8, col, row uint16) bool {
	width := utils.PowerOfTwo(uint(level))
	return int(col) < width && int(row) < width
}
