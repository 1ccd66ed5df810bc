package quadtree

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/qtree/spatialmath"
	"go.viam.com/qtree/utils"
)

const (
	numChildren       = 4
	noChild     int32 = -1
)

// Node is a single cell of a QuadTree. Nodes are owned by their tree and are only ever handed
// out as pointers into its storage.
type Node[T Element] struct {
	tree     *QuadTree[T]
	bbox     spatialmath.BoundingBox
	element  T
	children [numChildren]int32
	index    int32
	level    uint8
	col      uint16
	row      uint16
}

// initialize sets this node's box from its grid position and, above the deepest level, links
// and initializes its four children. Child i sits at column 2*col + (i&1), row 2*row + (i>>1).
func (n *Node[T]) initialize(tree *QuadTree[T], level uint8, col, row uint16) {
	if !gridContains(level, col, row) {
		tree.contractViolation(NewGridCoordinateOutOfRangeError(level, col, row))
	}

	n.tree = tree
	n.level = level
	n.col = col
	n.row = row
	n.index = int32(nodeIndex(level, col, row))

	levelFactor := float64(utils.PowerOfTwo(uint(tree.depth - 1 - level)))
	cellX := levelFactor * tree.baseNodeSize.X
	cellZ := levelFactor * tree.baseNodeSize.Z
	treeMin := tree.rootBBox.Min()
	treeMax := tree.rootBBox.Max()

	bbox, err := spatialmath.NewBoundingBox(
		r3.Vector{X: treeMin.X + float64(col)*cellX, Y: treeMin.Y, Z: treeMin.Z + float64(row)*cellZ},
		r3.Vector{X: treeMin.X + (float64(col)+1)*cellX, Y: treeMax.Y, Z: treeMin.Z + (float64(row)+1)*cellZ},
	)
	if err != nil {
		tree.contractViolation(errors.Wrapf(err, "cannot size node %d", n.index))
	}
	n.bbox = bbox

	if level+1 >= tree.depth {
		for i := range n.children {
			n.children[i] = noChild
		}
		return
	}

	for i := range n.children {
		childCol := 2*col + uint16(i&1)
		childRow := 2*row + uint16(i>>1)
		childIndex := tree.CalculateNodeIndex(level+1, childCol, childRow)
		n.children[i] = int32(childIndex)
		tree.nodes[childIndex].initialize(tree, level+1, childCol, childRow)
	}
}

// BBox returns the region this node covers.
func (n *Node[T]) BBox() spatialmath.BoundingBox {
	return n.bbox
}

// Element returns the stored payload.
func (n *Node[T]) Element() T {
	return n.element
}

// SetElement replaces the stored payload.
func (n *Node[T]) SetElement(element T) {
	n.element = element
}

// ClearElement resets the stored payload to the zero value of T.
func (n *Node[T]) ClearElement() {
	var zero T
	n.element = zero
}

// ChildAt returns child i, or nil when this node has no children. It panics unless 0 <= i < 4.
func (n *Node[T]) ChildAt(i int) *Node[T] {
	if i < 0 || i >= numChildren {
		n.tree.contractViolation(NewChildIndexOutOfRangeError(i))
	}
	idx := n.children[i]
	if idx == noChild {
		return nil
	}
	return &n.tree.nodes[idx]
}

// HasChildren reports whether this node links to children. Children are linked all or none.
func (n *Node[T]) HasChildren() bool {
	return n.children[0] != noChild
}

// Index returns the node's position in the tree's flat storage.
func (n *Node[T]) Index() int {
	return int(n.index)
}

// Level returns the node's depth, 0 for the root.
func (n *Node[T]) Level() uint8 {
	return n.level
}

// Column returns the node's X cell on its level.
func (n *Node[T]) Column() uint16 {
	return n.col
}

// Row returns the node's Z cell on its level.
func (n *Node[T]) Row() uint16 {
	return n.row
}

// FindContainmentNodeRecursive returns the deepest node at or below n whose box contains box,
// preferring children in order 0..3. It returns nil if n itself does not contain box.
func (n *Node[T]) FindContainmentNodeRecursive(box spatialmath.BoundingBox) *Node[T] {
	if !n.bbox.ContainsBox(box) {
		return nil
	}
	if n.HasChildren() {
		for i := range n.children {
			if found := n.ChildAt(i).FindContainmentNodeRecursive(box); found != nil {
				return found
			}
		}
	}
	return n
}

// OptimizeRecursive unlinks the children of every node whose subtree holds no present element
// below it, and reports whether n or anything beneath it holds one. Unlinked nodes stay in the
// tree's storage and can still be reached with NodeByIndex.
func (n *Node[T]) OptimizeRecursive() bool {
	hasContent := n.element.IsPresent()
	if !n.HasChildren() {
		return hasContent
	}

	childContent := false
	for i := range n.children {
		if n.ChildAt(i).OptimizeRecursive() {
			childContent = true
		}
	}
	if !childContent {
		for i := range n.children {
			n.children[i] = noChild
		}
	}
	return hasContent || childContent
}

// CountNodes returns the number of nodes reachable from n through child links, n included.
func (n *Node[T]) CountNodes() int {
	count := 1
	if n.HasChildren() {
		for i := range n.children {
			count += n.ChildAt(i).CountNodes()
		}
	}
	return count
}
