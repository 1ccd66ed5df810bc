package quadtree

import (
	"go.viam.com/qtree/spatialmath"
)

// CollectByFrustum gathers the present elements of every node under node whose box is not
// entirely outside the clip volume of viewProjection. Subtrees entirely inside the volume are
// gathered without testing their descendants. collected is truncated and reused as the output
// buffer; elements appear in pre-order with children visited 0..3.
func CollectByFrustum[T Element](node *Node[T], viewProjection *spatialmath.Matrix, collected []T) []T {
	return collectByFrustum(node, viewProjection, collected[:0])
}

func collectByFrustum[T Element](node *Node[T], viewProjection *spatialmath.Matrix, collected []T) []T {
	status := node.bbox.ClipStatus(viewProjection)
	if status == spatialmath.ClipOutside {
		return collected
	}
	if status == spatialmath.ClipInside {
		return collectAll(node, collected)
	}

	if node.element.IsPresent() {
		collected = append(collected, node.element)
	}
	if node.HasChildren() {
		for i := range node.children {
			collected = collectByFrustum(node.ChildAt(i), viewProjection, collected)
		}
	}
	return collected
}

// CollectByLineIntersect gathers the present elements of every node under node whose box the
// line touches. collected is truncated and reused as the output buffer; elements appear in
// pre-order with children visited 0..3.
func CollectByLineIntersect[T Element](node *Node[T], line spatialmath.Line, collected []T) []T {
	return collectByLineIntersect(node, line, collected[:0])
}

func collectByLineIntersect[T Element](node *Node[T], line spatialmath.Line, collected []T) []T {
	if !node.bbox.TestIntersection(line) {
		return collected
	}
	if node.element.IsPresent() {
		collected = append(collected, node.element)
	}
	if node.HasChildren() {
		for i := range node.children {
			collected = collectByLineIntersect(node.ChildAt(i), line, collected)
		}
	}
	return collected
}

// CollectAll gathers the present elements of every node reachable from node, in pre-order.
// collected is truncated and reused as the output buffer.
func CollectAll[T Element](node *Node[T], collected []T) []T {
	return collectAll(node, collected[:0])
}

func collectAll[T Element](node *Node[T], collected []T) []T {
	if node.element.IsPresent() {
		collected = append(collected, node.element)
	}
	if node.HasChildren() {
		for i := range node.children {
			collected = collectAll(node.ChildAt(i), collected)
		}
	}
	return collected
}
