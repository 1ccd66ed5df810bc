package quadtree

import (
	"testing"

	"go.viam.com/test"
)

func TestNodeElements(t *testing.T) {
	qt := makeTree(t, 2)
	node := qt.NodeByIndex(2)
	test.That(t, node.Element().IsPresent(), test.ShouldBeFalse)

	node.SetElement(42)
	test.That(t, node.Element(), test.ShouldEqual, cellID(42))
	test.That(t, qt.RootNode().ChildAt(1).Element(), test.ShouldEqual, cellID(42))

	node.ClearElement()
	test.That(t, node.Element(), test.ShouldEqual, cellID(0))
	test.That(t, node.Element().IsPresent(), test.ShouldBeFalse)
}

func TestChildAtLeaf(t *testing.T) {
	qt := makeTree(t, 2)
	leaf := qt.NodeByIndex(4)
	test.That(t, leaf.HasChildren(), test.ShouldBeFalse)
	for i := 0; i < 4; i++ {
		test.That(t, leaf.ChildAt(i), test.ShouldBeNil)
	}

	single := makeTree(t, 1)
	test.That(t, single.RootNode().HasChildren(), test.ShouldBeFalse)
	test.That(t, single.RootNode().CountNodes(), test.ShouldEqual, 1)
}

func TestOptimizeRecursiveEmptyTree(t *testing.T) {
	qt := makeTree(t, 3)
	root := qt.RootNode()

	test.That(t, root.OptimizeRecursive(), test.ShouldBeFalse)
	test.That(t, root.HasChildren(), test.ShouldBeFalse)
	for i := 0; i < 4; i++ {
		test.That(t, root.ChildAt(i), test.ShouldBeNil)
	}
	test.That(t, root.CountNodes(), test.ShouldEqual, 1)

	// Unlinked nodes are still in storage with their geometry intact.
	test.That(t, qt.NumberNodes(), test.ShouldEqual, 21)
	test.That(t, qt.NodeByIndex(4).BBox().Min().X, test.ShouldEqual, 0.0)
}

func TestOptimizeRecursiveSingleLeaf(t *testing.T) {
	qt := makeTree(t, 3)
	root := qt.RootNode()
	qt.NodeByIndex(5).SetElement(1)

	test.That(t, root.OptimizeRecursive(), test.ShouldBeTrue)
	test.That(t, root.HasChildren(), test.ShouldBeTrue)

	// The populated path keeps its links.
	test.That(t, qt.NodeByIndex(1).HasChildren(), test.ShouldBeTrue)
	test.That(t, qt.NodeByIndex(1).ChildAt(0), test.ShouldEqual, qt.NodeByIndex(5))

	// Siblings without content lose theirs.
	for _, idx := range []int{2, 3, 4} {
		test.That(t, qt.NodeByIndex(idx).HasChildren(), test.ShouldBeFalse)
	}
	test.That(t, qt.NodeByIndex(6).HasChildren(), test.ShouldBeFalse)
	test.That(t, root.CountNodes(), test.ShouldEqual, 9)

	// Optimizing twice changes nothing.
	test.That(t, root.OptimizeRecursive(), test.ShouldBeTrue)
	test.That(t, root.CountNodes(), test.ShouldEqual, 9)
}

func TestOptimizeRecursiveInternalElement(t *testing.T) {
	qt := makeTree(t, 3)
	root := qt.RootNode()
	qt.NodeByIndex(2).SetElement(1)

	test.That(t, root.OptimizeRecursive(), test.ShouldBeTrue)
	test.That(t, root.HasChildren(), test.ShouldBeTrue)
	test.That(t, qt.NodeByIndex(2).HasChildren(), test.ShouldBeFalse)
	test.That(t, qt.NodeByIndex(2).Element(), test.ShouldEqual, cellID(1))
	test.That(t, root.CountNodes(), test.ShouldEqual, 5)
}

func TestOptimizeRecursiveRootElementOnly(t *testing.T) {
	qt := makeTree(t, 3)
	root := qt.RootNode()
	root.SetElement(1)

	test.That(t, qt.Optimize(), test.ShouldBeTrue)
	test.That(t, root.HasChildren(), test.ShouldBeFalse)
	test.That(t, root.Element(), test.ShouldEqual, cellID(1))
	test.That(t, root.BBox().AlmostEqual(qt.RootBBox()), test.ShouldBeTrue)
}

func TestOptimizeThenReinitialize(t *testing.T) {
	qt := makeTree(t, 3)
	test.That(t, qt.Optimize(), test.ShouldBeFalse)
	test.That(t, qt.RootNode().HasChildren(), test.ShouldBeFalse)

	qt.Initialize(qt.RootBBox(), 3)
	test.That(t, qt.RootNode().HasChildren(), test.ShouldBeTrue)
	test.That(t, qt.RootNode().CountNodes(), test.ShouldEqual, 21)
}
