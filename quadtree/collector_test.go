package quadtree

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/qtree/spatialmath"
)

// populate stores 10, 20, 30... at the given node indices in order.
func populate(qt *QuadTree[cellID], indices ...int) {
	for i, idx := range indices {
		qt.NodeByIndex(idx).SetElement(cellID(10 * (i + 1)))
	}
}

func TestCollectByFrustum(t *testing.T) {
	t.Run("identity covers every node", func(t *testing.T) {
		qt := makeTree(t, 2)
		populate(qt, 0, 1, 2, 3, 4)
		collected := CollectByFrustum(qt.RootNode(), spatialmath.NewIdentityMatrix(), nil)
		test.That(t, collected, test.ShouldResemble, []cellID{10, 20, 30, 40, 50})
	})

	t.Run("translated away", func(t *testing.T) {
		qt := makeTree(t, 2)
		populate(qt, 0, 1, 2, 3, 4)
		projection := spatialmath.NewIdentityMatrix()
		projection.Translate(r3.Vector{X: 1000})
		collected := CollectByFrustum(qt.RootNode(), projection, nil)
		test.That(t, collected, test.ShouldBeEmpty)
	})

	t.Run("perspective camera", func(t *testing.T) {
		qt := makeTree(t, 2)
		populate(qt, 0, 1, 2, 3, 4)

		view := spatialmath.NewTranslationMatrix(r3.Vector{X: 50})
		view, err := view.Inverse()
		test.That(t, err, test.ShouldBeNil)
		viewProjection := spatialmath.NewPerspectiveFovRH(math.Pi/4, 1, 1, 1000).Mul(view)

		collected := CollectByFrustum(qt.RootNode(), viewProjection, nil)
		test.That(t, collected, test.ShouldResemble, []cellID{10, 30})
	})

	t.Run("inside subtree skips further tests", func(t *testing.T) {
		qt := makeTree(t, 3)
		populate(qt, 5, 6, 9, 10)

		// Center the quadrant x,z in [-100, 0] and shrink it well inside the unit clip cube.
		projection := spatialmath.NewTranslationMatrix(r3.Vector{X: 50, Z: 50})
		projection.Scale(r3.Vector{X: 0.01, Y: 0.01, Z: 0.01})

		node := qt.NodeByIndex(1)
		test.That(t, node.BBox().ClipStatus(projection), test.ShouldEqual, spatialmath.ClipInside)
		collected := CollectByFrustum(node, projection, nil)
		test.That(t, collected, test.ShouldResemble, []cellID{10, 20, 30, 40})
	})

	t.Run("skips absent elements", func(t *testing.T) {
		qt := makeTree(t, 2)
		populate(qt, 3)
		collected := CollectByFrustum(qt.RootNode(), spatialmath.NewIdentityMatrix(), nil)
		test.That(t, collected, test.ShouldResemble, []cellID{10})
	})
}

func TestCollectorBufferReuse(t *testing.T) {
	qt := makeTree(t, 2)
	populate(qt, 0, 1, 2, 3, 4)

	buf := make([]cellID, 0, 16)
	buf = CollectByFrustum(qt.RootNode(), spatialmath.NewIdentityMatrix(), buf)
	test.That(t, buf, test.ShouldHaveLength, 5)

	// A second query replaces rather than appends.
	buf = CollectByFrustum(qt.RootNode(), spatialmath.NewIdentityMatrix(), buf)
	test.That(t, buf, test.ShouldHaveLength, 5)
	test.That(t, cap(buf), test.ShouldEqual, 16)

	stale := []cellID{99, 98, 97}
	line := spatialmath.NewLineSegment(r3.Vector{X: -80, Z: -80}, r3.Vector{X: -20, Z: -20})
	test.That(t, CollectByLineIntersect(qt.RootNode(), line, stale), test.ShouldResemble, []cellID{10, 20})

	test.That(t, CollectAll(qt.RootNode(), stale), test.ShouldResemble, []cellID{10, 20, 30, 40, 50})
}

func TestCollectByLineIntersect(t *testing.T) {
	cases := []struct {
		name     string
		line     spatialmath.Line
		expected []cellID
	}{
		{
			name:     "outside the root",
			line:     spatialmath.NewLineSegment(r3.Vector{X: 150, Z: 150}, r3.Vector{X: 300, Z: 300}),
			expected: nil,
		},
		{
			name:     "within one quadrant",
			line:     spatialmath.NewLineSegment(r3.Vector{X: -80, Z: -80}, r3.Vector{X: -20, Z: -20}),
			expected: []cellID{10, 20},
		},
		{
			name:     "crosses three quadrants",
			line:     spatialmath.NewLineSegment(r3.Vector{X: -50, Z: -60}, r3.Vector{X: 50, Z: 40}),
			expected: []cellID{10, 20, 30, 50},
		},
		{
			// Passing through the shared corner touches all four quadrants.
			name:     "diagonal through the center",
			line:     spatialmath.NewLineSegment(r3.Vector{X: -50, Z: -50}, r3.Vector{X: 50, Z: 50}),
			expected: []cellID{10, 20, 30, 40, 50},
		},
		{
			name:     "above the root",
			line:     spatialmath.NewLineSegment(r3.Vector{X: -50, Y: 60, Z: -50}, r3.Vector{X: 50, Y: 60, Z: 50}),
			expected: nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			qt := makeTree(t, 2)
			populate(qt, 0, 1, 2, 3, 4)
			collected := CollectByLineIntersect(qt.RootNode(), c.line, nil)
			test.That(t, len(collected), test.ShouldEqual, len(c.expected))
			for i := range c.expected {
				test.That(t, collected[i], test.ShouldEqual, c.expected[i])
			}
		})
	}
}

func TestCollectByLineIntersectEndsAtCenter(t *testing.T) {
	qt := makeTree(t, 2)
	qt.NodeByIndex(1).SetElement(20)
	qt.NodeByIndex(3).SetElement(40)

	// Origin and direction: the segment runs from (-50, 0, -50) to the center, where node 3
	// shares a corner with node 1.
	line := spatialmath.NewLine(r3.Vector{X: -50, Z: -50}, r3.Vector{X: 50, Z: 50})
	collected := CollectByLineIntersect(qt.RootNode(), line, nil)
	test.That(t, collected, test.ShouldResemble, []cellID{20, 40})
}

func TestCollectOptional(t *testing.T) {
	qt := New[Optional[string]](nil)
	qt.Initialize(makeBox(t, rootMin, rootMax), 2)
	qt.NodeByIndex(2).SetElement(Some("east"))
	qt.NodeByIndex(4).SetElement(Some(""))
	qt.NodeByIndex(3).SetElement(None[string]())

	collected := CollectAll(qt.RootNode(), nil)
	test.That(t, len(collected), test.ShouldEqual, 2)
	test.That(t, collected[0].Value(), test.ShouldEqual, "east")
	v, ok := collected[1].Get()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, v, test.ShouldEqual, "")
}
