package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collectPositions[T any](c *Cursor[T]) []Position {
	var out []Position
	for {
		p, _, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

func TestWindow_RowMajorOrder(t *testing.T) {
	g := makeTestGrid(t, 5, 5) // window origin (-2,-2)

	got := collectPositions(g.Window(Position{X: -1, Y: -1}, Position{X: 1, Y: 0}))
	want := []Position{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {0, 0}, {1, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected traversal (-want +got):\n%s", diff)
	}
}

func TestWindow_ClipsToWindowBounds(t *testing.T) {
	g := makeTestGrid(t, 3, 3) // window x,y range [-1, 2] inclusive

	got := collectPositions(g.Window(Position{X: -10, Y: -10}, Position{X: 10, Y: 10}))

	// the clip matches IsValid, so the aliased far edge is included:
	// 4x4 positions for a 3x3 buffer
	if len(got) != 16 {
		t.Fatalf("expected 16 positions, got %d", len(got))
	}
	for _, p := range got {
		if !g.IsValid(p) {
			t.Fatalf("cursor yielded out-of-window position %+v", p)
		}
	}
	if got[0] != (Position{X: -1, Y: -1}) {
		t.Fatalf("expected clipped start (-1,-1), got %+v", got[0])
	}
	if got[len(got)-1] != (Position{X: 2, Y: 2}) {
		t.Fatalf("expected clipped end (2,2), got %+v", got[len(got)-1])
	}
}

func TestWindow_EmptyIntersection(t *testing.T) {
	g := makeTestGrid(t, 4, 4)

	cases := []struct {
		low, high Position
	}{
		{Position{10, 10}, Position{20, 20}},  // entirely right/above
		{Position{-20, -20}, Position{-10, -10}}, // entirely left/below
		{Position{1, 1}, Position{0, 0}},      // inverted rectangle
	}
	for _, c := range cases {
		if got := collectPositions(g.Window(c.low, c.high)); len(got) != 0 {
			t.Fatalf("expected no positions for rect %+v..%+v, got %d", c.low, c.high, len(got))
		}
	}
}

// Writing a marker through a cursor touches exactly the cells in the
// intersection of the requested rectangle and the window.
func TestWindow_MarkerCoverage(t *testing.T) {
	g := makeTestGrid(t, 5, 5)
	g.Fill(0)

	low := Position{X: 0, Y: 0}
	high := Position{X: 1, Y: 1}
	cur := g.Window(low, high)
	for {
		_, cell, ok := cur.Next()
		if !ok {
			break
		}
		*cell = 1
	}

	wlow, _ := g.Bounds()
	for y := wlow.Y; y < wlow.Y+g.Height(); y++ {
		for x := wlow.X; x < wlow.X+g.Width(); x++ {
			p := Position{X: x, Y: y}
			inRect := x >= low.X && x <= high.X && y >= low.Y && y <= high.Y
			want := 0
			if inRect {
				want = 1
			}
			if got := *g.Value(p); got != want {
				t.Fatalf("cell (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestWindow_SingleCell(t *testing.T) {
	g := makeTestGrid(t, 4, 4)

	got := collectPositions(g.Window(Position{X: 0, Y: 0}, Position{X: 0, Y: 0}))
	want := []Position{{0, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected traversal (-want +got):\n%s", diff)
	}
}
