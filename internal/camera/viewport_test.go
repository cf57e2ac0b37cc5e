package camera

import (
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestNewViewportBounds(t *testing.T) {
	v := New(world.Pt(40, 25), 40, 25)

	if v.Left != 20 || v.Right != 60 {
		t.Errorf("horizontal bounds = [%d, %d), want [20, 60)", v.Left, v.Right)
	}
	if v.Top != 13 || v.Bottom != 37 {
		t.Errorf("vertical bounds = [%d, %d), want [13, 37)", v.Top, v.Bottom)
	}
	if v.Center != world.Pt(40, 25) {
		t.Errorf("Center = %v, want (40,25)", v.Center)
	}
}

func TestViewportContainment(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		moves         []world.Point
	}{
		{"reference display", 40, 25, []world.Point{world.Pt(3, 3), world.Pt(0, 0), world.Pt(79, 49), world.Pt(-5, 100)}},
		{"odd sizes", 7, 9, []world.Point{world.Pt(1, 1), world.Pt(-1, -1)}},
		{"minimum size", 1, 0, []world.Point{world.Pt(5, 5), world.Pt(6, 5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(world.Pt(0, 0), tt.width, tt.height)
			for _, p := range tt.moves {
				v.OnMove(p)
				if p.X < v.Left || p.X >= v.Right || p.Y < v.Top || p.Y >= v.Bottom {
					t.Errorf("OnMove(%v): center outside [%d,%d)x[%d,%d)", p, v.Left, v.Right, v.Top, v.Bottom)
				}
				if !v.Contains(p) {
					t.Errorf("OnMove(%v): Contains(center) = false", p)
				}
				if v.Center != p {
					t.Errorf("OnMove(%v): Center = %v", p, v.Center)
				}
			}
		})
	}
}

func TestViewportToLocal(t *testing.T) {
	v := New(world.Pt(30, 20), 40, 26)

	tests := []struct {
		world world.Point
		want  world.Point
	}{
		{world.Pt(10, 7), world.Pt(0, 0)},
		{world.Pt(30, 20), world.Pt(20, 13)},
		{world.Pt(49, 32), world.Pt(39, 25)},
		{world.Pt(0, 0), world.Pt(-10, -7)},
	}

	for _, tt := range tests {
		if got := v.ToLocal(tt.world); got != tt.want {
			t.Errorf("ToLocal(%v) = %v, want %v", tt.world, got, tt.want)
		}
	}
}

func TestViewportNoClamping(t *testing.T) {
	v := New(world.Pt(0, 0), 40, 25)
	if v.Left != -20 || v.Top != -12 {
		t.Errorf("bounds near origin = (%d,%d), want (-20,-12)", v.Left, v.Top)
	}
}

func TestViewportContainsDrawnWindow(t *testing.T) {
	// 25 rows tall: bounds span 24 rows but all 25 display rows are drawn.
	v := New(world.Pt(40, 25), 40, 25)

	tests := []struct {
		p    world.Point
		want bool
	}{
		{world.Pt(20, 13), true},
		{world.Pt(59, 13), true},
		{world.Pt(60, 13), false},
		{world.Pt(19, 13), false},
		{world.Pt(40, 12), false},
		{world.Pt(40, v.Bottom), true},
		{world.Pt(40, v.Bottom+1), false},
	}

	for _, tt := range tests {
		if got := v.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
