package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(5, 5)
	if !m.IsWalkable(2, 2) {
		t.Error("grass should be walkable")
	}
	m.Set(2, 2, MakeTree())
	if m.IsWalkable(2, 2) {
		t.Error("tree should not be walkable")
	}
	if m.IsWalkable(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestTileWalkability(t *testing.T) {
	cases := []struct {
		name string
		tile Tile
		want bool
	}{
		{"grass", MakeGrass(), true},
		{"tree", MakeTree(), false},
		{"rock", MakeRock(), false},
		{"water", MakeWater(), false},
		{"sand", MakeSand(), true},
		{"campfire", MakeCampfire(), true},
	}
	for _, c := range cases {
		if c.tile.Walkable != c.want {
			t.Errorf("%s walkable = %v, want %v", c.name, c.tile.Walkable, c.want)
		}
	}
}

func TestPlaceCampfire(t *testing.T) {
	m := New(6, 6)
	m.PlaceCampfire(3, 4)
	if !m.IsCampfire(3, 4) || m.CampfireX != 3 || m.CampfireY != 4 {
		t.Errorf("campfire not placed: %+v", m.At(3, 4))
	}
	if m.IsCampfire(9, 9) {
		t.Error("out-of-bounds is never a campfire")
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
}

func TestRectIntersectsAndContains(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
	if !a.Contains(4, 0) || a.Contains(5, 0) {
		t.Error("Contains edge handling wrong")
	}
}
