package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"termrpg/internal/combat"
	"termrpg/internal/component"
	"termrpg/internal/gamemap"
	"termrpg/internal/player"
)

func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	return ss
}

// row returns the primary runes of screen row y.
func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = row(s, y)
	}
	return strings.Join(rows, "\n")
}

// ─── camera ───────────────────────────────────────────────────────────────────

func TestCameraCentersPlayer(t *testing.T) {
	c := NewCamera(50, 50, 80, 18)
	sx, sy, ok := c.WorldToScreen(50, 50)
	if !ok {
		t.Fatal("center should be visible")
	}
	if sx != 40 || sy != 9 {
		t.Errorf("center maps to (%d, %d), want (40, 9)", sx, sy)
	}
	if wx, wy := c.ScreenToWorld(sx, sy); wx != 50 || wy != 50 {
		t.Errorf("round trip = (%d, %d)", wx, wy)
	}
	if _, _, ok := c.WorldToScreen(10, 50); ok {
		t.Error("far west tile should be off screen")
	}
}

func TestCameraResizeKeepsCenter(t *testing.T) {
	c := NewCamera(30, 30, 80, 18)
	c.Resize(40, 10)
	sx, sy, ok := c.WorldToScreen(30, 30)
	if !ok || sx != 20 || sy != 5 {
		t.Errorf("after resize center maps to (%d, %d, %v), want (20, 5, true)", sx, sy, ok)
	}
}

// ─── world ────────────────────────────────────────────────────────────────────

func TestDrawWorldPlacesPlayerAtCenter(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)
	gmap := gamemap.New(40, 40)
	gmap.Set(21, 20, gamemap.MakeTree())
	p := &player.Player{Pos: player.Point{X: 20, Y: 20}}

	r.DrawWorld(gmap, p)

	sx, sy, ok := r.WorldToScreen(20, 20)
	if !ok {
		t.Fatal("player should be visible")
	}
	if got, _, _, _ := s.GetContent(sx, sy); got != []rune("🧙")[0] {
		t.Errorf("player glyph = %q", got)
	}
	if got, _, _, _ := s.GetContent(sx+2, sy); got != []rune("🌲")[0] {
		t.Errorf("tree glyph = %q", got)
	}
}

func TestDrawWorldLeavesOutOfBoundsBlank(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)
	gmap := gamemap.New(20, 20)
	p := &player.Player{Pos: player.Point{X: 0, Y: 0}}

	r.DrawWorld(gmap, p)

	if got, _, _, _ := s.GetContent(0, 0); got != ' ' && got != 0 {
		t.Errorf("out-of-bounds cell drew %q", got)
	}
}

// ─── HUD ──────────────────────────────────────────────────────────────────────

func TestDrawHUD(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)
	msgs := []string{"one", "two", "three", "four"}
	r.DrawHUD(Status{
		Name:       "Tester",
		Health:     component.Health{Current: 40, Max: 100},
		Weapon:     "Bronze Dagger",
		TotalLevel: 17,
		X:          3,
		Y:          4,
		Autowalk:   true,
	}, msgs)

	_, h := s.Size()
	status := row(s, h-HUDRows+1)
	for _, want := range []string{"Tester", "HP: 40/100", "Bronze Dagger", "Total level: 17", "(3, 4)", "[autowalk]"} {
		if !strings.Contains(status, want) {
			t.Errorf("status line %q missing %q", status, want)
		}
	}
	text := screenText(s)
	if strings.Contains(text, "one") {
		t.Error("only the last three messages should be shown")
	}
	for _, want := range []string{"two", "three", "four"} {
		if !strings.Contains(text, want) {
			t.Errorf("HUD missing message %q", want)
		}
	}
}

func TestBar(t *testing.T) {
	cases := []struct {
		h    component.Health
		want string
	}{
		{component.Health{Current: 10, Max: 10}, "[##########]"},
		{component.Health{Current: 5, Max: 10}, "[#####-----]"},
		{component.Health{Current: 1, Max: 100}, "[#---------]"},
		{component.Health{Current: 0, Max: 10}, "[----------]"},
		{component.Health{Current: 0, Max: 0}, "[----------]"},
	}
	for _, tc := range cases {
		if got := Bar(tc.h, 10); got != tc.want {
			t.Errorf("Bar(%+v) = %q, want %q", tc.h, got, tc.want)
		}
	}
}

// ─── combat ───────────────────────────────────────────────────────────────────

func TestDrawCombatOptions(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)
	enemy := &combat.Enemy{Name: "Troll", Glyph: "👹", Health: component.Health{Current: 40, Max: 80}}

	r.DrawCombat(CombatView{
		PlayerName: "Tester",
		PlayerHP:   component.Health{Current: 100, Max: 100},
		Enemy:      enemy,
		State:      combat.StateChoosing,
		Messages:   []string{"A wild Troll appears!"},
	})
	text := screenText(s)
	for _, want := range []string{"Troll", "40/80", "[m/1] Main attack", "[r/Esc] Flee", "A wild Troll appears!"} {
		if !strings.Contains(text, want) {
			t.Errorf("combat screen missing %q", want)
		}
	}

	r.DrawCombat(CombatView{Enemy: enemy, State: combat.StateCharging, Pending: 30})
	if text := screenText(s); !strings.Contains(text, "Charging (30 damage)") || strings.Contains(text, "Main attack") {
		t.Error("charging screen should replace the options with the charge prompt")
	}
}

// ─── menu ─────────────────────────────────────────────────────────────────────

func TestDrawMenuHighlightsCursor(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)
	r.DrawMenu(Menu{
		Title:  "Inventory",
		Lines:  []Line{{Text: "Gold Coins"}, {Text: "Raw Shrimp"}},
		Cursor: 1,
		Footer: "Esc close",
		Status: "You use the Raw Shrimp.",
	})
	if got := row(s, 3); !strings.HasPrefix(got, "► Raw Shrimp") {
		t.Errorf("cursor row = %q", got)
	}
	if got := row(s, 2); !strings.HasPrefix(got, "  Gold Coins") {
		t.Errorf("plain row = %q", got)
	}
	_, h := s.Size()
	if !strings.Contains(row(s, h-1), "Esc close") || !strings.Contains(row(s, h-2), "Raw Shrimp") {
		t.Error("footer or status line missing")
	}
}

func TestDrawMenuScrollsToCursor(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)
	lines := make([]Line, 40)
	for i := range lines {
		lines[i] = Line{Text: strings.Repeat("x", i+1)}
	}
	r.DrawMenu(Menu{Title: "Long", Lines: lines, Cursor: 30})
	if !strings.Contains(screenText(s), "► "+strings.Repeat("x", 31)) {
		t.Error("cursor row should be scrolled into view")
	}
}

func TestDrawMenuEmpty(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s)
	r.DrawMenu(Menu{Title: "Quests"})
	if !strings.Contains(row(s, 2), "(empty)") {
		t.Errorf("row 2 = %q", row(s, 2))
	}
}
