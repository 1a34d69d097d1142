package skill

import (
	"math"
	"math/rand"
	"testing"
)

func TestAddExperienceSingleLevel(t *testing.T) {
	s := New(Attack)
	ups := s.AddExperience(83)
	if s.Level != 2 {
		t.Fatalf("level = %d, want 2", s.Level)
	}
	if len(ups) != 1 || ups[0] != (LevelUp{Skill: Attack, Level: 2}) {
		t.Errorf("unexpected level-ups %+v", ups)
	}
}

func TestAddExperienceCascade(t *testing.T) {
	s := New(Strength)
	ups := s.AddExperience(1154)
	if s.Level != 10 {
		t.Fatalf("level = %d, want 10", s.Level)
	}
	if len(ups) != 9 {
		t.Fatalf("got %d level-ups, want 9", len(ups))
	}
	for i, up := range ups {
		if up.Level != i+2 {
			t.Errorf("level-up %d reports level %d, want %d", i, up.Level, i+2)
		}
	}
}

func TestAddExperienceIgnoresInvalidAmounts(t *testing.T) {
	for _, amt := range []float64{0, -10, math.NaN()} {
		s := New(Magic)
		s.Experience = 50
		if ups := s.AddExperience(amt); ups != nil {
			t.Errorf("AddExperience(%v) returned level-ups", amt)
		}
		if s.Experience != 50 || s.Level != 1 {
			t.Errorf("AddExperience(%v) changed skill to %+v", amt, s)
		}
	}
}

func TestAddExperienceCapsAtMaximum(t *testing.T) {
	s := New(Slayer)
	s.AddExperience(MaxExperience * 2)
	if s.Experience != MaxExperience {
		t.Errorf("experience = %v, want %v", s.Experience, float64(MaxExperience))
	}
	if s.Level != MaxLevel {
		t.Errorf("level = %d, want %d", s.Level, MaxLevel)
	}
	if ups := s.AddExperience(1000); len(ups) != 0 {
		t.Errorf("no level-ups expected past the cap, got %v", ups)
	}
}

func TestExperienceKeepsAccumulatingAt99(t *testing.T) {
	s := New(Mining)
	s.AddExperience(CumulativeXP(MaxLevel))
	s.AddExperience(500)
	if s.Level != MaxLevel {
		t.Fatalf("level = %d", s.Level)
	}
	if s.Experience != CumulativeXP(MaxLevel)+500 {
		t.Errorf("experience = %v", s.Experience)
	}
}

// Random sequences of additions must keep the level consistent with the
// curve and never lose experience.
func TestLevelMatchesCurveAfterRandomAdds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		s := New(Cooking)
		prev := 0.0
		for i := 0; i < 50; i++ {
			s.AddExperience(rng.Float64() * 50000)
			if s.Experience < prev {
				t.Fatalf("experience decreased from %v to %v", prev, s.Experience)
			}
			prev = s.Experience
			if want := LevelForXP(s.Experience); s.Level != want {
				t.Fatalf("level %d for xp %v, want %d", s.Level, s.Experience, want)
			}
		}
	}
}

func TestLedgerDefaultSkills(t *testing.T) {
	l := NewDefaultLedger()
	names := l.Names()
	if len(names) != 17 {
		t.Fatalf("got %d skills, want 17", len(names))
	}
	if names[0] != Hitpoints || names[len(names)-1] != Sorcery {
		t.Errorf("unexpected order %v", names)
	}
	if l.TotalLevel() != 17 {
		t.Errorf("TotalLevel = %d, want 17", l.TotalLevel())
	}
}

func TestLedgerAddExperience(t *testing.T) {
	l := NewLedger(Attack)
	ups, ok := l.AddExperience(Attack, 100)
	if !ok || len(ups) != 1 {
		t.Fatalf("AddExperience(Attack) = %v, %v", ups, ok)
	}
	if _, ok := l.AddExperience(Magic, 100); ok {
		t.Error("absent skill should report ok=false")
	}
}

func TestLedgerRemove(t *testing.T) {
	l := NewDefaultLedger()
	l.Remove(Magic)
	l.Remove("Nonexistent")
	if l.Has(Magic) {
		t.Fatal("Magic still present after Remove")
	}
	if len(l.Names()) != 16 {
		t.Errorf("got %d names after remove, want 16", len(l.Names()))
	}
	for _, n := range l.Names() {
		if n == Magic {
			t.Error("Magic still listed in Names")
		}
	}
}
