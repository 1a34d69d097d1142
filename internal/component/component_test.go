package component

import "testing"

func TestHealthDamageClampsAtZero(t *testing.T) {
	cases := []struct {
		name      string
		current   int
		dmg       int
		wantHP    int
		wantTaken int
	}{
		{"partial", 50, 10, 40, 10},
		{"exact", 50, 50, 0, 50},
		{"overkill", 50, 9999, 0, 50},
		{"negative ignored", 50, -5, 50, 0},
		{"already dead", 0, 10, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := Health{Current: c.current, Max: 100}
			taken := h.Damage(c.dmg)
			if h.Current != c.wantHP || taken != c.wantTaken {
				t.Errorf("Damage(%d) -> hp %d taken %d, want hp %d taken %d",
					c.dmg, h.Current, taken, c.wantHP, c.wantTaken)
			}
		})
	}
}

func TestHealthHealCapsAtMax(t *testing.T) {
	h := Health{Current: 95, Max: 100}
	if got := h.Heal(10); got != 5 || h.Current != 100 {
		t.Errorf("Heal(10) restored %d to %d", got, h.Current)
	}
	if got := h.Heal(10); got != 0 {
		t.Errorf("Heal at full health restored %d", got)
	}
}

func TestInventoryAddRemove(t *testing.T) {
	inv := Inventory{}
	inv.Add(100001, 5)
	inv.Add(100001, 3)
	inv.Add(100302, 0)
	if inv.Count(100001) != 8 {
		t.Fatalf("count = %d, want 8", inv.Count(100001))
	}
	if _, ok := inv[100302]; ok {
		t.Error("zero-quantity add should not create an entry")
	}
	if inv.Remove(100001, 9) {
		t.Error("removing more than held should fail")
	}
	if !inv.Remove(100001, 8) {
		t.Fatal("removing exact amount should succeed")
	}
	if _, ok := inv[100001]; ok {
		t.Error("emptied entry should be deleted")
	}
}

func TestInventoryIDsSorted(t *testing.T) {
	inv := Inventory{300: 1, 100: 2, 200: 3}
	ids := inv.IDs()
	if len(ids) != 3 || ids[0] != 100 || ids[1] != 200 || ids[2] != 300 {
		t.Errorf("IDs() = %v", ids)
	}
}

func TestParseItemType(t *testing.T) {
	for i, n := range itemTypeNames {
		got, err := ParseItemType(n)
		if err != nil || got != ItemType(i) {
			t.Errorf("ParseItemType(%q) = %v, %v", n, got, err)
		}
	}
	if _, err := ParseItemType("potion"); err == nil {
		t.Error("expected error for unknown type")
	}
	if got, _ := ParseItemType("consumable"); got != TypeConsumable {
		t.Error("parsing should be case-insensitive")
	}
}
