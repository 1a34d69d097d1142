package quest

import "testing"

func TestTrackerAddAndComplete(t *testing.T) {
	tr := NewTracker()
	if err := tr.Add(Quest{ID: "intro", Name: "Welcome"}); err != nil {
		t.Fatal(err)
	}
	if err := tr.Add(Quest{ID: "intro"}); err == nil {
		t.Error("duplicate quest should be rejected")
	}
	if len(tr.Active()) != 1 {
		t.Fatalf("active = %d, want 1", len(tr.Active()))
	}
	if !tr.Complete("intro") {
		t.Fatal("Complete(intro) = false")
	}
	if tr.Complete("missing") {
		t.Error("Complete on unknown id should be false")
	}
	if len(tr.Active()) != 0 || len(tr.All()) != 1 {
		t.Errorf("active=%d all=%d", len(tr.Active()), len(tr.All()))
	}
	if tr.Get("intro").Status() != "complete" {
		t.Errorf("status = %q", tr.Get("intro").Status())
	}
}

func TestRecordKillAdvancesGoals(t *testing.T) {
	tr := NewTracker()
	_ = tr.Add(Quest{ID: "goblins", Goal: &Goal{Enemy: "Goblin", Count: 2}})
	_ = tr.Add(Quest{ID: "any", Goal: &Goal{Count: 3}})
	_ = tr.Add(Quest{ID: "talk"})

	if done := tr.RecordKill("Goblin"); len(done) != 0 {
		t.Fatalf("nothing should complete after one kill, got %d", len(done))
	}
	if tr.Get("goblins").Status() != "1/2" {
		t.Errorf("status = %q, want 1/2", tr.Get("goblins").Status())
	}
	tr.RecordKill("Wolf")
	if tr.Get("goblins").Progress != 1 {
		t.Error("non-matching kill advanced a named goal")
	}

	done := tr.RecordKill("Goblin")
	if len(done) != 2 {
		t.Fatalf("expected both goal quests to complete, got %d", len(done))
	}
	if tr.Get("talk").Completed {
		t.Error("quest without a goal completed from kills")
	}
	if tr.Get("talk").Status() != "in progress" {
		t.Errorf("status = %q", tr.Get("talk").Status())
	}
}
