// Package quest tracks the player's quest log.
package quest

import "fmt"

// Quest is one entry in the quest log. A quest with a Goal completes
// itself once enough matching enemies have been defeated.
type Quest struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Goal        *Goal  `yaml:"goal,omitempty"`
	Progress    int    `yaml:"-"`
	Completed   bool   `yaml:"-"`
}

// Goal asks for Count defeats of Enemy. An empty Enemy matches any.
type Goal struct {
	Enemy string `yaml:"enemy"`
	Count int    `yaml:"count"`
}

// Status renders progress text for the quest screen.
func (q *Quest) Status() string {
	switch {
	case q.Completed:
		return "complete"
	case q.Goal == nil:
		return "in progress"
	default:
		return fmt.Sprintf("%d/%d", q.Progress, q.Goal.Count)
	}
}

// Tracker holds quests in the order they were accepted.
type Tracker struct {
	quests []*Quest
	byID   map[string]*Quest
}

// NewTracker returns an empty quest log.
func NewTracker() *Tracker {
	return &Tracker{byID: map[string]*Quest{}}
}

// Add accepts a copy of q. Accepting a quest twice is an error.
func (t *Tracker) Add(q Quest) error {
	if _, dup := t.byID[q.ID]; dup {
		return fmt.Errorf("quest %q already accepted", q.ID)
	}
	cp := q
	t.quests = append(t.quests, &cp)
	t.byID[q.ID] = &cp
	return nil
}

// Get returns the quest with id or nil.
func (t *Tracker) Get(id string) *Quest { return t.byID[id] }

// Complete marks a quest done. It reports false for unknown ids.
func (t *Tracker) Complete(id string) bool {
	q := t.byID[id]
	if q == nil {
		return false
	}
	q.Completed = true
	return true
}

// All returns every accepted quest.
func (t *Tracker) All() []*Quest { return t.quests }

// Active returns quests not yet completed.
func (t *Tracker) Active() []*Quest {
	var out []*Quest
	for _, q := range t.quests {
		if !q.Completed {
			out = append(out, q)
		}
	}
	return out
}

// RecordKill advances every matching goal and returns the quests the kill
// completed.
func (t *Tracker) RecordKill(enemy string) []*Quest {
	var done []*Quest
	for _, q := range t.quests {
		if q.Completed || q.Goal == nil {
			continue
		}
		if q.Goal.Enemy != "" && q.Goal.Enemy != enemy {
			continue
		}
		q.Progress++
		if q.Progress >= q.Goal.Count {
			q.Completed = true
			done = append(done, q)
		}
	}
	return done
}
