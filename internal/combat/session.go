package combat

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"termrpg/internal/skill"
)

// Outcome is how a finished combat ended.
type Outcome uint8

const (
	OutcomeVictory Outcome = iota
	OutcomeDefeat
	OutcomeFled
)

var outcomeNames = [...]string{"victory", "defeat", "fled"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", o)
}

// MarshalText encodes the outcome by name for the run log.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// LootLine is one item granted on victory.
type LootLine struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Result summarises a finished combat.
type Result struct {
	SessionID uuid.UUID          `json:"session_id"`
	Outcome   Outcome            `json:"outcome"`
	Enemy     string             `json:"enemy"`
	Turns     int                `json:"turns"`
	XP        map[string]float64 `json:"xp,omitempty"`
	Loot      []LootLine         `json:"loot,omitempty"`
	LevelUps  []skill.LevelUp    `json:"level_ups,omitempty"`
	Summary   string             `json:"summary"`
}

// Turn reports what one Step did.
type Turn struct {
	Action      Action
	State       State
	DamageDealt int
	DamageTaken int
	EnemyActed  bool
	TurnUsed    bool
	Messages    []string
	Result      *Result // set once the combat is over
}

func (t *Turn) say(format string, args ...any) {
	t.Messages = append(t.Messages, fmt.Sprintf(format, args...))
}

// Deps are the collaborators a Session draws on. Zero Rules means
// DefaultRules; a nil Logger discards.
type Deps struct {
	Rand   Rand
	Loot   LootSource
	Items  ItemNamer
	Rules  Rules
	Logger *slog.Logger
}

// Session is one fight between the player and an enemy.
type Session struct {
	id      uuid.UUID
	player  Player
	enemy   *Enemy
	rng     Rand
	loot    LootSource
	items   ItemNamer
	rules   Rules
	log     *slog.Logger
	state   State
	pending int
	tally   Tally
	turns   int
	result  *Result
}

// New starts a combat and marks the player as in combat.
func New(p Player, e *Enemy, deps Deps) *Session {
	if deps.Rules == (Rules{}) {
		deps.Rules = DefaultRules()
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	id := uuid.New()
	s := &Session{
		id:     id,
		player: p,
		enemy:  e,
		rng:    deps.Rand,
		loot:   deps.Loot,
		items:  deps.Items,
		rules:  deps.Rules,
		log:    deps.Logger.With("combat", id.String(), "enemy", e.Name),
	}
	p.SetInCombat(true)
	s.log.Info("combat started", "enemy_hp", e.Health.Current, "enemy_attack", e.Attack)
	return s
}

func (s *Session) ID() uuid.UUID { return s.id }
func (s *Session) State() State { return s.state }
func (s *Session) Enemy() *Enemy { return s.enemy }
func (s *Session) Player() Player { return s.player }
func (s *Session) Tally() Tally { return s.tally }
func (s *Session) Result() *Result { return s.result }
func (s *Session) Done() bool { return s.state.Terminal() }
func (s *Session) PendingDamage() int { return s.pending }

// Step applies one player action. Once the combat is over Step only
// returns the stored result.
func (s *Session) Step(a Action) Turn {
	t := Turn{Action: a}
	wasOver := s.result != nil
	switch {
	case s.state.Terminal():
	case s.state == StateCharging:
		s.resolveCharge(&t)
	default:
		s.choose(a, &t)
	}
	if t.TurnUsed {
		s.turns++
	}
	if s.result != nil && !wasOver {
		s.result.Turns = s.turns
	}
	t.State = s.state
	t.Result = s.result
	s.log.Debug("combat turn",
		"action", a.Kind.String(),
		"state", s.state.String(),
		"dealt", t.DamageDealt,
		"taken", t.DamageTaken,
		"enemy_hp", s.enemy.Health.Current,
		"player_hp", s.player.Health().Current,
	)
	return t
}

// Abort ends an unfinished combat as fled without rolling anything.
func (s *Session) Abort() *Result {
	if !s.state.Terminal() {
		s.pending = 0
		s.finish(StateFled, OutcomeFled, "Combat abandoned.")
	}
	return s.result
}

func (s *Session) choose(a Action, t *Turn) {
	switch a.Kind {
	case ActionMain:
		dmg := s.rules.BaseDamage + s.player.WeaponBonus()
		s.strike(t, AttackMain, dmg, "You hit the %s for %d damage!")

	case ActionCharged:
		s.pending = s.rules.ChargeDamage()
		s.state = StateCharging
		t.TurnUsed = true
		t.say("You are preparing a charged attack...")
		s.retaliate(t)

	case ActionSpell:
		if !s.player.Skills().Has(s.rules.SpellSkill) {
			t.TurnUsed = true
			t.say("You don't have enough magic ability to cast a spell.")
			s.retaliate(t)
			return
		}
		s.strike(t, AttackMagic, s.rules.SpellDamage, "Your spell strikes the %s for %d damage!")

	case ActionUseItem:
		msg, err := s.player.UseItem(a.ItemID)
		if err != nil {
			t.say("%s", capitalize(err.Error()))
			return
		}
		t.say("%s", msg)

	case ActionFlee:
		t.TurnUsed = true
		if s.rng.Float64() < s.rules.FleeChance {
			t.say("Ran away from combat.")
			s.finish(StateFled, OutcomeFled, "Ran away from combat.")
			return
		}
		t.say("You failed to run away!")
		s.retaliate(t)

	case ActionContinue:
		// Nothing is pending.

	default:
		t.say("Invalid action.")
	}
}

func (s *Session) resolveCharge(t *Turn) {
	dmg := s.pending
	s.pending = 0
	s.state = StateChoosing
	s.strike(t, AttackCharged, dmg, "You unleash a charged attack on the %s for %d damage!")
}

// strike damages the enemy, records the attack and lets the enemy answer
// if it survives.
func (s *Session) strike(t *Turn, kind AttackKind, dmg int, format string) {
	t.TurnUsed = true
	t.DamageDealt = s.enemy.Health.Damage(dmg)
	s.tally[kind]++
	t.say(format, s.enemy.Name, t.DamageDealt)
	if s.enemy.Health.Dead() {
		s.victory(t)
		return
	}
	s.retaliate(t)
}

func (s *Session) retaliate(t *Turn) {
	t.EnemyActed = true
	t.DamageTaken = s.player.TakeDamage(s.enemy.Attack)
	t.say("The %s hits you for %d damage!", s.enemy.Name, t.DamageTaken)
	if s.player.Health().Dead() {
		s.pending = 0
		t.say("You were defeated...")
		s.finish(StateDefeat, OutcomeDefeat, fmt.Sprintf("You were defeated by the %s.", s.enemy.Name))
	}
}

func (s *Session) victory(t *Turn) {
	xp := XPForTally(s.tally, s.rules)
	var ups []skill.LevelUp
	for _, name := range sortedKeys(xp) {
		gained, ok := s.player.Skills().AddExperience(name, xp[name])
		if !ok {
			s.log.Warn("player lacks trained skill", "skill", name)
			continue
		}
		ups = append(ups, gained...)
	}
	lines := s.grantLoot()
	s.tally = Tally{}

	s.finish(StateVictory, OutcomeVictory, "")
	r := s.result
	r.XP, r.LevelUps, r.Loot = xp, ups, lines
	r.Summary = summarize(r)
	t.say("%s", r.Summary)
	for _, up := range ups {
		t.say("Your %s level is now %d!", up.Skill, up.Level)
	}
}

func (s *Session) grantLoot() []LootLine {
	if s.loot == nil || s.enemy.LootTable == "" {
		return nil
	}
	drops, ok := s.loot.Resolve(s.enemy.LootTable, s.rng)
	if !ok {
		s.log.Warn("unknown loot table", "table", s.enemy.LootTable)
		return nil
	}
	ids := make([]int, 0, len(drops))
	for id := range drops {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var lines []LootLine
	for _, id := range ids {
		name, ok := s.itemName(id)
		if !ok {
			s.log.Warn("loot references unknown item", "item", id, "table", s.enemy.LootTable)
			continue
		}
		s.player.AddItem(id, drops[id])
		lines = append(lines, LootLine{ItemID: id, Name: name, Quantity: drops[id]})
	}
	return lines
}

func (s *Session) itemName(id int) (string, bool) {
	if s.items == nil {
		return fmt.Sprintf("item %d", id), true
	}
	return s.items.ItemName(id)
}

func (s *Session) finish(state State, outcome Outcome, summary string) {
	s.state = state
	s.player.SetInCombat(false)
	s.result = &Result{
		SessionID: s.id,
		Outcome:   outcome,
		Enemy:     s.enemy.Name,
		Turns:     s.turns,
		Summary:   summary,
	}
	s.log.Info("combat finished", "outcome", outcome.String())
}

// summarize renders a victory line such as
// "Defeated a Goblin | +30 XP | Looted: (3) Gold Coins, (1) Bronze Dagger".
func summarize(r *Result) string {
	total := 0.0
	for _, v := range r.XP {
		total += v
	}
	looted := "nothing"
	if len(r.Loot) > 0 {
		parts := make([]string, len(r.Loot))
		for i, l := range r.Loot {
			parts[i] = fmt.Sprintf("(%d) %s", l.Quantity, l.Name)
		}
		looted = strings.Join(parts, ", ")
	}
	return fmt.Sprintf("Defeated a %s | +%g XP | Looted: %s", r.Enemy, total, looted)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
