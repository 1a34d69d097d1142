package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"termrpg/assets"
	"termrpg/internal/component"
	"termrpg/internal/config"
	"termrpg/internal/encounter"
	"termrpg/internal/gamemap"
	"termrpg/internal/generate"
	"termrpg/internal/player"
	"termrpg/internal/quest"
	"termrpg/internal/render"
	"termrpg/internal/system"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StateExploring GameState = iota
	StateCombat
	StateMenu
)

// maxMessages caps the message log.
const maxMessages = 50

// exploreRadius is how far from the campfire the first quest asks the
// player to wander.
const exploreRadius = 10

const firstQuest = "first-steps"

// errScreenClosed is reported when the event stream ends mid-prompt.
var errScreenClosed = errors.New("screen closed")

// Options configures a Game.
type Options struct {
	Config  config.Config
	Catalog *assets.Catalog
	Logger  *slog.Logger
	RunLog  *RunLog // nil disables the combat history
}

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	events   chan tcell.Event
	cfg      config.Config
	catalog  *assets.Catalog
	log      *slog.Logger
	runLog   *RunLog
	rng      *rand.Rand
	gmap     *gamemap.GameMap
	player   *player.Player
	quests   *quest.Tracker
	trigger  encounter.Trigger
	wanderer *system.Wanderer
	state    GameState
	messages []string
	autowalk bool
	paused   bool
	lore     map[string]bool // enemies whose lore has been shown
	polling  bool
}

// New builds the world and the player on an initialised screen.
func New(screen tcell.Screen, opts Options) (*Game, error) {
	if opts.Catalog == nil {
		return nil, errors.New("game: nil catalog")
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	rng := rand.New(rand.NewSource(opts.Config.Seed))

	gmap, px, py := generate.Generate(generate.DefaultConfig(opts.Config.MapWidth, opts.Config.MapHeight, rng))

	p, err := newPlayer(opts.Config.PlayerName, opts.Catalog)
	if err != nil {
		return nil, err
	}
	p.Pos = player.Point{X: px, Y: py}
	p.Respawn = p.Pos

	quests := quest.NewTracker()
	for _, q := range opts.Catalog.Player.Quests {
		if err := quests.Add(q); err != nil {
			return nil, fmt.Errorf("starting quests: %w", err)
		}
	}

	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		events:   make(chan tcell.Event, 32),
		cfg:      opts.Config,
		catalog:  opts.Catalog,
		log:      opts.Logger,
		runLog:   opts.RunLog.ForPlayer(p.Name),
		rng:      rng,
		gmap:     gmap,
		player:   p,
		quests:   quests,
		trigger:  encounter.Trigger{Chance: opts.Config.EncounterChance, Rand: rng},
		wanderer: system.NewWanderer(system.DefaultWanderWeights),
		lore:     make(map[string]bool),
	}
	g.addMessage(fmt.Sprintf("Welcome, %s. The campfire crackles beside you.", p.Name))
	g.log.Info("game started", "seed", opts.Config.Seed, "map_width", gmap.Width, "map_height", gmap.Height)
	return g, nil
}

// newPlayer creates a player carrying the catalog's starting kit.
func newPlayer(name string, catalog *assets.Catalog) (*player.Player, error) {
	setup := catalog.Player
	p := player.New(name, setup.MaxHealth, catalog)
	for _, kit := range setup.StartingItems {
		p.AddItem(kit.ItemID, kit.Quantity)
	}
	for _, id := range setup.Equip {
		if _, err := p.Equip(id); err != nil {
			return nil, fmt.Errorf("starting equipment %d: %w", id, err)
		}
	}
	return p, nil
}

// Player returns the player character.
func (g *Game) Player() *player.Player { return g.player }

// State returns what the game is currently showing.
func (g *Game) State() GameState { return g.state }

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// Run executes the game loop until the player quits, the screen closes or
// ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	g.startPolling()
	for {
		g.draw()

		var wander <-chan time.Time
		if g.autowalk && !g.paused {
			wander = time.After(g.cfg.WanderDelay)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-g.events:
			if !ok {
				return nil
			}
			if quit := g.handleEvent(ctx, ev); quit {
				g.log.Info("player quit", "kills", g.player.Kills, "total_level", g.player.Skills().TotalLevel())
				return nil
			}
		case <-wander:
			g.wander(ctx)
		}
	}
}

// startPolling feeds screen events into g.events until the screen is
// finalised.
func (g *Game) startPolling() {
	if g.polling {
		return
	}
	g.polling = true
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(g.events)
				return
			}
			g.events <- ev
		}
	}()
}

// nextKey blocks for the next key press, handling resizes on the way.
func (g *Game) nextKey(ctx context.Context) (*tcell.EventKey, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case ev, ok := <-g.events:
			if !ok {
				return nil, errScreenClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
				g.renderer.Resize()
				return nil, nil
			case *tcell.EventKey:
				return ev, nil
			}
		}
	}
}

// handleEvent processes one overworld event and reports whether to quit.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		return g.handleAction(ctx, keyToAction(ev))
	}
	return false
}

func (g *Game) handleAction(ctx context.Context, a Action) bool {
	switch a {
	case ActionQuit:
		return true
	case ActionMoveN, ActionMoveS, ActionMoveE, ActionMoveW:
		if g.autowalk {
			g.stopAutowalk("You stop wandering.")
		}
		dx, dy := actionToDelta(a)
		g.afterMove(ctx, system.TryMove(g.gmap, g.player, dx, dy))
	case ActionAutowalk:
		if g.autowalk {
			g.stopAutowalk("You stop wandering.")
		} else {
			g.autowalk, g.paused = true, false
			g.addMessage("You set off wandering. (a to stop, p to pause)")
		}
	case ActionPause:
		if g.autowalk {
			g.paused = !g.paused
			if g.paused {
				g.addMessage("Wandering paused.")
			} else {
				g.addMessage("Wandering resumed.")
			}
		}
	case ActionInventory:
		g.runInventory(ctx)
	case ActionSkills:
		g.runSkills(ctx)
	case ActionQuests:
		g.runQuests(ctx)
	}
	return false
}

func (g *Game) stopAutowalk(msg string) {
	g.autowalk, g.paused = false, false
	g.addMessage(msg)
}

// wander takes one autonomous step.
func (g *Game) wander(ctx context.Context) {
	res := g.wanderer.Step(g.gmap, g.player, g.rng)
	if res == system.MoveBlocked {
		g.stopAutowalk("You are boxed in and stop wandering.")
		return
	}
	g.afterMove(ctx, res)
}

// afterMove runs the per-step checks once the player lands on a new tile.
func (g *Game) afterMove(ctx context.Context, res system.MoveResult) {
	switch res {
	case system.MoveBlocked:
		return
	case system.MoveCampfire:
		g.rest()
	}
	g.checkExplored()
	if g.trigger.Check(g.player.InCombat()) {
		if g.autowalk {
			g.stopAutowalk("Something blocks your path!")
		}
		g.fight(ctx)
	}
}

// rest restores the player at the campfire.
func (g *Game) rest() {
	hp := g.player.Health()
	if hp.Current < hp.Max {
		g.player.Heal(hp.Max)
		hp = g.player.Health()
		g.addMessage(fmt.Sprintf("You rest by the campfire. (%d/%d)", hp.Current, hp.Max))
	}
	if len(assets.CampfireLore) > 0 {
		g.addMessage(assets.CampfireLore[g.rng.Intn(len(assets.CampfireLore))])
	}
}

func (g *Game) checkExplored() {
	q := g.quests.Get(firstQuest)
	if q == nil || q.Completed {
		return
	}
	dx := g.player.Pos.X - g.player.Respawn.X
	dy := g.player.Pos.Y - g.player.Respawn.Y
	if abs(dx)+abs(dy) >= exploreRadius {
		g.quests.Complete(firstQuest)
		g.addMessage(fmt.Sprintf("Quest complete: %s", q.Name))
	}
}

// respawn returns a defeated player to the campfire at full health.
func (g *Game) respawn() {
	g.player.Revive()
	g.addMessage("You wake up beside the campfire, fully healed.")
}

// addMessage appends a message to the log, keeping the last maxMessages.
func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// status reports what the HUD shows.
func (g *Game) status() render.Status {
	weapon := "bare hands"
	if name, ok := g.catalog.ItemName(g.player.Equipped(component.SlotMainHand)); ok {
		weapon = name
	}
	return render.Status{
		Name:       g.player.Name,
		Health:     g.player.Health(),
		Weapon:     weapon,
		TotalLevel: g.player.Skills().TotalLevel(),
		X:          g.player.Pos.X,
		Y:          g.player.Pos.Y,
		Autowalk:   g.autowalk,
		Paused:     g.paused,
	}
}

func (g *Game) draw() {
	g.state = StateExploring
	g.renderer.DrawWorld(g.gmap, g.player)
	g.renderer.DrawHUD(g.status(), g.messages)
	g.renderer.Show()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
