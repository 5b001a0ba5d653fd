// Package starfall implements Starfall, an asteroid-dodging shooter:
// steer the ship along the bottom of the screen, shoot the falling
// rocks, collect ammo and power-ups, survive as levels speed up.
package starfall

import (
	"time"

	"github.com/velikanov/astro-arcade/internal/config"
	"github.com/velikanov/astro-arcade/internal/core"
	"github.com/velikanov/astro-arcade/internal/engine"
	"github.com/velikanov/astro-arcade/internal/registry"
)

// Game state constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeClassic GameMode = iota // Standard pacing
	ModeBlitz                   // Short levels, fast ramp-up
)

// HUD occupies the top rows; the simulation world sits below it.
const hudHeight = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// floatingText is a short-lived HUD annotation drifting upward. The
// drift eases out over its lifetime so the text settles before fading.
type floatingText struct {
	x, y float64 // spawn anchor in world cells
	text string
	age  int
	life int
}

// star is one cell of the scrolling background.
type star struct {
	x, y  int
	glyph rune
}

// Game implements the Starfall game logic on top of the simulation
// engine. It owns presentation-side state only: the engine session is
// the single source of gameplay truth.
type Game struct {
	mode GameMode

	session *engine.Session
	runtime core.RuntimeConfig
	state   string

	// Cached from the loaded config for the HUD health bar.
	maxHealth int

	// Reused buffers
	views []engine.EntityView
	texts []floatingText
	stars []star

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Starfall game instance.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBlitz creates a Starfall instance with blitz pacing.
func NewBlitz() *Game {
	return &Game{mode: ModeBlitz}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeBlitz {
		return "starfall_blitz"
	}
	return "starfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeBlitz {
		return "Starfall (Blitz)"
	}
	return "Starfall"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
	if g.screenTooSmall {
		return
	}

	cfg, err := config.LoadStarfall(configPath)
	if err != nil {
		cfg = config.DefaultStarfallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyStarfallPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeBlitz {
		cfg.Levels.DurationTicks = 600
		cfg.Spawning.AsteroidInterval = 40
		cfg.Spawning.PowerUpLevel = 1
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	worldW := float64(runtime.ScreenW)
	worldH := float64(runtime.ScreenH - hudHeight)
	ecfg := cfg.ToEngine(worldW, worldH)
	ecfg.Seed = seed
	g.maxHealth = ecfg.Player.MaxHealth

	session, err := engine.NewSession(ecfg)
	if err != nil {
		// Tampered user config; the defaults always validate.
		session, _ = engine.NewSession(engine.DefaultConfig(worldW, worldH))
	}
	g.session = session

	g.state = StatePlaying
	g.texts = g.texts[:0]
	g.buildStarfield(seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.Control) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Restart && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Pause {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	events := g.session.Step(engine.Control{AxisX: in.AxisX, Fire: in.Fire})
	for _, ev := range events {
		g.handleEvent(ev)
	}
	g.advanceTexts()

	if g.session.Over() {
		g.state = StateGameOver
	}
	return core.StepResult{State: g.State()}
}

// handleEvent turns simulation events into presentation state.
func (g *Game) handleEvent(ev engine.Event) {
	switch ev.Kind {
	case engine.EventScoreDelta:
		// Only the running total is shown; per-kill popups would
		// drown the small playfield.
	case engine.EventFloatingText:
		g.addText(ev.X, ev.Y, ev.Text, 60)
	case engine.EventLevelUp:
		// Text arrives as its own event.
	case engine.EventSpawnEffect, engine.EventGameOver:
		// Explosion debris is simulated as particles and rendered
		// from the snapshot; no extra animation state needed.
	}
}

func (g *Game) addText(x, y float64, text string, life int) {
	g.texts = append(g.texts, floatingText{x: x, y: y, text: text, life: life})
}

// advanceTexts ages floating texts and expires them.
func (g *Game) advanceTexts() {
	alive := g.texts[:0]
	for _, t := range g.texts {
		t.age++
		if t.age >= t.life {
			continue
		}
		alive = append(alive, t)
	}
	g.texts = alive
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
	if g.session != nil {
		st.Score = g.session.Score()
		st.Level = g.session.Level()
	}
	return st
}

// Register the games with the registry
func init() {
	registry.Register("starfall", func() registry.Game {
		return New()
	})
	registry.Register("starfall_blitz", func() registry.Game {
		return NewBlitz()
	})
}
