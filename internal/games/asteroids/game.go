package asteroids

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

func init() {
	registry.Register("asteroids", func() registry.Game { return New() })
	registry.Register("asteroids_legacy", func() registry.Game { return NewLegacy() })
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           *log.Logger
)

// SetConfigPath sets a custom config path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next Reset.
// Unknown names fall back to the config file values.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger handed to new worlds.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts a World to the platform's fixed-tick game interface. The
// world is sized from the terminal: one cell covers CellWidth x CellHeight
// world units.
type Game struct {
	legacy  bool
	runtime core.RuntimeConfig
	cfg     config.AsteroidsConfig
	clock   *core.TickClock
	world   *World
	bounds  core.Bounds
	paused  bool
}

// New creates a game with the default collision rules.
func New() *Game {
	return &Game{}
}

// NewLegacy creates a game whose collision pass keeps destroyed entities
// in play until the end of the tick.
func NewLegacy() *Game {
	return &Game{legacy: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.legacy {
		return "asteroids_legacy"
	}
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.legacy {
		return "Asteroids (legacy collisions)"
	}
	return "Asteroids"
}

// Reset loads the configuration and starts a fresh world in attract mode.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultAsteroidsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	}
	if g.legacy {
		cfg.Rules.LegacyReevaluation = true
	}
	g.cfg = cfg

	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.clock = core.NewTickClock(runtime.TickRate)
	g.paused = false
	g.world = NewWorld(g.bounds, g.clock, core.NewRandom(runtime.Seed), WithConfig(cfg), WithLogger(logger))
}

// Resize changes the playfield to match a terminal of w x h cells. Entities
// keep their positions; the next tick wraps anything now outside.
func (g *Game) Resize(w, h int) {
	g.bounds = core.Bounds{
		W: float64(max(w, 1)) * g.cfg.World.CellWidth,
		H: float64(max(h, 1)) * g.cfg.World.CellHeight,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.world.State() == StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.clock.Advance()
	g.world.Step(g.bounds, in)

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	Render(g.world.View(), dst, g.cfg.World.CellWidth, g.cfg.World.CellHeight)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(subtitle), len(title)) + 4
	boxH := 4
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	box := core.NewRect(x, y, boxW, boxH)
	for row := box.Y; row < box.Bottom(); row++ {
		for col := box.X; col < box.Right(); col++ {
			dst.Set(col, row, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(y+2, subtitle, core.ColorWhite)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		Lives:    g.world.Lives(),
		Wave:     g.world.Wave(),
		Playing:  g.world.State() == StatePlaying,
		GameOver: g.world.State() == StateGameOver,
		Paused:   g.paused,
	}
}

// Record summarises the current run.
func (g *Game) Record() registry.RunRecord {
	snap := g.world.Snapshot()
	return registry.RunRecord{Wave: snap.Wave, Ticks: snap.Tick, Hash: snap.Hash()}
}

// World exposes the underlying simulation.
func (g *Game) World() *World {
	return g.world
}
