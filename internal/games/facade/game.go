// Package facade implements the side-scrolling platformer as a registry
// game: one instance plays one level with one art pack.
package facade

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/jws412/Facade/internal/art"
	"github.com/jws412/Facade/internal/config"
	"github.com/jws412/Facade/internal/core"
	"github.com/jws412/Facade/internal/engine"
	"github.com/jws412/Facade/internal/level"
	"github.com/jws412/Facade/internal/render"
)

// Game runs one level.
type Game struct {
	level level.Level
	cfg   config.FacadeConfig
	art   *art.Art

	world   *engine.World
	engine  *engine.Engine
	comp    *render.Compositor
	view    render.View
	focused bool
	paused  bool
	rt      core.RuntimeConfig
}

// New creates a game for lvl. The level must fit the configured screen.
func New(lvl level.Level, cfg config.FacadeConfig, a *art.Art) (*Game, error) {
	if err := lvl.Fits(cfg.Display.Width, cfg.Display.TileSize); err != nil {
		return nil, err
	}
	if err := a.Check(cfg.Display.Width, cfg.Display.Height, cfg.Display.TileSize); err != nil {
		return nil, err
	}
	g := &Game{
		level:   lvl,
		cfg:     cfg,
		art:     a,
		engine:  engine.New(),
		focused: true,
	}
	g.comp = render.NewCompositor(a.Atlas, a.Background, g.engine.Behaviors())
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the level ID.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level name.
func (g *Game) Title() string {
	return g.level.Name
}

// Resolution returns the backbuffer size.
func (g *Game) Resolution() (w, h int) {
	return g.cfg.Display.Width, g.cfg.Display.Height
}

// Reset puts the level back to its starting layout.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.world = &engine.World{
		Grid:     g.level.Grid(g.cfg.Display.ColumnHeight()),
		Molds:    g.art.Molds,
		Actors:   g.level.NewStore(),
		Spawn:    g.level.Spawn,
		TileSize: g.cfg.Display.TileSize,
		ScreenW:  g.cfg.Display.Width,
		ScreenH:  g.cfg.Display.Height,
		Physics:  g.cfg.Physics.Engine(),
	}
	g.engine.Reset()
	g.paused = false
	g.view = render.Follow(g.world)
}

// SetFocused tells the game whether the window has focus. Unfocused ticks
// still run, but see no buttons.
func (g *Game) SetFocused(focused bool) {
	g.focused = focused
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		log.Debug("level restarted", "level", g.level.ID, "ticks", g.engine.Stats().Ticks)
		g.Reset(g.rt)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	deaths := g.engine.Stats().Deaths
	g.engine.Tick(g.world, in, g.focused)
	if s := g.engine.Stats(); s.Deaths != deaths {
		log.Debug("player died", "level", g.level.ID, "deaths", s.Deaths, "tick", s.Ticks)
	}

	return core.StepResult{State: g.State()}
}

// Render composites the current frame into dst.
func (g *Game) Render(dst *core.Framebuffer) {
	g.view = g.comp.Render(g.world, dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.engine.Stats()
	return core.GameState{
		Deaths: s.Deaths,
		Stomps: s.Stomps,
		Ticks:  s.Ticks,
		Paused: g.paused,
	}
}

// DebugLines describes the simulation for the debug overlay.
func (g *Game) DebugLines() []string {
	p := g.world.Player()
	return []string{
		fmt.Sprintf("pos %d,%d  vel %d,%d  anim %d", p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Anim.Code()),
		fmt.Sprintf("grounded %t  focused %t", g.engine.Grounded(), g.focused),
		fmt.Sprintf("camera %s x=%d cols %d..%d off %d", g.view.Mode, g.view.CamLeft, g.view.LeftCol, g.view.RightCol, g.view.Offset),
		fmt.Sprintf("actors %d/%d live", g.world.Actors.Live(), g.world.Actors.Capacity()),
	}
}

// World exposes the simulated world, mainly for tests and tools.
func (g *Game) World() *engine.World {
	return g.world
}
