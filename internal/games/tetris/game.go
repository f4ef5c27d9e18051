package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Layout of the playfield on screen. Each board cell is two characters wide.
const (
	cellW    = 2
	fieldW   = Cols*cellW + 2 // Including border
	fieldH   = Rows + 2
	panelGap = 2
	holdW    = 4*cellW + 2
	holdH    = 4 + 2
	minW     = fieldW + panelGap + holdW
	minH     = fieldH + 1 // Title row above the field
)

// settings is applied to every game created after Configure.
var settings = config.DefaultTetrisConfig()

// Configure sets the configuration used by subsequently reset games.
func Configure(cfg config.TetrisConfig) {
	settings = cfg
}

// OptionsFromConfig converts file configuration into session options.
func OptionsFromConfig(cfg config.TetrisConfig) Options {
	return Options{
		FallInterval: cfg.Timing.FallInterval(),
		RepeatDelay:  cfg.Timing.RepeatDelay(),
		RepeatRate:   cfg.Timing.RepeatRate(),
		LineScores:   cfg.Scoring.ScoreTable(),
	}
}

// Game adapts a Session to the terminal platform. It converts semantic
// actions into session mutators and renders the session into a Screen.
type Game struct {
	cfg     config.TetrisConfig
	session *Session
	tick    uint64
	tickDur time.Duration
	paused  bool

	// Terminals report key presses but not releases, so a direction counts
	// as held while its action keeps arriving and is released after
	// the configured grace period without one.
	idle [2]time.Duration

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a new Tetris game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "tetris",
		Title:       "Tetris",
		Description: "Stack falling pieces and clear full rows",
	}, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = settings
	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.tickDur = time.Second / time.Duration(rate)
	g.session = NewSession(rand.New(rand.NewSource(cfg.Seed)), OptionsFromConfig(g.cfg))
	g.tick = 0
	g.paused = false
	g.idle = [2]time.Duration{}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minW || h < minH
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.session.Restart()
		g.paused = false
		g.idle = [2]time.Duration{}
		return g.result()
	}

	if in.Has(core.ActionPause) && g.session.State() == Running {
		g.paused = !g.paused
	}

	// Frozen while paused or when the field cannot be drawn
	if g.paused || g.tooSmall || g.session.State() == GameOver {
		return g.result()
	}

	if in.Has(core.ActionRotate) {
		g.session.Rotate()
	}
	g.trackDirection(DirLeft, in.Has(core.ActionLeft))
	g.trackDirection(DirRight, in.Has(core.ActionRight))
	if in.Has(core.ActionSoftDrop) {
		g.session.SoftDrop()
	}
	if in.Has(core.ActionHold) {
		g.session.Hold()
	}
	if in.Has(core.ActionHardDrop) {
		g.session.HardDrop()
	}

	g.session.Tick(g.tickDur)
	return g.result()
}

// trackDirection turns the stream of key presses for d into press and
// release transitions on the session.
func (g *Game) trackDirection(d Direction, active bool) {
	if active {
		if !g.session.Pressed(d) {
			g.session.Press(d)
		}
		g.idle[d] = 0
		return
	}
	if !g.session.Pressed(d) {
		return
	}
	g.idle[d] += g.tickDur
	if g.idle[d] > g.cfg.Timing.ReleaseGrace() {
		g.session.Release(d)
		g.idle[d] = 0
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.session.Events()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == GameOver,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	ox := core.Clamp((dst.Width()-minW)/2, 0, core.Max(0, dst.Width()-minW))
	oy := core.Clamp((dst.Height()-minH)/2, 0, core.Max(0, dst.Height()-minH))

	dst.DrawTextColored(ox, oy, "TETRIS", core.ColorBrightGreen)

	field := core.NewRect(ox, oy+1, fieldW, fieldH)
	g.renderField(dst, field)

	panel := core.NewRect(field.Right()+panelGap, field.Y, holdW, holdH)
	g.renderHold(dst, panel)
	g.renderHUD(dst, panel.X, panel.Bottom()+1)

	switch {
	case g.session.State() == GameOver:
		g.renderOverlay(dst, field, "GAME OVER", fmt.Sprintf("Score: %d", g.session.Score()), "R to restart")
	case g.paused:
		g.renderOverlay(dst, field, "PAUSED", "", "P to resume")
	}
}

// renderField draws the border, background, locked cells, ghost and live piece.
func (g *Game) renderField(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r)

	board := g.session.Board()
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if board.Occupied(x, y) {
				g.drawCell(dst, r, x, y, "[]", core.ColorGreen)
			} else {
				g.drawCell(dst, r, x, y, " .", core.ColorDimGreen)
			}
		}
	}

	cur := g.session.Current()
	if g.cfg.Display.Ghost {
		ghost := cur
		ghost.Y = g.session.GhostY()
		for _, p := range ghost.Positions() {
			g.drawCell(dst, r, p.X, p.Y, "::", core.ColorGray)
		}
	}
	for _, p := range cur.Positions() {
		g.drawCell(dst, r, p.X, p.Y, "[]", cur.Kind.Color())
	}
}

// drawCell draws one board cell; rows above the field are skipped.
func (g *Game) drawCell(dst *core.Screen, field core.Rect, x, y int, glyph string, c core.Color) {
	if y < 0 || y >= Rows || x < 0 || x >= Cols {
		return
	}
	dst.DrawTextColored(field.X+1+x*cellW, field.Y+1+y, glyph, c)
}

func (g *Game) renderHold(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r)
	label := "HOLD"
	if !g.session.CanHold() {
		label = "HOLD*"
	}
	dst.DrawTextColored(r.X+1, r.Y, label, core.ColorWhite)

	kind, cells, ok := g.session.Held()
	if !ok {
		return
	}
	for _, c := range cells {
		dst.DrawTextColored(r.X+1+c.X*cellW, r.Y+1+c.Y, "[]", kind.Color())
	}
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, "SCORE", core.ColorWhite)
	dst.DrawTextColored(x, y+1, fmt.Sprintf("%d", g.session.Score()), core.ColorBrightGreen)
	dst.DrawTextColored(x, y+3, "LINES", core.ColorWhite)
	dst.DrawTextColored(x, y+4, fmt.Sprintf("%d", g.session.Lines()), core.ColorBrightGreen)
}

// renderOverlay draws a message box centred over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, field core.Rect, title, line, hint string) {
	boxW := fieldW - 4
	box := core.NewRect(field.X+2, field.Y+field.H/2-3, boxW, 6)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	center := func(y int, text string, c core.Color) {
		x := box.X + (box.W-len([]rune(text)))/2
		dst.DrawTextColored(x, y, text, c)
	}
	center(box.Y+1, title, core.ColorBrightGreen)
	center(box.Y+2, line, core.ColorWhite)
	center(box.Y+4, hint, core.ColorGray)
}
