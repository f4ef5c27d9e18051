package tetris

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
	g.session.piece = NewPiece(KindO)
	g.session.Events()
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists("tetris"))

	g, err := registry.Create("tetris")
	require.NoError(t, err)
	assert.Equal(t, "Tetris", g.Title())
	_, ok := g.(registry.Resizer)
	assert.True(t, ok)
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 60}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	script := map[int][]core.Action{
		5:   {core.ActionRotate},
		10:  {core.ActionLeft},
		11:  {core.ActionLeft},
		40:  {core.ActionHardDrop},
		60:  {core.ActionHold},
		90:  {core.ActionRight, core.ActionSoftDrop},
		120: {core.ActionHardDrop},
	}

	for i := 0; i < 600; i++ {
		in := frame(script[i]...)
		g1.Step(in)
		g2.Step(in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Equal(t, uint64(600), g1.Snapshot().Tick)
}

func TestDirectionReleasedAfterGrace(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionLeft))
	require.Equal(t, 2, g.session.Current().X)
	require.True(t, g.session.Pressed(DirLeft))

	// 7 idle ticks at 60Hz stay inside the 120ms grace
	for range 7 {
		g.Step(frame())
	}
	assert.True(t, g.session.Pressed(DirLeft))

	g.Step(frame())
	assert.False(t, g.session.Pressed(DirLeft))
	assert.Equal(t, 2, g.session.Current().X)
}

func TestTapMovesOnceAtAnyTickRate(t *testing.T) {
	for _, rate := range []int{60, 30, 10, 5} {
		t.Run(fmt.Sprintf("%d fps", rate), func(t *testing.T) {
			g := New()
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: rate, Seed: 12345})
			g.session.piece = NewPiece(KindO)

			g.Step(frame(core.ActionLeft))
			for range 10 {
				g.Step(frame())
			}

			assert.Equal(t, SpawnX-1, g.session.Current().X)
			assert.False(t, g.session.Pressed(DirLeft))
		})
	}
}

func TestHeldDirectionAutorepeats(t *testing.T) {
	g := newTestGame(t)

	for range 12 {
		g.Step(frame(core.ActionLeft))
	}

	// One move on press, one repeat once 160ms of holding have passed
	assert.Equal(t, 1, g.session.Current().X)
}

func TestPauseFreezesGame(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)

	y := g.session.Current().Y
	for range 120 {
		g.Step(frame(core.ActionLeft, core.ActionHardDrop))
	}
	assert.Equal(t, y, g.session.Current().Y)
	assert.Equal(t, SpawnX, g.session.Current().X)
	assert.Equal(t, 0, g.session.PiecesLocked())

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestStepForwardsEvents(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(frame(core.ActionHardDrop))

	var got []core.EventKind
	for _, e := range res.Events {
		got = append(got, e.Kind)
	}
	assert.Contains(t, got, core.EventLocked)
	assert.Equal(t, 1, g.session.PiecesLocked())
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	for x := 3; x <= 6; x++ {
		g.session.board.Set(x, 0, true)
	}
	g.session.spawn(NewPiece(KindO))
	require.True(t, g.State().GameOver)

	// Pause is ignored once the game is over
	res := g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)

	res = g.Step(frame(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
	b := g.session.Board()
	assert.False(t, b.Occupied(3, 0))
}

func TestResizeKeepsSession(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionHardDrop))

	g.Resize(120, 40)
	assert.Equal(t, 1, g.session.PiecesLocked())

	g.Resize(20, 10)
	assert.True(t, g.tooSmall)
	g.Step(frame(core.ActionHardDrop))
	assert.Equal(t, 1, g.session.PiecesLocked(), "too-small window freezes play")
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"TETRIS", "HOLD", "SCORE", "LINES", "[]", "::"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "GAME OVER")
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Step(frame(core.ActionPause))
	for x := 3; x <= 6; x++ {
		g.session.board.Set(x, 0, true)
	}
	g.session.spawn(NewPiece(KindO))
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")

	g.Resize(20, 10)
	small := core.NewScreen(20, 10)
	g.Render(small)
	assert.Contains(t, small.String(), "Window too small")
}

func TestRenderWithoutGhost(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Display.Ghost = false
	Configure(cfg)
	t.Cleanup(func() { Configure(config.DefaultTetrisConfig()) })

	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.False(t, strings.Contains(screen.String(), "::"))
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(config.DefaultTetrisConfig())
	assert.Equal(t, DefaultOptions(), opts)
}
