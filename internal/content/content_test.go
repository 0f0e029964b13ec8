package content

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/become-pm/internal/config"
	"github.com/vovakirdan/become-pm/internal/core"
	"github.com/vovakirdan/become-pm/internal/engine"
	"github.com/vovakirdan/become-pm/internal/gamestate"
)

func testEnv(w, h int) (Env, *gamestate.State) {
	state := gamestate.New(nil)
	return Env{
		Config:      engine.Config{Width: w, Height: h, TargetFPS: 60},
		PixelRatio:  1,
		Score:       state,
		Progression: config.NewProgression(config.Default().Progression),
		FPS:         func() int { return 60 },
	}, state
}

func TestRegistryList(t *testing.T) {
	list := List()
	require.GreaterOrEqual(t, len(list), 2)

	ids := make([]string, len(list))
	for i, info := range list {
		ids[i] = info.ID
		assert.NotEmpty(t, info.Title)
	}
	assert.Contains(t, ids, "square")
	assert.Contains(t, ids, "pulse")
	assert.IsIncreasing(t, ids)
}

func TestRegistryCreate(t *testing.T) {
	env, _ := testEnv(40, 12)

	c, err := Create("square", env)
	require.NoError(t, err)
	assert.Equal(t, "square", c.ID())

	_, err = Create("missing", env)
	assert.Error(t, err)
	assert.False(t, Exists("missing"))
	assert.True(t, Exists("pulse"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() { Register("square", NewSquare) })
}

func TestLogicalSize(t *testing.T) {
	env := Env{Config: engine.Config{Width: 80, Height: 24}, PixelRatio: 2}
	w, h := env.LogicalSize()
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 12.0, h)

	env.PixelRatio = 0
	w, _ = env.LogicalSize()
	assert.Equal(t, 80.0, w)
}

func TestSquareScoresOnCentreCrossing(t *testing.T) {
	env, state := testEnv(40, 12)
	sq := NewSquare(env).(*Square)

	// Half a swing period is pi seconds.
	sq.Update(1000)
	assert.Equal(t, 0.0, state.Score())

	sq.Update(3000) // elapsed 4s, past pi
	assert.Equal(t, float64(squarePoints), state.Score())

	sq.Update(1000) // elapsed 5s, still negative side
	assert.Equal(t, float64(squarePoints), state.Score())

	sq.Update(2000) // elapsed 7s, past 2*pi
	assert.Equal(t, float64(2*squarePoints), state.Score())
}

func TestSquareLevelsUp(t *testing.T) {
	env, state := testEnv(40, 12)
	sq := NewSquare(env).(*Square)

	// Ten crossings at 100 points per level.
	for i := 0; i < 10; i++ {
		sq.score()
	}
	assert.Equal(t, 100.0, state.Score())
	assert.Equal(t, 2, state.Level())
}

func TestSquareRender(t *testing.T) {
	env, _ := testEnv(40, 12)
	sq := NewSquare(env).(*Square)
	screen := core.NewScreen(40, 12, 1)

	sq.Render(screen.Canvas())

	// Block centred at rest.
	assert.Equal(t, core.FillRune, screen.Get(20, 6))
	assert.Equal(t, core.RGB(0x66, 0x7e, 0xea), screen.GetCell(20, 6).Color)
	// Background fill elsewhere.
	assert.Equal(t, core.RGB(0xf5, 0xf5, 0xf5), screen.GetCell(0, 11).Color)
	assert.True(t, strings.Contains(screen.Row(0), "FPS: 60"))
	assert.Equal(t, 'F', screen.Get(1, 0))
}

func TestSquareRenderScaled(t *testing.T) {
	env, _ := testEnv(40, 12)
	env.PixelRatio = 2
	sq := NewSquare(env).(*Square)

	screen := core.NewScreen(40, 12, 2)
	ctx := screen.Canvas()
	ctx.Scale(2, 2)
	sq.Render(ctx)

	// Logical drawing fills the whole surface once scaled.
	assert.Equal(t, core.FillRune, screen.Get(39, 11))
	assert.Equal(t, core.FillRune, screen.Get(20, 6))
}

func TestSquareSpeedFollowsLevel(t *testing.T) {
	env, state := testEnv(40, 12)
	sq := NewSquare(env).(*Square)

	state.SetLevel(3)
	sq.Update(1000)
	want := config.Default().Progression.SpeedPerLevel*2 + 1
	assert.InDelta(t, want, sq.elapsed, 1e-9)
	assert.InDelta(t, math.Sin(want)*10, sq.Offset(), 1e-9)
}

func TestPulseUpdate(t *testing.T) {
	env, state := testEnv(20, 8)
	p := NewPulse(env).(*Pulse)

	for i := 0; i < 70; i++ {
		p.Update(16)
	}
	assert.Len(t, p.Deltas(), 70)
	assert.InDelta(t, 16, p.AverageMillis(), 1e-9)
	assert.Equal(t, 1.0, state.Score(), "1120ms of play is one point")

	for i := 0; i < pulseHistory; i++ {
		p.Update(10)
	}
	assert.Len(t, p.Deltas(), pulseHistory)
	assert.InDelta(t, 10, p.AverageMillis(), 1e-9)
}

func TestPulseRender(t *testing.T) {
	env, _ := testEnv(20, 8)
	p := NewPulse(env).(*Pulse)
	p.Update(16)
	p.Update(70)

	screen := core.NewScreen(20, 8, 1)
	p.Render(screen.Canvas())

	assert.Contains(t, screen.Row(0), "delta 70.0ms")
	// Slow frame in the last column reaches the top of the chart.
	assert.Equal(t, core.RGB(205, 49, 49), screen.GetCell(19, 2).Color)
	// Fast frame next to it is shorter.
	assert.Equal(t, core.FillRune, screen.Get(18, 7))
	assert.Equal(t, ' ', screen.Get(18, 2))
}
