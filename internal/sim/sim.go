// Package sim runs the game headlessly: a stage and an engine stepped on a
// simulated clock, with random swipes standing in for a player.
package sim

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reflex/internal/config"
	"github.com/vovakirdan/reflex/internal/core"
	"github.com/vovakirdan/reflex/internal/game"
	"github.com/vovakirdan/reflex/internal/stage"
)

// Options controls a simulation run.
type Options struct {
	Frames      int     // Number of frames to run
	SwipeChance float64 // Probability of a swipe on each frame
	Logger      *log.Logger
}

// DefaultOptions returns one minute at 60 fps with a swipe every half
// second on average.
func DefaultOptions() Options {
	return Options{
		Frames:      3600,
		SwipeChance: 1.0 / 30,
	}
}

// Result summarizes a run.
type Result struct {
	Frames    int
	Swipes    int
	Obstacles int
	Rounds    []int // Final score of every finished round
	Score     int   // Score of the round still running at the end, if any
	State     game.State
}

// Best returns the highest finished round score.
func (r Result) Best() int {
	best := 0
	for _, s := range r.Rounds {
		best = max(best, s)
	}
	return best
}

// counter wraps a presenter and counts obstacle spawns.
type counter struct {
	game.Presenter
	obstacles int
}

func (c *counter) SpawnEntity(e game.Entity) {
	if e.Kind == game.KindObstacle {
		c.obstacles++
	}
	c.Presenter.SpawnEntity(e)
}

// Run plays opts.Frames frames. The seed in rt drives both the game and
// the simulated player.
func Run(cfg config.Config, rt core.RuntimeConfig, opts Options) (Result, error) {
	if rt.TickRate <= 0 {
		return Result{}, fmt.Errorf("sim: tick rate must be positive, got %d", rt.TickRate)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(rt.Seed))
	player := rand.New(rand.NewSource(rt.Seed + 1))

	st := stage.New(cfg, rt, rng, nil)
	p := &counter{Presenter: st}
	engine, err := game.NewEngine(cfg, rt, p, rng, logger)
	if err != nil {
		return Result{}, fmt.Errorf("sim: %w", err)
	}
	st.SetSink(engine.Push)
	m := engine.Machine()
	m.Start()

	_, h := rt.PlayfieldSize()
	frame := time.Second / time.Duration(rt.TickRate)
	now := time.Unix(0, 0)

	var res Result
	for i := 0; i < opts.Frames; i++ {
		if player.Float64() < opts.SwipeChance {
			side := core.SideLeft
			if player.Intn(2) == 1 {
				side = core.SideRight
			}
			engine.Push(game.SwipeInput{Side: side, Y: player.Float64() * h})
			res.Swipes++
		}

		prev := m.State()
		st.Step(now)
		if err := engine.Frame(now); err != nil {
			return res, fmt.Errorf("sim: frame %d: %w", i, err)
		}
		if prev == game.StatePlay && m.State() == game.StateOver {
			res.Rounds = append(res.Rounds, m.Score())
			logger.Info("round over", "round", len(res.Rounds), "score", m.Score(), "frame", i)
		}

		res.Frames++
		now = now.Add(frame)
	}

	res.Obstacles = p.obstacles
	res.State = m.State()
	if res.State == game.StatePlay {
		res.Score = m.Score()
	}
	return res, nil
}
