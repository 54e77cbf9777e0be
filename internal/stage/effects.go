package stage

import (
	"time"

	"github.com/vovakirdan/reflex/internal/config"
	"github.com/vovakirdan/reflex/internal/core"
	"github.com/vovakirdan/reflex/internal/game"
)

// cueDuration is how long a sound cue stays visible in the HUD.
const cueDuration = 300 * time.Millisecond

type cue struct {
	sound game.Sound
	left  time.Duration
	count int
}

func (c *cue) advance(dt time.Duration) {
	c.left = max(c.left-dt, 0)
}

// effects tracks the running cosmetic effects.
type effects struct {
	cfg config.EffectsConfig
	rng game.Rand

	shakeLeft time.Duration
	stepLeft  time.Duration
	offset    core.Vec

	splashLeft  time.Duration
	splashTotal time.Duration

	descAlpha  float64 // 1 = fully visible
	descTarget float64
	descRate   float64 // alpha per second
}

func newEffects(cfg config.EffectsConfig, rng game.Rand) effects {
	return effects{
		cfg:        cfg,
		rng:        rng,
		descAlpha:  1,
		descTarget: 1,
	}
}

func (e *effects) start(fx game.Effect) {
	d := config.Seconds(fx.Magnitude)
	switch fx.Kind {
	case game.EffectShake:
		e.shakeLeft = max(e.shakeLeft, d)
		e.stepLeft = 0
	case game.EffectSplash:
		e.splashLeft = d
		e.splashTotal = d
	case game.EffectFadeIn, game.EffectFadeOut:
		if fx.Target != game.LabelDescription {
			return
		}
		e.descTarget = 0
		if fx.Kind == game.EffectFadeIn {
			e.descTarget = 1
		}
		if d <= 0 {
			e.descAlpha = e.descTarget
			return
		}
		e.descRate = 1 / d.Seconds()
	}
}

func (e *effects) advance(dt time.Duration) {
	// Shake: a new random offset every shake step until time runs out.
	if e.shakeLeft > 0 {
		e.shakeLeft -= dt
		e.stepLeft -= dt
		if e.stepLeft <= 0 {
			e.stepLeft = config.Seconds(e.cfg.ShakeStep)
			e.offset = core.V(
				(e.rng.Float64()*2-1)*e.cfg.ShakeAmplitudeX,
				(e.rng.Float64()*2-1)*e.cfg.ShakeAmplitudeY,
			)
		}
	}
	if e.shakeLeft <= 0 {
		e.shakeLeft = 0
		e.offset = core.Vec{}
	}

	e.splashLeft = max(e.splashLeft-dt, 0)

	step := e.descRate * dt.Seconds()
	switch {
	case e.descAlpha < e.descTarget:
		e.descAlpha = min(e.descAlpha+step, e.descTarget)
	case e.descAlpha > e.descTarget:
		e.descAlpha = max(e.descAlpha-step, e.descTarget)
	}
}

// splash returns the remaining splash intensity in [0, 1].
func (e *effects) splash() float64 {
	if e.splashTotal <= 0 {
		return 0
	}
	return float64(e.splashLeft) / float64(e.splashTotal)
}
