package game

// Sound is an audio cue.
type Sound int

const (
	SoundLaunch Sound = iota
	SoundScore
	SoundGameOver
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundLaunch:
		return "launch"
	case SoundScore:
		return "score"
	case SoundGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// EffectKind is a cosmetic visual effect.
type EffectKind int

const (
	EffectShake EffectKind = iota
	EffectSplash
	EffectFadeIn
	EffectFadeOut
)

// String returns the effect name.
func (k EffectKind) String() string {
	switch k {
	case EffectShake:
		return "shake"
	case EffectSplash:
		return "splash"
	case EffectFadeIn:
		return "fadeIn"
	case EffectFadeOut:
		return "fadeOut"
	default:
		return "unknown"
	}
}

// Label names the UI element an effect applies to.
type Label int

const (
	LabelScene       Label = iota // The whole playfield layer
	LabelDescription              // The "Swipe left or right." hint
)

// Effect is a visual effect request. Magnitude is the effect duration in seconds.
type Effect struct {
	Kind      EffectKind
	Target    Label
	Magnitude float64
}

// Presenter is the one-way boundary to the rendering/physics/audio
// collaborator. Calls are fire-and-forget.
//
// SpawnEntity must create a body whose contacts are reported only against
// bodies of the other kind, and must later deliver TraversalComplete(e.ID)
// back to the core when the motion finishes.
type Presenter interface {
	SpawnEntity(e Entity)
	RemoveEntity(id EntityID)
	PlaySound(s Sound)
	PlayEffect(fx Effect)
	SetTheme(index int)
	SetScore(score int)
}

// NopPresenter ignores every request.
type NopPresenter struct{}

func (NopPresenter) SpawnEntity(Entity)    {}
func (NopPresenter) RemoveEntity(EntityID) {}
func (NopPresenter) PlaySound(Sound)       {}
func (NopPresenter) PlayEffect(Effect)     {}
func (NopPresenter) SetTheme(int)          {}
func (NopPresenter) SetScore(int)          {}
