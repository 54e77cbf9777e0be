package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reflex/internal/config"
	"github.com/vovakirdan/reflex/internal/core"
	"github.com/vovakirdan/reflex/internal/game"
	"github.com/vovakirdan/reflex/internal/stage"
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	config    core.RuntimeConfig
	stage     *stage.Stage
	engine    *game.Engine
	screen    *core.Screen
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger
	aim       int  // Aim row, in screen rows from the top of the playfield
	dragX     int  // Column where the current mouse drag started
	dragging  bool // Whether the left button is held
	quitting  bool
	err       error
}

// NewModel creates a session with its own engine and stage.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(rt.Seed))
	st := stage.New(cfg, rt, rng, nil)
	engine, err := game.NewEngine(cfg, rt, st, rng, logger)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	st.SetSink(engine.Push)
	engine.Machine().Start()

	_, h := rt.PlayfieldSize()
	return Model{
		config:    rt,
		stage:     st,
		engine:    engine,
		screen:    core.NewScreen(rt.ScreenW, int(h)),
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		logger:    logger,
		aim:       int(h) / 2,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)
	if side, ok := action.SwipeSide(); ok {
		m.swipe(side, m.aim)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionAimUp:
		m.aim = core.Clamp(m.aim-1, 0, m.screen.Height()-1)
	case core.ActionAimDown:
		m.aim = core.Clamp(m.aim+1, 0, m.screen.Height()-1)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse turns a horizontal left-button drag into a swipe at the row
// where the drag started.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		// Some terminals report releases without a button, so only the
		// press is checked.
		if msg.Button == tea.MouseButtonLeft && m.onPlayfield(msg.X, msg.Y) {
			m.dragX = msg.X
			m.aim = msg.Y
			m.dragging = true
		}
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		if side, ok := dragSide(m.dragX, msg.X); ok {
			m.swipe(side, m.aim)
		}
	}
	return m, nil
}

// onPlayfield reports whether the cell (x, y) lies on the playfield rather
// than the HUD.
func (m Model) onPlayfield(x, y int) bool {
	w, h := float64(m.screen.Width()), float64(m.screen.Height())
	field := core.NewBox(core.V(w/2, h/2), w, h)
	return field.Contains(core.V(float64(x), float64(y)))
}

// swipe queues a swipe at a screen row of the playfield.
func (m Model) swipe(side core.Side, row int) {
	m.engine.Push(game.SwipeInput{Side: side, Y: rowToY(row, m.screen.Height())})
}

// rowToY converts a screen row to the playfield y of the row's center.
func rowToY(row, height int) float64 {
	return float64(height-row) - 0.5
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	_, h := m.config.PlayfieldSize()
	m.screen.Resize(msg.Width, int(h))
	m.stage.Resize(m.config)
	m.engine.Machine().Resize(m.config)
	m.aim = core.Clamp(m.aim, 0, m.screen.Height()-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the stage, then runs the frame's queued events.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.stage.Step(now)
	if err := m.engine.Frame(now); err != nil {
		m.logger.Error("frame failed", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Machine exposes the session's state machine.
func (m Model) Machine() *game.Machine {
	return m.engine.Machine()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.stage.Snapshot()
	field, theme := RenderFrame(m.screen, snap, m.aim)
	hud := m.statusLine(theme, snap) + "\n" + m.help.View(m.keyMapper.Keys())

	// Full help takes rows from the bottom of the playfield.
	if extra := strings.Count(hud, "\n") + 1 - core.HUDRows; extra > 0 {
		rows := strings.Split(field, "\n")
		field = strings.Join(rows[:max(len(rows)-extra, 0)], "\n")
	}
	return field + "\n" + hud
}

func (m Model) statusLine(theme Theme, snap stage.Snapshot) string {
	machine := m.engine.Machine()
	parts := []string{
		theme.HUD.Render("score ") + theme.HUDValue.Render(fmt.Sprint(machine.Score())),
		theme.HUD.Render("state ") + theme.HUDValue.Render(machine.State().String()),
		theme.HUD.Render("theme ") + theme.HUDValue.Render(core.PaletteColor(snap.Theme).Name),
	}
	if snap.Cue != "" {
		parts = append(parts, theme.HUDValue.Render("♪ "+snap.Cue))
	}
	return strings.Join(parts, theme.HUDDim.Render(" │ "))
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags swipe
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
