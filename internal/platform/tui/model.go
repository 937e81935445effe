package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

const (
	hudHeight   = 2   // HUD text line + separator
	minHUDWidth = 60  // Screen never narrower than this, so the HUD fits
	minGridEdge = 8   // Smallest grid dimension reachable via resize keys
	maxGridEdge = 512 // Largest grid dimension reachable via resize keys
	resizeStep  = 4   // Cells added/removed per resize key press
	maxTicks    = 64  // Upper bound for the ticks-per-update multiplier
)

// Model is the Bubble Tea model driving the simulation.
type Model struct {
	universe   *life.Universe
	screen     *core.Screen
	store      *storage.Store
	cfg        core.RuntimeConfig
	display    config.DisplayConfig
	keymap     *KeyMapper
	inputFrame core.InputFrame

	cursorRow int
	cursorCol int
	paused    bool
	quitting  bool

	// Session statistics for the history record
	startedAt   time.Time
	generations uint64
	peakPop     int
}

// NewModel creates a new Bubble Tea model around a freshly seeded universe.
func NewModel(cfg core.RuntimeConfig, display config.DisplayConfig, store *storage.Store) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	u := life.NewWithRandom(cfg.GridW, cfg.GridH, rng.Float64)
	if cfg.TicksPerUpdate > 0 {
		u.SetTicks(cfg.TicksPerUpdate)
	}

	m := Model{
		universe:   u,
		store:      store,
		cfg:        cfg,
		display:    display,
		keymap:     NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		cursorRow:  cfg.GridH / 2,
		cursorCol:  cfg.GridW / 2,
		startedAt:  time.Now(),
	}
	m.screen = core.NewScreen(m.screenW(), m.screenH())
	m.peakPop = u.Population()

	return m
}

func (m Model) screenW() int {
	return core.Max(m.universe.Width(), minHUDWidth)
}

func (m Model) screenH() int {
	return m.universe.Height() + hudHeight
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keymap.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick applies buffered input, then advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.applyInput()
	m.inputFrame.Clear()

	if !m.paused {
		m.advance()
	}

	return m, tickCmd(m.cfg.TickRate)
}

// advance runs one Update (ticks-per-update generations) and tracks stats.
func (m *Model) advance() {
	m.universe.Update()
	m.generations += uint64(m.universe.TicksPerUpdate())
	if pop := m.universe.Population(); pop > m.peakPop {
		m.peakPop = pop
	}
}

// applyInput translates this frame's actions into universe mutations.
func (m *Model) applyInput() {
	in := m.inputFrame

	if in.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if in.Has(core.ActionStep) && m.paused {
		m.advance()
	}
	if in.Has(core.ActionReset) {
		m.universe.Reset()
	}
	if in.Has(core.ActionClear) {
		m.universe.Clear()
	}
	if in.Has(core.ActionToggle) {
		m.universe.ToggleCell(m.cursorRow, m.cursorCol)
	}
	if in.Has(core.ActionGlider) {
		m.universe.CreateGlider(m.cursorRow, m.cursorCol)
	}
	if in.Has(core.ActionPulsar) {
		m.universe.CreatePulsar(m.cursorRow, m.cursorCol)
	}

	if in.Has(core.ActionSpeedUp) {
		m.universe.SetTicks(core.Clamp(m.universe.TicksPerUpdate()+1, 1, maxTicks))
	}
	if in.Has(core.ActionSpeedDown) {
		m.universe.SetTicks(core.Clamp(m.universe.TicksPerUpdate()-1, 1, maxTicks))
	}

	m.moveCursor(in)
	m.resizeGrid(in)
}

// moveCursor applies cursor movement, clamped to the grid.
func (m *Model) moveCursor(in core.InputFrame) {
	if in.Has(core.ActionCursorUp) {
		m.cursorRow--
	}
	if in.Has(core.ActionCursorDown) {
		m.cursorRow++
	}
	if in.Has(core.ActionCursorLeft) {
		m.cursorCol--
	}
	if in.Has(core.ActionCursorRight) {
		m.cursorCol++
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	m.cursorRow = core.Clamp(m.cursorRow, 0, m.universe.Height()-1)
	m.cursorCol = core.Clamp(m.cursorCol, 0, m.universe.Width()-1)
}

// resizeGrid applies grid resize actions. Every dimension change reseeds
// the whole board; that is the engine's documented resize policy.
func (m *Model) resizeGrid(in core.InputFrame) {
	resized := false

	if in.Has(core.ActionGrowWidth) {
		m.universe.SetWidth(core.Clamp(m.universe.Width()+resizeStep, minGridEdge, maxGridEdge))
		resized = true
	}
	if in.Has(core.ActionShrinkWidth) {
		m.universe.SetWidth(core.Clamp(m.universe.Width()-resizeStep, minGridEdge, maxGridEdge))
		resized = true
	}
	if in.Has(core.ActionGrowHeight) {
		m.universe.SetHeight(core.Clamp(m.universe.Height()+resizeStep, minGridEdge, maxGridEdge))
		resized = true
	}
	if in.Has(core.ActionShrinkHeight) {
		m.universe.SetHeight(core.Clamp(m.universe.Height()-resizeStep, minGridEdge, maxGridEdge))
		resized = true
	}

	if resized {
		m.clampCursor()
		m.screen = core.NewScreen(m.screenW(), m.screenH())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderFrame(m.screen)
	return RenderScreen(m.screen)
}

// renderFrame draws the HUD and the board into the screen buffer.
func (m Model) renderFrame(dst *core.Screen) {
	dst.Clear()
	m.renderHUD(dst)
	m.renderBoard(dst)
}

// renderBoard draws every cell, with the cursor highlighted.
func (m Model) renderBoard(dst *core.Screen) {
	aliveRune := m.display.AliveRune()
	deadRune := m.display.DeadRune()

	for row := 0; row < m.universe.Height(); row++ {
		for col := 0; col < m.universe.Width(); col++ {
			r, color := deadRune, core.ColorGray
			if m.universe.Alive(row, col) {
				r, color = aliveRune, core.ColorBrightGreen
			}

			if row == m.cursorRow && col == m.cursorCol {
				color = core.ColorBrightYellow
				if r == ' ' {
					r = '+'
				}
			}

			dst.SetColored(col, hudHeight+row, r, color)
		}
	}
}

// renderHUD draws the top status bar.
func (m Model) renderHUD(dst *core.Screen) {
	if !m.display.ShowHUD {
		return
	}

	state := "running"
	if m.paused {
		state = "paused"
	}
	hud := formatHUD(m.universe, state)

	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}
