package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/become-pm/internal/config"
	"github.com/vovakirdan/become-pm/internal/content"
	"github.com/vovakirdan/become-pm/internal/core"
	"github.com/vovakirdan/become-pm/internal/engine"
	"github.com/vovakirdan/become-pm/internal/gamedata"
	"github.com/vovakirdan/become-pm/internal/gamestate"
	"github.com/vovakirdan/become-pm/internal/storage"
)

// Rows and columns the host draws around the surface: title, stats,
// frame border, overlay box and help bar.
const (
	chromeWidth  = 2
	chromeHeight = 10
)

// overlayStyle is the translucent fill drawn over a stopped surface.
const overlayStyle = "rgba(0, 0, 0, 0.3)"

// Options configures the host.
type Options struct {
	Config    config.AppConfig
	ContentID string       // Preselected content, first registered when empty
	KV        storage.KV   // Game data store, in-memory when nil
	Sessions  SessionStore // Session history, not recorded when nil
	Logger    *log.Logger
	Clock     engine.Clock // Time source for the engine and play time
	Theme     *Theme
}

// App is the Bubble Tea model hosting the engine.
// Statuses follow core.Transition; the engine runs only while playing.
type App struct {
	cfg         config.AppConfig
	logger      *log.Logger
	clock       engine.Clock
	repo        *gamedata.Repo
	sessions    SessionStore
	progression *config.Progression

	contents []content.Info
	cursor   int

	status  core.GameStatus
	screen  *core.Screen
	queue   *engine.FrameQueue
	eng     *engine.Engine
	content content.Content
	state   *gamestate.State

	resumedAt  time.Time
	played     time.Duration
	ticking    bool
	recorded   bool
	newRecord  bool
	lastResult string // Session ID of the last recorded session

	keys        KeyMap
	help        help.Model
	theme       Theme
	history     historyView
	showHistory bool

	width    int
	height   int
	err      error
	flash    string
	quitting bool
}

// NewApp creates the host in the menu status.
func NewApp(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	kv := opts.KV
	if kv == nil {
		kv = storage.NewMemoryStore()
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.SystemClock
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	m := App{
		cfg:         opts.Config,
		logger:      logger,
		clock:       clock,
		repo:        gamedata.New(kv, logger),
		sessions:    opts.Sessions,
		progression: config.NewProgression(opts.Config.Progression),
		contents:    content.List(),
		status:      core.StatusMenu,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		theme:       theme,
	}
	m.history = newHistoryView(opts.Sessions, 0, 0)

	id := opts.ContentID
	if id == "" {
		id = opts.Config.Game.Content
	}
	for i, info := range m.contents {
		if info.ID == id {
			m.cursor = i
		}
	}

	return m
}

// Init implements tea.Model. Nothing runs until a session starts.
func (m App) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.history.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.status == core.StatusMenu {
		switch {
		case key.Matches(msg, m.keys.History):
			m.showHistory = !m.showHistory
			if m.showHistory {
				info := m.selected()
				m.history.load(info.ID, info.Title)
			}
			return m, nil
		case m.showHistory && key.Matches(msg, m.keys.Up, m.keys.Down):
			var cmd tea.Cmd
			m.history, cmd = m.history.update(msg, m.keys)
			return m, cmd
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.contents)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	return m.apply(m.keys.Action(msg))
}

// apply runs a host action.
func (m App) apply(action core.Action) (App, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.release()
		m.quitting = true
		return m, tea.Quit

	case core.ActionReset:
		if m.status == core.StatusMenu {
			m.repo.Clear()
			m.flash = "Saved game data cleared"
			m.logger.Info("game data cleared")
		}
		return m, nil
	}

	to, ok := core.Transition(m.status, action)
	if !ok {
		return m, nil
	}

	switch {
	case action == core.ActionStart || action == core.ActionRestart:
		if err := m.newSession(); err != nil {
			m.err = err
			m.logger.Error("cannot start session", "err", err)
			m.status = core.StatusMenu
			return m, nil
		}
		return m.play()

	case to == core.StatusPlaying: // resume
		return m.play()

	case to == core.StatusPaused:
		m.halt()
		m.status = core.StatusPaused
		m.logger.Debug("session paused", "score", m.state.Score())

	case to == core.StatusEnded:
		m.halt()
		m.end()

	case to == core.StatusMenu:
		m.release()
		m.status = core.StatusMenu
	}

	return m, nil
}

// newSession creates a fresh surface, score keeper, content and engine.
// Each session gets its own engine, like a newly mounted canvas.
func (m *App) newSession() error {
	m.release()

	info := m.selected()
	if info.ID == "" {
		return errors.New("tui: no content registered")
	}

	cfg := m.cfg.FitTo(m.width, m.height, chromeWidth, chromeHeight)
	ecfg := cfg.Engine()
	if err := ecfg.Validate(); err != nil {
		return err
	}

	m.state = gamestate.New(m.repo)
	m.screen = core.NewScreen(ecfg.Width, ecfg.Height, cfg.Display.PixelRatio)
	m.queue = engine.NewFrameQueue()

	// The engine is created after the content, so FPS reads it lazily.
	var eng *engine.Engine
	c, err := content.Create(info.ID, content.Env{
		Config:      ecfg,
		PixelRatio:  m.screen.PixelRatio(),
		Score:       m.state,
		Progression: m.progression,
		FPS: func() int {
			if eng == nil {
				return 0
			}
			return eng.FPS()
		},
	})
	if err != nil {
		return err
	}

	eng, err = engine.New(m.screen, ecfg, c.Callbacks(),
		engine.WithScheduler(m.queue),
		engine.WithClock(m.clock),
		engine.WithLogger(m.logger),
	)
	if err != nil {
		return err
	}

	m.content = c
	m.eng = eng
	m.played = 0
	m.recorded = false
	m.newRecord = false
	m.err = nil
	m.showHistory = false
	m.logger.Info("session started", "content", c.ID(), "size", fmt.Sprintf("%dx%d", ecfg.Width, ecfg.Height))
	return nil
}

// play starts the engine and makes sure ticks are flowing.
func (m App) play() (App, tea.Cmd) {
	m.status = core.StatusPlaying
	m.resumedAt = m.clock.Now()
	m.eng.Start()

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.cfg.Game.TargetFPS)
}

// halt stops the engine, banks play time and dims the surface.
func (m *App) halt() {
	if m.eng == nil {
		return
	}
	if m.status == core.StatusPlaying {
		m.played += m.clock.Now().Sub(m.resumedAt)
	}
	m.eng.Stop()
	m.dim()
}

// dim draws the translucent overlay over the last frame.
func (m *App) dim() {
	if m.eng == nil {
		return
	}
	ctx := m.eng.Context()
	w, h := m.eng.Surface().Size()
	ctx.SetFillStyle(overlayStyle)
	ctx.FillRect(0, 0, float64(w), float64(h))
}

// end moves to the ended status and records the session once.
func (m *App) end() {
	m.status = core.StatusEnded
	if m.state == nil || m.recorded {
		return
	}
	m.recorded = true
	m.newRecord = m.state.IsRecord()

	m.logger.Info("session ended",
		"content", m.content.ID(),
		"score", m.state.Score(),
		"level", m.state.Level(),
		"played", m.played.Round(time.Millisecond),
	)

	if m.sessions == nil {
		return
	}
	id, err := m.sessions.SaveSession(m.content.ID(), m.state.Score(), m.state.Level(), m.played)
	if err != nil {
		m.logger.Error("cannot record session", "err", err)
		return
	}
	m.lastResult = id
}

// release stops the engine before it is dropped.
func (m *App) release() {
	if m.eng != nil {
		m.eng.Stop()
	}
}

// handleTick fires the pending engine frame.
func (m App) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.status != core.StatusPlaying || m.eng == nil {
		m.ticking = false
		return m, nil
	}

	if err := m.fire(now); err != nil {
		m.err = err
		m.logger.Error("frame failed", "content", m.content.ID(), "err", err)
		m.halt()
		m.end()
		m.ticking = false
		return m, nil
	}

	return m, tickCmd(m.cfg.Game.TargetFPS)
}

// fire runs one frame, turning a content panic into an error.
// The engine has already marked itself stopped when a callback panics.
func (m App) fire(now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("content panicked: %v", r)
		}
	}()
	m.queue.Fire(now)
	return nil
}

// selected returns the content under the menu cursor.
func (m App) selected() content.Info {
	if m.cursor < 0 || m.cursor >= len(m.contents) {
		return content.Info{}
	}
	return m.contents[m.cursor]
}

// Status returns the current host status.
func (m App) Status() core.GameStatus {
	return m.status
}

// Engine returns the current session's engine, nil before the first start.
func (m App) Engine() *engine.Engine {
	return m.eng
}

// State returns the current session's score keeper.
func (m App) State() *gamestate.State {
	return m.state
}

// Err returns the last session error.
func (m App) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m App) View() string {
	if m.quitting {
		return ""
	}
	if m.status == core.StatusMenu {
		return m.menuView()
	}
	return m.sessionView()
}

// Run starts the Bubble Tea program with the host.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewApp(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if app, ok := final.(App); ok {
		app.release()
	}
	return nil
}
