package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bsviz/internal/arraygen"
	"bsviz/internal/config"
	"bsviz/internal/logging"
	"bsviz/internal/render"
	"bsviz/internal/session"
	"bsviz/internal/steplog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg advances auto-play. Ticks whose gen differs from the model's are
// stale and dropped.
type tickMsg struct {
	gen int
}

// configMsg carries a reloaded configuration from the file watcher.
type configMsg struct {
	cfg *config.Config
}

// Model is the interactive visualizer.
type Model struct {
	cfg      *config.Config
	sess     *session.Session
	renderer *render.Renderer
	styles   Styles
	keys     keyMap
	help     help.Model
	logPane  LogPaneModel
	input    textinput.Model
	editing  bool
	changes  <-chan *config.Config

	size      int
	target    int
	guarantee bool
	speed     float64

	playing bool
	gen     int

	frame    steplog.Frame
	hasFrame bool
	status   string
	err      error

	width  int
	height int
}

// New builds the model, draws the first array and positions a search for the
// default target at its starting frame.
func New(cfg *config.Config, sess *session.Session) Model {
	theme := ThemeFor(cfg.UI.Theme)
	styles := NewStyles(theme)

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d-%d", cfg.Array.MinValue, cfg.Array.MaxValue)
	ti.CharLimit = 6
	ti.Width = 8
	ti.Prompt = "Target: "

	m := Model{
		cfg:       cfg,
		sess:      sess,
		renderer:  newRenderer(cfg, theme),
		styles:    styles,
		keys:      defaultKeyMap(),
		help:      help.New(),
		logPane:   NewLogPaneModel(styles),
		input:     ti,
		size:      cfg.Array.DefaultSize,
		target:    cfg.Search.DefaultTarget,
		guarantee: cfg.Array.Guarantee,
		speed:     cfg.ClampSpeed(cfg.Playback.Speed),
		width:     80,
	}
	m.generate()
	return m
}

// WithConfigChanges subscribes the model to reloaded configs.
func (m Model) WithConfigChanges(ch <-chan *config.Config) Model {
	m.changes = ch
	return m
}

func newRenderer(cfg *config.Config, theme Theme) *render.Renderer {
	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	return render.New(render.Options{
		Palette:       theme.Palette(),
		Height:        cfg.UI.BarHeight,
		MarkdownStyle: style,
		WordWrap:      60,
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForConfig(m.changes)
}

func waitForConfig(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configMsg{cfg: cfg}
	}
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.cfg.GetPlaybackInterval(m.speed), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logPane.SetSize(msg.Width, defaultLogHeight)
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case configMsg:
		m.applyConfig(msg.cfg)
		return m, waitForConfig(m.changes)

	case tea.KeyMsg:
		if m.editing {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.logPane, cmd = m.logPane.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopPlayback()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Next):
		m.stopPlayback()
		m.apply(m.sess.Next())

	case key.Matches(msg, m.keys.Previous):
		m.stopPlayback()
		m.apply(m.sess.Previous())

	case key.Matches(msg, m.keys.Reset):
		m.stopPlayback()
		m.apply(m.sess.Reset())

	case key.Matches(msg, m.keys.Play):
		if m.playing {
			m.stopPlayback()
			m.status = "Paused"
			return m, nil
		}
		return m.startPlayback()

	case key.Matches(msg, m.keys.Start):
		m.stopPlayback()
		m.startSearch(m.target)

	case key.Matches(msg, m.keys.Generate):
		m.stopPlayback()
		m.generate()

	case key.Matches(msg, m.keys.Bigger):
		m.setSize(m.size + 1)

	case key.Matches(msg, m.keys.Smaller):
		m.setSize(m.size - 1)

	case key.Matches(msg, m.keys.Faster):
		m.setSpeed(m.speed + m.cfg.Playback.SpeedStep)

	case key.Matches(msg, m.keys.Slower):
		m.setSpeed(m.speed - m.cfg.Playback.SpeedStep)

	case key.Matches(msg, m.keys.Guarantee):
		m.guarantee = !m.guarantee
		m.status = fmt.Sprintf("Guarantee target in array: %s", onOff(m.guarantee))

	case key.Matches(msg, m.keys.Target):
		m.stopPlayback()
		m.editing = true
		m.input.SetValue(strconv.Itoa(m.target))
		m.input.CursorEnd()
		return m, m.input.Focus()

	default:
		var cmd tea.Cmd
		m.logPane, cmd = m.logPane.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		m.err = nil
		return m, nil
	case tea.KeyEnter:
		raw := strings.TrimSpace(m.input.Value())
		t, err := strconv.Atoi(raw)
		if err != nil {
			m.err = fmt.Errorf("%w: target %q is not a number", arraygen.ErrInvalidInput, raw)
			return m, nil
		}
		if !m.startSearch(t) {
			return m, nil
		}
		m.target = t
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if !m.playing || msg.gen != m.gen {
		return m, nil
	}
	f, moved, err := m.sess.Advance()
	if err != nil {
		m.playing = false
		m.err = err
		return m, nil
	}
	m.setFrame(f)
	if !moved || f.Status.IsTerminal() {
		m.playing = false
		m.status = "Auto-play finished"
		logging.UI("auto-play finished status=%s", f.Status)
		return m, nil
	}
	return m, m.tick()
}

// startPlayback begins a tick chain. A finished search is rewound first.
func (m Model) startPlayback() (tea.Model, tea.Cmd) {
	if !m.sess.Searching() {
		if !m.startSearch(m.target) {
			return m, nil
		}
	}
	if m.hasFrame && m.frame.Status.IsTerminal() {
		m.apply(m.sess.Reset())
	}
	m.gen++
	m.playing = true
	m.status = fmt.Sprintf("Playing at %.1fx", m.speed)
	logging.UI("auto-play started speed=%.1f gen=%d", m.speed, m.gen)
	return m, m.tick()
}

// stopPlayback invalidates any tick in flight.
func (m *Model) stopPlayback() {
	if !m.playing {
		return
	}
	m.playing = false
	m.gen++
}

func (m *Model) generate() {
	if _, err := m.sess.Generate(m.size, m.target, m.guarantee); err != nil {
		m.err = err
		return
	}
	if m.startSearch(m.target) {
		m.status = fmt.Sprintf("Generated %d values", m.size)
	}
}

// startSearch reports whether the search was accepted.
func (m *Model) startSearch(target int) bool {
	f, err := m.sess.Start(target)
	if err != nil {
		m.err = err
		return false
	}
	m.err = nil
	m.setFrame(f)
	m.status = fmt.Sprintf("Searching for %d", target)
	return true
}

func (m *Model) apply(f steplog.Frame, err error) {
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.setFrame(f)
}

func (m *Model) setFrame(f steplog.Frame) {
	m.frame = f
	m.hasFrame = true
	m.logPane.SetLines(f.Lines)
}

func (m *Model) setSize(n int) {
	if n < m.cfg.Array.MinSize {
		n = m.cfg.Array.MinSize
	}
	if n > m.cfg.Array.MaxSize {
		n = m.cfg.Array.MaxSize
	}
	m.size = n
	m.status = fmt.Sprintf("Array size %d (press g to generate)", n)
}

func (m *Model) setSpeed(s float64) {
	m.speed = m.cfg.ClampSpeed(s)
	m.status = fmt.Sprintf("Speed %.1fx", m.speed)
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.cfg = cfg
	theme := ThemeFor(cfg.UI.Theme)
	m.styles = NewStyles(theme)
	m.logPane.SetStyles(m.styles)
	m.renderer = newRenderer(cfg, theme)
	m.speed = cfg.ClampSpeed(cfg.Playback.Speed)
	m.status = "Configuration reloaded"
	logging.UI("config applied theme=%s speed=%.1f", cfg.UI.Theme, m.speed)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	f := m.frame
	sb.WriteString(m.styles.Header.Render(render.Title(f)))
	sb.WriteString("\n")
	sb.WriteString(m.controlsView())
	sb.WriteString("\n\n")

	sb.WriteString(m.renderer.Chart(m.sess.Array(), f, m.width))
	sb.WriteString("\n")
	sb.WriteString(m.renderer.Legend())
	sb.WriteString("\n")
	sb.WriteString(m.styles.RenderDivider(m.width))
	sb.WriteString("\n")

	if m.hasFrame {
		sb.WriteString(m.styles.Badge.Render(m.renderer.Progress(f)))
		sb.WriteString("\n")
		sb.WriteString(m.renderer.Stats(f))
		sb.WriteString("\n\n")
	}
	sb.WriteString(m.logPane.View())
	sb.WriteString("\n")

	if m.editing {
		sb.WriteString(m.input.View())
		sb.WriteString(m.styles.Muted.Render("  enter to search, esc to cancel"))
		sb.WriteString("\n")
	}
	if m.err != nil {
		sb.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
	} else if m.status != "" {
		sb.WriteString(m.styles.Footer.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) controlsView() string {
	var state string
	switch {
	case m.playing:
		state = m.styles.Success.Render("playing")
	case m.hasFrame && m.frame.Status == steplog.Searching:
		state = m.styles.Warning.Render("paused")
	default:
		state = m.styles.Muted.Render("idle")
	}
	parts := []string{
		m.styles.Bold.Render("Size ") + strconv.Itoa(m.size),
		m.styles.Bold.Render("Target ") + strconv.Itoa(m.target),
		m.styles.Bold.Render("Guarantee ") + onOff(m.guarantee),
		m.styles.Bold.Render("Speed ") + fmt.Sprintf("%.1fx", m.speed),
		state,
	}
	return strings.Join(parts, "   ")
}
