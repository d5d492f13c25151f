package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dripdirective/drip/internal/api"
	"github.com/dripdirective/drip/internal/config"
	"github.com/dripdirective/drip/internal/prefs"
	"github.com/dripdirective/drip/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewWardrobe View = iota
	ViewPhotos
	ViewRecommendations
	ViewProfile
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *api.Client
	Store     *state.Store
	Config    *config.Config
	Account   string
	PollTick  time.Duration
	ThemeName string
	LastView  string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *api.Client
	store     *state.Store
	config    *config.Config
	account   string
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Per-view cursors
	wardrobeRow int
	photoRow    int
	recRow      int

	// Recommendation detail
	detailOpen     bool
	detailViewport viewport.Model
	outfitCursor   int

	// New-recommendation prompt
	prompting bool
	input     textinput.Model

	// Transient status line (action results)
	flash    string
	flashErr bool

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "what's the occasion?"
	input.CharLimit = 200

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		config:      opts.Config,
		account:     opts.Account,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		theme:       GetTheme(themeName),
		currentView: viewFromName(opts.LastView),
		input:       input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, contentHeight(msg.Height))
		} else {
			m.detailViewport.Width = msg.Width
			m.detailViewport.Height = contentHeight(msg.Height)
		}
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.clampCursors()
		m.updateDetailViewport()
		return m, nil

	case actionMsg:
		m.flash = msg.note
		m.flashErr = msg.err != nil
		if msg.err != nil {
			m.flash = msg.err.Error()
		}
		// Pull fresh data right away so the action's effect shows up.
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Prompt mode captures everything except enter/esc
	if m.prompting {
		return m.handlePromptKey(msg)
	}

	// Global keys
	switch msg.String() {
	case "ctrl+c", "e":
		m.savePrefs()
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		// Cycle theme
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "tab":
		m.detailOpen = false
		m.currentView = nextView(m.currentView)
		return m, nil

	case "shift+tab":
		m.detailOpen = false
		m.currentView = prevView(m.currentView)
		return m, nil

	case "w":
		m.detailOpen = false
		m.currentView = ViewWardrobe
		return m, nil

	case "i":
		m.detailOpen = false
		m.currentView = ViewPhotos
		return m, nil

	case "r":
		m.detailOpen = false
		m.currentView = ViewRecommendations
		return m, nil

	case "u":
		m.detailOpen = false
		m.currentView = ViewProfile
		return m, nil

	case "esc":
		if m.detailOpen {
			m.detailOpen = false
			return m, nil
		}
		m.currentView = ViewWardrobe
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewWardrobe:
		return m.handleWardrobeKey(msg)
	case ViewPhotos:
		return m.handlePhotosKey(msg)
	case ViewRecommendations:
		return m.handleRecommendationsKey(msg)
	}

	return m, nil
}

// handlePromptKey routes input while the recommendation prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompting = false
		m.input.Blur()
		return m, nil
	case "enter":
		query := strings.TrimSpace(m.input.Value())
		m.prompting = false
		m.input.Blur()
		m.input.SetValue("")
		if query == "" {
			m.flash = "recommendation request needs a description"
			m.flashErr = true
			return m, nil
		}
		m.flash = "requesting outfits for: " + query
		m.flashErr = false
		return m, generateRecommendationCmd(m.ctx, m.client, query)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// clampCursors keeps the selection in range when a refresh shrinks a list.
func (m *Model) clampCursors() {
	m.wardrobeRow = clamp(m.wardrobeRow, len(m.snapshot.Wardrobe))
	m.photoRow = clamp(m.photoRow, len(m.snapshot.Images))
	m.recRow = clamp(m.recRow, len(m.snapshot.Recommendations))
	if m.detailOpen {
		// The list is newest-first, so a refresh can put a different
		// recommendation under the cursor. Keep the pane only while the
		// selected one still has outfits to show.
		rec := m.selectedRecommendation()
		if rec == nil || !rec.Completed() {
			m.detailOpen = false
			m.outfitCursor = 0
		} else {
			m.outfitCursor = clamp(m.outfitCursor, len(rec.Outfits))
		}
	}
}

func clamp(row, count int) int {
	if count == 0 {
		return 0
	}
	if row >= count {
		return count - 1
	}
	if row < 0 {
		return 0
	}
	return row
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		LastView: viewName(m.currentView),
	})
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Main content
	b.WriteString(m.renderContent())

	// Status line: prompt or last action result
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewWardrobe:
		return m.renderWardrobe()
	case ViewPhotos:
		return m.renderPhotos()
	case ViewRecommendations:
		if m.detailOpen {
			return m.renderRecommendationDetail()
		}
		return m.renderRecommendations()
	case ViewProfile:
		return m.renderProfile()
	default:
		return ""
	}
}

func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()

	if m.prompting {
		return styles.AccentText.Render("new recommendation ") + m.input.View()
	}
	if m.flash == "" {
		return ""
	}
	if m.flashErr {
		return styles.DangerText.Render(m.flash)
	}
	return styles.MutedText.Render(m.flash)
}

// contentHeight reserves rows for the header, command bar and status line.
func contentHeight(total int) int {
	h := total - 3
	if h < 1 {
		h = 1
	}
	return h
}

func viewName(v View) string {
	switch v {
	case ViewPhotos:
		return "photos"
	case ViewRecommendations:
		return "recommendations"
	case ViewProfile:
		return "profile"
	default:
		return "wardrobe"
	}
}

func viewFromName(name string) View {
	switch name {
	case "photos":
		return ViewPhotos
	case "recommendations":
		return ViewRecommendations
	case "profile":
		return ViewProfile
	default:
		return ViewWardrobe
	}
}

func nextView(v View) View {
	switch v {
	case ViewWardrobe:
		return ViewPhotos
	case ViewPhotos:
		return ViewRecommendations
	case ViewRecommendations:
		return ViewProfile
	default:
		return ViewWardrobe
	}
}

func prevView(v View) View {
	switch v {
	case ViewWardrobe:
		return ViewProfile
	case ViewPhotos:
		return ViewWardrobe
	case ViewRecommendations:
		return ViewPhotos
	default:
		return ViewRecommendations
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// actionMsg reports the outcome of an async client action.
type actionMsg struct {
	note string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func generateRecommendationCmd(ctx context.Context, client *api.Client, query string) tea.Cmd {
	return func() tea.Msg {
		if _, err := client.GenerateRecommendation(ctx, query, "styling"); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{note: "recommendation queued; outfits appear when analysis finishes"}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
