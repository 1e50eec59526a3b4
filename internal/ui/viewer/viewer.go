package viewer

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/blacktop/asmview/internal/config"
	"github.com/blacktop/asmview/internal/log"
	"github.com/blacktop/asmview/internal/syntax"
	"github.com/blacktop/asmview/internal/ui/styles"
)

// Layout constants
const (
	statusBarHeight = 1
	scrollLines     = 1 // lines per j/k press

	maxLogLines  = 100 // retained debug log entries
	logTailLines = 5   // entries shown in the log panel
)

// Status bar and notice styles
var (
	statusNameStyle  = lipgloss.NewStyle().Foreground(styles.OverlayTitleColor).Bold(true)
	statusInfoStyle  = lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
	statusMutedStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	noticeStyle      = lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
	logTitleStyle    = lipgloss.NewStyle().Foreground(styles.OverlayTitleColor).Bold(true)
	logLineStyle     = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
)

// Options configures a viewer model.
type Options struct {
	// Path is the file on disk; empty means Source is displayed instead.
	Path string
	// DisplayName is shown in the status bar (defaults to Path).
	DisplayName string
	// Source is the in-memory source text used when Path is empty.
	Source []byte
	// Language is the display name of the resolved language.
	Language string
	// GrammarID selects the highlighting grammar.
	GrammarID string
	// Changes receives a signal whenever the watched file changes.
	// Nil disables auto refresh.
	Changes <-chan struct{}
	// Logs streams debug log entries into the in-viewer log panel.
	// Nil when debug logging is off; the panel key is disabled then.
	Logs *log.LogListener
}

// Model is the root viewer component: a virtualized view over the most
// recently published highlighted document, plus a status bar and help.
type Model struct {
	path        string
	displayName string
	source      []byte
	language    string
	grammarID   string

	registry *syntax.Registry
	store    *syntax.Store
	cfg      config.Config

	viewport *VirtualViewport
	content  *Content

	keys KeyMap
	help help.Model

	changes <-chan struct{}

	logs     *log.LogListener
	logLines []string
	showLogs bool

	width, height int
	ready         bool

	// notice is shown in a banner when highlighting degraded (missing
	// grammar fallback) or the source could not be read at all.
	notice string
}

// New creates a viewer model. The registry must already have the grammar
// and language registered; the first document is produced by Init.
func New(registry *syntax.Registry, cfg config.Config, opts Options) Model {
	displayName := opts.DisplayName
	if displayName == "" {
		displayName = opts.Path
	}

	content := NewContent(syntax.PlainDocument(""), NewRenderCache(DefaultCacheCapacity), ContentConfig{
		ShowLineNumbers: cfg.UI.ShowLineNumbers,
		TabWidth:        cfg.UI.TabWidth,
	})

	keys := DefaultKeyMap()
	if opts.Logs == nil {
		keys.Logs.SetEnabled(false)
	}

	return Model{
		path:        opts.Path,
		displayName: displayName,
		source:      opts.Source,
		language:    opts.Language,
		grammarID:   opts.GrammarID,
		registry:    registry,
		store:       &syntax.Store{},
		cfg:         cfg,
		viewport:    NewVirtualViewport(content),
		content:     content,
		keys:        keys,
		help:        help.New(),
		changes:     opts.Changes,
		logs:        opts.Logs,
	}
}

// Store returns the document store holding the latest published snapshot.
func (m Model) Store() *syntax.Store {
	return m.store
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCmd(), m.listenChanges()}
	if m.logs != nil {
		cmds = append(cmds, m.logs.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case documentMsg:
		return m.handleDocumentMsg(msg)

	case fileChangedMsg:
		if m.cfg.AutoRefresh {
			return m, tea.Batch(m.loadCmd(), m.listenChanges())
		}
		return m, m.listenChanges()

	case log.LogEvent:
		m.logLines = append(m.logLines, strings.TrimRight(msg.Payload, "\n"))
		if len(m.logLines) > maxLogLines {
			m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
		}
		if m.showLogs {
			m.layout()
		}
		return m, m.logs.Listen()
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(scrollLines)
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(scrollLines)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.GotoTop):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.GotoBottom):
		m.viewport.GotoBottom()

	case key.Matches(msg, m.keys.LineNumbers):
		m.content.SetLineNumbers(!m.content.LineNumbers())

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = !m.showLogs
		m.layout()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadCmd()
	}

	return m, nil
}

// handleDocumentMsg publishes the result of a highlighting pass.
func (m Model) handleDocumentMsg(msg documentMsg) (tea.Model, tea.Cmd) {
	if msg.doc == nil {
		// Unreadable source or invalid encoding: keep the previous
		// document on screen, surface the failure in the banner.
		m.notice = msg.err.Error()
		m.layout()
		return m, nil
	}

	m.store.Publish(msg.doc)
	m.content.SetDocument(msg.doc)
	// Re-clamp scroll position: the new document may be shorter
	m.viewport.SetYOffset(m.viewport.YOffset())

	if msg.err != nil {
		m.notice = "highlighting unavailable: " + msg.err.Error()
	} else {
		m.notice = ""
	}
	m.layout()
	return m, nil
}

// layout recomputes the viewport size from the window and the current
// chrome (status bar, help, notice banner).
func (m *Model) layout() {
	if !m.ready {
		return
	}
	chrome := lipgloss.Height(m.help.View(m.keys))
	if m.cfg.UI.ShowStatusBar {
		chrome += statusBarHeight
	}
	if m.notice != "" {
		chrome += lipgloss.Height(m.renderNotice())
	}
	if m.showLogs {
		chrome += lipgloss.Height(m.renderLogPanel())
	}
	m.viewport.SetSize(m.width, max(m.height-chrome, 1))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var sections []string
	if m.notice != "" {
		sections = append(sections, m.renderNotice())
	}
	sections = append(sections, m.renderContent())
	if m.showLogs {
		sections = append(sections, m.renderLogPanel())
	}
	if m.cfg.UI.ShowStatusBar {
		sections = append(sections, m.renderStatusBar())
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderContent renders the visible document lines, padded to the viewport
// height, with a scrollbar column when the content overflows.
func (m Model) renderContent() string {
	height := m.viewport.Height()
	content := m.viewport.Render()

	// An empty render is still one (blank) row, so the count never hits
	// zero; padding past height would overflow the window.
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < height {
		content += strings.Repeat("\n", height-contentLines)
	}

	if m.viewport.TotalLines() > height {
		content = m.joinContentWithScrollbar(content, height, m.width-1)
	}

	return content
}

// joinContentWithScrollbar joins content lines with a scrollbar column on
// the right. contentWidth is the width of the content area alone.
func (m Model) joinContentWithScrollbar(content string, viewportHeight, contentWidth int) string {
	cfg := DefaultScrollbarConfig()
	cfg.ViewportHeight = viewportHeight
	cfg.TotalLines = m.viewport.TotalLines()
	cfg.ScrollOffset = m.viewport.YOffset()

	scrollbarLines := strings.Split(RenderScrollbar(cfg), "\n")
	contentLines := strings.Split(content, "\n")

	var sb strings.Builder
	sb.Grow(len(content) + viewportHeight*2)

	for i := range viewportHeight {
		if i > 0 {
			sb.WriteByte('\n')
		}

		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		// Pad or clip so the scrollbar column aligns
		lineWidth := lipgloss.Width(line)
		if lineWidth > contentWidth {
			line = ansi.Truncate(line, contentWidth, "")
		} else if lineWidth < contentWidth {
			line += strings.Repeat(" ", contentWidth-lineWidth)
		}
		sb.WriteString(line)

		if i < len(scrollbarLines) {
			sb.WriteString(scrollbarLines[i])
		}
	}

	return sb.String()
}

// renderNotice renders the degraded-highlighting banner, word wrapped to
// the window width.
func (m Model) renderNotice() string {
	wrapped := wordwrap.String(m.notice, max(m.width-2, 1))
	return noticeStyle.Render(wrapped)
}

// renderLogPanel renders the debug log tail: a title row plus the most
// recent entries, clipped to the window width.
func (m Model) renderLogPanel() string {
	n := min(len(m.logLines), logTailLines)
	lines := make([]string, 0, n+1)
	lines = append(lines, logTitleStyle.Render("debug log"))
	for _, entry := range m.logLines[len(m.logLines)-n:] {
		lines = append(lines, ansi.Truncate(logLineStyle.Render(entry), max(m.width, 1), "…"))
	}
	return strings.Join(lines, "\n")
}

// renderStatusBar renders the bottom bar: name and language on the left,
// scroll position on the right.
func (m Model) renderStatusBar() string {
	name := m.displayName
	if name == "" {
		name = "(stdin)"
	}
	left := statusNameStyle.Render(name)
	if m.language != "" {
		left += statusMutedStyle.Render("  ") + statusInfoStyle.Render(m.language)
	}

	right := statusInfoStyle.Render(m.scrollIndicator())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	bar := " " + left + strings.Repeat(" ", gap) + right + " "
	if lipgloss.Width(bar) > m.width {
		bar = ansi.Truncate(bar, m.width, "")
	}
	return bar
}

// scrollIndicator formats the current position, e.g. "12/340 3%".
func (m Model) scrollIndicator() string {
	total := m.viewport.TotalLines()
	if total == 0 {
		return "0/0"
	}
	top := m.viewport.YOffset() + 1
	switch {
	case m.viewport.AtTop():
		return itoa(top) + "/" + itoa(total) + " top"
	case m.viewport.AtBottom():
		return itoa(top) + "/" + itoa(total) + " end"
	}
	percent := int(m.viewport.ScrollPercent() * 100)
	return itoa(top) + "/" + itoa(total) + " " + itoa(percent) + "%"
}
