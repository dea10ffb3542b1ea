// Package tui is an interactive browser over a loaded dataset: users,
// their sessions and the messages inside each session, one drill level
// at a time.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/shaling-ai/data-insights/internal/core"
	"github.com/shaling-ai/data-insights/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// browseLevel tracks which list the cursor is moving through.
type browseLevel int

const (
	levelUsers browseLevel = iota
	levelSessions
	levelMessages
)

// Model is the root bubbletea model for the dataset browser.
type Model struct {
	src   core.DataSource
	users []*models.User

	// Navigation state
	level         browseLevel
	userCursor    int
	sessionCursor int
	messageCursor int

	// UI state
	width  int
	height int
}

// New creates a browser over the given data source.
func New(src core.DataSource) Model {
	return Model{
		src:   src,
		users: src.Users(),
	}
}

// Init performs no IO; the dataset is already loaded.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.moveCursor(1)
		return m, nil

	case "k", "up":
		m.moveCursor(-1)
		return m, nil

	case "enter":
		switch m.level {
		case levelUsers:
			if u := m.selectedUser(); u != nil && len(u.Sessions) > 0 {
				m.level = levelSessions
				m.sessionCursor = 0
			}
		case levelSessions:
			if s := m.selectedSession(); s != nil && len(s.Messages) > 0 {
				m.level = levelMessages
				m.messageCursor = 0
			}
		}
		return m, nil

	case "esc":
		switch m.level {
		case levelSessions:
			m.level = levelUsers
		case levelMessages:
			m.level = levelSessions
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.level {
	case levelUsers:
		m.userCursor = clamp(m.userCursor+delta, len(m.users))
	case levelSessions:
		if u := m.selectedUser(); u != nil {
			m.sessionCursor = clamp(m.sessionCursor+delta, len(u.Sessions))
		}
	case levelMessages:
		if s := m.selectedSession(); s != nil {
			m.messageCursor = clamp(m.messageCursor+delta, len(s.Messages))
		}
	}
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		if n == 0 {
			return 0
		}
		return n - 1
	}
	return i
}

func (m Model) selectedUser() *models.User {
	if m.userCursor < len(m.users) {
		return m.users[m.userCursor]
	}
	return nil
}

func (m Model) selectedSession() *models.Session {
	u := m.selectedUser()
	if u != nil && m.sessionCursor < len(u.Sessions) {
		return u.Sessions[m.sessionCursor]
	}
	return nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, dividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderList())
	sections = append(sections, dividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	st := m.src.Stats()
	title := titleStyle.Render("DATA INSIGHTS")
	stats := statsStyle.Render(fmt.Sprintf(" %d users / %d sessions / %d texts",
		st.Users, st.Sessions, st.SessionTexts))
	return title + stats + "\n" + m.renderBreadcrumb()
}

func (m Model) renderBreadcrumb() string {
	crumb := "users"
	if m.level >= levelSessions {
		if u := m.selectedUser(); u != nil {
			crumb += " > " + displayName(u)
		}
	}
	if m.level == levelMessages {
		if s := m.selectedSession(); s != nil {
			crumb += " > " + shortUUID(s.UUID.String())
		}
	}
	return breadcrumbStyle.Render(crumb)
}

func (m Model) renderList() string {
	switch m.level {
	case levelSessions:
		return m.renderSessions()
	case levelMessages:
		return m.renderMessages()
	}
	return m.renderUsers()
}

func (m Model) renderUsers() string {
	if len(m.users) == 0 {
		return emptyStyle.Render("(no users in window)")
	}

	rows := make([]string, 0, len(m.users))
	for i, u := range m.users {
		line := fmt.Sprintf("%s  %d sessions  %.2f credits",
			displayName(u), len(u.Sessions), u.Credits)
		rows = append(rows, m.renderRow(line, i == m.userCursor))
	}
	return m.window(rows, m.userCursor)
}

func (m Model) renderSessions() string {
	u := m.selectedUser()
	if u == nil || len(u.Sessions) == 0 {
		return emptyStyle.Render("(no sessions)")
	}

	rows := make([]string, 0, len(u.Sessions))
	for i, s := range u.Sessions {
		line := fmt.Sprintf("[%s] %s  %s -> %s  %.0fs  %d messages",
			shortUUID(s.UUID.String()), fmtTime(s.BeginAt),
			orDash(s.FromLanguage), orDash(s.ToLanguage),
			s.Duration, len(s.Messages))
		rows = append(rows, m.renderRow(line, i == m.sessionCursor))
	}
	return m.window(rows, m.sessionCursor)
}

func (m Model) renderMessages() string {
	s := m.selectedSession()
	if s == nil || len(s.Messages) == 0 {
		return emptyStyle.Render("(no messages)")
	}

	rows := make([]string, 0, len(s.Messages))
	for i, msg := range s.Messages {
		stamp := timestampStyle.Render(fmtClock(msg.StartAt))
		speaker := speakerStyle.Render(fmt.Sprintf("spk%d", msg.Speaker))
		text := truncateToWidth(msg.Text, max(10, m.width-24))
		rows = append(rows, m.renderRow(stamp+" "+speaker+" "+text, i == m.messageCursor))
	}
	return m.window(rows, m.messageCursor)
}

func (m Model) renderRow(line string, selected bool) string {
	if selected {
		return selectedStyle.Render("> " + line)
	}
	return rowStyle.Render("  " + line)
}

// window keeps the cursor visible inside the list viewport.
func (m Model) window(rows []string, cursor int) string {
	visible := m.listHeight()
	if visible <= 0 || len(rows) <= visible {
		return strings.Join(rows, "\n")
	}

	start := cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > len(rows) {
		start = len(rows) - visible
	}
	return strings.Join(rows[start:start+visible], "\n")
}

// listHeight is the terminal height minus the header, dividers and
// footer chrome.
func (m Model) listHeight() int {
	return m.height - 5
}

func (m Model) renderFooter() string {
	pairs := [][2]string{
		{"j/k", "move"},
		{"enter", "open"},
		{"esc", "back"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, footerKeyStyle.Render(p[0])+footerDescStyle.Render(" "+p[1]))
	}
	return strings.Join(parts, "   ")
}

// Helpers

func displayName(u *models.User) string {
	if u.NickName != "" {
		return u.NickName
	}
	return shortUUID(u.UUID.String())
}

func shortUUID(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return "----------------"
	}
	return t.Format("2006-01-02 15:04")
}

func fmtClock(t *time.Time) string {
	if t == nil {
		return "--:--:--"
	}
	return t.Format("15:04:05")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncateToWidth(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-1 {
		return string(runes[:width-1]) + "…"
	}
	return s
}
