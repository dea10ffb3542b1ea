// Package report renders a styled console summary of a loaded dataset:
// the stat counts plus a bounded walk over sample users, their sessions
// and the first messages of each.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/shaling-ai/data-insights/internal/core"
	"github.com/shaling-ai/data-insights/internal/models"
)

// Styles for the console summary.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	userStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF00"))

	sessionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))
)

// Options bounds the sample walk. Values at or below zero hide that
// level entirely.
type Options struct {
	SampleUsers    int
	SampleSessions int
	SampleMessages int
}

// Render builds the full report. Sample users are the first users that
// have linked sessions, in load order.
func Render(src core.DataSource, opts Options) string {
	var b strings.Builder

	st := src.Stats()
	b.WriteString(titleStyle.Render("=== Data Loaded ===") + "\n")
	writeStat(&b, "Users", st.Users)
	writeStat(&b, "Sessions", st.Sessions)
	writeStat(&b, "Session texts", st.SessionTexts)
	writeStat(&b, "Users with sessions", st.UsersWithSessions)
	writeStat(&b, "Sessions with messages", st.SessionsWithMessages)

	if opts.SampleUsers <= 0 {
		return b.String()
	}

	b.WriteString("\n" + titleStyle.Render("=== Sample Users ===") + "\n")
	shown := 0
	for _, u := range src.Users() {
		if len(u.Sessions) == 0 {
			continue
		}
		writeUser(&b, u, opts)
		shown++
		if shown == opts.SampleUsers {
			break
		}
	}
	if shown == 0 {
		b.WriteString(dimStyle.Render("(no users with sessions)") + "\n")
	}
	return b.String()
}

func writeStat(b *strings.Builder, label string, n int) {
	fmt.Fprintf(b, "%s %d\n", labelStyle.Render(label+":"), n)
}

func writeUser(b *strings.Builder, u *models.User, opts Options) {
	fmt.Fprintf(b, "%s %s\n", userStyle.Render(u.NickName), dimStyle.Render("("+u.UUID.String()+")"))
	fmt.Fprintf(b, "  %s %s  %s %.2f\n",
		labelStyle.Render("email:"), u.Email,
		labelStyle.Render("credits:"), u.Credits)
	fmt.Fprintf(b, "  %s %s\n", labelStyle.Render("registered:"), fmtTime(u.RegistrationTime))
	fmt.Fprintf(b, "  %s %d\n", labelStyle.Render("sessions:"), len(u.Sessions))

	limit := len(u.Sessions)
	if opts.SampleSessions > 0 && opts.SampleSessions < limit {
		limit = opts.SampleSessions
	}
	for _, s := range u.Sessions[:limit] {
		writeSession(b, s, opts)
	}
}

func writeSession(b *strings.Builder, s *models.Session, opts Options) {
	line := fmt.Sprintf("[%s] %s  %s -> %s  %.0fs  %d messages",
		shortUUID(s.UUID.String()), fmtTime(s.BeginAt),
		orDash(s.FromLanguage), orDash(s.ToLanguage),
		s.Duration, len(s.Messages))
	fmt.Fprintf(b, "  %s\n", sessionStyle.Render(line))

	limit := len(s.Messages)
	if opts.SampleMessages <= 0 {
		return
	}
	if opts.SampleMessages < limit {
		limit = opts.SampleMessages
	}
	for _, m := range s.Messages[:limit] {
		fmt.Fprintf(b, "    %s %s\n",
			dimStyle.Render(fmt.Sprintf("[%d]", m.Speaker)),
			messageStyle.Render(truncate(m.Text, 70)))
	}
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func shortUUID(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
