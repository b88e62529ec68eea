package session

import (
	"fmt"
	"math"
	"time"

	"github.com/bnema/agenthub-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

// View is everything the session screen shows. Token is only inspected for
// its claims and never printed.
type View struct {
	State   application.SessionState
	Token   string
	BaseURL string
}

type RenderOptions struct {
	Now time.Time
}

func renderView(view View, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("AgentHub Session")}
	if view.BaseURL != "" {
		lines = append(lines, s.header.Render("api: "+view.BaseURL))
	}

	lines = append(lines, s.section.Render(identityBlock(view.State, opts, s)))

	if view.State.IsAuthenticated {
		if line := tokenLine(view.Token, opts.Now, s); line != "" {
			lines = append(lines, line)
		}
	}

	if view.State.Error != "" {
		lines = append(lines, s.section.Render(s.warning.Render("error: "+view.State.Error)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func identityBlock(state application.SessionState, opts RenderOptions, s styles) string {
	switch {
	case state.IsLoading:
		return s.empty.Render("Checking session...")
	case !state.IsAuthenticated:
		return lipgloss.JoinVertical(
			lipgloss.Left,
			s.detail.Render("Signed out"),
			s.hint.Render("Run `ah auth login` to sign in."),
		)
	case state.User == nil:
		return s.detail.Render("Signed in (profile not loaded)")
	}

	user := state.User
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.ok.Render("Signed in as "), s.user.Render(displayName(user.Username, user.Email))),
		s.detail.Render("email: " + user.Email),
		s.detail.Render("user id: " + string(user.ID)),
	}
	if user.CreatedAt != "" {
		parts = append(parts, s.detail.Render("member since: "+user.CreatedAt))
	}
	if !state.VerifiedAt.IsZero() {
		parts = append(parts, s.hint.Render("verified "+formatRelative(state.VerifiedAt, opts.Now)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func displayName(username, email string) string {
	if username != "" {
		return username
	}
	return email
}

func tokenLine(token string, now time.Time, s styles) string {
	info, ok := InspectToken(token)
	if !ok || info.ExpiresAt.IsZero() {
		return ""
	}

	if now.IsZero() {
		return s.detail.Render("token expires " + info.ExpiresAt.Format(time.RFC3339))
	}
	if info.Expired(now) {
		return s.warning.Render(fmt.Sprintf("token expired %s", formatRelative(info.ExpiresAt, now)))
	}

	return s.detail.Render(fmt.Sprintf("token expires %s (%s)", formatRelative(info.ExpiresAt, now), info.ExpiresAt.In(now.Location()).Format("15:04 on 02 Jan")))
}

// formatRelative renders t against now as "in 3 hours" or "2 days ago".
func formatRelative(t, now time.Time) string {
	if now.IsZero() {
		return "at " + t.Format(time.RFC3339)
	}

	delta := t.Sub(now)
	future := delta > 0
	if !future {
		delta = -delta
	}

	var amount string
	switch {
	case delta < time.Minute:
		return "just now"
	case delta < time.Hour:
		amount = plural(int(math.Round(delta.Minutes())), "minute")
	case delta < 24*time.Hour:
		amount = plural(int(math.Round(delta.Hours())), "hour")
	default:
		amount = plural(int(math.Round(delta.Hours()/24)), "day")
	}

	if future {
		return "in " + amount
	}
	return amount + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
