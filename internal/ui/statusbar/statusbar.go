// Package statusbar renders the bottom bar: page badge, key hints, active view
// settings and the reward droplets.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/grove/internal/domain"
	"github.com/riordanpawley/grove/internal/session"
	"github.com/riordanpawley/grove/internal/types"
	"github.com/riordanpawley/grove/internal/ui/styles"
)

const (
	dropletFull  = "●"
	dropletEmpty = "○"
)

// ViewState is the active list's filter and sort
type ViewState interface {
	GetFilter() *domain.Filter
	GetSort() *domain.Sort
	IsFilterActive() bool
}

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	page    types.Page
	width   int
	styles  *styles.Styles
	rewards session.RewardState
	view    ViewState
}

// New creates a new StatusBar for the given page, width, and styles
func New(page types.Page, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		page:   page,
		width:  width,
		styles: styles,
	}
}

// WithRewards attaches the reward counter state to display
func (sb StatusBar) WithRewards(r session.RewardState) StatusBar {
	sb.rewards = r
	return sb
}

// WithView attaches the active filter and sort to display
func (sb StatusBar) WithView(v ViewState) StatusBar {
	sb.view = v
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.StatusMode.Render(" " + sb.page.String() + " ")
	sep := sb.styles.StatusHint.Render(" │ ")

	parts := []string{badge}
	if view := sb.viewSummary(); view != "" {
		parts = append(parts, sep, sb.styles.StatusInfo.Render(view))
	}
	if sb.rewards.PerStage > 0 {
		parts = append(parts, sep, sb.renderRewards())
	}
	parts = append(parts, sep, sb.styles.StatusHint.Render(GetHints(sb.page)))

	return sb.styles.StatusBar.Width(sb.width).Render(lipgloss.JoinHorizontal(lipgloss.Left, parts...))
}

func (sb StatusBar) viewSummary() string {
	if sb.page != types.PageTasks || sb.view == nil {
		return ""
	}
	var parts []string
	if sb.view.IsFilterActive() {
		f := sb.view.GetFilter()
		if f.DueWithin != domain.DueAny {
			parts = append(parts, "due "+f.DueWithin.Label())
		}
		if f.Category != "" {
			parts = append(parts, "in "+f.Category)
		}
	}
	if s := sb.view.GetSort(); s != nil && s.Field != domain.SortByCreated {
		parts = append(parts, fmt.Sprintf("by %s %s", s.Field, s.Order))
	}
	return strings.Join(parts, ", ")
}

func (sb StatusBar) renderRewards() string {
	r := sb.rewards
	full := sb.styles.Droplet.Render(strings.Repeat(dropletFull, r.Remaining))
	empty := sb.styles.DropletUsed.Render(strings.Repeat(dropletEmpty, r.Used))
	tree := sb.styles.Tree.Render(fmt.Sprintf("🌳 %d (%d%%)", r.Stage, int(r.Scale*100+0.5)))
	return full + empty + " " + tree
}
