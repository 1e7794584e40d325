package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/dustin/go-humanize"

	"devsync/internal/compose"
	"devsync/internal/export"
	"devsync/internal/model"
)

// itemRow wraps a composed Item for the list display.
type itemRow struct {
	model.Item
	now time.Time
}

func (r itemRow) FilterValue() string { return r.Name() }

func (r itemRow) Title() string {
	var b strings.Builder
	if r.Unread() {
		b.WriteString("• ")
	} else {
		b.WriteString("  ")
	}
	b.WriteString(r.Name())
	switch v := r.Item.(type) {
	case model.DirectMessage:
		if v.IsOnline {
			b.WriteString(" ●")
		}
	case model.Canvas:
		if v.Starred {
			b.WriteString(" ★")
		}
	}
	if r.External() {
		b.WriteString(" (ext)")
	}
	return b.String()
}

func (r itemRow) Description() string {
	desc := export.Detail(r.Item)
	if when := relTime(r.Recency(), r.now); when != "" {
		if desc == "" {
			return when
		}
		return desc + " · " + when
	}
	return desc
}

func relTime(unix int64, now time.Time) string {
	if unix == 0 {
		return ""
	}
	return humanize.RelTime(time.Unix(unix, 0), now, "ago", "from now")
}

func itemsToRows(items []model.Item, now time.Time) []list.Item {
	rows := make([]list.Item, len(items))
	for i, it := range items {
		rows[i] = itemRow{Item: it, now: now}
	}
	return rows
}

func (m *AppModel) screenBar() string {
	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		label := t.catalog.Screen
		if i == m.active {
			parts[i] = m.theme.ActiveTab.Render(label)
		} else {
			parts[i] = m.theme.InactiveTab.Render(label)
		}
	}
	return strings.Join(parts, "")
}

func (m *AppModel) categoryBar() string {
	t := m.tab()
	var b strings.Builder
	for _, tc := range m.composer.Counts(t.catalog, t.filter) {
		label := fmt.Sprintf("%s %d", tc.Category, tc.Count)
		if tc.Category == t.filter.Category {
			b.WriteString(m.theme.ActiveChip.Render(label))
		} else {
			b.WriteString(m.theme.Chip.Render(label))
		}
	}
	sortLabel := "sections"
	if t.sort.SortBy == compose.SortRecency {
		sortLabel = "recent"
	}
	unread := "unread first"
	if t.sort.UnreadPriority == compose.DontPrioritize {
		unread = "mixed"
	}
	b.WriteString(m.theme.Muted.Render(fmt.Sprintf("  sort: %s, %s", sortLabel, unread)))
	return b.String()
}

// emptyMessage explains an empty composed view.
func emptyMessage(f compose.FilterState) string {
	if q := strings.TrimSpace(f.SearchQuery); q != "" {
		return fmt.Sprintf("No results for %q", q)
	}
	switch f.Category {
	case compose.CategoryAll, "":
		return "Nothing here yet"
	case compose.CategoryUnread:
		return "You're all caught up"
	case compose.CategoryExternal:
		return "No conversations with people outside your organization"
	case "recent", "starred":
		return fmt.Sprintf("No %s canvases", f.Category)
	case "invites":
		return "No pending invitations"
	}
	return fmt.Sprintf("No %s found", f.Category)
}

func (m *AppModel) listFooter() string {
	return m.theme.Footer.Render("tab: screen  /: search  c: category  r: recent  u: unread first  enter: open  q: quit")
}

func (m *AppModel) searchFooter() string {
	return m.theme.Footer.Render("type to filter  enter: keep  esc: clear")
}
