package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devsync/internal/compose"
	"devsync/internal/model"
)

var testNow = time.Date(2024, 6, 22, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, screen string) *AppModel {
	t.Helper()
	dms := model.MustCatalog(model.ScreenDMs,
		model.DirectMessage{ID: "1", DisplayName: "Alice", Timestamp: 300},
		model.DirectMessage{ID: "2", DisplayName: "Bob", Timestamp: 100, IsUnread: true, IsExternal: true},
		model.DirectMessage{ID: "3", DisplayName: "Carol", Timestamp: 200, IsOnline: true},
	)
	activity := model.MustCatalog(model.ScreenActivity,
		model.ActivityEvent{ID: "1", DisplayName: "Dan", Category: model.CategoryMention, Subtitle: "mentioned you", IsUnread: true},
		model.ActivityEvent{ID: "2", DisplayName: "Eve", Category: model.CategoryReaction, Subtitle: "reacted"},
	)
	composer, err := compose.NewComposer(8, zerolog.Nop())
	require.NoError(t, err)

	m := NewAppModel(Options{
		Catalogs: []*model.Catalog{dms, activity},
		Composer: composer,
		Theme:    DarkTheme(),
		Screen:   screen,
		Now:      func() time.Time { return testNow },
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return &m
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *AppModel, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range msgs {
		_, cmd = m.Update(k)
	}
	return cmd
}

func shownNames(m *AppModel) []string {
	var names []string
	for _, it := range m.Shown() {
		names = append(names, it.Name())
	}
	return names
}

func TestAppModel_DefaultsPrioritizeUnread(t *testing.T) {
	m := newTestApp(t, model.ScreenDMs)
	assert.Equal(t, []string{"Bob", "Alice", "Carol"}, shownNames(m))
}

func TestAppModel_SortToggles(t *testing.T) {
	m := newTestApp(t, model.ScreenDMs)

	cmd := press(m, keys("u"))
	assert.NotNil(t, cmd)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, shownNames(m))
	assert.Contains(t, m.View(), "Unread mixed in")

	press(m, keys("r"))
	assert.Equal(t, []string{"Alice", "Carol", "Bob"}, shownNames(m))

	m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.NotContains(t, m.View(), "Sorted by most recent")
}

func TestAppModel_OlderClearKeepsNewerStatus(t *testing.T) {
	m := newTestApp(t, model.ScreenDMs)

	press(m, keys("r"))
	first := m.statusSeq
	press(m, keys("u"))
	require.Contains(t, m.View(), "Unread mixed in")

	m.Update(clearStatusMsg{seq: first})
	assert.Contains(t, m.View(), "Unread mixed in")

	m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.NotContains(t, m.View(), "Unread mixed in")
}

func TestAppModel_CycleCategory(t *testing.T) {
	m := newTestApp(t, model.ScreenDMs)

	press(m, keys("c"))
	assert.Equal(t, compose.CategoryUnread, m.tab().filter.Category)
	assert.Equal(t, []string{"Bob"}, shownNames(m))

	press(m, keys("c"))
	assert.Equal(t, []string{"Bob"}, shownNames(m))

	press(m, keys("c"))
	assert.Equal(t, compose.Category("online"), m.tab().filter.Category)
	assert.Equal(t, []string{"Carol"}, shownNames(m))

	press(m, keys("c"))
	assert.Equal(t, compose.CategoryAll, m.tab().filter.Category)
}

func TestAppModel_SearchAppliesPerKeystroke(t *testing.T) {
	m := newTestApp(t, model.ScreenDMs)

	press(m, keys("/"))
	require.Equal(t, viewSearch, m.view)

	press(m, keys("C"))
	assert.Equal(t, []string{"Alice", "Carol"}, shownNames(m))

	// q is text while searching.
	press(m, keys("a"), keys("r"), keys("q"))
	assert.Equal(t, viewSearch, m.view)
	assert.Equal(t, "Carq", m.tab().filter.SearchQuery)
	assert.Empty(t, m.Shown())
	assert.Contains(t, m.View(), `No results for "Carq"`)

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, []string{"Carol"}, shownNames(m))

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, viewList, m.view)
	assert.Equal(t, "Car", m.tab().filter.SearchQuery)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []string{"Bob", "Alice", "Carol"}, shownNames(m))
}

func TestAppModel_SearchEscClears(t *testing.T) {
	m := newTestApp(t, model.ScreenDMs)
	press(m, keys("/"), keys("b"), keys("o"))
	assert.Equal(t, []string{"Bob"}, shownNames(m))

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewList, m.view)
	assert.Empty(t, m.tab().filter.SearchQuery)
	assert.Len(t, m.Shown(), 3)
}

func TestAppModel_TabsKeepOwnState(t *testing.T) {
	m := newTestApp(t, model.ScreenDMs)
	press(m, keys("c"))
	require.Equal(t, []string{"Bob"}, shownNames(m))

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.ScreenActivity, m.tab().catalog.Screen)
	assert.Equal(t, []string{"Dan", "Eve"}, shownNames(m))

	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, model.ScreenDMs, m.tab().catalog.Screen)
	assert.Equal(t, []string{"Bob"}, shownNames(m))
}

func TestAppModel_EmptyCategoryMessage(t *testing.T) {
	m := newTestApp(t, model.ScreenActivity)
	press(m, keys("c"), keys("c"))
	require.Equal(t, compose.CategoryExternal, m.tab().filter.Category)
	assert.Empty(t, m.Shown())
	assert.Contains(t, m.View(), "No conversations with people outside your organization")

	press(m, keys("c"), keys("c"), keys("c"))
	assert.Equal(t, compose.Category("reactions"), m.tab().filter.Category)
	assert.Equal(t, []string{"Eve"}, shownNames(m))
}

func TestAppModel_DetailView(t *testing.T) {
	m := newTestApp(t, model.ScreenDMs)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewDetail, m.view)
	require.NotNil(t, m.selectedItem)
	assert.Equal(t, "Bob", m.selectedItem.Name())
	assert.Contains(t, m.View(), "External:")

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewList, m.view)
	assert.Nil(t, m.selectedItem)
}

func TestAppModel_Quit(t *testing.T) {
	m := newTestApp(t, model.ScreenDMs)
	cmd := press(m, keys("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppModel_UnknownScreenSelectsFirst(t *testing.T) {
	m := newTestApp(t, "files")
	assert.Equal(t, model.ScreenDMs, m.tab().catalog.Screen)
}

func TestAppModel_NoCatalogs(t *testing.T) {
	m := NewAppModel(Options{Theme: LightTheme()})
	press(&m, keys("c"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "No screens to show.")
}

func TestEmptyMessage(t *testing.T) {
	assert.Equal(t, `No results for "zz"`, emptyMessage(compose.FilterState{SearchQuery: " zz "}))
	assert.Equal(t, "Nothing here yet", emptyMessage(compose.FilterState{}))
	assert.Equal(t, "You're all caught up", emptyMessage(compose.FilterState{Category: compose.CategoryUnread}))
	assert.Equal(t, "No starred canvases", emptyMessage(compose.FilterState{Category: "starred"}))
	assert.Equal(t, "No pending invitations", emptyMessage(compose.FilterState{Category: "invites"}))
	assert.Equal(t, "No overdue found", emptyMessage(compose.FilterState{Category: "overdue"}))
}

func TestItemRow(t *testing.T) {
	row := itemRow{
		Item: model.DirectMessage{DisplayName: "Bob", IsUnread: true, IsOnline: true, IsExternal: true, LastMessagePreview: "hey", Timestamp: testNow.Add(-2 * time.Hour).Unix()},
		now:  testNow,
	}
	assert.Equal(t, "• Bob ● (ext)", row.Title())
	assert.Equal(t, "hey · 2 hours ago", row.Description())
	assert.Equal(t, "Bob", row.FilterValue())

	canvas := itemRow{Item: model.Canvas{DisplayName: "Planning notes", CreatedBy: "John Doe", Starred: true}, now: testNow}
	assert.Equal(t, "  Planning notes ★", canvas.Title())
	assert.Equal(t, "by John Doe", canvas.Description())
}

func TestAppModel_CanvasTabs(t *testing.T) {
	canvases := model.MustCatalog(model.ScreenCanvases,
		model.Canvas{ID: "1", DisplayName: "Notes", Starred: true},
		model.Canvas{ID: "2", DisplayName: "Campaign"},
		model.Canvas{ID: "3", DisplayName: "Onboarding", IsTemplate: true},
	)
	m := NewAppModel(Options{
		Catalogs: []*model.Catalog{canvases},
		Theme:    DarkTheme(),
		Now:      func() time.Time { return testNow },
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	// all, unread, external, then recent.
	press(&m, keys("c"), keys("c"), keys("c"))
	assert.Equal(t, compose.Category("recent"), m.tab().filter.Category)
	assert.Equal(t, []string{"Notes", "Campaign"}, shownNames(&m))

	press(&m, keys("c"))
	assert.Equal(t, []string{"Notes"}, shownNames(&m))

	press(&m, keys("c"))
	assert.Equal(t, []string{"Onboarding"}, shownNames(&m))

	press(&m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Template:")
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "light", ThemeByName("light").Name)
	assert.Equal(t, "dark", ThemeByName("dark").Name)
	assert.Equal(t, "dark", ThemeByName("").Name)
}
