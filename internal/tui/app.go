// Package tui is the Bubble Tea front end: one tab per screen catalog, each
// with its own filter, sort and search state.
package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"devsync/internal/compose"
	"devsync/internal/model"
)

type viewState int

const (
	viewList   viewState = iota
	viewSearch           // editing the search query
	viewDetail           // single item
)

// screenTab is the state owned by one mounted screen. It is created with
// defaults and dropped when the program exits.
type screenTab struct {
	catalog *model.Catalog
	filter  compose.FilterState
	sort    compose.SortState
	cursor  int
}

// Options configures NewAppModel.
type Options struct {
	Catalogs []*model.Catalog
	Composer *compose.Composer
	Theme    Theme
	// Screen is the tab shown first. Unknown names select the first tab.
	Screen string
	// Now supplies the reference time for date tabs and relative times.
	Now    func() time.Time
	Logger zerolog.Logger
}

type AppModel struct {
	composer *compose.Composer
	theme    Theme
	now      func() time.Time
	log      zerolog.Logger
	Err      error

	status    string
	statusSeq int

	tabs   []*screenTab
	active int
	view   viewState
	shown  []model.Item

	// Sub-models
	itemsList    list.Model
	searchInput  textinput.Model
	detailView   viewport.Model
	selectedItem model.Item

	width, height int
}

func NewAppModel(opts Options) AppModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Composer == nil {
		opts.Composer, _ = compose.NewComposer(0, opts.Logger)
	}

	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.Prompt = "/ "

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)

	m := AppModel{
		composer:    opts.Composer,
		theme:       opts.Theme,
		now:         opts.Now,
		log:         opts.Logger,
		itemsList:   l,
		searchInput: ti,
		detailView:  viewport.New(0, 0),
	}
	for _, c := range opts.Catalogs {
		if c == nil {
			continue
		}
		m.tabs = append(m.tabs, &screenTab{
			catalog: c,
			filter:  compose.DefaultFilter(),
			sort:    compose.DefaultSort(),
		})
	}
	if i := slices.IndexFunc(m.tabs, func(t *screenTab) bool { return t.catalog.Screen == opts.Screen }); i >= 0 {
		m.active = i
	}
	m.recompose()
	return m
}

func (m *AppModel) Init() tea.Cmd {
	return nil
}

func (m *AppModel) tab() *screenTab {
	if len(m.tabs) == 0 {
		return &screenTab{filter: compose.DefaultFilter(), sort: compose.DefaultSort()}
	}
	return m.tabs[m.active]
}

// recompose rebuilds the visible list from the active tab's state.
func (m *AppModel) recompose() {
	if len(m.tabs) == 0 {
		return
	}
	t := m.tab()
	now := m.now()
	// Truncated so repeated keystrokes within a minute hit the memo.
	t.filter.AsOf = now.Truncate(time.Minute)
	m.shown = m.composer.Compose(t.catalog, t.filter, t.sort)
	m.itemsList.SetItems(itemsToRows(m.shown, now))
	if t.cursor >= len(m.shown) {
		t.cursor = max(len(m.shown)-1, 0)
	}
	m.itemsList.Select(t.cursor)
	m.log.Debug().
		Str("screen", t.catalog.Screen).
		Str("category", string(t.filter.Category)).
		Str("query", t.filter.SearchQuery).
		Int("shown", len(m.shown)).
		Msg("recomposed")
}

// setStatus shows s and schedules its removal. A newer status outlives the
// clear scheduled for an older one.
func (m *AppModel) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	return clearStatusAfter(2*time.Second, m.statusSeq)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.itemsList.SetSize(msg.Width, max(msg.Height-7, 1)) // screen bar, chips, search, footer
		m.detailView.Width = msg.Width
		m.detailView.Height = max(msg.Height-6, 1)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.view {
	case viewList:
		m.itemsList, cmd = m.itemsList.Update(msg)
	case viewSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case viewDetail:
		m.detailView, cmd = m.detailView.Update(msg)
	}
	return m, cmd
}

func (m *AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case viewSearch:
		switch key {
		case "enter":
			m.searchInput.Blur()
			m.view = viewList
			return m, nil
		case "esc":
			m.searchInput.Reset()
			m.searchInput.Blur()
			m.view = viewList
			m.tab().filter.SearchQuery = ""
			m.recompose()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		if q := m.searchInput.Value(); q != m.tab().filter.SearchQuery {
			m.tab().filter.SearchQuery = q
			m.tab().cursor = 0
			m.recompose()
		}
		return m, cmd

	case viewList:
		switch key {
		case "q":
			return m, tea.Quit
		case "tab":
			m.switchTab(1)
			return m, nil
		case "shift+tab":
			m.switchTab(-1)
			return m, nil
		case "/":
			m.view = viewSearch
			m.searchInput.SetValue(m.tab().filter.SearchQuery)
			m.searchInput.CursorEnd()
			return m, m.searchInput.Focus()
		case "c":
			m.cycleCategory()
			return m, nil
		case "r":
			t := m.tab()
			if t.sort.SortBy == compose.SortRecency {
				t.sort.SortBy = compose.SortInsertion
				m.recompose()
				return m, m.setStatus("Sorted by sections")
			}
			t.sort.SortBy = compose.SortRecency
			m.recompose()
			return m, m.setStatus("Sorted by most recent")
		case "u":
			t := m.tab()
			if t.sort.UnreadPriority == compose.DontPrioritize {
				t.sort.UnreadPriority = compose.Prioritize
				m.recompose()
				return m, m.setStatus("Unread first")
			}
			t.sort.UnreadPriority = compose.DontPrioritize
			m.recompose()
			return m, m.setStatus("Unread mixed in")
		case "esc":
			if m.tab().filter.SearchQuery != "" {
				m.tab().filter.SearchQuery = ""
				m.searchInput.Reset()
				m.recompose()
			}
			return m, nil
		case "enter":
			return m.openSelected()
		}
		var cmd tea.Cmd
		m.itemsList, cmd = m.itemsList.Update(msg)
		m.tab().cursor = m.itemsList.Index()
		return m, cmd

	case viewDetail:
		switch key {
		case "q":
			return m, tea.Quit
		case "esc":
			m.view = viewList
			m.selectedItem = nil
			return m, nil
		}
		var cmd tea.Cmd
		m.detailView, cmd = m.detailView.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *AppModel) switchTab(step int) {
	if len(m.tabs) == 0 {
		return
	}
	m.active = (m.active + step + len(m.tabs)) % len(m.tabs)
	m.searchInput.SetValue(m.tab().filter.SearchQuery)
	m.recompose()
}

func (m *AppModel) cycleCategory() {
	if len(m.tabs) == 0 {
		return
	}
	t := m.tab()
	tabs := compose.Tabs(t.catalog.Screen)
	i := slices.Index(tabs, t.filter.Category)
	t.filter.Category = tabs[(i+1)%len(tabs)]
	t.cursor = 0
	m.recompose()
}

func (m *AppModel) openSelected() (tea.Model, tea.Cmd) {
	selected := m.itemsList.SelectedItem()
	if selected == nil {
		return m, nil
	}
	it := selected.(itemRow).Item
	m.selectedItem = it
	m.detailView.SetContent(m.detailHeader(it) + "\n\n" + detailBody(it))
	m.detailView.GotoTop()
	m.view = viewDetail
	return m, nil
}

// Shown returns the items currently displayed on the active tab.
func (m *AppModel) Shown() []model.Item {
	return slices.Clone(m.shown)
}

// View renders the appropriate view based on current state.
func (m *AppModel) View() string {
	if m.Err != nil {
		return "Error: " + m.Err.Error() + "\n"
	}
	if len(m.tabs) == 0 {
		return "No screens to show.\n"
	}

	var b strings.Builder

	if m.view == viewDetail && m.selectedItem != nil {
		b.WriteString(m.detailView.View())
		b.WriteString("\n")
		b.WriteString(m.detailFooter())
		return b.String()
	}

	b.WriteString(m.screenBar())
	b.WriteString("\n")
	b.WriteString(m.categoryBar())
	b.WriteString("\n")
	if m.view == viewSearch {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	} else if q := m.tab().filter.SearchQuery; q != "" {
		b.WriteString(m.theme.Muted.Render(fmt.Sprintf("search: %s", q)))
		b.WriteString("\n")
	}

	if len(m.shown) == 0 {
		b.WriteString(m.theme.Empty.Render(emptyMessage(m.tab().filter)))
	} else {
		b.WriteString(m.itemsList.View())
	}
	b.WriteString("\n")
	if m.view == viewSearch {
		b.WriteString(m.searchFooter())
	} else {
		b.WriteString(m.listFooter())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	return b.String()
}
