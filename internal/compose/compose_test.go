package compose

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devsync/internal/model"
)

func names(items []model.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name()
	}
	return out
}

func scenarioCatalog() *model.Catalog {
	return model.MustCatalog("dms",
		model.DirectMessage{ID: "1", DisplayName: "Caleb", IsUnread: true, Timestamp: 100},
		model.DirectMessage{ID: "2", DisplayName: "Jane", IsUnread: false, Timestamp: 200},
		model.DirectMessage{ID: "3", DisplayName: "Mike", IsUnread: true, Timestamp: 50},
	)
}

func dmCatalog() *model.Catalog {
	return model.MustCatalog("dms",
		model.DirectMessage{ID: "1", DisplayName: "Frank Iokko", IsOnline: true, IsUnread: true, Timestamp: 1715212800, LastMessagePreview: "You: Worla joined Slack"},
		model.DirectMessage{ID: "2", DisplayName: "Caleb Adams", IsUnread: true, Timestamp: 1715212800, LastMessagePreview: "You: Worla joined Slack"},
		model.DirectMessage{ID: "3", DisplayName: "Michael Oti Yamoah", IsExternal: true, Timestamp: 1715212800, LastMessagePreview: "You: Worla has joined Slack"},
		model.DirectMessage{ID: "4", DisplayName: "Hakeem Adam", IsOnline: true, Timestamp: 1715212800},
		model.DirectMessage{ID: "5", DisplayName: "Alvin", IsUnread: true, IsExternal: true, Timestamp: 1715212800, LastMessagePreview: "accepted your invitation"},
		model.DirectMessage{ID: "6", DisplayName: "selormfidel", Timestamp: 1715126400, LastMessagePreview: "made updates to a canvas tab"},
		model.DirectMessage{ID: "7", DisplayName: "Roger Osafo Kwabena Adu", IsExternal: true, Timestamp: 1715212800, LastMessagePreview: "made updates to a canvas tab"},
	)
}

func TestCompose_ScenarioRecencyWithinUnreadPartition(t *testing.T) {
	got := Compose(scenarioCatalog(),
		FilterState{Category: CategoryAll},
		SortState{SortBy: SortRecency, UnreadPriority: Prioritize},
	)
	require.Equal(t, []string{"Caleb", "Mike", "Jane"}, names(got))
}

func TestCompose_ScenarioUnreadBeforeSearch(t *testing.T) {
	got := Compose(scenarioCatalog(),
		FilterState{Category: CategoryUnread, SearchQuery: "ja"},
		SortState{SortBy: SortRecency, UnreadPriority: Prioritize},
	)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestCompose_RecencyWithoutPriority(t *testing.T) {
	got := Compose(scenarioCatalog(), DefaultFilter(), SortState{SortBy: SortRecency, UnreadPriority: DontPrioritize})
	require.Equal(t, []string{"Jane", "Caleb", "Mike"}, names(got))
}

func TestCompose_InsertionKeepsCatalogOrder(t *testing.T) {
	got := Compose(scenarioCatalog(), DefaultFilter(), SortState{SortBy: SortInsertion, UnreadPriority: DontPrioritize})
	require.Equal(t, []string{"Caleb", "Jane", "Mike"}, names(got))

	got = Compose(scenarioCatalog(), DefaultFilter(), DefaultSort())
	require.Equal(t, []string{"Caleb", "Mike", "Jane"}, names(got))
}

func TestCompose_RecencyTiesKeepCatalogOrder(t *testing.T) {
	got := Compose(dmCatalog(), DefaultFilter(), SortState{SortBy: SortRecency, UnreadPriority: DontPrioritize})
	require.Equal(t, []string{
		"Frank Iokko", "Caleb Adams", "Michael Oti Yamoah", "Hakeem Adam", "Alvin", "Roger Osafo Kwabena Adu",
		"selormfidel",
	}, names(got))
}

func TestCompose_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Compose(dmCatalog(), FilterState{SearchQuery: "cal"}, DefaultSort())
	require.Equal(t, []string{"Caleb Adams"}, names(got))

	got = Compose(dmCatalog(), FilterState{SearchQuery: "  CALEB  "}, DefaultSort())
	require.Equal(t, []string{"Caleb Adams"}, names(got))
}

func TestCompose_SearchMatchesPreview(t *testing.T) {
	got := Compose(dmCatalog(), FilterState{SearchQuery: "CANVAS"}, SortState{UnreadPriority: DontPrioritize})
	require.Equal(t, []string{"selormfidel", "Roger Osafo Kwabena Adu"}, names(got))
}

func TestCompose_SearchFoldsUnicode(t *testing.T) {
	cat := model.MustCatalog("home",
		model.Channel{ID: "1", DisplayName: "ÉCOLE"},
		model.Channel{ID: "2", DisplayName: "Ångström"},
	)
	got := Compose(cat, FilterState{SearchQuery: "école"}, DefaultSort())
	require.Equal(t, []string{"ÉCOLE"}, names(got))

	got = Compose(cat, FilterState{SearchQuery: "åNG"}, DefaultSort())
	require.Equal(t, []string{"Ångström"}, names(got))
}

func TestCompose_ExternalCategory(t *testing.T) {
	got := Compose(dmCatalog(), FilterState{Category: CategoryExternal}, DefaultSort())
	require.Equal(t, []string{"Alvin", "Michael Oti Yamoah", "Roger Osafo Kwabena Adu"}, names(got))
}

func TestCompose_EmptyQueryReturnsCategorySetInOrder(t *testing.T) {
	s := SortState{SortBy: SortInsertion, UnreadPriority: DontPrioritize}
	cat := dmCatalog()
	for _, c := range []Category{CategoryAll, CategoryUnread, CategoryExternal, "online"} {
		got := Compose(cat, FilterState{Category: c}, s)
		var want []model.Item
		for _, it := range cat.Items() {
			if categoryMatches(it, FilterState{Category: c}) {
				want = append(want, it)
			}
		}
		require.Equal(t, names(want), names(got), c)
	}
}

func TestCompose_UnknownValuesFailClosed(t *testing.T) {
	cat := scenarioCatalog()
	got := Compose(cat,
		FilterState{Category: "favorites"},
		SortState{SortBy: "alphabetical", UnreadPriority: "sometimes"},
	)
	want := Compose(cat, DefaultFilter(), DefaultSort())
	require.Equal(t, names(want), names(got))
}

func TestCompose_KnownTagOnOtherVariantRejects(t *testing.T) {
	got := Compose(scenarioCatalog(), FilterState{Category: "mentions"}, DefaultSort())
	require.Empty(t, got)
}

func TestCompose_NilCatalog(t *testing.T) {
	got := Compose(nil, DefaultFilter(), DefaultSort())
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestCompose_ActivityTabs(t *testing.T) {
	cat := model.MustCatalog("activity",
		model.ActivityEvent{ID: "1", DisplayName: "Caleb Adams", Category: model.CategoryInvitation, Subtitle: "Added you to #test-channel", Timestamp: 30},
		model.ActivityEvent{ID: "4", DisplayName: "Michael Oti Yamoah", Category: model.CategoryMention, Subtitle: "mentioned you in #general", Channel: "general", Timestamp: 20, IsUnread: true},
		model.ActivityEvent{ID: "5", DisplayName: "Hakeem Adam", Category: model.CategoryMention, Subtitle: "mentioned you in #main", Channel: "main", Timestamp: 10},
		model.ActivityEvent{ID: "8", DisplayName: "Michael Oti Yamoah", Category: model.CategoryReaction, Subtitle: "reacted to your message in #main", Channel: "main", Timestamp: 5},
	)

	got := Compose(cat, FilterState{Category: "mentions"}, DefaultSort())
	require.Equal(t, []string{"Michael Oti Yamoah", "Hakeem Adam"}, names(got))

	got = Compose(cat, FilterState{Category: "mentions", SearchQuery: "MAIN"}, DefaultSort())
	require.Equal(t, []string{"Hakeem Adam"}, names(got))

	got = Compose(cat, FilterState{SearchQuery: "main"}, SortState{SortBy: SortRecency, UnreadPriority: DontPrioritize})
	require.Equal(t, []string{"Hakeem Adam", "Michael Oti Yamoah"}, names(got))
}

func TestCompose_AssignedDateTabs(t *testing.T) {
	due := func(s string) *time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return &d
	}
	cat := model.MustCatalog("assigned",
		model.ListItem{ID: "1", DisplayName: "Implement user authentication", Status: model.StatusInProgress, DueDate: due("2024-01-20")},
		model.ListItem{ID: "2", DisplayName: "Create social media graphics", Status: model.StatusTodo, DueDate: due("2024-01-18")},
		model.ListItem{ID: "3", DisplayName: "Fix login bug on mobile", Status: model.StatusOverdue, DueDate: due("2024-01-16")},
		model.ListItem{ID: "4", DisplayName: "Write blog post about new features", Status: model.StatusCompleted},
	)
	asOf := time.Date(2024, 1, 18, 9, 0, 0, 0, time.UTC)

	got := Compose(cat, FilterState{Category: "today", AsOf: asOf}, DefaultSort())
	require.Equal(t, []string{"Create social media graphics"}, names(got))

	got = Compose(cat, FilterState{Category: "overdue", AsOf: asOf}, DefaultSort())
	require.Equal(t, []string{"Fix login bug on mobile"}, names(got))

	got = Compose(cat, FilterState{Category: "today"}, DefaultSort())
	require.Empty(t, got)

	counts := Counts(cat, FilterState{AsOf: asOf})
	byTab := map[Category]int{}
	for _, tc := range counts {
		byTab[tc.Category] = tc.Count
	}
	assert.Equal(t, 4, byTab[CategoryAll])
	assert.Equal(t, 0, byTab[CategoryUnread])
	assert.Equal(t, 1, byTab["today"])
	assert.Equal(t, 1, byTab["overdue"])
	assert.Equal(t, 1, byTab["completed"])
}

func TestCounts_RespectsQuery(t *testing.T) {
	counts := Counts(dmCatalog(), FilterState{Category: CategoryUnread, SearchQuery: "ADAM"})
	require.Equal(t, []TabCount{
		{Category: CategoryAll, Count: 2},
		{Category: CategoryUnread, Count: 1},
		{Category: CategoryExternal, Count: 0},
		{Category: "online", Count: 1},
	}, counts)
}

func TestParseHelpers(t *testing.T) {
	c, ok := ParseCategory("Unread")
	assert.True(t, ok)
	assert.Equal(t, CategoryUnread, c)

	c, ok = ParseCategory("")
	assert.True(t, ok)
	assert.Equal(t, CategoryAll, c)

	c, ok = ParseCategory("In Progress")
	assert.True(t, ok)
	assert.Equal(t, Category("in-progress"), c)

	c, ok = ParseCategory("pinned")
	assert.False(t, ok)
	assert.Equal(t, CategoryAll, c)

	sb, ok := ParseSortBy("recent")
	assert.True(t, ok)
	assert.Equal(t, SortRecency, sb)

	sb, ok = ParseSortBy("sections")
	assert.True(t, ok)
	assert.Equal(t, SortInsertion, sb)

	up, ok := ParseUnreadPriority("dont")
	assert.True(t, ok)
	assert.Equal(t, DontPrioritize, up)

	up, ok = ParseUnreadPriority("bogus")
	assert.False(t, ok)
	assert.Equal(t, Prioritize, up)
}

func TestAdmit(t *testing.T) {
	dm := model.DirectMessage{ID: "1", DisplayName: "Caleb Adams", IsUnread: true}
	assert.True(t, Admit(dm, FilterState{Category: CategoryUnread, SearchQuery: "adams"}))
	assert.False(t, Admit(dm, FilterState{Category: CategoryExternal}))
	assert.False(t, Admit(dm, FilterState{SearchQuery: "jane"}))
	assert.False(t, Admit(nil, DefaultFilter()))
}
