package compose

import "devsync/internal/model"

// Compose filters the catalog, moves unread items first when asked, then
// applies the recency sort. The result is a subsequence of the catalog and
// is never nil. Unknown state values fall back to their defaults.
func Compose(c *model.Catalog, f FilterState, s SortState) []model.Item {
	return Order(Filter(c.Items(), f), s)
}

// TabCount is the number of items a category tab would show.
type TabCount struct {
	Category Category
	Count    int
}

// Tabs returns the categories offered on the catalog's screen: the common
// ones followed by the screen's domain tabs.
func Tabs(screen string) []Category {
	tabs := []Category{CategoryAll, CategoryUnread, CategoryExternal}
	for _, t := range model.ScreenTabs[screen] {
		tabs = append(tabs, Category(model.NormalizeTag(t)))
	}
	return tabs
}

// Counts reports, for each tab of the catalog's screen, how many items that
// tab would admit together with f's search query.
func Counts(c *model.Catalog, f FilterState) []TabCount {
	f = f.Normalize()
	q := foldQuery(f.SearchQuery)
	items := c.Items()
	tabs := Tabs(screenOf(c))

	out := make([]TabCount, 0, len(tabs))
	for _, tab := range tabs {
		tf := f
		tf.Category = tab
		n := 0
		for _, it := range items {
			if admit(it, tf, q) {
				n++
			}
		}
		out = append(out, TabCount{Category: tab, Count: n})
	}
	return out
}

func screenOf(c *model.Catalog) string {
	if c == nil {
		return ""
	}
	return c.Screen
}
