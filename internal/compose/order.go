package compose

import (
	"cmp"
	"slices"

	"devsync/internal/model"
)

// Order returns a new slice holding items reordered by s. With Prioritize,
// unread items move ahead of read ones keeping their relative order; with
// SortRecency each of those groups is then sorted newest first, ties keeping
// input order.
func Order(items []model.Item, s SortState) []model.Item {
	s = s.Normalize()
	out := make([]model.Item, 0, len(items))

	if s.UnreadPriority == DontPrioritize {
		out = append(out, items...)
		sortGroup(out, s.SortBy)
		return out
	}

	unread, read := partitionUnread(items)
	sortGroup(unread, s.SortBy)
	sortGroup(read, s.SortBy)
	out = append(out, unread...)
	return append(out, read...)
}

func partitionUnread(items []model.Item) (unread, read []model.Item) {
	for _, it := range items {
		if it.Unread() {
			unread = append(unread, it)
		} else {
			read = append(read, it)
		}
	}
	return unread, read
}

func sortGroup(items []model.Item, by SortBy) {
	if by != SortRecency {
		return
	}
	slices.SortStableFunc(items, func(a, b model.Item) int {
		return cmp.Compare(b.Recency(), a.Recency())
	})
}
