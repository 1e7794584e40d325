package compose

import (
	"strings"

	"golang.org/x/text/cases"

	"devsync/internal/model"
)

// Admit reports whether item passes f. The category predicate and the
// search query are ANDed; an empty query admits everything.
func Admit(item model.Item, f FilterState) bool {
	f = f.Normalize()
	return admit(item, f, foldQuery(f.SearchQuery))
}

// Filter returns the items admitted by f in their input order. The
// result is never nil.
func Filter(items []model.Item, f FilterState) []model.Item {
	f = f.Normalize()
	q := foldQuery(f.SearchQuery)
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if admit(it, f, q) {
			out = append(out, it)
		}
	}
	return out
}

func admit(item model.Item, f FilterState, foldedQuery string) bool {
	if item == nil {
		return false
	}
	if !categoryMatches(item, f) {
		return false
	}
	if foldedQuery == "" {
		return true
	}
	return searchMatches(item, foldedQuery)
}

func categoryMatches(item model.Item, f FilterState) bool {
	switch f.Category {
	case CategoryAll:
		return true
	case CategoryUnread:
		return item.Unread()
	case CategoryExternal:
		return item.External()
	default:
		return item.HasTag(string(f.Category), f.AsOf)
	}
}

func searchMatches(item model.Item, foldedQuery string) bool {
	for _, field := range item.SearchFields() {
		if field == "" {
			continue
		}
		if strings.Contains(fold(field), foldedQuery) {
			return true
		}
	}
	return false
}

func foldQuery(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	return fold(q)
}

// folder is stateless and safe for concurrent use.
var folder = cases.Fold()

func fold(s string) string {
	return folder.String(s)
}
