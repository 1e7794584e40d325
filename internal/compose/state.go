// Package compose narrows and orders a screen's catalog from the user's
// filter, search and sort choices. Everything here is pure: the same catalog
// and state always give the same sequence.
package compose

import (
	"strings"
	"time"

	"devsync/internal/model"
)

// Category selects which items a screen tab admits. Besides the three
// constants, any tag known to model.IsKnownTag is a valid Category.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryUnread   Category = "unread"
	CategoryExternal Category = "external"
)

// ParseCategory normalizes s. Unknown values give CategoryAll and ok=false.
func ParseCategory(s string) (Category, bool) {
	t := model.NormalizeTag(s)
	switch Category(t) {
	case CategoryAll, CategoryUnread, CategoryExternal:
		return Category(t), true
	case "":
		return CategoryAll, true
	}
	if model.IsKnownTag(t) {
		return Category(t), true
	}
	return CategoryAll, false
}

// SortBy selects the base ordering.
type SortBy string

const (
	SortInsertion SortBy = "insertion"
	SortRecency   SortBy = "recency"
)

// ParseSortBy accepts "sections" and "recent" as aliases. Unknown values
// give SortInsertion and ok=false.
func ParseSortBy(s string) (SortBy, bool) {
	switch model.NormalizeTag(s) {
	case "insertion", "sections", "":
		return SortInsertion, true
	case "recency", "recent":
		return SortRecency, true
	}
	return SortInsertion, false
}

// UnreadPriority controls the unread partition.
type UnreadPriority string

const (
	Prioritize     UnreadPriority = "prioritize"
	DontPrioritize UnreadPriority = "dont"
)

// ParseUnreadPriority maps unknown values to Prioritize with ok=false.
func ParseUnreadPriority(s string) (UnreadPriority, bool) {
	switch model.NormalizeTag(s) {
	case "prioritize", "":
		return Prioritize, true
	case "dont", "don't", "dont-prioritize", "none":
		return DontPrioritize, true
	}
	return Prioritize, false
}

// FilterState is the per-screen filter and search selection.
type FilterState struct {
	Category    Category
	SearchQuery string
	// AsOf anchors date-relative tags like "today". Zero disables them.
	AsOf time.Time
}

// SortState is the per-screen ordering selection.
type SortState struct {
	SortBy         SortBy
	UnreadPriority UnreadPriority
}

func DefaultFilter() FilterState {
	return FilterState{Category: CategoryAll}
}

func DefaultSort() SortState {
	return SortState{SortBy: SortInsertion, UnreadPriority: Prioritize}
}

// Normalize returns f with its category parsed and its query trimmed.
func (f FilterState) Normalize() FilterState {
	f.Category, _ = ParseCategory(string(f.Category))
	f.SearchQuery = strings.TrimSpace(f.SearchQuery)
	return f
}

// Normalize returns s with unknown values replaced by defaults.
func (s SortState) Normalize() SortState {
	s.SortBy, _ = ParseSortBy(string(s.SortBy))
	s.UnreadPriority, _ = ParseUnreadPriority(string(s.UnreadPriority))
	return s
}
