package model

import "strings"

// NormalizeTag lowercases and trims a tab or tag name and joins inner words
// with '-', so "In Progress" and "in_progress" both become "in-progress".
func NormalizeTag(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-' || r == '\t'
	}), "-")
}

var knownTags = map[string]struct{}{
	"online":        {},
	"mention":       {},
	"mentions":      {},
	"thread":        {},
	"threads":       {},
	"reaction":      {},
	"reactions":     {},
	"invitation":    {},
	"invitations":   {},
	"notification":  {},
	"notifications": {},
	"todo":          {},
	"in-progress":   {},
	"overdue":       {},
	"completed":     {},
	"today":         {},
	"low":           {},
	"medium":        {},
	"high":          {},
	"recent":        {},
	"starred":       {},
	"template":      {},
	"templates":     {},
	"connected":     {},
	"invite":        {},
	"invites":       {},
}

// IsKnownTag reports whether tag names a domain-specific tab some variant
// can answer.
func IsKnownTag(tag string) bool {
	_, ok := knownTags[NormalizeTag(tag)]
	return ok
}

// ScreenTabs lists the domain tabs each screen offers after the common
// "all", "unread" and "external" ones.
var ScreenTabs = map[string][]string{
	ScreenDMs:         {"online"},
	ScreenHome:        nil,
	ScreenActivity:    {"mentions", "threads", "reactions", "invitations", "notifications"},
	ScreenAssigned:    {"today", "overdue", "completed"},
	ScreenCanvases:    {"recent", "starred", "templates"},
	ScreenConnections: {"connected", "invites"},
}
