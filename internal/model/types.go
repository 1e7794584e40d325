package model

import (
	"strings"
	"time"
)

// Kind tags the variant of a catalog Item.
type Kind int

const (
	KindDirectMessage Kind = iota
	KindChannel
	KindActivity
	KindListItem
	KindCanvas
	KindConnection
)

func (k Kind) String() string {
	switch k {
	case KindDirectMessage:
		return "dm"
	case KindChannel:
		return "channel"
	case KindActivity:
		return "activity"
	case KindListItem:
		return "list_item"
	case KindCanvas:
		return "canvas"
	case KindConnection:
		return "connection"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String. ok is false for unknown names.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dm", "direct_message":
		return KindDirectMessage, true
	case "channel":
		return KindChannel, true
	case "activity":
		return KindActivity, true
	case "list_item", "list":
		return KindListItem, true
	case "canvas":
		return KindCanvas, true
	case "connection", "org":
		return KindConnection, true
	}
	return 0, false
}

// Item is one listable record of a screen. The variants in this package are
// the only implementations.
type Item interface {
	ItemID() string
	Kind() Kind
	Name() string
	// Recency is a Unix timestamp in seconds; larger is more recent.
	Recency() int64
	Unread() bool
	External() bool
	// SearchFields holds the display name first, then any free-text
	// preview or subtitle fields. Empty fields may be present.
	SearchFields() []string
	// HasTag reports whether the item belongs to a domain-specific tab.
	// asOf anchors date-relative tags; the zero time disables them.
	HasTag(tag string, asOf time.Time) bool
}

// DirectMessage is a one-to-one conversation.
type DirectMessage struct {
	ID                 string
	DisplayName        string
	Timestamp          int64
	IsOnline           bool
	IsExternal         bool
	IsUnread           bool
	LastMessagePreview string
}

func (d DirectMessage) ItemID() string         { return d.ID }
func (d DirectMessage) Kind() Kind             { return KindDirectMessage }
func (d DirectMessage) Name() string           { return d.DisplayName }
func (d DirectMessage) Recency() int64         { return d.Timestamp }
func (d DirectMessage) Unread() bool           { return d.IsUnread }
func (d DirectMessage) External() bool         { return d.IsExternal }
func (d DirectMessage) SearchFields() []string { return []string{d.DisplayName, d.LastMessagePreview} }
func (d DirectMessage) HasTag(tag string, _ time.Time) bool {
	return NormalizeTag(tag) == "online" && d.IsOnline
}

// Channel is a named room. Shared (Slack Connect) channels count as external.
type Channel struct {
	ID          string
	DisplayName string
	Timestamp   int64
	IsUnread    bool
	IsShared    bool
	Topic       string
}

func (c Channel) ItemID() string                { return c.ID }
func (c Channel) Kind() Kind                    { return KindChannel }
func (c Channel) Name() string                  { return c.DisplayName }
func (c Channel) Recency() int64                { return c.Timestamp }
func (c Channel) Unread() bool                  { return c.IsUnread }
func (c Channel) External() bool                { return c.IsShared }
func (c Channel) SearchFields() []string        { return []string{c.DisplayName, c.Topic} }
func (c Channel) HasTag(string, time.Time) bool { return false }

// ActivityCategory classifies an ActivityEvent.
type ActivityCategory string

const (
	CategoryMention      ActivityCategory = "mention"
	CategoryThread       ActivityCategory = "thread"
	CategoryReaction     ActivityCategory = "reaction"
	CategoryInvitation   ActivityCategory = "invitation"
	CategoryNotification ActivityCategory = "notification"
)

// ParseActivityCategory accepts the plain names as well as the
// "channel_invitation" and "app_notification" spellings.
func ParseActivityCategory(s string) (ActivityCategory, bool) {
	switch NormalizeTag(s) {
	case "mention", "mentions":
		return CategoryMention, true
	case "thread", "threads":
		return CategoryThread, true
	case "reaction", "reactions":
		return CategoryReaction, true
	case "invitation", "invitations", "channel-invitation":
		return CategoryInvitation, true
	case "notification", "notifications", "app-notification":
		return CategoryNotification, true
	}
	return "", false
}

// ActivityEvent is an entry of the activity feed.
type ActivityEvent struct {
	ID          string
	DisplayName string
	Timestamp   int64
	Category    ActivityCategory
	Subtitle    string
	Channel     string
	Actor       string
	IsUnread    bool
}

func (a ActivityEvent) ItemID() string { return a.ID }
func (a ActivityEvent) Kind() Kind     { return KindActivity }
func (a ActivityEvent) Name() string   { return a.DisplayName }
func (a ActivityEvent) Recency() int64 { return a.Timestamp }
func (a ActivityEvent) Unread() bool   { return a.IsUnread }
func (a ActivityEvent) External() bool { return false }
func (a ActivityEvent) SearchFields() []string {
	return []string{a.DisplayName, a.Subtitle, a.Channel, a.Actor}
}

func (a ActivityEvent) HasTag(tag string, _ time.Time) bool {
	c, ok := ParseActivityCategory(tag)
	return ok && c == a.Category
}

// ListStatus is the workflow state of a ListItem.
type ListStatus string

const (
	StatusTodo       ListStatus = "todo"
	StatusInProgress ListStatus = "in-progress"
	StatusOverdue    ListStatus = "overdue"
	StatusCompleted  ListStatus = "completed"
)

// ParseListStatus accepts display spellings such as "In Progress".
func ParseListStatus(s string) (ListStatus, bool) {
	switch ListStatus(NormalizeTag(s)) {
	case StatusTodo, "to-do":
		return StatusTodo, true
	case StatusInProgress:
		return StatusInProgress, true
	case StatusOverdue:
		return StatusOverdue, true
	case StatusCompleted, "done":
		return StatusCompleted, true
	}
	return "", false
}

// Priority of a ListItem.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(NormalizeTag(s)); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	}
	return "", false
}

// ListItem is a task assigned from a list.
type ListItem struct {
	ID          string
	DisplayName string
	Timestamp   int64
	Status      ListStatus
	Priority    Priority
	DueDate     *time.Time
	ListTitle   string
	AssignedBy  string
}

func (l ListItem) ItemID() string { return l.ID }
func (l ListItem) Kind() Kind     { return KindListItem }
func (l ListItem) Name() string   { return l.DisplayName }
func (l ListItem) Recency() int64 { return l.Timestamp }
func (l ListItem) Unread() bool   { return false }
func (l ListItem) External() bool { return false }
func (l ListItem) SearchFields() []string {
	return []string{l.DisplayName, l.ListTitle, l.AssignedBy}
}

func (l ListItem) HasTag(tag string, asOf time.Time) bool {
	switch t := NormalizeTag(tag); t {
	case "today":
		return l.DueDate != nil && !asOf.IsZero() && sameDay(*l.DueDate, asOf)
	case "overdue":
		if l.Status == StatusOverdue {
			return true
		}
		if l.Status == StatusCompleted || l.DueDate == nil || asOf.IsZero() {
			return false
		}
		return dateOf(*l.DueDate).Before(dateOf(asOf))
	default:
		if s, ok := ParseListStatus(t); ok {
			return s == l.Status
		}
		if p, ok := ParsePriority(t); ok {
			return p == l.Priority
		}
		return false
	}
}

// dateOf is t's calendar date in t's own location, as midnight UTC. Due
// dates are calendar dates, so comparisons ignore zone offsets.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return dateOf(a).Equal(dateOf(b))
}

// Canvas is a shared document. Templates are kept apart from the recent
// canvases.
type Canvas struct {
	ID          string
	DisplayName string
	UpdatedAt   int64
	CreatedBy   string
	Starred     bool
	IsTemplate  bool
	Description string
}

func (c Canvas) ItemID() string { return c.ID }
func (c Canvas) Kind() Kind     { return KindCanvas }
func (c Canvas) Name() string   { return c.DisplayName }
func (c Canvas) Recency() int64 { return c.UpdatedAt }
func (c Canvas) Unread() bool   { return false }
func (c Canvas) External() bool { return false }
func (c Canvas) SearchFields() []string {
	return []string{c.DisplayName, c.CreatedBy, c.Description}
}

func (c Canvas) HasTag(tag string, _ time.Time) bool {
	switch NormalizeTag(tag) {
	case "recent":
		return !c.IsTemplate
	case "starred":
		return c.Starred
	case "templates", "template":
		return c.IsTemplate
	}
	return false
}

// Connection is an external organization, either already connected or
// inviting this workspace. Every connection is external.
type Connection struct {
	ID          string
	DisplayName string
	Timestamp   int64
	Domain      string
	Status      string // active, pending, disconnected
	IsInvite    bool
	Message     string
}

func (c Connection) ItemID() string { return c.ID }
func (c Connection) Kind() Kind     { return KindConnection }
func (c Connection) Name() string   { return c.DisplayName }
func (c Connection) Recency() int64 { return c.Timestamp }
func (c Connection) Unread() bool   { return false }
func (c Connection) External() bool { return true }
func (c Connection) SearchFields() []string {
	return []string{c.DisplayName, c.Domain, c.Message}
}

func (c Connection) HasTag(tag string, _ time.Time) bool {
	switch NormalizeTag(tag) {
	case "connected":
		return !c.IsInvite
	case "invites", "invite":
		return c.IsInvite
	}
	return false
}
