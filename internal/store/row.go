package store

import (
	"fmt"
	"time"

	"devsync/internal/model"
)

// row is the flat column layout of the items table.
type row struct {
	kind       string
	id         string
	name       string
	recency    int64
	unread     bool
	external   bool
	online     bool
	preview    string
	topic      string
	category   string
	subtitle   string
	channel    string
	actor      string
	status     string
	priority   string
	dueDate    string
	listTitle  string
	assignedBy string

	starred     bool
	template    bool
	createdBy   string
	description string
	domain      string
	invite      bool
	message     string
}

func toRow(it model.Item) row {
	r := row{
		kind:     it.Kind().String(),
		id:       it.ItemID(),
		name:     it.Name(),
		recency:  it.Recency(),
		unread:   it.Unread(),
		external: it.External(),
	}
	switch v := it.(type) {
	case model.DirectMessage:
		r.online = v.IsOnline
		r.preview = v.LastMessagePreview
	case model.Channel:
		r.topic = v.Topic
	case model.ActivityEvent:
		r.category = string(v.Category)
		r.subtitle = v.Subtitle
		r.channel = v.Channel
		r.actor = v.Actor
	case model.ListItem:
		r.status = string(v.Status)
		r.priority = string(v.Priority)
		if v.DueDate != nil {
			r.dueDate = v.DueDate.Format(time.RFC3339)
		}
		r.listTitle = v.ListTitle
		r.assignedBy = v.AssignedBy
	case model.Canvas:
		r.starred = v.Starred
		r.template = v.IsTemplate
		r.createdBy = v.CreatedBy
		r.description = v.Description
	case model.Connection:
		r.domain = v.Domain
		r.status = v.Status
		r.invite = v.IsInvite
		r.message = v.Message
	}
	return r
}

func (r row) item() (model.Item, error) {
	kind, ok := model.ParseKind(r.kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", r.kind)
	}
	switch kind {
	case model.KindDirectMessage:
		return model.DirectMessage{
			ID:                 r.id,
			DisplayName:        r.name,
			Timestamp:          r.recency,
			IsOnline:           r.online,
			IsExternal:         r.external,
			IsUnread:           r.unread,
			LastMessagePreview: r.preview,
		}, nil
	case model.KindChannel:
		return model.Channel{
			ID:          r.id,
			DisplayName: r.name,
			Timestamp:   r.recency,
			IsUnread:    r.unread,
			IsShared:    r.external,
			Topic:       r.topic,
		}, nil
	case model.KindActivity:
		cat, ok := model.ParseActivityCategory(r.category)
		if !ok {
			return nil, fmt.Errorf("unknown activity category %q", r.category)
		}
		return model.ActivityEvent{
			ID:          r.id,
			DisplayName: r.name,
			Timestamp:   r.recency,
			Category:    cat,
			Subtitle:    r.subtitle,
			Channel:     r.channel,
			Actor:       r.actor,
			IsUnread:    r.unread,
		}, nil
	case model.KindCanvas:
		return model.Canvas{
			ID:          r.id,
			DisplayName: r.name,
			UpdatedAt:   r.recency,
			CreatedBy:   r.createdBy,
			Starred:     r.starred,
			IsTemplate:  r.template,
			Description: r.description,
		}, nil
	case model.KindConnection:
		return model.Connection{
			ID:          r.id,
			DisplayName: r.name,
			Timestamp:   r.recency,
			Domain:      r.domain,
			Status:      r.status,
			IsInvite:    r.invite,
			Message:     r.message,
		}, nil
	default:
		status, ok := model.ParseListStatus(r.status)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", r.status)
		}
		var prio model.Priority
		if r.priority != "" {
			if prio, ok = model.ParsePriority(r.priority); !ok {
				return nil, fmt.Errorf("unknown priority %q", r.priority)
			}
		}
		li := model.ListItem{
			ID:          r.id,
			DisplayName: r.name,
			Timestamp:   r.recency,
			Status:      status,
			Priority:    prio,
			ListTitle:   r.listTitle,
			AssignedBy:  r.assignedBy,
		}
		if r.dueDate != "" {
			due, err := time.Parse(time.RFC3339, r.dueDate)
			if err != nil {
				return nil, fmt.Errorf("due_date: %w", err)
			}
			li.DueDate = &due
		}
		return li, nil
	}
}
