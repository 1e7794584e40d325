package tui

import (
	"fmt"
	"strings"
	"time"

	"devsync/internal/model"
)

func (m *AppModel) detailHeader(it model.Item) string {
	return m.theme.Header.Render(fmt.Sprintf("%s\n%s", it.Name(), it.Kind()))
}

// detailBody lists every field of the item, one per line.
func detailBody(it model.Item) string {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("%-12s %s", label+":", value))
		}
	}
	if ts := it.Recency(); ts != 0 {
		add("When", time.Unix(ts, 0).UTC().Format("Jan 2, 2006 15:04 MST"))
	}
	add("Unread", yesNo(it.Unread()))
	add("External", yesNo(it.External()))

	switch v := it.(type) {
	case model.DirectMessage:
		add("Online", yesNo(v.IsOnline))
		add("Last", v.LastMessagePreview)
	case model.Channel:
		add("Topic", v.Topic)
	case model.ActivityEvent:
		add("Category", string(v.Category))
		add("Channel", v.Channel)
		add("Actor", v.Actor)
		add("Summary", v.Subtitle)
	case model.ListItem:
		add("Status", string(v.Status))
		add("Priority", string(v.Priority))
		if v.DueDate != nil {
			add("Due", v.DueDate.Format("Jan 2, 2006"))
		}
		add("List", v.ListTitle)
		add("Assigned by", v.AssignedBy)
	case model.Canvas:
		add("Created by", v.CreatedBy)
		add("Starred", yesNo(v.Starred))
		add("Template", yesNo(v.IsTemplate))
		add("About", v.Description)
	case model.Connection:
		add("Domain", v.Domain)
		add("Status", v.Status)
		add("Invite", yesNo(v.IsInvite))
		add("Message", v.Message)
	}
	return strings.Join(lines, "\n")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (m *AppModel) detailFooter() string {
	return m.theme.Footer.Render("esc: back  q: quit")
}
