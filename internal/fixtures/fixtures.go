// Package fixtures decodes screen catalogs from YAML, including the demo
// workspace embedded in the binary.
package fixtures

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"devsync/internal/model"
)

//go:embed catalog.yaml
var demo []byte

type file struct {
	Screens []screen `yaml:"screens"`
}

type screen struct {
	Name  string    `yaml:"name"`
	Items []rawItem `yaml:"items"`
}

type rawItem struct {
	Kind       string `yaml:"kind"`
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	At         string `yaml:"at"`
	Unread     bool   `yaml:"unread"`
	External   bool   `yaml:"external"`
	Online     bool   `yaml:"online"`
	Shared     bool   `yaml:"shared"`
	Preview    string `yaml:"preview"`
	Topic      string `yaml:"topic"`
	Category   string `yaml:"category"`
	Subtitle   string `yaml:"subtitle"`
	Channel    string `yaml:"channel"`
	Actor      string `yaml:"actor"`
	Status     string `yaml:"status"`
	Priority   string `yaml:"priority"`
	Due        string `yaml:"due"`
	List       string `yaml:"list"`
	AssignedBy string `yaml:"assigned_by"`

	Starred     bool   `yaml:"starred"`
	Template    bool   `yaml:"template"`
	CreatedBy   string `yaml:"created_by"`
	Description string `yaml:"description"`
	Domain      string `yaml:"domain"`
	Invite      bool   `yaml:"invite"`
	Message     string `yaml:"message"`
}

// Load returns the embedded demo catalogs in file order.
func Load() ([]*model.Catalog, error) {
	return Decode(bytes.NewReader(demo))
}

// Decode reads catalogs from r in file order. Screen names must be unique.
func Decode(r io.Reader) ([]*model.Catalog, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	seen := make(map[string]bool, len(f.Screens))
	out := make([]*model.Catalog, 0, len(f.Screens))
	for _, s := range f.Screens {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, errors.New("fixtures: screen without a name")
		}
		if seen[name] {
			return nil, fmt.Errorf("fixtures: screen %q listed twice", name)
		}
		seen[name] = true

		items := make([]model.Item, 0, len(s.Items))
		for i, raw := range s.Items {
			it, err := raw.item()
			if err != nil {
				return nil, fmt.Errorf("fixtures: screen %s item %d: %w", name, i, err)
			}
			items = append(items, it)
		}
		cat, err := model.NewCatalog(name, items...)
		if err != nil {
			return nil, fmt.Errorf("fixtures: %w", err)
		}
		out = append(out, cat)
	}
	return out, nil
}

// Find returns the catalog for screen, or nil.
func Find(cats []*model.Catalog, screen string) *model.Catalog {
	for _, c := range cats {
		if c.Screen == screen {
			return c
		}
	}
	return nil
}

func (r rawItem) item() (model.Item, error) {
	if r.ID == "" {
		return nil, errors.New("missing id")
	}
	ts, err := parseTime(r.At)
	if err != nil {
		return nil, fmt.Errorf("at: %w", err)
	}
	var unix int64
	if !ts.IsZero() {
		unix = ts.Unix()
	}

	kind, ok := model.ParseKind(r.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", r.Kind)
	}
	switch kind {
	case model.KindDirectMessage:
		return model.DirectMessage{
			ID:                 r.ID,
			DisplayName:        r.Name,
			Timestamp:          unix,
			IsOnline:           r.Online,
			IsExternal:         r.External,
			IsUnread:           r.Unread,
			LastMessagePreview: r.Preview,
		}, nil
	case model.KindChannel:
		return model.Channel{
			ID:          r.ID,
			DisplayName: r.Name,
			Timestamp:   unix,
			IsUnread:    r.Unread,
			IsShared:    r.Shared || r.External,
			Topic:       r.Topic,
		}, nil
	case model.KindActivity:
		cat, ok := model.ParseActivityCategory(r.Category)
		if !ok {
			return nil, fmt.Errorf("unknown activity category %q", r.Category)
		}
		return model.ActivityEvent{
			ID:          r.ID,
			DisplayName: r.Name,
			Timestamp:   unix,
			Category:    cat,
			Subtitle:    r.Subtitle,
			Channel:     r.Channel,
			Actor:       r.Actor,
			IsUnread:    r.Unread,
		}, nil
	case model.KindCanvas:
		return model.Canvas{
			ID:          r.ID,
			DisplayName: r.Name,
			UpdatedAt:   unix,
			CreatedBy:   r.CreatedBy,
			Starred:     r.Starred,
			IsTemplate:  r.Template,
			Description: r.Description,
		}, nil
	case model.KindConnection:
		return model.Connection{
			ID:          r.ID,
			DisplayName: r.Name,
			Timestamp:   unix,
			Domain:      r.Domain,
			Status:      strings.ToLower(strings.TrimSpace(r.Status)),
			IsInvite:    r.Invite,
			Message:     r.Message,
		}, nil
	default:
		status, ok := model.ParseListStatus(r.Status)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", r.Status)
		}
		var prio model.Priority
		if r.Priority != "" {
			if prio, ok = model.ParsePriority(r.Priority); !ok {
				return nil, fmt.Errorf("unknown priority %q", r.Priority)
			}
		}
		due, err := parseTime(r.Due)
		if err != nil {
			return nil, fmt.Errorf("due: %w", err)
		}
		li := model.ListItem{
			ID:          r.ID,
			DisplayName: r.Name,
			Timestamp:   unix,
			Status:      status,
			Priority:    prio,
			ListTitle:   r.List,
			AssignedBy:  r.AssignedBy,
		}
		if !due.IsZero() {
			li.DueDate = &due
		}
		return li, nil
	}
}

// parseTime accepts RFC 3339 timestamps and plain dates. Empty is zero.
// The offset of an RFC 3339 value is kept, so a due date stays on the
// calendar day it was written for.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
