// Package export renders composed item sequences as CSV or a text table.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"devsync/internal/model"
)

var header = []string{"kind", "id", "name", "at", "unread", "external", "detail"}

// Row is one exported item.
type Row struct {
	Kind     string
	ID       string
	Name     string
	At       time.Time
	Unread   bool
	External bool
	Detail   string
}

// FromItem flattens an item into a Row.
func FromItem(it model.Item) Row {
	r := Row{
		Kind:     it.Kind().String(),
		ID:       it.ItemID(),
		Name:     it.Name(),
		Unread:   it.Unread(),
		External: it.External(),
		Detail:   Detail(it),
	}
	if ts := it.Recency(); ts != 0 {
		r.At = time.Unix(ts, 0).UTC()
	}
	return r
}

// ToSlice returns the CSV record for r.
func (r Row) ToSlice() []string {
	at := ""
	if !r.At.IsZero() {
		at = r.At.Format(time.RFC3339)
	}
	return []string{r.Kind, r.ID, r.Name, at, strconv.FormatBool(r.Unread), strconv.FormatBool(r.External), r.Detail}
}

// Detail is the secondary line shown for an item.
func Detail(it model.Item) string {
	switch v := it.(type) {
	case model.DirectMessage:
		return v.LastMessagePreview
	case model.Channel:
		return v.Topic
	case model.ActivityEvent:
		return v.Subtitle
	case model.ListItem:
		parts := []string{string(v.Status)}
		if v.Priority != "" {
			parts = append(parts, string(v.Priority))
		}
		if v.DueDate != nil {
			parts = append(parts, "due "+v.DueDate.Format(time.DateOnly))
		}
		if v.ListTitle != "" {
			parts = append(parts, v.ListTitle)
		}
		return strings.Join(parts, " · ")
	case model.Canvas:
		var parts []string
		if v.IsTemplate {
			parts = append(parts, "template")
		}
		if v.CreatedBy != "" {
			parts = append(parts, "by "+v.CreatedBy)
		}
		if v.Description != "" {
			parts = append(parts, v.Description)
		}
		return strings.Join(parts, " · ")
	case model.Connection:
		var parts []string
		if v.IsInvite {
			parts = append(parts, "invite")
		}
		for _, p := range []string{v.Status, v.Domain, v.Message} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		return strings.Join(parts, " · ")
	}
	return ""
}

// WriteCSV writes a header row followed by one record per item.
func WriteCSV(w io.Writer, items []model.Item) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, it := range items {
		if err := writer.Write(FromItem(it).ToSlice()); err != nil {
			return fmt.Errorf("write %s %s: %w", it.Kind(), it.ItemID(), err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadCSV reads rows written by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("read csv: missing header")
	}
	if strings.Join(records[0], ",") != strings.Join(header, ",") {
		return nil, fmt.Errorf("read csv: unexpected header %v", records[0])
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := Row{Kind: rec[0], ID: rec[1], Name: rec[2], Detail: rec[6]}
		if rec[3] != "" {
			if row.At, err = time.Parse(time.RFC3339, rec[3]); err != nil {
				return nil, fmt.Errorf("read csv: record %d: %w", i+1, err)
			}
		}
		if row.Unread, err = strconv.ParseBool(rec[4]); err != nil {
			return nil, fmt.Errorf("read csv: record %d unread: %w", i+1, err)
		}
		if row.External, err = strconv.ParseBool(rec[5]); err != nil {
			return nil, fmt.Errorf("read csv: record %d external: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteTable renders items as a bordered table. Unread rows are marked with
// a dot in the first column.
func WriteTable(w io.Writer, items []model.Item) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "NAME", "KIND", "WHEN", "DETAIL")
	for _, it := range items {
		r := FromItem(it)
		mark := ""
		if r.Unread {
			mark = "•"
		}
		name := r.Name
		if r.External {
			name += " (ext)"
		}
		when := ""
		if !r.At.IsZero() {
			when = r.At.Format("2006-01-02 15:04")
		}
		t.Row(mark, name, r.Kind, when, r.Detail)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}
