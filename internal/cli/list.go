package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"devsync/internal/compose"
	"devsync/internal/export"
	"devsync/internal/fixtures"
	"devsync/internal/model"
)

type listOptions struct {
	category       string
	query          string
	sortBy         string
	unreadPriority string
	asOf           string
	format         string
}

func newListCmd(root *rootOptions) *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:     "list <screen>",
		Aliases: []string{"ls"},
		Short:   "Print one screen's composed items",
		Long:    "Compose a screen once with the given category, search and sort, then print it.\nScreens: " + strings.Join(model.Screens, ", "),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.category, "category", "c", string(compose.CategoryAll), "category tab: all, unread, external or a screen tag")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "case-insensitive search")
	cmd.Flags().StringVarP(&opts.sortBy, "sort", "s", string(compose.SortInsertion), "sort: insertion|recency")
	cmd.Flags().StringVar(&opts.unreadPriority, "unread-priority", string(compose.Prioritize), "unread first: prioritize|dont")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "reference date for today/overdue tabs (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format: table|csv")
	return cmd
}

func runList(cmd *cobra.Command, root *rootOptions, opts *listOptions, screen string) error {
	if !slices.Contains(model.Screens, screen) {
		return fmt.Errorf("unknown screen %q (want one of %s)", screen, strings.Join(model.Screens, ", "))
	}
	if opts.format != "table" && opts.format != "csv" {
		return fmt.Errorf("unknown format %q (want table or csv)", opts.format)
	}
	asOf := time.Now()
	if opts.asOf != "" {
		t, err := time.ParseInLocation(time.DateOnly, opts.asOf, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --as-of: %w", err)
		}
		asOf = t
	}

	e, err := loadEnv(root, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	cats, err := e.catalogs(cmd.Context())
	if err != nil {
		return err
	}

	filter, sort := parseState(e, opts)
	filter.AsOf = asOf
	items := e.composer.Compose(fixtures.Find(cats, screen), filter, sort)
	e.log.Debug().Str("screen", screen).Int("items", len(items)).Msg("listed")

	out := cmd.OutOrStdout()
	if opts.format == "csv" {
		return export.WriteCSV(out, items)
	}
	return export.WriteTable(out, items)
}

// parseState turns flag values into compose state. Unrecognized values
// keep their defaults and are reported as warnings.
func parseState(e *env, opts *listOptions) (compose.FilterState, compose.SortState) {
	cat, ok := compose.ParseCategory(opts.category)
	if !ok {
		e.log.Warn().Str("category", opts.category).Msg("unknown category, showing all")
	}
	sortBy, ok := compose.ParseSortBy(opts.sortBy)
	if !ok {
		e.log.Warn().Str("sort", opts.sortBy).Msg("unknown sort, using insertion order")
	}
	unread, ok := compose.ParseUnreadPriority(opts.unreadPriority)
	if !ok {
		e.log.Warn().Str("unread_priority", opts.unreadPriority).Msg("unknown unread priority, prioritizing unread")
	}
	return compose.FilterState{Category: cat, SearchQuery: opts.query},
		compose.SortState{SortBy: sortBy, UnreadPriority: unread}
}
