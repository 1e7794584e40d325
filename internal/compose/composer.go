package compose

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"devsync/internal/model"
)

type memoKey struct {
	catalog  *model.Catalog
	category Category
	query    string
	asOf     string
	sortBy   SortBy
	unread   UnreadPriority
}

// Composer wraps Compose with an optional memo and debug logging of state
// values that fell back to defaults. Catalogs are immutable, so a catalog
// pointer plus the normalized state is a complete memo key. Safe for
// concurrent use.
type Composer struct {
	memo *lru.Cache[memoKey, []model.Item]
	log  zerolog.Logger
}

// NewComposer returns a Composer remembering up to memoSize results.
// memoSize 0 disables the memo.
func NewComposer(memoSize int, log zerolog.Logger) (*Composer, error) {
	c := &Composer{log: log}
	if memoSize > 0 {
		memo, err := lru.New[memoKey, []model.Item](memoSize)
		if err != nil {
			return nil, err
		}
		c.memo = memo
	}
	return c, nil
}

// Compose behaves exactly like the package-level Compose.
func (c *Composer) Compose(cat *model.Catalog, f FilterState, s SortState) []model.Item {
	c.logFallbacks(cat, f, s)
	f = f.Normalize()
	s = s.Normalize()

	if c.memo == nil {
		return Compose(cat, f, s)
	}

	key := memoKey{
		catalog:  cat,
		category: f.Category,
		query:    f.SearchQuery,
		sortBy:   s.SortBy,
		unread:   s.UnreadPriority,
	}
	if !f.AsOf.IsZero() {
		key.asOf = f.AsOf.Format(time.RFC3339Nano)
	}

	if hit, ok := c.memo.Get(key); ok {
		return append(make([]model.Item, 0, len(hit)), hit...)
	}
	out := Compose(cat, f, s)
	c.memo.Add(key, append(make([]model.Item, 0, len(out)), out...))
	return out
}

// Counts behaves like the package-level Counts.
func (c *Composer) Counts(cat *model.Catalog, f FilterState) []TabCount {
	return Counts(cat, f)
}

// Len reports how many results are memoized.
func (c *Composer) Len() int {
	if c.memo == nil {
		return 0
	}
	return c.memo.Len()
}

func (c *Composer) logFallbacks(cat *model.Catalog, f FilterState, s SortState) {
	if _, ok := ParseCategory(string(f.Category)); !ok {
		c.log.Debug().Str("screen", screenOf(cat)).Str("category", string(f.Category)).Msg("unknown category, showing all")
	}
	if _, ok := ParseSortBy(string(s.SortBy)); !ok {
		c.log.Debug().Str("screen", screenOf(cat)).Str("sort_by", string(s.SortBy)).Msg("unknown sort, keeping insertion order")
	}
	if _, ok := ParseUnreadPriority(string(s.UnreadPriority)); !ok {
		c.log.Debug().Str("screen", screenOf(cat)).Str("unread_priority", string(s.UnreadPriority)).Msg("unknown unread priority, prioritizing")
	}
}
