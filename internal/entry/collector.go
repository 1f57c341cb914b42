package entry

import (
	"fmt"
	"sort"

	"github.com/oakwood-commons/lsx/internal/fsys"
)

// Matcher decides whether an entry is listed.
type Matcher interface {
	Match(e fsys.Entry) (bool, error)
}

// Config selects the optional columns and an optional entry filter.
type Config struct {
	ShowSize bool
	ShowType bool
	Filter   Matcher
}

// Collect builds one record per entry, populating exactly the columns
// returned by NewColumns(cfg). Records come back ordered by name.
func Collect(entries []fsys.Entry, cfg Config) ([]Record, error) {
	ordered := make([]fsys.Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	cols := NewColumns(cfg)
	records := make([]Record, 0, len(ordered))
	for _, e := range ordered {
		if cfg.Filter != nil {
			ok, err := cfg.Filter.Match(e)
			if err != nil {
				return nil, fmt.Errorf("filter %s: %w", e.Name, err)
			}
			if !ok {
				continue
			}
		}
		records = append(records, newRecord(e, cols))
	}
	return records, nil
}

func newRecord(e fsys.Entry, cols Columns) Record {
	var r Record
	r.Set(ColumnName, Cell{Text: e.Name, Emphasize: e.IsDir})
	if cols.Contains(ColumnSize) {
		r.Set(ColumnSize, Cell{Text: FormatSize(e.Size), Emphasize: e.IsDir})
	}
	if cols.Contains(ColumnType) {
		r.Set(ColumnType, Cell{Text: TypeOf(e), Emphasize: e.IsDir})
	}
	return r
}

// TypeOf returns the type column value for e.
func TypeOf(e fsys.Entry) string {
	if e.IsDir {
		return DirectoryType
	}
	return typeLabel(GuessType(e.Path))
}
