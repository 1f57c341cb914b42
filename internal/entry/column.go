// Package entry turns raw directory entries into display records for the
// active column set.
package entry

import (
	"fmt"
	"sort"
)

// Column identifies one table column.
type Column int

const (
	ColumnName Column = iota
	ColumnSize
	ColumnType
)

var columnKeys = [...]string{
	ColumnName: "name",
	ColumnSize: "size",
	ColumnType: "type",
}

// Key is the lowercase column identifier; columns are ordered by it.
func (c Column) Key() string {
	if c < 0 || int(c) >= len(columnKeys) {
		return fmt.Sprintf("column(%d)", int(c))
	}
	return columnKeys[c]
}

func (c Column) String() string { return c.Key() }

// DropPriority orders columns for removal when the table is too wide.
// Higher values go first; zero means the column is never dropped.
func (c Column) DropPriority() int {
	switch c {
	case ColumnType:
		return 2
	case ColumnSize:
		return 1
	default:
		return 0
	}
}

// Columns is an ordered list of active columns.
type Columns []Column

// Keys returns the column keys in order.
func (cs Columns) Keys() []string {
	keys := make([]string, len(cs))
	for i, c := range cs {
		keys[i] = c.Key()
	}
	return keys
}

// Contains reports whether c is active.
func (cs Columns) Contains(c Column) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

// NewColumns derives the active columns from the configuration alone, so an
// empty directory yields the same layout as a populated one.
func NewColumns(cfg Config) Columns {
	cols := Columns{ColumnName}
	if cfg.ShowSize {
		cols = append(cols, ColumnSize)
	}
	if cfg.ShowType {
		cols = append(cols, ColumnType)
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i].Key() < cols[j].Key() })
	return cols
}
