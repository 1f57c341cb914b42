package entry

// Cell is one table value. Emphasize marks directory cells; styling is left
// to the renderer.
type Cell struct {
	Text      string
	Emphasize bool
}

// Record holds the cells of one entry. Only columns set through Set are
// considered present.
type Record struct {
	Name Cell
	Size Cell
	Type Cell

	present uint8
}

// Set stores cell under column c.
func (r *Record) Set(c Column, cell Cell) {
	switch c {
	case ColumnName:
		r.Name = cell
	case ColumnSize:
		r.Size = cell
	case ColumnType:
		r.Type = cell
	default:
		return
	}
	r.present |= 1 << uint(c)
}

// Value returns the cell for column c and whether it was set.
func (r Record) Value(c Column) (Cell, bool) {
	if c < 0 || int(c) >= len(columnKeys) || r.present&(1<<uint(c)) == 0 {
		return Cell{}, false
	}
	switch c {
	case ColumnSize:
		return r.Size, true
	case ColumnType:
		return r.Type, true
	default:
		return r.Name, true
	}
}
