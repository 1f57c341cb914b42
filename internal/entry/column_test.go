package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewColumns(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{"name only", Config{}, []string{"name"}},
		{"size", Config{ShowSize: true}, []string{"name", "size"}},
		{"type", Config{ShowType: true}, []string{"name", "type"}},
		{"size and type", Config{ShowSize: true, ShowType: true}, []string{"name", "size", "type"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewColumns(tt.cfg).Keys())
		})
	}
}

func TestNewColumnsIsStable(t *testing.T) {
	cfg := Config{ShowSize: true, ShowType: true}
	first := NewColumns(cfg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, NewColumns(cfg))
	}
}

func TestColumnKeyAndPriority(t *testing.T) {
	assert.Equal(t, "name", ColumnName.String())
	assert.Equal(t, "column(9)", Column(9).Key())

	assert.Zero(t, ColumnName.DropPriority())
	assert.Greater(t, ColumnType.DropPriority(), ColumnSize.DropPriority())
	assert.Greater(t, ColumnSize.DropPriority(), ColumnName.DropPriority())
}

func TestColumnsContains(t *testing.T) {
	cols := NewColumns(Config{ShowSize: true})
	assert.True(t, cols.Contains(ColumnName))
	assert.True(t, cols.Contains(ColumnSize))
	assert.False(t, cols.Contains(ColumnType))
}

func TestRecordValue(t *testing.T) {
	var r Record
	_, ok := r.Value(ColumnName)
	assert.False(t, ok, "unset column must not be present")

	r.Set(ColumnName, Cell{Text: "src", Emphasize: true})
	r.Set(ColumnType, Cell{Text: "/", Emphasize: true})

	got, ok := r.Value(ColumnName)
	assert.True(t, ok)
	assert.Equal(t, Cell{Text: "src", Emphasize: true}, got)

	got, ok = r.Value(ColumnType)
	assert.True(t, ok)
	assert.Equal(t, "/", got.Text)

	_, ok = r.Value(ColumnSize)
	assert.False(t, ok)

	r.Set(Column(7), Cell{Text: "ignored"})
	_, ok = r.Value(Column(7))
	assert.False(t, ok)
}
