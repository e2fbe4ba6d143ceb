package compressor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Table is a dense row-major table. For a DFA, a row is a state and a column is a symbol.
type Table struct {
	entries  []int
	rowCount int
	colCount int
}

func NewTable(entries []int, colCount int) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("entries is empty")
	}
	if colCount <= 0 {
		return nil, fmt.Errorf("colCount must be >=1")
	}
	if len(entries)%colCount != 0 {
		return nil, fmt.Errorf("entries length or column count are incorrect; entries length: %v, column count: %v", len(entries), colCount)
	}

	return &Table{
		entries:  entries,
		rowCount: len(entries) / colCount,
		colCount: colCount,
	}, nil
}

func (t *Table) row(n int) []int {
	return t.entries[n*t.colCount : (n+1)*t.colCount]
}

type Compressor interface {
	Compress(orig *Table) error
	Lookup(row, col int) (int, error)
	OriginalTableSize() (int, int)
}

var (
	_ Compressor = &UniqueRowsTable{}
	_ Compressor = &RowDisplacementTable{}
)

// UniqueRowsTable stores each distinct row once. DFA states with identical outgoing transitions share a row.
type UniqueRowsTable struct {
	UniqueRows       []int
	RowNums          []int
	OriginalRowCount int
	OriginalColCount int
}

func NewUniqueRowsTable() *UniqueRowsTable {
	return &UniqueRowsTable{}
}

func (tab *UniqueRowsTable) Compress(orig *Table) error {
	rowNums := make([]int, orig.rowCount)
	var unique []int
	seen := map[string]int{}
	for row := 0; row < orig.rowCount; row++ {
		entries := orig.row(row)
		key := rowKey(entries)
		num, ok := seen[key]
		if !ok {
			num = len(seen)
			seen[key] = num
			unique = append(unique, entries...)
		}
		rowNums[row] = num
	}

	tab.UniqueRows = unique
	tab.RowNums = rowNums
	tab.OriginalRowCount = orig.rowCount
	tab.OriginalColCount = orig.colCount
	return nil
}

func rowKey(entries []int) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(strconv.Itoa(e))
		b.WriteByte(',')
	}
	return b.String()
}

func (tab *UniqueRowsTable) Lookup(row, col int) (int, error) {
	if row < 0 || row >= tab.OriginalRowCount || col < 0 || col >= tab.OriginalColCount {
		return 0, fmt.Errorf("indexes are out of range: [%v, %v]", row, col)
	}
	return tab.UniqueRows[tab.RowNums[row]*tab.OriginalColCount+col], nil
}

func (tab *UniqueRowsTable) OriginalTableSize() (int, int) {
	return tab.OriginalRowCount, tab.OriginalColCount
}

// ForbiddenValue marks a slot of RowDisplacementTable.Bounds that no row owns.
const ForbiddenValue = -1

// RowDisplacementTable overlays sparse rows in one array. Each row is shifted by its displacement so that its
// non-empty entries land on free slots; Bounds records which row owns each slot.
type RowDisplacementTable struct {
	OriginalRowCount int
	OriginalColCount int
	EmptyValue       int
	Entries          []int
	Bounds           []int
	RowDisplacement  []int
}

func NewRowDisplacementTable(emptyValue int) *RowDisplacementTable {
	return &RowDisplacementTable{
		EmptyValue: emptyValue,
	}
}

func (tab *RowDisplacementTable) Compress(orig *Table) error {
	type sparseRow struct {
		num  int
		cols []int
	}

	rows := make([]sparseRow, orig.rowCount)
	for row := 0; row < orig.rowCount; row++ {
		rows[row].num = row
		for col, v := range orig.row(row) {
			if v != tab.EmptyValue {
				rows[row].cols = append(rows[row].cols, col)
			}
		}
	}
	// Placing dense rows first leaves the gaps for the sparse ones.
	sort.SliceStable(rows, func(i, j int) bool {
		return len(rows[i].cols) > len(rows[j].cols)
	})

	entries := []int{}
	bounds := []int{}
	grow := func(size int) {
		for len(entries) < size {
			entries = append(entries, tab.EmptyValue)
			bounds = append(bounds, ForbiddenValue)
		}
	}
	grow(orig.colCount)

	fits := func(d int, cols []int) bool {
		for _, col := range cols {
			if d+col < len(bounds) && bounds[d+col] != ForbiddenValue {
				return false
			}
		}
		return true
	}

	displacement := make([]int, orig.rowCount)
	for _, r := range rows {
		if len(r.cols) == 0 {
			continue
		}
		d := 0
		for !fits(d, r.cols) {
			d++
		}
		grow(d + orig.colCount)
		for _, col := range r.cols {
			entries[d+col] = orig.entries[r.num*orig.colCount+col]
			bounds[d+col] = r.num
		}
		displacement[r.num] = d
	}

	tab.OriginalRowCount = orig.rowCount
	tab.OriginalColCount = orig.colCount
	tab.Entries = entries
	tab.Bounds = bounds
	tab.RowDisplacement = displacement
	return nil
}

func (tab *RowDisplacementTable) Lookup(row int, col int) (int, error) {
	if row < 0 || row >= tab.OriginalRowCount || col < 0 || col >= tab.OriginalColCount {
		return tab.EmptyValue, fmt.Errorf("indexes are out of range: [%v, %v]", row, col)
	}
	d := tab.RowDisplacement[row]
	if tab.Bounds[d+col] != row {
		return tab.EmptyValue, nil
	}
	return tab.Entries[d+col], nil
}

func (tab *RowDisplacementTable) OriginalTableSize() (int, int) {
	return tab.OriginalRowCount, tab.OriginalColCount
}
