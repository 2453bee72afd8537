package dataset

import (
	"strings"

	"surveylens/domain/core"
)

// ColumnKind classifies what a column holds after type inference.
type ColumnKind string

const (
	KindNumeric ColumnKind = "numeric"
	KindText    ColumnKind = "text"
)

// Column is a single named column of an uploaded table. Cells always holds
// the raw strings as read from the file. For numeric columns Values and
// Missing run parallel to Cells: Missing[i] is true where the cell could not
// be parsed as a finite number, and Values[i] is meaningful only when
// Missing[i] is false.
type Column struct {
	Name    string
	Kind    ColumnKind
	Cells   []string
	Values  []float64
	Missing []bool
}

// Dataset is one uploaded survey table. All columns have equal length
// (one row per respondent). A Dataset is never mutated after load; a new
// upload replaces it wholesale.
type Dataset struct {
	ID       core.DatasetID
	Name     string
	Columns  []Column
	RowCount int
}

// Column finds a column by name (case-insensitive).
func (d *Dataset) Column(name string) (*Column, bool) {
	for i := range d.Columns {
		if strings.EqualFold(d.Columns[i].Name, name) {
			return &d.Columns[i], true
		}
	}
	return nil, false
}

// ColumnNames returns all column names in table order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		names[i] = col.Name
	}
	return names
}

// NumericColumns returns finite-valued views over every numeric column.
func (d *Dataset) NumericColumns() []NumericColumn {
	var cols []NumericColumn
	for i := range d.Columns {
		if d.Columns[i].Kind == KindNumeric {
			cols = append(cols, d.Columns[i].NumericView())
		}
	}
	return cols
}

// NumericColumnNames returns the names of numeric columns in table order.
func (d *Dataset) NumericColumnNames() []string {
	var names []string
	for i := range d.Columns {
		if d.Columns[i].Kind == KindNumeric {
			names = append(names, d.Columns[i].Name)
		}
	}
	return names
}

// Numeric resolves a numeric column by name.
func (d *Dataset) Numeric(name string) (NumericColumn, error) {
	col, ok := d.Column(name)
	if !ok {
		return NumericColumn{}, core.ErrColumnNotFound
	}
	if col.Kind != KindNumeric {
		return NumericColumn{}, core.NewSelectionError("column " + col.Name + " is not numeric")
	}
	return col.NumericView(), nil
}

// PreviewRows returns the first n rows as strings, for the data preview table.
func (d *Dataset) PreviewRows(n int) [][]string {
	if n > d.RowCount {
		n = d.RowCount
	}
	rows := make([][]string, 0, n)
	for r := 0; r < n; r++ {
		row := make([]string, len(d.Columns))
		for c := range d.Columns {
			row[c] = d.Columns[c].Cells[r]
		}
		rows = append(rows, row)
	}
	return rows
}

// NumericColumn is a read-only finite-valued view over a numeric column.
// Missing cells are dropped, so len(Values) may be less than the dataset
// row count.
type NumericColumn struct {
	Name   string
	Values []float64
}

// NumericView drops missing cells and returns the finite values.
func (c *Column) NumericView() NumericColumn {
	values := make([]float64, 0, len(c.Values))
	for i, v := range c.Values {
		if i < len(c.Missing) && c.Missing[i] {
			continue
		}
		values = append(values, v)
	}
	return NumericColumn{Name: c.Name, Values: values}
}

// PairedNumeric builds equal-length views over two numeric columns using
// pairwise deletion: a row survives only when both cells parsed. The inputs
// must come from the same dataset so the rows line up.
func PairedNumeric(x, y *Column) (NumericColumn, NumericColumn) {
	n := len(x.Values)
	if len(y.Values) < n {
		n = len(y.Values)
	}
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if x.Missing[i] || y.Missing[i] {
			continue
		}
		xs = append(xs, x.Values[i])
		ys = append(ys, y.Values[i])
	}
	return NumericColumn{Name: x.Name, Values: xs}, NumericColumn{Name: y.Name, Values: ys}
}
