package tabular

import (
	"bytes"
	"strings"
	"testing"

	"surveylens/domain/core"
	"surveylens/domain/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestReader() *Reader {
	return NewReader(DefaultCoercionConfig())
}

func TestLoadTable_CSV(t *testing.T) {
	csvData := "name,x1,y1\nalice,1,2\nbob,2,4\ncara,,6\n"

	ds, err := newTestReader().LoadTable(strings.NewReader(csvData), "survey.csv")
	require.NoError(t, err)

	assert.Equal(t, "survey.csv", ds.Name)
	assert.Equal(t, 3, ds.RowCount)
	assert.Equal(t, []string{"name", "x1", "y1"}, ds.ColumnNames())

	name, ok := ds.Column("name")
	require.True(t, ok)
	assert.Equal(t, dataset.KindText, name.Kind)

	x1, ok := ds.Column("x1")
	require.True(t, ok)
	assert.Equal(t, dataset.KindNumeric, x1.Kind)
	assert.Equal(t, []bool{false, false, true}, x1.Missing)

	// Missing cells are dropped from the numeric view.
	view := x1.NumericView()
	assert.Equal(t, []float64{1, 2}, view.Values)

	y1, err := ds.Numeric("y1")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, y1.Values)
}

func TestLoadTable_CSVRaggedRowsPadded(t *testing.T) {
	csvData := "x1,x2\n1,2\n3\n"

	ds, err := newTestReader().LoadTable(strings.NewReader(csvData), "ragged.csv")
	require.NoError(t, err)

	x2, ok := ds.Column("x2")
	require.True(t, ok)
	assert.Equal(t, []string{"2", ""}, x2.Cells)
	assert.True(t, x2.Missing[1], "padded cell should be missing")
}

func TestLoadTable_XLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"x1", "y1", "comment"},
		{1, 2, "ok"},
		{2, 4, "fine"},
		{3, 6, "good"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	ds, err := newTestReader().LoadTable(&buf, "survey.xlsx")
	require.NoError(t, err)

	assert.Equal(t, 3, ds.RowCount)
	x1, err := ds.Numeric("x1")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, x1.Values)

	comment, ok := ds.Column("comment")
	require.True(t, ok)
	assert.Equal(t, dataset.KindText, comment.Kind)
}

func TestLoadTable_UnsupportedExtension(t *testing.T) {
	_, err := newTestReader().LoadTable(strings.NewReader("a,b\n1,2\n"), "survey.txt")
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
}

func TestLoadTable_HeaderOnly(t *testing.T) {
	_, err := newTestReader().LoadTable(strings.NewReader("a,b\n"), "empty.csv")
	assert.ErrorIs(t, err, core.ErrParse)
}

func TestLoadTable_MalformedCSV(t *testing.T) {
	_, err := newTestReader().LoadTable(strings.NewReader("a,b\n\"unclosed,2\n"), "broken.csv")
	assert.ErrorIs(t, err, core.ErrParse)
}

func TestLoadTable_MalformedWorkbook(t *testing.T) {
	_, err := newTestReader().LoadTable(strings.NewReader("this is not a workbook"), "fake.xlsx")
	assert.ErrorIs(t, err, core.ErrParse)
}

func TestCoercer_ParseNumeric(t *testing.T) {
	c := NewCoercer(DefaultCoercionConfig())

	tests := []struct {
		cell     string
		expected float64
		ok       bool
	}{
		{"42", 42, true},
		{" 3.14 ", 3.14, true},
		{"-1.5", -1.5, true},
		{"1,234.5", 1234.5, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"+Inf", 0, false},
	}

	for _, tt := range tests {
		v, ok := c.ParseNumeric(tt.cell)
		if ok != tt.ok {
			t.Errorf("ParseNumeric(%q): expected ok=%v, got %v", tt.cell, tt.ok, ok)
			continue
		}
		if ok && v != tt.expected {
			t.Errorf("ParseNumeric(%q): expected %v, got %v", tt.cell, tt.expected, v)
		}
	}
}

func TestCoercer_InferKind(t *testing.T) {
	c := NewCoercer(DefaultCoercionConfig())

	tests := []struct {
		name     string
		cells    []string
		expected dataset.ColumnKind
	}{
		{"all numeric", []string{"1", "2", "3"}, dataset.KindNumeric},
		{"numeric with gaps", []string{"1", "", "3", "4", "5"}, dataset.KindNumeric},
		{"mostly text", []string{"yes", "no", "3"}, dataset.KindText},
		{"just below threshold", []string{"1", "2", "3", "x", "y"}, dataset.KindText},
		{"all empty", []string{"", ""}, dataset.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.InferKind(tt.cells); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
