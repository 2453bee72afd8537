package tabular

import (
	"encoding/csv"
	"io"
	"log"
	"path/filepath"
	"strings"

	"surveylens/domain/core"
	"surveylens/domain/dataset"

	"github.com/xuri/excelize/v2"
)

// Reader loads uploaded CSV and Excel files into datasets. It satisfies
// ports.TableReader.
type Reader struct {
	coercer *Coercer
}

// NewReader creates a reader with the given coercion config.
func NewReader(config CoercionConfig) *Reader {
	return &Reader{coercer: NewCoercer(config)}
}

// LoadTable reads tabular bytes into a Dataset, dispatching on the file
// extension of the upload.
func (r *Reader) LoadTable(src io.Reader, filenameHint string) (*dataset.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(filenameHint))

	var rows [][]string
	var err error
	switch ext {
	case ".csv":
		rows, err = readCSVRows(src)
	case ".xlsx", ".xls":
		rows, err = readExcelRows(src)
	default:
		return nil, core.NewFormatError(ext)
	}
	if err != nil {
		return nil, err
	}

	ds, err := r.buildDataset(filenameHint, rows)
	if err != nil {
		return nil, err
	}

	log.Printf("[TableReader] %s processed (%d columns, %d rows)",
		filenameHint, len(ds.Columns), ds.RowCount)
	return ds, nil
}

func readCSVRows(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	// Survey exports are often ragged at the tail; pad instead of rejecting.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewParseError("reading CSV", err)
	}
	return rows, nil
}

func readExcelRows(src io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, core.NewParseError("opening workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.NewParseError("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, core.NewParseError("reading sheet "+sheets[0], err)
	}
	return rows, nil
}

// buildDataset converts raw string rows into a typed Dataset. The first row
// is the header; every data row is padded to the header width so all columns
// end up equal length.
func (r *Reader) buildDataset(name string, rows [][]string) (*dataset.Dataset, error) {
	if len(rows) < 2 {
		return nil, core.NewParseError("file must have a header row and at least one data row", nil)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rowCount := len(rows) - 1
	columns := make([]dataset.Column, len(headers))
	for c, header := range headers {
		cells := make([]string, rowCount)
		for i := 1; i < len(rows); i++ {
			if c < len(rows[i]) {
				cells[i-1] = strings.TrimSpace(rows[i][c])
			}
		}

		col := dataset.Column{
			Name:  header,
			Kind:  r.coercer.InferKind(cells),
			Cells: cells,
		}
		if col.Kind == dataset.KindNumeric {
			col.Values = make([]float64, rowCount)
			col.Missing = make([]bool, rowCount)
			for i, cell := range cells {
				v, ok := r.coercer.ParseNumeric(cell)
				if !ok {
					col.Missing[i] = true
					continue
				}
				col.Values[i] = v
			}
		}
		columns[c] = col
	}

	return &dataset.Dataset{
		ID:       core.NewDatasetID(),
		Name:     name,
		Columns:  columns,
		RowCount: rowCount,
	}, nil
}
