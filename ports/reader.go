package ports

import (
	"io"

	"surveylens/domain/dataset"
)

// TableReader loads an uploaded CSV or spreadsheet into a Dataset.
// Implementations fail with core.ErrUnsupportedFormat for unrecognized
// extensions and core.ErrParse for malformed content.
type TableReader interface {
	LoadTable(r io.Reader, filenameHint string) (*dataset.Dataset, error)
}
