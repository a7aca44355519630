package core

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// Format identifies an input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath picks the input format from a file extension.
// Anything that is not a workbook is read as CSV text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// ReadRows reads every row of r. CSV input is cleaned with WrapInput and split
// into text rows that the builder tokenizes in order; workbook input uses the
// cells of the first sheet.
// maxSize of 0 disables the size check.
func ReadRows(r io.Reader, format Format, maxSize int64) ([]Row, error) {
	switch format {
	case FormatXLSX:
		return readWorkbookRows(r, maxSize)
	default:
		return readCSVRows(r, maxSize)
	}
}

func readCSVRows(r io.Reader, maxSize int64) ([]Row, error) {
	data, err := io.ReadAll(WrapInput(r, maxSize))
	if err != nil {
		return nil, &Error{Kind: KindInputUnreadable, Err: err}
	}
	return SplitRows(string(data)), nil
}

func readWorkbookRows(r io.Reader, maxSize int64) ([]Row, error) {
	f, err := excelize.OpenReader(NewLimitedReader(r, maxSize))
	if err != nil {
		return nil, &Error{Kind: KindInputUnreadable, Err: fmt.Errorf("open workbook: %w", err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &Error{Kind: KindInputUnreadable, Err: errors.New("workbook has no sheets")}
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &Error{Kind: KindInputUnreadable, Err: fmt.Errorf("read sheet %s: %w", sheets[0], err)}
	}

	rows := make([]Row, len(cells))
	for i, rowCells := range cells {
		fields := make([]string, len(rowCells))
		for j, c := range rowCells {
			fields[j] = norm.NFC.String(c)
		}
		rows[i] = Row{Line: i + 1, Fields: fields}
	}
	return rows, nil
}
