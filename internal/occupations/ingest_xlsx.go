package occupations

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX ingests the classification table from a workbook. The first
// sheet is read with the same positional column mapping as the CSV form.
func ParseXLSX(r io.Reader) (Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Dataset{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return Dataset{}, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Dataset{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	builder := newDatasetBuilder()
	for i, row := range rows {
		if i == 0 {
			continue
		}
		builder.addRow(row)
	}
	return builder.build()
}
