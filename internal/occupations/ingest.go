package occupations

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Positional columns of the published ISCO-08 table. Each row repeats the
// full ancestry of one unit group; the French and Spanish title columns in
// between are ignored.
const (
	colMajorCode    = 0
	colMajorTitle   = 1
	colSubMajorCode = 4
	colSubMajorT    = 5
	colMinorCode    = 8
	colMinorTitle   = 9
	colUnitCode     = 12
	colUnitTitle    = 13

	minColumns = 14
)

// ErrNoGroups is returned when ingest consumed rows but produced nothing,
// which almost always means the source layout changed.
var ErrNoGroups = errors.New("no occupation groups parsed")

// datasetBuilder accumulates rows into a deduplicated Dataset. The first
// occurrence of a code wins; children missing their parent code in the same
// row are dropped.
type datasetBuilder struct {
	dataset   Dataset
	seenMajor map[string]bool
	seenSub   map[string]bool
	seenMinor map[string]bool
	seenUnit  map[string]bool
	rows      int
}

func newDatasetBuilder() *datasetBuilder {
	return &datasetBuilder{
		seenMajor: make(map[string]bool),
		seenSub:   make(map[string]bool),
		seenMinor: make(map[string]bool),
		seenUnit:  make(map[string]bool),
	}
}

func (b *datasetBuilder) addRow(values []string) {
	b.rows++
	if len(values) < minColumns {
		return
	}

	majorCode := strings.TrimSpace(values[colMajorCode])
	majorTitle := strings.TrimSpace(values[colMajorTitle])
	subCode := strings.TrimSpace(values[colSubMajorCode])
	subTitle := strings.TrimSpace(values[colSubMajorT])
	minorCode := strings.TrimSpace(values[colMinorCode])
	minorTitle := strings.TrimSpace(values[colMinorTitle])
	unitCode := strings.TrimSpace(values[colUnitCode])
	unitTitle := strings.TrimSpace(values[colUnitTitle])

	if majorCode != "" && majorTitle != "" && !b.seenMajor[majorCode] {
		b.seenMajor[majorCode] = true
		b.dataset.MajorGroups = append(b.dataset.MajorGroups, MajorGroup{Code: majorCode, Title: majorTitle})
	}
	if subCode != "" && subTitle != "" && majorCode != "" && !b.seenSub[subCode] {
		b.seenSub[subCode] = true
		b.dataset.SubMajorGroups = append(b.dataset.SubMajorGroups, SubMajorGroup{Code: subCode, Title: subTitle, MajorGroupCode: majorCode})
	}
	if minorCode != "" && minorTitle != "" && subCode != "" && !b.seenMinor[minorCode] {
		b.seenMinor[minorCode] = true
		b.dataset.MinorGroups = append(b.dataset.MinorGroups, MinorGroup{Code: minorCode, Title: minorTitle, SubMajorGroupCode: subCode})
	}
	if unitCode != "" && unitTitle != "" && minorCode != "" && !b.seenUnit[unitCode] {
		b.seenUnit[unitCode] = true
		b.dataset.UnitGroups = append(b.dataset.UnitGroups, UnitGroup{Code: unitCode, Title: unitTitle, MinorGroupCode: minorCode})
	}
}

func (b *datasetBuilder) build() (Dataset, error) {
	if b.dataset.Empty() && b.rows > 0 {
		return Dataset{}, ErrNoGroups
	}
	return b.dataset, nil
}

// ParseCSV ingests the classification table in its published CSV form. The
// header row is skipped and rows with too few columns are dropped.
func ParseCSV(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	builder := newDatasetBuilder()
	header := true
	for {
		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// One bad line does not spoil the table.
				continue
			}
			return Dataset{}, fmt.Errorf("read csv: %w", err)
		}
		if header {
			header = false
			continue
		}
		builder.addRow(values)
	}
	return builder.build()
}
