package occupations_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/nextstep-ai/guide-server/internal/occupations"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestParseXLSX(t *testing.T) {
	header := []interface{}{
		"ISCO08_1D_CODE", "ISCO08_1D_TITLE_EN", "FR", "ES",
		"ISCO08_2D_CODE", "ISCO08_2D_TITLE_EN", "FR", "ES",
		"ISCO08_3D_CODE", "ISCO08_3D_TITLE_EN", "FR", "ES",
		"ISCO08_4D_CODE", "ISCO08_4D_TITLE_EN",
	}
	rows := [][]interface{}{
		header,
		{"2", "Professionals", "fr", "es", "21", "Science and Engineering Professionals", "fr", "es", "214", "Engineering Professionals", "fr", "es", "2143", "Electronics Engineers"},
		{"2", "Professionals", "fr", "es", "21", "Science and Engineering Professionals", "fr", "es", "214", "Engineering Professionals", "fr", "es", "2144", "Mechanical Engineers"},
		{"3", "Technicians"}, // malformed, skipped
	}

	d, err := occupations.ParseXLSX(buildWorkbook(t, rows))
	if err != nil {
		t.Fatalf("ParseXLSX() error = %v", err)
	}

	if len(d.MajorGroups) != 1 || d.MajorGroups[0].Code != "2" {
		t.Errorf("MajorGroups = %+v", d.MajorGroups)
	}
	if len(d.UnitGroups) != 2 {
		t.Fatalf("len(UnitGroups) = %d, want 2", len(d.UnitGroups))
	}
	if d.UnitGroups[0].Code != "2143" || d.UnitGroups[0].MinorGroupCode != "214" {
		t.Errorf("UnitGroups[0] = %+v", d.UnitGroups[0])
	}
}

func TestParseXLSX_NotAWorkbook(t *testing.T) {
	if _, err := occupations.ParseXLSX(bytes.NewReader([]byte("plain text"))); err == nil {
		t.Error("ParseXLSX() error = nil, want error for non-xlsx input")
	}
}
