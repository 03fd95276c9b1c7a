// Package imports turns an uploaded inventory workbook into raw device
// rows ready for server-side normalization. It strips the instruction
// sheet and the vendor sample rows shipped inside the downloadable
// template, so placeholders never reach the inventory.
package imports

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoImportableRows means every row of every sheet was either blank
// or a known template sample. The import must abort without touching
// the device collection.
var ErrNoImportableRows = errors.New("workbook contains no importable device rows")

// instructionsSheet is excluded from parsing regardless of case.
const instructionsSheet = "instructions"

// Serial column headers, in lookup order: the human-friendly template
// header first, then the canonical key.
const (
	serialHeaderLabel = "Serial Number*"
	serialHeaderKey   = "serial_number"
)

// sampleSerials are the placeholder serials shipped in the template.
// Matching is exact and case-sensitive.
var sampleSerials = map[string]struct{}{
	"ABC123XYZ":         {},
	"DEF456UVW":         {},
	"GHI789RST":         {},
	"JKL012MNO":         {},
	"C02XL12345":        {},
	"FCZ2312A1BC":       {},
	"HIK20241234":       {},
	"24:5A:4C:AB:12:34": {},
	"AS1234567890":      {},
}

// RawRow is one spreadsheet row keyed by column header, exactly as the
// normalization endpoint expects it.
type RawRow map[string]string

// Serial returns the row's serial number, trying the template header
// before the canonical key. The value is whitespace-trimmed.
func (r RawRow) Serial() string {
	if v, ok := r[serialHeaderLabel]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(r[serialHeaderKey])
}

// IsSampleSerial reports whether serial is one of the known template
// placeholders.
func IsSampleSerial(serial string) bool {
	_, ok := sampleSerials[serial]
	return ok
}

// ParseWorkbook reads an .xlsx workbook and returns the surviving raw
// rows from every sheet except "Instructions". Rows with an empty or
// sample serial are dropped. A workbook with nothing left over fails
// with ErrNoImportableRows; the caller must not merge anything.
func ParseWorkbook(r io.Reader) ([]RawRow, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer wb.Close()

	var out []RawRow
	for _, sheet := range wb.GetSheetList() {
		if strings.EqualFold(sheet, instructionsSheet) {
			continue
		}
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}
		if len(rows) < 2 {
			continue
		}
		header := rows[0]
		for _, cells := range rows[1:] {
			row := make(RawRow, len(header))
			for i, name := range header {
				if name == "" || i >= len(cells) {
					continue
				}
				row[name] = cells[i]
			}
			serial := row.Serial()
			if serial == "" || IsSampleSerial(serial) {
				continue
			}
			out = append(out, row)
		}
	}

	if len(out) == 0 {
		return nil, ErrNoImportableRows
	}
	return out, nil
}
