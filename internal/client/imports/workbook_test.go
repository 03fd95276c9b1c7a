package imports

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook produces an in-memory .xlsx with the given sheets;
// each sheet is a header row followed by data rows.
func buildWorkbook(t *testing.T, sheets map[string][][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func deviceHeader() []string {
	return []string{"Device Type*", "Brand", "Model", "Serial Number*", "Assigned User"}
}

func TestParseWorkbook_IgnoresInstructionsSheet(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"Instructions": {
			deviceHeader(),
			{"Laptop", "Dell", "Latitude", "REALLOOKING01", "Sam"},
		},
		"Devices": {
			deviceHeader(),
			{"Laptop", "Dell", "Latitude 5420", "SN-1001", "Priya"},
		},
	})

	rows, err := ParseWorkbook(wb)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "SN-1001", rows[0].Serial())
	require.Equal(t, "Dell", rows[0]["Brand"])
}

func TestParseWorkbook_InstructionsCaseInsensitive(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"INSTRUCTIONS": {
			deviceHeader(),
			{"Laptop", "Dell", "Latitude", "SN-9999", "Sam"},
		},
		"Sheet2": {
			deviceHeader(),
			{"Desktop", "HP", "EliteDesk", "SN-1002", ""},
		},
	})

	rows, err := ParseWorkbook(wb)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "SN-1002", rows[0].Serial())
}

func TestParseWorkbook_DropsSampleAndEmptySerials(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"Devices": {
			deviceHeader(),
			{"Laptop", "Dell", "Latitude", "ABC123XYZ", "sample"},
			{"Desktop", "HP", "EliteDesk", "", "no serial"},
			{"Printer", "Canon", "LBP", "SN-2001", "keep me"},
			{"Switch", "Cisco", "C2960", "24:5A:4C:AB:12:34", "sample mac"},
		},
	})

	rows, err := ParseWorkbook(wb)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "SN-2001", rows[0].Serial())
}

func TestParseWorkbook_OnlySamplesFailsWithNoRows(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"Devices": {
			deviceHeader(),
			{"Laptop", "Apple", "MacBook", "C02XL12345", ""},
			{"Laptop", "Apple", "MacBook", "FCZ2312A1BC", ""},
			{"CCTV", "Hikvision", "DS", "HIK20241234", ""},
			{"Server", "Asus", "RS", "AS1234567890", ""},
			{"Laptop", "Dell", "L", "DEF456UVW", ""},
			{"Laptop", "Dell", "L", "GHI789RST", ""},
			{"Laptop", "Dell", "L", "JKL012MNO", ""},
		},
	})

	rows, err := ParseWorkbook(wb)
	require.ErrorIs(t, err, ErrNoImportableRows)
	require.Nil(t, rows)
}

func TestParseWorkbook_EmptyWorkbookFailsWithNoRows(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"Devices": {deviceHeader()},
	})

	_, err := ParseWorkbook(wb)
	require.ErrorIs(t, err, ErrNoImportableRows)
}

func TestParseWorkbook_CanonicalSerialHeader(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"export": {
			{"device_type", "brand", "serial_number"},
			{"laptop", "Lenovo", "SN-3001"},
		},
	})

	rows, err := ParseWorkbook(wb)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "SN-3001", rows[0].Serial())
}

func TestParseWorkbook_GarbageInputFails(t *testing.T) {
	_, err := ParseWorkbook(strings.NewReader("this is not a workbook"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoImportableRows)
}

func TestIsSampleSerial_ExactCaseSensitiveMatch(t *testing.T) {
	require.True(t, IsSampleSerial("ABC123XYZ"))
	require.False(t, IsSampleSerial("abc123xyz"))
	require.False(t, IsSampleSerial("ABC123XYZ "))
	require.False(t, IsSampleSerial("SN-1001"))
}

func TestRawRow_SerialPrefersTemplateHeader(t *testing.T) {
	row := RawRow{"Serial Number*": " SN-A ", "serial_number": "SN-B"}
	require.Equal(t, "SN-A", row.Serial())

	row = RawRow{"Serial Number*": "  ", "serial_number": "SN-B"}
	require.Equal(t, "SN-B", row.Serial())

	require.Equal(t, "", RawRow{}.Serial())
}
