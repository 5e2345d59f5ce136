package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rkatz/portfolio-parser/internal/models"
)

func writeTempFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0o600))
}

func writeTempXLSX(t *testing.T, dir, name string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(filepath.Join(dir, name)))
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		fileName string
		format   Format
		ok       bool
	}{
		{"trades.csv", FormatCSV, true},
		{"TRADES.CSV", FormatCSV, true},
		{"trades.xlsx", FormatExcel, true},
		{"trades.xls", FormatExcel, true},
		{"trades.txt", "", false},
		{"trades", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.fileName, func(t *testing.T) {
			format, ok := DetectFormat(tc.fileName)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.format, format)
		})
	}
}

func TestLoadCSV_UTF8(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "trades.csv", []byte("Date,Account,Type\n2023-01-15,Main,Buy\n2023-01-16,Main,Sell\n"))

	table, desc := Load(dir, "trades.csv")

	assert.Nil(t, desc)
	require.NotNil(t, table)
	assert.Equal(t, []string{"Date", "Account", "Type"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, 1, table.Rows[0].Index)
	assert.Equal(t, "2023-01-15", table.Rows[0].Cell(0))
	assert.Equal(t, "Sell", table.Rows[1].Cell(2))
}

func TestLoadCSV_Latin1Fallback(t *testing.T) {
	dir := t.TempDir()
	// "Crédit" in Latin-1; 0xE9 is not valid UTF-8 on its own.
	content := append([]byte("Date,Type\n2023-01-15,Cr"), 0xE9)
	content = append(content, []byte("dit\n")...)
	writeTempFile(t, dir, "legacy.csv", content)

	table, desc := Load(dir, "legacy.csv")

	assert.Nil(t, desc)
	require.NotNil(t, table)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Crédit", table.Rows[0].Cell(1))
}

func TestLoadCSV_BinaryContent(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "garbage.csv", []byte{0x00, 0x01, 0x02, 0xFF, 0x00})

	table, desc := Load(dir, "garbage.csv")

	assert.Nil(t, table)
	require.NotNil(t, desc)
	assert.Equal(t, models.ErrorTypeEncoding, desc.Type)
	assert.Equal(t, "garbage.csv", desc.File)
}

func TestLoadCSV_RaggedRows(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "ragged.csv", []byte("Date,Type,Symbol\n2023-01-15,Buy\n2023-01-16,Sell,AAPL,extra\n"))

	table, desc := Load(dir, "ragged.csv")

	assert.Nil(t, desc)
	require.NotNil(t, table)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "", table.Rows[0].Cell(2))
	assert.Equal(t, "extra", table.Rows[1].Cell(3))
}

func TestLoadXLSX(t *testing.T) {
	dir := t.TempDir()
	writeTempXLSX(t, dir, "trades.xlsx", [][]interface{}{
		{"Date", "Account", "Type"},
		{"2023-01-15", "Main", "Buy"},
		{"2023-01-16", "Main", "Sell"},
	})

	table, desc := Load(dir, "trades.xlsx")

	assert.Nil(t, desc)
	require.NotNil(t, table)
	assert.Equal(t, []string{"Date", "Account", "Type"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Buy", table.Rows[0].Cell(2))
}

func TestLoadXLSX_Corrupt(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "corrupt.xlsx", []byte("this is not a spreadsheet"))

	table, desc := Load(dir, "corrupt.xlsx")

	assert.Nil(t, table)
	require.NotNil(t, desc)
	assert.Equal(t, models.ErrorTypeLoad, desc.Type)
	assert.Equal(t, "corrupt.xlsx", desc.File)
}

func TestLoad_MissingFile(t *testing.T) {
	table, desc := Load(t.TempDir(), "nope.csv")

	assert.Nil(t, table)
	require.NotNil(t, desc)
	assert.Equal(t, models.ErrorTypeLoad, desc.Type)
	assert.Contains(t, desc.Error, "file not found")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "notes.txt", []byte("hello"))

	table, desc := Load(dir, "notes.txt")

	assert.Nil(t, table)
	require.NotNil(t, desc)
	assert.Equal(t, models.ErrorTypeLoad, desc.Type)
}

func TestLoad_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "empty.csv", []byte("Date,Type\n"))

	table, desc := Load(dir, "empty.csv")

	assert.Nil(t, table)
	require.NotNil(t, desc)
	assert.Equal(t, models.ErrorTypeLoad, desc.Type)
	assert.Contains(t, desc.Error, "no data rows")
}

func TestRawRowCell_OutOfRange(t *testing.T) {
	row := RawRow{Cells: []string{"a", "b"}}

	assert.Equal(t, "a", row.Cell(0))
	assert.Equal(t, "", row.Cell(5))
	assert.Equal(t, "", row.Cell(-1))
}
