package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkatz/portfolio-parser/internal/models"
)

func sampleResult() *models.JobResult {
	return &models.JobResult{
		JobID: "job-1",
		Purchases: []models.CanonicalRecord{
			{
				Date:           models.NewDate(2023, time.January, 15),
				CompanySymbol:  "AAPL",
				Quantity:       decimal.NewNullDecimal(decimal.NewFromInt(10)),
				UnitPrice:      decimal.NewNullDecimal(decimal.NewFromFloat(150.25)),
				Currency:       "USD",
				TransactionFee: decimal.NewFromFloat(1.50),
			},
		},
		Sales: []models.CanonicalRecord{},
		Dividends: []models.CanonicalRecord{
			{
				Date:            models.NewDate(2023, time.February, 1),
				CompanySymbol:   "AAPL",
				Currency:        "USD",
				TransactionFee:  decimal.Zero,
				ProceedsForeign: decimal.NewNullDecimal(decimal.NewFromFloat(25.00)),
			},
		},
		Taxes:     []models.CanonicalRecord{},
		Transfers: []models.CanonicalRecord{},
		Errors:    []models.ErrorDescriptor{},
	}
}

func TestFlatten(t *testing.T) {
	rows := Flatten(sampleResult())

	require.Len(t, rows, 2)
	assert.Equal(t, "purchase", rows[0].Category)
	assert.Equal(t, "2023-01-15", rows[0].Date)
	assert.Equal(t, "10", rows[0].Quantity)
	assert.Equal(t, "1.5", rows[0].TransactionFee)

	assert.Equal(t, "dividend", rows[1].Category)
	assert.Equal(t, "", rows[1].Quantity)
	assert.Equal(t, "25", rows[1].ProceedsForeign)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.csv")

	require.NoError(t, WriteCSV(sampleResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Category")
	assert.Contains(t, lines[0], "Company Symbol")
	assert.Contains(t, lines[1], "purchase")
	assert.Contains(t, lines[2], "dividend")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, WriteJSON(sampleResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded models.JobResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "job-1", decoded.JobID)
	require.Len(t, decoded.Purchases, 1)
	assert.Equal(t, "AAPL", decoded.Purchases[0].CompanySymbol)
}

func TestMarshalJSON_EmptyResultKeepsArrays(t *testing.T) {
	acc := models.NewJobAccumulator()
	data, err := MarshalJSON(acc.Result("empty-job"))

	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `"purchases": []`)
	assert.NotContains(t, text, "null")
}
