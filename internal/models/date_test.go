package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateCompare(t *testing.T) {
	jan := NewDate(2023, time.January, 1)
	feb := NewDate(2023, time.February, 1)

	assert.Equal(t, -1, jan.Compare(feb))
	assert.Equal(t, 1, feb.Compare(jan))
	assert.Equal(t, 0, jan.Compare(NewDate(2023, time.January, 1)))
}

func TestDateOfDropsTimeComponent(t *testing.T) {
	late := time.Date(2023, time.June, 5, 23, 59, 59, 0, time.UTC)
	early := time.Date(2023, time.June, 5, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, 0, DateOf(late).Compare(DateOf(early)))
	assert.Equal(t, "2023-06-05", DateOf(late).String())
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2023, time.March, 7)

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2023-03-07"`, string(data))

	var decoded Date
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 0, d.Compare(decoded))

	assert.Error(t, json.Unmarshal([]byte(`"07.03.2023"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`42`), &decoded))
}

func TestCanonicalRecordJSONNullFields(t *testing.T) {
	record := CanonicalRecord{
		Date:     NewDate(2023, time.January, 15),
		Currency: "USD",
	}

	data, err := json.Marshal(record)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "2023-01-15", decoded["date"])
	assert.Nil(t, decoded["quantity"])
	assert.Nil(t, decoded["unit_price"])
	assert.Nil(t, decoded["proceeds_foreign"])
	assert.Nil(t, decoded["proceeds_local"])
	assert.Equal(t, "0", decoded["transaction_fee"])
}

func TestNewFileOutcomeInitializesAllCategories(t *testing.T) {
	outcome := NewFileOutcome("a.csv")

	assert.Len(t, outcome.Records, len(Categories))
	for _, c := range Categories {
		assert.NotNil(t, outcome.Records[c])
		assert.Empty(t, outcome.Records[c])
	}
	assert.Empty(t, outcome.Errors)
}

func TestJobAccumulatorResult(t *testing.T) {
	acc := NewJobAccumulator()
	acc.Records[CategoryPurchase] = append(acc.Records[CategoryPurchase], CanonicalRecord{Date: NewDate(2023, time.January, 1)})
	acc.AddErrors([]ErrorDescriptor{{File: "a.csv", Error: "boom", Type: ErrorTypeLoad}})

	result := acc.Result("job-1")

	assert.Equal(t, "job-1", result.JobID)
	assert.Len(t, result.Purchases, 1)
	assert.Empty(t, result.Sales)
	assert.Empty(t, result.Dividends)
	assert.Empty(t, result.Taxes)
	assert.Empty(t, result.Transfers)
	assert.Len(t, result.Errors, 1)

	// Empty arrays must serialize as [], never null.
	data, err := json.Marshal(result)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"sales":[]`)
	assert.Contains(t, string(data), `"jobId":"job-1"`)
}
