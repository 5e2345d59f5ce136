package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobMessage(t *testing.T) {
	values := map[string]interface{}{
		"jobId":     "job-42",
		"step":      "parse",
		"directory": "/data/uploads",
		"files":     `["a.csv","b.xlsx"]`,
	}

	msg, err := parseJobMessage(values)

	require.NoError(t, err)
	assert.Equal(t, "job-42", msg.JobID)
	assert.Equal(t, "parse", msg.Step)
	assert.Equal(t, "/data/uploads", msg.Directory)
	assert.Equal(t, []string{"a.csv", "b.xlsx"}, msg.Files)
}

func TestParseJobMessage_MissingFields(t *testing.T) {
	msg, err := parseJobMessage(map[string]interface{}{"step": "parse"})

	require.NoError(t, err)
	assert.Empty(t, msg.JobID)
	assert.Empty(t, msg.Files)
}

func TestParseJobMessage_InvalidFiles(t *testing.T) {
	values := map[string]interface{}{
		"jobId": "job-42",
		"step":  "parse",
		"files": "not json",
	}

	_, err := parseJobMessage(values)
	assert.Error(t, err)
}

func TestParseJobMessage_NonStringValues(t *testing.T) {
	values := map[string]interface{}{
		"jobId": 42,
		"step":  "parse",
	}

	msg, err := parseJobMessage(values)

	require.NoError(t, err)
	assert.Empty(t, msg.JobID)
	assert.Equal(t, "parse", msg.Step)
}

func TestShouldProcess(t *testing.T) {
	tests := []struct {
		step     string
		expected bool
	}{
		{"parse", true},
		{"parsing", true},
		{"PARSE", true},
		{"parsing_complete", false},
		{"enrich", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run("step "+tc.step, func(t *testing.T) {
			assert.Equal(t, tc.expected, shouldProcess(&JobMessage{Step: tc.step}))
		})
	}
}
