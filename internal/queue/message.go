// Package queue adapts the normalization core to the Redis Streams message
// transport the wider pipeline uses. It consumes job descriptors, runs the
// orchestrator, and publishes results; it defines no protocol of its own.
package queue

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Message step and status values on the job stream.
const (
	StepParse           = "parse"
	StepParsing         = "parsing"
	StepParsingComplete = "parsing_complete"

	StatusDone  = "done"
	StatusError = "error"
)

// JobMessage is a decoded job descriptor from the stream.
type JobMessage struct {
	JobID     string   `json:"jobId"`
	Step      string   `json:"step"`
	Directory string   `json:"directory"`
	Files     []string `json:"files"`
}

// parseJobMessage decodes the flat key-value fields of a stream entry into a
// JobMessage. The files field arrives as a JSON array string.
func parseJobMessage(values map[string]interface{}) (*JobMessage, error) {
	msg := &JobMessage{
		JobID:     stringValue(values, "jobId"),
		Step:      stringValue(values, "step"),
		Directory: stringValue(values, "directory"),
	}

	filesRaw := stringValue(values, "files")
	if filesRaw != "" {
		if err := json.Unmarshal([]byte(filesRaw), &msg.Files); err != nil {
			return nil, fmt.Errorf("invalid files field %q: %w", filesRaw, err)
		}
	}

	return msg, nil
}

// shouldProcess reports whether a message is a parse job for this worker.
// Everything else on the stream (results, other stages) is skipped.
func shouldProcess(msg *JobMessage) bool {
	step := strings.ToLower(msg.Step)
	return step == StepParse || step == StepParsing
}

func stringValue(values map[string]interface{}, key string) string {
	if v, ok := values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
