// Package orchestrator runs the whole normalization pipeline for one job:
// it iterates the job's files in order, assembles each one, merges the
// outcome into the job accumulator, and produces the final unified result.
// Processing is strictly sequential; the merge fast paths and the tie-break
// rule both depend on deterministic file arrival order.
package orchestrator

import (
	"fmt"

	"rkatz/portfolio-parser/internal/assembler"
	"rkatz/portfolio-parser/internal/logging"
	"rkatz/portfolio-parser/internal/merger"
	"rkatz/portfolio-parser/internal/models"
)

// State tracks where a job is in its lifecycle.
type State string

const (
	StateCreated        State = "created"
	StateProcessingFile State = "processing_file"
	StateMerged         State = "merged"
	StateCompleted      State = "completed"
)

// Orchestrator owns the accumulator for exactly one job. It is not reused
// across jobs: create a new one per job so concurrent jobs never share
// mutable state.
type Orchestrator struct {
	jobID     string
	state     State
	fileIndex int
	acc       *models.JobAccumulator
	assembler *assembler.Assembler
	logger    logging.Logger
}

// New creates an Orchestrator for a job with default components.
func New(jobID string, logger logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return NewWithAssembler(jobID, assembler.New(logger), logger)
}

// NewWithAssembler creates an Orchestrator with an explicit assembler, used
// when configuration overrides rules or column mapping.
func NewWithAssembler(jobID string, a *assembler.Assembler, logger logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Orchestrator{
		jobID:     jobID,
		state:     StateCreated,
		acc:       models.NewJobAccumulator(),
		assembler: a,
		logger:    logger.WithField(logging.FieldJob, jobID),
	}
}

// State returns the current job state.
func (o *Orchestrator) State() State {
	return o.state
}

// ParseJob processes every file of the job in the given order and returns
// the unified result. Only a malformed job descriptor is a job-level
// failure; no individual file's failure aborts the job. Reprocessing the
// same files yields the same output.
func (o *Orchestrator) ParseJob(directory string, files []string) (*models.JobResult, error) {
	if o.jobID == "" {
		return nil, fmt.Errorf("malformed job descriptor: missing job id")
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("malformed job descriptor: job %s has no files", o.jobID)
	}

	o.logger.Info("Starting job",
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	for i, fileName := range files {
		o.fileIndex = i
		o.state = StateProcessingFile
		o.logger.Debug("Processing file",
			logging.Field{Key: logging.FieldFile, Value: fileName},
			logging.Field{Key: logging.FieldState, Value: o.state})

		outcome := o.assembler.AssembleFile(directory, fileName)

		for _, category := range models.Categories {
			o.acc.Records[category] = merger.Merge(o.acc.Records[category], outcome.Records[category])
		}
		o.acc.AddErrors(outcome.Errors)

		o.state = StateMerged
		o.logger.Debug("File merged",
			logging.Field{Key: logging.FieldFile, Value: fileName},
			logging.Field{Key: logging.FieldState, Value: o.state})
	}

	o.state = StateCompleted
	result := o.acc.Result(o.jobID)

	o.logger.Info("Job complete",
		logging.Field{Key: "purchases", Value: len(result.Purchases)},
		logging.Field{Key: "sales", Value: len(result.Sales)},
		logging.Field{Key: "dividends", Value: len(result.Dividends)},
		logging.Field{Key: "taxes", Value: len(result.Taxes)},
		logging.Field{Key: "transfers", Value: len(result.Transfers)},
		logging.Field{Key: logging.FieldErrors, Value: len(result.Errors)})

	return result, nil
}
