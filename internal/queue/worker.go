package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"rkatz/portfolio-parser/internal/assembler"
	"rkatz/portfolio-parser/internal/config"
	"rkatz/portfolio-parser/internal/logging"
	"rkatz/portfolio-parser/internal/orchestrator"
)

// Worker consumes job descriptors from a Redis Stream consumer group, runs
// each job through the orchestrator, and publishes the result back on the
// stream. Failed messages are left pending so the transport redelivers them;
// the core is idempotent, so a redelivered job reprocesses from scratch.
type Worker struct {
	client       *redis.Client
	streamKey    string
	group        string
	consumer     string
	blockTime    time.Duration
	messageCount int64
	assembler    *assembler.Assembler
	logger       logging.Logger
}

// NewWorker creates a Worker from configuration. When no consumer name is
// configured, a unique one is generated so multiple workers can share the
// group.
func NewWorker(cfg *config.Config, a *assembler.Assembler, logger logging.Logger) (*Worker, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if a == nil {
		a = assembler.New(logger)
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	consumer := cfg.Redis.ConsumerName
	if consumer == "" {
		consumer = "portfolio-worker-" + uuid.NewString()[:8]
	}

	return &Worker{
		client:       redis.NewClient(opts),
		streamKey:    cfg.Redis.StreamKey,
		group:        cfg.Redis.ConsumerGroup,
		consumer:     consumer,
		blockTime:    time.Duration(cfg.Redis.BlockTimeMs) * time.Millisecond,
		messageCount: int64(cfg.Redis.MessageCount),
		assembler:    a,
		logger: logger.WithFields(
			logging.Field{Key: logging.FieldStream, Value: cfg.Redis.StreamKey},
			logging.Field{Key: "consumer", Value: consumer},
		),
	}, nil
}

// Connect verifies the Redis connection and creates the consumer group if it
// does not exist yet.
func (w *Worker) Connect(ctx context.Context) error {
	if err := w.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	err := w.client.XGroupCreateMkStream(ctx, w.streamKey, w.group, "0").Err()
	if err != nil && !isBusyGroup(err) {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	w.logger.Info("Connected to Redis",
		logging.Field{Key: "group", Value: w.group})
	return nil
}

// Close releases the Redis connection.
func (w *Worker) Close() error {
	return w.client.Close()
}

// Run consumes messages until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("Starting message consumption loop")

	for {
		streams, err := w.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    w.group,
			Consumer: w.consumer,
			Streams:  []string{w.streamKey, ">"},
			Count:    w.messageCount,
			Block:    w.blockTime,
		}).Result()

		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				w.logger.Info("Shutting down consumption loop")
				return nil
			}
			if errors.Is(err, redis.Nil) {
				continue // block timeout, nothing to read
			}
			w.logger.WithError(err).Error("Failed to read from stream")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}

		for _, stream := range streams {
			for _, message := range stream.Messages {
				w.handleMessage(ctx, message)
			}
		}
	}
}

// handleMessage processes one stream entry. Successful jobs are
// acknowledged; failed jobs are published as errors and left pending for
// redelivery.
func (w *Worker) handleMessage(ctx context.Context, message redis.XMessage) {
	logger := w.logger.WithField(logging.FieldMessageID, message.ID)

	msg, err := parseJobMessage(message.Values)
	if err != nil {
		logger.WithError(err).Warn("Skipping unparseable message")
		// Malformed entries can never succeed; ack so they do not loop.
		w.ack(ctx, message.ID)
		return
	}

	if !shouldProcess(msg) {
		logger.Debug("Skipping message for other step",
			logging.Field{Key: "step", Value: msg.Step})
		return
	}

	logger.Info("Processing job message",
		logging.Field{Key: logging.FieldJob, Value: msg.JobID},
		logging.Field{Key: logging.FieldCount, Value: len(msg.Files)})

	result, err := orchestrator.NewWithAssembler(msg.JobID, w.assembler, w.logger).
		ParseJob(msg.Directory, msg.Files)
	if err != nil {
		logger.WithError(err).Error("Job failed")
		w.publishError(ctx, msg.JobID, err)
		return
	}

	if err := w.publishResult(ctx, msg.JobID, result); err != nil {
		logger.WithError(err).Error("Failed to publish result, leaving message pending")
		return
	}

	w.ack(ctx, message.ID)
}

// publishResult adds the parsed job result to the stream.
func (w *Worker) publishResult(ctx context.Context, jobID string, result interface{}) error {
	metadata, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	return w.client.XAdd(ctx, &redis.XAddArgs{
		Stream: w.streamKey,
		Values: map[string]interface{}{
			"jobId":     jobID,
			"step":      StepParsingComplete,
			"status":    StatusDone,
			"timestamp": time.Now().UnixMilli(),
			"metadata":  string(metadata),
		},
	}).Err()
}

// publishError reports a job-level failure on the stream.
func (w *Worker) publishError(ctx context.Context, jobID string, jobErr error) {
	err := w.client.XAdd(ctx, &redis.XAddArgs{
		Stream: w.streamKey,
		Values: map[string]interface{}{
			"jobId":     jobID,
			"step":      StepParsing,
			"status":    StatusError,
			"timestamp": time.Now().UnixMilli(),
			"error":     jobErr.Error(),
		},
	}).Err()
	if err != nil {
		w.logger.WithError(err).Error("Failed to publish error",
			logging.Field{Key: logging.FieldJob, Value: jobID})
	}
}

func (w *Worker) ack(ctx context.Context, messageID string) {
	if err := w.client.XAck(ctx, w.streamKey, w.group, messageID).Err(); err != nil {
		w.logger.WithError(err).Warn("Failed to acknowledge message",
			logging.Field{Key: logging.FieldMessageID, Value: messageID})
	}
}

// isBusyGroup reports whether the error is Redis' BUSYGROUP response, which
// means the consumer group already exists.
func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}
