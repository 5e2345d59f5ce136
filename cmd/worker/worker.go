// Package worker runs the Redis Streams consumer
package worker

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rkatz/portfolio-parser/cmd/root"
	"rkatz/portfolio-parser/internal/logging"
	"rkatz/portfolio-parser/internal/queue"
)

// Cmd represents the worker command
var Cmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the queue worker consuming parse jobs from Redis",
	Long: `Worker joins the configured Redis Streams consumer group, consumes parse
job messages, processes each job, and publishes the result back on the
stream. It runs until interrupted.`,
	Run: workerFunc,
}

func workerFunc(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := queue.NewWorker(root.AppConfig, root.NewAssembler(), logging.GetLogger())
	if err != nil {
		root.Log.Fatalf("Failed to create worker: %v", err)
	}
	defer func() {
		if err := w.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close Redis connection")
		}
	}()

	if err := w.Connect(ctx); err != nil {
		root.Log.Fatalf("Failed to connect: %v", err)
	}

	if err := w.Run(ctx); err != nil {
		root.Log.Fatalf("Worker stopped with error: %v", err)
	}
}
