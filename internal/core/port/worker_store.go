package port

import (
	"context"

	"github.com/bornholm/workers/internal/core/model"
)

type WorkerStore interface {
	// Initialize creates the store tables if they do not exist yet
	Initialize(ctx context.Context) error

	// AddWorker saves a worker, linking it to the birth date matching its year.
	// The birth date is created if no worker born the same year was saved before.
	// It returns ErrInvalidWorker if the worker does not pass validation
	AddWorker(ctx context.Context, worker model.Worker) error

	// ListWorkers returns all the workers, in insertion order
	ListWorkers(ctx context.Context) ([]model.Worker, error)

	// SelectWorkersByNumber returns the workers whose phone number is exactly the given one
	SelectWorkersByNumber(ctx context.Context, number string) ([]model.Worker, error)
}
