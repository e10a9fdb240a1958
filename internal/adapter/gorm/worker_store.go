package gorm

import (
	"context"
	"fmt"

	"github.com/bornholm/workers/internal/core/model"
	"github.com/bornholm/workers/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AddWorker implements port.WorkerStore.
func (s *Store) AddWorker(ctx context.Context, worker model.Worker) error {
	if err := worker.Validate(); err != nil {
		return errors.WithStack(fmt.Errorf("%w: %w", port.ErrInvalidWorker, err))
	}

	err := s.withDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.Transaction(func(tx *gorm.DB) error {
			var birth Birth

			err := tx.Where("birth_date = ?", worker.Year).
				Attrs(&Birth{Year: worker.Year}).
				FirstOrCreate(&birth).Error
			if err != nil {
				return errors.WithStack(err)
			}

			w := &Worker{
				Name:   worker.Name,
				Number: worker.Number,
				DateID: birth.ID,
			}

			if err := tx.Create(w).Error; err != nil {
				return errors.WithStack(err)
			}

			return nil
		})
		if err != nil {
			return storageError(ctx, "add worker", err)
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// ListWorkers implements port.WorkerStore.
func (s *Store) ListWorkers(ctx context.Context) ([]model.Worker, error) {
	workers, err := s.queryWorkers(ctx, "list workers", func(query *gorm.DB) *gorm.DB {
		return query
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return workers, nil
}

// SelectWorkersByNumber implements port.WorkerStore.
func (s *Store) SelectWorkersByNumber(ctx context.Context, number string) ([]model.Worker, error) {
	workers, err := s.queryWorkers(ctx, "select workers by number", func(query *gorm.DB) *gorm.DB {
		return query.Where("users.user_number = ?", number)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return workers, nil
}

func (s *Store) queryWorkers(ctx context.Context, op string, scope func(query *gorm.DB) *gorm.DB) ([]model.Worker, error) {
	var rows []workerRow

	err := s.withDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&Worker{}).
			Select("users.user_name AS name, users.user_number AS number, birth.birth_date AS year").
			Joins("INNER JOIN birth ON birth.date_id = users.date_id")

		query = scope(query)

		// Insertion order
		query = query.Order("users.user_id ASC")

		if err := query.Scan(&rows).Error; err != nil {
			return storageError(ctx, op, err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	workers := make([]model.Worker, 0, len(rows))
	for _, r := range rows {
		workers = append(workers, toWorker(r))
	}

	return workers, nil
}
