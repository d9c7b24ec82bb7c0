package repository

import (
	"context"
	"time"

	dombatch "trolley-inventory/internal/domain/batch"
	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/infra/db"
	"trolley-inventory/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BatchRepository struct{}

func NewBatchRepository() *BatchRepository {
	return &BatchRepository{}
}

func (r *BatchRepository) Create(ctx context.Context, tx db.DBTX, b *dombatch.Batch) (uuid.UUID, error) {
	const query = `
		INSERT INTO item_batches (id, item_type, batch_number, quantity, expiry_date, received_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(),
		b.ItemType(),
		b.BatchNumber(),
		b.Quantity(),
		pgconv.DateToPgtype(b.ExpiryDate()),
		b.ReceivedDate(),
		b.Status().String(),
		b.CreatedAt(),
		b.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create batch", err, kindOf(err))
	}

	return id, nil
}

// Row lock so a concurrent load or transition cannot race the status check.
func (r *BatchRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*dombatch.Batch, error) {
	const query = `
		SELECT id, item_type, batch_number, quantity, expiry_date, received_date, status, created_at, updated_at
		FROM item_batches
		WHERE id = $1
		FOR UPDATE
	`

	var (
		rowID        uuid.UUID
		itemType     string
		batchNumber  string
		quantity     int32
		expiryDate   time.Time
		receivedDate time.Time
		status       string
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := tx.QueryRow(ctx, query, id).Scan(
		&rowID, &itemType, &batchNumber, &quantity, &expiryDate, &receivedDate, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("batch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find batch for update", err)
	}

	st, err := dombatch.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid batch status in storage", err)
	}

	return dombatch.Reconstruct(rowID, itemType, batchNumber, quantity, expiryDate, receivedDate, st, createdAt, updatedAt), nil
}

func (r *BatchRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status dombatch.Status, now time.Time) error {
	const query = `
		UPDATE item_batches
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, id, status.String(), now)
	if err != nil {
		return infra.WrapRepoErr("failed to update batch status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("batch not found", nil, infra.KindNotFound)
	}
	return nil
}
