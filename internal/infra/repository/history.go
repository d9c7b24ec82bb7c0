package repository

import (
	"context"

	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/infra/db"
	"trolley-inventory/internal/pkg/pgconv"
	"trolley-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

// HistoryRepository only appends. Entries are never updated or deleted; the
// ledger is the single source of truth the performance aggregator reads.
type HistoryRepository struct{}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

func (r *HistoryRepository) Append(ctx context.Context, tx db.DBTX, params shared.AppendHistoryParams) (uuid.UUID, error) {
	const query = `
		INSERT INTO restock_history (
			employee_id, drawer_id, batch_id, action_type, quantity_changed,
			restock_timestamp, completion_time_seconds, accuracy_score,
			efficiency_score, notes, stacking_warning_triggered
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		pgconv.UUIDPtrToPgtype(params.EmployeeID),
		pgconv.UUIDPtrToPgtype(params.DrawerID),
		pgconv.UUIDPtrToPgtype(params.BatchID),
		params.ActionType,
		params.QuantityChanged,
		params.Timestamp,
		pgconv.Int32PtrToPgtype(params.CompletionTimeSeconds),
		pgconv.Float64PtrToNumeric(params.AccuracyScore),
		pgconv.Float64PtrToNumeric(params.EfficiencyScore),
		pgconv.StringPtrToPgtype(params.Notes),
		params.StackingWarningTriggered,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to append restock history entry", err, kindOf(err))
	}

	return id, nil
}
