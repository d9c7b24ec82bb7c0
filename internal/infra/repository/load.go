package repository

import (
	"context"
	"time"

	domload "trolley-inventory/internal/domain/load"
	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/infra/db"
	"trolley-inventory/internal/pkg/pgconv"

	"trolley-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoadRepository struct{}

func NewLoadRepository() *LoadRepository {
	return &LoadRepository{}
}

func (r *LoadRepository) Create(ctx context.Context, tx db.DBTX, l *domload.Load) (uuid.UUID, error) {
	const query = `
		INSERT INTO drawer_batch_tracking (id, drawer_status_id, batch_id, quantity_loaded, load_date, is_depleted, depletion_date, batch_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		l.ID(),
		l.SnapshotID(),
		l.BatchID(),
		l.QuantityLoaded(),
		l.LoadDate(),
		l.IsDepleted(),
		pgconv.TimePtrToPgtype(l.DepletionDate()),
		l.StackingOrder(),
		l.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create load", err, kindOf(err))
	}

	return id, nil
}

// ActiveBySnapshot lists non-depleted loads oldest-first. The ascending
// stacking order is what presents the warning list oldest load first.
func (r *LoadRepository) ActiveBySnapshot(ctx context.Context, tx db.DBTX, snapshotID uuid.UUID) ([]shared.ActiveLoad, error) {
	const query = `
		SELECT t.id, t.batch_id, b.batch_number, b.item_type, t.quantity_loaded, t.load_date, t.batch_order
		FROM drawer_batch_tracking t
		JOIN item_batches b ON b.id = t.batch_id
		WHERE t.drawer_status_id = $1 AND t.is_depleted = FALSE
		ORDER BY t.batch_order ASC
	`

	rows, err := tx.Query(ctx, query, snapshotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active loads", err)
	}
	defer rows.Close()

	var active []shared.ActiveLoad
	for rows.Next() {
		var a shared.ActiveLoad
		if err := rows.Scan(&a.LoadID, &a.BatchID, &a.BatchNumber, &a.ItemType, &a.QuantityLoaded, &a.LoadDate, &a.StackingOrder); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active load", err)
		}
		active = append(active, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active loads", err)
	}

	return active, nil
}

// NextStackingOrder includes depleted loads in the max: order indexes are
// never reused, so "older vs newer" survives clock skew and depletion.
func (r *LoadRepository) NextStackingOrder(ctx context.Context, tx db.DBTX, snapshotID uuid.UUID) (int32, error) {
	const query = `
		SELECT COALESCE(MAX(batch_order), 0) + 1
		FROM drawer_batch_tracking
		WHERE drawer_status_id = $1
	`

	var next int32
	if err := tx.QueryRow(ctx, query, snapshotID).Scan(&next); err != nil {
		return 0, infra.WrapRepoErr("failed to compute next stacking order", err)
	}
	return next, nil
}

func (r *LoadRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*domload.Load, error) {
	const query = `
		SELECT id, drawer_status_id, batch_id, quantity_loaded, load_date, is_depleted, depletion_date, batch_order, created_at
		FROM drawer_batch_tracking
		WHERE id = $1
		FOR UPDATE
	`

	var (
		rowID         uuid.UUID
		snapshotID    uuid.UUID
		batchID       uuid.UUID
		quantity      int32
		loadDate      time.Time
		isDepleted    bool
		depletionDate *time.Time
		stackingOrder int32
		createdAt     time.Time
	)
	err := tx.QueryRow(ctx, query, id).Scan(
		&rowID, &snapshotID, &batchID, &quantity, &loadDate, &isDepleted, &depletionDate, &stackingOrder, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("load not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find load for update", err)
	}

	return domload.Reconstruct(rowID, snapshotID, batchID, quantity, loadDate, isDepleted, depletionDate, stackingOrder, createdAt), nil
}

func (r *LoadRepository) MarkDepleted(ctx context.Context, tx db.DBTX, l *domload.Load) error {
	const query = `
		UPDATE drawer_batch_tracking
		SET is_depleted = $2, depletion_date = $3
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, l.ID(), l.IsDepleted(), pgconv.TimePtrToPgtype(l.DepletionDate()))
	if err != nil {
		return infra.WrapRepoErr("failed to mark load depleted", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("load not found", nil, infra.KindNotFound)
	}
	return nil
}
