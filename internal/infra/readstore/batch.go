package readstore

import (
	"context"

	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/infra/db"
	"trolley-inventory/internal/pkg/pgconv"
	"trolley-inventory/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const batchColumns = `id, item_type, batch_number, quantity, expiry_date, received_date, status, created_at, updated_at`

type BatchReadStore struct {
	db db.DBTX
}

func NewBatchReadStore(db db.DBTX) *BatchReadStore {
	return &BatchReadStore{db: db}
}

func (r *BatchReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BatchView, error) {
	query := `SELECT ` + batchColumns + ` FROM item_batches WHERE id = $1`

	view, err := scanBatchView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("batch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find batch by ID", err)
	}
	return view, nil
}

func (r *BatchReadStore) List(ctx context.Context) ([]*queries.BatchView, error) {
	query := `SELECT ` + batchColumns + ` FROM item_batches ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list batches", err)
	}
	defer rows.Close()

	var views []*queries.BatchView
	for rows.Next() {
		view, err := scanBatchView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan batch row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate batch rows", err)
	}

	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBatchView(row rowScanner) (*queries.BatchView, error) {
	var (
		v          queries.BatchView
		expiryDate pgtype.Date
	)
	err := row.Scan(
		&v.ID, &v.ItemType, &v.BatchNumber, &v.Quantity, &expiryDate,
		&v.ReceivedDate, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.ExpiryDate = pgconv.DateFromPgtype(expiryDate)
	return &v, nil
}
