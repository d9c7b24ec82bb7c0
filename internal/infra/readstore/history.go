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

const historyColumns = `
	id, employee_id, drawer_id, batch_id, action_type, quantity_changed,
	restock_timestamp, completion_time_seconds, accuracy_score, efficiency_score,
	notes, stacking_warning_triggered, created_at`

type HistoryReadStore struct {
	db db.DBTX
}

func NewHistoryReadStore(db db.DBTX) *HistoryReadStore {
	return &HistoryReadStore{db: db}
}

func (r *HistoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HistoryEntryView, error) {
	query := `SELECT ` + historyColumns + ` FROM restock_history WHERE id = $1`

	view, err := scanHistoryView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("history entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find history entry by ID", err)
	}
	return view, nil
}

func (r *HistoryReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.HistoryEntryView, error) {
	query := `SELECT ` + historyColumns + `
		FROM restock_history
		ORDER BY restock_timestamp DESC
		LIMIT $1 OFFSET $2`

	return r.queryHistory(ctx, query, limit, offset)
}

func (r *HistoryReadStore) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM restock_history`).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count history entries", err)
	}
	return total, nil
}

func (r *HistoryReadStore) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*queries.HistoryEntryView, error) {
	query := `SELECT ` + historyColumns + `
		FROM restock_history
		WHERE employee_id = $1
		ORDER BY restock_timestamp DESC`

	return r.queryHistory(ctx, query, employeeID)
}

func (r *HistoryReadStore) FindWarnings(ctx context.Context) ([]*queries.HistoryEntryView, error) {
	query := `SELECT ` + historyColumns + `
		FROM restock_history
		WHERE stacking_warning_triggered = TRUE
		ORDER BY restock_timestamp DESC`

	return r.queryHistory(ctx, query)
}

func (r *HistoryReadStore) queryHistory(ctx context.Context, query string, args ...any) ([]*queries.HistoryEntryView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query history entries", err)
	}
	defer rows.Close()

	var views []*queries.HistoryEntryView
	for rows.Next() {
		view, err := scanHistoryView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan history row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate history rows", err)
	}

	return views, nil
}

func scanHistoryView(row rowScanner) (*queries.HistoryEntryView, error) {
	var (
		v          queries.HistoryEntryView
		employeeID pgtype.UUID
		drawerID   pgtype.UUID
		batchID    pgtype.UUID
		completion pgtype.Int4
		accuracy   pgtype.Numeric
		efficiency pgtype.Numeric
		notes      pgtype.Text
	)
	err := row.Scan(
		&v.ID, &employeeID, &drawerID, &batchID, &v.ActionType, &v.QuantityChanged,
		&v.Timestamp, &completion, &accuracy, &efficiency,
		&notes, &v.StackingWarningTriggered, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.EmployeeID = pgconv.UUIDPtrFromPgtype(employeeID)
	v.DrawerID = pgconv.UUIDPtrFromPgtype(drawerID)
	v.BatchID = pgconv.UUIDPtrFromPgtype(batchID)
	v.CompletionTimeSeconds = pgconv.Int32PtrFromPgtype(completion)
	v.Notes = pgconv.StringPtrFromPgtype(notes)

	if v.AccuracyScore, err = pgconv.Float64PtrFromNumeric(accuracy); err != nil {
		return nil, err
	}
	if v.EfficiencyScore, err = pgconv.Float64PtrFromNumeric(efficiency); err != nil {
		return nil, err
	}

	return &v, nil
}
