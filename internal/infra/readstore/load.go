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

const loadColumns = `id, drawer_status_id, batch_id, quantity_loaded, load_date, is_depleted, depletion_date, batch_order, created_at`

type LoadReadStore struct {
	db db.DBTX
}

func NewLoadReadStore(db db.DBTX) *LoadReadStore {
	return &LoadReadStore{db: db}
}

func (r *LoadReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*queries.SnapshotView, error) {
	const query = `
		SELECT id, drawer_id, status, last_updated, created_at
		FROM drawer_status
		WHERE id = $1
	`

	var v queries.SnapshotView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.DrawerID, &v.Status, &v.LastUpdated, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("drawer status not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find drawer status by ID", err)
	}
	return &v, nil
}

func (r *LoadReadStore) SnapshotByDrawer(ctx context.Context, drawerID uuid.UUID) (*queries.SnapshotView, error) {
	const query = `
		SELECT id, drawer_id, status, last_updated, created_at
		FROM drawer_status
		WHERE drawer_id = $1
	`

	var v queries.SnapshotView
	err := r.db.QueryRow(ctx, query, drawerID).Scan(&v.ID, &v.DrawerID, &v.Status, &v.LastUpdated, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no status for drawer", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find drawer status by drawer", err)
	}
	return &v, nil
}

func (r *LoadReadStore) LoadByID(ctx context.Context, id uuid.UUID) (*queries.LoadView, error) {
	query := `SELECT ` + loadColumns + ` FROM drawer_batch_tracking WHERE id = $1`

	view, err := scanLoadView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("load not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find load by ID", err)
	}
	return view, nil
}

func (r *LoadReadStore) LoadsBySnapshot(ctx context.Context, snapshotID uuid.UUID, onlyActive bool) ([]*queries.LoadView, error) {
	query := `SELECT ` + loadColumns + ` FROM drawer_batch_tracking WHERE drawer_status_id = $1`
	if onlyActive {
		query += ` AND is_depleted = FALSE`
	}
	query += ` ORDER BY batch_order ASC`

	rows, err := r.db.Query(ctx, query, snapshotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list loads", err)
	}
	defer rows.Close()

	var views []*queries.LoadView
	for rows.Next() {
		view, err := scanLoadView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan load row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate load rows", err)
	}

	return views, nil
}

func scanLoadView(row rowScanner) (*queries.LoadView, error) {
	var (
		v             queries.LoadView
		depletionDate pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.SnapshotID, &v.BatchID, &v.QuantityLoaded, &v.LoadDate,
		&v.IsDepleted, &depletionDate, &v.StackingOrder, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.DepletionDate = pgconv.TimePtrFromPgtype(depletionDate)
	return &v, nil
}
