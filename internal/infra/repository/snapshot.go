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

type SnapshotRepository struct{}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

func (r *SnapshotRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.StatusSnapshot, error) {
	const query = `
		SELECT id, drawer_id, status, last_updated, created_at
		FROM drawer_status
		WHERE id = $1
	`

	snap, err := scanSnapshot(tx.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("drawer status not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find drawer status", err)
	}
	return snap, nil
}

func (r *SnapshotRepository) FindByDrawer(ctx context.Context, tx db.DBTX, drawerID uuid.UUID) (*shared.StatusSnapshot, error) {
	const query = `
		SELECT id, drawer_id, status, last_updated, created_at
		FROM drawer_status
		WHERE drawer_id = $1
	`

	snap, err := scanSnapshot(tx.QueryRow(ctx, query, drawerID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("drawer status not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find drawer status", err)
	}
	return snap, nil
}

func (r *SnapshotRepository) Create(ctx context.Context, tx db.DBTX, drawerID uuid.UUID, state domload.DrawerState, now time.Time) (*shared.StatusSnapshot, error) {
	const query = `
		INSERT INTO drawer_status (drawer_id, status, last_updated, created_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id, drawer_id, status, last_updated, created_at
	`

	snap, err := scanSnapshot(tx.QueryRow(ctx, query, drawerID, state.String(), now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create drawer status", err, kindOf(err))
	}
	return snap, nil
}

func (r *SnapshotRepository) Refresh(ctx context.Context, tx db.DBTX, snapshotID uuid.UUID, state domload.DrawerState, now time.Time) error {
	const query = `
		UPDATE drawer_status
		SET status = $2, last_updated = $3
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, snapshotID, state.String(), now)
	if err != nil {
		return infra.WrapRepoErr("failed to refresh drawer status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("drawer status not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*shared.StatusSnapshot, error) {
	var (
		id          uuid.UUID
		drawerID    uuid.UUID
		status      string
		lastUpdated time.Time
		createdAt   time.Time
	)
	if err := row.Scan(&id, &drawerID, &status, &lastUpdated, &createdAt); err != nil {
		return nil, err
	}

	state, err := domload.ParseDrawerState(status)
	if err != nil {
		return nil, err
	}

	return &shared.StatusSnapshot{
		ID:          id,
		DrawerID:    drawerID,
		State:       state,
		LastUpdated: lastUpdated,
		CreatedAt:   createdAt,
	}, nil
}
