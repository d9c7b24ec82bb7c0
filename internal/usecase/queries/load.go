package queries

import (
	"context"

	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

type LoadReadStore interface {
	SnapshotByID(ctx context.Context, id uuid.UUID) (*SnapshotView, error)
	SnapshotByDrawer(ctx context.Context, drawerID uuid.UUID) (*SnapshotView, error)
	LoadByID(ctx context.Context, id uuid.UUID) (*LoadView, error)
	// LoadsBySnapshot orders by stacking order ascending (oldest first).
	LoadsBySnapshot(ctx context.Context, snapshotID uuid.UUID, onlyActive bool) ([]*LoadView, error)
}

type LoadQueries interface {
	GetSnapshot(ctx context.Context, snapshotID uuid.UUID) (*SnapshotView, error)
	GetSnapshotByDrawer(ctx context.Context, drawerID uuid.UUID) (*SnapshotView, error)
	GetLoad(ctx context.Context, loadID uuid.UUID) (*LoadView, error)
	ListLoads(ctx context.Context, snapshotID uuid.UUID, onlyActive bool) ([]*LoadView, error)
}

type loadQueriesImpl struct {
	store LoadReadStore
}

func NewLoadQueries(store LoadReadStore) LoadQueries {
	return &loadQueriesImpl{store: store}
}

func (q *loadQueriesImpl) GetSnapshot(ctx context.Context, snapshotID uuid.UUID) (*SnapshotView, error) {
	view, err := q.store.SnapshotByID(ctx, snapshotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSnapshotNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *loadQueriesImpl) GetSnapshotByDrawer(ctx context.Context, drawerID uuid.UUID) (*SnapshotView, error) {
	view, err := q.store.SnapshotByDrawer(ctx, drawerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSnapshotNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *loadQueriesImpl) GetLoad(ctx context.Context, loadID uuid.UUID) (*LoadView, error) {
	view, err := q.store.LoadByID(ctx, loadID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLoadNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *loadQueriesImpl) ListLoads(ctx context.Context, snapshotID uuid.UUID, onlyActive bool) ([]*LoadView, error) {
	// Listing against a missing snapshot is NotFound, not an empty list.
	if _, err := q.store.SnapshotByID(ctx, snapshotID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSnapshotNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views, err := q.store.LoadsBySnapshot(ctx, snapshotID, onlyActive)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
