package queries

import (
	"context"

	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

type BatchReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BatchView, error)
	List(ctx context.Context) ([]*BatchView, error)
}

type BatchQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BatchView, error)
	List(ctx context.Context) ([]*BatchView, error)
}

type batchQueriesImpl struct {
	store BatchReadStore
}

func NewBatchQueries(store BatchReadStore) BatchQueries {
	return &batchQueriesImpl{store: store}
}

func (q *batchQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BatchView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBatchNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *batchQueriesImpl) List(ctx context.Context) ([]*BatchView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
