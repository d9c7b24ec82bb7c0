package queries

import (
	"context"

	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

type DrawerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DrawerView, error)
	List(ctx context.Context) ([]*DrawerView, error)
}

type DrawerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DrawerView, error)
	List(ctx context.Context) ([]*DrawerView, error)
}

type EmployeeQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EmployeeView, error)
	List(ctx context.Context) ([]*EmployeeView, error)
}

type drawerQueriesImpl struct {
	store DrawerReadStore
}

func NewDrawerQueries(store DrawerReadStore) DrawerQueries {
	return &drawerQueriesImpl{store: store}
}

func (q *drawerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DrawerView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDrawerNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *drawerQueriesImpl) List(ctx context.Context) ([]*DrawerView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

type employeeQueriesImpl struct {
	store EmployeeReadStore
}

func NewEmployeeQueries(store EmployeeReadStore) EmployeeQueries {
	return &employeeQueriesImpl{store: store}
}

func (q *employeeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEmployeeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *employeeQueriesImpl) List(ctx context.Context) ([]*EmployeeView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
