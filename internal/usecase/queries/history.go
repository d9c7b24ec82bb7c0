package queries

import (
	"context"

	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	defaultHistoryPerPage = 20
	maxHistoryPerPage     = 100
)

type HistoryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HistoryEntryView, error)
	// List and the filtered variants order by restock timestamp descending.
	List(ctx context.Context, limit, offset int32) ([]*HistoryEntryView, error)
	Count(ctx context.Context) (int64, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*HistoryEntryView, error)
	FindWarnings(ctx context.Context) ([]*HistoryEntryView, error)
}

type EmployeeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EmployeeView, error)
	List(ctx context.Context) ([]*EmployeeView, error)
}

type HistoryQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HistoryEntryView, error)
	List(ctx context.Context, page, perPage int) ([]*HistoryEntryView, *Pagination, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*HistoryEntryView, error)
	ListWarnings(ctx context.Context) ([]*HistoryEntryView, error)
}

type historyQueriesImpl struct {
	store     HistoryReadStore
	employees EmployeeReadStore
}

func NewHistoryQueries(store HistoryReadStore, employees EmployeeReadStore) HistoryQueries {
	return &historyQueriesImpl{store: store, employees: employees}
}

func (q *historyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HistoryEntryView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrHistoryEntryNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *historyQueriesImpl) List(ctx context.Context, page, perPage int) ([]*HistoryEntryView, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultHistoryPerPage
	}
	if perPage > maxHistoryPerPage {
		perPage = maxHistoryPerPage
	}

	total, err := q.store.Count(ctx)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	offset := int32((page - 1) * perPage)
	views, err := q.store.List(ctx, int32(perPage), offset)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	totalPages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		totalPages++
	}

	return views, &Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

func (q *historyQueriesImpl) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*HistoryEntryView, error) {
	if _, err := q.employees.FindByID(ctx, employeeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEmployeeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views, err := q.store.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *historyQueriesImpl) ListWarnings(ctx context.Context) ([]*HistoryEntryView, error) {
	views, err := q.store.FindWarnings(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
