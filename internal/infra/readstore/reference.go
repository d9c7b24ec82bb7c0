package readstore

import (
	"context"

	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/infra/db"
	"trolley-inventory/internal/pkg/pgconv"
	"trolley-inventory/internal/usecase/queries"

	"github.com/google/uuid"
)

const drawerColumns = `id, drawer_code, trolley_id, position, capacity, drawer_type, created_at, updated_at`

type DrawerReadStore struct {
	db db.DBTX
}

func NewDrawerReadStore(db db.DBTX) *DrawerReadStore {
	return &DrawerReadStore{db: db}
}

func (r *DrawerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DrawerView, error) {
	query := `SELECT ` + drawerColumns + ` FROM drawers WHERE id = $1`

	var v queries.DrawerView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.DrawerCode, &v.TrolleyID, &v.Position, &v.Capacity,
		&v.DrawerType, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("drawer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find drawer by ID", err)
	}
	return &v, nil
}

func (r *DrawerReadStore) List(ctx context.Context) ([]*queries.DrawerView, error) {
	query := `SELECT ` + drawerColumns + ` FROM drawers ORDER BY trolley_id, position`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list drawers", err)
	}
	defer rows.Close()

	var views []*queries.DrawerView
	for rows.Next() {
		var v queries.DrawerView
		err := rows.Scan(
			&v.ID, &v.DrawerCode, &v.TrolleyID, &v.Position, &v.Capacity,
			&v.DrawerType, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan drawer row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate drawer rows", err)
	}

	return views, nil
}

const employeeColumns = `id, employee_code, first_name, last_name, role, status, created_at, updated_at`

type EmployeeReadStore struct {
	db db.DBTX
}

func NewEmployeeReadStore(db db.DBTX) *EmployeeReadStore {
	return &EmployeeReadStore{db: db}
}

func (r *EmployeeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EmployeeView, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	var v queries.EmployeeView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.EmployeeCode, &v.FirstName, &v.LastName, &v.Role,
		&v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find employee by ID", err)
	}
	return &v, nil
}

func (r *EmployeeReadStore) List(ctx context.Context) ([]*queries.EmployeeView, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY employee_code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list employees", err)
	}
	defer rows.Close()

	var views []*queries.EmployeeView
	for rows.Next() {
		var v queries.EmployeeView
		err := rows.Scan(
			&v.ID, &v.EmployeeCode, &v.FirstName, &v.LastName, &v.Role,
			&v.Status, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan employee row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate employee rows", err)
	}

	return views, nil
}
