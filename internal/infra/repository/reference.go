package repository

import (
	"context"

	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/infra/db"
	"trolley-inventory/internal/pkg/pgconv"
	"trolley-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

type DrawerRepository struct{}

func NewDrawerRepository() *DrawerRepository {
	return &DrawerRepository{}
}

func (r *DrawerRepository) Create(ctx context.Context, tx db.DBTX, params shared.CreateDrawerParams) (uuid.UUID, error) {
	const query = `
		INSERT INTO drawers (drawer_code, trolley_id, position, capacity, drawer_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		params.DrawerCode,
		params.TrolleyID,
		params.Position,
		params.Capacity,
		params.DrawerType,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create drawer", err, kindOf(err))
	}

	return id, nil
}

// LockForLoad takes a row lock on the drawer so the stacking check and the
// load insert are atomic with respect to other loads into the same drawer.
// Loads into other drawers do not contend.
func (r *DrawerRepository) LockForLoad(ctx context.Context, tx db.DBTX, drawerID uuid.UUID) error {
	const query = `SELECT id FROM drawers WHERE id = $1 FOR UPDATE`

	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, drawerID).Scan(&id); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("drawer not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock drawer", err)
	}
	return nil
}

type EmployeeRepository struct{}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

func (r *EmployeeRepository) Create(ctx context.Context, tx db.DBTX, params shared.CreateEmployeeParams) (uuid.UUID, error) {
	const query = `
		INSERT INTO employees (employee_code, first_name, last_name, role, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		params.EmployeeCode,
		params.FirstName,
		params.LastName,
		params.Role,
		params.Status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create employee", err, kindOf(err))
	}

	return id, nil
}
