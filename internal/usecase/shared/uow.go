package shared

import (
	"context"
	"time"

	dombatch "trolley-inventory/internal/domain/batch"
	domload "trolley-inventory/internal/domain/load"
	"trolley-inventory/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Batches() BatchRepository
	Drawers() DrawerRepository
	Employees() EmployeeRepository
	Snapshots() SnapshotRepository
	Loads() LoadRepository
	History() HistoryRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	BatchByID(ctx context.Context, id uuid.UUID) (*BatchSnapshot, error)
	DrawerByID(ctx context.Context, id uuid.UUID) (*DrawerSnapshot, error)
	EmployeeByID(ctx context.Context, id uuid.UUID) (*EmployeeSnapshot, error)
}

type BatchRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *dombatch.Batch) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*dombatch.Batch, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status dombatch.Status, now time.Time) error
}

type DrawerRepository interface {
	Create(ctx context.Context, tx db.DBTX, params CreateDrawerParams) (uuid.UUID, error)
	// LockForLoad serializes concurrent loads into the same drawer.
	LockForLoad(ctx context.Context, tx db.DBTX, drawerID uuid.UUID) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, tx db.DBTX, params CreateEmployeeParams) (uuid.UUID, error)
}

type SnapshotRepository interface {
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*StatusSnapshot, error)
	FindByDrawer(ctx context.Context, tx db.DBTX, drawerID uuid.UUID) (*StatusSnapshot, error)
	Create(ctx context.Context, tx db.DBTX, drawerID uuid.UUID, state domload.DrawerState, now time.Time) (*StatusSnapshot, error)
	Refresh(ctx context.Context, tx db.DBTX, snapshotID uuid.UUID, state domload.DrawerState, now time.Time) error
}

type LoadRepository interface {
	Create(ctx context.Context, tx db.DBTX, l *domload.Load) (uuid.UUID, error)
	// ActiveBySnapshot returns non-depleted loads oldest-first by stacking order.
	ActiveBySnapshot(ctx context.Context, tx db.DBTX, snapshotID uuid.UUID) ([]ActiveLoad, error)
	NextStackingOrder(ctx context.Context, tx db.DBTX, snapshotID uuid.UUID) (int32, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*domload.Load, error)
	MarkDepleted(ctx context.Context, tx db.DBTX, l *domload.Load) error
}

type HistoryRepository interface {
	Append(ctx context.Context, tx db.DBTX, params AppendHistoryParams) (uuid.UUID, error)
}

// Minimal snapshots for command read operations

type BatchSnapshot struct {
	ID          uuid.UUID
	ItemType    string
	BatchNumber string
	Quantity    int32
	Status      dombatch.Status
}

type DrawerSnapshot struct {
	ID         uuid.UUID
	DrawerCode string
}

type EmployeeSnapshot struct {
	ID           uuid.UUID
	EmployeeCode string
	Status       string
}

// StatusSnapshot mirrors a drawer_status row: the drawer's state as of the
// most recent load action.
type StatusSnapshot struct {
	ID          uuid.UUID
	DrawerID    uuid.UUID
	State       domload.DrawerState
	LastUpdated time.Time
	CreatedAt   time.Time
}

// ActiveLoad is one non-depleted load joined with its batch identity, as
// needed for the stacking warning payload.
type ActiveLoad struct {
	LoadID         uuid.UUID
	BatchID        uuid.UUID
	BatchNumber    string
	ItemType       string
	QuantityLoaded int32
	LoadDate       time.Time
	StackingOrder  int32
}

type CreateDrawerParams struct {
	DrawerCode string
	TrolleyID  string
	Position   int32
	Capacity   int32
	DrawerType string
}

type CreateEmployeeParams struct {
	EmployeeCode string
	FirstName    string
	LastName     string
	Role         string
	Status       string
}

type AppendHistoryParams struct {
	EmployeeID               *uuid.UUID
	DrawerID                 *uuid.UUID
	BatchID                  *uuid.UUID
	ActionType               string
	QuantityChanged          int32
	Timestamp                time.Time
	CompletionTimeSeconds    *int32
	AccuracyScore            *float64
	EfficiencyScore          *float64
	Notes                    *string
	StackingWarningTriggered bool
}
