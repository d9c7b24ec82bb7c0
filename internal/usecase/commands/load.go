package commands

import (
	"context"

	dombatch "trolley-inventory/internal/domain/batch"
	domload "trolley-inventory/internal/domain/load"
	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/pkg/clock"
	"trolley-inventory/internal/pkg/errs"
	"trolley-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBatchDepleted = errs.New("batch is depleted and cannot be loaded")

const (
	actionRestock = "restock"
	actionRemoval = "removal"
)

type RegisterLoadCommand struct {
	DrawerID    uuid.UUID
	BatchID     uuid.UUID
	Quantity    int32
	DrawerState domload.DrawerState
	EmployeeID  *uuid.UUID
}

type RegisterLoadResult struct {
	LoadID     uuid.UUID
	SnapshotID uuid.UUID
	Warning    *domload.StackingWarning
}

type LoadCommands interface {
	RegisterLoad(ctx context.Context, cmd RegisterLoadCommand) (*RegisterLoadResult, error)
	DepleteLoad(ctx context.Context, loadID uuid.UUID) error
}

type loadCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLoadCommands(uow shared.UnitOfWork, clk clock.Clock) LoadCommands {
	return &loadCommandsImpl{uow: uow, clock: clk}
}

// RegisterLoad runs the stacking check and the load insert as one atomic unit
// per drawer: the row lock on the drawer keeps two concurrent loads into the
// same drawer from both reading an empty active set.
func (uc *loadCommandsImpl) RegisterLoad(ctx context.Context, cmd RegisterLoadCommand) (*RegisterLoadResult, error) {
	now := uc.clock.Now()

	var result RegisterLoadResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Drawers().LockForLoad(ctx, tx.DB(), cmd.DrawerID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrDrawerNotFound)
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		if cmd.EmployeeID != nil {
			if _, derr := tx.Reads().EmployeeByID(ctx, *cmd.EmployeeID); derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return errs.Mark(derr, errs.ErrEmployeeNotFound)
				}
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
		}

		b, derr := tx.Batches().FindByIDForUpdate(ctx, tx.DB(), cmd.BatchID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrBatchNotFound)
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		if b.IsDepleted() {
			return ErrBatchDepleted
		}

		snap, created, derr := uc.resolveSnapshot(ctx, tx, cmd.DrawerID, cmd.DrawerState)
		if derr != nil {
			return derr
		}

		active, derr := tx.Loads().ActiveBySnapshot(ctx, tx.DB(), snap.ID)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		for _, a := range active {
			if a.BatchID == cmd.BatchID {
				return errs.Mark(errs.New("batch has an active load in this drawer"), errs.ErrBatchAlreadyLoaded)
			}
		}

		warning := domload.DetectStacking(toExistingBatches(active))

		order, derr := tx.Loads().NextStackingOrder(ctx, tx.DB(), snap.ID)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		l, derr := domload.NewLoad(snap.ID, cmd.BatchID, cmd.Quantity, order, now)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		loadID, derr := tx.Loads().Create(ctx, tx.DB(), l)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		// First placement moves the batch out of the warehouse pool.
		if b.Status() == dombatch.StatusAvailable {
			if derr = b.TransitionTo(dombatch.StatusInUse, now); derr != nil {
				return errs.Mark(derr, errs.ErrInvalidStatusTransition)
			}
			if derr = tx.Batches().UpdateStatus(ctx, tx.DB(), cmd.BatchID, b.Status(), now); derr != nil {
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
		}

		if !created {
			if derr = tx.Snapshots().Refresh(ctx, tx.DB(), snap.ID, cmd.DrawerState, now); derr != nil {
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
		}

		_, derr = tx.History().Append(ctx, tx.DB(), shared.AppendHistoryParams{
			EmployeeID:               cmd.EmployeeID,
			DrawerID:                 &cmd.DrawerID,
			BatchID:                  &cmd.BatchID,
			ActionType:               actionRestock,
			QuantityChanged:          cmd.Quantity,
			Timestamp:                now,
			StackingWarningTriggered: warning != nil,
		})
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		result.LoadID = loadID
		result.SnapshotID = snap.ID
		result.Warning = warning
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DepleteLoad retires a load from stacking detection. Re-depleting is an
// error, not a no-op: a second call usually means a double submission.
func (uc *loadCommandsImpl) DepleteLoad(ctx context.Context, loadID uuid.UUID) error {
	now := uc.clock.Now()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, derr := tx.Loads().FindByIDForUpdate(ctx, tx.DB(), loadID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrLoadNotFound)
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		if derr = l.Deplete(now); derr != nil {
			return errs.Mark(derr, errs.ErrLoadAlreadyDepleted)
		}

		if derr = tx.Loads().MarkDepleted(ctx, tx.DB(), l); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		// The whole batch is spent when this drawer held all of it.
		b, derr := tx.Batches().FindByIDForUpdate(ctx, tx.DB(), l.BatchID())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrBatchNotFound)
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		if !b.IsDepleted() && b.Quantity() == l.QuantityLoaded() {
			if derr = b.TransitionTo(dombatch.StatusDepleted, now); derr != nil {
				return errs.Mark(derr, errs.ErrInvalidStatusTransition)
			}
			if derr = tx.Batches().UpdateStatus(ctx, tx.DB(), b.ID(), b.Status(), now); derr != nil {
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
		}

		// The ledger mirrors the load's restock entry with a removal one.
		snap, derr := tx.Snapshots().FindByID(ctx, tx.DB(), l.SnapshotID())
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		drawerID := snap.DrawerID
		batchID := l.BatchID()
		_, derr = tx.History().Append(ctx, tx.DB(), shared.AppendHistoryParams{
			DrawerID:        &drawerID,
			BatchID:         &batchID,
			ActionType:      actionRemoval,
			QuantityChanged: -l.QuantityLoaded(),
			Timestamp:       now,
		})
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *loadCommandsImpl) resolveSnapshot(ctx context.Context, tx shared.Tx, drawerID uuid.UUID, state domload.DrawerState) (*shared.StatusSnapshot, bool, error) {
	snap, err := tx.Snapshots().FindByDrawer(ctx, tx.DB(), drawerID)
	if err == nil {
		return snap, false, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	snap, err = tx.Snapshots().Create(ctx, tx.DB(), drawerID, state, uc.clock.Now())
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, true, nil
}

func toExistingBatches(active []shared.ActiveLoad) []domload.ExistingBatch {
	existing := make([]domload.ExistingBatch, len(active))
	for i, a := range active {
		existing[i] = domload.ExistingBatch{
			BatchNumber:    a.BatchNumber,
			ItemType:       a.ItemType,
			QuantityLoaded: a.QuantityLoaded,
			LoadDate:       a.LoadDate,
		}
	}
	return existing
}
