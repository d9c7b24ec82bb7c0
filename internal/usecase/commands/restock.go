package commands

import (
	"context"

	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/pkg/clock"
	"trolley-inventory/internal/pkg/errs"
	"trolley-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidActionType = errs.New("action type must be restock, removal or adjustment")
	ErrScoreOutOfRange   = errs.New("score must be between 0 and 100")
)

const maxScore = 100

var validActionTypes = map[string]struct{}{
	"restock":    {},
	"removal":    {},
	"adjustment": {},
}

type RecordActionCommand struct {
	EmployeeID               *uuid.UUID
	DrawerID                 *uuid.UUID
	BatchID                  *uuid.UUID
	ActionType               string
	QuantityChanged          int32
	CompletionTimeSeconds    *int32
	AccuracyScore            *float64
	EfficiencyScore          *float64
	Notes                    *string
	StackingWarningTriggered bool
}

type RestockCommands interface {
	RecordAction(ctx context.Context, cmd RecordActionCommand) (uuid.UUID, error)
}

// The ledger is a pure data sink: scores are trusted as supplied, never
// recomputed. Only range and referential existence are checked.
type restockCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRestockCommands(uow shared.UnitOfWork, clk clock.Clock) RestockCommands {
	return &restockCommandsImpl{uow: uow, clock: clk}
}

func (uc *restockCommandsImpl) RecordAction(ctx context.Context, cmd RecordActionCommand) (uuid.UUID, error) {
	if _, ok := validActionTypes[cmd.ActionType]; !ok {
		return uuid.Nil, ErrInvalidActionType
	}
	if err := validateScore(cmd.AccuracyScore); err != nil {
		return uuid.Nil, err
	}
	if err := validateScore(cmd.EfficiencyScore); err != nil {
		return uuid.Nil, err
	}

	var entryID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if cmd.EmployeeID != nil {
			if _, derr := tx.Reads().EmployeeByID(ctx, *cmd.EmployeeID); derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return errs.Mark(derr, errs.ErrEmployeeNotFound)
				}
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
		}
		if cmd.DrawerID != nil {
			if _, derr := tx.Reads().DrawerByID(ctx, *cmd.DrawerID); derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return errs.Mark(derr, errs.ErrDrawerNotFound)
				}
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
		}
		if cmd.BatchID != nil {
			if _, derr := tx.Reads().BatchByID(ctx, *cmd.BatchID); derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return errs.Mark(derr, errs.ErrBatchNotFound)
				}
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
		}

		id, derr := tx.History().Append(ctx, tx.DB(), shared.AppendHistoryParams{
			EmployeeID:               cmd.EmployeeID,
			DrawerID:                 cmd.DrawerID,
			BatchID:                  cmd.BatchID,
			ActionType:               cmd.ActionType,
			QuantityChanged:          cmd.QuantityChanged,
			Timestamp:                uc.clock.Now(),
			CompletionTimeSeconds:    cmd.CompletionTimeSeconds,
			AccuracyScore:            cmd.AccuracyScore,
			EfficiencyScore:          cmd.EfficiencyScore,
			Notes:                    cmd.Notes,
			StackingWarningTriggered: cmd.StackingWarningTriggered,
		})
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		entryID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entryID, nil
}

func validateScore(score *float64) error {
	if score == nil {
		return nil
	}
	if *score < 0 || *score > maxScore {
		return ErrScoreOutOfRange
	}
	return nil
}
