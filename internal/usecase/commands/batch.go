package commands

import (
	"context"
	"time"

	dombatch "trolley-inventory/internal/domain/batch"
	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/pkg/clock"
	"trolley-inventory/internal/pkg/errs"
	"trolley-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterBatchCommand struct {
	ItemType    string
	BatchNumber string
	Quantity    int32
	ExpiryDate  time.Time
}

type BatchCommands interface {
	RegisterBatch(ctx context.Context, cmd RegisterBatchCommand) (uuid.UUID, error)
	TransitionStatus(ctx context.Context, batchID uuid.UUID, next dombatch.Status) error
}

type batchCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBatchCommands(uow shared.UnitOfWork, clk clock.Clock) BatchCommands {
	return &batchCommandsImpl{uow: uow, clock: clk}
}

func (uc *batchCommandsImpl) RegisterBatch(ctx context.Context, cmd RegisterBatchCommand) (uuid.UUID, error) {
	b, err := dombatch.NewBatch(cmd.ItemType, cmd.BatchNumber, cmd.Quantity, cmd.ExpiryDate, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Batches().Create(ctx, tx.DB(), b)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrDuplicateBatchNumber)
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *batchCommandsImpl) TransitionStatus(ctx context.Context, batchID uuid.UUID, next dombatch.Status) error {
	now := uc.clock.Now()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Batches().FindByIDForUpdate(ctx, tx.DB(), batchID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrBatchNotFound)
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		if derr = b.TransitionTo(next, now); derr != nil {
			return errs.Mark(derr, errs.ErrInvalidStatusTransition)
		}

		if derr = tx.Batches().UpdateStatus(ctx, tx.DB(), batchID, b.Status(), now); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
