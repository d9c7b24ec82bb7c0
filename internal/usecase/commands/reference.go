package commands

import (
	"context"

	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/pkg/errs"
	"trolley-inventory/internal/usecase/shared"

	"github.com/google/uuid"
)

// Reference-data writes for the entities the core validates against. Plain
// inserts; the interesting lifecycle lives in the batch and load commands.

type ReferenceCommands interface {
	CreateDrawer(ctx context.Context, params shared.CreateDrawerParams) (uuid.UUID, error)
	CreateEmployee(ctx context.Context, params shared.CreateEmployeeParams) (uuid.UUID, error)
}

type referenceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewReferenceCommands(uow shared.UnitOfWork) ReferenceCommands {
	return &referenceCommandsImpl{uow: uow}
}

func (uc *referenceCommandsImpl) CreateDrawer(ctx context.Context, params shared.CreateDrawerParams) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Drawers().Create(ctx, tx.DB(), params)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrDuplicateDrawerCode)
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

func (uc *referenceCommandsImpl) CreateEmployee(ctx context.Context, params shared.CreateEmployeeParams) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Employees().Create(ctx, tx.DB(), params)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrDuplicateEmployeeCode)
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
