package request

import (
	domload "trolley-inventory/internal/domain/load"
	"trolley-inventory/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterLoadRequest struct {
	DrawerID       uuid.UUID  `json:"drawer_id" binding:"required"`
	BatchID        uuid.UUID  `json:"batch_id" binding:"required"`
	QuantityLoaded int32      `json:"quantity_loaded" binding:"required,min=1"`
	Status         string     `json:"status" binding:"required,oneof=empty partial full needs_restock"`
	EmployeeID     *uuid.UUID `json:"employee_id" binding:"omitempty"`
}

func (r *RegisterLoadRequest) ToCommand() (commands.RegisterLoadCommand, error) {
	state, err := domload.ParseDrawerState(r.Status)
	if err != nil {
		return commands.RegisterLoadCommand{}, err
	}
	return commands.RegisterLoadCommand{
		DrawerID:    r.DrawerID,
		BatchID:     r.BatchID,
		Quantity:    r.QuantityLoaded,
		DrawerState: state,
		EmployeeID:  r.EmployeeID,
	}, nil
}
