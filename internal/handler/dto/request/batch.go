package request

import (
	"time"

	dombatch "trolley-inventory/internal/domain/batch"
	"trolley-inventory/internal/usecase/commands"
)

type RegisterBatchRequest struct {
	ItemType    string    `json:"item_type" binding:"required,max=100"`
	BatchNumber string    `json:"batch_number" binding:"required,max=50"`
	Quantity    int32     `json:"quantity" binding:"required,min=1"`
	ExpiryDate  time.Time `json:"expiry_date" binding:"required"`
}

func (r *RegisterBatchRequest) ToCommand() commands.RegisterBatchCommand {
	return commands.RegisterBatchCommand{
		ItemType:    r.ItemType,
		BatchNumber: r.BatchNumber,
		Quantity:    r.Quantity,
		ExpiryDate:  r.ExpiryDate,
	}
}

type UpdateBatchStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available in_use depleted"`
}

func (r *UpdateBatchStatusRequest) ToDomain() (dombatch.Status, error) {
	return dombatch.ParseStatus(r.Status)
}
