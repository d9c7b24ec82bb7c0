package request

import (
	"trolley-inventory/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecordActionRequest struct {
	EmployeeID               *uuid.UUID `json:"employee_id" binding:"omitempty"`
	DrawerID                 *uuid.UUID `json:"drawer_id" binding:"omitempty"`
	BatchID                  *uuid.UUID `json:"batch_id" binding:"omitempty"`
	ActionType               string     `json:"action_type" binding:"required,oneof=restock removal adjustment"`
	QuantityChanged          int32      `json:"quantity_changed" binding:"required"`
	CompletionTimeSeconds    *int32     `json:"completion_time_seconds" binding:"omitempty,min=0"`
	AccuracyScore            *float64   `json:"accuracy_score" binding:"omitempty"`
	EfficiencyScore          *float64   `json:"efficiency_score" binding:"omitempty"`
	Notes                    *string    `json:"notes" binding:"omitempty,max=1000"`
	StackingWarningTriggered bool       `json:"stacking_warning_triggered"`
}

func (r *RecordActionRequest) ToCommand() commands.RecordActionCommand {
	return commands.RecordActionCommand{
		EmployeeID:               r.EmployeeID,
		DrawerID:                 r.DrawerID,
		BatchID:                  r.BatchID,
		ActionType:               r.ActionType,
		QuantityChanged:          r.QuantityChanged,
		CompletionTimeSeconds:    r.CompletionTimeSeconds,
		AccuracyScore:            r.AccuracyScore,
		EfficiencyScore:          r.EfficiencyScore,
		Notes:                    r.Notes,
		StackingWarningTriggered: r.StackingWarningTriggered,
	}
}
