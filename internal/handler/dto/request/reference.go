package request

import (
	"trolley-inventory/internal/usecase/shared"
)

type CreateDrawerRequest struct {
	DrawerCode string `json:"drawer_code" binding:"required,max=50"`
	TrolleyID  string `json:"trolley_id" binding:"required,max=50"`
	Position   int32  `json:"position" binding:"required,min=1"`
	Capacity   int32  `json:"capacity" binding:"required,min=1"`
	DrawerType string `json:"drawer_type" binding:"required,max=50"`
}

func (r *CreateDrawerRequest) ToParams() shared.CreateDrawerParams {
	return shared.CreateDrawerParams{
		DrawerCode: r.DrawerCode,
		TrolleyID:  r.TrolleyID,
		Position:   r.Position,
		Capacity:   r.Capacity,
		DrawerType: r.DrawerType,
	}
}

type CreateEmployeeRequest struct {
	EmployeeCode string `json:"employee_code" binding:"required,max=50"`
	FirstName    string `json:"first_name" binding:"required,max=100"`
	LastName     string `json:"last_name" binding:"required,max=100"`
	Role         string `json:"role" binding:"required,max=50"`
	Status       string `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r *CreateEmployeeRequest) ToParams() shared.CreateEmployeeParams {
	status := r.Status
	if status == "" {
		status = "active"
	}
	return shared.CreateEmployeeParams{
		EmployeeCode: r.EmployeeCode,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Role:         r.Role,
		Status:       status,
	}
}
