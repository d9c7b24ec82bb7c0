package response

import (
	"time"

	"trolley-inventory/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DrawerResponse struct {
	ID         uuid.UUID `json:"id"`
	DrawerCode string    `json:"drawer_code"`
	TrolleyID  string    `json:"trolley_id"`
	Position   int32     `json:"position"`
	Capacity   int32     `json:"capacity"`
	DrawerType string    `json:"drawer_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromDrawerView(v *queries.DrawerView) *DrawerResponse {
	var resp DrawerResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromDrawerList(views []*queries.DrawerView) []*DrawerResponse {
	res := make([]*DrawerResponse, len(views))
	for i, v := range views {
		res[i] = FromDrawerView(v)
	}
	return res
}

type EmployeeResponse struct {
	ID           uuid.UUID `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromEmployeeView(v *queries.EmployeeView) *EmployeeResponse {
	var resp EmployeeResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromEmployeeList(views []*queries.EmployeeView) []*EmployeeResponse {
	res := make([]*EmployeeResponse, len(views))
	for i, v := range views {
		res[i] = FromEmployeeView(v)
	}
	return res
}
