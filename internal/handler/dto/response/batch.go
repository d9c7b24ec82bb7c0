package response

import (
	"time"

	"trolley-inventory/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BatchResponse struct {
	ID           uuid.UUID `json:"id"`
	ItemType     string    `json:"item_type"`
	BatchNumber  string    `json:"batch_number"`
	Quantity     int32     `json:"quantity"`
	ExpiryDate   time.Time `json:"expiry_date"`
	ReceivedDate time.Time `json:"received_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromBatchView(v *queries.BatchView) *BatchResponse {
	var resp BatchResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBatchList(views []*queries.BatchView) []*BatchResponse {
	res := make([]*BatchResponse, len(views))
	for i, v := range views {
		res[i] = FromBatchView(v)
	}
	return res
}
