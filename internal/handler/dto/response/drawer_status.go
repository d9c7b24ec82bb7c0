package response

import (
	"time"

	"trolley-inventory/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SnapshotResponse struct {
	ID          uuid.UUID `json:"id"`
	DrawerID    uuid.UUID `json:"drawer_id"`
	Status      string    `json:"status"`
	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromSnapshotView(v *queries.SnapshotView) *SnapshotResponse {
	var resp SnapshotResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

type LoadResponse struct {
	ID             uuid.UUID  `json:"id"`
	SnapshotID     uuid.UUID  `json:"drawer_status_id"`
	BatchID        uuid.UUID  `json:"batch_id"`
	QuantityLoaded int32      `json:"quantity_loaded"`
	LoadDate       time.Time  `json:"load_date"`
	IsDepleted     bool       `json:"is_depleted"`
	DepletionDate  *time.Time `json:"depletion_date,omitempty"`
	StackingOrder  int32      `json:"batch_order"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromLoadView(v *queries.LoadView) *LoadResponse {
	var resp LoadResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromLoadList(views []*queries.LoadView) []*LoadResponse {
	res := make([]*LoadResponse, len(views))
	for i, v := range views {
		res[i] = FromLoadView(v)
	}
	return res
}
