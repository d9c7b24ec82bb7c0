package queries

import (
	"time"

	"github.com/google/uuid"
)

// BatchView represents read-optimized item batch data
type BatchView struct {
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

// SnapshotView represents a drawer's current status snapshot
type SnapshotView struct {
	ID          uuid.UUID `json:"id"`
	DrawerID    uuid.UUID `json:"drawer_id"`
	Status      string    `json:"status"`
	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoadView represents one batch placement into a drawer
type LoadView struct {
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

// HistoryEntryView represents one append-only restock ledger row
type HistoryEntryView struct {
	ID                       uuid.UUID  `json:"id"`
	EmployeeID               *uuid.UUID `json:"employee_id,omitempty"`
	DrawerID                 *uuid.UUID `json:"drawer_id,omitempty"`
	BatchID                  *uuid.UUID `json:"batch_id,omitempty"`
	ActionType               string     `json:"action_type"`
	QuantityChanged          int32      `json:"quantity_changed"`
	Timestamp                time.Time  `json:"restock_timestamp"`
	CompletionTimeSeconds    *int32     `json:"completion_time_seconds,omitempty"`
	AccuracyScore            *float64   `json:"accuracy_score,omitempty"`
	EfficiencyScore          *float64   `json:"efficiency_score,omitempty"`
	Notes                    *string    `json:"notes,omitempty"`
	StackingWarningTriggered bool       `json:"stacking_warning_triggered"`
	CreatedAt                time.Time  `json:"created_at"`
}

// DrawerView represents permanent drawer reference data
type DrawerView struct {
	ID         uuid.UUID `json:"id"`
	DrawerCode string    `json:"drawer_code"`
	TrolleyID  string    `json:"trolley_id"`
	Position   int32     `json:"position"`
	Capacity   int32     `json:"capacity"`
	DrawerType string    `json:"drawer_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EmployeeView represents employee reference data
type EmployeeView struct {
	ID           uuid.UUID `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmployeePerformance is the on-demand aggregate over the restock ledger.
// Averages are nil when the employee has no entries.
type EmployeePerformance struct {
	EmployeeID               uuid.UUID `json:"employee_id"`
	EmployeeCode             string    `json:"employee_code"`
	EmployeeName             string    `json:"employee_name"`
	TotalActions             int       `json:"total_actions"`
	AverageAccuracy          *float64  `json:"average_accuracy_score"`
	AverageEfficiency        *float64  `json:"average_efficiency_score"`
	WarningsTriggered        int       `json:"warnings_triggered"`
	AverageCompletionSeconds *float64  `json:"average_completion_time_seconds"`
}

// LeaderboardEntry is one ranked row of the employee leaderboard
type LeaderboardEntry struct {
	Rank         int       `json:"rank"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	EmployeeName string    `json:"employee_name"`
	TotalActions int       `json:"total_actions"`
	AverageScore float64   `json:"average_score"`
}

// Pagination is the page envelope for the history list
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int64 `json:"total_pages"`
}
