package response

import (
	"time"

	"trolley-inventory/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HistoryEntryResponse struct {
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

func FromHistoryEntryView(v *queries.HistoryEntryView) *HistoryEntryResponse {
	var resp HistoryEntryResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromHistoryList(views []*queries.HistoryEntryView) []*HistoryEntryResponse {
	res := make([]*HistoryEntryResponse, len(views))
	for i, v := range views {
		res[i] = FromHistoryEntryView(v)
	}
	return res
}

type HistoryPageResponse struct {
	Entries    []*HistoryEntryResponse `json:"entries"`
	Pagination *queries.Pagination     `json:"pagination"`
}

func FromHistoryPage(views []*queries.HistoryEntryView, p *queries.Pagination) *HistoryPageResponse {
	return &HistoryPageResponse{
		Entries:    FromHistoryList(views),
		Pagination: p,
	}
}

type PerformanceResponse struct {
	EmployeeID               uuid.UUID `json:"employee_id"`
	EmployeeCode             string    `json:"employee_code"`
	EmployeeName             string    `json:"employee_name"`
	TotalActions             int       `json:"total_actions"`
	AverageAccuracy          *float64  `json:"average_accuracy_score"`
	AverageEfficiency        *float64  `json:"average_efficiency_score"`
	WarningsTriggered        int       `json:"warnings_triggered"`
	AverageCompletionSeconds *float64  `json:"average_completion_time_seconds"`
}

func FromEmployeePerformance(p *queries.EmployeePerformance) *PerformanceResponse {
	var resp PerformanceResponse
	_ = copier.Copy(&resp, p)
	return &resp
}

type LeaderboardEntryResponse struct {
	Rank         int       `json:"rank"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	EmployeeName string    `json:"employee_name"`
	TotalActions int       `json:"total_actions"`
	AverageScore float64   `json:"average_score"`
}

type LeaderboardResponse struct {
	Metric  string                      `json:"metric"`
	Entries []*LeaderboardEntryResponse `json:"entries"`
}

func FromLeaderboard(metric string, entries []*queries.LeaderboardEntry) *LeaderboardResponse {
	res := make([]*LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		var r LeaderboardEntryResponse
		_ = copier.Copy(&r, e)
		res[i] = &r
	}
	return &LeaderboardResponse{Metric: metric, Entries: res}
}
