package queries

import (
	"context"
	"sort"
	"strings"

	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidMetric = errs.New("metric must be accuracy_score or efficiency_score")

const (
	MetricAccuracy   = "accuracy_score"
	MetricEfficiency = "efficiency_score"

	DefaultLeaderboardLimit = 10
)

// ScoredEntry is the slice of one ledger row the aggregator needs.
type ScoredEntry struct {
	AccuracyScore         *float64
	EfficiencyScore       *float64
	CompletionTimeSeconds *int32
	WarningTriggered      bool
}

// EmployeeScoredEntry joins a scored entry with the acting employee's identity.
type EmployeeScoredEntry struct {
	EmployeeID   uuid.UUID
	EmployeeCode string
	FirstName    string
	LastName     string
	Entry        ScoredEntry
}

type PerformanceReadStore interface {
	ScoredEntriesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]ScoredEntry, error)
	// ScoredEntriesForActiveEmployees pulls the ledger rows of every active
	// employee in bulk; grouping and ranking happen in memory.
	ScoredEntriesForActiveEmployees(ctx context.Context) ([]EmployeeScoredEntry, error)
}

type PerformanceQueries interface {
	EmployeePerformance(ctx context.Context, employeeID uuid.UUID) (*EmployeePerformance, error)
	Leaderboard(ctx context.Context, metric string, limit int) ([]*LeaderboardEntry, error)
}

// The aggregator is stateless: it only promises correct aggregation of
// whatever the ledger stored, not correctness of the stored scores.
type performanceQueriesImpl struct {
	store     PerformanceReadStore
	employees EmployeeReadStore
}

func NewPerformanceQueries(store PerformanceReadStore, employees EmployeeReadStore) PerformanceQueries {
	return &performanceQueriesImpl{store: store, employees: employees}
}

func (q *performanceQueriesImpl) EmployeePerformance(ctx context.Context, employeeID uuid.UUID) (*EmployeePerformance, error) {
	emp, err := q.employees.FindByID(ctx, employeeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEmployeeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entries, err := q.store.ScoredEntriesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	perf := &EmployeePerformance{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.EmployeeCode,
		EmployeeName: emp.FirstName + " " + emp.LastName,
		TotalActions: len(entries),
	}

	var accSum, effSum, durSum float64
	var accN, effN, durN int
	for _, e := range entries {
		if e.AccuracyScore != nil {
			accSum += *e.AccuracyScore
			accN++
		}
		if e.EfficiencyScore != nil {
			effSum += *e.EfficiencyScore
			effN++
		}
		if e.CompletionTimeSeconds != nil {
			durSum += float64(*e.CompletionTimeSeconds)
			durN++
		}
		if e.WarningTriggered {
			perf.WarningsTriggered++
		}
	}

	perf.AverageAccuracy = mean(accSum, accN)
	perf.AverageEfficiency = mean(effSum, effN)
	perf.AverageCompletionSeconds = mean(durSum, durN)

	return perf, nil
}

func (q *performanceQueriesImpl) Leaderboard(ctx context.Context, metric string, limit int) ([]*LeaderboardEntry, error) {
	if metric != MetricAccuracy && metric != MetricEfficiency {
		return nil, ErrInvalidMetric
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	rows, err := q.store.ScoredEntriesForActiveEmployees(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	type bucket struct {
		entry *LeaderboardEntry
		sum   float64
		n     int
	}
	buckets := make(map[uuid.UUID]*bucket)
	for _, row := range rows {
		b, ok := buckets[row.EmployeeID]
		if !ok {
			b = &bucket{entry: &LeaderboardEntry{
				EmployeeID:   row.EmployeeID,
				EmployeeCode: row.EmployeeCode,
				EmployeeName: row.FirstName + " " + row.LastName,
			}}
			buckets[row.EmployeeID] = b
		}
		b.entry.TotalActions++

		score := row.Entry.AccuracyScore
		if metric == MetricEfficiency {
			score = row.Entry.EfficiencyScore
		}
		if score != nil {
			b.sum += *score
			b.n++
		}
	}

	ranked := make([]*LeaderboardEntry, 0, len(buckets))
	for _, b := range buckets {
		// Employees with no scored entries for the metric do not rank.
		if b.n == 0 {
			continue
		}
		b.entry.AverageScore = b.sum / float64(b.n)
		ranked = append(ranked, b.entry)
	}

	// Descending by average, ties broken by ascending employee id so output
	// is deterministic across runs.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AverageScore != ranked[j].AverageScore {
			return ranked[i].AverageScore > ranked[j].AverageScore
		}
		return strings.Compare(ranked[i].EmployeeID.String(), ranked[j].EmployeeID.String()) < 0
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i, e := range ranked {
		e.Rank = i + 1
	}

	return ranked, nil
}

func mean(sum float64, n int) *float64 {
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}
