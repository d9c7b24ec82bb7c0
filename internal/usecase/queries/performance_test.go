//go:build unit

package queries_test

import (
	"context"
	"testing"

	"trolley-inventory/internal/pkg/errs"
	"trolley-inventory/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePerformanceStore struct {
	byEmployee map[uuid.UUID][]queries.ScoredEntry
	active     []queries.EmployeeScoredEntry
}

func (f *fakePerformanceStore) ScoredEntriesByEmployee(_ context.Context, employeeID uuid.UUID) ([]queries.ScoredEntry, error) {
	return f.byEmployee[employeeID], nil
}

func (f *fakePerformanceStore) ScoredEntriesForActiveEmployees(_ context.Context) ([]queries.EmployeeScoredEntry, error) {
	return f.active, nil
}

type fakeEmployeeStore struct {
	employees map[uuid.UUID]*queries.EmployeeView
}

func (f *fakeEmployeeStore) FindByID(_ context.Context, id uuid.UUID) (*queries.EmployeeView, error) {
	if v, ok := f.employees[id]; ok {
		return v, nil
	}
	return nil, errs.ErrEmployeeNotFound
}

func (f *fakeEmployeeStore) List(_ context.Context) ([]*queries.EmployeeView, error) {
	res := make([]*queries.EmployeeView, 0, len(f.employees))
	for _, v := range f.employees {
		res = append(res, v)
	}
	return res, nil
}

func f64(v float64) *float64 { return &v }
func i32(v int32) *int32     { return &v }

func TestEmployeePerformance(t *testing.T) {
	empID := uuid.New()
	employees := &fakeEmployeeStore{employees: map[uuid.UUID]*queries.EmployeeView{
		empID: {ID: empID, EmployeeCode: "EMP-001", FirstName: "Mina", LastName: "Sato", Status: "active"},
	}}

	t.Run("zero entries yields nil averages", func(t *testing.T) {
		q := queries.NewPerformanceQueries(&fakePerformanceStore{}, employees)

		perf, err := q.EmployeePerformance(context.Background(), empID)
		require.NoError(t, err)
		assert.Equal(t, 0, perf.TotalActions)
		assert.Nil(t, perf.AverageAccuracy)
		assert.Nil(t, perf.AverageEfficiency)
		assert.Nil(t, perf.AverageCompletionSeconds)
		assert.Equal(t, 0, perf.WarningsTriggered)
	})

	t.Run("averages skip nil scores", func(t *testing.T) {
		store := &fakePerformanceStore{byEmployee: map[uuid.UUID][]queries.ScoredEntry{
			empID: {
				{AccuracyScore: f64(90), EfficiencyScore: f64(80), CompletionTimeSeconds: i32(120), WarningTriggered: true},
				{AccuracyScore: f64(70)},
				{EfficiencyScore: f64(60), CompletionTimeSeconds: i32(180)},
			},
		}}
		q := queries.NewPerformanceQueries(store, employees)

		perf, err := q.EmployeePerformance(context.Background(), empID)
		require.NoError(t, err)
		assert.Equal(t, 3, perf.TotalActions)
		require.NotNil(t, perf.AverageAccuracy)
		assert.InDelta(t, 80.0, *perf.AverageAccuracy, 1e-9)
		require.NotNil(t, perf.AverageEfficiency)
		assert.InDelta(t, 70.0, *perf.AverageEfficiency, 1e-9)
		require.NotNil(t, perf.AverageCompletionSeconds)
		assert.InDelta(t, 150.0, *perf.AverageCompletionSeconds, 1e-9)
		assert.Equal(t, 1, perf.WarningsTriggered)
		assert.Equal(t, "Mina Sato", perf.EmployeeName)
	})

	t.Run("unknown employee", func(t *testing.T) {
		q := queries.NewPerformanceQueries(&fakePerformanceStore{}, employees)

		_, err := q.EmployeePerformance(context.Background(), uuid.New())
		assert.Error(t, err)
	})
}

func TestLeaderboard(t *testing.T) {
	// Fixed IDs so the tie-break on ascending employee id is deterministic.
	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	idC := uuid.MustParse("00000000-0000-0000-0000-00000000000c")

	empRow := func(id uuid.UUID, code string, entry queries.ScoredEntry) queries.EmployeeScoredEntry {
		return queries.EmployeeScoredEntry{
			EmployeeID:   id,
			EmployeeCode: code,
			FirstName:    "F",
			LastName:     code,
			Entry:        entry,
		}
	}

	store := &fakePerformanceStore{active: []queries.EmployeeScoredEntry{
		empRow(idB, "B", queries.ScoredEntry{AccuracyScore: f64(90)}),
		empRow(idA, "A", queries.ScoredEntry{AccuracyScore: f64(90)}),
		empRow(idC, "C", queries.ScoredEntry{AccuracyScore: f64(95)}),
		empRow(idC, "C", queries.ScoredEntry{AccuracyScore: f64(85)}),
	}}
	q := queries.NewPerformanceQueries(store, &fakeEmployeeStore{})

	t.Run("descending with ascending id tie-break", func(t *testing.T) {
		entries, err := q.Leaderboard(context.Background(), queries.MetricAccuracy, 10)
		require.NoError(t, err)

		want := []*queries.LeaderboardEntry{
			{Rank: 1, EmployeeID: idA, EmployeeCode: "A", EmployeeName: "F A", TotalActions: 1, AverageScore: 90},
			{Rank: 2, EmployeeID: idB, EmployeeCode: "B", EmployeeName: "F B", TotalActions: 1, AverageScore: 90},
			{Rank: 3, EmployeeID: idC, EmployeeCode: "C", EmployeeName: "F C", TotalActions: 2, AverageScore: 90},
		}
		if diff := cmp.Diff(want, entries); diff != "" {
			t.Errorf("leaderboard mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("truncates to limit", func(t *testing.T) {
		entries, err := q.Leaderboard(context.Background(), queries.MetricAccuracy, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, 2, entries[1].Rank)
	})

	t.Run("skips employees without the metric", func(t *testing.T) {
		mixed := &fakePerformanceStore{active: []queries.EmployeeScoredEntry{
			empRow(idA, "A", queries.ScoredEntry{AccuracyScore: f64(90)}),
			empRow(idB, "B", queries.ScoredEntry{EfficiencyScore: f64(99)}),
		}}
		qm := queries.NewPerformanceQueries(mixed, &fakeEmployeeStore{})

		entries, err := qm.Leaderboard(context.Background(), queries.MetricAccuracy, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, idA, entries[0].EmployeeID)
	})

	t.Run("rejects unknown metric", func(t *testing.T) {
		_, err := q.Leaderboard(context.Background(), "speed", 10)
		assert.ErrorIs(t, err, queries.ErrInvalidMetric)
	})
}
