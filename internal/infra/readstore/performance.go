package readstore

import (
	"context"

	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/infra/db"
	"trolley-inventory/internal/pkg/pgconv"
	"trolley-inventory/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PerformanceReadStore struct {
	db db.DBTX
}

func NewPerformanceReadStore(db db.DBTX) *PerformanceReadStore {
	return &PerformanceReadStore{db: db}
}

func (r *PerformanceReadStore) ScoredEntriesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]queries.ScoredEntry, error) {
	const query = `
		SELECT accuracy_score, efficiency_score, completion_time_seconds, stacking_warning_triggered
		FROM restock_history
		WHERE employee_id = $1
	`

	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query scored entries", err)
	}
	defer rows.Close()

	var entries []queries.ScoredEntry
	for rows.Next() {
		entry, err := scanScoredEntry(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan scored entry", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate scored entries", err)
	}

	return entries, nil
}

func (r *PerformanceReadStore) ScoredEntriesForActiveEmployees(ctx context.Context) ([]queries.EmployeeScoredEntry, error) {
	const query = `
		SELECT e.id, e.employee_code, e.first_name, e.last_name,
		       h.accuracy_score, h.efficiency_score, h.completion_time_seconds, h.stacking_warning_triggered
		FROM restock_history h
		JOIN employees e ON e.id = h.employee_id
		WHERE e.status = 'active'
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query scored entries for active employees", err)
	}
	defer rows.Close()

	var results []queries.EmployeeScoredEntry
	for rows.Next() {
		var (
			row        queries.EmployeeScoredEntry
			completion pgtype.Int4
			accuracy   pgtype.Numeric
			efficiency pgtype.Numeric
		)
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeCode, &row.FirstName, &row.LastName,
			&accuracy, &efficiency, &completion, &row.Entry.WarningTriggered,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan scored entry row", err)
		}

		row.Entry.CompletionTimeSeconds = pgconv.Int32PtrFromPgtype(completion)
		if row.Entry.AccuracyScore, err = pgconv.Float64PtrFromNumeric(accuracy); err != nil {
			return nil, infra.WrapRepoErr("failed to decode accuracy score", err)
		}
		if row.Entry.EfficiencyScore, err = pgconv.Float64PtrFromNumeric(efficiency); err != nil {
			return nil, infra.WrapRepoErr("failed to decode efficiency score", err)
		}

		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate scored entry rows", err)
	}

	return results, nil
}

func scanScoredEntry(row rowScanner) (queries.ScoredEntry, error) {
	var (
		entry      queries.ScoredEntry
		completion pgtype.Int4
		accuracy   pgtype.Numeric
		efficiency pgtype.Numeric
	)
	err := row.Scan(&accuracy, &efficiency, &completion, &entry.WarningTriggered)
	if err != nil {
		return queries.ScoredEntry{}, err
	}

	entry.CompletionTimeSeconds = pgconv.Int32PtrFromPgtype(completion)
	if entry.AccuracyScore, err = pgconv.Float64PtrFromNumeric(accuracy); err != nil {
		return queries.ScoredEntry{}, err
	}
	if entry.EfficiencyScore, err = pgconv.Float64PtrFromNumeric(efficiency); err != nil {
		return queries.ScoredEntry{}, err
	}

	return entry, nil
}
