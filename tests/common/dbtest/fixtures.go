//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestDrawer(t *testing.T, db DBLike, drawerCode, trolleyID string, position int32) uuid.UUID {
	t.Helper()

	drawerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO drawers (id, drawer_code, trolley_id, position, capacity, drawer_type) VALUES ($1, $2, $3, $4, 20, 'standard') ON CONFLICT (drawer_code) DO NOTHING",
		drawerID, drawerCode, trolleyID, position)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM drawers WHERE drawer_code = $1", drawerCode).Scan(&drawerID)
	}

	return drawerID
}

func CreateTestEmployee(t *testing.T, db DBLike, employeeCode, status string) uuid.UUID {
	t.Helper()

	employeeID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO employees (id, employee_code, first_name, last_name, role, status) VALUES ($1, $2, 'Test', 'Crew', 'crew', $3) ON CONFLICT (employee_code) DO NOTHING",
		employeeID, employeeCode, status)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM employees WHERE employee_code = $1", employeeCode).Scan(&employeeID)
	}

	return employeeID
}

func CreateTestBatch(t *testing.T, db DBLike, itemType, batchNumber string, quantity int32) uuid.UUID {
	t.Helper()

	batchID := uuid.New()
	ctx := context.Background()

	expiry := time.Now().AddDate(0, 6, 0)
	tag, err := db.Exec(ctx,
		"INSERT INTO item_batches (id, item_type, batch_number, quantity, expiry_date) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (batch_number) DO NOTHING",
		batchID, itemType, batchNumber, quantity, expiry)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM item_batches WHERE batch_number = $1", batchNumber).Scan(&batchID)
	}

	return batchID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
