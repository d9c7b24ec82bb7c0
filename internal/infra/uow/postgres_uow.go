package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	dombatch "trolley-inventory/internal/domain/batch"
	"trolley-inventory/internal/infra"
	"trolley-inventory/internal/infra/db"
	"trolley-inventory/internal/infra/repository"
	"trolley-inventory/internal/pkg/errs"
	"trolley-inventory/internal/pkg/pgconv"
	"trolley-inventory/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes;
// per-drawer serialization comes from explicit row locks inside fn.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the high bit so the conversion stays positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	batchRepo    shared.BatchRepository
	drawerRepo   shared.DrawerRepository
	employeeRepo shared.EmployeeRepository
	snapshotRepo shared.SnapshotRepository
	loadRepo     shared.LoadRepository
	historyRepo  shared.HistoryRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Batches() shared.BatchRepository {
	if t.batchRepo == nil {
		t.batchRepo = repository.NewBatchRepository()
	}
	return t.batchRepo
}

func (t *pgTx) Drawers() shared.DrawerRepository {
	if t.drawerRepo == nil {
		t.drawerRepo = repository.NewDrawerRepository()
	}
	return t.drawerRepo
}

func (t *pgTx) Employees() shared.EmployeeRepository {
	if t.employeeRepo == nil {
		t.employeeRepo = repository.NewEmployeeRepository()
	}
	return t.employeeRepo
}

func (t *pgTx) Snapshots() shared.SnapshotRepository {
	if t.snapshotRepo == nil {
		t.snapshotRepo = repository.NewSnapshotRepository()
	}
	return t.snapshotRepo
}

func (t *pgTx) Loads() shared.LoadRepository {
	if t.loadRepo == nil {
		t.loadRepo = repository.NewLoadRepository()
	}
	return t.loadRepo
}

func (t *pgTx) History() shared.HistoryRepository {
	if t.historyRepo == nil {
		t.historyRepo = repository.NewHistoryRepository()
	}
	return t.historyRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) BatchByID(ctx context.Context, id uuid.UUID) (*shared.BatchSnapshot, error) {
	const query = `SELECT id, item_type, batch_number, quantity, status FROM item_batches WHERE id = $1`

	var (
		snap   shared.BatchSnapshot
		status string
	)
	err := r.dbtx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.ItemType, &snap.BatchNumber, &snap.Quantity, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("batch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read batch snapshot", err)
	}

	parsed, err := dombatch.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored batch status is not recognized", err)
	}
	snap.Status = parsed

	return &snap, nil
}

func (r *commandReads) DrawerByID(ctx context.Context, id uuid.UUID) (*shared.DrawerSnapshot, error) {
	const query = `SELECT id, drawer_code FROM drawers WHERE id = $1`

	var snap shared.DrawerSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.DrawerCode)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("drawer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read drawer snapshot", err)
	}
	return &snap, nil
}

func (r *commandReads) EmployeeByID(ctx context.Context, id uuid.UUID) (*shared.EmployeeSnapshot, error) {
	const query = `SELECT id, employee_code, status FROM employees WHERE id = $1`

	var snap shared.EmployeeSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.EmployeeCode, &snap.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read employee snapshot", err)
	}
	return &snap, nil
}
