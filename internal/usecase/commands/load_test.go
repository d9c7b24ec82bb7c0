//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	dombatch "trolley-inventory/internal/domain/batch"
	domload "trolley-inventory/internal/domain/load"
	"trolley-inventory/internal/infra/db"
	"trolley-inventory/internal/pkg/clock"
	"trolley-inventory/internal/pkg/errs"
	"trolley-inventory/internal/usecase/commands"
	"trolley-inventory/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBatchRepo struct {
	batch         *dombatch.Batch
	statusUpdates []dombatch.Status
}

func (r *fakeBatchRepo) Create(_ context.Context, _ db.DBTX, _ *dombatch.Batch) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (r *fakeBatchRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, _ uuid.UUID) (*dombatch.Batch, error) {
	return r.batch, nil
}

func (r *fakeBatchRepo) UpdateStatus(_ context.Context, _ db.DBTX, _ uuid.UUID, status dombatch.Status, _ time.Time) error {
	r.statusUpdates = append(r.statusUpdates, status)
	return nil
}

type fakeDrawerRepo struct{}

func (r *fakeDrawerRepo) Create(_ context.Context, _ db.DBTX, _ shared.CreateDrawerParams) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (r *fakeDrawerRepo) LockForLoad(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

type fakeEmployeeRepo struct{}

func (r *fakeEmployeeRepo) Create(_ context.Context, _ db.DBTX, _ shared.CreateEmployeeParams) (uuid.UUID, error) {
	return uuid.Nil, nil
}

type fakeSnapshotRepo struct {
	snap *shared.StatusSnapshot
}

func (r *fakeSnapshotRepo) FindByID(_ context.Context, _ db.DBTX, _ uuid.UUID) (*shared.StatusSnapshot, error) {
	return r.snap, nil
}

func (r *fakeSnapshotRepo) FindByDrawer(_ context.Context, _ db.DBTX, _ uuid.UUID) (*shared.StatusSnapshot, error) {
	return r.snap, nil
}

func (r *fakeSnapshotRepo) Create(_ context.Context, _ db.DBTX, _ uuid.UUID, _ domload.DrawerState, _ time.Time) (*shared.StatusSnapshot, error) {
	return r.snap, nil
}

func (r *fakeSnapshotRepo) Refresh(_ context.Context, _ db.DBTX, _ uuid.UUID, _ domload.DrawerState, _ time.Time) error {
	return nil
}

type fakeLoadRepo struct {
	load          *domload.Load
	depletedMarks int
}

func (r *fakeLoadRepo) Create(_ context.Context, _ db.DBTX, _ *domload.Load) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (r *fakeLoadRepo) ActiveBySnapshot(_ context.Context, _ db.DBTX, _ uuid.UUID) ([]shared.ActiveLoad, error) {
	return nil, nil
}

func (r *fakeLoadRepo) NextStackingOrder(_ context.Context, _ db.DBTX, _ uuid.UUID) (int32, error) {
	return 1, nil
}

func (r *fakeLoadRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, _ uuid.UUID) (*domload.Load, error) {
	return r.load, nil
}

func (r *fakeLoadRepo) MarkDepleted(_ context.Context, _ db.DBTX, _ *domload.Load) error {
	r.depletedMarks++
	return nil
}

type fakeHistoryRepo struct {
	appended []shared.AppendHistoryParams
}

func (r *fakeHistoryRepo) Append(_ context.Context, _ db.DBTX, params shared.AppendHistoryParams) (uuid.UUID, error) {
	r.appended = append(r.appended, params)
	return uuid.New(), nil
}

type fakeReads struct{}

func (r *fakeReads) BatchByID(_ context.Context, _ uuid.UUID) (*shared.BatchSnapshot, error) {
	return nil, nil
}

func (r *fakeReads) DrawerByID(_ context.Context, _ uuid.UUID) (*shared.DrawerSnapshot, error) {
	return nil, nil
}

func (r *fakeReads) EmployeeByID(_ context.Context, _ uuid.UUID) (*shared.EmployeeSnapshot, error) {
	return nil, nil
}

type fakeTx struct {
	batches   *fakeBatchRepo
	drawers   *fakeDrawerRepo
	employees *fakeEmployeeRepo
	snapshots *fakeSnapshotRepo
	loads     *fakeLoadRepo
	history   *fakeHistoryRepo
	reads     *fakeReads
}

func (t *fakeTx) Batches() shared.BatchRepository      { return t.batches }
func (t *fakeTx) Drawers() shared.DrawerRepository     { return t.drawers }
func (t *fakeTx) Employees() shared.EmployeeRepository { return t.employees }
func (t *fakeTx) Snapshots() shared.SnapshotRepository { return t.snapshots }
func (t *fakeTx) Loads() shared.LoadRepository         { return t.loads }
func (t *fakeTx) History() shared.HistoryRepository    { return t.history }
func (t *fakeTx) Reads() shared.CommandReads           { return t.reads }
func (t *fakeTx) DB() db.DBTX                          { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func newDepleteFixture(loadQuantity, batchQuantity int32) (*fakeTx, commands.LoadCommands, *domload.Load) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	drawerID := uuid.New()
	snapshotID := uuid.New()
	batchID := uuid.New()
	loadID := uuid.New()

	batch := dombatch.Reconstruct(batchID, "chicken_meal", "BAT-2026-001", batchQuantity,
		now.AddDate(0, 3, 0), now, dombatch.StatusInUse, now, now)
	load := domload.Reconstruct(loadID, snapshotID, batchID, loadQuantity,
		now, false, nil, 1, now)
	snap := &shared.StatusSnapshot{
		ID:          snapshotID,
		DrawerID:    drawerID,
		State:       domload.DrawerFull,
		LastUpdated: now,
		CreatedAt:   now,
	}

	tx := &fakeTx{
		batches:   &fakeBatchRepo{batch: batch},
		drawers:   &fakeDrawerRepo{},
		employees: &fakeEmployeeRepo{},
		snapshots: &fakeSnapshotRepo{snap: snap},
		loads:     &fakeLoadRepo{load: load},
		history:   &fakeHistoryRepo{},
		reads:     &fakeReads{},
	}

	cmds := commands.NewLoadCommands(&fakeUoW{tx: tx}, clock.NewMockClock(now.Add(time.Hour)))
	return tx, cmds, load
}

func TestDepleteLoad(t *testing.T) {
	t.Parallel()

	t.Run("appends a removal ledger entry for the drawer and batch", func(t *testing.T) {
		t.Parallel()

		tx, cmds, load := newDepleteFixture(10, 40)

		err := cmds.DepleteLoad(context.Background(), load.ID())
		require.NoError(t, err)

		assert.Equal(t, 1, tx.loads.depletedMarks)
		require.Len(t, tx.history.appended, 1)

		entry := tx.history.appended[0]
		assert.Equal(t, "removal", entry.ActionType)
		assert.Equal(t, int32(-10), entry.QuantityChanged)
		require.NotNil(t, entry.DrawerID)
		assert.Equal(t, tx.snapshots.snap.DrawerID, *entry.DrawerID)
		require.NotNil(t, entry.BatchID)
		assert.Equal(t, load.BatchID(), *entry.BatchID)
		assert.Nil(t, entry.EmployeeID)
		assert.False(t, entry.StackingWarningTriggered)
	})

	t.Run("depletes the batch when the drawer held all of it", func(t *testing.T) {
		t.Parallel()

		tx, cmds, load := newDepleteFixture(10, 10)

		err := cmds.DepleteLoad(context.Background(), load.ID())
		require.NoError(t, err)

		require.Len(t, tx.batches.statusUpdates, 1)
		assert.Equal(t, dombatch.StatusDepleted, tx.batches.statusUpdates[0])
		require.Len(t, tx.history.appended, 1)
		assert.Equal(t, "removal", tx.history.appended[0].ActionType)
	})

	t.Run("re-depletion fails and writes nothing", func(t *testing.T) {
		t.Parallel()

		tx, cmds, load := newDepleteFixture(10, 40)

		require.NoError(t, cmds.DepleteLoad(context.Background(), load.ID()))

		err := cmds.DepleteLoad(context.Background(), load.ID())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrLoadAlreadyDepleted))

		assert.Equal(t, 1, tx.loads.depletedMarks)
		assert.Len(t, tx.history.appended, 1)
	})
}
