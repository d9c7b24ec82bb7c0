//go:build unit

package load_test

import (
	"testing"
	"time"

	"trolley-inventory/internal/domain/load"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewLoad(t *testing.T) {
	snapshotID := uuid.New()
	batchID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		l, err := load.NewLoad(snapshotID, batchID, 24, 1, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.Equal(t, snapshotID, l.SnapshotID())
		assert.Equal(t, batchID, l.BatchID())
		assert.Equal(t, int32(24), l.QuantityLoaded())
		assert.Equal(t, int32(1), l.StackingOrder())
		assert.False(t, l.IsDepleted())
		assert.Nil(t, l.DepletionDate())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := load.NewLoad(snapshotID, batchID, 0, 1, now)
		assert.ErrorIs(t, err, load.ErrNonPositiveQuantity)

		_, err = load.NewLoad(snapshotID, batchID, -5, 1, now)
		assert.ErrorIs(t, err, load.ErrNonPositiveQuantity)
	})

	t.Run("rejects non-positive stacking order", func(t *testing.T) {
		_, err := load.NewLoad(snapshotID, batchID, 10, 0, now)
		assert.ErrorIs(t, err, load.ErrInvalidOrder)
	})
}

func TestDeplete(t *testing.T) {
	l, err := load.NewLoad(uuid.New(), uuid.New(), 10, 1, now)
	require.NoError(t, err)

	later := now.Add(2 * time.Hour)
	require.NoError(t, l.Deplete(later))
	assert.True(t, l.IsDepleted())
	require.NotNil(t, l.DepletionDate())
	assert.Equal(t, later, *l.DepletionDate())

	// Second depletion is a double submission, not a no-op.
	err = l.Deplete(later.Add(time.Minute))
	assert.ErrorIs(t, err, load.ErrAlreadyDepleted)
	assert.Equal(t, later, *l.DepletionDate())
}

func TestDetectStacking(t *testing.T) {
	t.Run("no active loads yields no warning", func(t *testing.T) {
		assert.Nil(t, load.DetectStacking(nil))
		assert.Nil(t, load.DetectStacking([]load.ExistingBatch{}))
	})

	t.Run("single active load", func(t *testing.T) {
		w := load.DetectStacking([]load.ExistingBatch{
			{BatchNumber: "BT-1", ItemType: "meal_tray", QuantityLoaded: 40, LoadDate: now},
		})
		require.NotNil(t, w)
		assert.Equal(t, load.WarningCodeStacking, w.Code)
		assert.Equal(t, "1 batch(es) already loaded without depletion", w.Message)
		require.Len(t, w.ExistingBatches, 1)
		assert.Equal(t, "BT-1", w.ExistingBatches[0].BatchNumber)
	})

	t.Run("preserves oldest-first ordering", func(t *testing.T) {
		w := load.DetectStacking([]load.ExistingBatch{
			{BatchNumber: "BT-1", LoadDate: now},
			{BatchNumber: "BT-2", LoadDate: now.Add(time.Hour)},
			{BatchNumber: "BT-3", LoadDate: now.Add(2 * time.Hour)},
		})
		require.NotNil(t, w)
		assert.Equal(t, "3 batch(es) already loaded without depletion", w.Message)
		assert.Equal(t, "BT-1", w.ExistingBatches[0].BatchNumber)
		assert.Equal(t, "BT-3", w.ExistingBatches[2].BatchNumber)
	})
}

func TestParseDrawerState(t *testing.T) {
	for _, valid := range []string{"empty", "partial", "full", "needs_restock"} {
		s, err := load.ParseDrawerState(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	_, err := load.ParseDrawerState("overflowing")
	assert.ErrorIs(t, err, load.ErrUnknownDrawerState)
}
