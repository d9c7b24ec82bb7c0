//go:build unit

package batch_test

import (
	"strings"
	"testing"
	"time"

	"trolley-inventory/internal/domain/batch"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now    = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	expiry = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
)

func TestNewBatch(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b, err := batch.NewBatch("meal_tray", "BT-2026-001", 40, expiry, now)
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, "meal_tray", b.ItemType())
		assert.Equal(t, "BT-2026-001", b.BatchNumber())
		assert.Equal(t, int32(40), b.Quantity())
		assert.Equal(t, batch.StatusAvailable, b.Status())
		assert.Equal(t, now, b.ReceivedDate())
		assert.Equal(t, b.CreatedAt(), b.UpdatedAt())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		b, err := batch.NewBatch("  snack_box  ", "  BT-7  ", 5, expiry, now)
		require.NoError(t, err)
		assert.Equal(t, "snack_box", b.ItemType())
		assert.Equal(t, "BT-7", b.BatchNumber())
	})

	cases := []struct {
		name        string
		itemType    string
		batchNumber string
		quantity    int32
		errIs       error
	}{
		{
			name:        "empty item type",
			itemType:    "",
			batchNumber: "BT-1",
			quantity:    10,
			errIs:       batch.ErrEmptyItemType,
		},
		{
			name:        "whitespace item type",
			itemType:    "   ",
			batchNumber: "BT-1",
			quantity:    10,
			errIs:       batch.ErrEmptyItemType,
		},
		{
			name:        "empty batch number",
			itemType:    "meal_tray",
			batchNumber: "",
			quantity:    10,
			errIs:       batch.ErrEmptyBatchNumber,
		},
		{
			name:        "batch number too long",
			itemType:    "meal_tray",
			batchNumber: strings.Repeat("x", batch.MaxBatchNumberLength+1),
			quantity:    10,
			errIs:       batch.ErrEmptyBatchNumber,
		},
		{
			name:        "zero quantity",
			itemType:    "meal_tray",
			batchNumber: "BT-1",
			quantity:    0,
			errIs:       batch.ErrNonPositiveQuantity,
		},
		{
			name:        "negative quantity",
			itemType:    "meal_tray",
			batchNumber: "BT-1",
			quantity:    -3,
			errIs:       batch.ErrNonPositiveQuantity,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := batch.NewBatch(tc.itemType, tc.batchNumber, tc.quantity, expiry, now)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestBatchTransitions(t *testing.T) {
	cases := []struct {
		name string
		from batch.Status
		to   batch.Status
		ok   bool
	}{
		{name: "available to in_use", from: batch.StatusAvailable, to: batch.StatusInUse, ok: true},
		{name: "available to depleted", from: batch.StatusAvailable, to: batch.StatusDepleted, ok: true},
		{name: "in_use to depleted", from: batch.StatusInUse, to: batch.StatusDepleted, ok: true},
		{name: "in_use back to available", from: batch.StatusInUse, to: batch.StatusAvailable, ok: false},
		{name: "depleted to available", from: batch.StatusDepleted, to: batch.StatusAvailable, ok: false},
		{name: "depleted to in_use", from: batch.StatusDepleted, to: batch.StatusInUse, ok: false},
		{name: "available to itself", from: batch.StatusAvailable, to: batch.StatusAvailable, ok: false},
		{name: "depleted to itself", from: batch.StatusDepleted, to: batch.StatusDepleted, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := batch.Reconstruct(uuid.New(), "meal_tray", "BT-1", 10, expiry, now, tc.from, now, now)

			later := now.Add(time.Hour)
			err := b.TransitionTo(tc.to, later)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, b.Status())
				assert.Equal(t, later, b.UpdatedAt())
			} else {
				assert.ErrorIs(t, err, batch.ErrIllegalTransition)
				assert.Equal(t, tc.from, b.Status())
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"available", "in_use", "depleted"} {
		s, err := batch.ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	_, err := batch.ParseStatus("retired")
	assert.ErrorIs(t, err, batch.ErrUnknownStatus)
}
