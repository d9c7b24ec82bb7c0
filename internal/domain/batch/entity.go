package batch

import (
	"strings"
	"time"

	"trolley-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyItemType       = errs.New("item type must not be empty")
	ErrEmptyBatchNumber    = errs.New("batch number must not be empty")
	ErrNonPositiveQuantity = errs.New("quantity must be positive")
	ErrIllegalTransition   = errs.New("illegal batch status transition")
)

const MaxBatchNumberLength = 50

type Batch struct {
	id           uuid.UUID
	itemType     string
	batchNumber  string
	quantity     int32
	expiryDate   time.Time
	receivedDate time.Time
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBatch(itemType, batchNumber string, quantity int32, expiryDate time.Time, now time.Time) (*Batch, error) {
	itemType = strings.TrimSpace(itemType)
	batchNumber = strings.TrimSpace(batchNumber)

	if itemType == "" {
		return nil, ErrEmptyItemType
	}
	if batchNumber == "" || len(batchNumber) > MaxBatchNumberLength {
		return nil, ErrEmptyBatchNumber
	}
	if quantity <= 0 {
		return nil, ErrNonPositiveQuantity
	}

	return &Batch{
		id:           uuid.New(),
		itemType:     itemType,
		batchNumber:  batchNumber,
		quantity:     quantity,
		expiryDate:   expiryDate,
		receivedDate: now,
		status:       StatusAvailable,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a batch from persisted state without re-validation.
func Reconstruct(id uuid.UUID, itemType, batchNumber string, quantity int32, expiryDate, receivedDate time.Time, status Status, createdAt, updatedAt time.Time) *Batch {
	return &Batch{
		id:           id,
		itemType:     itemType,
		batchNumber:  batchNumber,
		quantity:     quantity,
		expiryDate:   expiryDate,
		receivedDate: receivedDate,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// TransitionTo mutates the status or fails with ErrIllegalTransition.
func (b *Batch) TransitionTo(next Status, now time.Time) error {
	if !b.status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Batch) IsDepleted() bool {
	return b.status == StatusDepleted
}

func (b *Batch) ID() uuid.UUID           { return b.id }
func (b *Batch) ItemType() string        { return b.itemType }
func (b *Batch) BatchNumber() string     { return b.batchNumber }
func (b *Batch) Quantity() int32         { return b.quantity }
func (b *Batch) ExpiryDate() time.Time   { return b.expiryDate }
func (b *Batch) ReceivedDate() time.Time { return b.receivedDate }
func (b *Batch) Status() Status          { return b.status }
func (b *Batch) CreatedAt() time.Time    { return b.createdAt }
func (b *Batch) UpdatedAt() time.Time    { return b.updatedAt }
