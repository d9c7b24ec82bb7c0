package load

import (
	"time"

	"trolley-inventory/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveQuantity = errs.New("quantity loaded must be positive")
	ErrInvalidOrder        = errs.New("stacking order must be positive")
	ErrAlreadyDepleted     = errs.New("load is already depleted")
)

// Load is one placement of a batch into a drawer. It mutates exactly once,
// when marked depleted, and is never deleted.
type Load struct {
	id             uuid.UUID
	snapshotID     uuid.UUID
	batchID        uuid.UUID
	quantityLoaded int32
	loadDate       time.Time
	depleted       bool
	depletionDate  *time.Time
	stackingOrder  int32
	createdAt      time.Time
}

func NewLoad(snapshotID, batchID uuid.UUID, quantity, stackingOrder int32, now time.Time) (*Load, error) {
	if quantity <= 0 {
		return nil, ErrNonPositiveQuantity
	}
	if stackingOrder <= 0 {
		return nil, ErrInvalidOrder
	}

	return &Load{
		id:             uuid.New(),
		snapshotID:     snapshotID,
		batchID:        batchID,
		quantityLoaded: quantity,
		loadDate:       now,
		depleted:       false,
		stackingOrder:  stackingOrder,
		createdAt:      now,
	}, nil
}

func Reconstruct(id, snapshotID, batchID uuid.UUID, quantity int32, loadDate time.Time, depleted bool, depletionDate *time.Time, stackingOrder int32, createdAt time.Time) *Load {
	return &Load{
		id:             id,
		snapshotID:     snapshotID,
		batchID:        batchID,
		quantityLoaded: quantity,
		loadDate:       loadDate,
		depleted:       depleted,
		depletionDate:  depletionDate,
		stackingOrder:  stackingOrder,
		createdAt:      createdAt,
	}
}

// Deplete is deliberately not idempotent: a second call surfaces a
// double-submission instead of silently succeeding.
func (l *Load) Deplete(now time.Time) error {
	if l.depleted {
		return ErrAlreadyDepleted
	}
	l.depleted = true
	l.depletionDate = &now
	return nil
}

func (l *Load) ID() uuid.UUID             { return l.id }
func (l *Load) SnapshotID() uuid.UUID     { return l.snapshotID }
func (l *Load) BatchID() uuid.UUID        { return l.batchID }
func (l *Load) QuantityLoaded() int32     { return l.quantityLoaded }
func (l *Load) LoadDate() time.Time       { return l.loadDate }
func (l *Load) IsDepleted() bool          { return l.depleted }
func (l *Load) DepletionDate() *time.Time { return l.depletionDate }
func (l *Load) StackingOrder() int32      { return l.stackingOrder }
func (l *Load) CreatedAt() time.Time      { return l.createdAt }
