package load

import (
	"fmt"
	"time"
)

const WarningCodeStacking = "BATCH_STACKING_DETECTED"

// ExistingBatch describes one active load found under an incoming one.
type ExistingBatch struct {
	BatchNumber    string    `json:"batch_number"`
	ItemType       string    `json:"item_type"`
	QuantityLoaded int32     `json:"quantity_loaded"`
	LoadDate       time.Time `json:"load_date"`
}

// StackingWarning is advisory: loading over undepleted batches still succeeds,
// the warning only records the unresolved liability.
type StackingWarning struct {
	Code            string          `json:"code"`
	Message         string          `json:"message"`
	ExistingBatches []ExistingBatch `json:"existing_batches"`
}

// DetectStacking builds the warning for a set of still-active loads, ordered
// oldest-first by the caller. Any non-empty set warns; physical position is
// irrelevant, only the existence of an unresolved prior load matters.
func DetectStacking(active []ExistingBatch) *StackingWarning {
	if len(active) == 0 {
		return nil
	}
	return &StackingWarning{
		Code:            WarningCodeStacking,
		Message:         fmt.Sprintf("%d batch(es) already loaded without depletion", len(active)),
		ExistingBatches: active,
	}
}
