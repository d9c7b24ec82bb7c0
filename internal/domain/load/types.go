package load

import "trolley-inventory/internal/pkg/errs"

var ErrUnknownDrawerState = errs.New("unknown drawer state")

// DrawerState is the caller-supplied aggregate state of a drawer snapshot.
// It is reported, not derived; the tracker records whatever the crew observed.
type DrawerState string

const (
	DrawerEmpty        DrawerState = "empty"
	DrawerPartial      DrawerState = "partial"
	DrawerFull         DrawerState = "full"
	DrawerNeedsRestock DrawerState = "needs_restock"
)

func ParseDrawerState(s string) (DrawerState, error) {
	switch DrawerState(s) {
	case DrawerEmpty, DrawerPartial, DrawerFull, DrawerNeedsRestock:
		return DrawerState(s), nil
	default:
		return "", ErrUnknownDrawerState
	}
}

func (s DrawerState) String() string {
	return string(s)
}
