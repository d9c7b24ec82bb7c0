package batch

import "trolley-inventory/internal/pkg/errs"

var ErrUnknownStatus = errs.New("unknown batch status")

type Status string

const (
	StatusAvailable Status = "available"
	StatusInUse     Status = "in_use"
	StatusDepleted  Status = "depleted"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusInUse, StatusDepleted:
		return Status(s), nil
	default:
		return "", ErrUnknownStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// CanTransitionTo encodes the only legal forward moves. Depleted is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusAvailable:
		return next == StatusInUse || next == StatusDepleted
	case StatusInUse:
		return next == StatusDepleted
	default:
		return false
	}
}
