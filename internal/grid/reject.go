package grid

import "fmt"

// RejectReason says why a write was dropped.
type RejectReason int

const (
	// RejectUnknownRegion means no live region has the id.
	RejectUnknownRegion RejectReason = iota + 1

	// RejectRowOutOfRange means the row lies outside the region.
	RejectRowOutOfRange

	// RejectOverflow means the text does not fit the row at the column.
	RejectOverflow

	// RejectRowRunOverflow means a repeated-rows run leaves the region.
	RejectRowRunOverflow
)

// String returns the reason name.
func (r RejectReason) String() string {
	switch r {
	case RejectUnknownRegion:
		return "unknown region"
	case RejectRowOutOfRange:
		return "row out of range"
	case RejectOverflow:
		return "overflow"
	case RejectRowRunOverflow:
		return "row run overflow"
	default:
		return "unknown"
	}
}

// Reject describes a dropped write. X and Y are region-relative.
type Reject[ID comparable] struct {
	ID     ID
	X, Y   int
	Text   string
	Count  int
	Reason RejectReason
}

// Error implements the error interface.
func (r Reject[ID]) Error() string {
	return fmt.Sprintf("grid: write to %v at (%d, %d) dropped: %s", r.ID, r.X, r.Y, r.Reason)
}

// OnReject registers fn to observe dropped writes. Dropping stays silent
// for the frame; fn is only told about it. Pass nil to unregister.
func (u *UI[ID]) OnReject(fn func(Reject[ID])) {
	u.onReject = fn
}

func (u *UI[ID]) reject(rj Reject[ID]) {
	if u.onReject != nil {
		u.onReject(rj)
	}
	if strictRejects {
		panic(rj)
	}
}
