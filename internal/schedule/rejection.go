package schedule

import (
	"errors"
	"fmt"
)

// Reason classifies why a mutation was rejected. Every rejection is a
// no-op: the caller's schedule mapping is left exactly as it was.
type Reason string

const (
	ReasonOutOfBounds        Reason = "out_of_bounds"
	ReasonCollision          Reason = "collision"
	ReasonDurationOutOfRange Reason = "duration_out_of_range"
	ReasonUnknownBlockKind   Reason = "unknown_block_kind"
	ReasonTooLateForAnchor   Reason = "too_late_for_anchor"
	ReasonBlockNotFound      Reason = "block_not_found"
)

// Rejection is the typed error returned by store mutators.
type Rejection struct {
	Op     string
	Reason Reason
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s rejected: %s", r.Op, r.Reason)
}

func reject(op string, reason Reason) error {
	return &Rejection{Op: op, Reason: reason}
}

// ReasonOf extracts the rejection reason from an error, if it is one.
func ReasonOf(err error) (Reason, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Reason, true
	}
	return "", false
}
