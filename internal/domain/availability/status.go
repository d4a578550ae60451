package availability

import "strings"

// Status is the normalized approval state of a stored rental request. All of
// the legacy string/boolean variance is mapped here and nowhere else.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusApproved
	StatusRejected
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// CountsTowardUsage reports whether a reservation in this status occupies
// stock. Only an approved reservation does; unknown markers are excluded so
// a garbled status can never inflate availability for other users silently,
// nor block them on a request that was never approved.
func (s Status) CountsTowardUsage() bool {
	return s == StatusApproved
}

var (
	rejectedMarkers  = []string{"rejected", "denied", "거절", "반려"}
	cancelledMarkers = []string{"cancelled", "canceled", "취소"}
	pendingMarkers   = []string{"pending", "waiting", "대기"}
	approvedMarkers  = []string{"approved", "approve", "승인"}
)

// StatusFromRaw maps a raw stored status value onto the enum. Explicit
// rejection, cancellation and pending markers win over approval markers, so
// a value like "승인 취소" reads as cancelled.
func StatusFromRaw(raw any) Status {
	switch v := raw.(type) {
	case bool:
		if v {
			return StatusApproved
		}
		return StatusPending
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if s == "" {
			return StatusUnknown
		}
		switch {
		case containsAny(s, rejectedMarkers):
			return StatusRejected
		case containsAny(s, cancelledMarkers):
			return StatusCancelled
		case containsAny(s, pendingMarkers):
			return StatusPending
		case containsAny(s, approvedMarkers):
			return StatusApproved
		default:
			return StatusUnknown
		}
	default:
		return StatusUnknown
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
