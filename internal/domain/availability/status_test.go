//go:build unit

package availability_test

import (
	"testing"

	"club-rental-api/internal/domain/availability"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromRaw(t *testing.T) {
	cases := []struct {
		name     string
		raw      any
		expected availability.Status
	}{
		{name: "english approved", raw: "approved", expected: availability.StatusApproved},
		{name: "korean approved", raw: "승인", expected: availability.StatusApproved},
		{name: "approved with whitespace and case", raw: "  Approved ", expected: availability.StatusApproved},
		{name: "english pending", raw: "pending", expected: availability.StatusPending},
		{name: "korean pending", raw: "대기", expected: availability.StatusPending},
		{name: "english rejected", raw: "rejected", expected: availability.StatusRejected},
		{name: "korean rejected", raw: "거절", expected: availability.StatusRejected},
		{name: "korean returned", raw: "반려", expected: availability.StatusRejected},
		{name: "cancelled both spellings", raw: "canceled", expected: availability.StatusCancelled},
		{name: "korean cancelled", raw: "취소", expected: availability.StatusCancelled},
		{name: "cancellation of an approval reads cancelled", raw: "승인 취소", expected: availability.StatusCancelled},
		{name: "legacy boolean true", raw: true, expected: availability.StatusApproved},
		{name: "legacy boolean false", raw: false, expected: availability.StatusPending},
		{name: "empty string", raw: "", expected: availability.StatusUnknown},
		{name: "unrecognized marker", raw: "maybe", expected: availability.StatusUnknown},
		{name: "missing status", raw: nil, expected: availability.StatusUnknown},
		{name: "numeric status", raw: float64(1), expected: availability.StatusUnknown},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, availability.StatusFromRaw(c.raw))
		})
	}
}

func TestCountsTowardUsage(t *testing.T) {
	assert.True(t, availability.StatusApproved.CountsTowardUsage())
	assert.False(t, availability.StatusPending.CountsTowardUsage())
	assert.False(t, availability.StatusRejected.CountsTowardUsage())
	assert.False(t, availability.StatusCancelled.CountsTowardUsage())
	assert.False(t, availability.StatusUnknown.CountsTowardUsage())
}
