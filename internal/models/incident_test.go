package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusActive))
	assert.True(t, IsValidStatus(StatusResolved))
	assert.False(t, IsValidStatus("active"))
	assert.False(t, IsValidStatus("Closed"))
	assert.False(t, IsValidStatus(""))
}

func TestIsValidPriority(t *testing.T) {
	for _, p := range []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical} {
		assert.True(t, IsValidPriority(p), p)
	}
	assert.False(t, IsValidPriority("Urgent"))
	assert.False(t, IsValidPriority("critical"))
}

func TestTouristLookup(t *testing.T) {
	summary := TouristSummary{TouristID: uuid.New(), FullName: "Asha Verma"}

	found := FoundTourist(summary)
	got, ok := found.Get()
	assert.True(t, ok)
	assert.False(t, found.IsDangling())
	assert.Equal(t, summary, got)

	dangling := DanglingTourist()
	_, ok = dangling.Get()
	assert.False(t, ok)
	assert.True(t, dangling.IsDangling())
}
