package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildSlotsDefaultWindows(t *testing.T) {
	slots, err := BuildSlots(baseDate, 2, nil)
	require.NoError(t, err)
	require.Len(t, slots, 8)

	require.Equal(t, baseDate.Add(9*time.Hour), slots[0].Start)
	require.Equal(t, "Mon", slots[0].Weekday)
	require.Equal(t, baseDate.Add(16*time.Hour+30*time.Minute), slots[3].Start)
	require.Equal(t, "Tue", slots[4].Weekday)

	for i := 1; i < len(slots); i++ {
		require.True(t, slots[i].Start.After(slots[i-1].Start))
	}
}

func TestBuildSlotsDropsTimeOfDay(t *testing.T) {
	noon := baseDate.Add(12 * time.Hour)
	slots, err := BuildSlots(noon, 1, []string{"09:00"})
	require.NoError(t, err)
	require.Equal(t, baseDate.Add(9*time.Hour), slots[0].Start)
}

func TestBuildSlotsRejectsBadInput(t *testing.T) {
	_, err := BuildSlots(baseDate, 0, nil)
	require.Error(t, err)

	_, err = BuildSlots(baseDate, 1, []string{"9 o'clock"})
	require.Error(t, err)
}
