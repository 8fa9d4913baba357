package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bkaradeniz/go-exam-schedule/pkg/model"
)

func room(id string, capacity int) *model.Classroom {
	return &model.Classroom{ID: model.RoomID(id), Capacity: capacity, IsAvailable: true}
}

func labRoom(id string, capacity int) *model.Classroom {
	return &model.Classroom{ID: model.RoomID(id), Capacity: capacity, IsAvailable: true, IsSpecial: true, SpecialType: "lab"}
}

func ids(cluster []*model.Classroom) []string {
	out := make([]string, len(cluster))
	for i, r := range cluster {
		out[i] = string(r.ID)
	}
	return out
}

func TestSingleRoomCandidatesFirst(t *testing.T) {
	rooms := []*model.Classroom{room("B201", 80), room("A101", 120)}
	cr := newClusterResolver(rooms, nil)

	got := cr.candidates(70, "")
	require.NotEmpty(t, got)
	// Biggest single room first, then the smaller one, then the fallback.
	require.Equal(t, []string{"A101"}, ids(got[0]))
	require.Equal(t, []string{"B201"}, ids(got[1]))
}

func TestProximityClusterOrdering(t *testing.T) {
	a := room("A101", 80)
	b := room("B201", 80)
	c := room("C301", 80)
	prox := []*model.Proximity{
		// C is closer but B is adjacent; adjacency wins.
		{PrimaryRoom: "A101", NearbyRoom: "C301", Distance: 5, IsAdjacent: false},
		{PrimaryRoom: "A101", NearbyRoom: "B201", Distance: 20, IsAdjacent: true},
	}
	cr := newClusterResolver([]*model.Classroom{a, b, c}, prox)

	got := cr.candidates(150, "")
	require.NotEmpty(t, got)
	require.Len(t, got[0], 2)
	require.Equal(t, []string{"A101", "B201"}, ids(got[0]))
}

func TestSpecialRoomsExcludedWithoutRequirement(t *testing.T) {
	rooms := []*model.Classroom{room("A101", 100), labRoom("LAB1", 200)}
	cr := newClusterResolver(rooms, nil)

	for _, cluster := range cr.candidates(50, "") {
		for _, r := range cluster {
			require.False(t, r.IsSpecial)
		}
	}
}

func TestSpecialRequirementFiltersUniverse(t *testing.T) {
	rooms := []*model.Classroom{room("A101", 500), labRoom("LAB1", 30), labRoom("LAB2", 60)}
	cr := newClusterResolver(rooms, nil)

	got := cr.candidates(40, "lab")
	require.NotEmpty(t, got)
	require.Equal(t, []string{"LAB2"}, ids(got[0]))
	for _, cluster := range got {
		for _, r := range cluster {
			require.True(t, r.Matches("lab"))
		}
	}
}

func TestFallbackClusterIgnoresProximity(t *testing.T) {
	rooms := []*model.Classroom{room("A101", 60), room("B201", 50), room("C301", 40)}
	cr := newClusterResolver(rooms, nil)

	got := cr.candidates(100, "")
	require.NotEmpty(t, got)
	last := got[len(got)-1]
	require.Equal(t, []string{"A101", "B201"}, ids(last))
}

func TestNoCandidatesForUnknownRequirement(t *testing.T) {
	rooms := []*model.Classroom{room("A101", 100)}
	cr := newClusterResolver(rooms, nil)
	require.Empty(t, cr.candidates(10, "dean-hall"))
}
