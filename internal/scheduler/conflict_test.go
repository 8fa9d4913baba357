package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(hour int) time.Time {
	return time.Date(2026, 1, 5, hour, 0, 0, 0, time.UTC)
}

func TestOverlapsHalfOpen(t *testing.T) {
	require.True(t, overlaps(at(9), at(11), at(10), at(12)))
	require.True(t, overlaps(at(10), at(12), at(9), at(11)))
	require.True(t, overlaps(at(9), at(12), at(10), at(11)))
	// Touching endpoints do not overlap.
	require.False(t, overlaps(at(9), at(11), at(11), at(13)))
	require.False(t, overlaps(at(11), at(13), at(9), at(11)))
}

func TestConflictIndexAddRemove(t *testing.T) {
	idx := newConflictIndex()
	idx.add(resRoom, "A101", at(9), at(11))

	require.True(t, idx.isBusy(resRoom, "A101", at(10), at(12)))
	require.False(t, idx.isBusy(resRoom, "A101", at(11), at(13)))
	require.False(t, idx.isBusy(resRoom, "B201", at(10), at(12)))
	require.False(t, idx.isBusy(resTeacher, "A101", at(10), at(12)))

	idx.remove(resRoom, "A101", at(9), at(11))
	require.False(t, idx.isBusy(resRoom, "A101", at(10), at(12)))
}

func TestConflictIndexUnderflowPanics(t *testing.T) {
	idx := newConflictIndex()
	idx.add(resRoom, "A101", at(9), at(11))
	require.Panics(t, func() {
		idx.remove(resRoom, "A101", at(9), at(12))
	})
}

func TestJournalUndoIsExact(t *testing.T) {
	idx := newConflictIndex()
	// Two identical intervals from different owners.
	idx.add(resStudent, "s1", at(9), at(11))

	var j journal
	idx.commit(&j, resStudent, "s1", at(9), at(11))
	idx.commit(&j, resTeacher, "t1", at(9), at(11))
	require.Len(t, j, 2)

	idx.undo(j)
	// The pre-existing interval survives the undo.
	require.True(t, idx.isBusy(resStudent, "s1", at(9), at(11)))
	require.False(t, idx.isBusy(resTeacher, "t1", at(9), at(11)))
}
