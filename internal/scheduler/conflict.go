package scheduler

import (
	"fmt"
	"time"
)

// Resource kinds tracked by the conflict index.
const (
	resTeacher = iota
	resRoom
	resStudent
	resKinds
)

type interval struct {
	start time.Time
	end   time.Time
}

// overlaps is the half-open interval intersection test.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aEnd.After(bStart) && aStart.Before(bEnd)
}

// conflictIndex tracks busy intervals per resource. It is owned by a single
// run and is not safe for concurrent use.
type conflictIndex struct {
	busy [resKinds]map[string][]interval
}

func newConflictIndex() *conflictIndex {
	var idx conflictIndex
	for i := range idx.busy {
		idx.busy[i] = make(map[string][]interval)
	}
	return &idx
}

func (x *conflictIndex) add(kind int, id string, start, end time.Time) {
	x.busy[kind][id] = append(x.busy[kind][id], interval{start, end})
}

// remove deletes the exact interval tuple. Removing an interval that was
// never added means a mismatched commit/undo pair, which is a logic defect.
func (x *conflictIndex) remove(kind int, id string, start, end time.Time) {
	list := x.busy[kind][id]
	for i, iv := range list {
		if iv.start.Equal(start) && iv.end.Equal(end) {
			x.busy[kind][id] = append(list[:i], list[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("conflict index underflow: kind=%d id=%s [%s, %s)", kind, id, start, end))
}

func (x *conflictIndex) isBusy(kind int, id string, start, end time.Time) bool {
	for _, iv := range x.busy[kind][id] {
		if overlaps(start, end, iv.start, iv.end) {
			return true
		}
	}
	return false
}

type journalEntry struct {
	kind int
	id   string
	start, end time.Time
}

// journal records the intervals added for one trial placement so undo is
// exact even when identical intervals exist elsewhere in the index.
type journal []journalEntry

func (x *conflictIndex) commit(j *journal, kind int, id string, start, end time.Time) {
	x.add(kind, id, start, end)
	*j = append(*j, journalEntry{kind, id, start, end})
}

func (x *conflictIndex) undo(j journal) {
	for i := len(j) - 1; i >= 0; i-- {
		e := j[i]
		x.remove(e.kind, e.id, e.start, e.end)
	}
}
