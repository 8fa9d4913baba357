package scheduler

import (
	"errors"
	"slices"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/bkaradeniz/go-exam-schedule/pkg/model"
)

// ErrNoClassrooms means the available room universe is empty, which makes a
// run pointless before the search even starts.
var ErrNoClassrooms = errors.New("no available classrooms")

const DefaultDuration = 60

type Options struct {
	// Force discards existing exams of in-scope courses and reschedules them.
	// Without it, courses that already have an exam are skipped.
	Force bool
	// NodeBudget caps the number of explored search nodes. Exceeding it stops
	// the search and keeps the best partial plan found so far. 0 is unlimited.
	NodeBudget int
	Logger     zerolog.Logger
}

// Engine runs one backtracking scheduling pass over a fixed snapshot. An
// Engine owns its conflict index and must not be shared between runs.
type Engine struct {
	slots    []model.TimeSlot
	opts     Options
	log      zerolog.Logger
	index    *conflictIndex
	resolver *clusterResolver

	teachers    map[model.TeacherID]*model.Teacher
	enrollments map[model.CourseID][]model.StudentID
	courses     []*model.Course

	plan  model.Plan
	best  model.Plan
	nodes int
}

// New prepares an engine: filters the room universe, normalizes the proximity
// graph, fixes the course ordering and pre-seeds busy state from existing
// exams.
func New(snapshot *model.Snapshot, slots []model.TimeSlot, opts Options) (*Engine, error) {
	var rooms []*model.Classroom
	for _, r := range snapshot.Classrooms {
		if r.IsAvailable {
			rooms = append(rooms, r)
		}
	}
	if len(rooms) == 0 {
		return nil, ErrNoClassrooms
	}

	e := &Engine{
		slots:       slots,
		opts:        opts,
		log:         opts.Logger,
		index:       newConflictIndex(),
		resolver:    newClusterResolver(rooms, snapshot.Proximities),
		teachers:    make(map[model.TeacherID]*model.Teacher),
		enrollments: snapshot.Enrollments,
		plan:        model.Plan{},
		best:        model.Plan{},
	}
	if e.enrollments == nil {
		e.enrollments = make(map[model.CourseID][]model.StudentID)
	}
	for _, t := range snapshot.Teachers {
		e.teachers[t.ID] = t
	}

	inScope := make(map[model.CourseID]bool)
	for _, c := range snapshot.Courses {
		if c.HasExam {
			inScope[c.ID] = true
		}
	}

	examined := make(map[model.CourseID]bool)
	for _, ex := range snapshot.Exams {
		if opts.Force && inScope[ex.CourseID] {
			continue
		}
		examined[ex.CourseID] = true
		end := ex.Start.Add(time.Duration(ex.Duration) * time.Minute)
		e.index.add(resRoom, string(ex.RoomID), ex.Start, end)
		if c := snapshot.CourseByID(ex.CourseID); c != nil && c.TeacherID != "" {
			e.index.add(resTeacher, string(c.TeacherID), ex.Start, end)
		}
		for _, sid := range e.enrollments[ex.CourseID] {
			e.index.add(resStudent, string(sid), ex.Start, end)
		}
	}

	// Hardest-to-fit first: descending seat demand, input order on ties.
	for _, c := range snapshot.Courses {
		if !c.HasExam || examined[c.ID] {
			continue
		}
		e.courses = append(e.courses, c)
	}
	sort.SliceStable(e.courses, func(i, j int) bool {
		return e.courses[i].StudentCount > e.courses[j].StudentCount
	})

	return e, nil
}

// Schedule runs the search and returns the first complete plan found, or the
// longest partial plan when full coverage is infeasible.
func (e *Engine) Schedule() *model.Result {
	e.search(0)

	res := &model.Result{Plan: e.best}
	placed := make(map[model.CourseID]bool, len(e.best))
	for _, a := range e.best {
		placed[a.Course.ID] = true
	}
	for _, c := range e.courses {
		if !placed[c.ID] {
			res.Unscheduled = append(res.Unscheduled, c.ID)
		}
	}
	res.Complete = len(res.Unscheduled) == 0

	e.log.Info().
		Int("scheduled", len(res.Plan)).
		Int("unscheduled", len(res.Unscheduled)).
		Int("nodes", e.nodes).
		Bool("complete", res.Complete).
		Msg("scheduling run finished")
	return res
}

func (e *Engine) search(idx int) bool {
	if idx == len(e.courses) {
		e.best = slices.Clone(e.plan)
		return true
	}
	if e.opts.NodeBudget > 0 && e.nodes >= e.opts.NodeBudget {
		if len(e.plan) > len(e.best) {
			e.best = slices.Clone(e.plan)
		}
		return false
	}
	e.nodes++

	course := e.courses[idx]
	duration := course.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	for _, slot := range e.slots {
		start := slot.Start
		end := start.Add(time.Duration(duration) * time.Minute)
		if !e.teacherOK(course, start, end, slot.Weekday) {
			continue
		}
		if !e.studentsOK(course.ID, start, end) {
			continue
		}
		for _, cluster := range e.resolver.candidates(course.StudentCount, course.SpecialRoom) {
			if !e.roomsAvailable(cluster, start, end) {
				continue
			}

			var j journal
			for _, r := range cluster {
				e.index.commit(&j, resRoom, string(r.ID), start, end)
			}
			if course.TeacherID != "" {
				e.index.commit(&j, resTeacher, string(course.TeacherID), start, end)
			}
			for _, sid := range e.enrollments[course.ID] {
				e.index.commit(&j, resStudent, string(sid), start, end)
			}
			e.plan = append(e.plan, model.Assignment{
				Course: course, Rooms: cluster, Start: start, Duration: duration,
			})

			if e.search(idx + 1) {
				return true
			}

			e.plan = e.plan[:len(e.plan)-1]
			e.index.undo(j)
		}
	}

	if len(e.plan) > len(e.best) {
		e.best = slices.Clone(e.plan)
	}
	return false
}
