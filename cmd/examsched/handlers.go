package main

import (
	"context"
	"database/sql"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bkaradeniz/go-exam-schedule/internal/config"
	"github.com/bkaradeniz/go-exam-schedule/internal/csvio"
	"github.com/bkaradeniz/go-exam-schedule/internal/scheduler"
	"github.com/bkaradeniz/go-exam-schedule/internal/store"
)

func handleGetSchedule(ctx *gin.Context) {
	type ScheduleMeta struct {
		Id     string `json:"id"`
		Status string `json:"status"`
		Report string `json:"report"`
	}

	runs, err := scheduleRepository.List(ctx)
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	allSchedules := []ScheduleMeta{}
	for _, run := range runs {
		allSchedules = append(allSchedules, ScheduleMeta{
			Id:     run.ID,
			Status: run.Status,
			Report: run.Report,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"schedules": allSchedules,
	})
}

func handleGetScheduleWithId(ctx *gin.Context) {
	id := ctx.Param("id")

	run, err := scheduleRepository.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		ctx.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":     run.ID,
		"status": run.Status,
		"report": run.Report,
		"data":   run.Data,
	})
}

func handleDeleteScheduleWithId(ctx *gin.Context) {
	id := ctx.Param("id")

	err := scheduleRepository.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		ctx.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"deleted": id,
	})
}

func handlePostSchedule(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		serverLog.Error().Err(err).Msg("error reading form")
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	required := []string{"courses", "teachers", "classrooms", "proximity", "enrollments"}
	for _, name := range required {
		if form.File[name] == nil {
			serverLog.Warn().Str("file", name).Msg("missing upload")
			ctx.Status(http.StatusBadRequest)
			return
		}
	}

	id := uuid.NewString()
	save := func(fh *multipart.FileHeader) (string, error) {
		path := filepath.Join(serverConfig.Server.UploadDir, id+"-"+filepath.Base(fh.Filename))
		return path, ctx.SaveUploadedFile(fh, path)
	}

	saved := make(map[string]string, len(required)+1)
	names := required
	if form.File["exams"] != nil {
		names = append(names, "exams")
	}
	for _, name := range names {
		path, err := save(form.File[name][0])
		if err != nil {
			serverLog.Error().Err(err).Str("file", name).Msg("error saving upload")
			ctx.Status(http.StatusInternalServerError)
			return
		}
		saved[name] = path
	}
	paths := config.DataConfig{
		CoursesFile:     saved["courses"],
		TeachersFile:    saved["teachers"],
		ClassroomsFile:  saved["classrooms"],
		ProximityFile:   saved["proximity"],
		EnrollmentsFile: saved["enrollments"],
		ExamsFile:       saved["exams"],
	}

	if err := scheduleRepository.Create(ctx, id); err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}

	force := ctx.PostForm("force") == "true"
	go generateSchedule(id, paths, force)

	ctx.JSON(http.StatusOK, gin.H{
		"id": id,
	})
}

// generateSchedule runs one scheduling pass in the background and stores the
// outcome. Runs against distinct uploads are independent, the engine owns all
// mutable state.
func generateSchedule(id string, paths config.DataConfig, force bool) {
	ctx := context.Background()
	log := serverLog.With().Str("schedule", id).Logger()

	snapshot, err := csvio.LoadSnapshot(&paths, ';')
	if err != nil {
		log.Error().Err(err).Msg("load snapshot")
		markFailed(ctx, id, err.Error())
		return
	}

	sc := serverConfig.Schedule
	slots, err := scheduler.BuildSlots(sc.StartDateTime(), sc.Days, sc.StartTimes)
	if err != nil {
		markFailed(ctx, id, err.Error())
		return
	}

	engine, err := scheduler.New(snapshot, slots, scheduler.Options{
		Force:      force || sc.Force,
		NodeBudget: sc.NodeBudget,
		Logger:     log,
	})
	if err != nil {
		markFailed(ctx, id, err.Error())
		return
	}

	res := engine.Schedule()
	_, report := scheduler.Validate(snapshot, res)
	report += scheduler.Summary(res)

	data, err := csvio.ExportPlanString(snapshot, res)
	if err != nil {
		markFailed(ctx, id, err.Error())
		return
	}

	status := store.StatusSuccess
	if !res.Complete {
		status = store.StatusPartial
	}
	if err := scheduleRepository.SetResult(ctx, id, status, report, data); err != nil {
		log.Error().Err(err).Msg("store result")
	}
}

func markFailed(ctx context.Context, id, report string) {
	if err := scheduleRepository.MarkFailed(ctx, id, report); err != nil {
		serverLog.Error().Err(err).Str("schedule", id).Msg("mark failed")
	}
}
